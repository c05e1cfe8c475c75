package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/hutulabs/hutugo/fileutil"
	"github.com/hutulabs/hutugo/stopwatch"
	"github.com/spf13/cobra"
	"github.com/taigrr/colorhash"
)

// NewScratchCmd creates and returns the scratch subcommand for the
// hutu CLI. It generates test files fanned out into bucket directories.
func NewScratchCmd() *cobra.Command {
	var (
		outputPath string
		fileCount  int
		buckets    int
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "scratch",
		Short: "Generate test files in bucketed directories",
		Long: `Generate test files for exercising tools that walk directory trees.

Each file is named after a fresh UUID and contains that UUID as a
single line. Files are distributed across bucket subdirectories chosen
by hashing the UUID, so the fan-out is stable for a given set of
names. The elapsed generation time is reported when done.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScratch(cmd, outputPath, fileCount, buckets, verbose)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Path to output directory (required)")
	cmd.Flags().IntVarP(&fileCount, "count", "c", 1000, "Number of files to generate")
	cmd.Flags().IntVarP(&buckets, "buckets", "b", 16, "Number of bucket directories")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	cmd.MarkFlagRequired("output")

	return cmd
}

func runScratch(cmd *cobra.Command, outputPath string, fileCount, buckets int, verbose bool) error {
	if fileCount < 1 {
		return fmt.Errorf("count must be positive, got %d", fileCount)
	}
	if buckets < 1 {
		return fmt.Errorf("buckets must be positive, got %d", buckets)
	}

	if verbose {
		cmd.Printf("Generating %d files in %s across %d buckets\n", fileCount, outputPath, buckets)
	}

	sw := stopwatch.StartNew()

	for i := 0; i < buckets; i++ {
		dir := filepath.Join(outputPath, fmt.Sprintf("%03d", i))
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create bucket directory %s: %w", dir, err)
		}
	}

	for i := 0; i < fileCount; i++ {
		id := uuid.New().String()
		bucket := int(colorhash.HashString(id)) % buckets
		path := filepath.Join(outputPath, fmt.Sprintf("%03d", bucket), id+".txt")

		if err := fileutil.WriteFile(path, id+"\n"); err != nil {
			return err
		}

		if verbose && (i+1)%1000 == 0 {
			cmd.Printf("Progress: %d/%d files\n", i+1, fileCount)
		}
	}

	sw.Stop()
	cmd.Printf("Generated %d files in %s (%s)\n", fileCount, outputPath, sw)
	return nil
}
