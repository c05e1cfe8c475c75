package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hutulabs/hutugo/dateutil"
	"github.com/hutulabs/hutugo/fileutil"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewLsCmd creates and returns the ls subcommand for the hutu CLI.
// It lists the immediate entries of a directory as a table.
func NewLsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ls PATH",
		Short: "List the immediate entries of a directory",
		Long: `List the immediate entries of a directory as a table.

The listing is non-recursive: subdirectories appear as single rows
and are not descended into.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLs(cmd, args[0])
		},
	}

	return cmd
}

func runLs(cmd *cobra.Command, path string) error {
	paths, err := fileutil.ReadDir(path)
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.Header("Name", "Type", "Size", "Modified")

	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			// Entry vanished between listing and stat; show what we know
			table.Append(filepath.Base(p), "?", "?", "?")
			continue
		}
		kind := "file"
		size := fmt.Sprintf("%d", info.Size())
		if info.IsDir() {
			kind = "dir"
			size = "-"
		}
		table.Append(
			filepath.Base(p),
			kind,
			size,
			dateutil.Format(info.ModTime(), "%F %T"),
		)
	}

	return table.Render()
}
