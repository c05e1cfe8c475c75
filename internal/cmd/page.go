package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hutulabs/hutugo/pageutil"
	"github.com/spf13/cobra"
)

// NewPageCmd creates and returns the page subcommand for the hutu CLI.
// It exposes the pageutil index math.
func NewPageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "page",
		Short: "Pagination index math",
	}

	var size int
	rangeCmd := &cobra.Command{
		Use:   "range PAGE",
		Short: "Print the [start, end) element range of a page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := parseIntArg(args[0], "PAGE")
			if err != nil {
				return err
			}
			start, end := pageutil.PageRange(page, size)
			cmd.Printf("%d %d\n", start, end)
			return nil
		},
	}
	rangeCmd.Flags().IntVarP(&size, "size", "s", 10, "Page size")

	var totalSize int
	totalCmd := &cobra.Command{
		Use:   "total COUNT",
		Short: "Print the number of pages needed for COUNT elements",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			total, err := parseIntArg(args[0], "COUNT")
			if err != nil {
				return err
			}
			cmd.Printf("%d\n", pageutil.TotalPages(total, totalSize))
			return nil
		},
	}
	totalCmd.Flags().IntVarP(&totalSize, "size", "s", 10, "Page size")

	var display int
	rainbowCmd := &cobra.Command{
		Use:   "rainbow PAGE TOTAL_PAGES",
		Short: "Print the window of page numbers to display around PAGE",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := parseIntArg(args[0], "PAGE")
			if err != nil {
				return err
			}
			totalPages, err := parseIntArg(args[1], "TOTAL_PAGES")
			if err != nil {
				return err
			}
			pages := pageutil.Rainbow(page, totalPages, display)
			rendered := make([]string, len(pages))
			for i, p := range pages {
				rendered[i] = strconv.Itoa(p)
			}
			cmd.Println(strings.Join(rendered, " "))
			return nil
		},
	}
	rainbowCmd.Flags().IntVarP(&display, "display", "d", 5, "Number of page links to display")

	cmd.AddCommand(rangeCmd)
	cmd.AddCommand(totalCmd)
	cmd.AddCommand(rainbowCmd)

	return cmd
}

// parseIntArg parses a positional integer argument with a usable
// error message.
func parseIntArg(value, name string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", name, value)
	}
	return n, nil
}
