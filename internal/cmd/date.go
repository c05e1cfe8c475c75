package cmd

import (
	"github.com/hutulabs/hutugo/dateutil"
	"github.com/spf13/cobra"
)

// NewDateCmd creates and returns the date subcommand for the hutu CLI.
// It exposes the dateutil strftime layer.
func NewDateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "date",
		Short: "Format and reformat date-time strings (strftime layouts)",
	}

	var layout string
	nowCmd := &cobra.Command{
		Use:   "now",
		Short: "Print the current local time",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Println(dateutil.FormatNow(layout))
		},
	}
	nowCmd.Flags().StringVarP(&layout, "format", "f", "%F %T", "strftime layout")

	var from, to string
	reformatCmd := &cobra.Command{
		Use:   "reformat VALUE",
		Short: "Re-render a date-time string in another layout",
		Long: `Re-render a date-time string in another layout.

VALUE is parsed with the --from layout and printed with the --to
layout. A value that does not match the --from layout is an error.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := dateutil.Reformat(args[0], from, to)
			if err != nil {
				return err
			}
			cmd.Println(out)
			return nil
		},
	}
	reformatCmd.Flags().StringVarP(&from, "from", "f", "%F %T", "layout of VALUE")
	reformatCmd.Flags().StringVarP(&to, "to", "t", "%F", "layout to print")

	cmd.AddCommand(nowCmd)
	cmd.AddCommand(reformatCmd)

	return cmd
}
