package cmd

import (
	"github.com/hutulabs/hutugo/timeutil"
	"github.com/spf13/cobra"
)

// NewTimestampCmd creates and returns the ts subcommand for the hutu CLI.
// It prints the current Unix timestamp.
func NewTimestampCmd() *cobra.Command {
	var millis bool

	cmd := &cobra.Command{
		Use:   "ts",
		Short: "Print the current Unix timestamp",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if millis {
				cmd.Println(timeutil.FormatTimestamp(timeutil.TimestampMillis()))
				return
			}
			cmd.Println(timeutil.CurrentDate())
		},
	}
	cmd.Flags().BoolVarP(&millis, "millis", "m", false, "Print milliseconds instead of seconds")

	return cmd
}
