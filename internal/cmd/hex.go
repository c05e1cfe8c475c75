package cmd

import (
	"github.com/hutulabs/hutugo/hexutil"
	"github.com/spf13/cobra"
)

// NewHexCmd creates and returns the hex subcommand for the hutu CLI.
// It exposes the hexutil codec.
func NewHexCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hex",
		Short: "Hex-encode and hex-decode strings",
	}

	encodeCmd := &cobra.Command{
		Use:   "encode VALUE",
		Short: "Encode a string as lowercase hex",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Println(hexutil.Encode(args[0]))
		},
	}

	decodeCmd := &cobra.Command{
		Use:   "decode VALUE",
		Short: "Decode a hex string",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			decoded, err := hexutil.Decode(args[0])
			if err != nil {
				return err
			}
			cmd.Println(decoded)
			return nil
		},
	}

	cmd.AddCommand(encodeCmd)
	cmd.AddCommand(decodeCmd)

	return cmd
}
