package cmd

import (
	"github.com/hutulabs/hutugo/version"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root cobra command for the hutu CLI.
// It sets up all subcommands, command groups, and basic configuration.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "hutu",
		Short: "hutu - grab-bag utility toolbox",
		Long: `hutu exposes the hutugo helper packages on the command line:
hex encoding, pagination math, strftime-style date formatting, Unix
timestamps, directory listings, and a bucketed test-file generator.

Every subcommand is a thin shell over an importable package; the CLI
exists for quick one-off invocations and as living documentation of
the library.`,
		Version: version.Full(),
	}

	groupText := "text"
	groupTime := "time"
	groupFiles := "files"

	rootCmd.AddGroup(&cobra.Group{
		ID:    groupText,
		Title: "Text Utilities",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupTime,
		Title: "Time Utilities",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupFiles,
		Title: "File Utilities",
	})

	hexCmd := NewHexCmd()
	pageCmd := NewPageCmd()
	dateCmd := NewDateCmd()
	tsCmd := NewTimestampCmd()
	lsCmd := NewLsCmd()
	scratchCmd := NewScratchCmd()

	hexCmd.GroupID = groupText
	pageCmd.GroupID = groupText
	dateCmd.GroupID = groupTime
	tsCmd.GroupID = groupTime
	lsCmd.GroupID = groupFiles
	scratchCmd.GroupID = groupFiles

	rootCmd.AddCommand(hexCmd)
	rootCmd.AddCommand(pageCmd)
	rootCmd.AddCommand(dateCmd)
	rootCmd.AddCommand(tsCmd)
	rootCmd.AddCommand(lsCmd)
	rootCmd.AddCommand(scratchCmd)

	return rootCmd
}
