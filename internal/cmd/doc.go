// Package cmd provides the command-line interface implementation for hutu.
//
// This package contains all the subcommand implementations for the hutu
// CLI tool. It uses the Cobra library for command structure and Fang for
// styling.
//
// The package is organized into the following commands:
//   - root: main command coordinator and entry point
//   - hex: hex encoding and decoding of strings
//   - page: pagination index math and rainbow windows
//   - date: strftime-style formatting and reformatting
//   - ts: current Unix timestamps
//   - ls: non-recursive directory listing
//   - scratch: test-file generation with bucketed fan-out
//
// Each command is implemented as a separate file with its own constructor
// function that returns a *cobra.Command. The commands are thin shells
// over the library packages (strutil, dateutil, fileutil, ...); all
// behavior lives in those packages.
package cmd
