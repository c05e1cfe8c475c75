// Package main provides the hutu command-line interface.
//
// hutugo is a grab-bag utility module: small, independent helper
// packages for strings (strutil), math and statistics (mathutil),
// Unix timestamps (timeutil), strftime-style date-times (dateutil),
// file I/O (fileutil), elapsed-time measurement (stopwatch), hex
// encoding (hexutil), and pagination math (pageutil).
//
// The hutu binary exposes a subset of those packages as subcommands:
//   - hex: encode and decode hex strings
//   - page: pagination index math and rainbow windows
//   - date: format and reformat date-time strings
//   - ts: current Unix timestamps
//   - ls: non-recursive directory listings
//   - scratch: bucketed test-file generation
package main
