// Package cli implements the staged command-line interface.
//
// The package is organized around Cobra commands, with the root command
// doing the actual work: it validates the paired --name/--time flags (or
// resolves a --preset from config), builds the timer, and hands it to the
// tui package for the interactive run.
//
// # Command Structure
//
//	staged -n NAME -t TIME ...  - Run a stage list
//	staged --preset NAME        - Run a preset from the config file
//	staged init                 - Interactively write a config preset
//	staged version              - Print version information
//
// # Error Handling
//
// Commands return structured errors from internal/errors; Execute prints
// them and exits non-zero. Argument validation happens before any
// terminal state is touched, so a bad invocation never enters the
// alternate screen.
package cli
