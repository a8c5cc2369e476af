// Command steel scans a pedal-steel neck for scales and chords.
//
// The scanner works on pitch classes: it marks every fret of every
// string that sounds a requested tone, across the whole catalog of
// pedal and lever positions, and in chord mode finds the frets where
// one bar position sounds the complete chord.
//
// Usage:
//
//	steel <command> [options] [args]
//
// Commands:
//
//	scale     Mark scale tones across every position
//	chord     Mark chord tones and find complete voicings
//	tuning    Show a tuning preset or a custom tuning
//	copedent  Show the copedent chart
//	list      List the built-in catalogs
//	log       View and analyze scan history files
//	repl      Start the interactive shell
//
// Examples:
//
//	# Scan the E major scale on the default E9 neck
//	steel scale E major
//
//	# Find every complete E major voicing
//	steel chord E major
//
//	# Scan a C6 neck instead
//	steel chord --tuning-name C6 A dom7
//
//	# Record scans and analyze them later
//	steel scale --session history.slog E major
//	steel log stats history.slog
package main

import (
	"fmt"
	"os"

	"github.com/pedalsteel/steel-go/cmd/steel/commands"
)

const (
	exitSuccess      = 0
	exitCommandError = 1
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(exitCommandError)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var exitCode int
	switch cmd {
	case "scale":
		exitCode = commands.RunScale(args, os.Stdout, os.Stderr)
	case "chord":
		exitCode = commands.RunChord(args, os.Stdout, os.Stderr)
	case "tuning":
		exitCode = commands.RunTuning(args, os.Stdout, os.Stderr)
	case "copedent":
		exitCode = commands.RunCopedent(args, os.Stdout, os.Stderr)
	case "list":
		exitCode = commands.RunList(args, os.Stdout, os.Stderr)
	case "log":
		exitCode = commands.RunLog(args, os.Stdout, os.Stderr)
	case "repl":
		exitCode = commands.RunRepl(args, os.Stdout, os.Stderr)
	case "help", "-h", "--help":
		printUsage()
		exitCode = exitSuccess
	case "version", "-v", "--version":
		fmt.Println("steel version 0.1.0")
		exitCode = exitSuccess
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		printUsage()
		exitCode = exitCommandError
	}

	os.Exit(exitCode)
}

func printUsage() {
	fmt.Println(`steel - pedal-steel scale and chord scanner

Usage:
  steel <command> [options] [args]

Commands:
  scale      Mark scale tones across every position
  chord      Mark chord tones and find complete voicings
  tuning     Show a tuning preset or a custom tuning
  copedent   Show the copedent chart
  list       List the built-in catalogs
  log        View and analyze scan history files
  repl       Start the interactive shell

Options:
  -h, --help     Show this help message
  -v, --version  Show version information

Examples:
  steel scale E major
  steel chord --format json E maj7
  steel chord --tuning-name C6 A dom7
  steel log view history.slog

For command-specific help, run:
  steel <command> --help`)
}
