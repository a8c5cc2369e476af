package commands

import (
	"flag"
	"fmt"
	"io"

	"github.com/pedalsteel/steel-go/cmd/steel/interactive"
	"github.com/pedalsteel/steel-go/pkg/sessionlog"
)

// ReplOptions holds the repl command options.
type ReplOptions struct {
	Tuning     string
	TuningName string
	Session    string
}

// RunRepl starts the interactive shell.
func RunRepl(args []string, stdout, stderr io.Writer) int {
	opts, err := parseReplArgs(args)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		printReplUsage(stderr)
		return exitCommandError
	}

	n, err := resolveNeck(opts.Tuning, opts.TuningName)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	var logger sessionlog.Logger = sessionlog.NoopLogger{}
	if opts.Session != "" {
		fileLogger, err := sessionlog.NewFileLogger(opts.Session)
		if err != nil {
			fmt.Fprintf(stderr, "Error: failed to open history file: %v\n", err)
			return exitCommandError
		}
		defer fileLogger.Close()
		logger = fileLogger
	}

	shell, err := interactive.New(n, logger)
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to start shell: %v\n", err)
		return exitCommandError
	}

	shell.Run()
	return exitSuccess
}

func parseReplArgs(args []string) (*ReplOptions, error) {
	opts := &ReplOptions{}

	fs := flag.NewFlagSet("repl", flag.ContinueOnError)
	fs.StringVar(&opts.Tuning, "tuning", "", "Comma-separated open-string notes, high to low")
	fs.StringVar(&opts.TuningName, "tuning-name", "", "Tuning preset name")
	fs.StringVar(&opts.Session, "session", "", "Append scans to this history file")

	fs.Usage = func() {}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return opts, nil
}

func printReplUsage(w io.Writer) {
	fmt.Fprintln(w, `
Usage: steel repl [options]

Options:
  --tuning <notes>       Comma-separated open-string notes, high to low
  --tuning-name <name>   Tuning preset name (default "E9")
  --session <file>       Append scans to this history file

Examples:
  steel repl
  steel repl --tuning-name C6
  steel repl --session history.slog`)
}
