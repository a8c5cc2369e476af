package commands

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/pedalsteel/steel-go/pkg/midifile"
	"github.com/pedalsteel/steel-go/pkg/scan"
	"github.com/pedalsteel/steel-go/pkg/theory"
)

// ScaleOptions configures the scale command.
type ScaleOptions struct {
	Tuning     string // comma-separated note list
	TuningName string // preset name
	Format     string // text, json, yaml
	Parallel   bool
	Session    string // history file to append to
	MIDI       string // SMF file to write
	Debug      bool
	Request    string // e.g. "E major"
}

// RunScale runs the scale command.
func RunScale(args []string, stdout, stderr io.Writer) int {
	opts, err := parseScaleArgs(args)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	if opts.Request == "" {
		fmt.Fprintln(stderr, "Error: no scale specified")
		printScaleUsage(stderr)
		return exitCommandError
	}

	root, scale, err := theory.ParseScale(opts.Request)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	n, err := resolveNeck(opts.Tuning, opts.TuningName)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	scanner := scan.New(n, scan.Config{
		Parallel: opts.Parallel,
		Logger:   debugLogger(opts.Debug, stderr),
	})
	res := scanner.Scale(root, scale)

	if opts.Session != "" {
		if err := appendSessionEvent(opts.Session, opts.Request, n, res); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitCommandError
		}
	}

	if opts.MIDI != "" {
		if err := midifile.WriteFile(opts.MIDI, res, midifile.Config{}); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitCommandError
		}
	}

	return emitScan(stdout, opts.Format, n, res)
}

func parseScaleArgs(args []string) (ScaleOptions, error) {
	fs := flag.NewFlagSet("scale", flag.ContinueOnError)
	opts := ScaleOptions{}

	fs.StringVar(&opts.Tuning, "tuning", "", "Tuning as a comma-separated note list")
	fs.StringVar(&opts.TuningName, "tuning-name", "", "Tuning preset name (E9, C6)")
	fs.StringVar(&opts.Format, "format", "text", "Output format (text, json, yaml)")
	fs.StringVar(&opts.Format, "f", "text", "Output format (shorthand)")
	fs.BoolVar(&opts.Parallel, "parallel", false, "Scan positions concurrently")
	fs.StringVar(&opts.Session, "session", "", "Append this scan to a history file")
	fs.StringVar(&opts.MIDI, "midi", "", "Write the scale to a MIDI file")
	fs.BoolVar(&opts.Debug, "debug", false, "Enable debug logging")

	fs.Usage = func() {}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	opts.Request = strings.Join(fs.Args(), " ")
	return opts, nil
}

func printScaleUsage(w io.Writer) {
	fmt.Fprintln(w, `
Usage: steel scale [options] <root> <scale>

Options:
  --tuning        Tuning as a comma-separated note list
  --tuning-name   Tuning preset name (E9, C6) [default: E9]
  -f, --format    Output format (text, json, yaml) [default: text]
  --parallel      Scan positions concurrently
  --session       Append this scan to a history file
  --midi          Write the scale to a MIDI file
  --debug         Enable debug logging

Examples:
  steel scale E major
  steel scale --format json "A harmonic minor"
  steel scale --tuning-name C6 G mixolydian
  steel scale --midi blues.mid G blues`)
}
