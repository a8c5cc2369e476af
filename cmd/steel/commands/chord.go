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

// ChordOptions configures the chord command.
type ChordOptions struct {
	Tuning      string // comma-separated note list
	TuningName  string // preset name
	Format      string // text, json, yaml
	Parallel    bool
	Session     string // history file to append to
	MIDI        string // SMF file to write
	MIDIVoicing int    // cap on voicings written to the MIDI file
	Debug       bool
	Request     string // e.g. "A maj7"
}

// RunChord runs the chord command.
func RunChord(args []string, stdout, stderr io.Writer) int {
	opts, err := parseChordArgs(args)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	if opts.Request == "" {
		fmt.Fprintln(stderr, "Error: no chord specified")
		printChordUsage(stderr)
		return exitCommandError
	}

	root, chord, err := theory.ParseChord(opts.Request)
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
	res := scanner.Chord(root, chord)

	if opts.Session != "" {
		if err := appendSessionEvent(opts.Session, opts.Request, n, res); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitCommandError
		}
	}

	if opts.MIDI != "" {
		cfg := midifile.Config{MaxVoicings: opts.MIDIVoicing}
		if err := midifile.WriteFile(opts.MIDI, res, cfg); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitCommandError
		}
	}

	return emitScan(stdout, opts.Format, n, res)
}

func parseChordArgs(args []string) (ChordOptions, error) {
	fs := flag.NewFlagSet("chord", flag.ContinueOnError)
	opts := ChordOptions{}

	fs.StringVar(&opts.Tuning, "tuning", "", "Tuning as a comma-separated note list")
	fs.StringVar(&opts.TuningName, "tuning-name", "", "Tuning preset name (E9, C6)")
	fs.StringVar(&opts.Format, "format", "text", "Output format (text, json, yaml)")
	fs.StringVar(&opts.Format, "f", "text", "Output format (shorthand)")
	fs.BoolVar(&opts.Parallel, "parallel", false, "Scan positions concurrently")
	fs.StringVar(&opts.Session, "session", "", "Append this scan to a history file")
	fs.StringVar(&opts.MIDI, "midi", "", "Write the voicings to a MIDI file")
	fs.IntVar(&opts.MIDIVoicing, "midi-voicings", 0, "Cap on voicings written to the MIDI file")
	fs.BoolVar(&opts.Debug, "debug", false, "Enable debug logging")

	fs.Usage = func() {}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	opts.Request = strings.Join(fs.Args(), " ")
	return opts, nil
}

func printChordUsage(w io.Writer) {
	fmt.Fprintln(w, `
Usage: steel chord [options] <root> <chord>

Options:
  --tuning         Tuning as a comma-separated note list
  --tuning-name    Tuning preset name (E9, C6) [default: E9]
  -f, --format     Output format (text, json, yaml) [default: text]
  --parallel       Scan positions concurrently
  --session        Append this scan to a history file
  --midi           Write the voicings to a MIDI file
  --midi-voicings  Cap on voicings written to the MIDI file
  --debug          Enable debug logging

Examples:
  steel chord E major
  steel chord --format yaml "A dominant seventh"
  steel chord --tuning "F#, D#, G#, E, B, G#, F#, E, D, B" B maj7
  steel chord --midi grips.mid A major`)
}
