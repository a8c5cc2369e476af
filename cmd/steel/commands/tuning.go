package commands

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/pedalsteel/steel-go/pkg/render"
)

// TuningOptions configures the tuning command.
type TuningOptions struct {
	Notes  string // comma-separated note list
	Name   string // preset name
	Format string // text, json, yaml
}

// TuningOutput is the structured form of a tuning.
type TuningOutput struct {
	Name  string   `json:"name" yaml:"name"`
	Notes []string `json:"notes" yaml:"notes"`
}

// RunTuning runs the tuning command: it resolves a tuning from the
// options and prints it one string per line.
func RunTuning(args []string, stdout, stderr io.Writer) int {
	opts, err := parseTuningArgs(args)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	n, err := resolveNeck(opts.Notes, opts.Name)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		printTuningUsage(stderr)
		return exitCommandError
	}

	switch opts.Format {
	case "json":
		data, _ := json.MarshalIndent(TuningOutput{Name: n.Name(), Notes: n.Tuning().Notes()}, "", "  ")
		fmt.Fprintln(stdout, string(data))
	case "yaml":
		data, _ := yaml.Marshal(TuningOutput{Name: n.Name(), Notes: n.Tuning().Notes()})
		fmt.Fprintln(stdout, string(data))
	default:
		fmt.Fprintf(stdout, "Tuning: %s\n", n.Name())
		render.Tuning(stdout, n.Tuning())
	}

	return exitSuccess
}

func parseTuningArgs(args []string) (TuningOptions, error) {
	fs := flag.NewFlagSet("tuning", flag.ContinueOnError)
	opts := TuningOptions{}

	fs.StringVar(&opts.Notes, "notes", "", "Tuning as a comma-separated note list")
	fs.StringVar(&opts.Name, "name", "", "Tuning preset name (E9, C6)")
	fs.StringVar(&opts.Format, "format", "text", "Output format (text, json, yaml)")
	fs.StringVar(&opts.Format, "f", "text", "Output format (shorthand)")

	fs.Usage = func() {}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	return opts, nil
}

func printTuningUsage(w io.Writer) {
	fmt.Fprintln(w, `
Usage: steel tuning [options]

Options:
  --notes         Tuning as a comma-separated note list
  --name          Tuning preset name (E9, C6) [default: E9]
  -f, --format    Output format (text, json, yaml) [default: text]

Examples:
  steel tuning
  steel tuning --name C6
  steel tuning --notes "F#, D#, G#, E, B, G#, F#, E, D, B"
  steel tuning --name E9 --format json`)
}
