package commands

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pedalsteel/steel-go/pkg/copedent"
	"github.com/pedalsteel/steel-go/pkg/neck"
	"github.com/pedalsteel/steel-go/pkg/theory"
)

// ListOptions configures the list command.
type ListOptions struct {
	Kind   string // scales, chords, tunings, positions, or empty for all
	Format string // text, json, yaml
}

// ListOutput enumerates the built-in catalogs.
type ListOutput struct {
	Scales    []string       `json:"scales,omitempty" yaml:"scales,omitempty"`
	Chords    []string       `json:"chords,omitempty" yaml:"chords,omitempty"`
	Tunings   []TuningOutput `json:"tunings,omitempty" yaml:"tunings,omitempty"`
	Positions []string       `json:"positions,omitempty" yaml:"positions,omitempty"`
}

// RunList runs the list command: it enumerates the scale, chord,
// tuning, and position catalogs.
func RunList(args []string, stdout, stderr io.Writer) int {
	opts, err := parseListArgs(args)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	switch opts.Kind {
	case "", "scales", "chords", "tunings", "positions":
	default:
		fmt.Fprintf(stderr, "Error: unknown catalog %q (must be scales, chords, tunings, or positions)\n", opts.Kind)
		return exitCommandError
	}

	output := buildListOutput(opts.Kind)

	switch opts.Format {
	case "json":
		data, _ := json.MarshalIndent(output, "", "  ")
		fmt.Fprintln(stdout, string(data))
	case "yaml":
		data, _ := yaml.Marshal(output)
		fmt.Fprintln(stdout, string(data))
	default:
		printListText(stdout, output)
	}

	return exitSuccess
}

func buildListOutput(kind string) ListOutput {
	output := ListOutput{}

	if kind == "" || kind == "scales" {
		for _, s := range theory.Scales() {
			output.Scales = append(output.Scales, s.Name)
		}
	}
	if kind == "" || kind == "chords" {
		for _, c := range theory.Chords() {
			output.Chords = append(output.Chords, c.Name)
		}
	}
	if kind == "" || kind == "tunings" {
		for _, p := range neck.Presets() {
			output.Tunings = append(output.Tunings, TuningOutput{Name: p.Name, Notes: p.Notes})
		}
	}
	if kind == "" || kind == "positions" {
		for _, pos := range copedent.Standard().Positions() {
			output.Positions = append(output.Positions, pos.Name)
		}
	}

	return output
}

func printListText(w io.Writer, output ListOutput) {
	if len(output.Scales) > 0 {
		fmt.Fprintln(w, "Scales:")
		for _, name := range output.Scales {
			fmt.Fprintf(w, "  %s\n", name)
		}
	}
	if len(output.Chords) > 0 {
		if len(output.Scales) > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, "Chords:")
		for _, name := range output.Chords {
			fmt.Fprintf(w, "  %s\n", name)
		}
	}
	if len(output.Tunings) > 0 {
		if len(output.Scales) > 0 || len(output.Chords) > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, "Tunings:")
		for _, t := range output.Tunings {
			fmt.Fprintf(w, "  %s: %s\n", t.Name, strings.Join(t.Notes, ", "))
		}
	}
	if len(output.Positions) > 0 {
		if len(output.Scales) > 0 || len(output.Chords) > 0 || len(output.Tunings) > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, "Positions:")
		for _, name := range output.Positions {
			fmt.Fprintf(w, "  %s\n", name)
		}
	}
}

func parseListArgs(args []string) (ListOptions, error) {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	opts := ListOptions{}

	fs.StringVar(&opts.Format, "format", "text", "Output format (text, json, yaml)")
	fs.StringVar(&opts.Format, "f", "text", "Output format (shorthand)")

	fs.Usage = func() {}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	if remaining := fs.Args(); len(remaining) > 0 {
		opts.Kind = strings.ToLower(remaining[0])
	}
	return opts, nil
}
