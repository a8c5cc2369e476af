package commands

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/pedalsteel/steel-go/pkg/copedent"
	"github.com/pedalsteel/steel-go/pkg/render"
)

// CopedentOptions configures the copedent command.
type CopedentOptions struct {
	Format string // text, json, yaml
}

// CopedentOutput is the structured form of a copedent.
type CopedentOutput struct {
	Name      string          `json:"name" yaml:"name"`
	Controls  []ControlOutput `json:"controls" yaml:"controls"`
	Positions []string        `json:"positions" yaml:"positions"`
}

// ControlOutput is one pedal or lever and its string changes.
type ControlOutput struct {
	Control string         `json:"control" yaml:"control"`
	Changes []ChangeOutput `json:"changes" yaml:"changes"`
}

// ChangeOutput is one string's semitone change under a control. String
// numbers are the player's, counted from 1 at the top.
type ChangeOutput struct {
	String    int `json:"string" yaml:"string"`
	Semitones int `json:"semitones" yaml:"semitones"`
}

// RunCopedent runs the copedent command: it prints the standard
// copedent as a chart, or as structured data.
func RunCopedent(args []string, stdout, stderr io.Writer) int {
	opts, err := parseCopedentArgs(args)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	c := copedent.Standard()

	switch opts.Format {
	case "json":
		data, _ := json.MarshalIndent(buildCopedentOutput(c), "", "  ")
		fmt.Fprintln(stdout, string(data))
	case "yaml":
		data, _ := yaml.Marshal(buildCopedentOutput(c))
		fmt.Fprintln(stdout, string(data))
	default:
		fmt.Fprintf(stdout, "Copedent: %s\n", c.Name())
		render.CopedentChart(stdout, c)
	}

	return exitSuccess
}

func buildCopedentOutput(c *copedent.Copedent) CopedentOutput {
	output := CopedentOutput{Name: c.Name()}

	for _, ctrl := range c.Controls() {
		co := ControlOutput{Control: ctrl.String()}
		for _, change := range c.Changes(ctrl) {
			co.Changes = append(co.Changes, ChangeOutput{
				String:    change.String + 1,
				Semitones: change.Semitones,
			})
		}
		output.Controls = append(output.Controls, co)
	}

	for _, pos := range c.Positions() {
		output.Positions = append(output.Positions, pos.Name)
	}

	return output
}

func parseCopedentArgs(args []string) (CopedentOptions, error) {
	fs := flag.NewFlagSet("copedent", flag.ContinueOnError)
	opts := CopedentOptions{}

	fs.StringVar(&opts.Format, "format", "text", "Output format (text, json, yaml)")
	fs.StringVar(&opts.Format, "f", "text", "Output format (shorthand)")

	fs.Usage = func() {}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	return opts, nil
}
