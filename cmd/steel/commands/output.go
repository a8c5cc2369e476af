package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/pedalsteel/steel-go/pkg/copedent"
	"github.com/pedalsteel/steel-go/pkg/neck"
	"github.com/pedalsteel/steel-go/pkg/render"
	"github.com/pedalsteel/steel-go/pkg/scan"
)

// ScanOutput is the structured form of a scan result.
type ScanOutput struct {
	Neck      string           `json:"neck" yaml:"neck"`
	Tuning    []string         `json:"tuning" yaml:"tuning"`
	Mode      string           `json:"mode" yaml:"mode"`
	Root      string           `json:"root" yaml:"root"`
	Name      string           `json:"name" yaml:"name"`
	Tones     []string         `json:"tones" yaml:"tones"`
	Matches   int              `json:"matches" yaml:"matches"`
	Voicings  int              `json:"voicings,omitempty" yaml:"voicings,omitempty"`
	Positions []PositionOutput `json:"positions" yaml:"positions"`
}

// PositionOutput is one catalog position's scan outcome.
type PositionOutput struct {
	Name     string          `json:"name" yaml:"name"`
	Controls []string        `json:"controls,omitempty" yaml:"controls,omitempty"`
	Delta    []int           `json:"delta" yaml:"delta"`
	Strings  []StringOutput  `json:"strings" yaml:"strings"`
	Voicings []VoicingOutput `json:"voicings,omitempty" yaml:"voicings,omitempty"`
}

// StringOutput lists one string's matching frets. String numbers are the
// player's, counted from 1 at the top.
type StringOutput struct {
	String int    `json:"string" yaml:"string"`
	Open   string `json:"open" yaml:"open"`
	Frets  []int  `json:"frets" yaml:"frets"`
}

// VoicingOutput is one complete chord voicing.
type VoicingOutput struct {
	Fret    int   `json:"fret" yaml:"fret"`
	Strings []int `json:"strings" yaml:"strings"`
}

func buildScanOutput(n *neck.Neck, res *scan.Result) ScanOutput {
	tones := make([]string, len(res.Tones))
	for i, c := range res.Tones {
		tones[i] = c.String()
	}

	output := ScanOutput{
		Neck:    n.Name(),
		Tuning:  n.Tuning().Notes(),
		Mode:    res.Mode.String(),
		Root:    res.Root.String(),
		Name:    res.Name,
		Tones:   tones,
		Matches: res.TotalMatches(),
	}
	if res.Mode == scan.ModeChord {
		output.Voicings = res.TotalVoicings()
	}

	for i := range res.Positions {
		pr := &res.Positions[i]

		pos := PositionOutput{
			Name:  pr.Position.Name,
			Delta: pr.Delta[:],
		}
		for _, ctrl := range pr.Position.Controls {
			pos.Controls = append(pos.Controls, ctrl.String())
		}

		for str := 0; str < copedent.NumStrings; str++ {
			so := StringOutput{
				String: str + 1,
				Open:   pr.Grid[str][0].Class.String(),
			}
			for fret := 0; fret < neck.NumFrets; fret++ {
				if pr.Grid[str][fret].Match {
					so.Frets = append(so.Frets, fret)
				}
			}
			pos.Strings = append(pos.Strings, so)
		}

		for _, v := range pr.Voicings {
			vo := VoicingOutput{Fret: v.Fret}
			for _, str := range v.Strings {
				vo.Strings = append(vo.Strings, str+1)
			}
			pos.Voicings = append(pos.Voicings, vo)
		}

		output.Positions = append(output.Positions, pos)
	}

	return output
}

// emitScan writes the scan result to stdout in the requested format.
func emitScan(stdout io.Writer, format string, n *neck.Neck, res *scan.Result) int {
	switch format {
	case "json":
		data, _ := json.MarshalIndent(buildScanOutput(n, res), "", "  ")
		fmt.Fprintln(stdout, string(data))
	case "yaml":
		data, _ := yaml.Marshal(buildScanOutput(n, res))
		fmt.Fprintln(stdout, string(data))
	default:
		render.Result(stdout, n, res)
	}
	return exitSuccess
}
