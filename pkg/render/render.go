// Package render writes tunings, copedent charts, and scan results as
// fixed-width text for terminal display.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pedalsteel/steel-go/pkg/copedent"
	"github.com/pedalsteel/steel-go/pkg/neck"
	"github.com/pedalsteel/steel-go/pkg/pitch"
	"github.com/pedalsteel/steel-go/pkg/scan"
)

// emptyCell marks a grid cell whose pitch is not in the requested tone set.
const emptyCell = "--"

// Tuning writes one line per string: the player's string number and the
// open note, top string first.
func Tuning(w io.Writer, t neck.Tuning) {
	for i, class := range t {
		fmt.Fprintf(w, "%2d %s\n", i+1, class)
	}
}

// CopedentChart writes the copedent as a chart: one column per control,
// one row per string, with raises shown as + and ++ and lowers as - and --.
func CopedentChart(w io.Writer, c *copedent.Copedent) {
	controls := c.Controls()

	fmt.Fprintf(w, "%4s", "")
	for _, ctrl := range controls {
		fmt.Fprintf(w, "%4s", ctrl)
	}
	fmt.Fprintln(w)

	for str := 0; str < copedent.NumStrings; str++ {
		fmt.Fprintf(w, "%4d", str+1)
		for _, ctrl := range controls {
			symbol := ""
			for _, change := range c.Changes(ctrl) {
				if change.String == str {
					symbol = changeSymbol(change.Semitones)
				}
			}
			fmt.Fprintf(w, "%4s", symbol)
		}
		fmt.Fprintln(w)
	}
}

// changeSymbol maps a semitone change to its chart symbol.
func changeSymbol(semitones int) string {
	switch semitones {
	case 2:
		return "++"
	case 1:
		return "+"
	case -1:
		return "-"
	case -2:
		return "--"
	default:
		return ""
	}
}

// Result writes a full scan: a header describing the query, then one grid
// per catalog position. Chord scans additionally get a voicings-only grid
// and the voicing string lists.
func Result(w io.Writer, n *neck.Neck, res *scan.Result) {
	fmt.Fprintf(w, "Neck: %s\n", n.Name())
	fmt.Fprintf(w, "Tuning: %s\n", n.Tuning())
	switch res.Mode {
	case scan.ModeChord:
		fmt.Fprintf(w, "Chord: %s %s\n", res.Root, res.Name)
	default:
		fmt.Fprintf(w, "Scale: %s %s\n", res.Root, res.Name)
	}
	fmt.Fprintf(w, "Tones: %s\n", joinClasses(res.Tones))

	for i := range res.Positions {
		pr := &res.Positions[i]
		fmt.Fprintln(w)
		if res.Mode == scan.ModeChord {
			fmt.Fprintf(w, " %s (all chord tones)\n", pr.Position.Name)
			grid(w, &pr.Grid, nil)
			fmt.Fprintf(w, " %s (complete voicings)\n", pr.Position.Name)
			grid(w, &pr.Grid, voicingFrets(pr.Voicings))
			voicingLines(w, pr.Voicings)
		} else {
			fmt.Fprintf(w, " %s\n", pr.Position.Name)
			grid(w, &pr.Grid, nil)
		}
	}
}

// grid writes the fret header and one row per string. Matched cells show
// the note name, others the empty placeholder. When onlyFrets is non-nil,
// matches outside it are blanked too.
func grid(w io.Writer, g *scan.Grid, onlyFrets map[int]bool) {
	for fret := 0; fret < neck.NumFrets; fret++ {
		fmt.Fprintf(w, "%2d ", fret)
	}
	fmt.Fprintln(w)

	for str := 0; str < copedent.NumStrings; str++ {
		for fret := 0; fret < neck.NumFrets; fret++ {
			cell := g[str][fret]
			show := cell.Match && (onlyFrets == nil || onlyFrets[fret])
			if show {
				fmt.Fprintf(w, "%3s", cell.Class)
			} else {
				fmt.Fprintf(w, "%3s", emptyCell)
			}
		}
		fmt.Fprintln(w)
	}
}

// voicingFrets collects the frets that have a complete voicing.
func voicingFrets(voicings []scan.Voicing) map[int]bool {
	frets := make(map[int]bool, len(voicings))
	for _, v := range voicings {
		frets[v.Fret] = true
	}
	return frets
}

// voicingLines writes one line per voicing with player string numbers.
func voicingLines(w io.Writer, voicings []scan.Voicing) {
	for _, v := range voicings {
		nums := make([]string, len(v.Strings))
		for i, str := range v.Strings {
			nums[i] = strconv.Itoa(str + 1)
		}
		fmt.Fprintf(w, " fret %d: strings %s\n", v.Fret, strings.Join(nums, ", "))
	}
}

// joinClasses joins note names with commas: "E, F#, G#".
func joinClasses(classes []pitch.Class) string {
	names := make([]string, len(classes))
	for i, c := range classes {
		names[i] = c.String()
	}
	return strings.Join(names, ", ")
}
