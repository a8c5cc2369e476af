package scan

import (
	"log/slog"
	"sync"

	"github.com/pedalsteel/steel-go/pkg/copedent"
	"github.com/pedalsteel/steel-go/pkg/neck"
	"github.com/pedalsteel/steel-go/pkg/pitch"
	"github.com/pedalsteel/steel-go/pkg/theory"
)

// Mode distinguishes scale scans from chord scans.
type Mode uint8

const (
	// ModeScale marks every scale tone on the neck.
	ModeScale Mode = iota

	// ModeChord marks chord tones and finds complete voicings.
	ModeChord
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeScale:
		return "SCALE"
	case ModeChord:
		return "CHORD"
	default:
		return "UNKNOWN"
	}
}

// Cell is one grid cell: the sounding pitch of a string at a fret, and
// whether it belongs to the requested tone set.
type Cell struct {
	Class pitch.Class
	Match bool
}

// Grid holds every cell of a position's neck: rows by string index from
// the top string, columns by fret.
type Grid [copedent.NumStrings][neck.NumFrets]Cell

// Voicing is a fret where one position sounds every requested chord tone.
type Voicing struct {
	// Fret is the bar position.
	Fret int

	// Strings lists the 0-based indexes of the strings sounding chord
	// tones at this fret, from the top string down.
	Strings []int
}

// PositionResult is the scan outcome for a single catalog position.
type PositionResult struct {
	// Position is the catalog entry that produced this grid.
	Position copedent.Position

	// Delta is the position's per-string semitone offset.
	Delta [copedent.NumStrings]int

	// Grid is the full neck with matches marked.
	Grid Grid

	// Voicings lists complete chord voicings in ascending fret order.
	// Always empty in scale mode.
	Voicings []Voicing
}

// Result is a complete scan across the position catalog.
type Result struct {
	// Mode is ModeScale or ModeChord.
	Mode Mode

	// Root is the requested root pitch.
	Root pitch.Class

	// Name is the catalog name of the requested scale or chord.
	Name string

	// Tones are the requested pitch classes in interval order.
	Tones []pitch.Class

	// Positions holds one entry per catalog position, in catalog order.
	Positions []PositionResult
}

// TotalMatches counts the matched cells across all positions.
func (r *Result) TotalMatches() int {
	var n int
	for _, p := range r.Positions {
		for str := 0; str < copedent.NumStrings; str++ {
			for fret := 0; fret < neck.NumFrets; fret++ {
				if p.Grid[str][fret].Match {
					n++
				}
			}
		}
	}
	return n
}

// TotalVoicings counts the complete voicings across all positions.
// Always zero in scale mode.
func (r *Result) TotalVoicings() int {
	var n int
	for _, p := range r.Positions {
		n += len(p.Voicings)
	}
	return n
}

// Config configures a Scanner.
type Config struct {
	// Parallel computes position grids concurrently. The result order
	// does not change.
	Parallel bool

	// Logger is the optional logger for debug output.
	// If nil, logging is disabled.
	Logger *slog.Logger
}

// Scanner scans a neck's position catalog.
type Scanner struct {
	neck     *neck.Neck
	parallel bool
	logger   *slog.Logger
}

// New creates a Scanner for the given neck.
func New(n *neck.Neck, cfg Config) *Scanner {
	return &Scanner{
		neck:     n,
		parallel: cfg.Parallel,
		logger:   cfg.Logger,
	}
}

// Scale scans every catalog position for the scale built on root.
func (s *Scanner) Scale(root pitch.Class, scale theory.Scale) *Result {
	res := &Result{
		Mode:  ModeScale,
		Root:  root,
		Name:  scale.Name,
		Tones: scale.Tones(root),
	}
	res.Positions = s.scanPositions(scale.Set(root), false)

	if s.logger != nil {
		s.logger.Debug("scale scan complete",
			"root", root.String(),
			"scale", scale.Name,
			"positions", len(res.Positions))
	}
	return res
}

// Chord scans every catalog position for the chord built on root and
// collects complete voicings per position and fret.
func (s *Scanner) Chord(root pitch.Class, chord theory.Chord) *Result {
	res := &Result{
		Mode:  ModeChord,
		Root:  root,
		Name:  chord.Name,
		Tones: chord.Tones(root),
	}
	res.Positions = s.scanPositions(chord.Set(root), true)

	if s.logger != nil {
		s.logger.Debug("chord scan complete",
			"root", root.String(),
			"chord", chord.Name,
			"positions", len(res.Positions),
			"voicings", res.TotalVoicings())
	}
	return res
}

// scanPositions produces one PositionResult per catalog position, in
// catalog order. When parallel mode is on, each position is computed in
// its own goroutine and written to its slot by index.
func (s *Scanner) scanPositions(tones pitch.Set, withVoicings bool) []PositionResult {
	catalog := s.neck.Copedent().Positions()
	results := make([]PositionResult, len(catalog))

	if !s.parallel {
		for i, pos := range catalog {
			results[i] = s.scanPosition(pos, tones, withVoicings)
		}
		return results
	}

	var wg sync.WaitGroup
	for i, pos := range catalog {
		wg.Add(1)
		go func(i int, pos copedent.Position) {
			defer wg.Done()
			results[i] = s.scanPosition(pos, tones, withVoicings)
		}(i, pos)
	}
	wg.Wait()
	return results
}

// scanPosition fills one position's grid and, in chord mode, its voicings.
func (s *Scanner) scanPosition(pos copedent.Position, tones pitch.Set, withVoicings bool) PositionResult {
	res := PositionResult{
		Position: pos,
		Delta:    s.neck.Copedent().EffectiveDelta(pos),
	}

	tuning := s.neck.Tuning()
	for str := 0; str < copedent.NumStrings; str++ {
		base := tuning[str].Transpose(res.Delta[str])
		for fret := 0; fret < neck.NumFrets; fret++ {
			class := base.Transpose(fret)
			res.Grid[str][fret] = Cell{Class: class, Match: tones.Has(class)}
		}
	}

	if withVoicings {
		res.Voicings = findVoicings(&res.Grid, tones)
	}
	return res
}

// findVoicings returns the frets whose matched strings cover the whole
// tone set, ascending.
func findVoicings(g *Grid, tones pitch.Set) []Voicing {
	var voicings []Voicing
	for fret := 0; fret < neck.NumFrets; fret++ {
		var sounded pitch.Set
		var strs []int
		for str := 0; str < copedent.NumStrings; str++ {
			cell := g[str][fret]
			if cell.Match {
				sounded = sounded.With(cell.Class)
				strs = append(strs, str)
			}
		}
		if sounded.ContainsAll(tones) {
			voicings = append(voicings, Voicing{Fret: fret, Strings: strs})
		}
	}
	return voicings
}
