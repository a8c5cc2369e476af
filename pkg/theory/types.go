// Package theory provides the scale and chord catalogs and the request
// parsing that turns strings like "E major" or "f# harmonic minor" into a
// root pitch class plus a catalog definition.
package theory

import (
	"errors"

	"github.com/pedalsteel/steel-go/pkg/pitch"
)

// Catalog errors.
var (
	ErrUnknownScaleName = errors.New("unknown scale name")
	ErrUnknownChordName = errors.New("unknown chord name")
)

// Scale is a named scale defined by its semitone intervals from the root.
type Scale struct {
	// Name is the canonical catalog name, e.g. "Harmonic Minor".
	Name string

	// Aliases are alternate names accepted by LookupScale.
	Aliases []string

	// Intervals are ascending semitone offsets from the root, starting at 0.
	Intervals []int
}

// Tones returns the pitch classes of the scale built on the given root,
// in interval order with duplicates removed.
func (s Scale) Tones(root pitch.Class) []pitch.Class {
	return tones(root, s.Intervals)
}

// Set returns the scale tones on the given root as a pitch-class set.
func (s Scale) Set(root pitch.Class) pitch.Set {
	return toneSet(root, s.Intervals)
}

// Chord is a named chord defined by its semitone intervals from the root.
// Extended chords keep their compound intervals (a ninth is 14, not 2);
// pitch-class arithmetic folds them into the octave where needed.
type Chord struct {
	// Name is the canonical catalog name, e.g. "Dominant Seventh".
	Name string

	// Aliases are alternate names accepted by LookupChord.
	Aliases []string

	// Intervals are ascending semitone offsets from the root, starting at 0.
	Intervals []int
}

// Tones returns the pitch classes of the chord built on the given root,
// in interval order with duplicates removed.
func (c Chord) Tones(root pitch.Class) []pitch.Class {
	return tones(root, c.Intervals)
}

// Set returns the chord tones on the given root as a pitch-class set.
func (c Chord) Set(root pitch.Class) pitch.Set {
	return toneSet(root, c.Intervals)
}

func tones(root pitch.Class, intervals []int) []pitch.Class {
	out := make([]pitch.Class, 0, len(intervals))
	var seen pitch.Set
	for _, iv := range intervals {
		c := root.Transpose(iv)
		if seen.Has(c) {
			continue
		}
		seen = seen.With(c)
		out = append(out, c)
	}
	return out
}

func toneSet(root pitch.Class, intervals []int) pitch.Set {
	var s pitch.Set
	for _, iv := range intervals {
		s = s.With(root.Transpose(iv))
	}
	return s
}
