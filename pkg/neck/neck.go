// Package neck models a pedal-steel neck: a ten-string tuning paired with
// a copedent, and the pitch arithmetic for any string, fret, and position.
package neck

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pedalsteel/steel-go/pkg/copedent"
	"github.com/pedalsteel/steel-go/pkg/pitch"
)

// Neck errors.
var (
	ErrWrongStringCount  = errors.New("wrong string count")
	ErrFretOutOfRange    = errors.New("fret out of range")
	ErrStringOutOfRange  = errors.New("string out of range")
	ErrUnknownTuningName = errors.New("unknown tuning name")
)

// NumFrets is the number of fret positions considered, fret 0 (open bar)
// through NumFrets-1.
const NumFrets = 12

// Tuning is an immutable sequence of open-string pitches, listed from
// string 1 (highest) to string 10 (lowest).
type Tuning [copedent.NumStrings]pitch.Class

// NewTuning builds a tuning from one note name per string. It returns
// ErrWrongStringCount unless exactly ten notes are given, and the first
// note-name parse error otherwise.
func NewTuning(notes []string) (Tuning, error) {
	var t Tuning
	if len(notes) != copedent.NumStrings {
		return t, fmt.Errorf("%w: got %d notes, want %d", ErrWrongStringCount, len(notes), copedent.NumStrings)
	}
	for i, note := range notes {
		c, err := pitch.Parse(note)
		if err != nil {
			return t, fmt.Errorf("string %d: %w", i+1, err)
		}
		t[i] = c
	}
	return t, nil
}

// ParseTuning builds a tuning from a comma-separated note list such as
// "F#, D#, G#, E, B, G#, F#, E, D, B".
func ParseTuning(s string) (Tuning, error) {
	parts := strings.Split(s, ",")
	notes := make([]string, len(parts))
	for i, p := range parts {
		notes[i] = strings.TrimSpace(p)
	}
	return NewTuning(notes)
}

// Notes returns the canonical note name of each string.
func (t Tuning) Notes() []string {
	out := make([]string, len(t))
	for i, c := range t {
		out[i] = c.String()
	}
	return out
}

// String returns the tuning as a comma-separated note list.
func (t Tuning) String() string {
	return strings.Join(t.Notes(), ", ")
}

// Neck pairs a named tuning with a copedent.
type Neck struct {
	name   string
	tuning Tuning
	coped  *copedent.Copedent
}

// New builds a neck. The name is a display label such as "E9".
func New(name string, t Tuning, c *copedent.Copedent) *Neck {
	return &Neck{name: name, tuning: t, coped: c}
}

// Name returns the neck's display label.
func (n *Neck) Name() string {
	return n.name
}

// Tuning returns the open-string tuning.
func (n *Neck) Tuning() Tuning {
	return n.tuning
}

// Copedent returns the neck's copedent.
func (n *Neck) Copedent() *copedent.Copedent {
	return n.coped
}

// PitchAt returns the sounding pitch class of a string at a fret with the
// position's controls engaged: the open pitch shifted by the position's
// delta for that string plus the fret offset. The string index must be
// within 0..9 and the fret within 0..11.
func (n *Neck) PitchAt(p copedent.Position, str, fret int) (pitch.Class, error) {
	if str < 0 || str >= copedent.NumStrings {
		return 0, fmt.Errorf("%w: %d", ErrStringOutOfRange, str)
	}
	if fret < 0 || fret >= NumFrets {
		return 0, fmt.Errorf("%w: %d", ErrFretOutOfRange, fret)
	}
	delta := n.coped.EffectiveDelta(p)
	return n.tuning[str].Transpose(delta[str] + fret), nil
}
