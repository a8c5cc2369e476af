// Package pitch provides pitch-class arithmetic for the twelve-tone system.
package pitch

import (
	"errors"
	"fmt"
	"strings"
)

// Pitch errors.
var (
	ErrInvalidNoteName = errors.New("invalid note name")
)

// Class is a pitch class: one of the twelve chromatic notes with octave
// information discarded. Valid values are 0 (C) through 11 (B).
type Class uint8

// Named pitch classes.
const (
	C Class = iota
	CSharp
	D
	DSharp
	E
	F
	FSharp
	G
	GSharp
	A
	ASharp
	B
)

// names holds the canonical spelling for each class. Accidentals are
// always spelled sharp; Db prints as "C#".
var names = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// classByName maps accepted note spellings (upper-cased) to classes.
// Flat spellings resolve to their sharp equivalent.
var classByName = map[string]Class{
	"C":  C,
	"C#": CSharp,
	"DB": CSharp,
	"D":  D,
	"D#": DSharp,
	"EB": DSharp,
	"E":  E,
	"F":  F,
	"F#": FSharp,
	"GB": FSharp,
	"G":  G,
	"G#": GSharp,
	"AB": GSharp,
	"A":  A,
	"A#": ASharp,
	"BB": ASharp,
	"B":  B,
}

// Parse returns the pitch class for a note name such as "E", "f#", or "Bb".
// Matching is case-insensitive and ignores surrounding whitespace.
// Unrecognized names return ErrInvalidNoteName.
func Parse(name string) (Class, error) {
	c, ok := classByName[strings.ToUpper(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNoteName, name)
	}
	return c, nil
}

// Transpose returns the class shifted by the given number of semitones.
// Offsets may be negative or larger than an octave; the result always
// stays within 0..11.
func (c Class) Transpose(semitones int) Class {
	v := (int(c) + semitones) % 12
	if v < 0 {
		v += 12
	}
	return Class(v)
}

// String returns the canonical sharp-preferring name, e.g. "G#".
func (c Class) String() string {
	return names[int(c)%12]
}
