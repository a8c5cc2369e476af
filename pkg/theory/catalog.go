package theory

import (
	"fmt"
	"strings"
)

// scaleCatalog lists every known scale in display order.
var scaleCatalog = []Scale{
	{Name: "Major", Aliases: []string{"Ionian"}, Intervals: []int{0, 2, 4, 5, 7, 9, 11}},
	{Name: "Minor", Aliases: []string{"Aeolian", "Natural Minor"}, Intervals: []int{0, 2, 3, 5, 7, 8, 10}},
	{Name: "Dorian", Intervals: []int{0, 2, 3, 5, 7, 9, 10}},
	{Name: "Phrygian", Intervals: []int{0, 1, 3, 5, 7, 8, 10}},
	{Name: "Lydian", Intervals: []int{0, 2, 4, 6, 7, 9, 11}},
	{Name: "Mixolydian", Intervals: []int{0, 2, 4, 5, 7, 9, 10}},
	{Name: "Locrian", Intervals: []int{0, 1, 3, 5, 6, 8, 10}},
	{Name: "Harmonic Minor", Intervals: []int{0, 2, 3, 5, 7, 8, 11}},
	{Name: "Melodic Minor", Intervals: []int{0, 2, 3, 5, 7, 9, 11}},
	{Name: "Pentatonic Major", Aliases: []string{"Major Pentatonic"}, Intervals: []int{0, 2, 4, 7, 9}},
	{Name: "Pentatonic Minor", Aliases: []string{"Minor Pentatonic"}, Intervals: []int{0, 3, 5, 7, 10}},
	{Name: "Blues", Intervals: []int{0, 3, 5, 6, 7, 10}},
	{Name: "Chromatic", Intervals: []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}},
	{Name: "Whole Tone", Intervals: []int{0, 2, 4, 6, 8, 10}},
}

// chordCatalog lists every known chord in display order.
var chordCatalog = []Chord{
	{Name: "Major Triad", Aliases: []string{"Major", "Maj"}, Intervals: []int{0, 4, 7}},
	{Name: "Minor Triad", Aliases: []string{"Minor", "Min"}, Intervals: []int{0, 3, 7}},
	{Name: "Suspended2 Triad", Aliases: []string{"Sus2"}, Intervals: []int{0, 2, 7}},
	{Name: "Suspended4 Triad", Aliases: []string{"Sus4"}, Intervals: []int{0, 5, 7}},
	{Name: "Augmented Triad", Aliases: []string{"Augmented", "Aug"}, Intervals: []int{0, 4, 8}},
	{Name: "Diminished Triad", Aliases: []string{"Diminished", "Dim"}, Intervals: []int{0, 3, 6}},
	{Name: "Major Seventh", Aliases: []string{"Maj7"}, Intervals: []int{0, 4, 7, 11}},
	{Name: "Minor Seventh", Aliases: []string{"Min7", "M7"}, Intervals: []int{0, 3, 7, 10}},
	{Name: "Augmented Seventh", Aliases: []string{"Aug7"}, Intervals: []int{0, 4, 8, 10}},
	{Name: "Augmented Major Seventh", Aliases: []string{"AugMaj7"}, Intervals: []int{0, 4, 8, 11}},
	{Name: "Diminished Seventh", Aliases: []string{"Dim7"}, Intervals: []int{0, 3, 6, 9}},
	{Name: "Half Diminished Seventh", Aliases: []string{"M7b5"}, Intervals: []int{0, 3, 6, 10}},
	{Name: "Minor Major Seventh", Aliases: []string{"MinMaj7"}, Intervals: []int{0, 3, 7, 11}},
	{Name: "Dominant Seventh", Aliases: []string{"Dominant", "Dom7", "7"}, Intervals: []int{0, 4, 7, 10}},
	{Name: "Dominant Ninth", Aliases: []string{"Dom9", "9"}, Intervals: []int{0, 4, 7, 10, 14}},
	{Name: "Major Ninth", Aliases: []string{"Maj9"}, Intervals: []int{0, 4, 7, 11, 14}},
	{Name: "Dominant Eleventh", Aliases: []string{"Dom11", "11"}, Intervals: []int{0, 4, 7, 10, 14, 17}},
	{Name: "Major Eleventh", Aliases: []string{"Maj11"}, Intervals: []int{0, 4, 7, 11, 14, 17}},
	{Name: "Minor Eleventh", Aliases: []string{"Min11", "M11"}, Intervals: []int{0, 3, 7, 10, 14, 17}},
	{Name: "Dominant Thirteenth", Aliases: []string{"Dom13", "13"}, Intervals: []int{0, 4, 7, 10, 14, 17, 21}},
	{Name: "Major Thirteenth", Aliases: []string{"Maj13"}, Intervals: []int{0, 4, 7, 11, 14, 17, 21}},
	{Name: "Minor Thirteenth", Aliases: []string{"Min13", "M13"}, Intervals: []int{0, 3, 7, 10, 14, 17, 21}},
}

// Scales returns the scale catalog in display order.
// The returned slice is a copy; catalog entries share their interval slices
// and must not be mutated.
func Scales() []Scale {
	out := make([]Scale, len(scaleCatalog))
	copy(out, scaleCatalog)
	return out
}

// Chords returns the chord catalog in display order.
func Chords() []Chord {
	out := make([]Chord, len(chordCatalog))
	copy(out, chordCatalog)
	return out
}

// normalizeName folds case and collapses interior whitespace so that
// "harmonic  minor" and "Harmonic Minor" compare equal.
func normalizeName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// LookupScale resolves a scale name or alias, case-insensitively.
// Unrecognized names return ErrUnknownScaleName.
func LookupScale(name string) (Scale, error) {
	want := normalizeName(name)
	for _, s := range scaleCatalog {
		if normalizeName(s.Name) == want {
			return s, nil
		}
		for _, alias := range s.Aliases {
			if normalizeName(alias) == want {
				return s, nil
			}
		}
	}
	return Scale{}, fmt.Errorf("%w: %q", ErrUnknownScaleName, name)
}

// LookupChord resolves a chord name or alias, case-insensitively.
// Unrecognized names return ErrUnknownChordName.
func LookupChord(name string) (Chord, error) {
	want := normalizeName(name)
	for _, c := range chordCatalog {
		if normalizeName(c.Name) == want {
			return c, nil
		}
		for _, alias := range c.Aliases {
			if normalizeName(alias) == want {
				return c, nil
			}
		}
	}
	return Chord{}, fmt.Errorf("%w: %q", ErrUnknownChordName, name)
}
