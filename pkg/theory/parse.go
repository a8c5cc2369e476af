package theory

import (
	"fmt"
	"strings"

	"github.com/pedalsteel/steel-go/pkg/pitch"
)

// ParseScale parses a scale request of the form "ROOT NAME", e.g.
// "E major" or "f# harmonic minor". The first field must be a note name;
// the remainder resolves against the scale catalog.
func ParseScale(req string) (pitch.Class, Scale, error) {
	root, rest, err := splitRequest(req)
	if err != nil {
		return 0, Scale{}, err
	}
	scale, err := LookupScale(rest)
	if err != nil {
		return 0, Scale{}, err
	}
	return root, scale, nil
}

// ParseChord parses a chord request of the form "ROOT NAME", e.g.
// "E major" or "A dominant seventh".
func ParseChord(req string) (pitch.Class, Chord, error) {
	root, rest, err := splitRequest(req)
	if err != nil {
		return 0, Chord{}, err
	}
	chord, err := LookupChord(rest)
	if err != nil {
		return 0, Chord{}, err
	}
	return root, chord, nil
}

// splitRequest separates the leading note name from the quality name.
func splitRequest(req string) (pitch.Class, string, error) {
	fields := strings.Fields(req)
	if len(fields) == 0 {
		return 0, "", fmt.Errorf("%w: empty request", pitch.ErrInvalidNoteName)
	}
	root, err := pitch.Parse(fields[0])
	if err != nil {
		return 0, "", err
	}
	return root, strings.Join(fields[1:], " "), nil
}
