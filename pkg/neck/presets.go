package neck

import (
	"fmt"
	"strings"
)

// Preset is a built-in factory tuning.
type Preset struct {
	// Name is the preset's display name, e.g. "E9".
	Name string

	// Aliases are alternate names accepted by LookupPreset.
	Aliases []string

	// Notes are the open-string note names from string 1 down.
	Notes []string
}

// presets lists the built-in ten-string tunings in display order.
var presets = []Preset{
	{
		Name:    "E9",
		Aliases: []string{"Nashville", "E9th"},
		Notes:   []string{"F#", "D#", "G#", "E", "B", "G#", "F#", "E", "D", "B"},
	},
	{
		Name:    "C6",
		Aliases: []string{"C6th", "Texas"},
		Notes:   []string{"D", "E", "C", "A", "G", "E", "C", "A", "F", "C"},
	},
}

// Presets returns the built-in tunings in display order.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// LookupPreset resolves a preset by name or alias, case-insensitively.
// Unknown names return ErrUnknownTuningName.
func LookupPreset(name string) (Preset, error) {
	want := normalizePresetName(name)
	for _, p := range presets {
		if normalizePresetName(p.Name) == want {
			return p, nil
		}
		for _, alias := range p.Aliases {
			if normalizePresetName(alias) == want {
				return p, nil
			}
		}
	}
	return Preset{}, fmt.Errorf("%w: %q", ErrUnknownTuningName, name)
}

// Tuning returns the preset's parsed tuning.
func (p Preset) Tuning() (Tuning, error) {
	return NewTuning(p.Notes)
}

func normalizePresetName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
