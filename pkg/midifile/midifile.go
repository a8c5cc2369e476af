// Package midifile renders scan results to Standard MIDI Files.
package midifile

import (
	"errors"
	"fmt"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/pedalsteel/steel-go/pkg/pitch"
	"github.com/pedalsteel/steel-go/pkg/scan"
)

// ErrNothingToRender indicates a result with no renderable content.
var ErrNothingToRender = errors.New("nothing to render")

const (
	// DefaultTempo is the playback tempo in beats per minute.
	DefaultTempo = 120.0

	// DefaultProgram is the General MIDI acoustic guitar (steel) voice.
	DefaultProgram = 25

	// DefaultMaxVoicings caps the chord voicings written to one file.
	DefaultMaxVoicings = 8

	channel    = 0
	velocity   = 96
	resolution = 960
)

// Config controls the rendered file. Zero values select the defaults.
type Config struct {
	// Tempo is the playback tempo in beats per minute.
	Tempo float64

	// Program is the General MIDI program number.
	Program uint8

	// MaxVoicings caps how many chord voicings are written, in catalog
	// order. Ignored in scale mode.
	MaxVoicings int
}

func (c Config) withDefaults() Config {
	if c.Tempo <= 0 {
		c.Tempo = DefaultTempo
	}
	if c.Program == 0 {
		c.Program = DefaultProgram
	}
	if c.MaxVoicings <= 0 {
		c.MaxVoicings = DefaultMaxVoicings
	}
	return c
}

// Render builds a single-track SMF from a scan result.
//
// Scale results become the ascending scale from the root, closed by the
// octave root, in quarter notes. Chord results become one bar per
// complete voicing: the voicing arpeggiated low to high in eighth
// notes, then sustained as a block chord.
//
// Pitch classes carry no octave, so notes are placed from a reference
// octave upward (C4 = MIDI note 60).
func Render(res *scan.Result, cfg Config) (*smf.SMF, error) {
	if res == nil || len(res.Tones) == 0 {
		return nil, fmt.Errorf("%w: empty result", ErrNothingToRender)
	}
	cfg = cfg.withDefaults()

	clock := smf.MetricTicks(resolution)
	file := smf.New()
	file.TimeFormat = clock

	var track smf.Track
	track.Add(0, smf.MetaTrackSequenceName(fmt.Sprintf("%s %s", res.Root, res.Name)))
	track.Add(0, smf.MetaTempo(cfg.Tempo))
	track.Add(0, smf.MetaMeter(4, 4))
	track.Add(0, midi.ProgramChange(channel, cfg.Program))

	switch res.Mode {
	case scan.ModeScale:
		writeScale(&track, clock, res)
	case scan.ModeChord:
		if err := writeVoicings(&track, clock, res, cfg.MaxVoicings); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: unknown mode %s", ErrNothingToRender, res.Mode)
	}

	track.Close(0)
	file.Add(track)
	return file, nil
}

// WriteFile renders the result and writes it to path.
func WriteFile(path string, res *scan.Result, cfg Config) error {
	file, err := Render(res, cfg)
	if err != nil {
		return err
	}
	return file.WriteFile(path)
}

func writeScale(track *smf.Track, clock smf.MetricTicks, res *scan.Result) {
	classes := append([]pitch.Class{}, res.Tones...)
	classes = append(classes, res.Root)

	quarter := clock.Ticks4th()
	for _, note := range ascendingNotes(classes, 4) {
		track.Add(0, midi.NoteOn(channel, note, velocity))
		track.Add(quarter, midi.NoteOff(channel, note))
	}
}

func writeVoicings(track *smf.Track, clock smf.MetricTicks, res *scan.Result, max int) error {
	eighth := clock.Ticks8th()
	quarter := clock.Ticks4th()
	whole := 4 * quarter

	written := 0
	rest := uint32(0)
	for _, pr := range res.Positions {
		for _, v := range pr.Voicings {
			if written >= max {
				return nil
			}

			notes := voicingNotes(&pr.Grid, v)
			track.Add(rest, smf.MetaMarker(fmt.Sprintf("%s fret %d", pr.Position.Name, v.Fret)))

			// Arpeggio, low string to high.
			for _, note := range notes {
				track.Add(0, midi.NoteOn(channel, note, velocity))
				track.Add(eighth, midi.NoteOff(channel, note))
			}

			// Sustained block chord.
			for _, note := range notes {
				track.Add(0, midi.NoteOn(channel, note, velocity))
			}
			for i, note := range notes {
				delta := uint32(0)
				if i == 0 {
					delta = whole
				}
				track.Add(delta, midi.NoteOff(channel, note))
			}

			rest = quarter
			written++
		}
	}

	if written == 0 {
		return fmt.Errorf("%w: no complete voicings for %s %s", ErrNothingToRender, res.Root, res.Name)
	}
	return nil
}

// voicingNotes converts one voicing to MIDI notes, low string first,
// octaves rising with the strings.
func voicingNotes(g *scan.Grid, v scan.Voicing) []uint8 {
	classes := make([]pitch.Class, 0, len(v.Strings))
	for i := len(v.Strings) - 1; i >= 0; i-- {
		classes = append(classes, g[v.Strings[i]][v.Fret].Class)
	}
	return ascendingNotes(classes, 3)
}

// ascendingNotes places classes in rising octaves starting at
// startOctave, bumping the octave whenever the class value stops
// climbing.
func ascendingNotes(classes []pitch.Class, startOctave int) []uint8 {
	notes := make([]uint8, 0, len(classes))
	octave := startOctave
	var prev pitch.Class
	for i, c := range classes {
		if i > 0 && c <= prev {
			octave++
		}
		notes = append(notes, noteNumber(c, octave))
		prev = c
	}
	return notes
}

// noteNumber returns the MIDI note for class in octave, where C4 is 60.
func noteNumber(class pitch.Class, octave int) uint8 {
	return uint8(12*(octave+1) + int(class))
}
