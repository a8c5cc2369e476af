package midifile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/pedalsteel/steel-go/pkg/copedent"
	"github.com/pedalsteel/steel-go/pkg/midifile"
	"github.com/pedalsteel/steel-go/pkg/neck"
	"github.com/pedalsteel/steel-go/pkg/scan"
	"github.com/pedalsteel/steel-go/pkg/theory"
)

func newE9Scanner(t *testing.T) *scan.Scanner {
	t.Helper()
	tuning, err := neck.ParseTuning("F#, D#, G#, E, B, G#, F#, E, D, B")
	require.NoError(t, err)
	return scan.New(neck.New("E9", tuning, copedent.Standard()), scan.Config{})
}

// noteOnKeys collects the key of every note-on event in track order.
func noteOnKeys(track smf.Track) []uint8 {
	var keys []uint8
	for _, ev := range track {
		raw := []byte(ev.Message)
		if len(raw) == 3 && raw[0] == 0x90 && raw[2] > 0 {
			keys = append(keys, raw[1])
		}
	}
	return keys
}

func countMarkers(track smf.Track) int {
	count := 0
	for _, ev := range track {
		raw := []byte(ev.Message)
		if len(raw) >= 2 && raw[0] == 0xFF && raw[1] == 0x06 {
			count++
		}
	}
	return count
}

func hasMessagePrefix(track smf.Track, prefix []byte) bool {
	for _, ev := range track {
		raw := []byte(ev.Message)
		if len(raw) < len(prefix) {
			continue
		}
		match := true
		for i, b := range prefix {
			if raw[i] != b {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

func TestRender_Scale(t *testing.T) {
	s := newE9Scanner(t)
	root, scale, err := theory.ParseScale("E major")
	require.NoError(t, err)

	file, err := midifile.Render(s.Scale(root, scale), midifile.Config{})
	require.NoError(t, err)
	require.Len(t, file.Tracks, 1)

	track := file.Tracks[0]

	// E major ascending from E4, closed by E5.
	assert.Equal(t, []uint8{64, 66, 68, 69, 71, 73, 75, 76}, noteOnKeys(track))

	// Tempo meta and the default steel guitar program are written.
	assert.True(t, hasMessagePrefix(track, []byte{0xFF, 0x51}))
	assert.True(t, hasMessagePrefix(track, []byte{0xC0, midifile.DefaultProgram}))
}

func TestRender_ScaleWrapsOctave(t *testing.T) {
	s := newE9Scanner(t)
	root, scale, err := theory.ParseScale("A pentatonic minor")
	require.NoError(t, err)

	file, err := midifile.Render(s.Scale(root, scale), midifile.Config{})
	require.NoError(t, err)

	// A4 C5 D5 E5 G5 A5: the octave bumps when the class wraps past B.
	assert.Equal(t, []uint8{69, 72, 74, 76, 79, 81}, noteOnKeys(file.Tracks[0]))
}

func TestRender_ChordVoicing(t *testing.T) {
	s := newE9Scanner(t)
	root, chord, err := theory.ParseChord("E major")
	require.NoError(t, err)

	file, err := midifile.Render(s.Chord(root, chord), midifile.Config{MaxVoicings: 1})
	require.NoError(t, err)

	track := file.Tracks[0]
	assert.Equal(t, 1, countMarkers(track))

	// The open fret 0 voicing, strings 10 up to 3, arpeggiated then
	// restruck as a block chord.
	keys := noteOnKeys(track)
	require.Len(t, keys, 12)
	voicing := []uint8{59, 64, 68, 71, 76, 80}
	assert.Equal(t, voicing, keys[:6])
	assert.Equal(t, voicing, keys[6:])
}

func TestRender_ChordCapsVoicings(t *testing.T) {
	s := newE9Scanner(t)
	root, chord, err := theory.ParseChord("E major")
	require.NoError(t, err)

	res := s.Chord(root, chord)
	require.Greater(t, res.TotalVoicings(), 2)

	file, err := midifile.Render(res, midifile.Config{MaxVoicings: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, countMarkers(file.Tracks[0]))

	file, err = midifile.Render(res, midifile.Config{})
	require.NoError(t, err)

	want := res.TotalVoicings()
	if want > midifile.DefaultMaxVoicings {
		want = midifile.DefaultMaxVoicings
	}
	assert.Equal(t, want, countMarkers(file.Tracks[0]))
}

func TestRender_NoVoicings(t *testing.T) {
	s := newE9Scanner(t)
	root, chord, err := theory.ParseChord("E dom13")
	require.NoError(t, err)

	res := s.Chord(root, chord)
	require.Zero(t, res.TotalVoicings())

	_, err = midifile.Render(res, midifile.Config{})
	assert.ErrorIs(t, err, midifile.ErrNothingToRender)
}

func TestRender_NilResult(t *testing.T) {
	_, err := midifile.Render(nil, midifile.Config{})
	assert.ErrorIs(t, err, midifile.ErrNothingToRender)
}

func TestWriteFile(t *testing.T) {
	s := newE9Scanner(t)
	root, scale, err := theory.ParseScale("G blues")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "scale.mid")
	require.NoError(t, midifile.WriteFile(path, s.Scale(root, scale), midifile.Config{}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Greater(t, len(data), 14)
	assert.Equal(t, "MThd", string(data[:4]))
}
