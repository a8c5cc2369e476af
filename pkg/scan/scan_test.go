package scan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pedalsteel/steel-go/pkg/copedent"
	"github.com/pedalsteel/steel-go/pkg/neck"
	"github.com/pedalsteel/steel-go/pkg/pitch"
	"github.com/pedalsteel/steel-go/pkg/scan"
	"github.com/pedalsteel/steel-go/pkg/theory"
)

func newE9Scanner(t *testing.T, cfg scan.Config) *scan.Scanner {
	t.Helper()
	tuning, err := neck.ParseTuning("F#, D#, G#, E, B, G#, F#, E, D, B")
	require.NoError(t, err)
	return scan.New(neck.New("E9", tuning, copedent.Standard()), cfg)
}

func TestMode_String(t *testing.T) {
	assert.Equal(t, "SCALE", scan.ModeScale.String())
	assert.Equal(t, "CHORD", scan.ModeChord.String())
	assert.Equal(t, "UNKNOWN", scan.Mode(9).String())
}

func TestScale_CoversCatalog(t *testing.T) {
	s := newE9Scanner(t, scan.Config{})
	root, scale, err := theory.ParseScale("E major")
	require.NoError(t, err)

	res := s.Scale(root, scale)

	assert.Equal(t, scan.ModeScale, res.Mode)
	assert.Equal(t, pitch.E, res.Root)
	assert.Equal(t, "Major", res.Name)

	catalog := copedent.Standard().Positions()
	require.Len(t, res.Positions, len(catalog))
	for i, pr := range res.Positions {
		assert.Equal(t, catalog[i].Name, pr.Position.Name, "position %d", i)
	}
}

func TestScale_OpenGridMatches(t *testing.T) {
	s := newE9Scanner(t, scan.Config{})
	root, scale, err := theory.ParseScale("E major")
	require.NoError(t, err)

	res := s.Scale(root, scale)
	open := res.Positions[0]
	require.True(t, open.Position.IsOpen())

	// String 4 (index 3) is an open E; its scale frets are fixed.
	wantFrets := map[int]bool{0: true, 2: true, 4: true, 5: true, 7: true, 9: true, 11: true}
	for fret := 0; fret < neck.NumFrets; fret++ {
		cell := open.Grid[3][fret]
		assert.Equal(t, wantFrets[fret], cell.Match, "fret %d", fret)
	}

	// Fret 0 on an open position sounds the raw tuning.
	assert.Equal(t, pitch.FSharp, open.Grid[0][0].Class)
	assert.Equal(t, pitch.B, open.Grid[9][0].Class)
}

func TestScale_MatchCountPerPosition(t *testing.T) {
	s := newE9Scanner(t, scan.Config{})

	// Twelve chromatic frets sound each class exactly once per string, so
	// every position matches len(tones) cells per string.
	tests := []struct {
		req       string
		wantCount int
	}{
		{"E major", 7 * copedent.NumStrings},
		{"C whole tone", 6 * copedent.NumStrings},
		{"G pentatonic minor", 5 * copedent.NumStrings},
		{"A chromatic", 12 * copedent.NumStrings},
	}

	for _, tt := range tests {
		t.Run(tt.req, func(t *testing.T) {
			root, scale, err := theory.ParseScale(tt.req)
			require.NoError(t, err)

			res := s.Scale(root, scale)
			for _, pr := range res.Positions {
				count := 0
				for str := 0; str < copedent.NumStrings; str++ {
					for fret := 0; fret < neck.NumFrets; fret++ {
						if pr.Grid[str][fret].Match {
							count++
						}
					}
				}
				assert.Equal(t, tt.wantCount, count, "position %s", pr.Position.Name)
			}
		})
	}
}

func TestScale_NoVoicings(t *testing.T) {
	s := newE9Scanner(t, scan.Config{})
	root, scale, err := theory.ParseScale("E major")
	require.NoError(t, err)

	res := s.Scale(root, scale)
	for _, pr := range res.Positions {
		assert.Empty(t, pr.Voicings, "position %s", pr.Position.Name)
	}
	assert.Zero(t, res.TotalVoicings())
}

func TestResult_Totals(t *testing.T) {
	s := newE9Scanner(t, scan.Config{})

	root, scale, err := theory.ParseScale("E major")
	require.NoError(t, err)
	res := s.Scale(root, scale)

	// 7 tones, 10 strings, 14 positions.
	assert.Equal(t, 7*copedent.NumStrings*len(res.Positions), res.TotalMatches())

	croot, chord, err := theory.ParseChord("E major")
	require.NoError(t, err)
	cres := s.Chord(croot, chord)

	want := 0
	for _, pr := range cres.Positions {
		want += len(pr.Voicings)
	}
	assert.Equal(t, want, cres.TotalVoicings())
	assert.Positive(t, cres.TotalVoicings())
}

func TestChord_OpenVoicing(t *testing.T) {
	s := newE9Scanner(t, scan.Config{})
	root, chord, err := theory.ParseChord("E major")
	require.NoError(t, err)

	res := s.Chord(root, chord)
	open := res.Positions[0]
	require.True(t, open.Position.IsOpen())

	// The E9 open strings sound an E major chord at fret 0, and again with
	// the bar at fret 5 on a different string group.
	require.Len(t, open.Voicings, 2)
	assert.Equal(t, 0, open.Voicings[0].Fret)
	assert.Equal(t, []int{2, 3, 4, 5, 7, 9}, open.Voicings[0].Strings)
	assert.Equal(t, 5, open.Voicings[1].Fret)
	assert.Equal(t, []int{0, 1, 4, 6, 9}, open.Voicings[1].Strings)
}

func TestChord_PedalVoicings(t *testing.T) {
	s := newE9Scanner(t, scan.Config{})
	root, chord, err := theory.ParseChord("A major")
	require.NoError(t, err)

	res := s.Chord(root, chord)

	byName := make(map[string]scan.PositionResult)
	for _, pr := range res.Positions {
		byName[pr.Position.Name] = pr
	}

	// Open strings give A major with the bar at fret 5.
	open := byName["Open"]
	require.NotEmpty(t, open.Voicings)
	assert.Equal(t, 5, open.Voicings[0].Fret)
	assert.Equal(t, []int{2, 3, 4, 5, 7, 9}, open.Voicings[0].Strings)

	// Pedals A+B at fret 0 are the classic A grip.
	ab := byName["A+B"]
	require.NotEmpty(t, ab.Voicings)
	assert.Equal(t, 0, ab.Voicings[0].Fret)
	assert.Equal(t, []int{2, 3, 4, 5, 7, 9}, ab.Voicings[0].Strings)

	// B+C at fret 0 reaches the same chord on fewer strings. Both
	// positions report it; voicings are never deduplicated across
	// positions.
	bc := byName["B+C"]
	require.NotEmpty(t, bc.Voicings)
	assert.Equal(t, 0, bc.Voicings[0].Fret)
	assert.Equal(t, []int{2, 4, 5, 7}, bc.Voicings[0].Strings)
}

func TestChord_VoicingsCoverAllTones(t *testing.T) {
	s := newE9Scanner(t, scan.Config{})

	for _, req := range []string{"E major", "A minor triad", "G dominant seventh", "C# m7"} {
		t.Run(req, func(t *testing.T) {
			root, chord, err := theory.ParseChord(req)
			require.NoError(t, err)

			res := s.Chord(root, chord)
			want := chord.Set(root)

			for _, pr := range res.Positions {
				for _, v := range pr.Voicings {
					var sounded pitch.Set
					for _, str := range v.Strings {
						cell := pr.Grid[str][v.Fret]
						assert.True(t, cell.Match, "position %s fret %d string %d", pr.Position.Name, v.Fret, str)
						sounded = sounded.With(cell.Class)
					}
					assert.True(t, sounded.ContainsAll(want),
						"position %s fret %d misses tones", pr.Position.Name, v.Fret)
				}
			}
		})
	}
}

func TestChord_VoicingsAscendByFret(t *testing.T) {
	s := newE9Scanner(t, scan.Config{})
	root, chord, err := theory.ParseChord("E major")
	require.NoError(t, err)

	res := s.Chord(root, chord)
	for _, pr := range res.Positions {
		for i := 1; i < len(pr.Voicings); i++ {
			assert.Less(t, pr.Voicings[i-1].Fret, pr.Voicings[i].Fret,
				"position %s", pr.Position.Name)
		}
	}
}

func TestChord_DeltaReported(t *testing.T) {
	s := newE9Scanner(t, scan.Config{})
	root, chord, err := theory.ParseChord("A major")
	require.NoError(t, err)

	res := s.Chord(root, chord)
	for _, pr := range res.Positions {
		if pr.Position.Name == "A+B" {
			assert.Equal(t, [copedent.NumStrings]int{0, 0, 1, 0, 2, 1, 0, 0, 0, 2}, pr.Delta)
			return
		}
	}
	t.Fatal("A+B position missing from results")
}

func TestParallel_SameResults(t *testing.T) {
	serial := newE9Scanner(t, scan.Config{})
	parallel := newE9Scanner(t, scan.Config{Parallel: true})

	root, scale, err := theory.ParseScale("F# harmonic minor")
	require.NoError(t, err)
	assert.Equal(t, serial.Scale(root, scale), parallel.Scale(root, scale))

	croot, chord, err := theory.ParseChord("Bb dominant seventh")
	require.NoError(t, err)
	assert.Equal(t, serial.Chord(croot, chord), parallel.Chord(croot, chord))
}
