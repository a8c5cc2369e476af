package copedent

import "testing"

func TestControl_String(t *testing.T) {
	tests := []struct {
		control Control
		want    string
	}{
		{PedalA, "A"},
		{PedalB, "B"},
		{PedalC, "C"},
		{PedalD, "D"},
		{LeverLKL, "LKL"},
		{LeverLKV, "LKV"},
		{LeverLKR, "LKR"},
		{LeverRKL, "RKL"},
		{LeverRKR, "RKR"},
		{Control(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.control.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStandard_Changes(t *testing.T) {
	std := Standard()

	changes := std.Changes(PedalA)
	if len(changes) != 2 {
		t.Fatalf("PedalA has %d changes, want 2", len(changes))
	}
	if changes[0].String != 9 || changes[0].Semitones != 2 {
		t.Errorf("PedalA change[0] = %+v, want string 9 +2", changes[0])
	}
	if changes[1].String != 4 || changes[1].Semitones != 2 {
		t.Errorf("PedalA change[1] = %+v, want string 4 +2", changes[1])
	}
}

func TestStandard_ChangesAreCopies(t *testing.T) {
	std := Standard()

	changes := std.Changes(PedalB)
	changes[0].Semitones = 99

	again := std.Changes(PedalB)
	if again[0].Semitones != 1 {
		t.Errorf("mutating the returned slice leaked into the copedent: %+v", again[0])
	}
}

func TestEffectiveDelta(t *testing.T) {
	std := Standard()

	tests := []struct {
		name     string
		position Position
		want     [NumStrings]int
	}{
		{
			name:     "open is all zeros",
			position: Open(),
			want:     [NumStrings]int{},
		},
		{
			name:     "pedal A",
			position: NewPosition(PedalA),
			want:     [NumStrings]int{0, 0, 0, 0, 2, 0, 0, 0, 0, 2},
		},
		{
			name:     "pedal B",
			position: NewPosition(PedalB),
			want:     [NumStrings]int{0, 0, 1, 0, 0, 1, 0, 0, 0, 0},
		},
		{
			name:     "A and B combine",
			position: NewPosition(PedalA, PedalB),
			want:     [NumStrings]int{0, 0, 1, 0, 2, 1, 0, 0, 0, 2},
		},
		{
			name:     "lowering lever",
			position: NewPosition(LeverRKL),
			want:     [NumStrings]int{-1, 0, 0, 0, 0, -2, 0, 0, 0, 0},
		},
		{
			name:     "raise and lower on one string",
			position: NewPosition(PedalA, LeverLKV),
			want:     [NumStrings]int{0, 0, 0, 0, 1, 0, 0, 0, 0, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := std.EffectiveDelta(tt.position); got != tt.want {
				t.Errorf("EffectiveDelta(%v) = %v, want %v", tt.position, got, tt.want)
			}
		})
	}
}

func TestEffectiveDelta_OrderIndependent(t *testing.T) {
	std := Standard()

	ab := std.EffectiveDelta(Position{Controls: []Control{PedalA, PedalB}})
	ba := std.EffectiveDelta(Position{Controls: []Control{PedalB, PedalA}})
	if ab != ba {
		t.Errorf("A,B = %v but B,A = %v", ab, ba)
	}
}

func TestEffectiveDelta_OverlappingControls(t *testing.T) {
	std := Standard()

	// Pedals A and C both raise string 5 (index 4) a whole tone each.
	delta := std.EffectiveDelta(NewPosition(PedalA, PedalC))
	if delta[4] != 4 {
		t.Errorf("string index 4 delta = %d, want 4", delta[4])
	}
}
