package copedent

// NumStrings is the number of strings on the necks this package models.
const NumStrings = 10

// Control identifies a single pedal or knee lever.
type Control uint8

const (
	// PedalA raises both B strings (5 and 10) a whole tone.
	PedalA Control = iota

	// PedalB raises both G# strings (3 and 6) a half tone.
	PedalB

	// PedalC raises strings 4 and 5 a whole tone.
	PedalC

	// PedalD raises string 1 a whole tone.
	PedalD

	// LeverLKL raises both E strings (4 and 8) a half tone.
	LeverLKL

	// LeverLKV lowers string 5 a half tone.
	LeverLKV

	// LeverLKR lowers both E strings (4 and 8) a half tone.
	LeverLKR

	// LeverRKL lowers string 1 a half tone and string 6 a whole tone.
	LeverRKL

	// LeverRKR lowers strings 2 and 9 a half tone.
	LeverRKR
)

// String returns the control's chart label.
func (c Control) String() string {
	switch c {
	case PedalA:
		return "A"
	case PedalB:
		return "B"
	case PedalC:
		return "C"
	case PedalD:
		return "D"
	case LeverLKL:
		return "LKL"
	case LeverLKV:
		return "LKV"
	case LeverLKR:
		return "LKR"
	case LeverRKL:
		return "RKL"
	case LeverRKR:
		return "RKR"
	default:
		return "UNKNOWN"
	}
}

// Change is one string's pitch offset when a control is engaged.
type Change struct {
	// String is the 0-based string index. Player charts number strings
	// from 1 at the top; index 0 is string 1.
	String int

	// Semitones is the signed pitch offset.
	Semitones int
}

// Copedent is an immutable pedal and lever arrangement: the per-control
// string changes plus the curated position catalog built from them.
type Copedent struct {
	name     string
	controls []Control
	changes  map[Control][]Change
	catalog  []Position
}

// Standard returns the standard E9 copedent: pedals A through D and five
// knee levers, with the common Nashville grips as compound positions.
func Standard() *Copedent {
	c := &Copedent{
		name: "E9 Standard",
		controls: []Control{
			PedalA, PedalB, PedalC, PedalD,
			LeverLKL, LeverLKV, LeverLKR, LeverRKL, LeverRKR,
		},
		changes: map[Control][]Change{
			PedalA:   {{String: 9, Semitones: 2}, {String: 4, Semitones: 2}},
			PedalB:   {{String: 5, Semitones: 1}, {String: 2, Semitones: 1}},
			PedalC:   {{String: 4, Semitones: 2}, {String: 3, Semitones: 2}},
			PedalD:   {{String: 0, Semitones: 2}},
			LeverLKL: {{String: 7, Semitones: 1}, {String: 3, Semitones: 1}},
			LeverLKV: {{String: 4, Semitones: -1}},
			LeverLKR: {{String: 7, Semitones: -1}, {String: 3, Semitones: -1}},
			LeverRKL: {{String: 0, Semitones: -1}, {String: 5, Semitones: -2}},
			LeverRKR: {{String: 8, Semitones: -1}, {String: 1, Semitones: -1}},
		},
	}
	c.catalog = buildCatalog(c.controls, [][]Control{
		{PedalA, PedalB},
		{PedalB, PedalC},
		{PedalA, LeverLKL},
		{PedalB, LeverLKR},
	})
	return c
}

// Name returns the copedent's display name.
func (c *Copedent) Name() string {
	return c.name
}

// Controls returns every control in chart order.
func (c *Copedent) Controls() []Control {
	out := make([]Control, len(c.controls))
	copy(out, c.controls)
	return out
}

// Changes returns the string changes for a control, or nil if the control
// moves nothing.
func (c *Copedent) Changes(ctrl Control) []Change {
	changes := c.changes[ctrl]
	out := make([]Change, len(changes))
	copy(out, changes)
	return out
}

// Positions returns the curated position catalog in display order: Open
// first, then each single control in chart order, then the compound grips.
func (c *Copedent) Positions() []Position {
	out := make([]Position, len(c.catalog))
	copy(out, c.catalog)
	return out
}

// EffectiveDelta returns the per-string semitone offsets produced by
// engaging all of the position's controls at once. Offsets from separate
// controls add; the open position is all zeros.
func (c *Copedent) EffectiveDelta(p Position) [NumStrings]int {
	var delta [NumStrings]int
	for _, ctrl := range p.Controls {
		for _, change := range c.changes[ctrl] {
			delta[change.String] += change.Semitones
		}
	}
	return delta
}
