package sessionlog

import (
	"time"

	"github.com/google/uuid"
)

// Event is one recorded scan.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the scan ran (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// SessionID groups events from one invocation (UUID).
	SessionID string `cbor:"2,keyasint"`

	// Kind distinguishes scale scans from chord scans.
	Kind Kind `cbor:"3,keyasint"`

	// Query is the request as the user typed it, e.g. "E major".
	Query string `cbor:"4,keyasint"`

	// NeckName is the tuning's display name, if one was given.
	NeckName string `cbor:"5,keyasint,omitempty"`

	// Tuning is the comma-separated open-string note list.
	Tuning string `cbor:"6,keyasint"`

	// Root is the canonical root note name.
	Root string `cbor:"7,keyasint"`

	// Target is the catalog name of the scale or chord.
	Target string `cbor:"8,keyasint"`

	// Matches is the total number of matched grid cells.
	Matches int `cbor:"9,keyasint"`

	// Voicings is the total number of complete voicings (chord scans).
	Voicings int `cbor:"10,keyasint,omitempty"`
}

// Kind classifies the recorded scan.
type Kind uint8

const (
	// KindScale is a scale scan.
	KindScale Kind = 0
	// KindChord is a chord scan.
	KindChord Kind = 1
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindScale:
		return "SCALE"
	case KindChord:
		return "CHORD"
	default:
		return "UNKNOWN"
	}
}

// NewSessionID returns a fresh session identifier.
func NewSessionID() string {
	return uuid.New().String()
}
