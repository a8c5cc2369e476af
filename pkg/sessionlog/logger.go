package sessionlog

// Logger receives history events. Pass NoopLogger to disable recording.
type Logger interface {
	// Log records one scan event. Implementations must be safe for
	// concurrent use.
	Log(event Event)
}

// NoopLogger discards all events. Use when history recording is disabled.
// NoopLogger is safe for concurrent use and usable as a zero value.
type NoopLogger struct{}

// Log discards the event.
func (NoopLogger) Log(Event) {}

// Compile-time interface satisfaction check.
var _ Logger = NoopLogger{}
