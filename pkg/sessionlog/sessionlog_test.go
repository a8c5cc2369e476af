package sessionlog

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func testEvent(session string, kind Kind, target string) Event {
	return Event{
		Timestamp: time.Now(),
		SessionID: session,
		Kind:      kind,
		Query:     "e major",
		NeckName:  "E9",
		Tuning:    "F#, D#, G#, E, B, G#, F#, E, D, B",
		Root:      "E",
		Target:    target,
		Matches:   70,
	}
}

func TestKind_String(t *testing.T) {
	if KindScale.String() != "SCALE" {
		t.Errorf("KindScale = %q", KindScale.String())
	}
	if KindChord.String() != "CHORD" {
		t.Errorf("KindChord = %q", KindChord.String())
	}
	if Kind(7).String() != "UNKNOWN" {
		t.Errorf("Kind(7) = %q", Kind(7).String())
	}
}

func TestNewSessionID_Unique(t *testing.T) {
	a, b := NewSessionID(), NewSessionID()
	if a == b {
		t.Errorf("two session IDs are equal: %s", a)
	}
	if len(a) == 0 {
		t.Error("session ID is empty")
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	event := testEvent("session-1", KindChord, "Major Triad")
	event.Voicings = 9

	data, err := EncodeEvent(event)
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}

	decoded, err := DecodeEvent(data)
	if err != nil {
		t.Fatalf("DecodeEvent failed: %v", err)
	}

	if decoded.SessionID != event.SessionID {
		t.Errorf("SessionID: got %q, want %q", decoded.SessionID, event.SessionID)
	}
	if decoded.Kind != KindChord {
		t.Errorf("Kind: got %v, want %v", decoded.Kind, KindChord)
	}
	if decoded.Voicings != 9 {
		t.Errorf("Voicings: got %d, want 9", decoded.Voicings)
	}
	if !decoded.Timestamp.Equal(event.Timestamp) {
		t.Errorf("Timestamp: got %v, want %v", decoded.Timestamp, event.Timestamp)
	}
}

func TestFileLoggerCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.slog")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	defer logger.Close()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Error("history file was not created")
	}
}

func TestFileLoggerAppendsAcrossSessions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.slog")

	logger1, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	logger1.Log(testEvent("session-1", KindScale, "Major"))
	logger1.Close()

	logger2, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	logger2.Log(testEvent("session-2", KindChord, "Major Triad"))
	logger2.Close()

	reader, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer reader.Close()

	var sessions []string
	for {
		event, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		sessions = append(sessions, event.SessionID)
	}

	if len(sessions) != 2 {
		t.Fatalf("read %d events, want 2", len(sessions))
	}
	if sessions[0] != "session-1" || sessions[1] != "session-2" {
		t.Errorf("sessions = %v, want [session-1 session-2]", sessions)
	}
}

func TestFileLoggerAfterClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.slog")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	logger.Log(testEvent("session-1", KindScale, "Major"))

	if err := logger.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Errorf("second Close failed: %v", err)
	}

	// Logging after close is silently ignored.
	logger.Log(testEvent("session-1", KindScale, "Minor"))

	reader, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer reader.Close()

	count := 0
	for {
		if _, err := reader.Next(); errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		count++
	}
	if count != 1 {
		t.Errorf("read %d events, want 1", count)
	}
}

func TestFileLoggerConcurrent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.slog")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				logger.Log(testEvent("concurrent", KindScale, "Blues"))
			}
		}()
	}
	wg.Wait()
	logger.Close()

	reader, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer reader.Close()

	count := 0
	for {
		if _, err := reader.Next(); errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		count++
	}
	if count != 200 {
		t.Errorf("read %d events, want 200", count)
	}
}
