// Package commands implements the steel CLI commands.
package commands

import (
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/pedalsteel/steel-go/pkg/copedent"
	"github.com/pedalsteel/steel-go/pkg/neck"
	"github.com/pedalsteel/steel-go/pkg/scan"
	"github.com/pedalsteel/steel-go/pkg/sessionlog"
)

const (
	exitSuccess      = 0
	exitCommandError = 1
)

// defaultTuningName is the preset used when no tuning option is given.
const defaultTuningName = "E9"

// resolveNeck builds the neck from the tuning options: an explicit
// comma-separated note list, a preset name, or the default preset.
func resolveNeck(notes, name string) (*neck.Neck, error) {
	if notes != "" && name != "" {
		return nil, errors.New("use either --tuning or --tuning-name, not both")
	}

	if notes != "" {
		t, err := neck.ParseTuning(notes)
		if err != nil {
			return nil, err
		}
		return neck.New("custom", t, copedent.Standard()), nil
	}

	if name == "" {
		name = defaultTuningName
	}
	preset, err := neck.LookupPreset(name)
	if err != nil {
		return nil, err
	}
	t, err := preset.Tuning()
	if err != nil {
		return nil, err
	}
	return neck.New(preset.Name, t, copedent.Standard()), nil
}

// debugLogger returns a debug-level logger on w, or nil when disabled.
func debugLogger(enabled bool, w io.Writer) *slog.Logger {
	if !enabled {
		return nil
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// appendSessionEvent appends one history event for the scan to path.
func appendSessionEvent(path, query string, n *neck.Neck, res *scan.Result) error {
	logger, err := sessionlog.NewFileLogger(path)
	if err != nil {
		return err
	}
	defer logger.Close()

	kind := sessionlog.KindScale
	if res.Mode == scan.ModeChord {
		kind = sessionlog.KindChord
	}

	logger.Log(sessionlog.Event{
		Timestamp: time.Now(),
		SessionID: sessionlog.NewSessionID(),
		Kind:      kind,
		Query:     query,
		NeckName:  n.Name(),
		Tuning:    n.Tuning().String(),
		Root:      res.Root.String(),
		Target:    res.Name,
		Matches:   res.TotalMatches(),
		Voicings:  res.TotalVoicings(),
	})
	return nil
}
