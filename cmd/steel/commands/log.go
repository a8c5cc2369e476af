package commands

import (
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/pedalsteel/steel-go/pkg/sessionlog"
)

// RunLog dispatches the log subcommands.
func RunLog(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		fmt.Fprintln(stderr, "Error: log subcommand required")
		printLogUsage(stderr)
		return exitCommandError
	}

	switch args[0] {
	case "view":
		return runLogView(args[1:], stdout, stderr)
	case "stats":
		return runLogStats(args[1:], stdout, stderr)
	case "help", "-h", "--help":
		printLogUsage(stdout)
		return exitSuccess
	default:
		fmt.Fprintf(stderr, "Unknown log subcommand: %s\n", args[0])
		printLogUsage(stderr)
		return exitCommandError
	}
}

func printLogUsage(w io.Writer) {
	fmt.Fprintln(w, `
Usage: steel log <subcommand> [options] <file>

Subcommands:
  view     View scan history in human-readable format
  stats    Show statistics about the scan history

Examples:
  steel log view history.slog
  steel log view --kind chord history.slog
  steel log view --target "Major Triad" history.slog
  steel log stats history.slog`)
}

func runLogView(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("view", flag.ContinueOnError)
	session := fs.String("session", "", "Filter by session ID")
	kind := fs.String("kind", "", "Filter by kind (scale, chord)")
	target := fs.String("target", "", "Filter by scale or chord name")
	timeStart := fs.String("time-start", "", "Filter by start time (RFC3339)")
	timeEnd := fs.String("time-end", "", "Filter by end time (RFC3339)")

	fs.Usage = func() {}

	if err := fs.Parse(args); err != nil {
		return exitCommandError
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(stderr, "Error: history file path required")
		printLogUsage(stderr)
		return exitCommandError
	}

	filter := sessionlog.Filter{
		SessionID: *session,
		Target:    *target,
	}
	if *kind != "" {
		k, err := parseKindFlag(*kind)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitCommandError
		}
		filter.Kind = &k
	}
	if *timeStart != "" {
		ts, err := time.Parse(time.RFC3339, *timeStart)
		if err != nil {
			fmt.Fprintf(stderr, "Error: invalid time-start: %v\n", err)
			return exitCommandError
		}
		filter.TimeStart = &ts
	}
	if *timeEnd != "" {
		ts, err := time.Parse(time.RFC3339, *timeEnd)
		if err != nil {
			fmt.Fprintf(stderr, "Error: invalid time-end: %v\n", err)
			return exitCommandError
		}
		filter.TimeEnd = &ts
	}

	reader, err := sessionlog.NewFilteredReader(fs.Arg(0), filter)
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to open history file: %v\n", err)
		return exitCommandError
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			fmt.Fprintf(stderr, "Error: failed to read event: %v\n", err)
			return exitCommandError
		}
		formatLogEvent(stdout, event)
	}

	return exitSuccess
}

// formatLogEvent writes a human-readable representation of the event.
func formatLogEvent(w io.Writer, event sessionlog.Event) {
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05Z")
	fmt.Fprintf(w, "%s [sess:%s] %-5s %s %s\n",
		ts, shortSessionID(event.SessionID), event.Kind, event.Root, event.Target)

	fmt.Fprintf(w, "  Query: %q\n", event.Query)
	if event.NeckName != "" {
		fmt.Fprintf(w, "  Neck: %s (%s)\n", event.NeckName, event.Tuning)
	}
	fmt.Fprintf(w, "  Matches: %d", event.Matches)
	if event.Kind == sessionlog.KindChord {
		fmt.Fprintf(w, "  Voicings: %d", event.Voicings)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w) // Blank line between events
}

// shortSessionID returns the first 8 characters of the session ID.
func shortSessionID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

// parseKindFlag parses a kind string (case-insensitive).
func parseKindFlag(s string) (sessionlog.Kind, error) {
	switch strings.ToLower(s) {
	case "scale":
		return sessionlog.KindScale, nil
	case "chord":
		return sessionlog.KindChord, nil
	default:
		return 0, fmt.Errorf("invalid kind: %s (must be scale or chord)", s)
	}
}

// logStats holds aggregate statistics about a history file.
type logStats struct {
	TotalEvents  int
	EventsByKind map[sessionlog.Kind]int
	Targets      map[string]int
	Sessions     map[string]*sessionStats
	TimeRange    struct {
		Start time.Time
		End   time.Time
	}
}

// sessionStats holds statistics for a single session.
type sessionStats struct {
	FirstSeen time.Time
	LastSeen  time.Time
	Events    int
	NeckName  string
}

func runLogStats(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("stats", flag.ContinueOnError)
	fs.Usage = func() {}

	if err := fs.Parse(args); err != nil {
		return exitCommandError
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(stderr, "Error: history file path required")
		printLogUsage(stderr)
		return exitCommandError
	}

	reader, err := sessionlog.NewReader(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to open history file: %v\n", err)
		return exitCommandError
	}
	defer reader.Close()

	stats := &logStats{
		EventsByKind: make(map[sessionlog.Kind]int),
		Targets:      make(map[string]int),
		Sessions:     make(map[string]*sessionStats),
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			fmt.Fprintf(stderr, "Error: failed to read event: %v\n", err)
			return exitCommandError
		}

		stats.TotalEvents++
		stats.EventsByKind[event.Kind]++
		stats.Targets[event.Root+" "+event.Target]++

		if stats.TimeRange.Start.IsZero() || event.Timestamp.Before(stats.TimeRange.Start) {
			stats.TimeRange.Start = event.Timestamp
		}
		if event.Timestamp.After(stats.TimeRange.End) {
			stats.TimeRange.End = event.Timestamp
		}

		sess, ok := stats.Sessions[event.SessionID]
		if !ok {
			sess = &sessionStats{
				FirstSeen: event.Timestamp,
				LastSeen:  event.Timestamp,
			}
			stats.Sessions[event.SessionID] = sess
		}
		sess.Events++
		if event.Timestamp.After(sess.LastSeen) {
			sess.LastSeen = event.Timestamp
		}
		if event.NeckName != "" && sess.NeckName == "" {
			sess.NeckName = event.NeckName
		}
	}

	printLogStats(stdout, stats)
	return exitSuccess
}

func printLogStats(w io.Writer, stats *logStats) {
	fmt.Fprintln(w, "=== Scan History Statistics ===")
	fmt.Fprintln(w)

	if stats.TotalEvents > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			stats.TimeRange.Start.Format(time.RFC3339),
			stats.TimeRange.End.Format(time.RFC3339))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total Scans: %d\n", stats.TotalEvents)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Scans by Kind:")
	for _, kind := range []sessionlog.Kind{sessionlog.KindScale, sessionlog.KindChord} {
		if count := stats.EventsByKind[kind]; count > 0 {
			fmt.Fprintf(w, "  %-8s %d\n", kind.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	if len(stats.Targets) > 0 {
		// Sort by count, then name, for a stable top list.
		type targetInfo struct {
			name  string
			count int
		}
		targets := make([]targetInfo, 0, len(stats.Targets))
		for name, count := range stats.Targets {
			targets = append(targets, targetInfo{name, count})
		}
		sort.Slice(targets, func(i, j int) bool {
			if targets[i].count != targets[j].count {
				return targets[i].count > targets[j].count
			}
			return targets[i].name < targets[j].name
		})

		fmt.Fprintln(w, "Most Scanned:")
		for i, t := range targets {
			if i >= 10 {
				break
			}
			fmt.Fprintf(w, "  %-24s %d\n", t.name, t.count)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Sessions: %d\n", len(stats.Sessions))
	if len(stats.Sessions) > 0 {
		type sessInfo struct {
			id    string
			stats *sessionStats
		}
		sessions := make([]sessInfo, 0, len(stats.Sessions))
		for id, ss := range stats.Sessions {
			sessions = append(sessions, sessInfo{id, ss})
		}
		sort.Slice(sessions, func(i, j int) bool {
			return sessions[i].stats.FirstSeen.Before(sessions[j].stats.FirstSeen)
		})

		fmt.Fprintln(w)
		for _, s := range sessions {
			duration := s.stats.LastSeen.Sub(s.stats.FirstSeen).Round(time.Second)
			fmt.Fprintf(w, "  [%s] %d scans, duration %s\n", shortSessionID(s.id), s.stats.Events, duration)
			if s.stats.NeckName != "" {
				fmt.Fprintf(w, "           Neck: %s\n", s.stats.NeckName)
			}
		}
	}
}
