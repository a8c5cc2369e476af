// Package interactive provides the interactive command-line interface
// for the steel scanner.
package interactive

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/pedalsteel/steel-go/pkg/neck"
	"github.com/pedalsteel/steel-go/pkg/render"
	"github.com/pedalsteel/steel-go/pkg/scan"
	"github.com/pedalsteel/steel-go/pkg/sessionlog"
	"github.com/pedalsteel/steel-go/pkg/theory"
)

// Shell handles interactive mode for steel.
type Shell struct {
	neck    *neck.Neck
	scanner *scan.Scanner
	logger  sessionlog.Logger
	rl      *readline.Instance

	// sessionID groups every scan of this shell run in the history.
	sessionID string
}

// New creates a new interactive shell on the given neck. A nil logger
// disables history recording.
func New(n *neck.Neck, logger sessionlog.Logger) (*Shell, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "steel> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}

	if logger == nil {
		logger = sessionlog.NoopLogger{}
	}

	return &Shell{
		neck:      n,
		scanner:   scan.New(n, scan.Config{}),
		logger:    logger,
		rl:        rl,
		sessionID: sessionlog.NewSessionID(),
	}, nil
}

// Stdout returns a writer that properly coordinates with the readline input.
func (s *Shell) Stdout() io.Writer {
	return s.rl.Stdout()
}

// Run starts the interactive command loop.
func (s *Shell) Run() {
	defer s.rl.Close()

	s.printHelp()

	for {
		line, err := s.rl.Readline()
		if err != nil {
			// EOF or interrupt
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(s.rl.Stdout(), "Exiting...")
			return
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		parts := strings.Fields(input)
		cmd := strings.ToLower(parts[0])
		args := parts[1:]

		switch cmd {
		case "help", "?":
			s.printHelp()

		case "scale", "s":
			s.cmdScale(args)

		case "chord", "c":
			s.cmdChord(args)

		case "tuning", "t":
			s.cmdTuning(args)

		case "copedent":
			s.cmdCopedent()

		case "positions", "p":
			s.cmdPositions()

		case "scales":
			s.cmdScales()

		case "chords":
			s.cmdChords()

		case "quit", "exit", "q":
			fmt.Fprintln(s.rl.Stdout(), "Exiting...")
			return

		default:
			fmt.Fprintf(s.rl.Stdout(), "Unknown command: %s (type 'help' for commands)\n", cmd)
		}
	}
}

func (s *Shell) printHelp() {
	fmt.Fprintln(s.rl.Stdout(), `
Steel Scanner Commands:
  Scanning:
    scale <root> <name>   - Mark scale tones across every position
    chord <root> <name>   - Mark chord tones and find complete voicings

  Neck Setup:
    tuning                - Show the current tuning
    tuning <name>         - Switch to a tuning preset
    tuning <notes>        - Switch to a custom comma-separated tuning
    copedent              - Show the copedent chart
    positions             - List the position catalog

  Catalogs:
    scales                - List known scales
    chords                - List known chords

  General:
    help                  - Show this help
    quit                  - Exit

  Examples:
    scale E major
    chord E maj7
    tuning C6`)
}

// cmdScale handles the scale command.
func (s *Shell) cmdScale(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(s.rl.Stdout(), "Usage: scale <root> <name>")
		fmt.Fprintln(s.rl.Stdout(), "  Example: scale E major")
		return
	}

	query := strings.Join(args, " ")
	root, scale, err := theory.ParseScale(query)
	if err != nil {
		fmt.Fprintf(s.rl.Stdout(), "Error: %v\n", err)
		return
	}

	res := s.scanner.Scale(root, scale)
	render.Result(s.rl.Stdout(), s.neck, res)
	s.logEvent(query, res)
}

// cmdChord handles the chord command.
func (s *Shell) cmdChord(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(s.rl.Stdout(), "Usage: chord <root> <name>")
		fmt.Fprintln(s.rl.Stdout(), "  Example: chord E maj7")
		return
	}

	query := strings.Join(args, " ")
	root, chord, err := theory.ParseChord(query)
	if err != nil {
		fmt.Fprintf(s.rl.Stdout(), "Error: %v\n", err)
		return
	}

	res := s.scanner.Chord(root, chord)
	render.Result(s.rl.Stdout(), s.neck, res)
	s.logEvent(query, res)
}

// cmdTuning shows the current tuning or switches to a new one.
func (s *Shell) cmdTuning(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(s.rl.Stdout(), "Tuning: %s\n", s.neck.Name())
		render.Tuning(s.rl.Stdout(), s.neck.Tuning())
		return
	}

	arg := strings.Join(args, " ")

	var (
		name string
		t    neck.Tuning
		err  error
	)
	if strings.Contains(arg, ",") {
		name = "custom"
		t, err = neck.ParseTuning(arg)
	} else {
		var preset neck.Preset
		preset, err = neck.LookupPreset(arg)
		if err == nil {
			name = preset.Name
			t, err = preset.Tuning()
		}
	}
	if err != nil {
		fmt.Fprintf(s.rl.Stdout(), "Error: %v\n", err)
		return
	}

	s.neck = neck.New(name, t, s.neck.Copedent())
	s.scanner = scan.New(s.neck, scan.Config{})
	fmt.Fprintf(s.rl.Stdout(), "Tuning set to %s (%s)\n", name, t.String())
}

// cmdCopedent shows the copedent chart.
func (s *Shell) cmdCopedent() {
	fmt.Fprintf(s.rl.Stdout(), "Copedent: %s\n", s.neck.Copedent().Name())
	render.CopedentChart(s.rl.Stdout(), s.neck.Copedent())
}

// cmdPositions lists the position catalog.
func (s *Shell) cmdPositions() {
	fmt.Fprintln(s.rl.Stdout(), "Positions:")
	for _, pos := range s.neck.Copedent().Positions() {
		fmt.Fprintf(s.rl.Stdout(), "  %s\n", pos.Name)
	}
}

// cmdScales lists the scale catalog.
func (s *Shell) cmdScales() {
	fmt.Fprintln(s.rl.Stdout(), "Scales:")
	for _, sc := range theory.Scales() {
		fmt.Fprintf(s.rl.Stdout(), "  %s\n", sc.Name)
	}
}

// cmdChords lists the chord catalog.
func (s *Shell) cmdChords() {
	fmt.Fprintln(s.rl.Stdout(), "Chords:")
	for _, ch := range theory.Chords() {
		fmt.Fprintf(s.rl.Stdout(), "  %s\n", ch.Name)
	}
}

// logEvent records one scan in the session history.
func (s *Shell) logEvent(query string, res *scan.Result) {
	kind := sessionlog.KindScale
	if res.Mode == scan.ModeChord {
		kind = sessionlog.KindChord
	}

	s.logger.Log(sessionlog.Event{
		Timestamp: time.Now(),
		SessionID: s.sessionID,
		Kind:      kind,
		Query:     query,
		NeckName:  s.neck.Name(),
		Tuning:    s.neck.Tuning().String(),
		Root:      res.Root.String(),
		Target:    res.Name,
		Matches:   res.TotalMatches(),
		Voicings:  res.TotalVoicings(),
	})
}
