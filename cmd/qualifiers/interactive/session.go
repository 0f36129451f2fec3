// Package interactive provides the interactive prompt of the qualifiers
// command.
package interactive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/resconfig/resconfig-go/pkg/apilevel"
	"github.com/resconfig/resconfig-go/pkg/inspect"
	"github.com/resconfig/resconfig-go/pkg/profile"
	"github.com/resconfig/resconfig-go/pkg/qualifier"
)

// Session holds the prompt state: the API level and the last resolved
// configuration, which "+" lines are applied on top of.
type Session struct {
	parser    *qualifier.Parser
	profiles  *profile.Set
	level     apilevel.Level
	formatter *inspect.Formatter
	out       io.Writer

	current *qualifier.Result
}

// NewSession creates a session writing to out. A zero level selects
// apilevel.Latest.
func NewSession(p *qualifier.Parser, profiles *profile.Set, level apilevel.Level, out io.Writer) *Session {
	if level == 0 {
		level = apilevel.Latest
	}
	return &Session{
		parser:    p,
		profiles:  profiles,
		level:     level,
		formatter: inspect.NewFormatter(),
		out:       out,
	}
}

// Level returns the API level lines are resolved against.
func (s *Session) Level() apilevel.Level {
	return s.level
}

// Current returns the last resolved result, nil if none.
func (s *Session) Current() *qualifier.Result {
	return s.current
}

// Run reads lines until EOF, "quit" or ctx is cancelled.
func (s *Session) Run(ctx context.Context, stdin io.Reader, stdout io.Writer) error {
	in := readline.NewCancelableStdin(stdin)
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          s.prompt(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		Stdin:           in,
		Stdout:          stdout,
	})
	if err != nil {
		in.Close()
		return fmt.Errorf("failed to create readline: %w", err)
	}
	stop := func() {
		in.Close()
		rl.Close()
	}
	defer stop()

	// Closing stdin unblocks a pending Readline.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			stop()
		case <-done:
		}
	}()

	s.out = rl.Stdout()
	s.printHelp()

	for {
		if ctx.Err() != nil {
			return nil
		}

		line, err := rl.Readline()
		if err != nil {
			// EOF or interrupt
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			return nil
		}
		if !s.Execute(line) {
			return nil
		}
		rl.SetPrompt(s.prompt())
	}
}

func (s *Session) prompt() string {
	return fmt.Sprintf("%s> ", s.level.Token())
}

// Execute runs one input line. It returns false when the session should
// end.
func (s *Session) Execute(line string) bool {
	input := strings.TrimSpace(line)
	if input == "" {
		return true
	}

	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help", "?":
		s.printHelp()

	case "api":
		s.cmdAPI(args)

	case "profile", "p":
		s.cmdProfile(args)

	case "profiles":
		s.cmdProfiles()

	case "get", "g":
		s.cmdGet(args)

	case "fields":
		fmt.Fprintln(s.out, strings.Join(inspect.FieldNames(), " "))

	case "show":
		s.cmdShow()

	case "reset":
		s.current = nil
		fmt.Fprintln(s.out, "Configuration cleared")

	case "quit", "exit", "q":
		fmt.Fprintln(s.out, "Exiting...")
		return false

	default:
		if len(parts) > 1 {
			fmt.Fprintf(s.out, "Unknown command: %s (type 'help' for commands)\n", cmd)
			return true
		}
		s.cmdResolve(input)
	}
	return true
}

func (s *Session) printHelp() {
	fmt.Fprintln(s.out, `
Qualifier Commands:
  Resolution:
    <qualifiers>       - Resolve a qualifier string, e.g. fr-rFR-land-hdpi
    +<qualifiers>      - Apply qualifiers on top of the current configuration
    profile <name>     - Resolve a device profile
    reset              - Clear the current configuration

  Inspection:
    show               - Show the current configuration
    get <field>        - Show one field, e.g. get screenLayout
    fields             - List field names
    profiles           - List device profiles

  Settings:
    api [level]        - Show or set the API level (number, vN or codename)

  General:
    help               - Show this help
    quit               - Exit`)
}

func (s *Session) cmdResolve(input string) {
	var (
		res *qualifier.Result
		err error
	)
	if strings.HasPrefix(input, qualifier.OverlayPrefix) {
		base := ""
		if s.current != nil {
			base = s.current.Qualifiers()
		}
		res, err = s.parser.ParseOverlay(base, input, s.level)
	} else {
		res, err = s.parser.Parse(input, s.level)
	}
	if err != nil {
		fmt.Fprintln(s.out, s.formatter.FormatError(err))
		return
	}
	s.current = res
	fmt.Fprintln(s.out, res.Canonical)
}

func (s *Session) cmdAPI(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(s.out, "API level %d (%s)\n", int(s.level), s.level.Codename())
		return
	}
	level, err := apilevel.Parse(args[0])
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	s.level = level

	// Re-resolve so the current configuration follows the new level.
	if s.current != nil {
		res, err := s.parser.Parse(s.current.Qualifiers(), level)
		if err != nil {
			fmt.Fprintln(s.out, s.formatter.FormatError(err))
			return
		}
		s.current = res
	}
	fmt.Fprintf(s.out, "API level set to %d (%s)\n", int(level), level.Codename())
}

func (s *Session) cmdProfile(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.out, "Usage: profile <name>")
		return
	}
	if s.profiles == nil {
		fmt.Fprintln(s.out, "No profiles loaded")
		return
	}
	res, err := s.profiles.Resolve(s.parser, args[0], s.level)
	if err != nil {
		fmt.Fprintln(s.out, s.formatter.FormatError(err))
		return
	}
	s.current = res
	fmt.Fprintln(s.out, res.Canonical)
}

func (s *Session) cmdProfiles() {
	if s.profiles == nil {
		fmt.Fprintln(s.out, "No profiles loaded")
		return
	}
	for _, name := range s.profiles.Names() {
		p, _ := s.profiles.Get(name)
		fmt.Fprintf(s.out, "  %-14s %s\n", name, p.Description)
	}
}

func (s *Session) cmdGet(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.out, "Usage: get <field>")
		return
	}
	if s.current == nil {
		fmt.Fprintln(s.out, "No configuration resolved yet")
		return
	}
	field, ok := inspect.Lookup(s.current, args[0])
	if !ok {
		fmt.Fprintf(s.out, "Unknown field: %s (type 'fields' for names)\n", args[0])
		return
	}
	fmt.Fprintln(s.out, s.formatter.FormatField(field))
}

func (s *Session) cmdShow() {
	if s.current == nil {
		fmt.Fprintln(s.out, "No configuration resolved yet")
		return
	}
	fmt.Fprint(s.out, s.formatter.FormatResult(s.current))
}
