// Package commands implements the qualifiers CLI commands.
package commands

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/resconfig/resconfig-go/pkg/apilevel"
	"github.com/resconfig/resconfig-go/pkg/log"
	"github.com/resconfig/resconfig-go/pkg/profile"
	"github.com/resconfig/resconfig-go/pkg/qualifier"
)

// Exit codes.
const (
	ExitSuccess  = 0
	ExitError    = 1
	ExitRejected = 2
)

// env carries the global flags and the resources built from them.
type env struct {
	apiLevel     string
	protocolLog  string
	logLevel     string
	profilesPath string

	stdin  io.Reader
	logger *slog.Logger
	trace  *log.FileLogger
	p      *qualifier.Parser
}

// Execute runs the CLI and returns the process exit code.
func Execute(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	e := &env{stdin: stdin}
	root := newRootCmd(e)
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if cerr := e.close(); err == nil {
		err = cerr
	}
	if err == nil {
		return ExitSuccess
	}

	fmt.Fprintf(stderr, "Error: %v\n", err)
	if qualifier.KindOf(err) != 0 {
		return ExitRejected
	}
	return ExitError
}

func newRootCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "qualifiers",
		Short:         "Resolve device-configuration qualifier strings",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.setup(cmd.ErrOrStderr())
		},
	}

	fs := cmd.PersistentFlags()
	fs.StringVar(&e.apiLevel, "api", "", "platform API level: number, vN token or codename (default: latest or the profile's level)")
	fs.StringVar(&e.protocolLog, "protocol-log", "", "file path for resolution event logging (CBOR format)")
	fs.StringVar(&e.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	fs.StringVar(&e.profilesPath, "profiles", "", "device profile YAML file (default: built-in profiles)")

	cmd.AddCommand(
		newParseCmd(e),
		newProfilesCmd(e),
		newLogCmd(),
		newInteractiveCmd(e),
		newVersionCmd(),
	)
	return cmd
}

func (e *env) setup(stderr io.Writer) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(e.logLevel))); err != nil {
		return fmt.Errorf("invalid log level %q: %w", e.logLevel, err)
	}
	e.logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	loggers := []log.Logger{log.NewSlogAdapter(e.logger)}
	if e.protocolLog != "" {
		fl, err := log.NewFileLogger(e.protocolLog)
		if err != nil {
			return fmt.Errorf("failed to create protocol log: %w", err)
		}
		e.trace = fl
		loggers = append(loggers, fl)
		e.logger.Info("resolution logging enabled", "path", e.protocolLog)
	}

	e.p = qualifier.NewParser(log.NewMultiLogger(loggers...))
	e.logger.Debug("parser ready", "session_id", e.p.SessionID())
	return nil
}

func (e *env) close() error {
	if e.trace == nil {
		return nil
	}
	err := e.trace.Close()
	e.trace = nil
	return err
}

// parser returns the session parser. Commands run without the root
// pre-run hook (unit tests) get an untraced one.
func (e *env) parser() *qualifier.Parser {
	if e.p == nil {
		e.p = qualifier.NewParser(nil)
	}
	return e.p
}

// level returns the --api level, or fallback when the flag is unset.
func (e *env) level(fallback apilevel.Level) (apilevel.Level, error) {
	if e.apiLevel == "" {
		return fallback, nil
	}
	return apilevel.Parse(e.apiLevel)
}

func (e *env) profiles() (*profile.Set, error) {
	if e.profilesPath == "" {
		return profile.Builtin()
	}
	return profile.LoadFile(e.profilesPath)
}

var errOutputFormat = errors.New("invalid output format")
