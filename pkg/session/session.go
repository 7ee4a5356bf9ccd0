// Package session interprets note commands, one line at a time.
//
// A Session is the event loop of the application: every line (typed in the
// shell or read from a script) runs to completion before the next one is
// read, so the form and the store are never touched concurrently.
package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/aretw0/introspection"
	"github.com/google/shlex"

	"github.com/aretw0/jot/pkg/core"
	"github.com/aretw0/jot/pkg/form"
	"github.com/aretw0/jot/pkg/view"
)

// ErrQuit is returned by Exec when the user asks to leave.
var ErrQuit = errors.New("quit")

// ErrUsage marks a malformed command line.
var ErrUsage = errors.New("usage")

// Session drives a form controller and a note service from text commands.
type Session struct {
	svc    *core.Service
	form   *form.Controller
	filter view.Filter

	components []Component

	out         io.Writer
	logger      *slog.Logger
	styles      styles
	stopOnError bool
}

// Option configures a Session.
type Option func(*Session)

// WithOutput sets where command output is written. Defaults to io.Discard.
func WithOutput(w io.Writer) Option {
	return func(s *Session) {
		if w != nil {
			s.out = w
		}
	}
}

// WithColor enables ANSI colors in the output.
func WithColor(enabled bool) Option {
	return func(s *Session) {
		s.styles = newStyles(enabled)
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Component is a part of the application whose state the "state" command
// reports next to the service and the form.
type Component interface {
	introspection.Introspectable
	introspection.Component
}

// WithComponent adds c to the "state" report.
func WithComponent(c Component) Option {
	return func(s *Session) {
		s.Attach(c)
	}
}

// Attach adds c to the "state" report of a running session.
// It must be called from the goroutine driving the session.
func (s *Session) Attach(c Component) {
	if c != nil {
		s.components = append(s.components, c)
	}
}

// WithStopOnError makes Run return at the first failing line.
func WithStopOnError(stop bool) Option {
	return func(s *Session) {
		s.stopOnError = stop
	}
}

// New creates a session. svc and f must share the same store.
func New(svc *core.Service, f *form.Controller, opts ...Option) *Session {
	s := &Session{
		svc:    svc,
		form:   f,
		out:    io.Discard,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		styles: newStyles(false),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Filter returns the active list filter.
func (s *Session) Filter() view.Filter { return s.filter }

// Prompt reflects the form mode, e.g. "jot[new]> " or "jot[edit 12345]> ".
func (s *Session) Prompt() string {
	return fmt.Sprintf("jot[%s]> ", s.form.Mode())
}

// Run executes every line of r. Command errors are printed and, unless
// WithStopOnError is set, the next line is processed. prompt is written
// before each line when non-empty.
func (s *Session) Run(ctx context.Context, r io.Reader, prompt bool) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for {
		if prompt {
			fmt.Fprint(s.out, s.Prompt())
		}
		if !scanner.Scan() {
			break
		}
		lineNo++

		err := s.Exec(ctx, scanner.Text())
		if errors.Is(err, ErrQuit) {
			return nil
		}
		if err != nil {
			s.styles.err.Fprintf(s.out, "error: %v\n", err)
			if s.stopOnError {
				return fmt.Errorf("line %d: %w", lineNo, err)
			}
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
	return scanner.Err()
}

// Exec runs a single command line. Blank lines and # comments are ignored.
func (s *Session) Exec(ctx context.Context, line string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}

	args, err := shlex.Split(line)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if len(args) == 0 {
		return nil
	}

	name, args := strings.ToLower(args[0]), args[1:]
	cmd, ok := commands[name]
	if !ok {
		return fmt.Errorf("%w: unknown command %q (try help)", ErrUsage, name)
	}
	s.logger.Debug("exec", "command", name, "args", len(args))
	return cmd.run(ctx, s, args)
}
