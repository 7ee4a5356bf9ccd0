package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/aretw0/jot"
	"github.com/aretw0/jot/pkg/core"
	"github.com/aretw0/jot/pkg/session"
)

// newSession wires a fresh in-memory store, form and session from cfg.
func newSession(out io.Writer, extra ...session.Option) (*session.Session, *core.Service, error) {
	gen, err := cfg.Generator()
	if err != nil {
		return nil, nil, err
	}

	opts := []jot.Option{
		jot.WithLogger(slog.Default()),
		jot.WithGenerator(gen),
		jot.WithEventBuffer(cfg.EventBuffer),
	}
	svc, err := jot.New(opts...)
	if err != nil {
		return nil, nil, err
	}
	f := jot.NewForm(svc, opts...)

	sessOpts := append([]session.Option{
		session.WithOutput(out),
		session.WithColor(useColor(out)),
		session.WithLogger(slog.Default()),
	}, extra...)
	return session.New(svc, f, sessOpts...), svc, nil
}

func useColor(out io.Writer) bool {
	if noColor {
		return false
	}
	tty := false
	if f, ok := out.(*os.File); ok {
		tty = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return cfg.ColorEnabled(tty)
}

func isInteractive(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
