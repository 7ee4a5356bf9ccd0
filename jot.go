package jot

import (
	"log/slog"

	"github.com/aretw0/jot/internal/platform"
	"github.com/aretw0/jot/pkg/core"
	"github.com/aretw0/jot/pkg/form"
	"github.com/aretw0/jot/pkg/ident"
)

// Version is the version of the library and CLI.
const Version = "0.3.0"

// --- Configuration ---

// Option defines a functional option for configuring jot.
type Option = platform.Option

// WithLogger sets the logger for the service and the form.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithStore allows injecting a custom note store.
func WithStore(store core.Store) Option {
	return platform.WithStore(store)
}

// WithGenerator sets the id generator for new notes.
func WithGenerator(g ident.Generator) Option {
	return platform.WithGenerator(g)
}

// WithEventBuffer allows specifying the size of the event broker buffer.
func WithEventBuffer(size int) Option {
	return platform.WithEventBuffer(size)
}

// WithSeed preloads the default in-memory store.
func WithSeed(notes ...core.Note) Option {
	return platform.WithSeed(notes...)
}

// --- Factory ---

// New creates a note Service backed by an in-memory store unless WithStore is given.
func New(opts ...Option) (*core.Service, error) {
	return platform.New(opts...)
}

// NewForm creates a form controller bound to svc.
func NewForm(svc *core.Service, opts ...Option) *form.Controller {
	return platform.NewForm(svc, opts...)
}
