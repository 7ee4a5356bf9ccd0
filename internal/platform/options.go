package platform

import (
	"log/slog"

	"github.com/aretw0/jot/pkg/core"
	"github.com/aretw0/jot/pkg/ident"
)

// options holds the internal configuration for the jot service.
type options struct {
	store       core.Store
	logger      *slog.Logger
	generator   ident.Generator
	eventBuffer int
	seed        []core.Note
}

// Option defines a functional option for configuring jot.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		store:       nil,
		logger:      nil,
		generator:   nil,
		eventBuffer: core.DefaultEventBuffer,
	}
}

// WithLogger sets the logger for the service and the form.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithStore allows injecting a custom store.
// If provided, the default in-memory store will be skipped.
func WithStore(store core.Store) Option {
	return func(o *options) {
		o.store = store
	}
}

// WithGenerator sets the id generator used for new notes.
// Defaults to 5-digit numeric ids.
func WithGenerator(g ident.Generator) Option {
	return func(o *options) {
		o.generator = g
	}
}

// WithEventBuffer allows specifying the size of the event broker buffer.
// Zero means default (100).
func WithEventBuffer(size int) Option {
	return func(o *options) {
		o.eventBuffer = size
	}
}

// WithSeed preloads the default in-memory store. Ignored with WithStore.
func WithSeed(notes ...core.Note) Option {
	return func(o *options) {
		o.seed = append(o.seed, notes...)
	}
}
