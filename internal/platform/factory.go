package platform

import (
	"context"
	"fmt"

	"github.com/aretw0/jot/pkg/adapters/memory"
	"github.com/aretw0/jot/pkg/core"
	"github.com/aretw0/jot/pkg/form"
)

// svc, err := jot.New(jot.WithLogger(logger))
func New(opts ...Option) (*core.Service, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	store := o.store
	if store == nil {
		// Seed notes go through the same checks as any other ADD.
		mem := memory.NewStore()
		seeded := core.NewService(mem)
		for _, n := range o.seed {
			if err := seeded.Add(context.Background(), n); err != nil {
				return nil, fmt.Errorf("seed: %w", err)
			}
		}
		store = mem
	}

	return core.NewService(store,
		core.WithServiceLogger(o.logger),
		core.WithEventBufferSize(o.eventBuffer),
	), nil
}

// NewForm creates a form controller dispatching to svc.
func NewForm(svc *core.Service, opts ...Option) *form.Controller {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return form.New(svc,
		form.WithLogger(o.logger),
		form.WithGenerator(o.generator),
	)
}
