// Package form implements the note form: a draft being typed, its
// validation errors, and the create/edit mode that decides which intent a
// submit dispatches.
package form

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/jot/pkg/core"
	"github.com/aretw0/jot/pkg/ident"
)

// Dispatcher is the part of the note service the form needs.
type Dispatcher interface {
	Dispatch(ctx context.Context, in core.Intent) (core.Note, error)
	Get(ctx context.Context, id string) (core.Note, error)
	Exists(ctx context.Context, id string) bool
}

// Outcome describes what a submit did.
type Outcome int

const (
	// Rejected means validation failed and nothing was dispatched.
	Rejected Outcome = iota
	Added
	Updated
	// Discarded means the edit target was deleted before submit. Nothing was
	// stored and the form is back in Creating.
	Discarded
)

func (o Outcome) String() string {
	switch o {
	case Added:
		return "added"
	case Updated:
		return "updated"
	case Discarded:
		return "discarded"
	}
	return "rejected"
}

// SubmitResult reports the outcome of Submit.
type SubmitResult struct {
	Outcome Outcome
	// Note is the stored note for Added and Updated, and the abandoned
	// draft for Discarded.
	Note core.Note
	// Errors is non-empty for Rejected.
	Errors core.ValidationErrors
}

// Controller holds the form state. It is not safe for concurrent use;
// callers drive it from a single event loop.
type Controller struct {
	notes  Dispatcher
	ids    ident.Generator
	logger *slog.Logger

	draft  core.Draft
	mode   DraftMode
	errors core.ValidationErrors
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithGenerator sets the id generator for new notes.
func WithGenerator(g ident.Generator) Option {
	return func(c *Controller) {
		if g != nil {
			c.ids = g
		}
	}
}

// New creates a controller with an empty draft in Creating mode.
func New(notes Dispatcher, opts ...Option) *Controller {
	c := &Controller{
		notes:  notes,
		ids:    ident.Numeric{Length: ident.DefaultLength},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		errors: core.ValidationErrors{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Draft returns the current draft.
func (c *Controller) Draft() core.Draft { return c.draft }

// Mode returns the current mode.
func (c *Controller) Mode() DraftMode { return c.mode }

// Errors returns a copy of the current validation errors.
func (c *Controller) Errors() core.ValidationErrors { return c.errors.Clone() }

// UpdateField sets one draft field and clears that field's error.
func (c *Controller) UpdateField(name, value string) error {
	f, err := core.ParseField(name)
	if err != nil {
		return err
	}
	c.draft = c.draft.Set(f, value)
	delete(c.errors, f)
	return nil
}

// BeginEdit loads note into the draft and targets it.
// Calling it while editing switches to the new target.
func (c *Controller) BeginEdit(note core.Note) {
	c.draft = note.Draft()
	c.mode = Editing(note.ID)
	c.errors = core.ValidationErrors{}
	c.logger.Debug("editing note", "id", note.ID)
}

// BeginEditByID looks id up and begins editing it.
// An unknown id returns core.ErrNotFound and leaves the form unchanged.
func (c *Controller) BeginEditByID(ctx context.Context, id string) error {
	note, err := c.notes.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("begin edit %s: %w", id, err)
	}
	c.BeginEdit(note)
	return nil
}

// Cancel abandons the current draft and returns to Creating.
func (c *Controller) Cancel() {
	c.reset()
}

// Submit validates the draft and dispatches it.
//
// A validation failure is not an error: the result is Rejected, the errors
// are kept on the controller and the draft is left as typed. An error is
// returned only when id generation or the store fails, in which case the
// draft is also kept. Editing a note that was deleted meanwhile is not a
// failure: the edit is dropped, the form resets and the result is Discarded.
func (c *Controller) Submit(ctx context.Context) (SubmitResult, error) {
	if errs := core.Validate(c.draft); len(errs) > 0 {
		c.errors = errs
		c.logger.Debug("submit rejected", "fields", errs.Fields())
		return SubmitResult{Outcome: Rejected, Errors: errs.Clone()}, nil
	}

	var (
		intent  core.Intent
		outcome Outcome
	)
	if c.mode.IsEditing() {
		note := c.draft.Note()
		note.ID = c.mode.Target()
		intent, outcome = core.EditIntent(note), Updated
	} else {
		id, err := c.ids.NewID(ctx, func(id string) bool { return c.notes.Exists(ctx, id) })
		if err != nil {
			return SubmitResult{}, fmt.Errorf("submit: %w", err)
		}
		note := c.draft.Note()
		note.ID = id
		intent, outcome = core.AddIntent(note), Added
	}

	stored, err := c.notes.Dispatch(ctx, intent)
	if err != nil {
		if intent.Kind == core.IntentEdit && errors.Is(err, core.ErrNotFound) {
			c.logger.Warn("edit target no longer exists", "id", intent.ID)
			c.reset()
			return SubmitResult{Outcome: Discarded, Note: intent.Note}, nil
		}
		return SubmitResult{}, fmt.Errorf("submit: %w", err)
	}

	c.logger.Info("note "+outcome.String(), "id", stored.ID)
	c.reset()
	return SubmitResult{Outcome: outcome, Note: stored}, nil
}

func (c *Controller) reset() {
	c.draft = core.Draft{}
	c.mode = Creating()
	c.errors = core.ValidationErrors{}
}
