package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/aretw0/lifecycle"
)

// DefaultEventBuffer is the broker buffer used when none is configured.
const DefaultEventBuffer = 100

// Service applies intents to an injected Store and guards its invariants.
type Service struct {
	mu              sync.RWMutex
	store           Store
	logger          *slog.Logger
	eventBufferSize int

	applied  map[IntentKind]int
	rejected int
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithServiceLogger sets the logger used for intent tracing.
func WithServiceLogger(logger *slog.Logger) ServiceOption {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithEventBufferSize sets the size of the Watch broker buffer.
// Zero or negative means DefaultEventBuffer.
func WithEventBufferSize(size int) ServiceOption {
	return func(s *Service) {
		if size > 0 {
			s.eventBufferSize = size
		}
	}
}

// NewService creates a new Service.
func NewService(store Store, opts ...ServiceOption) *Service {
	s := &Service{
		store:           store,
		logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		eventBufferSize: DefaultEventBuffer,
		applied:         make(map[IntentKind]int),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Dispatch applies a single intent and returns the affected note.
// For Delete the returned note is the zero value.
func (s *Service) Dispatch(ctx context.Context, in Intent) (Note, error) {
	var (
		note Note
		err  error
	)
	switch in.Kind {
	case IntentAdd:
		note, err = in.Note, s.Add(ctx, in.Note)
	case IntentEdit:
		note, err = in.Note, s.Edit(ctx, in.Note)
	case IntentDelete:
		err = s.Delete(ctx, in.ID)
	default:
		return Note{}, fmt.Errorf("%w: %q", ErrUnknownIntent, in.Kind)
	}
	s.count(in.Kind, err)
	return note, err
}

func (s *Service) count(kind IntentKind, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var verrs ValidationErrors
	switch {
	case err == nil:
		s.applied[kind]++
	case errors.As(err, &verrs):
		s.rejected++
	}
}

// Add appends a new, valid note.
func (s *Service) Add(ctx context.Context, n Note) error {
	if err := checkNote(n); err != nil {
		return err
	}
	if err := s.store.Add(ctx, n); err != nil {
		return fmt.Errorf("add note %s: %w", n.ID, err)
	}
	s.logger.Debug("note added", "id", n.ID, "priority", n.Priority)
	return nil
}

// Edit replaces an existing note in place.
func (s *Service) Edit(ctx context.Context, n Note) error {
	if err := checkNote(n); err != nil {
		return err
	}
	if err := s.store.Edit(ctx, n); err != nil {
		return fmt.Errorf("edit note %s: %w", n.ID, err)
	}
	s.logger.Debug("note edited", "id", n.ID)
	return nil
}

// Delete removes a note. Deleting an unknown id is not an error.
func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrEmptyID
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete note %s: %w", id, err)
	}
	s.logger.Debug("note deleted", "id", id)
	return nil
}

// Get retrieves a note.
func (s *Service) Get(ctx context.Context, id string) (Note, error) {
	if id == "" {
		return Note{}, ErrEmptyID
	}
	return s.store.Get(ctx, id)
}

// List retrieves all notes in store order.
func (s *Service) List(ctx context.Context) ([]Note, error) {
	return s.store.List(ctx)
}

// Exists reports whether a note with id is present.
func (s *Service) Exists(ctx context.Context, id string) bool {
	_, err := s.store.Get(ctx, id)
	return err == nil
}

// Watch observes changes in the store if supported.
// Events are buffered so a slow reader never stalls the store.
func (s *Service) Watch(ctx context.Context) (<-chan Event, error) {
	w, ok := s.store.(Watchable)
	if !ok {
		return nil, errors.New("store does not support watching")
	}

	upstream, err := w.Watch(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	size := s.eventBufferSize
	s.mu.RUnlock()

	out := make(chan Event, size)
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return nil
			case e, ok := <-upstream:
				if !ok {
					return nil
				}
				select {
				case out <- e:
				default:
					s.logger.Warn("event buffer full, dropping event", "event", e.String())
				}
			}
		}
	})
	return out, nil
}

func checkNote(n Note) error {
	if n.ID == "" {
		return ErrEmptyID
	}
	if errs := Validate(n.Draft()); len(errs) > 0 {
		return errs
	}
	return nil
}
