// Package memory provides the default Store: an ordered slice held for the
// lifetime of the process.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/jot/pkg/core"
)

// subscriberBuffer is the per-subscriber channel size.
const subscriberBuffer = 16

// Store keeps notes in insertion order.
type Store struct {
	mu      sync.RWMutex
	notes   []core.Note
	subs    map[int]chan core.Event
	nextSub int
	dropped int
}

// NewStore creates a store holding the given notes, in order.
func NewStore(seed ...core.Note) *Store {
	return &Store{
		notes: append([]core.Note(nil), seed...),
		subs:  make(map[int]chan core.Event),
	}
}

// List returns a snapshot of the notes.
func (s *Store) List(_ context.Context) ([]core.Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]core.Note(nil), s.notes...), nil
}

// Get retrieves a note by ID.
func (s *Store) Get(_ context.Context, id string) (core.Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(id); i >= 0 {
		return s.notes[i], nil
	}
	return core.Note{}, core.ErrNotFound
}

// Add appends a note.
func (s *Store) Add(_ context.Context, n core.Note) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(n.ID) >= 0 {
		return core.ErrDuplicateID
	}
	s.notes = append(s.notes, n)
	s.publish(core.EventCreate, n.ID)
	return nil
}

// Edit replaces the note with the same ID in place.
func (s *Store) Edit(_ context.Context, n core.Note) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(n.ID)
	if i < 0 {
		return core.ErrNotFound
	}
	s.notes[i] = n
	s.publish(core.EventModify, n.ID)
	return nil
}

// Delete removes the note with the given ID. Unknown ids are ignored.
func (s *Store) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil
	}
	s.notes = append(s.notes[:i:i], s.notes[i+1:]...)
	s.publish(core.EventDelete, id)
	return nil
}

// Len returns the number of notes.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.notes)
}

// Watch subscribes to change events until ctx is done.
func (s *Store) Watch(ctx context.Context) (<-chan core.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ch := make(chan core.Event, subscriberBuffer)

	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = ch
	s.mu.Unlock()

	lifecycle.Go(ctx, func(ctx context.Context) error {
		<-ctx.Done()
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
		close(ch)
		return nil
	})
	return ch, nil
}

// publish must be called with s.mu held for writing.
func (s *Store) publish(t core.EventType, id string) {
	e := core.Event{Type: t, ID: id, Timestamp: time.Now().Unix()}
	for _, ch := range s.subs {
		select {
		case ch <- e:
		default:
			s.dropped++
		}
	}
}

func (s *Store) indexOf(id string) int {
	for i, n := range s.notes {
		if n.ID == id {
			return i
		}
	}
	return -1
}
