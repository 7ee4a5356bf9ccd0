// Package lifecycle publishes note changes as lifecycle events.
package lifecycle

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/aretw0/introspection"
	"github.com/aretw0/lifecycle"

	"github.com/aretw0/jot/pkg/core"
)

// Change is a note change carried as a lifecycle.Event.
type Change struct {
	Kind core.IntentKind
	ID   string
	At   time.Time
}

// ChangeOf maps a store event back to the intent kind that caused it.
func ChangeOf(e core.Event) Change {
	c := Change{ID: e.ID}
	switch e.Type {
	case core.EventCreate:
		c.Kind = core.IntentAdd
	case core.EventModify:
		c.Kind = core.IntentEdit
	case core.EventDelete:
		c.Kind = core.IntentDelete
	}
	if e.Timestamp != 0 {
		c.At = time.Unix(e.Timestamp, 0)
	}
	return c
}

func (c Change) String() string {
	switch c.Kind {
	case core.IntentAdd:
		return fmt.Sprintf("note %s added", c.ID)
	case core.IntentEdit:
		return fmt.Sprintf("note %s updated", c.ID)
	case core.IntentDelete:
		return fmt.Sprintf("note %s deleted", c.ID)
	}
	return fmt.Sprintf("note %s changed", c.ID)
}

// Feed relays store events as Changes and keeps a tally per intent kind.
type Feed struct {
	events <-chan core.Event
	out    chan lifecycle.Event

	mu      sync.Mutex
	relayed map[core.IntentKind]int
	last    string
}

// NewFeed creates a Feed reading from events, typically core.Service.Watch.
func NewFeed(events <-chan core.Event) *Feed {
	return &Feed{
		events:  events,
		out:     make(chan lifecycle.Event),
		relayed: make(map[core.IntentKind]int),
	}
}

// Events implements lifecycle.Source. The channel closes when the input
// closes or the context passed to Start is done.
func (f *Feed) Events() <-chan lifecycle.Event {
	return f.out
}

// Start implements lifecycle.Source.
func (f *Feed) Start(ctx context.Context) error {
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(f.out)
		for {
			select {
			case <-ctx.Done():
				return nil
			case e, ok := <-f.events:
				if !ok {
					return nil
				}
				c := ChangeOf(e)
				f.record(c)
				select {
				case f.out <- c:
				case <-ctx.Done():
					return nil
				}
			}
		}
	})
	return nil
}

func (f *Feed) record(c Change) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.relayed[c.Kind]++
	f.last = c.String()
}

// FeedState reports how many changes went through the feed.
type FeedState struct {
	Relayed map[core.IntentKind]int `json:"relayed"`
	Last    string                  `json:"last,omitempty"`
}

// State implements introspection.Introspectable.
func (f *Feed) State() any {
	f.mu.Lock()
	defer f.mu.Unlock()

	relayed := make(map[core.IntentKind]int, len(f.relayed))
	for k, n := range f.relayed {
		relayed[k] = n
	}
	return FeedState{Relayed: relayed, Last: f.last}
}

// ComponentType implements introspection.Component.
func (f *Feed) ComponentType() string {
	return "feed"
}

var _ lifecycle.Source = (*Feed)(nil)
var _ introspection.Introspectable = (*Feed)(nil)
var _ introspection.Component = (*Feed)(nil)
