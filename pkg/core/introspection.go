package core

import (
	"context"

	"github.com/aretw0/introspection"
)

// ServiceState is the service as reported by the "state" command.
type ServiceState struct {
	Notes    int                `json:"notes"`
	Applied  map[IntentKind]int `json:"applied"`
	Rejected int                `json:"rejected"`

	EventBufferSize int    `json:"event_buffer_size"`
	StoreType       string `json:"store_type"`
	// Store holds the store's own state when it exposes one.
	Store any `json:"store,omitempty"`
}

// State implements introspection.Introspectable.
func (s *Service) State() any {
	state := ServiceState{
		Notes:     -1,
		StoreType: "store",
	}
	if notes, err := s.store.List(context.Background()); err == nil {
		state.Notes = len(notes)
	}
	if comp, ok := s.store.(introspection.Component); ok {
		state.StoreType = comp.ComponentType()
	}
	if in, ok := s.store.(introspection.Introspectable); ok {
		state.Store = in.State()
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	state.EventBufferSize = s.eventBufferSize
	state.Rejected = s.rejected
	state.Applied = make(map[IntentKind]int, len(s.applied))
	for k, n := range s.applied {
		state.Applied[k] = n
	}
	return state
}

// ComponentType implements introspection.Component.
func (s *Service) ComponentType() string {
	return "service"
}

var _ introspection.Introspectable = (*Service)(nil)
var _ introspection.Component = (*Service)(nil)
