package core

import "context"

// Store is the ordered, memory-resident collection of notes.
// Implementations apply each mutation atomically.
type Store interface {
	// List returns the notes in insertion order.
	List(ctx context.Context) ([]Note, error)

	// Get retrieves a note by its ID, or ErrNotFound.
	Get(ctx context.Context, id string) (Note, error)

	// Add appends a note. A taken id yields ErrDuplicateID.
	Add(ctx context.Context, n Note) error

	// Edit replaces the note with the same id, keeping its position.
	Edit(ctx context.Context, n Note) error

	// Delete removes a note by its ID. Absent ids are a no-op.
	Delete(ctx context.Context, id string) error
}

// Watchable is implemented by stores that publish change events.
type Watchable interface {
	// Watch streams events until ctx is cancelled, then closes the channel.
	Watch(ctx context.Context) (<-chan Event, error)
}
