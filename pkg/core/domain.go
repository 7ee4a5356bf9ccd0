package core

import "fmt"

// IntentKind names a mutation request sent to the store.
type IntentKind string

const (
	IntentAdd    IntentKind = "ADD"
	IntentEdit   IntentKind = "EDIT"
	IntentDelete IntentKind = "DELETE"
)

// Intent is a described mutation. Add and Edit carry a Note, Delete an ID.
type Intent struct {
	Kind IntentKind
	Note Note
	ID   string
}

// AddIntent builds an ADD intent.
func AddIntent(n Note) Intent { return Intent{Kind: IntentAdd, Note: n, ID: n.ID} }

// EditIntent builds an EDIT intent.
func EditIntent(n Note) Intent { return Intent{Kind: IntentEdit, Note: n, ID: n.ID} }

// DeleteIntent builds a DELETE intent.
func DeleteIntent(id string) Intent { return Intent{Kind: IntentDelete, ID: id} }

// EventType represents the type of change in the store.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a change in the store.
type Event struct {
	Type      EventType
	ID        string
	Timestamp int64 // Unix timestamp
}

func (e Event) String() string {
	return fmt.Sprintf("%s %s", e.Type, e.ID)
}
