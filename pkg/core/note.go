package core

import (
	"fmt"
	"strings"
)

// Priority ranks a note. Only the values returned by Priorities are valid.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Priorities returns the fixed set of priorities in display order.
func Priorities() []Priority {
	return []Priority{PriorityHigh, PriorityMedium, PriorityLow}
}

// Valid reports whether p is one of the known priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// ParsePriority normalizes s (trimmed, case-insensitive) into a Priority.
func ParsePriority(s string) (Priority, error) {
	p := Priority(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("invalid priority %q: must be one of high, medium, low", s)
	}
	return p, nil
}

// Note is the central entity of the domain.
// Every note held by a Store has all four user fields set and valid.
type Note struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Date        string   `json:"date" yaml:"date"`
	Priority    Priority `json:"priority" yaml:"priority"`
}

// Draft returns an editable copy of the note, id included.
func (n Note) Draft() Draft {
	return Draft{
		ID:          n.ID,
		Title:       n.Title,
		Description: n.Description,
		Date:        n.Date,
		Priority:    string(n.Priority),
	}
}
