// Package view derives the list of notes to display.
//
// Everything here is a pure function of a store snapshot and a Filter; no
// state is cached between calls.
package view

import (
	"fmt"
	"strings"

	"github.com/aretw0/jot/pkg/core"
)

// Placeholder is shown instead of note cards when nothing matches.
const Placeholder = "No notes found."

// Filter holds the two independent criteria of the list view.
type Filter struct {
	// Query matches titles as a case-insensitive substring. Empty matches all.
	Query string
	// Priority keeps only notes with exactly this priority. Empty keeps all.
	Priority core.Priority
}

// Match reports whether n satisfies both criteria.
func (f Filter) Match(n core.Note) bool {
	if f.Query != "" && !strings.Contains(strings.ToLower(n.Title), strings.ToLower(f.Query)) {
		return false
	}
	if f.Priority != "" && n.Priority != f.Priority {
		return false
	}
	return true
}

// Apply returns the notes matching f, preserving their order.
// The result never aliases notes.
func Apply(notes []core.Note, f Filter) []core.Note {
	out := make([]core.Note, 0, len(notes))
	for _, n := range notes {
		if f.Match(n) {
			out = append(out, n)
		}
	}
	return out
}

// Result is a filtered list ready for display.
type Result struct {
	Notes []core.Note
	// Empty is set when the placeholder should be shown instead of Notes.
	Empty bool
}

// Render applies f and marks an empty result.
func Render(notes []core.Note, f Filter) Result {
	filtered := Apply(notes, f)
	return Result{Notes: filtered, Empty: len(filtered) == 0}
}

// ParseFilterPriority accepts "", "all" or a priority name.
func ParseFilterPriority(s string) (core.Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return "", nil
	}
	p, err := core.ParsePriority(s)
	if err != nil {
		return "", fmt.Errorf("filter: %w", err)
	}
	return p, nil
}
