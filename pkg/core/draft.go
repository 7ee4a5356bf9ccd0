package core

import (
	"fmt"
	"strings"
)

// Field names a user-editable field of a note.
type Field string

const (
	FieldTitle       Field = "title"
	FieldDescription Field = "description"
	FieldDate        Field = "date"
	FieldPriority    Field = "priority"
)

// Fields returns the editable fields in form order.
func Fields() []Field {
	return []Field{FieldTitle, FieldDescription, FieldDate, FieldPriority}
}

// ParseField resolves a field name (case-insensitive).
func ParseField(name string) (Field, error) {
	f := Field(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Fields() {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, name)
}

// Draft is the transient, possibly invalid, form state of a note.
// ID is empty for a new note and carries the target id while editing.
type Draft struct {
	ID          string `json:"id,omitempty" yaml:"id,omitempty"`
	Title       string `json:"title" yaml:"title" form:"title" validate:"required"`
	Description string `json:"description" yaml:"description" form:"description" validate:"required"`
	Date        string `json:"date" yaml:"date" form:"date" validate:"required,datetime=2006-01-02"`
	Priority    string `json:"priority" yaml:"priority" form:"priority" validate:"required,oneof=high medium low"`
}

// Get returns the value of field f.
func (d Draft) Get(f Field) string {
	switch f {
	case FieldTitle:
		return d.Title
	case FieldDescription:
		return d.Description
	case FieldDate:
		return d.Date
	case FieldPriority:
		return d.Priority
	}
	return ""
}

// Set returns a copy of d with field f replaced by value.
// Priority values are lower-cased so "High" selects high.
func (d Draft) Set(f Field, value string) Draft {
	switch f {
	case FieldTitle:
		d.Title = value
	case FieldDescription:
		d.Description = value
	case FieldDate:
		d.Date = value
	case FieldPriority:
		d.Priority = strings.ToLower(strings.TrimSpace(value))
	}
	return d
}

// IsZero reports whether no field, id included, has been filled.
func (d Draft) IsZero() bool {
	return d == Draft{}
}

// Note converts the draft to a note without validating it.
func (d Draft) Note() Note {
	return Note{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		Date:        d.Date,
		Priority:    Priority(d.Priority),
	}
}

func (d Draft) trimmed() Draft {
	return Draft{
		ID:          d.ID,
		Title:       strings.TrimSpace(d.Title),
		Description: strings.TrimSpace(d.Description),
		Date:        strings.TrimSpace(d.Date),
		Priority:    strings.TrimSpace(d.Priority),
	}
}
