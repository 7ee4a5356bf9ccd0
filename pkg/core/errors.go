package core

import "errors"

// Common errors.
var (
	ErrNotFound      = errors.New("note not found")
	ErrDuplicateID   = errors.New("note id already exists")
	ErrEmptyID       = errors.New("note ID cannot be empty")
	ErrUnknownIntent = errors.New("unknown intent")
	ErrUnknownField  = errors.New("unknown field")
)
