// Package jot is the Composition Root for the jot note manager.
//
// It wires the domain (notes, drafts, validation, intents) to the default
// in-memory store and exposes the form controller that turns typed input
// into create and edit intents.
//
// Notes live for the lifetime of the process; there is no persistence layer.
//
// Usage:
//
//	svc, err := jot.New(jot.WithLogger(logger))
//	f := jot.NewForm(svc)
//
//	_ = f.UpdateField("title", "Pay rent")
//	_ = f.UpdateField("description", "Transfer before the 5th")
//	_ = f.UpdateField("date", "2024-06-01")
//	_ = f.UpdateField("priority", "high")
//	res, err := f.Submit(ctx)
package jot
