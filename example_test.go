package jot_test

import (
	"bytes"
	"context"
	"fmt"
	"log"

	"github.com/aretw0/jot"
	"github.com/aretw0/jot/pkg/core"
	"github.com/aretw0/jot/pkg/ident"
	"github.com/aretw0/jot/pkg/view"
)

// Example_basic demonstrates filling the form, submitting it and reading the note back.
func Example_basic() {
	ctx := context.Background()

	// A fixed entropy source keeps the generated id stable for the example.
	ids := ident.Numeric{Length: 5, Rand: bytes.NewReader([]byte{4, 2, 0, 1, 7})}

	svc, err := jot.New()
	if err != nil {
		log.Fatal(err)
	}
	f := jot.NewForm(svc, jot.WithGenerator(ids))

	// 1. Submitting an empty form is rejected, not an error
	res, err := f.Submit(ctx)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(res.Outcome, res.Errors[core.FieldTitle])

	// 2. Fill the fields and submit again
	_ = f.UpdateField("title", "Pay rent")
	_ = f.UpdateField("description", "Transfer before the 5th")
	_ = f.UpdateField("date", "2024-06-01")
	_ = f.UpdateField("priority", "high")

	res, err = f.Submit(ctx)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(res.Outcome, res.Note.ID)

	// Output:
	// rejected Title is required.
	// added 42017
}

// Example_filter demonstrates the filtered view over seeded notes.
func Example_filter() {
	svc, err := jot.New(jot.WithSeed(
		core.Note{ID: "1", Title: "Buy milk", Description: "2L", Date: "2024-05-01", Priority: core.PriorityLow},
		core.Note{ID: "2", Title: "Pay rent", Description: "June", Date: "2024-06-01", Priority: core.PriorityHigh},
	))
	if err != nil {
		log.Fatal(err)
	}

	notes, err := svc.List(context.Background())
	if err != nil {
		log.Fatal(err)
	}

	for _, n := range view.Apply(notes, view.Filter{Query: "pay"}) {
		fmt.Println(n.ID, n.Title)
	}
	res := view.Render(notes, view.Filter{Query: "buy", Priority: core.PriorityHigh})
	fmt.Println(res.Empty)

	// Output:
	// 2 Pay rent
	// true
}
