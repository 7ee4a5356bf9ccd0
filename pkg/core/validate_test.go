package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/jot/pkg/core"
)

func validDraft() core.Draft {
	return core.Draft{
		Title:       "Pay rent",
		Description: "Transfer before the 5th",
		Date:        "2024-06-01",
		Priority:    "high",
	}
}

func TestValidate_Valid(t *testing.T) {
	errs := core.Validate(validDraft())
	assert.Empty(t, errs)
}

func TestValidate_MissingFields(t *testing.T) {
	tests := []struct {
		name    string
		missing []core.Field
	}{
		{"title", []core.Field{core.FieldTitle}},
		{"description", []core.Field{core.FieldDescription}},
		{"date", []core.Field{core.FieldDate}},
		{"priority", []core.Field{core.FieldPriority}},
		{"title and date", []core.Field{core.FieldTitle, core.FieldDate}},
		{"all", core.Fields()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDraft()
			for _, f := range tt.missing {
				d = d.Set(f, "")
			}

			errs := core.Validate(d)
			assert.Equal(t, tt.missing, errs.Fields())
		})
	}
}

func TestValidate_WhitespaceIsEmpty(t *testing.T) {
	d := validDraft()
	d.Title = "   "
	d.Description = "\t\n"

	errs := core.Validate(d)
	assert.Equal(t, "Title is required.", errs[core.FieldTitle])
	assert.Equal(t, "Description is required.", errs[core.FieldDescription])
	assert.Len(t, errs, 2)
}

func TestValidate_Messages(t *testing.T) {
	errs := core.Validate(core.Draft{})
	assert.Equal(t, core.ValidationErrors{
		core.FieldTitle:       "Title is required.",
		core.FieldDescription: "Description is required.",
		core.FieldDate:        "Date is required.",
		core.FieldPriority:    "Priority is required.",
	}, errs)
}

func TestValidate_Formats(t *testing.T) {
	d := validDraft()
	d.Date = "01/06/2024"
	d.Priority = "urgent"

	errs := core.Validate(d)
	assert.Equal(t, "Date must be a valid YYYY-MM-DD date.", errs[core.FieldDate])
	assert.Equal(t, "Priority must be one of high, medium, low.", errs[core.FieldPriority])
}

func TestValidate_DoesNotMutate(t *testing.T) {
	d := validDraft()
	d.Title = "  padded  "
	before := d

	core.Validate(d)
	assert.Equal(t, before, d)
}

func TestValidationErrors_AsError(t *testing.T) {
	var err error = core.Validate(core.Draft{Title: "x"})

	var verrs core.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.False(t, verrs.Has(core.FieldTitle))
	assert.Contains(t, err.Error(), "Description is required.")
}

func TestParseField(t *testing.T) {
	f, err := core.ParseField(" Title ")
	require.NoError(t, err)
	assert.Equal(t, core.FieldTitle, f)

	_, err = core.ParseField("color")
	assert.ErrorIs(t, err, core.ErrUnknownField)
}

func TestParsePriority(t *testing.T) {
	p, err := core.ParsePriority("HIGH")
	require.NoError(t, err)
	assert.Equal(t, core.PriorityHigh, p)

	_, err = core.ParsePriority("")
	assert.Error(t, err)
}

func TestDraft_SetNormalizesPriority(t *testing.T) {
	d := core.Draft{}.Set(core.FieldPriority, " Medium ")
	assert.Equal(t, "medium", d.Priority)
}
