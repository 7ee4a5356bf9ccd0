package core

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their form name so errors key on Field values.
	v.RegisterTagNameFunc(func(sf reflect.StructField) string {
		name := sf.Tag.Get("form")
		if name == "" {
			return sf.Name
		}
		return name
	})
	return v
}

// ValidationErrors maps each offending field to a user-facing message.
// An empty set means the draft is valid.
type ValidationErrors map[Field]string

// Has reports whether f has an error.
func (v ValidationErrors) Has(f Field) bool {
	_, ok := v[f]
	return ok
}

// Fields returns the offending fields in form order.
func (v ValidationErrors) Fields() []Field {
	out := make([]Field, 0, len(v))
	for _, f := range Fields() {
		if v.Has(f) {
			out = append(out, f)
		}
	}
	return out
}

// Clone returns an independent copy.
func (v ValidationErrors) Clone() ValidationErrors {
	out := make(ValidationErrors, len(v))
	for k, msg := range v {
		out[k] = msg
	}
	return out
}

// Error implements error so the set can travel through Service calls.
func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, f := range v.Fields() {
		msgs = append(msgs, v[f])
	}
	return "invalid note: " + strings.Join(msgs, " ")
}

// Validate checks the four required fields of d after trimming.
// It is pure: d is not modified.
func Validate(d Draft) ValidationErrors {
	errs := ValidationErrors{}

	err := validate.Struct(d.trimmed())
	if err == nil {
		return errs
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		// Only returned for non-struct input.
		panic(err)
	}

	for _, fe := range fieldErrs {
		f := Field(fe.Field())
		if errs.Has(f) {
			continue
		}
		errs[f] = message(f, fe.Tag())
	}
	return errs
}

func message(f Field, tag string) string {
	switch tag {
	case "datetime":
		return "Date must be a valid YYYY-MM-DD date."
	case "oneof":
		return "Priority must be one of high, medium, low."
	}
	return label(f) + " is required."
}

func label(f Field) string {
	s := string(f)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
