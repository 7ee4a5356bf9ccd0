package form

import (
	"github.com/aretw0/introspection"

	"github.com/aretw0/jot/pkg/core"
)

// ControllerState exposes internal state for observability.
type ControllerState struct {
	Mode   string                `json:"mode"`
	Draft  core.Draft            `json:"draft"`
	Errors core.ValidationErrors `json:"errors,omitempty"`
}

// State implements introspection.Introspectable.
func (c *Controller) State() any {
	return ControllerState{
		Mode:   c.mode.String(),
		Draft:  c.draft,
		Errors: c.errors.Clone(),
	}
}

// ComponentType implements introspection.Component.
func (c *Controller) ComponentType() string {
	return "form"
}

var _ introspection.Introspectable = (*Controller)(nil)
var _ introspection.Component = (*Controller)(nil)
