package domain

import "strings"

// Condition guards a target on a property.
// An "if" condition passes when the property is truthy, an "unless" condition when it is not.
type Condition struct {
	Unless   bool
	Property string
}

// Evaluate reports whether the guarded target should run. A nil condition always passes.
func (c *Condition) Evaluate(ctx *Context) bool {
	if c == nil {
		return true
	}
	set := IsTruthy(ctx, c.Property)
	if c.Unless {
		return !set
	}
	return set
}

// String renders the condition as it is written in a project file.
func (c *Condition) String() string {
	if c == nil {
		return ""
	}
	if c.Unless {
		return "unless " + c.Property
	}
	return "if " + c.Property
}

// IsTruthy reports whether property is set in ctx to something other than
// "", "false", "no", "off" or "0" (case-insensitive).
func IsTruthy(ctx *Context, property string) bool {
	v, ok := ctx.Get(property)
	if !ok || v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	switch strings.ToLower(strings.TrimSpace(ctx.Property(property))) {
	case "", "false", "no", "off", "0":
		return false
	default:
		return true
	}
}
