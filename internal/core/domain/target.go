package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// ReferenceSeparator splits a cross-project target reference such as "shared->lint".
const ReferenceSeparator = "->"

// Target is a named, optionally guarded unit of scheduling holding an ordered list of build elements.
type Target struct {
	name         InternedString
	description  string
	dependencies []InternedString
	condition    *Condition
	elements     []*Element
}

// NewTarget creates a target. At most one of ifProperty and unlessProperty may be set.
func NewTarget(name string, dependencies []string, ifProperty, unlessProperty string) (*Target, error) {
	if name == "" {
		return nil, zerr.With(zerr.Wrap(ErrMissingAttribute, "invalid target"), "attribute", "name")
	}
	if ifProperty != "" && unlessProperty != "" {
		return nil, zerr.With(zerr.Wrap(ErrConflictingCondition, "invalid target"), "target", name)
	}

	t := &Target{
		name:         NewInternedString(name),
		dependencies: NewInternedStrings(dependencies),
	}

	switch {
	case ifProperty != "":
		t.condition = &Condition{Property: ifProperty}
	case unlessProperty != "":
		t.condition = &Condition{Unless: true, Property: unlessProperty}
	}

	return t, nil
}

// Name returns the target name.
func (t *Target) Name() InternedString {
	return t.name
}

// Description returns the human readable description.
func (t *Target) Description() string {
	return t.description
}

// SetDescription sets the human readable description.
func (t *Target) SetDescription(desc string) {
	t.description = desc
}

// Dependencies returns the dependency names in declared order.
func (t *Target) Dependencies() []InternedString {
	return t.dependencies
}

// Condition returns the guard condition, or nil when the target always runs.
func (t *Target) Condition() *Condition {
	return t.condition
}

// Elements returns the build elements in declared order.
func (t *Target) Elements() []*Element {
	return t.elements
}

// AddElement appends a build element.
func (t *Target) AddElement(el *Element) {
	t.elements = append(t.elements, el)
}

// SplitReference splits "project->target" into its parts.
// ok is false for a plain target name.
func SplitReference(name string) (project, target string, ok bool) {
	return strings.Cut(name, ReferenceSeparator)
}
