package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Well-known roles. Task and datatype exist in every registry, action is declared by the built-in library.
const (
	// RoleTask is the role of executable build elements.
	RoleTask = "task"
	// RoleDataType is the role of passive, configurable values.
	RoleDataType = "datatype"
	// RoleAction is the role of plain functions adapted into tasks.
	RoleAction = "action"
)

// TypeKey identifies a registered definition.
type TypeKey struct {
	Role string
	Name string
}

// String renders the key as role/name.
func (k TypeKey) String() string {
	return k.Role + "/" + k.Name
}

// ElementKey maps a build element name to the definition it instantiates.
// A name written role:name selects the role, anything else is a task.
func ElementKey(element string) TypeKey {
	if role, name, ok := strings.Cut(element, ":"); ok && role != "" && name != "" {
		return TypeKey{Role: role, Name: name}
	}
	return TypeKey{Role: RoleTask, Name: element}
}

// FailurePolicy decides what a library deployment does with an entry it cannot resolve.
type FailurePolicy string

const (
	// PolicyFail aborts the deployment and rolls back what it registered.
	PolicyFail FailurePolicy = "fail"
	// PolicyReport logs a warning and skips the entry.
	PolicyReport FailurePolicy = "report"
	// PolicyIgnore skips the entry silently.
	PolicyIgnore FailurePolicy = "ignore"
)

// ParseFailurePolicy parses a policy name. The empty string yields PolicyFail.
func ParseFailurePolicy(s string) (FailurePolicy, error) {
	switch FailurePolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", PolicyFail:
		return PolicyFail, nil
	case PolicyReport:
		return PolicyReport, nil
	case PolicyIgnore:
		return PolicyIgnore, nil
	default:
		return "", zerr.With(zerr.Wrap(ErrInvalidFailurePolicy, "failed to parse failure policy"), "policy", s)
	}
}

// LibraryRef is a type library a project imports.
type LibraryRef struct {
	// Location is the package directory, relative to the project base directory.
	Location string
	// Role and Name restrict the deployment to a single definition when both are set.
	Role string
	Name string
	// Aliases renames definitions: declared name to registered name.
	Aliases map[string]string
	Policy  FailurePolicy
}
