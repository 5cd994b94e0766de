package ports

import "context"

// Aspect intercepts the creation and execution of components.
//
// PreCreate and PostCreate return a replacement instance or nil to keep the current one.
// PreExecute returns a scope value to opt in to PostExecute and the output hooks for that
// execution, or nil to stay out. PostExecute returns the failure that should propagate.
// TaskOutput and TaskError return the forwarded line; keep is false to suppress it.
//
//go:generate mockgen -source=aspect.go -destination=mocks/mock_aspect.go -package=mocks
type Aspect interface {
	PreCreate(instance Component, el ElementView) Component
	PostCreate(instance Component, el ElementView) Component
	PreExecute(ctx context.Context, task Task, scoped map[string]string) any
	PostExecute(ctx context.Context, scope any, failure error) error
	TaskOutput(scope any, line string) (forwarded string, keep bool)
	TaskError(scope any, line string) (forwarded string, keep bool)
}

// ElementView is the read-only view of a build element handed to aspects.
type ElementView interface {
	Name() string
	Location() string
	Attribute(name string) (string, bool)
	NamespaceAttributes(ns string) map[string]string
}
