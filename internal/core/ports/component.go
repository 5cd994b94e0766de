package ports

import (
	"context"
	"io"

	"go.trai.ch/anvil/internal/core/domain"
)

//go:generate mockgen -source=component.go -destination=mocks/mock_component.go -package=mocks

// Component is a runtime instance bound to a build element.
type Component interface {
	// Init binds the component to the execution context it runs in and its declared name.
	Init(ctx *domain.Context, name string) error
	// Validate fails when the component is misconfigured after configuration.
	Validate() error
}

// Task is a component that can be executed.
type Task interface {
	Component
	// Execute runs the task. Output written to stdout and stderr is captured line by line.
	Execute(ctx context.Context, stdout, stderr io.Writer) error
}

// Configurable is implemented by components that accept attributes, content and nested elements.
type Configurable interface {
	Configure(el *domain.Element, ctx *domain.Context) error
}

// OutputHandler is implemented by tasks that want to receive their own captured output.
type OutputHandler interface {
	HandleOutputLine(line string)
	HandleErrorLine(line string)
}

// Factory produces a fresh component instance.
type Factory func() (Component, error)

// Adapter wraps a foreign implementation behind the component contract of a role.
type Adapter func(impl any) (Factory, error)

// Role is an orthogonal namespace of definitions, e.g. "task" or "datatype".
type Role struct {
	Name string
	// Adapter, when set, is applied to every implementation registered in the role.
	Adapter Adapter
	// Contract, when set, checks every instance produced by a factory of the role.
	Contract Contract
}

// Contract checks that a component satisfies the interface a role requires.
type Contract func(c Component) error
