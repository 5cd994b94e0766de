package builtin

import (
	"context"
	"fmt"
	"io"

	"go.trai.ch/anvil/internal/core/domain"
	"go.trai.ch/anvil/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.Configurable = (*Echo)(nil)
	_ ports.Configurable = (*Property)(nil)
	_ ports.Configurable = (*Fail)(nil)
)

// Echo prints its message, given as the message attribute or as content.
type Echo struct {
	base
	message string
}

// Configure reads the message.
func (e *Echo) Configure(el *domain.Element, ctx *domain.Context) error {
	attrs, err := attributes(el, ctx, "message")
	if err != nil {
		return err
	}
	if err := noChildren(el); err != nil {
		return err
	}
	e.message = attrs["message"]
	if e.message == "" {
		e.message = ctx.Expand(el.Content())
	}
	return nil
}

// Validate accepts any message, including none.
func (e *Echo) Validate() error { return nil }

// Execute writes the message to stdout.
func (e *Echo) Execute(_ context.Context, stdout, _ io.Writer) error {
	_, err := fmt.Fprintln(stdout, e.message)
	return err
}

// Property sets a project property unless it is already set.
// Properties are written to the project's root context so every later target sees them.
type Property struct {
	base
	key   string
	value string
}

// Configure reads name and value.
func (p *Property) Configure(el *domain.Element, ctx *domain.Context) error {
	attrs, err := attributes(el, ctx, "name", "value")
	if err != nil {
		return err
	}
	if err := noChildren(el); err != nil {
		return err
	}
	p.key = attrs["name"]
	p.value = attrs["value"]
	return nil
}

// Validate requires a name.
func (p *Property) Validate() error {
	if p.key == "" {
		return missing(p.name, "name")
	}
	return nil
}

// Execute sets the property. The first value set wins.
func (p *Property) Execute(context.Context, io.Writer, io.Writer) error {
	root := p.ctx
	for root.Parent() != nil {
		root = root.Parent()
	}
	if _, ok := root.Get(p.key); !ok {
		root.Set(p.key, p.value)
	}
	return nil
}

// Fail stops the build with a message.
type Fail struct {
	base
	message string
}

// Configure reads the message.
func (f *Fail) Configure(el *domain.Element, ctx *domain.Context) error {
	attrs, err := attributes(el, ctx, "message")
	if err != nil {
		return err
	}
	if err := noChildren(el); err != nil {
		return err
	}
	f.message = attrs["message"]
	if f.message == "" {
		f.message = ctx.Expand(el.Content())
	}
	return nil
}

// Validate accepts any message.
func (f *Fail) Validate() error { return nil }

// Execute always fails.
func (f *Fail) Execute(context.Context, io.Writer, io.Writer) error {
	if f.message == "" {
		return zerr.New("build stopped by fail task")
	}
	return zerr.New(f.message)
}
