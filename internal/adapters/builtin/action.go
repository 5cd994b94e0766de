package builtin

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.trai.ch/anvil/internal/core/domain"
	"go.trai.ch/anvil/internal/core/ports"
	"go.trai.ch/zerr"
)

// Action is a plain function the action role adapts into a task.
// args holds the element's expanded attributes; paths in it are relative to baseDir.
type Action func(ctx context.Context, baseDir string, args map[string]string) error

// ActionContract is the contract of the action role: every instance must be executable.
func ActionContract(c ports.Component) error {
	if _, ok := c.(ports.Task); !ok {
		return zerr.With(zerr.Wrap(domain.ErrNotATask, "action contract violated"), "type", fmt.Sprintf("%T", c))
	}
	return nil
}

// ActionAdapter turns an Action into a factory of tasks.
func ActionAdapter(impl any) (ports.Factory, error) {
	var fn Action
	switch v := impl.(type) {
	case Action:
		fn = v
	case func(context.Context, string, map[string]string) error:
		fn = v
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidImplementation, "not an action"), "type", fmt.Sprintf("%T", impl))
	}
	return func() (ports.Component, error) {
		return &actionTask{fn: fn}, nil
	}, nil
}

type actionTask struct {
	base
	fn   Action
	args map[string]string
}

var _ ports.Configurable = (*actionTask)(nil)

func (a *actionTask) Configure(el *domain.Element, ctx *domain.Context) error {
	if err := noChildren(el); err != nil {
		return err
	}
	args, err := attributes(el, ctx)
	if err != nil {
		return err
	}
	a.args = args
	return nil
}

func (a *actionTask) Validate() error { return nil }

func (a *actionTask) Execute(ctx context.Context, _, _ io.Writer) error {
	return a.fn(ctx, a.ctx.Property(domain.KeyBaseDir), a.args)
}

// Mkdir creates the directory named by the dir argument, with parents.
func Mkdir(_ context.Context, baseDir string, args map[string]string) error {
	dir, ok := args["dir"]
	if !ok || dir == "" {
		return missing("mkdir", "dir")
	}
	return os.MkdirAll(join(baseDir, dir), domain.DirPerm)
}

// Delete removes the file or directory tree named by the path argument.
// A missing path is not an error.
func Delete(_ context.Context, baseDir string, args map[string]string) error {
	path, ok := args["path"]
	if !ok || path == "" {
		return missing("delete", "path")
	}
	return os.RemoveAll(join(baseDir, path))
}
