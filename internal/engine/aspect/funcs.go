package aspect

import (
	"context"

	"go.trai.ch/anvil/internal/core/ports"
)

// Funcs implements ports.Aspect from optional hook functions. Unset hooks are no-ops.
// When PreExecuteFunc is unset the aspect still opts in to every execution as long as
// one of the post-execute or output hooks is set.
type Funcs struct {
	PreCreateFunc   func(instance ports.Component, el ports.ElementView) ports.Component
	PostCreateFunc  func(instance ports.Component, el ports.ElementView) ports.Component
	PreExecuteFunc  func(ctx context.Context, task ports.Task, scoped map[string]string) any
	PostExecuteFunc func(ctx context.Context, scope any, failure error) error
	TaskOutputFunc  func(scope any, line string) (string, bool)
	TaskErrorFunc   func(scope any, line string) (string, bool)
}

var _ ports.Aspect = (*Funcs)(nil)

// PreCreate implements ports.Aspect.
func (f *Funcs) PreCreate(instance ports.Component, el ports.ElementView) ports.Component {
	if f.PreCreateFunc == nil {
		return nil
	}
	return f.PreCreateFunc(instance, el)
}

// PostCreate implements ports.Aspect.
func (f *Funcs) PostCreate(instance ports.Component, el ports.ElementView) ports.Component {
	if f.PostCreateFunc == nil {
		return nil
	}
	return f.PostCreateFunc(instance, el)
}

// PreExecute implements ports.Aspect.
func (f *Funcs) PreExecute(ctx context.Context, task ports.Task, scoped map[string]string) any {
	if f.PreExecuteFunc != nil {
		return f.PreExecuteFunc(ctx, task, scoped)
	}
	if f.PostExecuteFunc != nil || f.TaskOutputFunc != nil || f.TaskErrorFunc != nil {
		return struct{}{}
	}
	return nil
}

// PostExecute implements ports.Aspect.
func (f *Funcs) PostExecute(ctx context.Context, scope any, failure error) error {
	if f.PostExecuteFunc == nil {
		return failure
	}
	return f.PostExecuteFunc(ctx, scope, failure)
}

// TaskOutput implements ports.Aspect.
func (f *Funcs) TaskOutput(scope any, line string) (string, bool) {
	if f.TaskOutputFunc == nil {
		return line, true
	}
	return f.TaskOutputFunc(scope, line)
}

// TaskError implements ports.Aspect.
func (f *Funcs) TaskError(scope any, line string) (string, bool) {
	if f.TaskErrorFunc == nil {
		return line, true
	}
	return f.TaskErrorFunc(scope, line)
}
