// Package aspect runs components through the ordered chain of registered aspects.
package aspect

import (
	"context"
	"fmt"
	"sync"

	"go.trai.ch/anvil/internal/core/domain"
	"go.trai.ch/anvil/internal/core/ports"
	"go.trai.ch/zerr"
)

type entry struct {
	namespace string
	aspect    ports.Aspect
}

// Pipeline is an ordered list of aspects. The first aspect added is the outermost.
// The zero value is an empty pipeline ready to use.
type Pipeline struct {
	entries []entry
}

// New creates an empty pipeline.
func New() *Pipeline {
	return &Pipeline{}
}

// Add appends an aspect. Element attributes in namespace are handed to it as scoped values.
func (p *Pipeline) Add(namespace string, a ports.Aspect) {
	p.entries = append(p.entries, entry{namespace: namespace, aspect: a})
}

// Len returns the number of registered aspects.
func (p *Pipeline) Len() int {
	return len(p.entries)
}

// Create produces a configured, validated component for el.
// The factory is only invoked when no aspect supplied an instance during pre-create.
func (p *Pipeline) Create(
	factory ports.Factory,
	el *domain.Element,
	ctx *domain.Context,
	name string,
) (ports.Component, error) {
	var instance ports.Component
	for _, e := range p.entries {
		if replacement := e.aspect.PreCreate(instance, el); replacement != nil {
			instance = replacement
		}
	}

	if instance == nil {
		created, err := factory()
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to create component"), "element", name)
		}
		instance = created
	}

	if err := instance.Init(ctx, name); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to initialize component"), "element", name)
	}

	if err := configure(instance, el, ctx); err != nil {
		return nil, zerr.With(err, "element", name)
	}

	if err := instance.Validate(); err != nil {
		return nil, zerr.With(fmt.Errorf("%w: %w", domain.ErrValidationFailed, err), "element", name)
	}

	for _, e := range p.entries {
		if replacement := e.aspect.PostCreate(instance, el); replacement != nil {
			instance = replacement
		}
	}

	return instance, nil
}

func configure(instance ports.Component, el *domain.Element, ctx *domain.Context) error {
	if c, ok := instance.(ports.Configurable); ok {
		if err := c.Configure(el, ctx); err != nil {
			return zerr.Wrap(err, "failed to configure component")
		}
		return nil
	}

	if el == nil {
		return nil
	}
	if len(el.AttributeNames()) > 0 || len(el.Children()) > 0 || el.Content() != "" {
		return zerr.Wrap(domain.ErrUnsupportedAttribute, "failed to configure component")
	}
	return nil
}

type activeAspect struct {
	aspect ports.Aspect
	scope  any
}

// Execute runs task with its output routed through the aspects that opted in.
// Lines that survive the chain go to the task's own OutputHandler when it has one, otherwise to sink.
// Post-execute hooks run in reverse order and decide the failure that propagates.
func (p *Pipeline) Execute(
	ctx context.Context,
	task ports.Task,
	el *domain.Element,
	sink ports.OutputHandler,
) error {
	active := make([]activeAspect, 0, len(p.entries))
	for _, e := range p.entries {
		var scoped map[string]string
		if el != nil {
			scoped = el.NamespaceAttributes(e.namespace)
		}
		if scope := e.aspect.PreExecute(ctx, task, scoped); scope != nil {
			active = append(active, activeAspect{aspect: e.aspect, scope: scope})
		}
	}

	r := &router{active: active, task: task, sink: sink}
	stdout := newLineWriter(r.stdoutLine)
	stderr := newLineWriter(r.stderrLine)

	err := task.Execute(ctx, stdout, stderr)

	_ = stdout.Close()
	_ = stderr.Close()

	for i := len(active) - 1; i >= 0; i-- {
		err = active[i].aspect.PostExecute(ctx, active[i].scope, err)
	}
	return err
}

// router delivers captured lines one at a time, whichever stream they came from.
type router struct {
	mu     sync.Mutex
	active []activeAspect
	task   ports.Task
	sink   ports.OutputHandler
}

func (r *router) stdoutLine(line string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, a := range r.active {
		var keep bool
		if line, keep = a.aspect.TaskOutput(a.scope, line); !keep {
			return
		}
	}

	if h, ok := r.task.(ports.OutputHandler); ok {
		h.HandleOutputLine(line)
		return
	}
	if r.sink != nil {
		r.sink.HandleOutputLine(line)
	}
}

func (r *router) stderrLine(line string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, a := range r.active {
		var keep bool
		if line, keep = a.aspect.TaskError(a.scope, line); !keep {
			return
		}
	}

	if h, ok := r.task.(ports.OutputHandler); ok {
		h.HandleErrorLine(line)
		return
	}
	if r.sink != nil {
		r.sink.HandleErrorLine(line)
	}
}
