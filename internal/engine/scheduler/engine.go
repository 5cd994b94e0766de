// Package scheduler implements the project engine that runs targets and their tasks.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"path/filepath"
	"sync"

	"go.trai.ch/anvil/internal/core/domain"
	"go.trai.ch/anvil/internal/core/ports"
	"go.trai.ch/anvil/internal/engine/aspect"
	"go.trai.ch/anvil/internal/engine/deployer"
	"go.trai.ch/anvil/internal/engine/registry"
	"go.trai.ch/zerr"
)

// Engine runs targets of a project.
// A single Engine may run many projects, one run at a time per project instance.
type Engine struct {
	registry  *registry.Registry
	deployer  *deployer.Deployer
	pipeline  *aspect.Pipeline
	logger    ports.Logger
	listeners multicast
	sink      ports.OutputHandler

	mu          sync.RWMutex
	targetState map[domain.InternedString]domain.TargetState
}

// New creates an engine that resolves tasks through reg and deploys project libraries with dep.
// dep may be nil when projects declare no libraries.
func New(reg *registry.Registry, dep *deployer.Deployer, logger ports.Logger) *Engine {
	return &Engine{
		registry:    reg,
		deployer:    dep,
		pipeline:    aspect.New(),
		logger:      logger,
		targetState: make(map[domain.InternedString]domain.TargetState),
	}
}

// Pipeline returns the aspect pipeline every task goes through.
func (e *Engine) Pipeline() *aspect.Pipeline {
	return e.pipeline
}

// AddListener registers l. Listeners are notified in registration order.
func (e *Engine) AddListener(l ports.Listener) {
	e.listeners = append(e.listeners, l)
}

// SetOutput sets where task output goes when the task does not handle it itself.
func (e *Engine) SetOutput(sink ports.OutputHandler) {
	e.sink = sink
}

// Run executes targets of project, or its default target when none are given.
func (e *Engine) Run(ctx context.Context, project *domain.Project, targets ...string) error {
	if len(targets) == 0 {
		if project.DefaultTargetName() == "" {
			return zerr.With(zerr.Wrap(domain.ErrNoTargetsSpecified, "failed to start build"), "project", project.Name())
		}
		targets = []string{project.DefaultTargetName()}
	}

	state := e.newRunState(ctx)
	root := state.project(project, "")

	state.notify(func(l ports.Listener) error { return l.ProjectStarted(project.Name()) })

	var err error
	for _, name := range targets {
		if err = state.ctx.Err(); err != nil {
			break
		}
		if err = state.executeTarget(root, name); err != nil {
			break
		}
	}

	state.notify(func(l ports.Listener) error { return l.ProjectFinished(err) })
	e.setTargetState(root.states)

	if errors.Is(err, domain.ErrTaskFailed) {
		err = fmt.Errorf("%w: %w", domain.ErrBuildFailed, err)
	}
	if len(state.listenerErrs) > 0 {
		err = errors.Join(err, fmt.Errorf("%w: %w", domain.ErrListenerFailed, errors.Join(state.listenerErrs...)))
	}
	return err
}

func (e *Engine) setTargetState(states map[domain.InternedString]domain.TargetState) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.targetState = maps.Clone(states)
}

// runState is the bookkeeping of one Run.
type runState struct {
	e            *Engine
	ctx          context.Context
	projects     map[*domain.Project]*projectState
	listenerErrs []error
}

// projectState tracks a project taking part in a run, including referenced projects.
// prefix is the reference path from the root project, such as "shared->".
type projectState struct {
	project  *domain.Project
	prefix   string
	registry *registry.Registry
	states   map[domain.InternedString]domain.TargetState
	prepared bool
}

// qualify returns the name listeners see for a target of ps.
func (ps *projectState) qualify(name string) string {
	return ps.prefix + name
}

func (e *Engine) newRunState(ctx context.Context) *runState {
	return &runState{
		e:        e,
		ctx:      ctx,
		projects: make(map[*domain.Project]*projectState),
	}
}

func (r *runState) project(p *domain.Project, prefix string) *projectState {
	ps, ok := r.projects[p]
	if !ok {
		ps = &projectState{
			project:  p,
			prefix:   prefix,
			registry: r.e.registry.Child(),
			states:   make(map[domain.InternedString]domain.TargetState),
		}
		r.projects[p] = ps
	}
	return ps
}

// prepare deploys the project's libraries and runs its implicit target, once per run.
func (r *runState) prepare(ps *projectState) error {
	if ps.prepared {
		return nil
	}
	ps.prepared = true

	if err := r.deployLibraries(ps); err != nil {
		return err
	}

	implicit := ps.project.ImplicitTarget()
	if implicit == nil {
		return nil
	}
	for _, el := range implicit.Elements() {
		if err := r.executeElement(ps, "", ps.project.Context(), el); err != nil {
			return err
		}
	}
	return nil
}

func (r *runState) deployLibraries(ps *projectState) error {
	libs := ps.project.Libraries()
	if len(libs) == 0 {
		return nil
	}
	if r.e.deployer == nil {
		return zerr.With(zerr.Wrap(domain.ErrDeployFailed, "no library deployer configured"), "project", ps.project.Name())
	}

	dep := r.e.deployer.Into(ps.registry)
	for _, lib := range libs {
		location := lib.Location
		if !filepath.IsAbs(location) {
			location = filepath.Join(ps.project.BaseDir(), location)
		}
		keys, err := dep.Deploy(r.ctx, location, deployer.Options{
			Policy:  lib.Policy,
			Aliases: lib.Aliases,
			Role:    lib.Role,
			Name:    lib.Name,
		})
		if err != nil {
			return err
		}
		r.log(domain.LogLevelDebug, fmt.Sprintf("deployed %d definitions from %s", len(keys), location), nil)
	}
	return nil
}

func (r *runState) executeTarget(ps *projectState, name string) error {
	if ref, target, ok := domain.SplitReference(name); ok {
		other, found := ps.project.Reference(ref)
		if !found {
			return zerr.With(zerr.With(zerr.Wrap(domain.ErrReferenceNotFound, "failed to resolve target"),
				"reference", ref), "project", ps.project.Name())
		}
		return r.executeTarget(r.project(other, ps.qualify(ref)+domain.ReferenceSeparator), target)
	}

	if err := r.prepare(ps); err != nil {
		return err
	}

	target, ok := ps.project.GetTarget(name)
	if !ok {
		return zerr.With(zerr.With(zerr.Wrap(domain.ErrTargetNotFound, "failed to resolve target"),
			"target", name), "project", ps.project.Name())
	}

	key := target.Name()
	if ps.states[key] != domain.TargetNotStarted {
		return nil
	}
	// Marked before the dependencies are visited: a cycle runs each member once.
	ps.states[key] = domain.TargetRunning

	for _, dep := range target.Dependencies() {
		if err := r.executeTarget(ps, dep.String()); err != nil {
			return err
		}
	}

	tctx := ps.project.Context().Child()
	tctx.Set(domain.KeyTargetName, name)

	qualified := ps.qualify(name)
	r.notify(func(l ports.Listener) error { return l.TargetStarted(qualified) })

	var err error
	if cond := target.Condition(); cond.Evaluate(tctx) {
		for _, el := range target.Elements() {
			if err = r.executeElement(ps, qualified, tctx, el); err != nil {
				break
			}
		}
	} else {
		r.log(domain.LogLevelDebug, fmt.Sprintf("skipped target %s: %s", qualified, cond), nil)
		r.notify(func(l ports.Listener) error {
			if s, ok := l.(ports.SkipObserver); ok {
				return s.TargetSkipped(qualified, cond.String())
			}
			return nil
		})
	}

	ps.states[key] = domain.TargetDone
	r.notify(func(l ports.Listener) error { return l.TargetFinished(qualified, err) })
	return err
}

func (r *runState) executeElement(ps *projectState, target string, parent *domain.Context, el *domain.Element) error {
	if err := r.ctx.Err(); err != nil {
		return err
	}

	name := el.Name()
	tctx := parent.Child()
	tctx.Set(domain.KeyTaskName, name)

	r.notify(func(l ports.Listener) error { return l.TaskStarted(name) })
	err := r.runElement(ps, tctx, el)
	if err != nil && !isResolutionError(err) {
		err = zerr.With(zerr.With(zerr.With(fmt.Errorf("%w: %w", domain.ErrTaskFailed, err),
			"target", target), "task", name), "location", el.Location())
	}
	r.notify(func(l ports.Listener) error { return l.TaskFinished(name, err) })
	return err
}

func (r *runState) runElement(ps *projectState, tctx *domain.Context, el *domain.Element) error {
	key := domain.ElementKey(el.Name())
	factory, err := ps.registry.ResolveContext(r.ctx, key.Role, key.Name)
	if err != nil {
		return err
	}

	component, err := r.e.pipeline.Create(factory, el, tctx, el.Name())
	if err != nil {
		return err
	}

	task, ok := component.(ports.Task)
	if !ok {
		return zerr.With(zerr.Wrap(domain.ErrNotATask, "failed to execute element"), "element", el.Name())
	}
	return r.e.pipeline.Execute(r.ctx, task, el, r.e.sink)
}

func isResolutionError(err error) bool {
	return errors.Is(err, domain.ErrUnknownType) || errors.Is(err, domain.ErrUnknownRole)
}

func (r *runState) notify(fn func(ports.Listener) error) {
	if err := r.e.listeners.each(fn); err != nil {
		r.listenerErrs = append(r.listenerErrs, err)
	}
}

func (r *runState) log(level domain.LogLevel, msg string, cause error) {
	if level == domain.LogLevelDebug {
		r.e.logger.Debug(msg)
	}
	r.notify(func(l ports.Listener) error { return l.Log(level, msg, cause) })
}
