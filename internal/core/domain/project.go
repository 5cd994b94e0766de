// Package domain contains the build model: projects, targets, build elements,
// execution contexts and the values the engine passes between them.
package domain

import (
	"go.trai.ch/zerr"
)

// Project is a named collection of targets plus an optional implicit target.
// It is populated by a loader and is read-only while a build runs.
type Project struct {
	name          string
	baseDir       string
	defaultTarget string
	targets       map[InternedString]*Target
	order         []InternedString
	implicit      *Target
	libraries     []LibraryRef
	references    map[string]*Project
	refOrder      []string
	root          *Context
}

// NewProject creates an empty project rooted at baseDir.
func NewProject(name, baseDir string) *Project {
	root := NewContext(nil)
	root.Set(KeyProjectName, name)
	root.Set(KeyBaseDir, baseDir)

	return &Project{
		name:       name,
		baseDir:    baseDir,
		targets:    make(map[InternedString]*Target),
		references: make(map[string]*Project),
		root:       root,
	}
}

// Name returns the project name.
func (p *Project) Name() string {
	return p.name
}

// BaseDir returns the directory relative paths in the project resolve against.
func (p *Project) BaseDir() string {
	return p.baseDir
}

// DefaultTargetName returns the target run when none is requested.
func (p *Project) DefaultTargetName() string {
	return p.defaultTarget
}

// SetDefaultTargetName sets the target run when none is requested.
func (p *Project) SetDefaultTargetName(name string) {
	p.defaultTarget = name
}

// AddTarget registers t under its name.
// A second target with the same name is rejected and the first one is kept.
func (p *Project) AddTarget(t *Target) error {
	if _, exists := p.targets[t.name]; exists {
		return zerr.With(zerr.Wrap(ErrDuplicateTarget, "failed to add target"), "target", t.name.String())
	}
	p.targets[t.name] = t
	p.order = append(p.order, t.name)
	return nil
}

// GetTarget looks up a target by name.
func (p *Project) GetTarget(name string) (*Target, bool) {
	t, ok := p.targets[NewInternedString(name)]
	return t, ok
}

// TargetNames returns the target names in declaration order.
func (p *Project) TargetNames() []string {
	names := make([]string, len(p.order))
	for i, n := range p.order {
		names[i] = n.String()
	}
	return names
}

// ImplicitTarget returns the setup target that runs before any named target, or nil.
func (p *Project) ImplicitTarget() *Target {
	return p.implicit
}

// SetImplicitTarget sets the setup target.
func (p *Project) SetImplicitTarget(t *Target) {
	p.implicit = t
}

// Context returns the root execution context of the project.
func (p *Project) Context() *Context {
	return p.root
}

// AddLibrary records a type library the project imports before it runs.
func (p *Project) AddLibrary(ref LibraryRef) {
	p.libraries = append(p.libraries, ref)
}

// Libraries returns the imported type libraries in declaration order.
func (p *Project) Libraries() []LibraryRef {
	return p.libraries
}

// AddReference makes other addressable as name in "name->target" target references.
func (p *Project) AddReference(name string, other *Project) error {
	if _, exists := p.references[name]; exists {
		return zerr.With(zerr.Wrap(ErrDuplicateReference, "failed to add reference"), "reference", name)
	}
	p.references[name] = other
	p.refOrder = append(p.refOrder, name)
	return nil
}

// Reference returns the project registered under name.
func (p *Project) Reference(name string) (*Project, bool) {
	other, ok := p.references[name]
	return other, ok
}

// ReferenceNames returns the reference names in declaration order.
func (p *Project) ReferenceNames() []string {
	return append([]string(nil), p.refOrder...)
}
