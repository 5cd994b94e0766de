// Package deployer installs library packages into a registry.
package deployer

import (
	"context"
	"fmt"
	"maps"
	"runtime"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/Masterminds/semver/v3"
	"github.com/cespare/xxhash/v2"
	"go.trai.ch/anvil/internal/build"
	"go.trai.ch/anvil/internal/core/domain"
	"go.trai.ch/anvil/internal/core/ports"
	"go.trai.ch/anvil/internal/engine/registry"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// Options control a single deployment.
type Options struct {
	Policy   domain.FailurePolicy
	Override bool
	// Aliases maps a name declared by the library to the name it is registered under.
	Aliases map[string]string
	// Strict fails deployments that register no definitions.
	Strict bool
	// Role and Name restrict the deployment to one definition.
	Role string
	Name string
}

// Deployer reads library descriptors and registers their roles and definitions.
type Deployer struct {
	registry *registry.Registry
	modules  *Modules
	locator  ports.LibraryLocator
	logger   ports.Logger
	version  string

	searchMu sync.RWMutex
	search   []string

	mu       sync.Mutex
	deployed map[uint64][]domain.TypeKey
	flight   singleflight.Group
}

// New creates a deployer that installs into reg.
func New(reg *registry.Registry, locator ports.LibraryLocator, logger ports.Logger) *Deployer {
	return &Deployer{
		registry: reg,
		modules:  NewModules(),
		locator:  locator,
		logger:   logger,
		version:  build.Version,
		deployed: make(map[uint64][]domain.TypeKey),
	}
}

// WithEngineVersion sets the version checked against descriptor requirements.
func (d *Deployer) WithEngineVersion(v string) *Deployer {
	d.version = v
	return d
}

// Into returns a deployer sharing d's modules, locator and search path that installs into reg.
func (d *Deployer) Into(reg *registry.Registry) *Deployer {
	d.searchMu.RLock()
	search := slices.Clone(d.search)
	d.searchMu.RUnlock()

	return &Deployer{
		registry: reg,
		modules:  d.modules,
		locator:  d.locator,
		logger:   d.logger,
		version:  d.version,
		search:   search,
		deployed: make(map[uint64][]domain.TypeKey),
	}
}

// Registry returns the registry d installs into.
func (d *Deployer) Registry() *registry.Registry {
	return d.registry
}

// RegisterModule makes a compiled-in symbol table available to descriptors naming id.
func (d *Deployer) RegisterModule(id string, table ports.SymbolTable) {
	d.modules.Register(id, table)
}

// SetSearchPath sets the directories scanned by Lookup.
func (d *Deployer) SetSearchPath(dirs ...string) {
	d.searchMu.Lock()
	defer d.searchMu.Unlock()
	d.search = slices.Clone(dirs)
}

// Deploy reads the descriptor of the package at location and deploys it.
func (d *Deployer) Deploy(ctx context.Context, location string, opts Options) ([]domain.TypeKey, error) {
	data, err := d.locator.ReadDescriptor(location)
	if err != nil {
		return nil, zerr.With(fmt.Errorf("%w: %w", domain.ErrDescriptorReadFailed, err), "library", location)
	}
	return d.DeployDescriptor(ctx, data, location, opts)
}

// DeployDescriptor deploys an in-memory descriptor. source names it in errors and logs.
// Deploying the same descriptor with the same options again returns the keys of the first
// deployment, unless that deployment skipped entries under a lenient policy.
func (d *Deployer) DeployDescriptor(
	ctx context.Context, data []byte, source string, opts Options,
) ([]domain.TypeKey, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if opts.Policy == "" {
		opts.Policy = domain.PolicyFail
	}

	fp := fingerprint(data, opts)
	v, err, _ := d.flight.Do(strconv.FormatUint(fp, 16), func() (any, error) {
		d.mu.Lock()
		keys, done := d.deployed[fp]
		d.mu.Unlock()
		if done {
			return keys, nil
		}

		keys, complete, err := d.deploy(data, source, opts)
		if err != nil {
			return nil, err
		}
		if complete {
			d.mu.Lock()
			d.deployed[fp] = keys
			d.mu.Unlock()
		}
		return keys, nil
	})
	if err != nil {
		return nil, err
	}
	return slices.Clone(v.([]domain.TypeKey)), nil
}

// DeployAll deploys every package found below dir concurrently.
func (d *Deployer) DeployAll(ctx context.Context, dir string, opts Options) ([]domain.TypeKey, error) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	var (
		mu   sync.Mutex
		keys []domain.TypeKey
	)
	for location := range d.locator.Packages(dir) {
		g.Go(func() error {
			deployed, err := d.Deploy(gctx, location, opts)
			if err != nil {
				return err
			}
			mu.Lock()
			keys = append(keys, deployed...)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	slices.SortFunc(keys, func(a, b domain.TypeKey) int {
		return strings.Compare(a.String(), b.String())
	})
	return slices.Compact(keys), nil
}

// Lookup deploys the single definition key from the first package on the search path that declares it.
// It is installed as the registry fallback; a key no package declares is not an error.
func (d *Deployer) Lookup(ctx context.Context, key domain.TypeKey) error {
	d.searchMu.RLock()
	search := slices.Clone(d.search)
	d.searchMu.RUnlock()

	for _, root := range search {
		for location := range d.locator.Packages(root) {
			data, err := d.locator.ReadDescriptor(location)
			if err != nil {
				d.logger.Debug(fmt.Sprintf("skipping %s: %v", location, err))
				continue
			}
			desc, err := ParseDescriptor(data)
			if err != nil || !desc.Declares(key) {
				continue
			}

			d.logger.Debug(fmt.Sprintf("deploying %s on demand from %s", key, location))
			_, err = d.DeployDescriptor(ctx, data, location, Options{
				Policy: domain.PolicyReport,
				Role:   key.Role,
				Name:   key.Name,
			})
			return err
		}
	}
	return nil
}

// deployment tracks what a single deploy has changed so it can be undone.
type deployment struct {
	reg      *registry.Registry
	roles    []string
	keys     []domain.TypeKey
	previous map[domain.TypeKey]ports.Factory
}

func (dp *deployment) rollback() {
	for _, key := range slices.Backward(dp.keys) {
		if f, ok := dp.previous[key]; ok {
			dp.reg.Restore(key.Role, key.Name, f)
			continue
		}
		dp.reg.Unregister(key.Role, key.Name)
	}
	for _, role := range dp.roles {
		dp.reg.UnregisterRole(role)
	}
}

// deploy registers the roles and definitions of a descriptor.
// complete is false when the policy let an entry or the whole package be skipped.
func (d *Deployer) deploy(data []byte, source string, opts Options) (keys []domain.TypeKey, complete bool, err error) {
	desc, err := ParseDescriptor(data)
	if err != nil {
		return nil, false, d.handle(opts.Policy, source, err)
	}
	if err := d.checkRequires(desc); err != nil {
		return nil, false, d.handle(opts.Policy, source, err)
	}
	scope, err := d.modules.Scope(desc.Module)
	if err != nil {
		return nil, false, d.handle(opts.Policy, source, err)
	}

	complete = true
	dp := &deployment{reg: d.registry, previous: make(map[domain.TypeKey]ports.Factory)}
	fail := func(err error) error {
		if opts.Policy == domain.PolicyFail {
			dp.rollback()
			return zerr.With(fmt.Errorf("%w: %w", domain.ErrDeployFailed, err), "library", source)
		}
		complete = false
		d.report(opts.Policy, source, err)
		return nil
	}

	for _, entry := range desc.Roles {
		if _, exists := d.registry.Role(entry.Name); exists {
			continue
		}
		role, err := roleFrom(scope, entry)
		if err == nil {
			err = d.registry.RegisterRole(role)
		}
		if err != nil {
			if err := fail(err); err != nil {
				return nil, false, err
			}
			continue
		}
		dp.roles = append(dp.roles, entry.Name)
	}

	for _, entry := range desc.Definitions {
		name := entry.Name
		if alias, ok := opts.Aliases[name]; ok && alias != "" {
			name = alias
		}
		if opts.Role != "" && (entry.Role != opts.Role || name != opts.Name) {
			continue
		}

		if err := d.define(dp, scope, entry.Role, name, entry.Implementation, opts.Override); err != nil {
			if err := fail(err); err != nil {
				return nil, false, err
			}
		}
	}

	if len(dp.keys) == 0 {
		if opts.Strict {
			dp.rollback()
			return nil, false, zerr.With(zerr.Wrap(domain.ErrEmptyLibrary, "failed to deploy library"),
				"library", source)
		}
		d.logger.Warn(fmt.Sprintf("library %s registered no definitions", source))
	}

	d.logger.Debug(fmt.Sprintf("deployed %d definitions from %s", len(dp.keys), source))
	return slices.Clone(dp.keys), complete, nil
}

func (d *Deployer) define(dp *deployment, scope *Scope, role, name, symbol string, override bool) error {
	def, ok := d.registry.Role(role)
	if !ok {
		return zerr.With(zerr.Wrap(domain.ErrUnknownRole, "failed to define type"), "role", role)
	}
	impl, err := scope.Symbol(symbol)
	if err != nil {
		return err
	}
	factory, err := factoryFrom(def, impl)
	if err != nil {
		return zerr.With(zerr.With(err, "role", role), "name", name)
	}

	key := domain.TypeKey{Role: role, Name: name}
	prev, had := d.registry.Own(role, name)
	if err := d.registry.Register(role, name, factory, override); err != nil {
		return err
	}
	if had {
		dp.previous[key] = prev
	}
	dp.keys = append(dp.keys, key)
	return nil
}

func (d *Deployer) checkRequires(desc *Descriptor) error {
	if desc.Requires == "" || d.version == "" || d.version == "dev" {
		return nil
	}

	constraint, err := semver.NewConstraint(desc.Requires)
	if err != nil {
		return zerr.With(fmt.Errorf("%w: %w", domain.ErrDescriptorInvalid, err), "requires", desc.Requires)
	}
	v, err := semver.NewVersion(strings.TrimPrefix(d.version, "v"))
	if err != nil {
		return zerr.With(zerr.Wrap(err, "invalid engine version"), "version", d.version)
	}
	if !constraint.Check(v) {
		return zerr.With(zerr.With(zerr.Wrap(domain.ErrIncompatibleLibrary, "failed to deploy library"),
			"requires", desc.Requires), "version", d.version)
	}
	return nil
}

// handle applies policy to an error that prevents the whole package from deploying.
func (d *Deployer) handle(policy domain.FailurePolicy, source string, err error) error {
	if policy == domain.PolicyFail {
		return zerr.With(err, "library", source)
	}
	d.report(policy, source, err)
	return nil
}

func (d *Deployer) report(policy domain.FailurePolicy, source string, err error) {
	if policy == domain.PolicyReport {
		d.logger.Warn(fmt.Sprintf("library %s: %v", source, err))
	}
}

func roleFrom(scope *Scope, entry RoleEntry) (ports.Role, error) {
	role := ports.Role{Name: entry.Name}

	impl, err := scope.Symbol(entry.Implementation)
	if err != nil {
		return role, err
	}
	switch c := impl.(type) {
	case ports.Contract:
		role.Contract = c
	case func(ports.Component) error:
		role.Contract = c
	default:
		return role, zerr.With(zerr.Wrap(domain.ErrInvalidImplementation, "role implementation is not a contract"),
			"role", entry.Name)
	}

	if entry.Adapter == "" {
		return role, nil
	}
	impl, err = scope.Symbol(entry.Adapter)
	if err != nil {
		return role, err
	}
	switch a := impl.(type) {
	case ports.Adapter:
		role.Adapter = a
	case func(any) (ports.Factory, error):
		role.Adapter = a
	default:
		return role, zerr.With(zerr.Wrap(domain.ErrInvalidImplementation, "role adapter has the wrong signature"),
			"role", entry.Name)
	}
	return role, nil
}

func factoryFrom(role ports.Role, impl any) (ports.Factory, error) {
	if role.Adapter != nil {
		return role.Adapter(impl)
	}
	switch f := impl.(type) {
	case ports.Factory:
		return f, nil
	case func() (ports.Component, error):
		return f, nil
	case func() ports.Component:
		return func() (ports.Component, error) { return f(), nil }, nil
	}
	return nil, zerr.With(zerr.Wrap(domain.ErrInvalidImplementation, "implementation is not a component factory"),
		"type", fmt.Sprintf("%T", impl))
}

// fingerprint identifies a deployment by descriptor content and the options that change its outcome.
func fingerprint(data []byte, opts Options) uint64 {
	h := xxhash.New()
	_, _ = h.Write(data)
	_, _ = h.WriteString("\x00" + opts.Role + "\x00" + opts.Name + "\x00" + string(opts.Policy))
	for _, name := range slices.Sorted(maps.Keys(opts.Aliases)) {
		_, _ = h.WriteString("\x00" + name + "=" + opts.Aliases[name])
	}
	if opts.Override {
		_, _ = h.WriteString("\x00override")
	}
	if opts.Strict {
		_, _ = h.WriteString("\x00strict")
	}
	return h.Sum64()
}
