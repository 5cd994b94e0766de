// Package app implements the application layer for anvil.
package app

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sync"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/anvil/internal/adapters/builtin"
	"go.trai.ch/anvil/internal/adapters/console"
	"go.trai.ch/anvil/internal/adapters/journal"
	"go.trai.ch/anvil/internal/adapters/telemetry"
	"go.trai.ch/anvil/internal/adapters/telemetry/progrock"
	"go.trai.ch/anvil/internal/core/domain"
	"go.trai.ch/anvil/internal/core/ports"
	"go.trai.ch/anvil/internal/engine/aspect"
	"go.trai.ch/anvil/internal/engine/deployer"
	"go.trai.ch/anvil/internal/engine/registry"
	"go.trai.ch/anvil/internal/engine/scheduler"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	loader   ports.ProjectLoader
	registry *registry.Registry
	deployer *deployer.Deployer
	logger   ports.Logger
	stdout   io.Writer
	stderr   io.Writer
	getenv   func(string) string

	builtinOnce sync.Once
	builtinErr  error
}

// New creates a new App instance.
func New(
	loader ports.ProjectLoader,
	reg *registry.Registry,
	dep *deployer.Deployer,
	log ports.Logger,
) *App {
	return &App{
		loader:   loader,
		registry: reg,
		deployer: dep,
		logger:   log,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
		getenv:   os.Getenv,
	}
}

// WithOutput sets the streams build output is written to.
// This is primarily used for testing.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	return a
}

// WithEnv replaces the environment lookup.
// This is primarily used for testing.
func (a *App) WithEnv(getenv func(string) string) *App {
	a.getenv = getenv
	return a
}

// Options locate the project and configure logging. They are shared by every command.
type Options struct {
	// File is the project file. When empty it is discovered from Dir upwards.
	File string
	// Dir is the directory discovery starts from. It defaults to the working directory.
	Dir string
	// LibDir is scanned for libraries on demand. It defaults to $ANVIL_LIB_DIR.
	LibDir string
	// JournalPath overrides the run journal location below the project base directory.
	JournalPath string
	Verbose     bool
	JSON        bool
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	Options

	// KeepGoing logs task failures as warnings instead of stopping the build.
	KeepGoing bool
	// Trace records task spans and a progrock tape of the run.
	Trace bool
	// CI selects plain ANSI output for log collectors.
	CI bool
}

// Run executes targetNames, or the project's default target when none are given.
//
//nolint:cyclop // orchestration function
func (a *App) Run(ctx context.Context, targetNames []string, opts RunOptions) error {
	a.configureLogger(opts.Options)

	// 1. Prepare the registry and load the project
	if err := a.prepare(opts.Options); err != nil {
		return err
	}
	project, err := a.loadProject(opts.Options)
	if err != nil {
		return err
	}

	// 2. Open the journal
	store, err := journal.NewStore(a.journalPath(project, opts.Options))
	if err != nil {
		return err
	}

	// 3. Initialize the engine and its listeners
	engine := scheduler.New(a.registry, a.deployer, a.logger)

	con := console.New(a.stdout, a.stderr, opts.CI)
	if opts.Verbose {
		con.SetLevel(domain.LogLevelDebug)
	}
	engine.AddListener(con)
	engine.AddListener(journal.NewRecorder(store))
	sinks := outputs{con}

	if opts.KeepGoing {
		engine.Pipeline().Add("", aspect.ContinueOnError(a.logger))
	}

	// 4. Initialize Telemetry
	if opts.Trace {
		tp := setupOTel(a.logger)
		defer func() {
			if err := tp.Shutdown(context.WithoutCancel(ctx)); err != nil {
				a.logger.Warn("failed to shut down tracer provider: " + err.Error())
			}
		}()
		engine.Pipeline().Add(telemetry.Namespace, telemetry.NewTracing(otel.Tracer(telemetry.InstrumentationName)))

		rec := progrock.New()
		defer func() {
			if err := rec.Close(); err != nil {
				a.logger.Warn("failed to close progress recorder: " + err.Error())
			}
		}()
		engine.AddListener(rec)
		sinks = append(sinks, rec)
	}
	engine.SetOutput(sinks)

	// 5. Run
	return engine.Run(ctx, project, targetNames...)
}

// TargetInfo describes a target for listings.
type TargetInfo struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Depends     []string `json:"depends,omitempty"`
	Condition   string   `json:"condition,omitempty"`
	Default     bool     `json:"default,omitempty"`
}

// Targets returns the targets of the project in declaration order.
func (a *App) Targets(_ context.Context, opts Options) ([]TargetInfo, error) {
	a.configureLogger(opts)

	project, err := a.loadProject(opts)
	if err != nil {
		return nil, err
	}

	names := project.TargetNames()
	infos := make([]TargetInfo, 0, len(names))
	for _, name := range names {
		target, _ := project.GetTarget(name)
		info := TargetInfo{
			Name:        name,
			Description: target.Description(),
			Default:     name == project.DefaultTargetName(),
		}
		for _, dep := range target.Dependencies() {
			info.Depends = append(info.Depends, dep.String())
		}
		if cond := target.Condition(); cond != nil {
			info.Condition = cond.String()
		}
		infos = append(infos, info)
	}
	return infos, nil
}

// TypeInfo lists the names registered for a role.
type TypeInfo struct {
	Role  string   `json:"role"`
	Names []string `json:"names"`
}

// Types deploys the built-in library and every library in the library directory,
// then returns the registered names grouped by role.
func (a *App) Types(ctx context.Context, opts Options) ([]TypeInfo, error) {
	a.configureLogger(opts)

	if err := a.prepare(opts); err != nil {
		return nil, err
	}

	if dir := a.libDir(opts); dir != "" {
		if _, err := a.deployer.DeployAll(ctx, dir, deployer.Options{Policy: domain.PolicyReport}); err != nil {
			return nil, err
		}
	}

	roles := a.registry.Roles()
	infos := make([]TypeInfo, 0, len(roles))
	for _, role := range roles {
		infos = append(infos, TypeInfo{Role: role, Names: a.registry.Types(role)})
	}
	return infos, nil
}

// History returns the journal records of the project, ordered by project then target.
func (a *App) History(_ context.Context, opts Options) ([]domain.TargetRecord, error) {
	a.configureLogger(opts)

	project, err := a.loadProject(opts)
	if err != nil {
		return nil, err
	}

	store, err := journal.NewStore(a.journalPath(project, opts))
	if err != nil {
		return nil, err
	}
	return store.List()
}

// prepare deploys the built-in library once and points on-demand lookups at the library directory.
func (a *App) prepare(opts Options) error {
	a.builtinOnce.Do(func() {
		a.deployer.RegisterModule(builtin.ModuleID, builtin.Symbols())
		_, a.builtinErr = a.deployer.DeployDescriptor(context.Background(), builtin.Descriptor(), builtin.Source,
			deployer.Options{Strict: true})
	})
	if a.builtinErr != nil {
		return zerr.Wrap(a.builtinErr, "failed to deploy built-in library")
	}

	if dir := a.libDir(opts); dir != "" {
		a.deployer.SetSearchPath(dir)
	}
	return nil
}

func (a *App) loadProject(opts Options) (*domain.Project, error) {
	path := opts.File
	if path == "" {
		dir := opts.Dir
		if dir == "" {
			wd, err := os.Getwd()
			if err != nil {
				return nil, zerr.Wrap(err, "failed to get working directory")
			}
			dir = wd
		}

		discovered, err := a.loader.Discover(dir)
		if err != nil {
			return nil, err
		}
		path = discovered
	} else if !filepath.IsAbs(path) && opts.Dir != "" {
		path = filepath.Join(opts.Dir, path)
	}

	project, err := a.loader.Load(path)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return project, nil
}

func (a *App) libDir(opts Options) string {
	dir := opts.LibDir
	if dir == "" {
		dir = a.getenv(domain.LibDirEnv)
	}
	if dir == "" || filepath.IsAbs(dir) {
		return dir
	}
	if opts.Dir != "" {
		return filepath.Join(opts.Dir, dir)
	}
	if abs, err := filepath.Abs(dir); err == nil {
		return abs
	}
	return dir
}

func (a *App) journalPath(project *domain.Project, opts Options) string {
	if opts.JournalPath != "" {
		return opts.JournalPath
	}
	return domain.DefaultJournalPath(project.BaseDir())
}

// loggerConfig is implemented by loggers whose format and verbosity can change at runtime.
type loggerConfig interface {
	SetVerbose(enable bool)
	SetJSON(enable bool)
}

func (a *App) configureLogger(opts Options) {
	if l, ok := a.logger.(loggerConfig); ok {
		l.SetVerbose(opts.Verbose)
		l.SetJSON(opts.JSON)
	}
}

// setupOTel registers a tracer provider that reports spans to logger as the global provider.
func setupOTel(logger ports.Logger) *sdktrace.TracerProvider {
	tp := telemetry.NewProvider(logger)
	otel.SetTracerProvider(tp)
	return tp
}

// outputs forwards task output to every handler in order.
type outputs []ports.OutputHandler

func (o outputs) HandleOutputLine(line string) {
	for _, h := range o {
		h.HandleOutputLine(line)
	}
}

func (o outputs) HandleErrorLine(line string) {
	for _, h := range o {
		h.HandleErrorLine(line)
	}
}

// IsBuildFailure reports whether err means the build ran and a task failed.
// Such failures have already been reported by the console listener.
func IsBuildFailure(err error) bool {
	return errors.Is(err, domain.ErrBuildFailed) && !errors.Is(err, domain.ErrListenerFailed)
}
