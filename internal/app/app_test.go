package app_test

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/anvil/internal/app"
	"go.trai.ch/anvil/internal/core/domain"
	"go.trai.ch/anvil/internal/core/ports/mocks"
	"go.trai.ch/anvil/internal/engine/deployer"
	"go.trai.ch/anvil/internal/engine/registry"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	loader  *mocks.MockProjectLoader
	locator *mocks.MockLibraryLocator
	logger *mocks.MockLogger
	app    *app.App
	stdout *bytes.Buffer
	stderr *bytes.Buffer
	dir    string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	ctrl := gomock.NewController(t)
	f := &fixture{
		loader:  mocks.NewMockProjectLoader(ctrl),
		locator: mocks.NewMockLibraryLocator(ctrl),
		logger:  mocks.NewMockLogger(ctrl),
		stdout: new(bytes.Buffer),
		stderr: new(bytes.Buffer),
		dir:    t.TempDir(),
	}
	f.logger.EXPECT().Debug(gomock.Any()).AnyTimes()

	reg := registry.New()
	dep := deployer.New(reg, f.locator, f.logger)
	reg.SetFallback(dep.Lookup)

	f.app = app.New(f.loader, reg, dep, f.logger).
		WithOutput(f.stdout, f.stderr).
		WithEnv(func(string) string { return "" })
	return f
}

func element(name string, attrs ...string) *domain.Element {
	el := domain.NewElement(name)
	for i := 0; i+1 < len(attrs); i += 2 {
		el.SetAttribute(attrs[i], attrs[i+1])
	}
	return el
}

func target(t *testing.T, name string, deps []string, elements ...*domain.Element) *domain.Target {
	t.Helper()
	tgt, err := domain.NewTarget(name, deps, "", "")
	require.NoError(t, err)
	for _, el := range elements {
		tgt.AddElement(el)
	}
	return tgt
}

// project returns a demo project in f.dir and expects it to be loaded from its project file.
func (f *fixture) project(t *testing.T) *domain.Project {
	t.Helper()
	p := domain.NewProject("demo", f.dir)
	p.SetDefaultTargetName("build")

	compile := target(t, "compile", nil, element("echo", "message", "compiling"))
	compile.SetDescription("Compile sources")
	require.NoError(t, p.AddTarget(compile))
	require.NoError(t, p.AddTarget(target(t, "build", []string{"compile"}, element("echo", "message", "done"))))
	require.NoError(t, p.AddTarget(target(t, "broken", nil,
		element("fail", "message", "nope"),
		element("echo", "message", "after"),
	)))

	path := filepath.Join(f.dir, domain.ProjectFileName)
	f.loader.EXPECT().Discover(f.dir).Return(path, nil).AnyTimes()
	f.loader.EXPECT().Load(path).Return(p, nil).AnyTimes()
	return p
}

func TestApp_Run_DefaultTarget(t *testing.T) {
	f := newFixture(t)
	f.project(t)

	err := f.app.Run(t.Context(), nil, app.RunOptions{Options: app.Options{Dir: f.dir}})
	require.NoError(t, err)

	assert.Contains(t, f.stdout.String(), "  [echo] compiling\n")
	assert.Contains(t, f.stdout.String(), "  [echo] done\n")
	assert.Contains(t, f.stderr.String(), "BUILD SUCCESSFUL")

	history, err := f.app.History(t.Context(), app.Options{Dir: f.dir})
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "build", history[0].Target)
	assert.Equal(t, domain.TargetStatusCompleted, history[0].Status)
	assert.Equal(t, "compile", history[1].Target)
	assert.FileExists(t, domain.DefaultJournalPath(f.dir))
}

func TestApp_Run_TaskFailure(t *testing.T) {
	f := newFixture(t)
	f.project(t)

	journalPath := filepath.Join(t.TempDir(), "journal.json")
	err := f.app.Run(t.Context(), []string{"broken"}, app.RunOptions{
		Options: app.Options{Dir: f.dir, JournalPath: journalPath},
	})
	require.Error(t, err)
	assert.True(t, app.IsBuildFailure(err))
	assert.True(t, errors.Is(err, domain.ErrTaskFailed))
	assert.NotContains(t, f.stdout.String(), "after")
	assert.Contains(t, f.stderr.String(), "BUILD FAILED")

	history, err := f.app.History(t.Context(), app.Options{Dir: f.dir, JournalPath: journalPath})
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, domain.TargetStatusFailed, history[0].Status)
	assert.Contains(t, history[0].Error, "nope")
}

func TestApp_Run_KeepGoing(t *testing.T) {
	f := newFixture(t)
	f.project(t)
	f.logger.EXPECT().Warn(gomock.Cond(func(msg string) bool {
		return strings.Contains(msg, "nope")
	}))

	err := f.app.Run(t.Context(), []string{"broken"}, app.RunOptions{
		Options:   app.Options{Dir: f.dir},
		KeepGoing: true,
	})
	require.NoError(t, err)
	assert.Contains(t, f.stdout.String(), "  [echo] after\n")
}

func TestApp_Run_Trace(t *testing.T) {
	f := newFixture(t)
	f.project(t)

	err := f.app.Run(t.Context(), []string{"compile"}, app.RunOptions{
		Options: app.Options{Dir: f.dir},
		Trace:   true,
		CI:      true,
	})
	require.NoError(t, err)
	assert.Contains(t, f.stdout.String(), "  [echo] compiling\n")
}

func TestApp_Run_UnknownTarget(t *testing.T) {
	f := newFixture(t)
	f.project(t)

	err := f.app.Run(t.Context(), []string{"missing"}, app.RunOptions{Options: app.Options{Dir: f.dir}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrTargetNotFound))
	assert.False(t, app.IsBuildFailure(err))
}

func TestApp_Run_ExplicitFile(t *testing.T) {
	f := newFixture(t)
	p := domain.NewProject("other", f.dir)
	require.NoError(t, p.AddTarget(target(t, "hello", nil, element("echo", "message", "hi"))))
	f.loader.EXPECT().Load(filepath.Join(f.dir, "other.yaml")).Return(p, nil)

	err := f.app.Run(t.Context(), []string{"hello"}, app.RunOptions{
		Options: app.Options{Dir: f.dir, File: "other.yaml"},
	})
	require.NoError(t, err)
	assert.Contains(t, f.stdout.String(), "  [echo] hi\n")
}

func TestApp_Run_LoadError(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Discover(f.dir).Return("", domain.ErrConfigNotFound)

	err := f.app.Run(t.Context(), nil, app.RunOptions{Options: app.Options{Dir: f.dir}})
	assert.True(t, errors.Is(err, domain.ErrConfigNotFound))
}

func TestApp_Targets(t *testing.T) {
	f := newFixture(t)
	f.project(t)

	targets, err := f.app.Targets(context.Background(), app.Options{Dir: f.dir})
	require.NoError(t, err)
	assert.Equal(t, []app.TargetInfo{
		{Name: "compile", Description: "Compile sources"},
		{Name: "build", Depends: []string{"compile"}, Default: true},
		{Name: "broken"},
	}, targets)
}

func TestApp_Types(t *testing.T) {
	f := newFixture(t)

	types, err := f.app.Types(t.Context(), app.Options{})
	require.NoError(t, err)

	byRole := make(map[string][]string)
	for _, info := range types {
		byRole[info.Role] = info.Names
	}
	assert.Equal(t, []string{"delete", "mkdir"}, byRole[domain.RoleAction])
	assert.Equal(t, []string{"echo", "exec", "fail", "property"}, byRole[domain.RoleTask])
	assert.Contains(t, byRole, domain.RoleDataType)

	// The built-in library is deployed once per App.
	_, err = f.app.Types(t.Context(), app.Options{})
	require.NoError(t, err)
}

func TestApp_History_Empty(t *testing.T) {
	f := newFixture(t)
	f.project(t)

	history, err := f.app.History(t.Context(), app.Options{Dir: f.dir})
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestApp_Run_LibraryOnDemand(t *testing.T) {
	f := newFixture(t)
	p := domain.NewProject("libs", f.dir)
	require.NoError(t, p.AddTarget(target(t, "loud", nil, element("shout", "message", "hey"))))
	f.loader.EXPECT().Load("/work/anvil.yaml").Return(p, nil)

	f.locator.EXPECT().Packages("/libs").Return(slices.Values([]string{"/libs/loud"}))
	f.locator.EXPECT().ReadDescriptor("/libs/loud").
		Return([]byte("module: anvil.builtin\ndefinitions:\n  - {name: shout, implementation: Echo}\n"), nil)

	err := f.app.Run(t.Context(), []string{"loud"}, app.RunOptions{
		Options: app.Options{File: "/work/anvil.yaml", LibDir: "/libs", JournalPath: filepath.Join(f.dir, "j.json")},
	})
	require.NoError(t, err)
	assert.Contains(t, f.stdout.String(), "  [shout] hey\n")
}

func TestApp_Types_LibraryDirectory(t *testing.T) {
	f := newFixture(t)
	f.app.WithEnv(func(key string) string {
		if key == domain.LibDirEnv {
			return "/shared"
		}
		return ""
	})

	f.locator.EXPECT().Packages("/shared").Return(slices.Values([]string{"/shared/loud"}))
	f.locator.EXPECT().ReadDescriptor("/shared/loud").
		Return([]byte("module: anvil.builtin\ndefinitions:\n  - {name: shout, implementation: Echo}\n"), nil)

	types, err := f.app.Types(t.Context(), app.Options{})
	require.NoError(t, err)
	for _, info := range types {
		if info.Role == domain.RoleTask {
			assert.Contains(t, info.Names, "shout")
		}
	}
}
