package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/anvil/internal/adapters/config"
	"go.trai.ch/anvil/internal/core/domain"
	"go.trai.ch/anvil/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func newLoader(t *testing.T) (*config.Loader, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	return config.NewLoader(log), log
}

const demo = `project: demo
default: test
description: the demo project
libraries:
  - location: libs/extra
    policy: report
    aliases: {greet: hello}
setup:
  - property: {name: greeting, value: hi}
targets:
  init: {}
  compile:
    description: compiles things
    depends: [init]
    if: do.compile
    tasks:
      - echo: {message: "compiling", "trace:label": "c"}
      - echo: plain content
  test:
    depends: [compile]
    unless: skip.tests
    tasks:
      - exec:
          command: go
          arg: [test, {value: ./...}]
          env:
            key: CGO_ENABLED
            value: "0"
      - action:mkdir: {dir: out}
`

func TestLoad_Project(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, filepath.Join(dir, "anvil.yaml"), demo)
	loader, _ := newLoader(t)

	p, err := loader.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "demo", p.Name())
	assert.Equal(t, dir, p.BaseDir())
	assert.Equal(t, "test", p.DefaultTargetName())
	assert.Equal(t, []string{"init", "compile", "test"}, p.TargetNames())

	require.Len(t, p.Libraries(), 1)
	assert.Equal(t, domain.LibraryRef{
		Location: "libs/extra",
		Aliases:  map[string]string{"greet": "hello"},
		Policy:   domain.PolicyReport,
	}, p.Libraries()[0])

	implicit := p.ImplicitTarget()
	require.NotNil(t, implicit)
	require.Len(t, implicit.Elements(), 1)
	name, _ := implicit.Elements()[0].Attribute("name")
	assert.Equal(t, "greeting", name)
	_, declared := p.GetTarget("setup")
	assert.False(t, declared)

	compile, ok := p.GetTarget("compile")
	require.True(t, ok)
	assert.Equal(t, "compiles things", compile.Description())
	assert.Equal(t, "if do.compile", compile.Condition().String())
	require.Len(t, compile.Dependencies(), 1)
	assert.Equal(t, "init", compile.Dependencies()[0].String())

	echo := compile.Elements()[0]
	msg, _ := echo.Attribute("message")
	assert.Equal(t, "compiling", msg)
	assert.Equal(t, []string{"message"}, echo.AttributeNames())
	assert.Equal(t, map[string]string{"label": "c"}, echo.NamespaceAttributes("trace"))
	assert.True(t, strings.HasSuffix(echo.Location(), "anvil.yaml:17"), echo.Location())
	assert.Equal(t, "plain content", compile.Elements()[1].Content())

	test, ok := p.GetTarget("test")
	require.True(t, ok)
	assert.Equal(t, "unless skip.tests", test.Condition().String())
	exec := test.Elements()[0]
	require.Len(t, exec.Children(), 3)
	assert.Equal(t, "arg", exec.Children()[0].Name())
	assert.Equal(t, "test", exec.Children()[0].Content())
	value, _ := exec.Children()[1].Attribute("value")
	assert.Equal(t, "./...", value)
	assert.Equal(t, "env", exec.Children()[2].Name())
	assert.Equal(t, "action:mkdir", test.Elements()[1].Name())
}

func TestLoad_References(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, filepath.Join(dir, "app", "anvil.yaml"), `project: app
references:
  shared: ../shared
targets:
  build:
    depends: ["shared->lib"]
`)
	writeFile(t, filepath.Join(dir, "shared", "anvil.yaml"), `project: shared
references:
  app: ../app/anvil.yaml
targets:
  lib: {}
`)
	loader, _ := newLoader(t)

	app, err := loader.Load(path)
	require.NoError(t, err)

	shared, ok := app.Reference("shared")
	require.True(t, ok)
	assert.Equal(t, "shared", shared.Name())
	assert.Equal(t, filepath.Join(dir, "shared"), shared.BaseDir())

	back, ok := shared.Reference("app")
	require.True(t, ok)
	assert.Same(t, app, back)
}

func TestLoad_MissingProjectName(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "widget")
	path := writeFile(t, filepath.Join(dir, "anvil.yaml"), "targets:\n  build: {}\n")
	loader, log := newLoader(t)
	log.EXPECT().Warn(gomock.Any())

	p, err := loader.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "widget", p.Name())
}

func TestLoad_BaseDir(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, filepath.Join(dir, "build", "anvil.yaml"), "project: demo\nbasedir: ..\n")
	loader, _ := newLoader(t)

	p, err := loader.Load(path)
	require.NoError(t, err)
	assert.Equal(t, dir, p.BaseDir())
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    error
	}{
		{name: "unknown key", content: "project: x\ntasks: {}\n", want: domain.ErrConfigParseFailed},
		{name: "not yaml", content: "project: [\n", want: domain.ErrConfigParseFailed},
		{name: "targets not a mapping", content: "project: x\ntargets: [a]\n", want: domain.ErrConfigParseFailed},
		{
			name:    "element with two keys",
			content: "project: x\ntargets:\n  a:\n    tasks:\n      - {echo: {}, fail: {}}\n",
			want:    domain.ErrInvalidElement,
		},
		{
			name:    "element body is a list",
			content: "project: x\ntargets:\n  a:\n    tasks:\n      - echo: [1, 2]\n",
			want:    domain.ErrInvalidElement,
		},
		{
			name:    "if and unless",
			content: "project: x\ntargets:\n  a: {if: x, unless: y}\n",
			want:    domain.ErrConflictingCondition,
		},
		{
			name:    "bad policy",
			content: "project: x\nlibraries:\n  - {location: libs, policy: sometimes}\n",
			want:    domain.ErrInvalidFailurePolicy,
		},
		{
			name:    "library without location",
			content: "project: x\nlibraries:\n  - {policy: fail}\n",
			want:    domain.ErrMissingAttribute,
		},
		{
			name:    "missing reference",
			content: "project: x\nreferences:\n  other: ../nowhere/anvil.yaml\n",
			want:    domain.ErrConfigReadFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, filepath.Join(t.TempDir(), "anvil.yaml"), tt.content)
			loader, _ := newLoader(t)

			_, err := loader.Load(path)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	loader, _ := newLoader(t)

	_, err := loader.Load(filepath.Join(t.TempDir(), "anvil.yaml"))
	assert.True(t, errors.Is(err, domain.ErrConfigReadFailed))
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, filepath.Join(dir, "anvil.yaml"), "project: demo\n")
	deep := filepath.Join(dir, "src", "pkg")
	require.NoError(t, os.MkdirAll(deep, 0o750))
	loader, _ := newLoader(t)

	got, err := loader.Discover(deep)
	require.NoError(t, err)
	assert.Equal(t, path, got)
}

func TestDiscover_NotFound(t *testing.T) {
	loader, _ := newLoader(t)

	_, err := loader.Discover(t.TempDir())
	assert.True(t, errors.Is(err, domain.ErrConfigNotFound))
}
