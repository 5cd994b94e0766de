package main

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/anvil/internal/app"
	"go.trai.ch/anvil/internal/core/domain"
	"go.trai.ch/anvil/internal/core/ports/mocks"
	"go.trai.ch/anvil/internal/engine/deployer"
	"go.trai.ch/anvil/internal/engine/registry"
	"go.uber.org/mock/gomock"
)

func newProvider(t *testing.T, loader *mocks.MockProjectLoader, logger *mocks.MockLogger) ComponentProvider {
	t.Helper()
	reg := registry.New()
	dep := deployer.New(reg, mocks.NewMockLibraryLocator(gomock.NewController(t)), logger)
	application := app.New(loader, reg, dep, logger).
		WithOutput(new(bytes.Buffer), new(bytes.Buffer)).
		WithEnv(func(string) string { return "" })

	return func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{
			App:    application,
			Logger: logger,
		}, func() {}, nil
	}
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := newProvider(t, mocks.NewMockProjectLoader(ctrl), mocks.NewMockLogger(ctrl))

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stdout, new(bytes.Buffer), provider)
	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "anvil version")
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run logs the error and returns 1 when a command fails.
func TestRun_ExecutionError(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockProjectLoader(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Error(gomock.Any()).Times(1)

	loader.EXPECT().Load("anvil.yaml").Return(nil, errors.New("load failed"))

	exitCode := run(context.Background(), []string{"targets", "-f", "anvil.yaml"},
		new(bytes.Buffer), new(bytes.Buffer), newProvider(t, loader, logger))
	assert.Equal(t, 1, exitCode)
}

// TestRun_BuildFailure verifies that task failures are not logged twice.
func TestRun_BuildFailure(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockProjectLoader(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Debug(gomock.Any()).AnyTimes()

	dir := t.TempDir()
	project := domain.NewProject("demo", dir)
	target, err := domain.NewTarget("broken", nil, "", "")
	assert.NoError(t, err)
	target.AddElement(domain.NewElement("fail"))
	assert.NoError(t, project.AddTarget(target))

	path := filepath.Join(dir, domain.ProjectFileName)
	loader.EXPECT().Load(path).Return(project, nil)

	exitCode := run(context.Background(), []string{"run", "broken", "-f", path, "--ci"},
		new(bytes.Buffer), new(bytes.Buffer), newProvider(t, loader, logger))
	assert.Equal(t, 1, exitCode)
}
