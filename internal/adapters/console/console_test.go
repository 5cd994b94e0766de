package console_test

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/anvil/internal/adapters/console"
	"go.trai.ch/anvil/internal/core/domain"
)

// steppingClock advances by step on every reading.
func steppingClock(step time.Duration) func() time.Time {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time {
		t := now
		now = now.Add(step)
		return t
	}
}

func newTestConsole(t *testing.T) (*console.Console, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	c := console.New(buf, buf, false).WithClock(steppingClock(250 * time.Millisecond))
	return c, buf
}

func TestConsole_SuccessfulBuild(t *testing.T) {
	c, buf := newTestConsole(t)

	require.NoError(t, c.ProjectStarted("demo"))
	require.NoError(t, c.TargetStarted("compile"))
	require.NoError(t, c.TaskStarted("echo"))
	c.HandleOutputLine("hello")
	require.NoError(t, c.TaskFinished("echo", nil))
	require.NoError(t, c.TargetFinished("compile", nil))
	require.NoError(t, c.TargetStarted("package"))
	require.NoError(t, c.TargetSkipped("package", "if do.package"))
	require.NoError(t, c.TargetFinished("package", nil))
	require.NoError(t, c.ProjectFinished(nil))

	g := goldie.New(t)
	g.Assert(t, "build_success", buf.Bytes())
}

func TestConsole_FailedBuild(t *testing.T) {
	c, buf := newTestConsole(t)
	failure := errors.New("exit status 1")

	require.NoError(t, c.ProjectStarted("demo"))
	require.NoError(t, c.TargetStarted("compile"))
	require.NoError(t, c.TaskStarted("exec"))
	c.HandleErrorLine("no such file")
	require.NoError(t, c.TaskFinished("exec", failure))
	require.NoError(t, c.TargetFinished("compile", failure))
	require.NoError(t, c.ProjectFinished(failure))

	g := goldie.New(t)
	g.Assert(t, "build_failed", buf.Bytes())
}

func TestConsole_StreamsAreSeparated(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	var stdout, stderr bytes.Buffer
	c := console.New(&stdout, &stderr, true)

	require.NoError(t, c.TaskStarted("exec"))
	c.HandleOutputLine("out")
	c.HandleErrorLine("err")

	assert.Equal(t, "  [exec] out\n", stdout.String())
	assert.Equal(t, "  [exec] err\n", stderr.String())
}

func TestConsole_LogThreshold(t *testing.T) {
	c, buf := newTestConsole(t)

	require.NoError(t, c.Log(domain.LogLevelDebug, "deployed 2 definitions", nil))
	require.NoError(t, c.Log(domain.LogLevelWarn, "library empty registered no definitions", nil))
	require.NoError(t, c.Log(domain.LogLevelError, "deploy failed", errors.New("boom")))
	assert.Equal(t, "  ! library empty registered no definitions\n  ✗ deploy failed: boom\n", buf.String())

	buf.Reset()
	c.SetLevel(domain.LogLevelDebug)
	require.NoError(t, c.Log(domain.LogLevelDebug, "deployed 2 definitions", nil))
	assert.Equal(t, "  deployed 2 definitions\n", buf.String())
}
