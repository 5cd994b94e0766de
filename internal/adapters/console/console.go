// Package console renders a build run as linear, chronological terminal output.
package console

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/anvil/internal/core/domain"
	"go.trai.ch/anvil/internal/core/ports"
	"go.trai.ch/anvil/internal/ui/output"
	"go.trai.ch/anvil/internal/ui/style"
)

// Console is a listener that prints targets, task output and the build result.
// Task output is prefixed with the task name; stdout lines go to stdout and
// everything else to stderr.
type Console struct {
	stdout io.Writer
	stderr io.Writer
	out    *termenv.Output
	now    func() time.Time

	mu        sync.Mutex
	level     domain.LogLevel
	started   time.Time
	task      string
	taskStart time.Time
}

var (
	_ ports.Listener      = (*Console)(nil)
	_ ports.OutputHandler = (*Console)(nil)
	_ ports.SkipObserver  = (*Console)(nil)
)

// New creates a Console. ci selects plain ANSI colors for log collectors.
func New(stdout, stderr io.Writer, ci bool) *Console {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return &Console{
		stdout: stdout,
		stderr: stderr,
		out:    output.ForCI(stderr, ci),
		now:    time.Now,
		level:  domain.LogLevelInfo,
	}
}

// WithClock replaces the time source used for durations.
func (c *Console) WithClock(now func() time.Time) *Console {
	c.now = now
	return c
}

// SetLevel sets the lowest log level printed.
func (c *Console) SetLevel(level domain.LogLevel) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.level = level
}

// ProjectStarted prints the project header.
func (c *Console) ProjectStarted(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.started = c.now()
	return c.printf("Building %s\n", c.styled(name, style.Ember, true))
}

// ProjectFinished prints the build result and total time.
func (c *Console) ProjectFinished(err error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	elapsed := c.now().Sub(c.started).Round(time.Millisecond)
	if err != nil {
		return c.printf("\n%s\nTotal time: %v\n", c.styled(style.Cross+" BUILD FAILED", style.Red, true), elapsed)
	}
	return c.printf("\n%s\nTotal time: %v\n", c.styled(style.Check+" BUILD SUCCESSFUL", style.Green, true), elapsed)
}

// TargetStarted prints the target heading.
func (c *Console) TargetStarted(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.printf("\n%s\n", c.styled(name+":", style.Ember, true))
}

// TargetSkipped prints why a target did not run.
func (c *Console) TargetSkipped(_ string, condition string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.printf("  %s\n", c.styled(style.Skip+" skipped ("+condition+")", style.Ash, false))
}

// TargetFinished is a no-op; failures are reported by the task that caused them.
func (c *Console) TargetFinished(string, error) error {
	return nil
}

// TaskStarted remembers the task that owns subsequent output lines.
func (c *Console) TaskStarted(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.task = name
	c.taskStart = c.now()
	return nil
}

// TaskFinished reports a failed task with its duration.
func (c *Console) TaskFinished(name string, err error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.task = ""
	if err == nil {
		return nil
	}
	elapsed := c.now().Sub(c.taskStart).Round(time.Millisecond)
	return c.printf("  [%s] %s Failed after %v: %v\n", name, c.styled(style.Cross, style.Red, false), elapsed, err)
}

// Log prints engine messages at or above the configured level.
func (c *Console) Log(level domain.LogLevel, message string, cause error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if level < c.level {
		return nil
	}
	if cause != nil {
		message += ": " + cause.Error()
	}
	switch {
	case level >= domain.LogLevelError:
		message = c.styled(style.Cross+" "+message, style.Red, false)
	case level >= domain.LogLevelWarn:
		message = c.styled(style.Warning+" "+message, style.Yellow, false)
	case level < domain.LogLevelInfo:
		message = c.styled(message, style.Ash, false)
	}
	return c.printf("  %s\n", message)
}

// HandleOutputLine prints a line the current task wrote to stdout.
func (c *Console) HandleOutputLine(line string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, _ = fmt.Fprintf(c.stdout, "  %s %s\n", c.prefix(), line)
}

// HandleErrorLine prints a line the current task wrote to stderr.
func (c *Console) HandleErrorLine(line string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, _ = fmt.Fprintf(c.stderr, "  %s %s\n", c.prefix(), line)
}

// prefix must be called with c.mu held.
func (c *Console) prefix() string {
	return c.out.String("[" + c.task + "]").Faint().String()
}

func (c *Console) styled(s string, color lipgloss.Color, bold bool) string {
	st := c.out.String(s).Foreground(c.out.Color(string(color)))
	if bold {
		st = st.Bold()
	}
	return st.String()
}

func (c *Console) printf(format string, args ...any) error {
	_, err := fmt.Fprintf(c.stderr, format, args...)
	return err
}
