package domain

import (
	"strings"
	"time"
)

// TargetState is the per-run scheduling state of a target.
type TargetState int

const (
	// TargetNotStarted is the state of a target the run has not reached.
	TargetNotStarted TargetState = iota
	// TargetRunning is the state of a target whose dependencies or tasks are executing.
	TargetRunning
	// TargetDone is the state of a target the run has finished with, whether it ran, was skipped or failed.
	TargetDone
)

// String returns the state name.
func (s TargetState) String() string {
	switch s {
	case TargetRunning:
		return "running"
	case TargetDone:
		return "done"
	default:
		return "not-started"
	}
}

// TargetStatus is the recorded outcome of a target execution.
type TargetStatus string

const (
	// TargetStatusCompleted means every task of the target succeeded.
	TargetStatusCompleted TargetStatus = "completed"
	// TargetStatusFailed means a task of the target failed.
	TargetStatusFailed TargetStatus = "failed"
	// TargetStatusSkipped means the guard condition was false.
	TargetStatusSkipped TargetStatus = "skipped"
)

// NormalizeTargetStatus parses s, defaulting to completed for unknown values.
func NormalizeTargetStatus(s string) TargetStatus {
	switch strings.ToLower(s) {
	case string(TargetStatusFailed):
		return TargetStatusFailed
	case string(TargetStatusSkipped):
		return TargetStatusSkipped
	default:
		return TargetStatusCompleted
	}
}

// TargetRecord is the last recorded outcome of a target.
type TargetRecord struct {
	Project  string        `json:"project"`
	Target   string        `json:"target"`
	Status   TargetStatus  `json:"status"`
	Error    string        `json:"error,omitempty"`
	Started  time.Time     `json:"started"`
	Duration time.Duration `json:"duration"`
}

// LogLevel is the severity of a listener log message, mirroring the slog levels.
type LogLevel int

const (
	// LogLevelDebug is debug verbosity.
	LogLevelDebug LogLevel = -4
	// LogLevelInfo is informational verbosity.
	LogLevelInfo LogLevel = 0
	// LogLevelWarn is warning verbosity.
	LogLevelWarn LogLevel = 4
	// LogLevelError is error verbosity.
	LogLevelError LogLevel = 8
)

// String returns the level name.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}
