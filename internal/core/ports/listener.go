package ports

import "go.trai.ch/anvil/internal/core/domain"

// Listener observes a build run.
// Returned errors never change which targets run; the engine collects them
// and reports them to the host when the run ends.
//
//go:generate mockgen -source=listener.go -destination=mocks/mock_listener.go -package=mocks
type Listener interface {
	ProjectStarted(name string) error
	ProjectFinished(err error) error
	TargetStarted(name string) error
	TargetFinished(name string, err error) error
	TaskStarted(name string) error
	TaskFinished(name string, err error) error
	Log(level domain.LogLevel, message string, cause error) error
}

// SkipObserver is implemented by listeners that want to know when a guard condition skips a target.
// TargetSkipped is called between TargetStarted and TargetFinished.
type SkipObserver interface {
	TargetSkipped(name, condition string) error
}
