package journal

import (
	"sync"
	"time"

	"go.trai.ch/anvil/internal/core/domain"
	"go.trai.ch/anvil/internal/core/ports"
)

// Recorder is a listener that writes one record per finished target.
type Recorder struct {
	journal ports.RunJournal
	now     func() time.Time

	mu      sync.Mutex
	project string
	started map[string]time.Time
	skipped map[string]bool
}

var (
	_ ports.Listener     = (*Recorder)(nil)
	_ ports.SkipObserver = (*Recorder)(nil)
)

// NewRecorder creates a Recorder writing to journal.
func NewRecorder(journal ports.RunJournal) *Recorder {
	return &Recorder{
		journal: journal,
		now:     time.Now,
		started: make(map[string]time.Time),
		skipped: make(map[string]bool),
	}
}

// WithClock replaces the time source used for start times and durations.
func (r *Recorder) WithClock(now func() time.Time) *Recorder {
	r.now = now
	return r
}

// ProjectStarted remembers the project the following targets belong to.
func (r *Recorder) ProjectStarted(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.project = name
	return nil
}

// ProjectFinished is a no-op.
func (r *Recorder) ProjectFinished(error) error { return nil }

// TargetStarted records the start time of name.
func (r *Recorder) TargetStarted(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.started[name] = r.now()
	delete(r.skipped, name)
	return nil
}

// TargetSkipped marks name as skipped by its guard condition.
func (r *Recorder) TargetSkipped(name, _ string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.skipped[name] = true
	return nil
}

// TargetFinished writes the outcome of name to the journal.
func (r *Recorder) TargetFinished(name string, err error) error {
	r.mu.Lock()
	started, ok := r.started[name]
	if !ok {
		started = r.now()
	}
	rec := domain.TargetRecord{
		Project:  r.project,
		Target:   name,
		Status:   domain.TargetStatusCompleted,
		Started:  started,
		Duration: r.now().Sub(started),
	}
	switch {
	case err != nil:
		rec.Status = domain.TargetStatusFailed
		rec.Error = err.Error()
	case r.skipped[name]:
		rec.Status = domain.TargetStatusSkipped
	}
	delete(r.started, name)
	delete(r.skipped, name)
	r.mu.Unlock()

	return r.journal.Put(rec)
}

// TaskStarted is a no-op.
func (r *Recorder) TaskStarted(string) error { return nil }

// TaskFinished is a no-op.
func (r *Recorder) TaskFinished(string, error) error { return nil }

// Log is a no-op.
func (r *Recorder) Log(domain.LogLevel, string, error) error { return nil }
