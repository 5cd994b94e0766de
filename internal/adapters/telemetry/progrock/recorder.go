// Package progrock records a build run as a progrock tape of target and task vertices.
package progrock

import (
	"fmt"
	"sync"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/anvil/internal/core/domain"
	"go.trai.ch/anvil/internal/core/ports"
)

// Recorder is a listener that records targets and tasks as progrock vertices.
// Task output is written to the vertex of the running task.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder

	mu      sync.Mutex
	project string
	target  string
	targets map[string]*progrock.VertexRecorder
	task    *progrock.VertexRecorder
	seq     int
}

var (
	_ ports.Listener      = (*Recorder)(nil)
	_ ports.SkipObserver  = (*Recorder)(nil)
	_ ports.OutputHandler = (*Recorder)(nil)
)

// New creates a Recorder on a fresh in-memory tape.
func New() *Recorder {
	return NewRecorder(progrock.NewTape())
}

// NewRecorder creates a Recorder with the given writer.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:       w,
		rec:     progrock.NewRecorder(w),
		targets: make(map[string]*progrock.VertexRecorder),
	}
}

func (r *Recorder) vertex(id, name string) *progrock.VertexRecorder {
	return r.rec.Vertex(digest.FromString(id), name)
}

// ProjectStarted remembers the project name used in vertex digests.
func (r *Recorder) ProjectStarted(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.project = name
	return nil
}

// ProjectFinished is a no-op; call Close to flush the tape.
func (r *Recorder) ProjectFinished(error) error { return nil }

// TargetStarted opens the target vertex.
func (r *Recorder) TargetStarted(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.target = name
	r.targets[name] = r.vertex(r.project+"/"+name, name)
	return nil
}

// TargetSkipped marks the target vertex cached; its tasks never ran.
func (r *Recorder) TargetSkipped(name, _ string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if v, ok := r.targets[name]; ok {
		v.Cached()
	}
	return nil
}

// TargetFinished completes the target vertex.
func (r *Recorder) TargetFinished(name string, err error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if v, ok := r.targets[name]; ok {
		v.Done(err)
		delete(r.targets, name)
	}
	return nil
}

// TaskStarted opens a vertex for the task. Every task invocation gets its own vertex.
func (r *Recorder) TaskStarted(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	r.task = r.vertex(fmt.Sprintf("%s/%s/%d", r.project, r.target, r.seq), r.target+" > "+name)
	return nil
}

// TaskFinished completes the task vertex.
func (r *Recorder) TaskFinished(_ string, err error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.task != nil {
		r.task.Done(err)
		r.task = nil
	}
	return nil
}

// Log writes the message to the running task's vertex.
func (r *Recorder) Log(level domain.LogLevel, message string, cause error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.task == nil {
		return nil
	}
	if cause != nil {
		message += ": " + cause.Error()
	}
	_, err := fmt.Fprintf(r.task.Stdout(), "[%s] %s\n", level, message)
	return err
}

// HandleOutputLine writes line to the running task's stdout.
func (r *Recorder) HandleOutputLine(line string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.task != nil {
		_, _ = fmt.Fprintln(r.task.Stdout(), line)
	}
}

// HandleErrorLine writes line to the running task's stderr.
func (r *Recorder) HandleErrorLine(line string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.task != nil {
		_, _ = fmt.Fprintln(r.task.Stderr(), line)
	}
}

// Close flushes and closes the recording session.
func (r *Recorder) Close() error {
	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
