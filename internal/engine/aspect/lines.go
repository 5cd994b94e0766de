package aspect

import (
	"bytes"
	"strings"
	"sync"
)

// lineWriter buffers written bytes and emits complete lines, without the trailing newline.
type lineWriter struct {
	mu     sync.Mutex
	buf    []byte
	emit   func(string)
	closed bool
}

func newLineWriter(emit func(string)) *lineWriter {
	return &lineWriter{emit: emit}
}

func (w *lineWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return len(p), nil
	}

	w.buf = append(w.buf, p...)
	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.emitLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}
	return len(p), nil
}

// Close flushes a trailing partial line. Later writes are discarded.
func (w *lineWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if len(w.buf) > 0 {
		w.emitLine(w.buf)
		w.buf = nil
	}
	w.closed = true
	return nil
}

func (w *lineWriter) emitLine(line []byte) {
	w.emit(strings.TrimSuffix(string(line), "\r"))
}
