package sink

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/amirhossein-jamali/keylog/internal/domain/port/core"
)

// ConsoleSink writes each line to an io.Writer with fmt.Println semantics:
// arguments are separated by single spaces and a newline is appended.
type ConsoleSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewConsoleSink creates a sink writing to w; a nil writer discards output
func NewConsoleSink(w io.Writer) *ConsoleSink {
	if w == nil {
		w = io.Discard
	}
	return &ConsoleSink{w: w}
}

// NewStdoutSink creates a sink writing to standard output
func NewStdoutSink() core.Sink {
	return NewConsoleSink(os.Stdout)
}

// NewStderrSink creates a sink writing to standard error
func NewStderrSink() core.Sink {
	return NewConsoleSink(os.Stderr)
}

// Write writes a single line. Write errors are dropped.
func (s *ConsoleSink) Write(args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = fmt.Fprintln(s.w, args...)
}
