// Package report writes the batch report to an io.Writer, typically
// standard output when running from the command line.
package report

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// WriterSink implements ReportSink over an io.Writer. Writes are
// serialized so concurrent callers cannot interleave lines.
type WriterSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterSink creates a sink writing to w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// WriteLines appends the given lines to the report, one per line.
func (s *WriterSink) WriteLines(lines ...string) error {
	if len(lines) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var builder strings.Builder
	for _, line := range lines {
		builder.WriteString(line)
		builder.WriteByte('\n')
	}

	if _, err := fmt.Fprint(s.w, builder.String()); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
