package report_test

import (
	"errors"
	"strings"
	"testing"

	"logistic/internal/adapters/out/report"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriteLines_AppendsOnePerLine(t *testing.T) {
	var buf strings.Builder
	sink := report.NewWriterSink(&buf)

	require.NoError(t, sink.WriteLines("Domain: acme.example", "Rows to process: 2"))
	require.NoError(t, sink.WriteLines(""))

	assert.Equal(t, "Domain: acme.example\nRows to process: 2\n\n", buf.String())
}

func TestWriteLines_NoLinesIsNoOp(t *testing.T) {
	var buf strings.Builder
	sink := report.NewWriterSink(&buf)

	require.NoError(t, sink.WriteLines())

	assert.Empty(t, buf.String())
}

func TestWriteLines_PropagatesWriterError(t *testing.T) {
	sink := report.NewWriterSink(failingWriter{})

	err := sink.WriteLines("anything")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}
