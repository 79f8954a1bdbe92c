package ports

// ReportSink receives the human-readable batch report: banners, one outcome
// block per processed order and diagnostic lines. The batch narrates every
// outcome here; nothing else is shown to the operator.
type ReportSink interface {
	// WriteLines appends the given lines to the report, one per line.
	WriteLines(lines ...string) error
}
