package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/scottcoughlin2014/gwdetchar/internal/model"
)

// SimpleWriter outputs human-readable text reports.
// This format is designed for terminal display after a render completes.
//
// Design decision: We use plain text with ASCII formatting rather than
// ANSI colors by default because:
// 1. It works in all terminals without compatibility issues
// 2. It's easier to pipe to files or other tools
// 3. Color can be added as an option later if needed
type SimpleWriter struct {
	baseWriter

	// showEmpty controls whether blocks with no analyzed channels are shown.
	showEmpty bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithShowEmpty configures the writer to show blocks without analyzed
// channels.
func WithShowEmpty(show bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.showEmpty = show
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the full result in human-readable format.
func (w *SimpleWriter) Write(result *model.ScanResult) (int, error) {
	return w.WriteSummary(model.NewScanSummary(result))
}

// WriteSummary outputs the summary in human-readable format.
func (w *SimpleWriter) WriteSummary(summary *model.ScanSummary) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, summary)
	w.writeBlocks(&sb, summary)
	w.writeFooter(&sb, summary)

	return w.output.Write([]byte(sb.String()))
}

// writeHeader writes the report header with scan information.
func (w *SimpleWriter) writeHeader(sb *strings.Builder, summary *model.ScanSummary) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("                         OMEGA SCAN REPORT\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("Interferometer: %s (%s)\n",
		summary.Instrument.DisplayName(), summary.Instrument))
	sb.WriteString(fmt.Sprintf("GPS Time:       %v\n", summary.GPSTime))
	sb.WriteString(fmt.Sprintf("UTC Time:       %s\n",
		summary.UTCTime.Format("2006-01-02 15:04:05 MST")))
	sb.WriteString(fmt.Sprintf("Channels:       %d scanned, %d analyzed\n",
		summary.TotalChannels, summary.AnalyzedChannels))

	if summary.NullResult() {
		sb.WriteString("Status:         NULL RESULT (no significant channels)\n")
	} else {
		sb.WriteString("Status:         Complete\n")
	}

	sb.WriteString("\n")
}

// writeBlocks writes the per-block breakdown.
func (w *SimpleWriter) writeBlocks(sb *strings.Builder, summary *model.ScanSummary) {
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("CHANNEL BLOCKS\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	if len(summary.Blocks) == 0 {
		sb.WriteString("  No blocks scanned\n\n")
		return
	}

	for _, block := range summary.Blocks {
		if block.AnalyzedChannels == 0 && !w.showEmpty {
			continue
		}
		sb.WriteString(fmt.Sprintf("  [+] %-30s %d/%d analyzed\n",
			block.Name, block.AnalyzedChannels, block.TotalChannels))
	}
	sb.WriteString("\n")
}

// writeFooter writes the report footer.
func (w *SimpleWriter) writeFooter(sb *strings.Builder, _ *model.ScanSummary) {
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("Report generated by GW-DetChar\n")
	sb.WriteString("https://github.com/scottcoughlin2014/gwdetchar\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
}
