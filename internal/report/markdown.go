package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"

	"github.com/scottcoughlin2014/gwdetchar/internal/model"
)

// MarkdownWriter outputs results in Markdown format.
// This format is designed for documentation and sharing, e.g. pasting a
// scan overview into an issue tracker alongside the HTML report link.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and code blocks
// 3. GitHub-flavored markdown alerts
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the full result in Markdown format.
func (w *MarkdownWriter) Write(result *model.ScanResult) (int, error) {
	return w.WriteSummary(model.NewScanSummary(result))
}

// WriteSummary outputs the summary in Markdown format.
func (w *MarkdownWriter) WriteSummary(summary *model.ScanSummary) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, summary)
	w.writeBlocks(md, summary)
	w.writeAlert(md, summary)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeHeader writes the report header with scan information.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, summary *model.ScanSummary) {
	md.H1("Omega Scan Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Interferometer", summary.Instrument.DisplayName() + " (`" + string(summary.Instrument) + "`)"},
			{"GPS Time", strconv.FormatFloat(summary.GPSTime, 'f', -1, 64)},
			{"UTC Time", summary.UTCTime.Format("2006-01-02 15:04:05 MST")},
			{"Channels Scanned", strconv.Itoa(summary.TotalChannels)},
			{"Channels Analyzed", strconv.Itoa(summary.AnalyzedChannels)},
		},
	})
	md.PlainText("")
}

// writeBlocks writes the per-block breakdown table.
func (w *MarkdownWriter) writeBlocks(md *markdown.Markdown, summary *model.ScanSummary) {
	md.H2("Channel Blocks")
	md.PlainText("")

	if len(summary.Blocks) == 0 {
		md.PlainText("No channel blocks were scanned.")
		md.PlainText("")
		return
	}

	rows := make([][]string, len(summary.Blocks))
	for i, block := range summary.Blocks {
		rows[i] = []string{
			block.Name,
			"`" + block.Key + "`",
			strconv.Itoa(block.TotalChannels),
			strconv.Itoa(block.AnalyzedChannels),
		}
	}

	md.Table(markdown.TableSet{
		Header: []string{"Block", "Key", "Channels", "Analyzed"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeAlert writes an alert summarizing the outcome.
func (w *MarkdownWriter) writeAlert(md *markdown.Markdown, summary *model.ScanSummary) {
	switch {
	case summary.NullResult():
		md.Note("No channels passed the significance threshold. The report carries a null-result page.")
	case summary.AnalyzedChannels == summary.TotalChannels:
		md.Tipf("All %d scanned channels produced significant tiles.", summary.TotalChannels)
	default:
		md.Importantf("%d of %d scanned channels produced significant tiles.",
			summary.AnalyzedChannels, summary.TotalChannels)
	}
	md.PlainText("")
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated by [GW-DetChar](https://github.com/scottcoughlin2014/gwdetchar)*")
}
