// Package report provides the secondary, non-HTML report formats.
//
// This package contains writers for different output formats:
//   - SimpleWriter: Human-readable text output for terminal display
//   - JSONWriter: Structured JSON output for tool integration
//   - MarkdownWriter: Markdown output for documentation and sharing
//
// Design decision: We separate report writing from the result data
// structures (which are in the model package) so new output formats can
// be added without modifying the core data structures. The HTML report
// is different in kind (a multi-file page tree, not a stream) and lives
// in the render package instead.
//
// Writers implement the Writer interface, allowing them to be used
// interchangeably and composed for multi-format output.
package report
