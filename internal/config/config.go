package config

import (
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/scottcoughlin2014/gwdetchar/internal/model"
)

// Default configuration values.
const (
	// DefaultOutDir is the output directory for rendered reports.
	// The current directory matches how the analysis pipeline invokes the
	// renderer: one working directory per event.
	DefaultOutDir = "."

	// AppName is the application name used for XDG directory paths.
	AppName = "omegascan"
)

// Config holds all options for one report-rendering invocation.
// This struct is populated from CLI flags and passed through the
// application via dependency injection rather than global state.
//
// Design decision: We use a single flat struct instead of nested structs
// for simplicity. The number of options is manageable, and nesting would
// add complexity without significant benefit.
type Config struct {
	// ResultFile is the path of the JSON scan-result file produced by the
	// analysis pipeline. Required.
	ResultFile string

	// OutDir is the directory that receives index.html and its satellite
	// files (about/, static/, the content fragment).
	OutDir string

	// LayoutFiles are the paths of the YAML scan-layout files that
	// configured the analysis. When present they are validated and
	// reproduced in full on the about page.
	LayoutFiles []string

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// JSONReport enables a JSON scan summary on stdout (or ReportFile)
	// in addition to the HTML pages. Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables a Markdown scan summary in addition to the
	// HTML pages. Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output path for the summary report.
	// When empty, summaries are written to stdout.
	ReportFile string

	// SaveHistory indicates whether to record this render in the history
	// database for later inspection with the history command.
	SaveHistory bool

	// DBDir is the directory holding the SQLite history database.
	// Defaults to the XDG data directory.
	DBDir string
}

// NewConfig creates a new Config with default values.
//
// Design decision: We use a constructor function instead of relying on
// zero values because several defaults are non-zero. This also serves as
// documentation of what the defaults are.
func NewConfig() *Config {
	return &Config{
		OutDir:      DefaultOutDir,
		SaveHistory: true,
		DBDir:       XDGDataDir(),
	}
}

// Validate checks if the configuration is valid.
// It returns a specific sentinel error describing what is invalid.
//
// We return the first error found rather than collecting all errors
// because fixing one error often makes others irrelevant.
func (c *Config) Validate() error {
	if c.ResultFile == "" {
		return ErrNoResultFile
	}
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}
	return nil
}

// ValidateResult checks invariants of a loaded scan result that the
// renderer depends on: a known instrument and a positive GPS time.
func ValidateResult(result *model.ScanResult) error {
	if !result.Instrument.Valid() {
		return ErrUnknownInstrument
	}
	if result.GPSTime <= 0 {
		return ErrInvalidGPSTime
	}
	return nil
}

// XDGDataDir returns the XDG data directory for the renderer.
// This follows the XDG Base Directory Specification.
// On Linux: ~/.local/share/omegascan
// On macOS: ~/Library/Application Support/omegascan
// On Windows: %LOCALAPPDATA%\omegascan
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for the renderer.
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}
