package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and Layout.Validate()
// and provide specific information about what is wrong.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances at each call site. This allows callers to
// use errors.Is() for programmatic error handling while still providing
// human-readable messages.
var (
	// ErrNoResultFile is returned when no scan-result file is specified.
	// The renderer has nothing to do without pipeline output to render.
	ErrNoResultFile = errors.New("no scan result specified: provide the path of a scan-result JSON file")

	// ErrUnknownInstrument is returned when the instrument prefix is not a
	// known observatory. The banner color and panel context depend on it.
	ErrUnknownInstrument = errors.New("unknown instrument: must be one of G1, H1, I1, K1, L1, V1")

	// ErrInvalidGPSTime is returned when the GPS time is not positive.
	// A zero or negative time cannot come from a real analysis.
	ErrInvalidGPSTime = errors.New("invalid GPS time: must be positive")

	// ErrConflictingReportFormats is returned when both --json and
	// --markdown are specified. Only one summary format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrNoBlocks is returned when a scan-layout file defines no blocks.
	ErrNoBlocks = errors.New("scan layout defines no channel blocks")

	// ErrDuplicateBlockKey is returned when two blocks in a scan layout
	// share a key. Keys become anchor targets in the table of contents,
	// so duplicates would cause silent anchor collisions in the report.
	ErrDuplicateBlockKey = errors.New("duplicate block key in scan layout")
)
