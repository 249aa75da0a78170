// Package model defines the core data structures used throughout the
// omega-scan report engine.
//
// This package contains the following main types:
//   - Instrument: A gravitational-wave observatory prefix with display metadata
//   - Plot: An image path paired with its display caption
//   - Channel: One monitored data stream with its tile statistics and plots
//   - Block: A named, keyed group of channels scanned together
//   - ScanResult: The root of the hierarchy handed to the renderer
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. Multiple packages (render, report, database) need to use these
// types, so centralizing them prevents import cycles.
//
// The models are designed to be serializable to JSON so that an external
// analysis pipeline can hand results to the renderer through a file.
package model
