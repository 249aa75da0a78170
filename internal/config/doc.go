// Package config provides configuration structures and utilities for the
// omega-scan report engine. It defines the main options for rendering
// reports, the YAML scan-layout file describing channel blocks, and the
// well-known directory paths used for persistent state.
package config
