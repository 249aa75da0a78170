// Package main provides the entry point for the omegascan CLI.
//
// omegascan renders the results of a gravitational-wave omega scan into
// a cross-linked static HTML report.
//
// Usage:
//
//	omegascan render <result-file>
//	omegascan render -o /path/to/report -c layout.yaml <result-file>
//	omegascan history
//
// See --help for all available options.
package main

// main is the entry point for omegascan.
func main() {
	Execute()
}
