// Package main provides the entry point for the omegascan CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/scottcoughlin2014/gwdetchar/internal/version"
)

// NewRootCmd creates the root command for omegascan.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "omegascan",
		Short: "Render omega-scan results into HTML reports",
		Long: `omegascan renders the results of a gravitational-wave omega scan
into a cross-linked static HTML report: an instrument-branded page of
channel blocks, per-channel tile statistics, and interactive spectrogram
thumbnails, plus an about-page reproducing the scan configuration.`,
		Version:       version.Version(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewRenderCmd())
	cmd.AddCommand(NewHistoryCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
