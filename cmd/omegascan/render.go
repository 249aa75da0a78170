package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/scottcoughlin2014/gwdetchar/internal/config"
	"github.com/scottcoughlin2014/gwdetchar/internal/database"
	"github.com/scottcoughlin2014/gwdetchar/internal/log"
	"github.com/scottcoughlin2014/gwdetchar/internal/model"
	"github.com/scottcoughlin2014/gwdetchar/internal/render"
	"github.com/scottcoughlin2014/gwdetchar/internal/report"
)

// nullResultReason is the alert text shown when a scan analyzed nothing.
const nullResultReason = "No significant channels found."

// NewRenderCmd creates the render command.
func NewRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [result-file]",
		Short: "Render an omega-scan result into an HTML report",
		Long: `Render reads the JSON result file produced by the analysis pipeline
and generates a static HTML report in the output directory: index.html,
the asynchronously-loaded content fragment, shared static assets, and
(when scan layouts are supplied) an about-page reproducing them.

A scan whose channels all fell below the significance threshold renders
a null-result page instead of the block panels.

Examples:
  # Render into the current directory
  omegascan render scan.json

  # Render into a dedicated directory with the scan layouts linked
  omegascan render -o /data/reports/L1-1187008882 -c layout.yaml scan.json

  # Also print a machine-readable summary
  omegascan render --json scan.json

  # Write a Markdown summary next to the report
  omegascan render --markdown --report summary.md scan.json`,
		Args: cobra.ExactArgs(1),
		RunE: runRenderCmd,
	}

	cmd.Flags().StringP("out", "o", config.DefaultOutDir,
		"Output directory for the rendered report")
	cmd.Flags().StringSliceP("config", "c", nil,
		"Scan-layout YAML file (repeatable); validated and reproduced on the about page")

	// Summary report flags
	cmd.Flags().BoolP("json", "j", false,
		"Print a JSON scan summary (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Print a Markdown scan summary (mutually exclusive with --json)")
	cmd.Flags().StringP("report", "r", "",
		"Write the summary to the specified file instead of stdout")

	// History flags
	cmd.Flags().Bool("no-history", false,
		"Do not record this render in the history database")
	cmd.Flags().String("db-dir", "",
		"Directory of the history database (default: XDG data directory)")

	return cmd
}

// runRenderCmd executes the render command.
func runRenderCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cfg.Verbose)
	slog.SetDefault(logger)

	return runRender(context.Background(), cfg, cmd.OutOrStdout(), logger)
}

// buildConfig creates a Config from cobra command flags.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.ResultFile = args[0]

	var err error

	cfg.OutDir, err = cmd.Flags().GetString("out")
	if err != nil {
		return nil, err
	}

	cfg.LayoutFiles, err = cmd.Flags().GetStringSlice("config")
	if err != nil {
		return nil, err
	}

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.ReportFile, err = cmd.Flags().GetString("report")
	if err != nil {
		return nil, err
	}

	noHistory, err := cmd.Flags().GetBool("no-history")
	if err != nil {
		return nil, err
	}
	cfg.SaveHistory = !noHistory

	dbDir, err := cmd.Flags().GetString("db-dir")
	if err != nil {
		return nil, err
	}
	if dbDir != "" {
		cfg.DBDir = dbDir
	}

	cfg.Verbose = getVerboseFlag(cmd)

	return cfg, nil
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// setupLogger creates a structured logger based on verbosity setting.
// Every record is stamped with the identity of the scan being rendered.
func setupLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := log.NewScanHandler(slog.NewTextHandler(os.Stderr, opts))
	return slog.New(handler)
}

// runRender executes the render.
func runRender(ctx context.Context, cfg *config.Config, stdout io.Writer, logger *slog.Logger) error {
	result, err := model.LoadScanResult(cfg.ResultFile)
	if err != nil {
		return err
	}
	if err := config.ValidateResult(result); err != nil {
		return fmt.Errorf("invalid scan result %s: %w", cfg.ResultFile, err)
	}

	ctx = log.WithScan(ctx, string(result.Instrument), result.GPSTime)
	logger.InfoContext(ctx, "rendering report",
		"resultFile", cfg.ResultFile,
		"outDir", cfg.OutDir,
		"blocks", len(result.Blocks),
		"channels", result.TotalChannels(),
		"analyzed", result.AnalyzedChannels(),
	)

	// Validate the scan layouts before rendering anything so a broken
	// layout fails the run instead of producing a report with a broken
	// about page.
	for _, path := range cfg.LayoutFiles {
		layout, err := config.LoadLayout(path)
		if err != nil {
			return err
		}
		if err := layout.Validate(); err != nil {
			return fmt.Errorf("invalid scan layout %s: %w", path, err)
		}
	}

	opts := render.WriteOptions{
		OutDir:      cfg.OutDir,
		ConfigFiles: cfg.LayoutFiles,
	}

	var index string
	nullResult := result.AnalyzedChannels() == 0
	if nullResult {
		logger.InfoContext(ctx, "no analyzed channels, rendering null page")
		index, err = render.WriteNullPage(result.Instrument, result.GPSTime, nullResultReason, opts)
	} else {
		index, err = render.WriteQscanPage(result, opts)
	}
	if err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	logger.InfoContext(ctx, "report written", "index", index)

	if err := writeSummaryReport(cfg, result, stdout); err != nil {
		return err
	}

	if cfg.SaveHistory {
		if err := saveRenderHistory(ctx, cfg, result, index, nullResult, logger); err != nil {
			// History is bookkeeping; a failure should not discard a report
			// that is already on disk.
			logger.WarnContext(ctx, "failed to record render history", "error", err)
		}
	}

	return nil
}

// writeSummaryReport writes the scan summary: a terminal report by
// default, or the requested machine/documentation format.
func writeSummaryReport(cfg *config.Config, result *model.ScanResult, stdout io.Writer) error {
	out := stdout
	if cfg.ReportFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.ReportFile), 0750); err != nil {
			return fmt.Errorf("failed to create report directory: %w", err)
		}
		f, err := os.Create(cfg.ReportFile)
		if err != nil {
			return fmt.Errorf("failed to create report file: %w", err)
		}
		defer f.Close()
		out = f
	}

	var writer report.Writer
	switch {
	case cfg.JSONReport:
		writer = report.NewJSONWriter(out, report.WithPrettyPrint())
	case cfg.MarkdownReport:
		writer = report.NewMarkdownWriter(out)
	default:
		writer = report.NewSimpleWriter(out)
	}

	if _, err := writer.Write(result); err != nil {
		return fmt.Errorf("failed to write summary report: %w", err)
	}
	return nil
}

// saveRenderHistory records the render in the history database.
func saveRenderHistory(ctx context.Context, cfg *config.Config, result *model.ScanResult, index string, nullResult bool, logger *slog.Logger) error {
	hdb, err := database.Open(cfg.DBDir, database.DefaultOptions())
	if err != nil {
		return err
	}
	defer hdb.Close()

	id, err := hdb.SaveRender(ctx, &database.RenderRecord{
		Instrument:       result.Instrument,
		GPSTime:          result.GPSTime,
		OutputDir:        cfg.OutDir,
		IndexPath:        index,
		Blocks:           len(result.Blocks),
		Channels:         result.TotalChannels(),
		AnalyzedChannels: result.AnalyzedChannels(),
		NullResult:       nullResult,
	})
	if err != nil {
		return err
	}

	logger.DebugContext(ctx, "render recorded", "id", id, "dbDir", cfg.DBDir)
	return nil
}
