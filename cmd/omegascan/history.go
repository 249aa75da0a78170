package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/scottcoughlin2014/gwdetchar/internal/config"
	"github.com/scottcoughlin2014/gwdetchar/internal/database"
	"github.com/scottcoughlin2014/gwdetchar/internal/model"
)

// NewHistoryCmd creates the history command.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List previously rendered reports",
		Long: `History lists the reports recorded by previous render runs, newest
first: instrument, GPS time, channel counts and output location.

Examples:
  # List the most recent renders
  omegascan history

  # Only LIGO Livingston renders, as JSON
  omegascan history -i L1 --json`,
		Args: cobra.NoArgs,
		RunE: runHistoryCmd,
	}

	cmd.Flags().StringP("instrument", "i", "",
		"Only list renders for this observatory prefix (e.g. L1)")
	cmd.Flags().IntP("limit", "n", 20,
		"Maximum number of renders to list (0 for all)")
	cmd.Flags().BoolP("json", "j", false,
		"Output the listing as JSON")
	cmd.Flags().String("db-dir", "",
		"Directory of the history database (default: XDG data directory)")

	return cmd
}

// runHistoryCmd executes the history command.
func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	instrument, err := cmd.Flags().GetString("instrument")
	if err != nil {
		return err
	}
	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return err
	}
	asJSON, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}
	dbDir, err := cmd.Flags().GetString("db-dir")
	if err != nil {
		return err
	}
	if dbDir == "" {
		dbDir = config.XDGDataDir()
	}

	// Listing must not create an empty database.
	hdb, err := database.Open(dbDir, database.Options{CreateIfNotExists: false, EnableWAL: true})
	if err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), "No render history found.")
		return nil
	}
	defer hdb.Close()

	records, err := hdb.ListRenders(cmd.Context(), model.Instrument(instrument), limit)
	if err != nil {
		return err
	}

	if asJSON {
		data, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	if len(records) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No render history found.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tIFO\tGPS TIME\tANALYZED\tRESULT\tOUTPUT")
	for _, r := range records {
		status := strconv.Itoa(r.AnalyzedChannels) + "/" + strconv.Itoa(r.Channels)
		result := "ok"
		if r.NullResult {
			result = "null"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			r.CreatedAt.Format("2006-01-02 15:04"),
			r.Instrument,
			strconv.FormatFloat(r.GPSTime, 'f', -1, 64),
			status,
			result,
			r.IndexPath,
		)
	}
	return w.Flush()
}
