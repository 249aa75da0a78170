package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/scottcoughlin2014/gwdetchar/internal/model"
)

// HistoryDB provides SQLite-based storage for the render history.
// It manages connection pooling and provides methods for recording and
// listing generated reports.
//
// Design decision: We use a single database file shared by all renders
// rather than a file per output directory. The history is about the
// user's activity across reports, so it belongs in one place.
type HistoryDB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures HistoryDB behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging for better concurrent performance.
	// This is recommended for most use cases.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates a HistoryDB at the specified directory.
// If CreateIfNotExists is true, the directory and database file are created.
// If CreateIfNotExists is false and the database doesn't exist, an error is returned.
func Open(dbDir string, opts Options) (*HistoryDB, error) {
	dbPath := filepath.Join(dbDir, "omegascan.db")

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("database not found at %s (use CreateIfNotExists option to create)", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// Build connection string
	// We use modernc.org/sqlite which uses a different connection string format.
	// When CreateIfNotExists is false, we use mode=rw to prevent creating new files.
	// When CreateIfNotExists is true, we use mode=rwc to allow creation.
	var dsn string
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	} else {
		dsn = dbPath + "?mode=rw"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	hdb := &HistoryDB{
		db:     db,
		dbPath: dbPath,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := hdb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return hdb, nil
}

// Close closes the database connection.
func (hdb *HistoryDB) Close() error {
	return hdb.db.Close()
}

// createTables creates the database schema if it doesn't exist.
func (hdb *HistoryDB) createTables() error {
	schema := `
	-- Render records store one row per generated report
	CREATE TABLE IF NOT EXISTS renders (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		instrument TEXT NOT NULL,
		gps_time REAL NOT NULL,
		output_dir TEXT NOT NULL,
		index_path TEXT NOT NULL,
		blocks INTEGER NOT NULL,
		channels INTEGER NOT NULL,
		analyzed_channels INTEGER NOT NULL,
		null_result INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_renders_instrument ON renders(instrument);
	CREATE INDEX IF NOT EXISTS idx_renders_gps ON renders(gps_time);
	CREATE INDEX IF NOT EXISTS idx_renders_created ON renders(created_at);
	`

	_, err := hdb.db.ExecContext(context.Background(), schema)
	return err
}

// RenderRecord represents one stored render of a report.
type RenderRecord struct {
	ID               int64
	Instrument       model.Instrument
	GPSTime          float64
	OutputDir        string
	IndexPath        string
	Blocks           int
	Channels         int
	AnalyzedChannels int
	NullResult       bool
	CreatedAt        time.Time
}

// SaveRender records one generated report and returns its row id.
func (hdb *HistoryDB) SaveRender(ctx context.Context, record *RenderRecord) (int64, error) {
	query := `
	INSERT INTO renders (instrument, gps_time, output_dir, index_path, blocks, channels, analyzed_channels, null_result)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := hdb.db.ExecContext(ctx, query,
		string(record.Instrument),
		record.GPSTime,
		record.OutputDir,
		record.IndexPath,
		record.Blocks,
		record.Channels,
		record.AnalyzedChannels,
		record.NullResult,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to save render record: %w", err)
	}

	return result.LastInsertId()
}

// ListRenders returns stored renders, newest first. A non-empty
// instrument restricts the listing to that observatory prefix; a positive
// limit caps the number of rows returned.
func (hdb *HistoryDB) ListRenders(ctx context.Context, instrument model.Instrument, limit int) ([]RenderRecord, error) {
	query := `
	SELECT id, instrument, gps_time, output_dir, index_path, blocks, channels, analyzed_channels, null_result, created_at
	FROM renders
	`
	args := []any{}
	if instrument != "" {
		query += " WHERE instrument = ?"
		args = append(args, string(instrument))
	}
	query += " ORDER BY created_at DESC, id DESC"
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := hdb.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list renders: %w", err)
	}
	defer rows.Close()

	var records []RenderRecord
	for rows.Next() {
		var record RenderRecord
		var instrument string
		var createdAt string
		if err := rows.Scan(
			&record.ID,
			&instrument,
			&record.GPSTime,
			&record.OutputDir,
			&record.IndexPath,
			&record.Blocks,
			&record.Channels,
			&record.AnalyzedChannels,
			&record.NullResult,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan render record: %w", err)
		}
		record.Instrument = model.Instrument(instrument)
		record.CreatedAt = parseTimestamp(createdAt)
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate render records: %w", err)
	}

	return records, nil
}

// timestampFormats contains the timestamp formats that SQLite may return.
// The order matters: more specific formats should come first.
var timestampFormats = []string{
	"2006-01-02 15:04:05",     // SQLite default datetime format
	"2006-01-02T15:04:05Z",    // ISO 8601 with Z suffix
	"2006-01-02T15:04:05",     // ISO 8601 without timezone
	time.RFC3339,              // Full RFC3339 format
	time.RFC3339Nano,          // RFC3339 with nanoseconds
	"2006-01-02 15:04:05.999", // SQLite with milliseconds
}

// parseTimestamp attempts to parse a timestamp string using multiple formats.
// SQLite may return timestamps in different formats depending on configuration.
func parseTimestamp(s string) time.Time {
	for _, format := range timestampFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t
		}
	}
	// Return zero time if no format matches
	return time.Time{}
}
