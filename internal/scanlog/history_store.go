package scanlog

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/oddhash/oddhash/internal/contract"
	"github.com/oddhash/oddhash/schema"
)

// scanRunsTable is the name of the table for scan run history.
const scanRunsTable = "oddhash_scan_runs"

// runTimeFormat is how run timestamps are stored. Text timestamps keep
// the table portable across all three backends.
const runTimeFormat = time.RFC3339Nano

// HistoryStoreImpl implements the HistoryStore interface.
type HistoryStoreImpl struct {
	db         *sql.DB
	backend    schema.DatabaseBackend
	driverName string
}

var _ contract.HistoryStore = &HistoryStoreImpl{} // Compile-time check

// NewHistoryStore creates a new HistoryStore with the specified backend.
func NewHistoryStore(backend schema.DatabaseBackend, connStr string) (contract.HistoryStore, error) {
	var db *sql.DB
	var err error
	var driverName string

	switch backend {
	case schema.SQLiteBackend:
		driverName = "sqlite"
		dbPath := connStr
		if dbPath == "" {
			dbPath = GetHistoryDBFilePath()
		}
		db, err = sql.Open(driverName, dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open SQLite database at %q: %w. Check that the directory is writable", dbPath, err)
		}
		// Limit SQLite to a single open connection to avoid "database is locked" errors
		db.SetMaxOpenConns(1)

	case schema.MySQLBackend:
		driverName = "mysql"
		db, err = sql.Open(driverName, connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to open MySQL database: %w. Check connection string format: user:password@tcp(host:port)/dbname", err)
		}

	case schema.PostgreSQLBackend:
		driverName = "pgx"
		db, err = sql.Open(driverName, connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to open PostgreSQL database: %w. Check connection string format: host=localhost port=5432 user=postgres dbname=mydb", err)
		}

	case schema.NoneBackend:
		// Return a no-op store for disabled tracking
		return &HistoryStoreImpl{backend: backend}, nil

	default:
		return nil, fmt.Errorf("unsupported backend: %s", backend)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to %s database: %w. Verify the database server is running and accessible", backend, err)
	}

	quotedTableName := quoteTableName(scanRunsTable, backend)
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			run_id BIGINT PRIMARY KEY,
			start_time TEXT NOT NULL,
			end_time TEXT NULL,
			run_duration_ms INTEGER NULL,
			repo_path TEXT NOT NULL,
			head_hash TEXT NOT NULL,
			total_commits INTEGER NOT NULL DEFAULT 0,
			common_count INTEGER NOT NULL DEFAULT 0,
			uncommon_count INTEGER NOT NULL DEFAULT 0,
			rare_count INTEGER NOT NULL DEFAULT 0,
			config_params TEXT NULL
		);
	`, quotedTableName)
	if _, err := db.Exec(query); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create table %s: %w", scanRunsTable, err)
	}

	return &HistoryStoreImpl{
		db:         db,
		backend:    backend,
		driverName: driverName,
	}, nil
}

// placeholder returns the positional parameter placeholder for the backend.
func (hs *HistoryStoreImpl) placeholder(n int) string {
	if hs.backend == schema.PostgreSQLBackend {
		return fmt.Sprintf("$%d", n)
	}
	return "?"
}

// BeginRun creates a new scan run and returns its unique ID. Run IDs are
// allocated in application code to keep the table definition portable
// across backends; this is safe for a single-user CLI.
func (hs *HistoryStoreImpl) BeginRun(startTime time.Time, repoPath, headHash string, configParams map[string]any) (int64, error) {
	if hs.backend == schema.NoneBackend || hs.db == nil {
		return 0, nil
	}

	quotedTableName := quoteTableName(scanRunsTable, hs.backend)

	var runID int64
	idQuery := fmt.Sprintf("SELECT COALESCE(MAX(run_id), 0) + 1 FROM %s", quotedTableName)
	if err := hs.db.QueryRow(idQuery).Scan(&runID); err != nil {
		return 0, fmt.Errorf("failed to allocate run ID: %w", err)
	}

	var paramsJSON *string
	if len(configParams) > 0 {
		data, err := json.Marshal(configParams)
		if err != nil {
			return 0, fmt.Errorf("failed to encode config params: %w", err)
		}
		s := string(data)
		paramsJSON = &s
	}

	query := fmt.Sprintf(
		"INSERT INTO %s (run_id, start_time, repo_path, head_hash, config_params) VALUES (%s, %s, %s, %s, %s)",
		quotedTableName,
		hs.placeholder(1), hs.placeholder(2), hs.placeholder(3), hs.placeholder(4), hs.placeholder(5),
	)
	if _, err := hs.db.Exec(query, runID, startTime.UTC().Format(runTimeFormat), repoPath, headHash, paramsJSON); err != nil {
		return 0, fmt.Errorf("failed to insert scan run: %w", err)
	}
	return runID, nil
}

// EndRun updates the scan run with completion data.
func (hs *HistoryStoreImpl) EndRun(runID int64, endTime time.Time, summary schema.CountSummary) error {
	if hs.backend == schema.NoneBackend || hs.db == nil {
		return nil
	}

	quotedTableName := quoteTableName(scanRunsTable, hs.backend)

	var startStr string
	selectQuery := fmt.Sprintf("SELECT start_time FROM %s WHERE run_id = %s", quotedTableName, hs.placeholder(1))
	if err := hs.db.QueryRow(selectQuery, runID).Scan(&startStr); err != nil {
		return fmt.Errorf("failed to look up scan run %d: %w", runID, err)
	}
	durationMs := int32(0)
	if start, err := time.Parse(runTimeFormat, startStr); err == nil {
		durationMs = int32(endTime.Sub(start).Milliseconds())
	}

	query := fmt.Sprintf(
		"UPDATE %s SET end_time = %s, run_duration_ms = %s, total_commits = %s, common_count = %s, uncommon_count = %s, rare_count = %s WHERE run_id = %s",
		quotedTableName,
		hs.placeholder(1), hs.placeholder(2), hs.placeholder(3), hs.placeholder(4), hs.placeholder(5), hs.placeholder(6), hs.placeholder(7),
	)
	_, err := hs.db.Exec(query,
		endTime.UTC().Format(runTimeFormat), durationMs,
		summary.Total, summary.Common, summary.Uncommon, summary.Rare, runID)
	if err != nil {
		return fmt.Errorf("failed to finalize scan run %d: %w", runID, err)
	}
	return nil
}

// ListRuns returns the most recent scan runs, newest first.
func (hs *HistoryStoreImpl) ListRuns(limit int) ([]schema.ScanRunRecord, error) {
	if hs.backend == schema.NoneBackend || hs.db == nil {
		return nil, nil
	}
	if limit <= 0 {
		limit = contract.DefaultResultLimit
	}

	quotedTableName := quoteTableName(scanRunsTable, hs.backend)
	query := fmt.Sprintf(`
		SELECT run_id, start_time, end_time, run_duration_ms, repo_path, head_hash,
			total_commits, common_count, uncommon_count, rare_count, config_params
		FROM %s ORDER BY run_id DESC LIMIT %s`, quotedTableName, hs.placeholder(1))
	rows, err := hs.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list scan runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []schema.ScanRunRecord
	for rows.Next() {
		var r schema.ScanRunRecord
		var startStr string
		var endStr *string
		if err := rows.Scan(&r.RunID, &startStr, &endStr, &r.RunDurationMs, &r.RepoPath, &r.HeadHash,
			&r.TotalCommits, &r.CommonCount, &r.UncommonCount, &r.RareCount, &r.ConfigParams); err != nil {
			return nil, fmt.Errorf("failed to scan run row: %w", err)
		}
		if t, err := time.Parse(runTimeFormat, startStr); err == nil {
			r.StartTime = t
		}
		if endStr != nil {
			if t, err := time.Parse(runTimeFormat, *endStr); err == nil {
				r.EndTime = &t
			}
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// GetStatus returns status information about the history store.
func (hs *HistoryStoreImpl) GetStatus() (schema.HistoryStatus, error) {
	status := schema.HistoryStatus{
		Backend:   string(hs.backend),
		Connected: hs.db != nil,
	}
	if hs.backend == schema.NoneBackend || hs.db == nil {
		return status, nil
	}

	quotedTableName := quoteTableName(scanRunsTable, hs.backend)
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s", quotedTableName)
	if err := hs.db.QueryRow(countQuery).Scan(&status.TotalRuns); err != nil {
		return status, fmt.Errorf("failed to count scan runs: %w", err)
	}
	if status.TotalRuns == 0 {
		return status, nil
	}

	lastQuery := fmt.Sprintf("SELECT MAX(start_time) FROM %s", quotedTableName)
	var lastStr string
	if err := hs.db.QueryRow(lastQuery).Scan(&lastStr); err != nil {
		return status, fmt.Errorf("failed to get last run time: %w", err)
	}
	if t, err := time.Parse(runTimeFormat, lastStr); err == nil {
		status.LastRunTime = t
	}
	return status, nil
}

// Clear removes all recorded runs.
func (hs *HistoryStoreImpl) Clear() error {
	if hs.backend == schema.NoneBackend || hs.db == nil {
		return nil
	}
	quotedTableName := quoteTableName(scanRunsTable, hs.backend)
	_, err := hs.db.Exec(fmt.Sprintf("DELETE FROM %s", quotedTableName))
	return err
}

// Close closes the underlying connection.
func (hs *HistoryStoreImpl) Close() error {
	if hs.db != nil {
		return hs.db.Close()
	}
	return nil
}
