package cmd

import (
	"fmt"

	"github.com/oddhash/oddhash/internal/contract"
	"github.com/oddhash/oddhash/internal/outwriter"
	"github.com/oddhash/oddhash/internal/scanlog"
	"github.com/oddhash/oddhash/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// historySetup loads minimal configuration needed for history operations.
// This is used by commands that need history access without full shared setup.
func historySetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get history-related config values
	backendStr := viper.GetString("history-backend")
	connStr := viper.GetString("history-db-connect")

	// Handle empty backend as NoneBackend
	var backend schema.DatabaseBackend
	if backendStr == "" {
		backend = schema.NoneBackend
	} else {
		backend = schema.DatabaseBackend(backendStr)
	}

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// Get output-related config values (used by list and export commands)
	outputFile := viper.GetString("output-file")
	output := schema.OutputMode(viper.GetString("output"))
	limit := viper.GetInt("limit")
	width := viper.GetInt("width")
	precision := viper.GetInt("precision")

	// Initialize stores with the loaded config (no log caching for history commands)
	if err := scanlog.InitStores(schema.NoneBackend, "", backend, connStr); err != nil {
		return fmt.Errorf("failed to initialize history: %w", err)
	}

	cfg.HistoryBackend = backend
	cfg.HistoryDBConnect = connStr
	cfg.OutputFile = outputFile
	cfg.Output = output
	cfg.ResultLimit = limit
	cfg.Width = width
	cfg.Precision = precision

	return nil
}

// historySetupWrapper wraps historySetup to provide PreRunE for history commands.
func historySetupWrapper(_ *cobra.Command, _ []string) error {
	return historySetup()
}

// historyMigrateSetup loads minimal configuration needed for migrate operations.
// This is a specialized setup that does NOT initialize stores or create tables,
// allowing migrations to run on a fresh database.
func historyMigrateSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get history-related config values
	backendStr := viper.GetString("history-backend")
	connStr := viper.GetString("history-db-connect")

	// Handle empty backend as NoneBackend
	var backend schema.DatabaseBackend
	if backendStr == "" {
		backend = schema.NoneBackend
	} else {
		backend = schema.DatabaseBackend(backendStr)
	}

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// For SQLite backend with empty connection string, use default path
	if backend == schema.SQLiteBackend && connStr == "" {
		connStr = contract.GetHistoryDBFilePath()
	}

	cfg.HistoryBackend = backend
	cfg.HistoryDBConnect = connStr

	return nil
}

// historyMigrateSetupWrapper wraps historyMigrateSetup to provide PreRunE for migrate command.
func historyMigrateSetupWrapper(_ *cobra.Command, _ []string) error {
	return historyMigrateSetup()
}

// historyCmd focused on scan history management.
//
// Note: History subcommands use minimal initialization (historySetup) instead of
// the full sharedSetup used by scan commands. This avoids Git repo validation
// and complex config processing for simple history operations.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage scan run history and exports",
	Long: `Manage scan run history used for tracking and reporting.

When enabled, Oddhash tracks every scan run, storing:
- Run metadata (timestamps, repository, head commit, duration)
- Rarity tier counts for each run
- Configuration parameters used

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  status  - Show scan history statistics
  list    - Show recent scan runs
  export  - Export run data to Parquet for analytics
  clear   - Remove all run history
  migrate - Run database schema migrations

Examples:
  # Check history status
  oddhash history status

  # Export for analysis in pandas/DuckDB
  oddhash history export --output-file oddhash-runs.parquet`,
}

// historyClearCmd clears the scan history.
var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all stored scan runs",
	Long: `Delete all stored scan runs from the configured backend.

WARNING: This action cannot be undone. Consider exporting data first.

Examples:
  # Export before clearing
  oddhash history export --output-file backup.parquet
  oddhash history clear`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := scanlog.Manager.GetHistoryStore().Clear(); err != nil {
			contract.LogFatal("Failed to clear scan history", err)
		}
		fmt.Println("Scan history cleared successfully.")
	},
}

// historyStatusCmd shows history status.
var historyStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display scan history statistics and connection details",
	Long: `Show detailed information about scan run tracking.

Displays:
- Backend type and connection status
- Total number of scan runs stored
- Last scan run timestamp

Examples:
  # Check scan history status
  oddhash history status`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := scanlog.Manager.GetHistoryStore().GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get history status", err)
		}
		scanlog.PrintHistoryStatus(status)
	},
}

// historyListCmd shows recent scan runs.
var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show recent scan runs",
	Long: `List the most recent scan runs, newest first.

Respects --limit for the number of runs and --output for the format
(text, csv or json).

Examples:
  # Show the last 25 runs
  oddhash history list

  # Show the last 5 runs as JSON
  oddhash history list --limit 5 --output json`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		runs, err := scanlog.Manager.GetHistoryStore().ListRuns(cfg.ResultLimit)
		if err != nil {
			contract.LogFatal("Failed to list scan runs", err)
		}
		if err := outwriter.NewOutWriter().WriteHistory(runs, cfg); err != nil {
			contract.LogFatal("Failed to write scan runs", err)
		}
	},
}

// historyExportCmd exports scan runs to a Parquet file.
var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export scan runs to Parquet for BI tools and analytics",
	Long: `Export all stored scan runs to Parquet format for use with analytics tools.

Parquet format enables:
- Fast querying with DuckDB, Apache Spark, pandas
- Efficient storage with columnar compression
- Direct import into BI tools (Tableau, Metabase, etc.)

Requires: --output-file parameter

Examples:
  # Export all runs
  oddhash history export --output-file oddhash-runs.parquet

  # Use with DuckDB for analysis
  duckdb -c "SELECT * FROM read_parquet('oddhash-runs.parquet') LIMIT 10"`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := scanlog.ExecuteHistoryExport(cfg.OutputFile); err != nil {
			contract.LogFatal("Failed to export scan history", err)
		}
	},
}

// historyMigrateCmd runs database migrations for the history store.
var historyMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the scan history store.

By default, migrates to the latest version. Use --target-version for specific versions.

Examples:
  # Migrate to latest version (default)
  oddhash history migrate

  # Migrate to specific version
  oddhash history migrate --target-version 1

  # Rollback to initial state
  oddhash history migrate --target-version 0`,
	PreRunE: historyMigrateSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := scanlog.MigrateHistory(cfg.HistoryBackend, cfg.HistoryDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
