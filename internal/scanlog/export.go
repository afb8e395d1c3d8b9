package scanlog

import (
	"errors"
	"fmt"

	"github.com/oddhash/oddhash/internal/parquet"
)

// maxExportRuns caps how many runs a single export pulls from the store.
const maxExportRuns = 100000

// ExecuteHistoryExport exports recorded scan runs to a Parquet file.
func ExecuteHistoryExport(outputFile string) error {
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	store := Manager.GetHistoryStore()
	if store == nil {
		return errors.New("history store is not configured")
	}

	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get history status: %w", err)
	}
	if status.TotalRuns == 0 {
		return errors.New("no scan history found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total scan runs: %d\n", status.TotalRuns)

	runs, err := store.ListRuns(maxExportRuns)
	if err != nil {
		return fmt.Errorf("failed to retrieve scan runs: %w", err)
	}

	parquetRuns := parquet.ConvertScanRunRecords(runs)
	if err := parquet.WriteScanRunsParquet(parquetRuns, outputFile); err != nil {
		return fmt.Errorf("failed to write scan runs: %w", err)
	}
	fmt.Printf("Exported %d scan runs to: %s\n", len(parquetRuns), outputFile)

	return nil
}
