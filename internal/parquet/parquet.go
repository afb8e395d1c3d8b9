// Package parquet provides data structures and functions for exporting
// commit rarity data to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/oddhash/oddhash/schema"
	"github.com/parquet-go/parquet-go"
)

// Commit represents a single classified commit for columnar export.
type Commit struct {
	// Hash is the full commit hash
	Hash string `parquet:"hash,snappy"`

	// Author is the commit author display name
	Author string `parquet:"author,snappy"`

	// CommitTime is the author timestamp of the commit
	CommitTime time.Time `parquet:"commit_time,snappy"`

	// Tier is the rarity tier label (common, uncommon, rare)
	Tier string `parquet:"tier,snappy"`

	// Explanation is the human-readable reason for the tier (empty for common)
	Explanation string `parquet:"explanation,snappy"`

	// Frequency is the expected share of hashes in this tier
	Frequency float64 `parquet:"frequency,snappy"`
}

// ScanRun represents a single scan run with metadata.
// This struct maps to the oddhash_scan_runs database table.
type ScanRun struct {
	// RunID is the unique identifier for this scan run
	RunID int64 `parquet:"run_id,snappy"`

	// StartTime is when the scan began
	StartTime time.Time `parquet:"start_time,snappy"`

	// EndTime is when the scan completed (nullable)
	EndTime *time.Time `parquet:"end_time,optional,snappy"`

	// RunDurationMs is the duration of the scan in milliseconds (nullable)
	RunDurationMs *int32 `parquet:"run_duration_ms,optional,snappy"`

	// RepoPath is the repository that was scanned
	RepoPath string `parquet:"repo_path,snappy"`

	// HeadHash is the HEAD commit at scan time
	HeadHash string `parquet:"head_hash,snappy"`

	// TotalCommits is the number of commits classified in this run
	TotalCommits int32 `parquet:"total_commits,snappy"`

	// CommonCount is the number of common-tier commits
	CommonCount int32 `parquet:"common_count,snappy"`

	// UncommonCount is the number of uncommon-tier commits
	UncommonCount int32 `parquet:"uncommon_count,snappy"`

	// RareCount is the number of rare-tier commits
	RareCount int32 `parquet:"rare_count,snappy"`

	// ConfigParams contains the JSON-encoded configuration parameters (nullable)
	ConfigParams *string `parquet:"config_params,optional,snappy"`
}

// WriteCommitsParquet writes a slice of Commit structs to a Parquet file.
func WriteCommitsParquet(data []Commit, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is automatically derived from the Commit struct tags
	writer := parquet.NewGenericWriter[Commit](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteScanRunsParquet writes a slice of ScanRun structs to a Parquet file.
func WriteScanRunsParquet(data []ScanRun, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is automatically derived from the ScanRun struct tags
	writer := parquet.NewGenericWriter[ScanRun](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// ConvertCommitRecords converts schema.CommitRecord to Commit for Parquet export.
func ConvertCommitRecords(records []schema.CommitRecord) []Commit {
	result := make([]Commit, len(records))
	for i, record := range records {
		result[i] = Commit{
			Hash:        record.Hash,
			Author:      record.Author,
			CommitTime:  record.Timestamp,
			Tier:        string(record.Rarity.Tier),
			Explanation: record.Rarity.Explanation,
			Frequency:   record.Rarity.Frequency,
		}
	}
	return result
}

// ConvertScanRunRecords converts schema.ScanRunRecord to ScanRun for Parquet export.
func ConvertScanRunRecords(records []schema.ScanRunRecord) []ScanRun {
	result := make([]ScanRun, len(records))
	for i, record := range records {
		result[i] = ScanRun{
			RunID:         record.RunID,
			StartTime:     record.StartTime,
			EndTime:       record.EndTime,
			RunDurationMs: record.RunDurationMs,
			RepoPath:      record.RepoPath,
			HeadHash:      record.HeadHash,
			TotalCommits:  record.TotalCommits,
			CommonCount:   record.CommonCount,
			UncommonCount: record.UncommonCount,
			RareCount:     record.RareCount,
			ConfigParams:  record.ConfigParams,
		}
	}
	return result
}
