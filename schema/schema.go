// Package schema has configs, models and global variables for all parts of oddhash.
package schema

import "time"

// CommitRecord represents a single classified commit from the Git log.
// It is built once from one log line and is immutable thereafter.
type CommitRecord struct {
	Hash      string               // Commit identifier, treated as an opaque token
	Author    string               // Author display name, may contain spaces
	Timestamp time.Time            // Author date with timezone offset
	Rarity    RarityClassification // Computed from Hash alone, never set by callers
}

// RarityClassification describes how unusual a commit hash's
// character pattern is under the fixed rule set.
type RarityClassification struct {
	Tier        RarityTier // common, uncommon, or rare
	Explanation string     // Human-readable reason; empty for common
	Frequency   float64    // Illustrative probability weight, not a measured statistic
}

// CountSummary holds per-tier counts for a scanned collection.
// Total always equals Common + Uncommon + Rare.
type CountSummary struct {
	Total    int `json:"total"`
	Common   int `json:"common"`
	Uncommon int `json:"uncommon"`
	Rare     int `json:"rare"`
}

// ScanRunRecord represents a single persisted scan run in the history store.
type ScanRunRecord struct {
	RunID         int64
	StartTime     time.Time
	EndTime       *time.Time
	RunDurationMs *int32
	RepoPath      string
	HeadHash      string
	TotalCommits  int32
	CommonCount   int32
	UncommonCount int32
	RareCount     int32
	ConfigParams  *string
}

// CacheStatus holds status information about the log cache store.
type CacheStatus struct {
	Backend         string
	Connected       bool
	TotalEntries    int
	LastEntryTime   time.Time
	OldestEntryTime time.Time
	TableSizeBytes  int64
}

// HistoryStatus holds status information about the scan history store.
type HistoryStatus struct {
	Backend     string
	Connected   bool
	TotalRuns   int
	LastRunTime time.Time
}

// EnrichedCommit is a CommitRecord flattened for JSON output.
type EnrichedCommit struct {
	Hash        string  `json:"hash"`
	Author      string  `json:"author"`
	Timestamp   string  `json:"timestamp"`
	Tier        string  `json:"tier"`
	Explanation string  `json:"explanation,omitempty"`
	Frequency   float64 `json:"frequency"`
}

// EnrichCommits converts commit records into their JSON-friendly form.
func EnrichCommits(records []CommitRecord) []EnrichedCommit {
	enriched := make([]EnrichedCommit, len(records))
	for i, r := range records {
		enriched[i] = EnrichedCommit{
			Hash:        r.Hash,
			Author:      r.Author,
			Timestamp:   r.Timestamp.Format(time.RFC3339),
			Tier:        r.Rarity.Tier.Label(),
			Explanation: r.Rarity.Explanation,
			Frequency:   r.Rarity.Frequency,
		}
	}
	return enriched
}
