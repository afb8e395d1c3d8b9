// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"
	"time"

	"github.com/oddhash/oddhash/schema"
)

// GitClient defines the necessary operations against the version-control
// store. The core classification logic never talks to Git directly; it
// consumes the pre-formatted text this interface returns, which keeps the
// core testable without a real git executable.
type GitClient interface {
	// Run executes a git command and returns its output.
	// Its use should be minimized in favor of the explicit methods below.
	Run(ctx context.Context, repoPath string, args ...string) ([]byte, error)

	// GetCommitLog returns the raw commit log as one line per commit:
	// "<hash> <rfc3339 timestamp> <author display name>". An empty blob
	// means no commits, not an error.
	GetCommitLog(ctx context.Context, repoPath string, startTime, endTime time.Time) ([]byte, error)

	// GetRepoHash returns the current HEAD commit hash of the repository.
	GetRepoHash(ctx context.Context, repoPath string) (string, error)

	// GetRepoRoot returns the absolute path to the root of the Git repository
	// containing the given context path.
	GetRepoRoot(ctx context.Context, contextPath string) (string, error)
}

// StoreManager defines the interface for accessing persistence stores.
// This allows the storage layer to be mocked for testing.
type StoreManager interface {
	GetLogCacheStore() CacheStore
	GetHistoryStore() HistoryStore
}

// CacheStore defines the interface for raw log cache storage.
type CacheStore interface {
	Get(key string) ([]byte, int, int64, error)
	Set(key string, value []byte, version int, timestamp int64) error
	GetStatus() (schema.CacheStatus, error)
	Clear() error
	Close() error
}

// HistoryStore defines the interface for tracking scan runs.
type HistoryStore interface {
	// BeginRun creates a new scan run and returns its unique ID
	BeginRun(startTime time.Time, repoPath, headHash string, configParams map[string]any) (int64, error)

	// EndRun updates the scan run with completion data
	EndRun(runID int64, endTime time.Time, summary schema.CountSummary) error

	// ListRuns returns the most recent scan runs, newest first
	ListRuns(limit int) ([]schema.ScanRunRecord, error)

	// GetStatus returns status information about the history store
	GetStatus() (schema.HistoryStatus, error)

	// Clear removes all recorded runs
	Clear() error

	// Close closes the underlying connection
	Close() error
}
