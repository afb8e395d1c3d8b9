// Package outwriter has output and writer logic.
package outwriter

import (
	"time"

	"github.com/oddhash/oddhash/internal/contract"
	"github.com/oddhash/oddhash/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteCommits prints classified commits using the configured output format.
func (ow *OutWriter) WriteCommits(commits []schema.CommitRecord, cfg *contract.Config, duration time.Duration) error {
	return WriteCommitResults(commits, cfg, duration)
}

// WriteSummary prints tier counts using the configured output format.
func (ow *OutWriter) WriteSummary(summary schema.CountSummary, cfg *contract.Config, duration time.Duration) error {
	return WriteSummaryResults(summary, cfg, duration)
}

// WriteHistory prints recorded scan runs using the configured output format.
func (ow *OutWriter) WriteHistory(runs []schema.ScanRunRecord, cfg *contract.Config) error {
	return WriteHistoryRuns(runs, cfg)
}
