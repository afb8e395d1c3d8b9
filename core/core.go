// Package core has core logic for scanning, classification and aggregation.
package core

import (
	"context"
	"time"

	"github.com/oddhash/oddhash/core/rarity"
	"github.com/oddhash/oddhash/internal/contract"
	"github.com/oddhash/oddhash/internal/outwriter"
	"github.com/oddhash/oddhash/internal/scanlog"
	"github.com/oddhash/oddhash/schema"
)

// ExecuteScan runs the commit scan and prints classified commits to stdout.
// It serves as the main entry point for the 'scan' command.
func ExecuteScan(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()
	view, _, err := GetScanResults(ctx, cfg)
	if err != nil {
		return err
	}
	duration := time.Since(start)
	return outwriter.NewOutWriter().WriteCommits(view, cfg, duration)
}

// ExecuteSummary runs the commit scan and prints per-tier counts to stdout.
// It serves as the main entry point for the 'summary' command.
func ExecuteSummary(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()
	_, summary, err := GetScanResults(ctx, cfg)
	if err != nil {
		return err
	}
	duration := time.Since(start)
	return outwriter.NewOutWriter().WriteSummary(summary, cfg, duration)
}

// GetScanResults runs the scan and returns the selected view plus the full
// tier counts without printing. The MCP tools build on this.
func GetScanResults(ctx context.Context, cfg *contract.Config) ([]schema.CommitRecord, schema.CountSummary, error) {
	client := contract.NewLocalGitClient()
	output, err := runScanCore(ctx, cfg, client, scanlog.Manager)
	if err != nil {
		return nil, schema.CountSummary{}, err
	}
	view := applyLimit(selectView(output.Commits, cfg), cfg.ResultLimit)
	return view, output.Summary, nil
}

// scanOutput bundles the classified commits with their tier counts.
type scanOutput struct {
	Commits []schema.CommitRecord
	Summary schema.CountSummary
}

// runScanCore fetches the commit log, classifies every commit and records
// the run in the history store. Classification order follows log order.
func runScanCore(ctx context.Context, cfg *contract.Config, client contract.GitClient, mgr contract.StoreManager) (*scanOutput, error) {
	startTime := time.Now()

	// Keep stdout parseable for csv/json/parquet consumers.
	if !shouldSuppressHeader(ctx) && cfg.Output == schema.TextOut {
		contract.LogScanHeader(cfg, viewName(cfg))
	}

	headHash, err := client.GetRepoHash(ctx, cfg.RepoPath)
	if err != nil {
		// A repo without commits has no HEAD; scan proceeds uncached.
		headHash = ""
	}

	runID := beginRunRecord(mgr, startTime, cfg, headHash)

	rawLog, err := cachedCommitLog(ctx, cfg, client, mgr, headHash)
	if err != nil {
		return nil, err
	}

	commits := rarity.ParseLog(rawLog, cfg.Workers)
	summary := rarity.Summarize(commits)

	endRunRecord(mgr, runID, summary)

	return &scanOutput{Commits: commits, Summary: summary}, nil
}

// viewName names the active tier view for the scan header.
func viewName(cfg *contract.Config) string {
	switch {
	case cfg.All:
		return "all"
	case cfg.Tier != "":
		return string(cfg.Tier)
	default:
		return "uncommon+rare"
	}
}

// selectView applies the configured tier view while preserving log order.
func selectView(commits []schema.CommitRecord, cfg *contract.Config) []schema.CommitRecord {
	switch {
	case cfg.All:
		return commits
	case cfg.Tier != "":
		return rarity.FilterByTier(commits, cfg.Tier)
	default:
		return rarity.FilterNotCommon(commits)
	}
}

// applyLimit truncates the view to the first limit entries. Zero means no limit.
func applyLimit(commits []schema.CommitRecord, limit int) []schema.CommitRecord {
	if limit <= 0 || len(commits) <= limit {
		return commits
	}
	return commits[:limit]
}

// beginRunRecord starts a history entry for this scan. History failures
// never abort a scan.
func beginRunRecord(mgr contract.StoreManager, startTime time.Time, cfg *contract.Config, headHash string) int64 {
	history := mgr.GetHistoryStore()
	if history == nil {
		return 0
	}

	configParams := map[string]any{
		"limit":   cfg.ResultLimit,
		"workers": cfg.Workers,
		"output":  string(cfg.Output),
		"all":     cfg.All,
	}
	if cfg.Tier != "" {
		configParams["tier"] = string(cfg.Tier)
	}

	runID, err := history.BeginRun(startTime, cfg.RepoPath, headHash, configParams)
	if err != nil {
		contract.LogWarn("recording scan run", err)
		return 0
	}
	return runID
}

// endRunRecord finalizes the history entry started by beginRunRecord.
func endRunRecord(mgr contract.StoreManager, runID int64, summary schema.CountSummary) {
	if runID == 0 {
		return
	}
	history := mgr.GetHistoryStore()
	if history == nil {
		return
	}
	if err := history.EndRun(runID, time.Now(), summary); err != nil {
		contract.LogWarn("finalizing scan run", err)
	}
}
