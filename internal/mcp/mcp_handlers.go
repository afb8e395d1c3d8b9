package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/oddhash/oddhash/core"
	"github.com/oddhash/oddhash/core/rarity"
	"github.com/oddhash/oddhash/internal/contract"
	"github.com/oddhash/oddhash/schema"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
}

func (h *toolHandler) handleScanCommits(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if p := request.GetString("repo_path", ""); p != "" {
		cfg.RepoPath = p
	}
	if t := request.GetString("tier", ""); t != "" {
		tier := schema.RarityTier(t)
		if _, ok := schema.ValidRarityTiers[tier]; !ok {
			return mcp.NewToolResultError(fmt.Sprintf("invalid tier: %s", t)), nil
		}
		cfg.Tier = tier
		cfg.All = false
	}
	if request.GetBool("all", false) {
		cfg.All = true
		cfg.Tier = ""
	}
	if l := request.GetInt("limit", 0); l > 0 {
		cfg.ResultLimit = l
	}

	commits, _, err := core.GetScanResults(core.WithSuppressHeader(ctx), cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("scan failed: %v", err)), nil
	}

	enriched := schema.EnrichCommits(commits)
	jsonData, _ := json.MarshalIndent(enriched, "", "  ")

	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleRaritySummary(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if p := request.GetString("repo_path", ""); p != "" {
		cfg.RepoPath = p
	}

	_, summary, err := core.GetScanResults(core.WithSuppressHeader(ctx), cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("scan failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(summary, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleClassifyHash(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	hash := request.GetString("hash", "")
	if hash == "" {
		return mcp.NewToolResultError("hash is required"), nil
	}

	classification := rarity.Classify(hash)
	result := map[string]any{
		"hash":        hash,
		"tier":        string(classification.Tier),
		"explanation": classification.Explanation,
		"frequency":   classification.Frequency,
	}
	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
