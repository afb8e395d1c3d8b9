// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/oddhash/oddhash/internal/contract"
)

// NewMCPServer initializes and configures the oddhash MCP server without
// starting it. This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config) *server.MCPServer {
	s := server.NewMCPServer(
		"Oddhash Rarity Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
	}

	// --- 1. Tool: scan_commits ---
	s.AddTool(mcp.NewTool("scan_commits",
		mcp.WithDescription("Scan a Git repository and classify every commit hash by rarity tier."),
		mcp.WithString("repo_path", mcp.Description("Path to the Git repository (defaults to current directory if not specified).")),
		mcp.WithString("tier", mcp.Description("Only return commits in this tier (common, uncommon, rare)."), mcp.Enum("common", "uncommon", "rare")),
		mcp.WithBoolean("all", mcp.Description("Return every commit instead of only uncommon and rare ones.")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of results returned.")),
	), h.handleScanCommits)

	// --- 2. Tool: rarity_summary ---
	s.AddTool(mcp.NewTool("rarity_summary",
		mcp.WithDescription("Scan a Git repository and return per-tier commit counts."),
		mcp.WithString("repo_path", mcp.Description("Path to the Git repository.")),
	), h.handleRaritySummary)

	// --- 3. Tool: classify_hash ---
	s.AddTool(mcp.NewTool("classify_hash",
		mcp.WithDescription("Classify a single commit hash by rarity tier without touching any repository."),
		mcp.WithString("hash", mcp.Description("The commit hash to classify."), mcp.Required()),
	), h.handleClassifyHash)

	return s
}

// StartMCPServer starts the oddhash MCP server over stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config) error {
	s := NewMCPServer(baseCfg)
	return server.ServeStdio(s)
}
