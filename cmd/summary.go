package cmd

import (
	"github.com/oddhash/oddhash/core"
	"github.com/oddhash/oddhash/internal/contract"
	"github.com/spf13/cobra"
)

// summaryCmd prints per-tier commit counts.
var summaryCmd = &cobra.Command{
	Use:   "summary [repo-path]",
	Short: "Show commit counts per rarity tier.",
	Long: `Walk Git history and report how many commits fall into each rarity tier.

Useful for a quick sense of how unusual a repository's hashes are before
drilling into individual commits with 'oddhash scan'.

Examples:
  # Summarize the current repository
  oddhash summary

  # Summarize a time window as JSON
  oddhash summary --start "1 year ago" --output json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteSummary(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run summary", err)
		}
	},
}
