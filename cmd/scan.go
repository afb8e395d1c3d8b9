package cmd

import (
	"github.com/oddhash/oddhash/core"
	"github.com/oddhash/oddhash/internal/contract"
	"github.com/spf13/cobra"
)

// scanCmd classifies every commit hash in the repository.
var scanCmd = &cobra.Command{
	Use:   "scan [repo-path]",
	Short: "Show commits whose hashes carry unusual patterns.",
	Long: `Walk Git history and classify every commit hash by rarity.

Each hash is checked against a fixed set of digit and letter patterns,
ranked from most to least distinctive. By default only uncommon and rare
commits are shown; use --all to include common ones or --tier to focus
on a single tier.

Examples:
  # Show unusual commits in the current repository
  oddhash scan

  # Show every commit with its tier
  oddhash scan --all

  # Only rare commits, as JSON
  oddhash scan --tier rare --output json

  # Scan a specific repository over a time window
  oddhash scan ~/src/linux --start "6 months ago" --end "1 month ago"

  # Export findings to CSV for tracking
  oddhash scan --output csv --output-file oddities.csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteScan(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run scan", err)
		}
	},
}
