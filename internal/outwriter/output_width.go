package outwriter

import (
	"os"

	"github.com/oddhash/oddhash/internal/contract"
	"golang.org/x/term"
)

// GetMaxTableHashWidth calculates the maximum width for commit hashes in
// table output based on terminal width and table configuration.
func GetMaxTableHashWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		// Get terminal width
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for fixed columns with table formatting:
	// Rank + Author + Date + Tier + Explanation + Frequency with borders/padding
	baseWidth := 95

	// Calculate available space for the hash
	available := termWidth - baseWidth
	if available < 8 {
		// Short prefixes are still recognizable
		return 8
	}
	if available > 40 {
		// Full SHA-1 hashes are 40 characters
		return 40
	}
	return available
}
