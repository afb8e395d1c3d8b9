package contract

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/oddhash/oddhash/schema"
)

// Color variables for console output.
var (
	RareColor     = color.New(color.FgRed, color.Bold)    // rare is the standout signal.
	UncommonColor = color.New(color.FgYellow, color.Bold) // uncommon is a strong but lesser signal.
	CommonColor   = color.New(color.FgCyan)               // common is informational only.
)

// GetPlainTierLabel returns the plain text label for a rarity tier.
// This is the core mapping used for CSV, JSON, and table printing.
func GetPlainTierLabel(tier schema.RarityTier) string {
	return tier.Label()
}

// GetColorTierLabel returns a colored tier label for console output (table).
// It uses GetPlainTierLabel to determine the string, and then applies the
// appropriate color.
func GetColorTierLabel(tier schema.RarityTier) string {
	text := GetPlainTierLabel(tier)

	switch tier {
	case schema.RareTier:
		return RareColor.Sprint(text)
	case schema.UncommonTier:
		return UncommonColor.Sprint(text)
	default: // common
		return CommonColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It returns os.Stdout for an empty path.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// TruncateHash shortens a hash for narrow table columns, keeping a
// recognizable prefix.
func TruncateHash(hash string, maxWidth int) string {
	if maxWidth <= 0 || len(hash) <= maxWidth {
		return hash
	}
	if maxWidth <= 3 {
		return hash[:maxWidth]
	}
	return hash[:maxWidth-3] + "..."
}

// LogScanHeader prints a concise, 2-line header for a scan.
func LogScanHeader(cfg *Config, view string) {
	repoName := filepath.Base(cfg.RepoPath)
	if repoName == "" || repoName == "." {
		repoName = "current"
	}

	startStr := "beginning"
	if !cfg.StartTime.IsZero() {
		startStr = cfg.StartTime.Format(DateTimeFormat)
	}
	endStr := "now"
	if !cfg.EndTime.IsZero() {
		endStr = cfg.EndTime.Format(DateTimeFormat)
	}

	if cfg.UseEmojis {
		fmt.Printf("🔎 Repo: %s (View: %s)\n", repoName, view)
		fmt.Printf("📅 Range: %s → %s\n", startStr, endStr)
	} else {
		fmt.Printf("Repo: %s (View: %s)\n", repoName, view)
		fmt.Printf("Range: %s -> %s\n", startStr, endStr)
	}
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warning %s: %v\n", msg, err)
}
