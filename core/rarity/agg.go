package rarity

import "github.com/oddhash/oddhash/schema"

// FilterByTier returns the subsequence of records whose tier equals the
// requested tier, preserving original relative order. An empty result is
// a legitimate "nothing found" state, not an error.
func FilterByTier(records []schema.CommitRecord, tier schema.RarityTier) []schema.CommitRecord {
	filtered := make([]schema.CommitRecord, 0, len(records))
	for _, r := range records {
		if r.Rarity.Tier == tier {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// FilterNotCommon returns the subsequence of records whose tier is
// uncommon or rare, preserving order. This is the default view when no
// other view is requested.
func FilterNotCommon(records []schema.CommitRecord) []schema.CommitRecord {
	filtered := make([]schema.CommitRecord, 0, len(records))
	for _, r := range records {
		if r.Rarity.Tier != schema.CommonTier {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// Summarize produces per-tier counts for a collection in a single pass.
// The counts are consistent with FilterByTier: summarizing and filtering
// the same records always agree.
func Summarize(records []schema.CommitRecord) schema.CountSummary {
	summary := schema.CountSummary{Total: len(records)}
	for _, r := range records {
		switch r.Rarity.Tier {
		case schema.UncommonTier:
			summary.Uncommon++
		case schema.RareTier:
			summary.Rare++
		default:
			summary.Common++
		}
	}
	return summary
}
