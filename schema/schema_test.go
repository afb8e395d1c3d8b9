package schema

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTierLabel(t *testing.T) {
	testCases := []struct {
		tier     RarityTier
		expected string
	}{
		{CommonTier, "Common"},
		{UncommonTier, "Uncommon"},
		{RareTier, "Rare"},
		{RarityTier("bogus"), "bogus"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, tc.tier.Label())
	}
}

func TestTierFrequency(t *testing.T) {
	assert.Equal(t, 0.99, CommonTier.Frequency())
	assert.Equal(t, 0.01, UncommonTier.Frequency())
	assert.Equal(t, 0.001, RareTier.Frequency())
}

func TestValidRarityTiers(t *testing.T) {
	for _, tier := range AllRarityTiers {
		_, ok := ValidRarityTiers[tier]
		assert.True(t, ok, "Tier %s should be valid", tier)
	}
	_, ok := ValidRarityTiers[RarityTier("legendary")]
	assert.False(t, ok)
}

func TestEnrichCommits(t *testing.T) {
	ts := time.Date(2024, 9, 28, 17, 45, 47, 0, time.UTC)
	records := []CommitRecord{
		{
			Hash:      "abc123",
			Author:    "John Doe",
			Timestamp: ts,
			Rarity:    RarityClassification{Tier: CommonTier, Frequency: 0.99},
		},
		{
			Hash:      "123456789ab",
			Author:    "Jane Smith",
			Timestamp: ts,
			Rarity: RarityClassification{
				Tier:        UncommonTier,
				Explanation: "Starts with nine digits",
				Frequency:   0.01,
			},
		},
	}

	enriched := EnrichCommits(records)
	assert.Len(t, enriched, 2)
	assert.Equal(t, "Common", enriched[0].Tier)
	assert.Empty(t, enriched[0].Explanation)
	assert.Equal(t, "Uncommon", enriched[1].Tier)
	assert.Equal(t, "Starts with nine digits", enriched[1].Explanation)
	assert.Equal(t, "2024-09-28T17:45:47Z", enriched[1].Timestamp)
}

func TestEnrichCommitsEmpty(t *testing.T) {
	enriched := EnrichCommits(nil)
	assert.Empty(t, enriched)
}
