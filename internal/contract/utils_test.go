package contract

import (
	"testing"

	"github.com/oddhash/oddhash/schema"
	"github.com/stretchr/testify/assert"
)

func TestGetPlainTierLabel(t *testing.T) {
	assert.Equal(t, "Common", GetPlainTierLabel(schema.CommonTier))
	assert.Equal(t, "Uncommon", GetPlainTierLabel(schema.UncommonTier))
	assert.Equal(t, "Rare", GetPlainTierLabel(schema.RareTier))
}

func TestGetColorTierLabel(t *testing.T) {
	// Colored output still contains the plain label text.
	for _, tier := range schema.AllRarityTiers {
		assert.Contains(t, GetColorTierLabel(tier), tier.Label())
	}
}

func TestTruncateHash(t *testing.T) {
	testCases := []struct {
		name     string
		hash     string
		maxWidth int
		expected string
	}{
		{"no truncation needed", "abc123", 10, "abc123"},
		{"zero width disables", "abc123def", 0, "abc123def"},
		{"exact fit", "abc123", 6, "abc123"},
		{"truncated with ellipsis", "0123456789abcdef", 10, "0123456..."},
		{"tiny width", "abcdef", 2, "ab"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, TruncateHash(tc.hash, tc.maxWidth))
		})
	}
}
