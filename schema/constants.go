package schema

// Custom string types for type safety.
type (
	// RarityTier represents how unusual a commit hash is.
	RarityTier string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for persistence.
	DatabaseBackend string
)

// All rarity tiers supported, ordered from least to most rare.
const (
	CommonTier   RarityTier = "common" // default
	UncommonTier RarityTier = "uncommon"
	RareTier     RarityTier = "rare"
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All database backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// AllRarityTiers lists the tiers in rarity order.
var AllRarityTiers = []RarityTier{CommonTier, UncommonTier, RareTier}

// ValidRarityTiers lists all valid rarity tiers.
var ValidRarityTiers = map[RarityTier]struct{}{
	CommonTier:   {},
	UncommonTier: {},
	RareTier:     {},
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidDatabaseBackends lists all valid database backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// tierLabels maps each tier to its canonical display text.
var tierLabels = map[RarityTier]string{
	CommonTier:   "Common",
	UncommonTier: "Uncommon",
	RareTier:     "Rare",
}

// tierFrequencies holds the illustrative probability weight for each tier.
// These are informational, not measured statistics.
var tierFrequencies = map[RarityTier]float64{
	CommonTier:   0.99,
	UncommonTier: 0.01,
	RareTier:     0.001,
}

// Label returns the canonical display text for the tier.
func (t RarityTier) Label() string {
	if label, ok := tierLabels[t]; ok {
		return label
	}
	return string(t)
}

// Frequency returns the illustrative probability weight for the tier.
func (t RarityTier) Frequency() float64 {
	return tierFrequencies[t]
}
