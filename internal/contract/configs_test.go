package contract

import (
	"context"
	"testing"
	"time"

	"github.com/oddhash/oddhash/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validRawInput returns a raw input with sane defaults for validation tests.
func validRawInput() *ConfigRawInput {
	return &ConfigRawInput{
		Limit:        DefaultResultLimit,
		Workers:      4,
		Precision:    DefaultPrecision,
		Output:       string(schema.TextOut),
		CacheBackend: string(schema.SQLiteBackend),
		Emoji:        "yes",
		Color:        "yes",
	}
}

func TestValidateSimpleInputs(t *testing.T) {
	cfg := &Config{}
	input := validRawInput()

	require.NoError(t, validateSimpleInputs(cfg, input))
	assert.Equal(t, DefaultResultLimit, cfg.ResultLimit)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, schema.TextOut, cfg.Output)
	assert.True(t, cfg.UseEmojis)
	assert.True(t, cfg.UseColors)
}

func TestValidateSimpleInputsErrors(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*ConfigRawInput)
	}{
		{"negative limit", func(i *ConfigRawInput) { i.Limit = -1 }},
		{"excessive limit", func(i *ConfigRawInput) { i.Limit = MaxResultLimit + 1 }},
		{"zero workers", func(i *ConfigRawInput) { i.Workers = 0 }},
		{"bad precision", func(i *ConfigRawInput) { i.Precision = 11 }},
		{"bad output mode", func(i *ConfigRawInput) { i.Output = "yaml" }},
		{"negative width", func(i *ConfigRawInput) { i.Width = -5 }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &Config{}
			input := validRawInput()
			tc.mutate(input)
			assert.Error(t, validateSimpleInputs(cfg, input))
		})
	}
}

func TestProcessTierView(t *testing.T) {
	cfg := &Config{}
	input := validRawInput()
	input.Tier = "Rare"
	require.NoError(t, processTierView(cfg, input))
	assert.Equal(t, schema.RareTier, cfg.Tier)

	cfg = &Config{}
	input = validRawInput()
	input.All = true
	require.NoError(t, processTierView(cfg, input))
	assert.True(t, cfg.All)
	assert.Empty(t, cfg.Tier)
}

func TestProcessTierViewErrors(t *testing.T) {
	cfg := &Config{}
	input := validRawInput()
	input.Tier = "legendary"
	assert.Error(t, processTierView(cfg, input))

	input = validRawInput()
	input.Tier = "rare"
	input.All = true
	assert.Error(t, processTierView(cfg, input))
}

func TestProcessTimeRange(t *testing.T) {
	cfg := &Config{}
	input := validRawInput()
	require.NoError(t, processTimeRange(cfg, input))
	assert.True(t, cfg.StartTime.IsZero(), "Default is entire history")
	assert.True(t, cfg.EndTime.IsZero())

	input.Start = "2024-01-01T00:00:00Z"
	input.End = "2024-06-01T00:00:00Z"
	require.NoError(t, processTimeRange(cfg, input))
	assert.Equal(t, 2024, cfg.StartTime.Year())
	assert.Equal(t, time.June, cfg.EndTime.Month())
}

func TestProcessTimeRangeRelative(t *testing.T) {
	cfg := &Config{}
	input := validRawInput()
	input.Start = "2 weeks ago"
	require.NoError(t, processTimeRange(cfg, input))
	assert.False(t, cfg.StartTime.IsZero())
	assert.True(t, cfg.StartTime.Before(time.Now()))
}

func TestProcessTimeRangeErrors(t *testing.T) {
	cfg := &Config{}
	input := validRawInput()
	input.Start = "not-a-date"
	assert.Error(t, processTimeRange(cfg, input))

	input = validRawInput()
	input.Start = "2024-06-01T00:00:00Z"
	input.End = "2024-01-01T00:00:00Z"
	assert.Error(t, processTimeRange(cfg, input))
}

func TestValidateBackendConfigs(t *testing.T) {
	cfg := &Config{}
	input := validRawInput()
	require.NoError(t, validateBackendConfigs(cfg, input))
	assert.Equal(t, schema.SQLiteBackend, cfg.CacheBackend)

	input.CacheBackend = "mysql"
	input.CacheDBConnect = "root:secret@tcp(localhost:3306)/oddhash"
	require.NoError(t, validateBackendConfigs(cfg, input))

	input.CacheBackend = "mysql"
	input.CacheDBConnect = "bogus"
	assert.Error(t, validateBackendConfigs(cfg, input))

	input = validRawInput()
	input.CacheBackend = "oracle"
	assert.Error(t, validateBackendConfigs(cfg, input))
}

func TestValidateBackendConfigsSharedSQLiteFile(t *testing.T) {
	cfg := &Config{}
	input := validRawInput()
	input.HistoryBackend = "sqlite"
	input.CacheDBConnect = "/tmp/same.db"
	input.HistoryDBConnect = "/tmp/same.db"
	assert.Error(t, validateBackendConfigs(cfg, input))
}

func TestValidateDatabaseConnectionString(t *testing.T) {
	assert.NoError(t, ValidateDatabaseConnectionString(schema.SQLiteBackend, ""))
	assert.NoError(t, ValidateDatabaseConnectionString(schema.NoneBackend, ""))
	assert.Error(t, ValidateDatabaseConnectionString(schema.MySQLBackend, ""))
	assert.Error(t, ValidateDatabaseConnectionString(schema.PostgreSQLBackend, "host=localhost"))
	assert.NoError(t, ValidateDatabaseConnectionString(schema.PostgreSQLBackend, "host=localhost port=5432 dbname=oddhash"))
}

func TestResolveGitPath(t *testing.T) {
	mockClient := new(MockGitClient)
	ctx := context.Background()
	mockClient.On("GetRepoRoot", ctx, "/repo/sub").Return("/repo", nil).Once()

	cfg := &Config{}
	input := validRawInput()
	input.RepoPathStr = "/repo/sub"

	require.NoError(t, resolveGitPath(ctx, cfg, mockClient, input))
	assert.Equal(t, "/repo", cfg.RepoPath)
	mockClient.AssertExpectations(t)
}

func TestParseBoolString(t *testing.T) {
	for _, s := range []string{"yes", "TRUE", "1", " on "} {
		got, err := parseBoolString(s)
		require.NoError(t, err, s)
		assert.True(t, got, s)
	}
	for _, s := range []string{"no", "FALSE", "0", " off "} {
		got, err := parseBoolString(s)
		require.NoError(t, err, s)
		assert.False(t, got, s)
	}
	for _, s := range []string{"", "maybe", "2"} {
		_, err := parseBoolString(s)
		assert.Error(t, err, s)
	}
}

func TestParseTimeInput(t *testing.T) {
	got, err := parseTimeInput("2024-09-28T17:45:47Z", fixedNow)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.September, 28, 17, 45, 47, 0, time.UTC), got)

	got, err = parseTimeInput("6 months ago", fixedNow)
	require.NoError(t, err)
	assert.Equal(t, fixedNow.AddDate(0, -6, 0), got)

	// Bare durations without the "ago" suffix are not accepted.
	for _, s := range []string{"6 months", "1 month", "1 year"} {
		_, err := parseTimeInput(s, fixedNow)
		assert.Error(t, err, s)
	}
}

func TestValidateSimpleInputsRejectsBadBool(t *testing.T) {
	cfg := &Config{}
	input := validRawInput()
	input.Color = "maybe"

	err := validateSimpleInputs(cfg, input)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --color value")
}
