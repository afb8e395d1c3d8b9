package outwriter

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/oddhash/oddhash/internal/contract"
	"github.com/oddhash/oddhash/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteSummaryTable(t *testing.T) {
	cfg := &contract.Config{
		Precision:    3,
		Workers:      2,
		CacheBackend: schema.NoneBackend,
	}
	fmtFloat := createFloatFormatter(cfg.Precision)
	summary := schema.CountSummary{Total: 10, Common: 7, Uncommon: 2, Rare: 1}

	var buf bytes.Buffer
	err := writeSummaryTable(summary, cfg, fmtFloat, time.Second, &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Common")
	assert.Contains(t, out, "Uncommon")
	assert.Contains(t, out, "Rare")
	assert.Contains(t, out, "0.990")
	assert.Contains(t, out, "0.010")
	assert.Contains(t, out, "0.001")
	assert.Contains(t, out, "Total commits: 10")
}

func TestWriteSummaryTableEmpty(t *testing.T) {
	cfg := &contract.Config{Precision: 3}
	fmtFloat := createFloatFormatter(cfg.Precision)

	var buf bytes.Buffer
	err := writeSummaryTable(schema.CountSummary{}, cfg, fmtFloat, time.Second, &buf)
	require.NoError(t, err)
	assert.Equal(t, "No commits found.", strings.TrimSpace(buf.String()))
}

func TestWriteCSVRowsForSummary(t *testing.T) {
	fmtFloat := createFloatFormatter(2)
	summary := schema.CountSummary{Total: 5, Common: 4, Uncommon: 1, Rare: 0}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	err := writeCSVRowsForSummary(w, summary, fmtFloat)
	require.NoError(t, err)
	w.Flush()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3) // one row per tier

	assert.Contains(t, lines[0], "Common")
	assert.Contains(t, lines[0], "4")
	assert.Contains(t, lines[1], "Uncommon")
	assert.Contains(t, lines[1], "1")
	assert.Contains(t, lines[2], "Rare")
	assert.Contains(t, lines[2], "0")
}

func TestTierCount(t *testing.T) {
	summary := schema.CountSummary{Total: 6, Common: 3, Uncommon: 2, Rare: 1}
	assert.Equal(t, 3, tierCount(summary, schema.CommonTier))
	assert.Equal(t, 2, tierCount(summary, schema.UncommonTier))
	assert.Equal(t, 1, tierCount(summary, schema.RareTier))
}
