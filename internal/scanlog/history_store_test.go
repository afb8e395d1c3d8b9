package scanlog

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/oddhash/oddhash/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryStore_NoneBackend(t *testing.T) {
	store, err := NewHistoryStore(schema.NoneBackend, "")
	require.NoError(t, err)
	require.NotNil(t, store)

	// BeginRun should return 0 for NoneBackend
	runID, err := store.BeginRun(time.Now(), "/repo", "abc123", map[string]any{"tier": "rare"})
	assert.NoError(t, err)
	assert.Equal(t, int64(0), runID)

	// Other operations should not error
	err = store.EndRun(1, time.Now(), schema.CountSummary{})
	assert.NoError(t, err)

	runs, err := store.ListRuns(10)
	assert.NoError(t, err)
	assert.Empty(t, runs)

	status, err := store.GetStatus()
	assert.NoError(t, err)
	assert.False(t, status.Connected)

	err = store.Close()
	assert.NoError(t, err)
}

func TestHistoryStore_SQLite(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history.db")
	store, err := NewHistoryStore(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	require.NotNil(t, store)
	defer func() { _ = store.Close() }()

	startTime := time.Now()
	configParams := map[string]any{
		"tier":  "rare",
		"limit": 25,
	}
	runID, err := store.BeginRun(startTime, "/test/repo", "deadbeef", configParams)
	require.NoError(t, err)
	assert.Greater(t, runID, int64(0))

	summary := schema.CountSummary{Total: 42, Common: 39, Uncommon: 2, Rare: 1}
	err = store.EndRun(runID, startTime.Add(250*time.Millisecond), summary)
	require.NoError(t, err)

	runs, err := store.ListRuns(10)
	require.NoError(t, err)
	require.Len(t, runs, 1)

	run := runs[0]
	assert.Equal(t, runID, run.RunID)
	assert.Equal(t, "/test/repo", run.RepoPath)
	assert.Equal(t, "deadbeef", run.HeadHash)
	assert.Equal(t, int32(42), run.TotalCommits)
	assert.Equal(t, int32(39), run.CommonCount)
	assert.Equal(t, int32(2), run.UncommonCount)
	assert.Equal(t, int32(1), run.RareCount)
	require.NotNil(t, run.EndTime)
	require.NotNil(t, run.RunDurationMs)
	assert.GreaterOrEqual(t, *run.RunDurationMs, int32(0))
	require.NotNil(t, run.ConfigParams)
	assert.Contains(t, *run.ConfigParams, `"tier":"rare"`)
}

func TestHistoryStore_RunIDsIncrease(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history.db")
	store, err := NewHistoryStore(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	first, err := store.BeginRun(time.Now(), "/repo", "aaa", nil)
	require.NoError(t, err)
	second, err := store.BeginRun(time.Now(), "/repo", "bbb", nil)
	require.NoError(t, err)
	assert.Equal(t, first+1, second)
}

func TestHistoryStore_ListRunsNewestFirst(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history.db")
	store, err := NewHistoryStore(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	base := time.Now()
	for i := 0; i < 5; i++ {
		_, err := store.BeginRun(base.Add(time.Duration(i)*time.Minute), "/repo", "head", nil)
		require.NoError(t, err)
	}

	runs, err := store.ListRuns(3)
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.Equal(t, int64(5), runs[0].RunID)
	assert.Equal(t, int64(4), runs[1].RunID)
	assert.Equal(t, int64(3), runs[2].RunID)
}

func TestHistoryStore_StatusAndClear(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history.db")
	store, err := NewHistoryStore(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.True(t, status.Connected)
	assert.Equal(t, 0, status.TotalRuns)

	_, err = store.BeginRun(time.Now(), "/repo", "head", nil)
	require.NoError(t, err)

	status, err = store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, 1, status.TotalRuns)
	assert.False(t, status.LastRunTime.IsZero())

	require.NoError(t, store.Clear())

	status, err = store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, 0, status.TotalRuns)
}

func TestHistoryStore_UnsupportedBackend(t *testing.T) {
	_, err := NewHistoryStore(schema.DatabaseBackend("oracle"), "")
	assert.Error(t, err)
}
