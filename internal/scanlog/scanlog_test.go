package scanlog

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/oddhash/oddhash/schema"
	"github.com/stretchr/testify/assert"
)

func TestStoreLifecycle(t *testing.T) {
	t.Run("single setup", func(t *testing.T) {
		dir := t.TempDir()
		initOnce = sync.Once{}  // Reset for test
		closeOnce = sync.Once{} // Reset for test

		err := InitStores(
			schema.SQLiteBackend, filepath.Join(dir, "logcache.db"),
			schema.SQLiteBackend, filepath.Join(dir, "history.db"),
		)
		assert.NoError(t, err, "Failed to initialize persistence")

		assert.NotNil(t, Manager, "Manager should not be nil")
		assert.NotNil(t, Manager.GetLogCacheStore(), "Log cache store should not be nil")
		assert.NotNil(t, Manager.GetHistoryStore(), "History store should not be nil")

		CloseStores()
	})

	t.Run("idempotent setup", func(t *testing.T) {
		dir := t.TempDir()
		initOnce = sync.Once{}  // Reset for test
		closeOnce = sync.Once{} // Reset for test

		// Multiple initializations should be safe (sync.Once)
		err1 := InitStores(schema.SQLiteBackend, filepath.Join(dir, "a.db"), schema.NoneBackend, "")
		err2 := InitStores(schema.SQLiteBackend, filepath.Join(dir, "a.db"), schema.NoneBackend, "")

		assert.NoError(t, err1, "First init should not fail")
		assert.NoError(t, err2, "Second init should not fail")

		// Multiple closes should be safe (sync.Once)
		CloseStores()
		CloseStores()
	})

	t.Run("none backend", func(t *testing.T) {
		initOnce = sync.Once{}  // Reset for test
		closeOnce = sync.Once{} // Reset for test

		err := InitStores(schema.NoneBackend, "", schema.NoneBackend, "")
		assert.NoError(t, err, "Failed to initialize persistence with none backend")

		assert.NotNil(t, Manager.GetLogCacheStore(), "Log cache store should not be nil")
		assert.NotNil(t, Manager.GetHistoryStore(), "History store should not be nil")

		CloseStores()
	})

	t.Run("disabled stores", func(t *testing.T) {
		initOnce = sync.Once{}  // Reset for test
		closeOnce = sync.Once{} // Reset for test

		// Empty backends leave both stores nil
		err := InitStores("", "", "", "")
		assert.NoError(t, err)
		assert.Nil(t, Manager.GetLogCacheStore())
		assert.Nil(t, Manager.GetHistoryStore())

		CloseStores()
	})
}
