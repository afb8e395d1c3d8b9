// Package scanlog persists raw git log caches and scan run history.
package scanlog

import (
	"fmt"
	"sync"

	"github.com/oddhash/oddhash/internal/contract"
	"github.com/oddhash/oddhash/schema"
)

// logCacheTable is the name of the table for raw log caching.
const logCacheTable = "oddhash_log_cache"

// Global manager instance for main logic.
var (
	Manager   = &StoreManagerImpl{}
	initOnce  sync.Once
	closeOnce sync.Once
)

// StoreManagerImpl holds the process-wide store handles.
type StoreManagerImpl struct {
	sync.Mutex
	logCache contract.CacheStore
	history  contract.HistoryStore
}

var _ contract.StoreManager = &StoreManagerImpl{} // Compile-time check

// GetLogCacheStore returns the raw log cache store, which may be nil when
// caching is not configured.
func (m *StoreManagerImpl) GetLogCacheStore() contract.CacheStore {
	m.Lock()
	defer m.Unlock()
	return m.logCache
}

// GetHistoryStore returns the scan history store, which may be nil when
// history tracking is not configured.
func (m *StoreManagerImpl) GetHistoryStore() contract.HistoryStore {
	m.Lock()
	defer m.Unlock()
	return m.history
}

// InitStores initializes the global store manager with separate log cache
// and history stores. Either backend can be empty to disable that store.
func InitStores(cacheBackend schema.DatabaseBackend, cacheConnStr string, historyBackend schema.DatabaseBackend, historyConnStr string) error {
	var initErr error

	initOnce.Do(func() {
		var logCacheStore contract.CacheStore
		var historyStore contract.HistoryStore
		var err error

		if cacheBackend != "" {
			logCacheStore, err = NewCacheStore(logCacheTable, cacheBackend, cacheConnStr)
			if err != nil {
				initErr = fmt.Errorf("failed to initialize log caching: %w", err)
				return
			}
		}

		if historyBackend != "" {
			historyStore, err = NewHistoryStore(historyBackend, historyConnStr)
			if err != nil {
				if logCacheStore != nil {
					_ = logCacheStore.Close()
				}
				initErr = fmt.Errorf("failed to initialize history store: %w", err)
				return
			}
		}

		Manager.Lock()
		defer Manager.Unlock()
		Manager.logCache = logCacheStore
		Manager.history = historyStore
	})

	return initErr
}

// CloseStores should be called on application shutdown.
func CloseStores() {
	closeOnce.Do(func() {
		Manager.Lock()
		defer Manager.Unlock()
		if Manager.logCache != nil {
			_ = Manager.logCache.Close()
			Manager.logCache = nil
		}
		if Manager.history != nil {
			_ = Manager.history.Close()
			Manager.history = nil
		}
	})
}

// GetCacheDBFilePath returns the path to the SQLite DB file for cache storage.
func GetCacheDBFilePath() string {
	return contract.GetCacheDBFilePath()
}

// GetHistoryDBFilePath returns the path to the SQLite DB file for history storage.
func GetHistoryDBFilePath() string {
	return contract.GetHistoryDBFilePath()
}
