package cache

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"bl-extraction/internal/database"
)

// CachedExtraction is an in-memory cached extraction with expiry
type CachedExtraction struct {
	Extraction *database.Extraction
	ExpiresAt  time.Time
}

// IsExpired checks if the cached extraction has expired
func (c *CachedExtraction) IsExpired() bool {
	return time.Now().After(c.ExpiresAt)
}

// Manager manages both in-memory and persistent caching of extraction
// results, keyed by document text hash. Repeated submissions of the same OCR
// text never rerun the pipeline while an entry is live.
type Manager struct {
	store    *database.ResultCacheStore
	memory   sync.Map // map[string]*CachedExtraction
	disabled bool
	ttl      time.Duration

	// Cleanup goroutine control
	ctx    context.Context
	cancel context.CancelFunc
}

// NewManager creates a new cache manager
func NewManager(store *database.ResultCacheStore, disabled bool, ttl time.Duration) *Manager {
	ctx, cancel := context.WithCancel(context.Background())

	manager := &Manager{
		store:    store,
		disabled: disabled,
		ttl:      ttl,
		ctx:      ctx,
		cancel:   cancel,
	}

	if !disabled {
		if err := manager.loadFromDatabase(); err != nil {
			log.Printf("WARN: Failed to load cache from database: %v", err)
		}

		go manager.cleanupLoop()
	}

	return manager
}

// Get retrieves a cached extraction for a text hash
func (m *Manager) Get(textHash string) (*database.Extraction, error) {
	if m.disabled {
		return nil, nil // Cache disabled, always miss
	}

	// Check in-memory cache first
	if value, ok := m.memory.Load(textHash); ok {
		cached := value.(*CachedExtraction)
		if !cached.IsExpired() {
			return cached.Extraction, nil
		}
		m.memory.Delete(textHash)
	}

	// Check database cache
	extraction, err := m.store.Get(textHash)
	if err != nil {
		return nil, fmt.Errorf("failed to get from database cache: %w", err)
	}

	if extraction != nil {
		// Store in memory for faster access next time
		m.memory.Store(textHash, &CachedExtraction{
			Extraction: extraction,
			ExpiresAt:  time.Now().Add(m.ttl),
		})
	}

	return extraction, nil
}

// Set stores an extraction in both memory and database
func (m *Manager) Set(textHash string, extraction *database.Extraction) error {
	if m.disabled {
		return nil // Cache disabled, do nothing
	}

	// Store in database first
	if err := m.store.Set(textHash, extraction, m.ttl); err != nil {
		return fmt.Errorf("failed to store in database cache: %w", err)
	}

	m.memory.Store(textHash, &CachedExtraction{
		Extraction: extraction,
		ExpiresAt:  time.Now().Add(m.ttl),
	})

	return nil
}

// Delete removes a cached extraction from both memory and database
func (m *Manager) Delete(textHash string) error {
	if m.disabled {
		return nil // Cache disabled, do nothing
	}

	m.memory.Delete(textHash)

	if err := m.store.Delete(textHash); err != nil {
		return fmt.Errorf("failed to delete from database cache: %w", err)
	}

	return nil
}

// IsEnabled returns true if caching is enabled
func (m *Manager) IsEnabled() bool {
	return !m.disabled
}

// GetTTL returns the cache TTL duration
func (m *Manager) GetTTL() time.Duration {
	return m.ttl
}

// loadFromDatabase loads all non-expired cache entries from database into memory
func (m *Manager) loadFromDatabase() error {
	entries, err := m.store.LoadAll()
	if err != nil {
		return err
	}

	loaded := 0
	for textHash, extraction := range entries {
		m.memory.Store(textHash, &CachedExtraction{
			Extraction: extraction,
			ExpiresAt:  time.Now().Add(m.ttl), // Reset TTL from current time
		})
		loaded++
	}

	if loaded > 0 {
		log.Printf("INFO: Loaded %d cache entries from database", loaded)
	}

	return nil
}

// cleanupLoop runs periodically to clean up expired entries
func (m *Manager) cleanupLoop() {
	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-m.ctx.Done():
			return
		case <-ticker.C:
			m.cleanup()
		}
	}
}

// cleanup removes expired entries from both memory and database
func (m *Manager) cleanup() {
	memoryCount := 0
	m.memory.Range(func(key, value interface{}) bool {
		cached := value.(*CachedExtraction)
		if cached.IsExpired() {
			m.memory.Delete(key)
			memoryCount++
		}
		return true
	})

	if err := m.store.DeleteExpired(); err != nil {
		log.Printf("WARN: Failed to clean up expired database cache entries: %v", err)
	}

	if memoryCount > 0 {
		log.Printf("INFO: Cleaned up %d expired memory cache entries", memoryCount)
	}
}

// GetStats returns cache statistics
func (m *Manager) GetStats() (CacheStats, error) {
	stats := CacheStats{
		Disabled: m.disabled,
		TTL:      m.ttl,
	}

	if m.disabled {
		return stats, nil
	}

	memoryTotal := 0
	memoryExpired := 0
	m.memory.Range(func(key, value interface{}) bool {
		memoryTotal++
		if value.(*CachedExtraction).IsExpired() {
			memoryExpired++
		}
		return true
	})

	stats.MemoryTotal = memoryTotal
	stats.MemoryExpired = memoryExpired

	dbTotal, dbExpired, err := m.store.GetStats()
	if err != nil {
		return stats, fmt.Errorf("failed to get database stats: %w", err)
	}

	stats.DatabaseTotal = dbTotal
	stats.DatabaseExpired = dbExpired

	return stats, nil
}

// Close shuts down the cache manager and cleanup goroutine
func (m *Manager) Close() {
	if m.cancel != nil {
		m.cancel()
	}
}

// CacheStats represents cache statistics
type CacheStats struct {
	Disabled        bool          `json:"disabled"`
	TTL             time.Duration `json:"ttl"`
	MemoryTotal     int           `json:"memory_total"`
	MemoryExpired   int           `json:"memory_expired"`
	DatabaseTotal   int           `json:"database_total"`
	DatabaseExpired int           `json:"database_expired"`
}
