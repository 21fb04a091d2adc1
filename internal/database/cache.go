package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"
)

// ResultCacheStore handles the persistent tier of the extraction result
// cache, keyed by document text hash.
type ResultCacheStore struct {
	db *sql.DB
}

// NewResultCacheStore creates a new result cache store
func NewResultCacheStore(db *sql.DB) *ResultCacheStore {
	return &ResultCacheStore{db: db}
}

// Get retrieves a cached extraction for a text hash
func (r *ResultCacheStore) Get(textHash string) (*Extraction, error) {
	query := `SELECT response_data, expires_at FROM extraction_cache WHERE text_hash = ?`

	var responseData string
	var expiresAt time.Time

	err := r.db.QueryRow(query, textHash).Scan(&responseData, &expiresAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Cache miss
		}
		return nil, fmt.Errorf("failed to get cached extraction: %w", err)
	}

	if time.Now().After(expiresAt) {
		// Delete expired entry and return cache miss
		r.Delete(textHash)
		return nil, nil
	}

	var extraction Extraction
	if err := json.Unmarshal([]byte(responseData), &extraction); err != nil {
		return nil, fmt.Errorf("failed to deserialize cached extraction: %w", err)
	}

	return &extraction, nil
}

// Set stores an extraction in the cache with the specified TTL
func (r *ResultCacheStore) Set(textHash string, extraction *Extraction, ttl time.Duration) error {
	responseData, err := json.Marshal(extraction)
	if err != nil {
		return fmt.Errorf("failed to serialize extraction: %w", err)
	}

	expiresAt := time.Now().Add(ttl)

	query := `INSERT OR REPLACE INTO extraction_cache (text_hash, response_data, cached_at, expires_at)
			  VALUES (?, ?, CURRENT_TIMESTAMP, ?)`

	if _, err := r.db.Exec(query, textHash, string(responseData), expiresAt); err != nil {
		return fmt.Errorf("failed to cache extraction: %w", err)
	}

	return nil
}

// Delete removes a cached entry for a text hash
func (r *ResultCacheStore) Delete(textHash string) error {
	if _, err := r.db.Exec(`DELETE FROM extraction_cache WHERE text_hash = ?`, textHash); err != nil {
		return fmt.Errorf("failed to delete cached entry: %w", err)
	}
	return nil
}

// DeleteExpired removes all expired cache entries
func (r *ResultCacheStore) DeleteExpired() error {
	result, err := r.db.Exec(`DELETE FROM extraction_cache WHERE expires_at <= ?`, time.Now())
	if err != nil {
		return fmt.Errorf("failed to delete expired entries: %w", err)
	}

	if rowsAffected, err := result.RowsAffected(); err == nil && rowsAffected > 0 {
		log.Printf("INFO: Cleaned up %d expired cache entries", rowsAffected)
	}

	return nil
}

// LoadAll loads all non-expired cache entries from the database.
// Used for initializing the in-memory cache on startup.
func (r *ResultCacheStore) LoadAll() (map[string]*Extraction, error) {
	query := `SELECT text_hash, response_data FROM extraction_cache WHERE expires_at > ?`

	rows, err := r.db.Query(query, time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to load cache entries: %w", err)
	}
	defer rows.Close()

	cache := make(map[string]*Extraction)

	for rows.Next() {
		var textHash, responseData string
		if err := rows.Scan(&textHash, &responseData); err != nil {
			return nil, fmt.Errorf("failed to scan cache entry: %w", err)
		}

		var extraction Extraction
		if err := json.Unmarshal([]byte(responseData), &extraction); err != nil {
			log.Printf("WARN: Failed to deserialize cached extraction for %s: %v", textHash, err)
			continue
		}

		cache[textHash] = &extraction
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cache entries: %w", err)
	}

	return cache, nil
}

// GetStats returns total and expired entry counts
func (r *ResultCacheStore) GetStats() (int, int, error) {
	var total, expired int

	if err := r.db.QueryRow("SELECT COUNT(*) FROM extraction_cache").Scan(&total); err != nil {
		return 0, 0, fmt.Errorf("failed to get total cache entries: %w", err)
	}
	if err := r.db.QueryRow("SELECT COUNT(*) FROM extraction_cache WHERE expires_at <= ?", time.Now()).Scan(&expired); err != nil {
		return 0, 0, fmt.Errorf("failed to get expired cache entries: %w", err)
	}

	return total, expired, nil
}
