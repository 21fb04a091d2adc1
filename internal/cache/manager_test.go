package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bl-extraction/internal/database"
)

func setupManager(t *testing.T, disabled bool, ttl time.Duration) (*Manager, *database.DB) {
	t.Helper()

	db, err := database.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	manager := NewManager(db.ResultCache, disabled, ttl)
	t.Cleanup(manager.Close)

	return manager, db
}

func cachedExtraction() *database.Extraction {
	bl := "MEDUH9024256"
	return &database.Extraction{
		ID:         1,
		DocumentID: 1,
		BLNumber:   &bl,
		Confidence: "high",
		Containers: []string{},
		Seals:      []string{},
	}
}

func TestManagerSetAndGet(t *testing.T) {
	manager, _ := setupManager(t, false, time.Minute)

	require.NoError(t, manager.Set("hash-1", cachedExtraction()))

	got, err := manager.Get("hash-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "MEDUH9024256", *got.BLNumber)
}

func TestManagerMiss(t *testing.T) {
	manager, _ := setupManager(t, false, time.Minute)

	got, err := manager.Get("never-seen")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestManagerDisabled(t *testing.T) {
	manager, _ := setupManager(t, true, time.Minute)

	require.NoError(t, manager.Set("hash-1", cachedExtraction()))

	got, err := manager.Get("hash-1")
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.False(t, manager.IsEnabled())
}

func TestManagerDelete(t *testing.T) {
	manager, _ := setupManager(t, false, time.Minute)

	require.NoError(t, manager.Set("hash-1", cachedExtraction()))
	require.NoError(t, manager.Delete("hash-1"))

	got, err := manager.Get("hash-1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestManagerFallsBackToDatabase(t *testing.T) {
	manager, db := setupManager(t, false, time.Minute)

	// Entry present only in the persistent tier
	require.NoError(t, db.ResultCache.Set("hash-1", cachedExtraction(), time.Minute))

	got, err := manager.Get("hash-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "high", got.Confidence)
}

func TestManagerLoadsFromDatabaseOnStartup(t *testing.T) {
	db, err := database.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.ResultCache.Set("hash-1", cachedExtraction(), time.Minute))

	manager := NewManager(db.ResultCache, false, time.Minute)
	t.Cleanup(manager.Close)

	stats, err := manager.GetStats()
	require.NoError(t, err)
	assert.Equal(t, 1, stats.MemoryTotal)
	assert.Equal(t, 1, stats.DatabaseTotal)
}

func TestManagerStatsWhenDisabled(t *testing.T) {
	manager, _ := setupManager(t, true, time.Minute)

	stats, err := manager.GetStats()
	require.NoError(t, err)
	assert.True(t, stats.Disabled)
	assert.Zero(t, stats.MemoryTotal)
}
