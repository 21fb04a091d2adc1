package handlers

import (
	"log"
	"net/http"

	"bl-extraction/internal/cache"
)

// AdminHandler handles authenticated operational endpoints
type AdminHandler struct {
	cache *cache.Manager
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(cacheManager *cache.Manager) *AdminHandler {
	return &AdminHandler{cache: cacheManager}
}

// GetCacheStats handles GET /api/admin/cache
func (h *AdminHandler) GetCacheStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.cache.GetStats()
	if err != nil {
		log.Printf("ERROR: Failed to get cache stats: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to get cache stats")
		return
	}

	writeJSON(w, http.StatusOK, stats)
}
