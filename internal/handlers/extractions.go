package handlers

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"bl-extraction/internal/cache"
	"bl-extraction/internal/classifier"
	"bl-extraction/internal/database"
	"bl-extraction/internal/parser"
)

// ExtractionRequest is the body of POST /api/extractions
type ExtractionRequest struct {
	Text        string `json:"text"`
	Filename    string `json:"filename,omitempty"`
	DocTypeHint string `json:"doc_type_hint,omitempty"`
}

// ExtractionHandler handles HTTP requests for extractions
type ExtractionHandler struct {
	db           *database.DB
	cache        *cache.Manager
	classifier   *classifier.Classifier
	maxTextBytes int
}

// NewExtractionHandler creates a new extraction handler
func NewExtractionHandler(db *database.DB, cacheManager *cache.Manager, maxTextBytes int) *ExtractionHandler {
	return &ExtractionHandler{
		db:           db,
		cache:        cacheManager,
		classifier:   classifier.NewClassifier(),
		maxTextBytes: maxTextBytes,
	}
}

// CreateExtraction handles POST /api/extractions
func (h *ExtractionHandler) CreateExtraction(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, int64(h.maxTextBytes))

	var req ExtractionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if strings.Contains(err.Error(), "request body too large") {
			writeError(w, http.StatusRequestEntityTooLarge, "Request body too large")
			return
		}
		log.Printf("ERROR: Invalid JSON in CreateExtraction: %v", err)
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	textHash := hashText(req.Text)

	// Same text seen recently: serve the cached extraction
	if cached, err := h.cache.Get(textHash); err != nil {
		log.Printf("WARN: Cache lookup failed for %s: %v", textHash, err)
	} else if cached != nil {
		writeJSON(w, http.StatusOK, cached)
		return
	}

	// Same text seen ever: serve the stored extraction
	if doc, err := h.db.Documents.GetByTextHash(textHash); err != nil {
		log.Printf("ERROR: Failed to look up document by hash: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to look up document")
		return
	} else if doc != nil {
		extraction, err := h.db.Extractions.GetByDocumentID(doc.ID)
		if err != nil {
			log.Printf("ERROR: Failed to get extraction for document %d: %v", doc.ID, err)
			writeError(w, http.StatusInternalServerError, "Failed to get extraction")
			return
		}
		if extraction != nil {
			if err := h.cache.Set(textHash, extraction); err != nil {
				log.Printf("WARN: Failed to cache extraction: %v", err)
			}
			writeJSON(w, http.StatusOK, extraction)
			return
		}
	}

	extraction, err := h.runPipeline(&req, textHash)
	if err != nil {
		log.Printf("ERROR: Failed to store extraction: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to store extraction")
		return
	}

	if err := h.cache.Set(textHash, extraction); err != nil {
		log.Printf("WARN: Failed to cache extraction: %v", err)
	}

	writeJSON(w, http.StatusCreated, extraction)
}

// runPipeline classifies, extracts and persists one submitted document
func (h *ExtractionHandler) runPipeline(req *ExtractionRequest, textHash string) (*database.Extraction, error) {
	// Classification falls back to the filename when the OCR text is empty
	subject := req.Text
	if strings.TrimSpace(subject) == "" {
		subject = req.Filename
	}
	docType := h.classifier.Classify(req.DocTypeHint, subject)

	normalized := parser.Normalize(req.Text)
	result := parser.ExtractBest(normalized)

	candidates, err := json.Marshal(result.Candidates)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize candidates: %w", err)
	}

	doc := &database.Document{
		Filename: req.Filename,
		DocType:  docType,
		TextHash: textHash,
	}
	if err := h.db.Documents.Create(doc); err != nil {
		return nil, fmt.Errorf("failed to create document: %w", err)
	}

	extraction := &database.Extraction{
		DocumentID: doc.ID,
		BLNumber:   result.BLNumber,
		Confidence: string(result.Confidence),
		Reason:     result.Reason,
		Candidates: candidates,
		Containers: parser.ExtractContainers(normalized),
		Seals:      parser.ExtractSeals(normalized),
		Weight:     parser.ExtractWeight(normalized),
	}
	if err := h.db.Extractions.Create(extraction); err != nil {
		return nil, fmt.Errorf("failed to create extraction: %w", err)
	}

	return extraction, nil
}

// GetExtractions handles GET /api/extractions
func (h *ExtractionHandler) GetExtractions(w http.ResponseWriter, r *http.Request) {
	extractions, err := h.db.Extractions.GetAll()
	if err != nil {
		log.Printf("ERROR: Failed to get extractions: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to get extractions")
		return
	}

	if extractions == nil {
		extractions = []database.Extraction{}
	}
	writeJSON(w, http.StatusOK, extractions)
}

// GetExtractionByID handles GET /api/extractions/{id}
func (h *ExtractionHandler) GetExtractionByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid extraction ID")
		return
	}

	extraction, err := h.db.Extractions.GetByID(id)
	if err != nil {
		if err == sql.ErrNoRows {
			writeError(w, http.StatusNotFound, "Extraction not found")
			return
		}
		log.Printf("ERROR: Failed to get extraction %d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "Failed to get extraction")
		return
	}

	writeJSON(w, http.StatusOK, extraction)
}

// DeleteExtraction handles DELETE /api/extractions/{id}
func (h *ExtractionHandler) DeleteExtraction(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid extraction ID")
		return
	}

	extraction, err := h.db.Extractions.GetByID(id)
	if err != nil {
		if err == sql.ErrNoRows {
			writeError(w, http.StatusNotFound, "Extraction not found")
			return
		}
		log.Printf("ERROR: Failed to get extraction %d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "Failed to get extraction")
		return
	}

	doc, err := h.db.Documents.GetByID(extraction.DocumentID)
	if err == nil {
		if err := h.cache.Delete(doc.TextHash); err != nil {
			log.Printf("WARN: Failed to invalidate cache for %s: %v", doc.TextHash, err)
		}
	}

	// Deleting the document cascades to the extraction
	if err := h.db.Documents.Delete(extraction.DocumentID); err != nil {
		log.Printf("ERROR: Failed to delete document %d: %v", extraction.DocumentID, err)
		writeError(w, http.StatusInternalServerError, "Failed to delete extraction")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// hashText returns the hex SHA-256 of the raw submitted text
func hashText(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
