package cli

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"bl-extraction/internal/database"
)

func TestNewClient(t *testing.T) {
	baseURL := "http://example.com"
	client := NewClient(baseURL)

	if client.baseURL != baseURL {
		t.Errorf("Expected baseURL to be '%s', got '%s'", baseURL, client.baseURL)
	}

	if client.httpClient.Timeout != 30*time.Second {
		t.Errorf("Expected timeout to be 30s, got %v", client.httpClient.Timeout)
	}
}

func TestNewClient_RemovesTrailingSlash(t *testing.T) {
	client := NewClient("http://example.com/")

	expected := "http://example.com"
	if client.baseURL != expected {
		t.Errorf("Expected baseURL to be '%s', got '%s'", expected, client.baseURL)
	}
}

func TestNewClientWithTimeout(t *testing.T) {
	timeout := 60 * time.Second
	client := NewClientWithTimeout("http://example.com", timeout)

	if client.httpClient.Timeout != timeout {
		t.Errorf("Expected timeout to be %v, got %v", timeout, client.httpClient.Timeout)
	}
}

func TestHealthCheck_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "GET" {
			t.Errorf("Expected GET request, got %s", r.Method)
		}
		if r.URL.Path != "/api/health" {
			t.Errorf("Expected path '/api/health', got '%s'", r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	if err := client.HealthCheck(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
}

func TestHealthCheck_Error(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"error":"Database unavailable"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	err := client.HealthCheck()

	if err == nil {
		t.Fatal("Expected an error, got nil")
	}

	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("Expected *APIError, got %T", err)
	}
	if apiErr.Code != http.StatusServiceUnavailable {
		t.Errorf("Expected code 503, got %d", apiErr.Code)
	}
	if apiErr.Message != "Database unavailable" {
		t.Errorf("Expected message 'Database unavailable', got '%s'", apiErr.Message)
	}
}

func TestCreateExtraction(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" {
			t.Errorf("Expected POST request, got %s", r.Method)
		}
		if r.URL.Path != "/api/extractions" {
			t.Errorf("Expected path '/api/extractions', got '%s'", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Expected Content-Type 'application/json', got '%s'", ct)
		}

		var req ExtractRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("Failed to decode request: %v", err)
		}
		if req.Text != "BILL OF LADING MEDUH9024256" {
			t.Errorf("Unexpected text: '%s'", req.Text)
		}

		bl := "MEDUH9024256"
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(database.Extraction{
			ID:         1,
			DocumentID: 1,
			BLNumber:   &bl,
			Confidence: "high",
			Containers: []string{},
			Seals:      []string{},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	extraction, err := client.CreateExtraction(&ExtractRequest{
		Text:     "BILL OF LADING MEDUH9024256",
		Filename: "manifest.pdf",
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if extraction.ID != 1 {
		t.Errorf("Expected ID 1, got %d", extraction.ID)
	}
	if extraction.BLNumber == nil || *extraction.BLNumber != "MEDUH9024256" {
		t.Errorf("Unexpected BL number: %v", extraction.BLNumber)
	}
}

func TestGetExtractions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/extractions" {
			t.Errorf("Expected path '/api/extractions', got '%s'", r.URL.Path)
		}
		w.Write([]byte(`[{"id":1,"confidence":"high"},{"id":2,"confidence":"low"}]`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	extractions, err := client.GetExtractions()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(extractions) != 2 {
		t.Fatalf("Expected 2 extractions, got %d", len(extractions))
	}
	if extractions[1].Confidence != "low" {
		t.Errorf("Expected confidence 'low', got '%s'", extractions[1].Confidence)
	}
}

func TestGetExtraction_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"Extraction not found"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.GetExtraction(42)

	if err == nil {
		t.Fatal("Expected an error, got nil")
	}
	if !strings.Contains(err.Error(), "Extraction not found") {
		t.Errorf("Expected error to mention 'Extraction not found', got '%v'", err)
	}
}

func TestDeleteExtraction_SendsBearerToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "DELETE" {
			t.Errorf("Expected DELETE request, got %s", r.Method)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer secret" {
			t.Errorf("Expected bearer token, got '%s'", auth)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	client.SetAPIKey("secret")

	if err := client.DeleteExtraction(1); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
}

func TestGetCacheStats(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/admin/cache" {
			t.Errorf("Expected path '/api/admin/cache', got '%s'", r.URL.Path)
		}
		w.Write([]byte(`{"disabled":false,"ttl":300000000000,"memory_total":3,"database_total":5}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	stats, err := client.GetCacheStats()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if stats.Disabled {
		t.Error("Expected cache to be enabled")
	}
	if stats.MemoryTotal != 3 || stats.DatabaseTotal != 5 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
}

func TestAPIError_FallsBackToStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`not json`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	err := client.HealthCheck()

	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("Expected *APIError, got %T", err)
	}
	if apiErr.Message == "" {
		t.Error("Expected a fallback message, got empty string")
	}
}
