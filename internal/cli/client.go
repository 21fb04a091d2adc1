package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"bl-extraction/internal/database"
)

// Client represents an HTTP client for the extraction API
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a new API client
func NewClient(baseURL string) *Client {
	return NewClientWithTimeout(baseURL, 30*time.Second)
}

// NewClientWithTimeout creates a new API client with a custom request timeout
func NewClientWithTimeout(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// SetAPIKey sets the bearer token sent with admin-only requests
func (c *Client) SetAPIKey(key string) {
	c.apiKey = key
}

// APIError represents an error from the API
type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"error"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error %d: %s", e.Code, e.Message)
}

// ExtractRequest represents a request to extract from document text
type ExtractRequest struct {
	Text        string `json:"text"`
	Filename    string `json:"filename,omitempty"`
	DocTypeHint string `json:"doc_type_hint,omitempty"`
}

// CacheStats mirrors the admin cache statistics payload. TTL is in
// nanoseconds, as encoded by time.Duration.
type CacheStats struct {
	Disabled        bool  `json:"disabled"`
	TTL             int64 `json:"ttl"`
	MemoryTotal     int   `json:"memory_total"`
	MemoryExpired   int   `json:"memory_expired"`
	DatabaseTotal   int   `json:"database_total"`
	DatabaseExpired int   `json:"database_expired"`
}

// doRequest performs an HTTP request and handles errors
func (c *Client) doRequest(method, path string, body interface{}) (*http.Response, error) {
	url := c.baseURL + path

	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	// Handle API errors
	if resp.StatusCode >= 400 {
		defer resp.Body.Close()

		apiErr := APIError{Code: resp.StatusCode}
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil || apiErr.Message == "" {
			apiErr.Message = resp.Status
		}
		return nil, &apiErr
	}

	return resp, nil
}

// HealthCheck checks if the API server is healthy
func (c *Client) HealthCheck() error {
	resp, err := c.doRequest("GET", "/api/health", nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return nil
}

// CreateExtraction submits document text and returns the stored extraction
func (c *Client) CreateExtraction(req *ExtractRequest) (*database.Extraction, error) {
	resp, err := c.doRequest("POST", "/api/extractions", req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var extraction database.Extraction
	if err := json.NewDecoder(resp.Body).Decode(&extraction); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &extraction, nil
}

// GetExtractions returns all stored extractions
func (c *Client) GetExtractions() ([]database.Extraction, error) {
	resp, err := c.doRequest("GET", "/api/extractions", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var extractions []database.Extraction
	if err := json.NewDecoder(resp.Body).Decode(&extractions); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return extractions, nil
}

// GetExtraction returns a specific extraction by ID
func (c *Client) GetExtraction(id int) (*database.Extraction, error) {
	path := "/api/extractions/" + strconv.Itoa(id)
	resp, err := c.doRequest("GET", path, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var extraction database.Extraction
	if err := json.NewDecoder(resp.Body).Decode(&extraction); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &extraction, nil
}

// DeleteExtraction deletes an extraction and its document
func (c *Client) DeleteExtraction(id int) error {
	path := "/api/extractions/" + strconv.Itoa(id)
	resp, err := c.doRequest("DELETE", path, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return nil
}

// GetCacheStats returns cache statistics from the admin endpoint
func (c *Client) GetCacheStats() (*CacheStats, error) {
	resp, err := c.doRequest("GET", "/api/admin/cache", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var stats CacheStats
	if err := json.NewDecoder(resp.Body).Decode(&stats); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &stats, nil
}
