package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"
	"time"

	"bl-extraction/internal/database"
)

func captureStdout(t *testing.T, fn func() error) string {
	t.Helper()

	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	err := fn()

	w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	buf.ReadFrom(r)

	if err != nil {
		t.Fatalf("print failed: %v", err)
	}

	return buf.String()
}

func TestOutputFormatterPrintExtractions(t *testing.T) {
	bl := "MEDUH9024256"
	extractions := []database.Extraction{
		{
			ID:         1,
			DocumentID: 1,
			BLNumber:   &bl,
			Confidence: "high",
			Reason:     "explicit_match",
			Containers: []string{"CSQU3054383"},
			CreatedAt:  time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:         2,
			DocumentID: 2,
			BLNumber:   nil,
			Confidence: "low",
			Reason:     "no_candidates",
			CreatedAt:  time.Date(2024, 3, 2, 11, 0, 0, 0, time.UTC),
		},
	}

	tests := []struct {
		name     string
		format   string
		quiet    bool
		contains []string
	}{
		{
			name:     "table format",
			format:   "table",
			quiet:    false,
			contains: []string{"ID", "BL NUMBER", "CONFIDENCE", "MEDUH9024256", "HIGH", "no_candidates", "-"},
		},
		{
			name:     "json format",
			format:   "json",
			quiet:    false,
			contains: []string{`"id":1`, `"bl_number":"MEDUH9024256"`, `"bl_number":null`},
		},
		{
			name:     "quiet mode",
			format:   "table",
			quiet:    true,
			contains: []string{"1", "2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			formatter := NewOutputFormatter(tt.format, tt.quiet)
			output := captureStdout(t, func() error {
				return formatter.PrintExtractions(extractions)
			})

			for _, expected := range tt.contains {
				if !strings.Contains(output, expected) {
					t.Errorf("Output should contain '%s', but got: %s", expected, output)
				}
			}
		})
	}
}

func TestOutputFormatterPrintExtractionDetail(t *testing.T) {
	bl := "EU26752001"
	candidates, _ := json.Marshal([]map[string]interface{}{
		{"token": "EU26752001", "score": 72, "reasons": []string{"explicit_match", "explicit_bl_label"}},
	})

	extraction := &database.Extraction{
		ID:         7,
		DocumentID: 3,
		BLNumber:   &bl,
		Confidence: "high",
		Reason:     "explicit_match",
		Candidates: candidates,
		Containers: []string{"CSQU3054383", "TEMU1234565"},
		Seals:      []string{"EU1234567"},
		Weight:     "24,500 KGS",
		CreatedAt:  time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	}

	formatter := NewOutputFormatter("table", false)
	output := captureStdout(t, func() error {
		return formatter.PrintExtraction(extraction)
	})

	for _, expected := range []string{
		"BL Number: EU26752001",
		"Confidence: HIGH",
		"CSQU3054383, TEMU1234565",
		"Seals: EU1234567",
		"Weight: 24,500 KGS",
		"Candidates:",
		"explicit_match, explicit_bl_label",
	} {
		if !strings.Contains(output, expected) {
			t.Errorf("Output should contain '%s', but got: %s", expected, output)
		}
	}
}

func TestOutputFormatterPrintExtractionNoWinner(t *testing.T) {
	extraction := &database.Extraction{
		ID:         8,
		DocumentID: 4,
		BLNumber:   nil,
		Confidence: "low",
		Reason:     "no_valid_candidates",
		CreatedAt:  time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	}

	formatter := NewOutputFormatter("table", false)
	output := captureStdout(t, func() error {
		return formatter.PrintExtraction(extraction)
	})

	if !strings.Contains(output, "BL Number: -") {
		t.Errorf("Expected dash for missing BL number, got: %s", output)
	}
	if !strings.Contains(output, "Reason: no_valid_candidates") {
		t.Errorf("Expected reason line, got: %s", output)
	}
}

func TestOutputFormatterPrintSuccess(t *testing.T) {
	formatter := NewOutputFormatter("table", false)
	output := captureStdout(t, func() error {
		formatter.PrintSuccess("Extraction complete")
		return nil
	})

	if !strings.Contains(output, "✓ Extraction complete") {
		t.Errorf("Expected success marker, got: %s", output)
	}

	quiet := NewOutputFormatter("table", true)
	output = captureStdout(t, func() error {
		quiet.PrintSuccess("Extraction complete")
		return nil
	})

	if output != "" {
		t.Errorf("Expected no output in quiet mode, got: %s", output)
	}
}

func TestOutputFormatterUnsupportedFormat(t *testing.T) {
	formatter := NewOutputFormatter("yaml", false)

	err := formatter.PrintExtractions(nil)
	if err == nil {
		t.Fatal("Expected an error for unsupported format")
	}
	if !strings.Contains(err.Error(), "unsupported format") {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestTruncateFunction(t *testing.T) {
	tests := []struct {
		input    string
		maxLen   int
		expected string
	}{
		{"short", 10, "short"},
		{"exactly10c", 10, "exactly10c"},
		{"this is a longer string", 10, "this is..."},
	}

	for _, tt := range tests {
		if got := truncate(tt.input, tt.maxLen); got != tt.expected {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.expected)
		}
	}
}
