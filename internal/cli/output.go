package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"bl-extraction/internal/database"
	"bl-extraction/internal/parser"
)

// OutputFormatter handles different output formats
type OutputFormatter struct {
	format  string
	quiet   bool
	noColor bool
}

// NewOutputFormatter creates a new output formatter
func NewOutputFormatter(format string, quiet bool) *OutputFormatter {
	return &OutputFormatter{
		format: format,
		quiet:  quiet,
	}
}

// NewOutputFormatterWithColor creates a formatter with explicit color control
func NewOutputFormatterWithColor(format string, quiet, noColor bool) *OutputFormatter {
	return &OutputFormatter{
		format:  format,
		quiet:   quiet,
		noColor: noColor,
	}
}

// PrintExtractions prints a list of extractions
func (f *OutputFormatter) PrintExtractions(extractions []database.Extraction) error {
	if f.quiet {
		for _, extraction := range extractions {
			fmt.Printf("%d\n", extraction.ID)
		}
		return nil
	}

	switch f.format {
	case "json":
		return json.NewEncoder(os.Stdout).Encode(extractions)
	case "table":
		return f.printExtractionsTable(extractions)
	default:
		return fmt.Errorf("unsupported format: %s", f.format)
	}
}

// PrintExtraction prints a single extraction
func (f *OutputFormatter) PrintExtraction(extraction *database.Extraction) error {
	if f.quiet {
		fmt.Printf("%d\n", extraction.ID)
		return nil
	}

	switch f.format {
	case "json":
		return json.NewEncoder(os.Stdout).Encode(extraction)
	case "table":
		return f.printExtractionTable(extraction)
	default:
		return fmt.Errorf("unsupported format: %s", f.format)
	}
}

// PrintSuccess prints a success message
func (f *OutputFormatter) PrintSuccess(message string) {
	if !f.quiet {
		fmt.Printf("✓ %s\n", message)
	}
}

// PrintError prints an error message
func (f *OutputFormatter) PrintError(err error) {
	if !f.quiet {
		fmt.Fprintf(os.Stderr, "✗ Error: %v\n", err)
	}
}

// PrintInfo prints an informational message
func (f *OutputFormatter) PrintInfo(message string) {
	if !f.quiet {
		fmt.Printf("ℹ %s\n", message)
	}
}

// printExtractionsTable prints extractions in table format
func (f *OutputFormatter) printExtractionsTable(extractions []database.Extraction) error {
	if len(extractions) == 0 {
		fmt.Println("No extractions found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()

	// Header
	fmt.Fprintln(w, "ID\tBL NUMBER\tCONFIDENCE\tREASON\tCONTAINERS\tCREATED")

	// Data
	for _, extraction := range extractions {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%s\n",
			extraction.ID,
			blNumberOrDash(extraction.BLNumber),
			strings.ToUpper(extraction.Confidence),
			extraction.Reason,
			len(extraction.Containers),
			extraction.CreatedAt.Format("2006-01-02"))
	}

	return nil
}

// printExtractionTable prints a single extraction in table format
func (f *OutputFormatter) printExtractionTable(extraction *database.Extraction) error {
	fmt.Printf("Extraction ID: %d\n", extraction.ID)
	fmt.Printf("Document ID: %d\n", extraction.DocumentID)
	fmt.Printf("BL Number: %s\n", blNumberOrDash(extraction.BLNumber))
	fmt.Printf("Confidence: %s\n", strings.ToUpper(extraction.Confidence))
	if extraction.Reason != "" {
		fmt.Printf("Reason: %s\n", extraction.Reason)
	}
	fmt.Printf("Containers: %s\n", joinOrDash(extraction.Containers))
	fmt.Printf("Seals: %s\n", joinOrDash(extraction.Seals))
	if extraction.Weight != "" {
		fmt.Printf("Weight: %s\n", extraction.Weight)
	}
	fmt.Printf("Created: %s\n", extraction.CreatedAt.Format("2006-01-02 15:04:05"))

	return f.printCandidateTrace(extraction.Candidates)
}

// printCandidateTrace prints the scored candidate trace stored with the
// extraction, most convincing first.
func (f *OutputFormatter) printCandidateTrace(raw json.RawMessage) error {
	if len(raw) == 0 {
		return nil
	}

	var candidates []parser.ScoredCandidate
	if err := json.Unmarshal(raw, &candidates); err != nil {
		return fmt.Errorf("failed to decode candidate trace: %w", err)
	}
	if len(candidates) == 0 {
		return nil
	}

	fmt.Println("\nCandidates:")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "  TOKEN\tSCORE\tREASONS")
	for _, candidate := range candidates {
		fmt.Fprintf(w, "  %s\t%d\t%s\n",
			candidate.Token,
			candidate.Score,
			truncate(strings.Join(candidate.Reasons, ", "), 60))
	}

	return nil
}

func blNumberOrDash(bl *string) string {
	if bl == nil || *bl == "" {
		return "-"
	}
	return *bl
}

func joinOrDash(values []string) string {
	if len(values) == 0 {
		return "-"
	}
	return strings.Join(values, ", ")
}

// truncate truncates a string to the specified length
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
