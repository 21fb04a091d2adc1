package classifier

import (
	"regexp"
	"strings"
)

// Document types recognized by the classifier.
const (
	TypeBL      = "BL"
	TypeIM8     = "IM8"
	TypeUnknown = "UNKNOWN"
)

// Classifier scores a document's OCR text (or filename, as a last resort)
// against fixed vocabularies to decide its type. An explicit caller hint
// always wins.
type Classifier struct {
	blStrongPatterns []*regexp.Regexp
	im8Patterns      []*regexp.Regexp
}

// NewClassifier creates a classifier with pre-compiled patterns.
func NewClassifier() *Classifier {
	return &Classifier{
		blStrongPatterns: []*regexp.Regexp{
			regexp.MustCompile(`BILL\s*OF\s*LADING`),
			regexp.MustCompile(`BILL\s*OF\s*LADING\s*(NO|NUMBER)`),
			regexp.MustCompile(`B/L\s*(NO|NUMBER)`),
			regexp.MustCompile(`\bBL\s*(NO|NUMBER)\b`),
		},
		im8Patterns: []*regexp.Regexp{
			regexp.MustCompile(`\bIM8\b`),
			regexp.MustCompile(`DECLARATION\s+IM8`),
			regexp.MustCompile(`DOUANE`),
			regexp.MustCompile(`REPUBLIQUE\s+DU\s+CONGO`),
			regexp.MustCompile(`\bRDC\b`),
		},
	}
}

// Compacted BL labels survive even when OCR spaced every character apart and
// the normalizer glued whole phrases back together.
var compactedBLLabels = []string{
	"BILLOFLADING",
	"BILLOFLADINGNO",
	"BILLOFLADINGNUMBER",
	"BLNO",
	"BLNUMBER",
}

// Weak maritime vocabulary: none of these alone identifies a BL, but a
// document full of them usually is one.
var maritimeKeywords = []string{
	"CONSIGNEE",
	"SHIPPER",
	"PORT OF LOADING",
	"PORT OF DISCHARGE",
	"VESSEL",
	"VOYAGE",
	"CONTAINER",
	"SEAL",
	"GROSS WEIGHT",
	"NET WEIGHT",
}

// decisionThreshold is the minimum class score; the winning class must also
// strictly beat the other.
const decisionThreshold = 3.0

// Classify determines the document type from an optional caller hint and the
// document's text or filename.
func (c *Classifier) Classify(hint, textOrFilename string) string {
	if hint != "" {
		switch strings.ToUpper(strings.TrimSpace(hint)) {
		case "BL", "BILL OF LADING", "BILL_OF_LADING":
			return TypeBL
		case "IM8":
			return TypeIM8
		}
	}

	text := strings.ToUpper(textOrFilename)
	compact := strings.Join(strings.Fields(text), "")

	blScore := 0.0
	im8Score := 0.0

	for _, re := range c.blStrongPatterns {
		if re.MatchString(text) {
			blScore += 3
		}
	}
	for _, label := range compactedBLLabels {
		if strings.Contains(compact, label) {
			blScore += 2
			break
		}
	}
	for _, kw := range maritimeKeywords {
		if strings.Contains(text, kw) {
			blScore += 0.5
		}
	}
	for _, re := range c.im8Patterns {
		if re.MatchString(text) {
			im8Score += 2
		}
	}

	if blScore >= decisionThreshold && blScore > im8Score {
		return TypeBL
	}
	if im8Score >= decisionThreshold && im8Score > blScore {
		return TypeIM8
	}

	return c.classifyByFilename(textOrFilename)
}

// classifyByFilename is the low-confidence fallback for documents whose text
// carries no usable vocabulary.
func (c *Classifier) classifyByFilename(name string) string {
	lower := strings.ToLower(name)

	blHints := []string{"bill_of_lading", "bill-of-lading", "_bl", "/bl/", "b_l"}
	for _, h := range blHints {
		if strings.Contains(lower, h) {
			return TypeBL
		}
	}
	if strings.Contains(lower, "im8") {
		return TypeIM8
	}
	return TypeUnknown
}
