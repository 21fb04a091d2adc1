package parser

import "regexp"

// Explicit-label patterns: a known BL label followed by a 6-25 character
// alphanumeric token, separators allowed. Compacted variants cover labels the
// normalizer rejoined from character-spaced OCR output ("B I L L  O F ...").
var explicitBLPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)B[/\-]?L\s*(?:NO|NUMBER|NUM|REF|REFERENCE)[:\-.\s]*([A-Z0-9\-_/]{6,25})`),
	regexp.MustCompile(`(?i)BILL\s+OF\s+LADING\s*(?:NO|NUMBER|NUM|REF|REFERENCE)[:\-.\s]*([A-Z0-9\-_/]{6,25})`),
	regexp.MustCompile(`(?i)BILLOFLADING\s*(?:NO|NUMBER|NUM|REF|REFERENCE)[:\-.\s]*([A-Z0-9\-_/]{6,25})`),
	regexp.MustCompile(`(?i)(?:OCEAN|HOUSE|MASTER)\s+BILL\s*(?:NO|NUMBER|NUM)[:\-.\s]*([A-Z0-9\-_/]{6,25})`),
	regexp.MustCompile(`(?i)(?:OCEAN|HOUSE|MASTER)BILL\s*(?:NO|NUMBER|NUM)[:\-.\s]*([A-Z0-9\-_/]{6,25})`),
	regexp.MustCompile(`(?i)BLNO[:\-.\s]*([A-Z0-9\-_/]{6,25})`),
	regexp.MustCompile(`(?i)BL\s*NO[:\-.\s]*([A-Z0-9\-_/]{6,25})`),
	regexp.MustCompile(`(?i)BL\s+REF(?:ERENCE)?[:\-.\s]+([A-Z0-9\-_/]{6,25})`),
}

// Format patterns: label-independent shape matches, from most to least
// specific. The bare numeric run is last resort; scoring enforces the BL
// context it needs.
var formatBLPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b[A-Z]{2,4}\d{6,15}\b`),
	regexp.MustCompile(`\b[A-Z]{3,4}[A-Z0-9]{6,20}\b`),
	regexp.MustCompile(`\b\d{1,2}[A-Z]{2,4}\d{6,15}\b`),
	regexp.MustCompile(`\b[A-Z]{2,4}[\-/_]\d{6,15}\b`),
	regexp.MustCompile(`\b\d{1,2}[A-Z]{2,4}[\-/_]\d{6,15}\b`),
	regexp.MustCompile(`\b\d{8,15}\b`),
}

// Fully permissive tokenizer over alphanumeric-with-separator runs.
var permissiveTokenRe = regexp.MustCompile(`[A-Za-z0-9][A-Za-z0-9\-_/]{5,19}`)

// Shape checks used by scoring, filtering and OCR repair.
var (
	strongFormatRe   = regexp.MustCompile(`^[A-Z]{2,4}\d{6,15}$`)
	sepFormatRe      = regexp.MustCompile(`^[A-Z]{2,4}[-_/]\d{6,15}$`)
	fallbackFormatRe = regexp.MustCompile(`^[A-Z]{2,6}\d{5,15}$`)
	yearRe           = regexp.MustCompile(`^(19|20)\d{2}$`)
	nonAlnumRe       = regexp.MustCompile(`[^A-Z0-9]`)
	digitRunRe       = regexp.MustCompile(`^\d{6,15}$`)
	trailingSCACRe   = regexp.MustCompile(`([A-Z]{4})$`)
	leadingDigitsRe  = regexp.MustCompile(`^(\d{6,15})`)
	columnGapRe      = regexp.MustCompile(`\s{2,}`)
)

// knownSCACs is the fixed carrier prefix vocabulary used for OCR repair and
// for reconciling numeric-only winners.
var knownSCACs = []string{"MAEU", "MEDU", "MSCU", "CMAU", "COSU", "HLCU", "ONEY", "SEGU"}

// blacklist holds tokens that are never BL numbers regardless of context.
var blacklist = map[string]bool{
	"RECEIVED":      true,
	"COPY":          true,
	"DRAFT":         true,
	"ORIGINAL":      true,
	"NONNEGOTIABLE": true,
	"BL":            true,
}

// Label vocabularies for windowed context checks.
var (
	blLabels = []string{
		"BILL OF LADING NUMBER",
		"BILL OF LADING NO",
		"B/L NO",
		"BL NO",
	}

	blKeywords = []string{
		"BILL OF LADING",
		"BILLOFLADING",
		"B/L",
		"BL NO",
		"BLNO",
		"B L",
		"OCEAN BILL",
		"HOUSE BILL",
		"MASTER BILL",
	}

	bookingLabels = []string{
		"BOOKING NO",
		"BOOKING NUMBER",
	}

	sealLabels = []string{
		"SEAL",
		"SEAL NUMBER",
		"CARRIER",
		"CONTAINER NUMBERS",
	}

	taxLabels = []string{
		"TAX ID",
		"VAT",
		"NIF",
		"TIN",
		"FISCAL",
		"CUSTOMER CODE",
		"REGISTRATION NO",
	}

	portVoyageLabels = []string{
		"PORT OF LOADING",
		"PORT OF DISCHARGE",
		"VOYAGE NO",
		"VESSEL",
		"IMO NO",
		"SERVICE CONTRACT",
		"SVC CONTRACT",
	}

	forbiddenLabels = []string{
		"SEAL",
		"SEAL NO",
		"CARRIER",
		"CARRIER SEAL",
		"CONTAINER",
		"BOOKING",
		"IMO",
		"VOYAGE",
	}

	containerSectionLabels = []string{"CONTAINER"}
)
