package parser

// noiseWords are tokens OCR commonly lifts out of stamps and page furniture.
var noiseWords = map[string]bool{
	"RECEIVED": true, "COPY": true, "ORIGINAL": true, "DRAFT": true,
	"ISSUED": true, "RELEASED": true, "CONFIRMED": true, "TOTAL": true,
	"KGS": true, "KG": true, "MT": true, "TON": true, "TONS": true,
	"PAGE": true,
}

// isRepeatedRun reports whether the token is one character repeated five or
// more times ("111111", "AAAAAA").
func isRepeatedRun(s string) bool {
	if len(s) < 5 {
		return false
	}
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}

// IsPlausibleBL is the business-rule validity check applied to a value after
// extraction, independent of any document context.
func IsPlausibleBL(value string) bool {
	v := normalizeToken(value)

	if len(v) < 6 || len(v) > 20 {
		return false
	}
	if !hasDigit(v) || !hasLetter(v) {
		return false
	}
	if isRepeatedRun(v) {
		return false
	}
	return !noiseWords[v]
}
