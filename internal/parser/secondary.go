package parser

import (
	"regexp"
	"strings"
)

// Secondary extractors run independently against the normalized text. They
// never feed back into BL scoring except as the negative context signals the
// scoring engine already applies.

var (
	containerRe    = regexp.MustCompile(`(?i)\b([A-Z]{4}\d{7})\b`)
	containerSepRe = regexp.MustCompile(`(?i)\b([A-Z0-9]{4,12}[-_ ]?[0-9]{4,8})\b`)

	sealLabelRe = regexp.MustCompile(`(?i)\bSEAL\b[:#\-\s]*([A-Z0-9\-_/]{3,20})`)
	sealShapeRe = regexp.MustCompile(`(?i)\b([A-Z]{2,4}[-_]?[A-Z0-9]{4,12})\b`)

	weightRe   = regexp.MustCompile(`(?i)([0-9]{1,3}(?:[0-9,.\s]{0,15})?)\s*(KGS|KG|KILOGRAMS?)`)
	weightSeps = strings.NewReplacer(" ", "", "-", "", "_", "")
)

// ExtractContainers returns every ISO 6346 validated container number in the
// text, in first-occurrence order. A separator-tolerant second pass catches
// codes OCR broke apart.
func ExtractContainers(text string) []string {
	var out []string
	seen := make(map[string]bool)
	add := func(code string) {
		if IsContainerNumber(code) && !seen[code] {
			seen[code] = true
			out = append(out, code)
		}
	}

	for _, m := range containerRe.FindAllStringSubmatch(text, -1) {
		add(strings.ToUpper(m[1]))
	}
	for _, m := range containerSepRe.FindAllStringSubmatch(text, -1) {
		c := strings.ToUpper(weightSeps.Replace(m[1]))
		if len(c) == 11 {
			add(c)
		}
	}
	return out
}

// ExtractSeals returns seal numbers: explicit "SEAL" label captures plus
// generic alphanumeric shapes accepted only inside a seal-context window.
func ExtractSeals(text string) []string {
	var out []string
	seen := make(map[string]bool)
	add := func(s string) {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}

	for _, m := range sealLabelRe.FindAllStringSubmatch(text, -1) {
		add(strings.ToUpper(m[1]))
	}
	for _, m := range sealShapeRe.FindAllStringSubmatch(text, -1) {
		tok := strings.ToUpper(m[1])
		if isSealContext(text, tok) {
			add(tok)
		}
	}
	return out
}

// ExtractWeight returns the first numeric+unit gross weight match, falling
// back to the first line containing a weight unit and a digit. Returns ""
// when the document carries no weight.
func ExtractWeight(text string) string {
	if m := weightRe.FindString(text); m != "" {
		return strings.TrimSpace(strings.ReplaceAll(m, "\n", " "))
	}
	for _, line := range strings.Split(text, "\n") {
		u := strings.ToUpper(line)
		if (strings.Contains(u, "KGS") || strings.Contains(u, "KG")) && hasDigit(line) {
			return strings.TrimSpace(line)
		}
	}
	return ""
}
