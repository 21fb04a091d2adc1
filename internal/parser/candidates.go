package parser

import "strings"

// Candidate generation runs three tiers against the search text and merges
// the results in priority order: OCR-repaired tokens first, explicit-label
// captures second, generic shape and permissive tokens last. De-duplication
// is first-seen, so the tier that found a token first also names its source.

// repairBrokenCandidates reconstructs BL numbers that OCR split between a
// carrier prefix and its digit run. Three physical layouts are handled:
//
//	MAEU            prefix alone, digits on the next line
//	262802788
//
//	MAEU      262802788    prefix and digits column-separated on one line
//
//	... MAEU             prefix ends a line, digits start the next
//	262802788 ...
func repairBrokenCandidates(text string) []string {
	if text == "" {
		return nil
	}

	var lines []string
	for _, l := range strings.Split(strings.ToUpper(text), "\n") {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}

	var repaired []string
	seen := make(map[string]bool)
	add := func(tok string) {
		if !seen[tok] {
			seen[tok] = true
			repaired = append(repaired, tok)
		}
	}

	for i, line := range lines {
		// Column gap on a single line.
		cols := columnGapRe.Split(line, -1)
		for j := 0; j+1 < len(cols); j++ {
			if isKnownSCAC(cols[j]) && digitRunRe.MatchString(cols[j+1]) {
				add(cols[j] + cols[j+1])
			}
		}

		if i+1 >= len(lines) {
			continue
		}
		next := lines[i+1]

		// Prefix alone on its own line.
		if isKnownSCAC(line) && digitRunRe.MatchString(next) {
			add(line + next)
		}

		// Prefix as a line suffix, digits starting the next line.
		if m := trailingSCACRe.FindStringSubmatch(line); m != nil && isKnownSCAC(m[1]) {
			if d := leadingDigitsRe.FindStringSubmatch(next); d != nil {
				add(m[1] + d[1])
			}
		}
	}

	return repaired
}

func isKnownSCAC(s string) bool {
	for _, scac := range knownSCACs {
		if s == scac {
			return true
		}
	}
	return false
}

// extractExplicit captures tokens that follow a known BL label.
func extractExplicit(text string) []string {
	var found []string
	seen := make(map[string]bool)
	for _, re := range explicitBLPatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			v := normalizeToken(m[len(m)-1])
			if v == "" || seen[v] {
				continue
			}
			if isStructurallyInvalid(v) || isFalsePositive(v) {
				continue
			}
			if len(v) >= 6 && len(v) <= 20 {
				seen[v] = true
				found = append(found, v)
			}
		}
	}
	return found
}

// extractGeneric collects label-independent candidates: structural shape
// matches first, then the fully permissive tokenizer.
func extractGeneric(text string) []string {
	var found []string
	seen := make(map[string]bool)
	add := func(raw string) {
		v := normalizeToken(raw)
		if v == "" || seen[v] {
			return
		}
		if len(v) < 6 || len(v) > 20 {
			return
		}
		if isStructurallyInvalid(v) || isFalsePositive(v) {
			return
		}
		seen[v] = true
		found = append(found, v)
	}

	for _, re := range formatBLPatterns {
		for _, m := range re.FindAllString(text, -1) {
			add(m)
		}
	}
	for _, m := range permissiveTokenRe.FindAllString(text, -1) {
		add(m)
	}
	return found
}

// mergeCandidates concatenates the three ordered tiers with a first-seen
// filter. Insertion order is priority order.
func mergeCandidates(repaired, explicit, generic []string) []Candidate {
	var merged []Candidate
	seen := make(map[string]bool)
	appendTier := func(tokens []string, source string) {
		for _, tok := range tokens {
			if tok == "" || seen[tok] {
				continue
			}
			seen[tok] = true
			merged = append(merged, Candidate{Token: tok, Source: source})
		}
	}
	appendTier(repaired, SourceRepaired)
	appendTier(explicit, SourceExplicit)
	appendTier(generic, SourceGeneric)
	return merged
}
