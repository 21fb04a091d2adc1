package parser

import (
	"sort"
	"strings"
)

// Disambiguation thresholds: a winner below minScore, or one that beats the
// runner-up by less than minMargin, is ambiguous and must be resolved by an
// explicit label.
const (
	minScore  = 45
	minMargin = 5
)

// scacHeaderZone is how far into the document DetectSCAC looks. Carrier
// prefixes appear early, often isolated on their own line.
const scacHeaderZone = 1200

// ExtractBest runs the full candidate-generation, filtering, scoring and
// disambiguation pipeline and returns a well-formed Result for any input,
// including the empty string. It is a pure function of its argument.
func ExtractBest(text string) Result {
	if text == "" {
		return rejected("empty_text")
	}

	search := strings.ToUpper(text)

	repaired := repairBrokenCandidates(search)
	explicit := extractExplicit(search)
	generic := extractGeneric(search)

	merged := mergeCandidates(repaired, explicit, generic)
	if len(merged) == 0 {
		return rejected("no_candidates")
	}

	ctx := newScoreContext(search, merged)

	scored := make([]ScoredCandidate, 0, len(merged))
	for _, c := range merged {
		if isStructurallyInvalid(c.Token) || isFalsePositive(c.Token) {
			continue
		}
		s, reasons := scoreToken(ctx, c.Token)
		if s >= 0 {
			scored = append(scored, ScoredCandidate{Token: c.Token, Score: s, Reasons: reasons})
		}
	}
	if len(scored) == 0 {
		return rejected("no_valid_candidates")
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return len(scored[i].Token) > len(scored[j].Token)
	})

	best := scored[0]
	secondScore := blockedScore
	if len(scored) > 1 {
		secondScore = scored[1].Score
	}

	if best.Score < minScore || best.Score-secondScore < minMargin {
		// Ambiguous: only candidates vouched for by an explicit label stay
		// in the running.
		var labelled []ScoredCandidate
		for _, sc := range scored {
			if ctx.explicit[sc.Token] || hasExplicitBLLabelNear(search, sc.Token, 120) {
				labelled = append(labelled, sc)
			}
		}
		if len(labelled) == 0 {
			res := rejected("ambiguous_no_explicit_label")
			res.Candidates = scored
			return res
		}
		sort.SliceStable(labelled, func(i, j int) bool {
			return labelled[i].Score > labelled[j].Score
		})
		best = labelled[0]
		best.Reasons = append(append([]string{}, best.Reasons...), "resolved_by_label")
	}

	final := best.Token
	reasons := best.Reasons

	// Numeric-only winners are never trusted without a carrier anchor: a
	// SCAC detected in the header is prepended, otherwise the whole
	// extraction is rejected.
	if isNumeric(final) {
		scac := DetectSCAC(search)
		if scac == "" {
			res := rejected("numeric_without_scac")
			res.Candidates = scored
			return res
		}
		final = scac + final
		reasons = append(append([]string{}, reasons...), "prepended_scac:"+scac, "reconstructed_with_scac")
	}

	return Result{
		BLNumber:   &final,
		Confidence: mapConfidence(best.Score),
		Reason:     strings.Join(reasons, ";"),
		Candidates: scored,
	}
}

// mapConfidence maps a final score to its coarse band. Scores below minScore
// never reach this point for a non-null result.
func mapConfidence(score int) Confidence {
	switch {
	case score >= 80:
		return ConfidenceHigh
	case score >= 60:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

// DetectSCAC returns the first known carrier prefix found as a standalone
// token in the document's header zone, or "" when none is present.
func DetectSCAC(text string) string {
	if text == "" {
		return ""
	}
	header := strings.ToUpper(text)
	if len(header) > scacHeaderZone {
		header = header[:scacHeaderZone]
	}
	for _, scac := range knownSCACs {
		idx := strings.Index(header, scac)
		for idx != -1 {
			if standaloneAt(header, idx, len(scac)) {
				return scac
			}
			next := strings.Index(header[idx+1:], scac)
			if next == -1 {
				break
			}
			idx += 1 + next
		}
	}
	return ""
}

// standaloneAt reports whether the match at [idx, idx+n) is bounded by
// non-alphanumeric characters on both sides.
func standaloneAt(s string, idx, n int) bool {
	if idx > 0 && isWordByte(s[idx-1]) {
		return false
	}
	end := idx + n
	if end < len(s) && isWordByte(s[end]) {
		return false
	}
	return true
}

func isWordByte(b byte) bool {
	return b >= 'A' && b <= 'Z' || b >= 'a' && b <= 'z' || b >= '0' && b <= '9' || b == '_'
}
