package parser

import (
	"fmt"
	"regexp"
	"strings"
)

// blockedScore short-circuits every other signal: the candidate can never be
// a BL number.
const blockedScore = -999

// scoreContext carries the per-document inputs the scoring engine needs. It
// is built once per extraction and never mutated.
type scoreContext struct {
	text       string
	headerZone string
	repaired   map[string]bool
	explicit   map[string]bool
}

func newScoreContext(text string, candidates []Candidate) *scoreContext {
	ctx := &scoreContext{
		text:       text,
		headerZone: text[:len(text)/4],
		repaired:   make(map[string]bool),
		explicit:   make(map[string]bool),
	}
	for _, c := range candidates {
		switch c.Source {
		case SourceRepaired:
			ctx.repaired[c.Token] = true
		case SourceExplicit:
			ctx.explicit[c.Token] = true
		}
	}
	return ctx
}

// scoreToken computes the integer score and the ordered reason tags for one
// candidate. Labelled evidence dominates; shape and position are secondary;
// risky contexts are penalized rather than disqualified so a strongly
// labelled candidate can still win next to a seal number.
func scoreToken(ctx *scoreContext, token string) (int, []string) {
	// Absolute blockers first.
	if isTaxOrFiscalContext(ctx.text, token) {
		return blockedScore, []string{"tax_or_fiscal_identifier"}
	}
	if isPortOrVoyageContext(ctx.text, token) {
		return blockedScore, []string{"port_or_voyage_context"}
	}
	if token == "" || blacklist[token] {
		return blockedScore, []string{"blacklisted"}
	}
	if !hasDigit(token) {
		return blockedScore, []string{"no_digits"}
	}
	if IsContainerNumber(token) {
		return blockedScore, []string{"iso_container"}
	}

	score := 0
	var reasons []string

	explicitLabel := hasExplicitBLLabelNear(ctx.text, token, 120)

	// Numeric-only tokens need an 8-15 digit length plus labelled evidence
	// or keyword proximity; orphans that were not reconstructed from a SCAC
	// carry a flat penalty on top.
	if isNumeric(token) {
		if len(token) < 8 || len(token) > 15 {
			return blockedScore, []string{"numeric_invalid_length"}
		}
		if !ctx.repaired[token] {
			score -= 50
			reasons = append(reasons, "numeric_orphan_penalty")
		}
		if !explicitLabel && !nearBLKeyword(ctx.text, token, 120) {
			return blockedScore, []string{"numeric_no_bl_context"}
		}
	}

	if ctx.explicit[token] {
		score += 60
		reasons = append(reasons, "explicit_match")
	}
	if explicitLabel {
		score += 40
		reasons = append(reasons, "explicit_bl_label")
	}
	if nearPhrase(ctx.text, token, "B/L NO", 30) {
		score += 100
		reasons = append(reasons, "explicit_bl_no_label")
	}
	if nearPhrase(ctx.text, token, "BILL OF LADING NO", 30) {
		score += 100
		reasons = append(reasons, "bill_of_lading_no_boost")
	}
	if nearBLKeyword(ctx.text, token, 150) {
		score += 25
		reasons = append(reasons, "near_bl_keyword")
	}

	switch {
	case strongFormatRe.MatchString(token):
		score += 35
		reasons = append(reasons, "strong_format")
	case sepFormatRe.MatchString(token):
		score += 25
		reasons = append(reasons, "format_with_sep")
	case fallbackFormatRe.MatchString(token):
		score += 15
		reasons = append(reasons, "fallback_alpha_digits")
	}

	if hasLetter(token) && hasDigit(token) {
		score += 5
		reasons = append(reasons, "alpha_digits")
	}
	if strings.HasPrefix(token, "MEDU") || strings.HasPrefix(token, "MSCU") {
		score += 20
		reasons = append(reasons, "msc_prefix")
	}
	if len(token) >= 8 && len(token) <= 20 {
		score += 5
		reasons = append(reasons, "good_length")
	}
	if strings.Contains(ctx.headerZone, token) {
		score += 20
		reasons = append(reasons, "header_zone")
	}
	if ctx.repaired[token] {
		score += 70
		reasons = append(reasons, "reconstructed_scac_digits")
	}
	if footerLabelled(ctx.text, token) {
		score += 60
		reasons = append(reasons, "footer_bl_label")
	}

	if freq := strings.Count(ctx.text, token); freq > 1 {
		bonus := freq
		if bonus > 5 {
			bonus = 5
		}
		score += bonus
		reasons = append(reasons, fmt.Sprintf("freq_%d", freq))
	}

	// Soft penalties, skipped when an explicit BL label already vouches for
	// the candidate.
	if !explicitLabel {
		if isBookingContext(ctx.text, token, 100) {
			score -= 30
			reasons = append(reasons, "booking_penalty")
		}
		if isSealContext(ctx.text, token) {
			score -= 40
			reasons = append(reasons, "seal_context_penalty")
		}
		if isWithinContainerSection(ctx.text, token) {
			score -= 40
			reasons = append(reasons, "container_section_penalty")
		}
		if isForbiddenContext(ctx.text, token) {
			score -= 30
			reasons = append(reasons, "forbidden_context_penalty")
		}
	}

	return score, reasons
}

// footerLabelled matches the exact "B/L: TOKEN" footer form. A malformed
// dynamic pattern is treated as signal absent, never surfaced.
func footerLabelled(text, token string) bool {
	re, err := regexp.Compile(`(?i)B/L\s*:\s*` + regexp.QuoteMeta(token))
	if err != nil {
		return false
	}
	return re.MatchString(text)
}
