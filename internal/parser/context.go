package parser

import "strings"

// The context classifier answers proximity questions about a candidate's
// first occurrence in the search text. All checks share the same windowed
// substring primitive instead of per-rule scanning code.

// windowAround returns the substring of text spanning window bytes on both
// sides of the token's first occurrence, or "" if the token does not occur.
func windowAround(text, token string, window int) string {
	t := strings.ToUpper(text)
	tok := strings.ToUpper(token)
	idx := strings.Index(t, tok)
	if idx == -1 {
		return ""
	}
	start := idx - window
	if start < 0 {
		start = 0
	}
	end := idx + len(tok) + window
	if end > len(t) {
		end = len(t)
	}
	return t[start:end]
}

// windowBefore returns up to window bytes preceding the token's first
// occurrence. Some label sets ("Container No:", "Port of Loading") only make
// sense as headings, so only the text before the token counts.
func windowBefore(text, token string, window int) string {
	t := strings.ToUpper(text)
	tok := strings.ToUpper(token)
	idx := strings.Index(t, tok)
	if idx == -1 {
		return ""
	}
	start := idx - window
	if start < 0 {
		start = 0
	}
	return t[start:idx]
}

func containsAny(ctx string, labels []string) bool {
	for _, l := range labels {
		if strings.Contains(ctx, l) {
			return true
		}
	}
	return false
}

// nearPhrase reports whether phrase occurs within window bytes of the
// token's first occurrence.
func nearPhrase(text, token, phrase string, window int) bool {
	if text == "" || token == "" || phrase == "" {
		return false
	}
	return strings.Contains(windowAround(text, token, window), strings.ToUpper(phrase))
}

// hasExplicitBLLabelNear reports whether an explicit BL label sits within
// window bytes of the token.
func hasExplicitBLLabelNear(text, token string, window int) bool {
	return containsAny(windowAround(text, token, window), blLabels)
}

// nearBLKeyword is the looser variant covering every BL keyword spelling.
func nearBLKeyword(text, token string, window int) bool {
	return containsAny(windowAround(text, token, window), blKeywords)
}

func isBookingContext(text, token string, window int) bool {
	return containsAny(windowAround(text, token, window), bookingLabels)
}

func isSealContext(text, token string) bool {
	return containsAny(windowAround(text, token, 80), sealLabels)
}

func isTaxOrFiscalContext(text, token string) bool {
	return containsAny(windowAround(text, token, 80), taxLabels)
}

func isPortOrVoyageContext(text, token string) bool {
	return containsAny(windowBefore(text, token, 80), portVoyageLabels)
}

func isForbiddenContext(text, token string) bool {
	return containsAny(windowBefore(text, token, 80), forbiddenLabels)
}

// isWithinContainerSection looks further back than the other checks because
// container lists put many rows between the heading and the token.
func isWithinContainerSection(text, token string) bool {
	return containsAny(windowBefore(text, token, 200), containerSectionLabels)
}
