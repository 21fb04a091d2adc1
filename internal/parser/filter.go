package parser

import (
	"strconv"
	"strings"
)

func hasDigit(s string) bool {
	return strings.ContainsAny(s, "0123456789")
}

func hasLetter(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 'A' && s[i] <= 'Z' {
			return true
		}
	}
	return false
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// normalizeToken reduces a raw match to uppercase letters and digits only.
func normalizeToken(raw string) string {
	return nonAlnumRe.ReplaceAllString(strings.ToUpper(raw), "")
}

// isStructurallyInvalid is the absolute pre-scoring gate. A rejected token is
// never scored.
func isStructurallyInvalid(token string) bool {
	t := normalizeToken(token)

	if len(t) < 6 || len(t) > 20 {
		return true
	}
	if !hasDigit(t) {
		return true
	}

	// Purely numeric tokens stay in play only at 8-15 digits (Maersk-style
	// BL numbers); scoring enforces the label proximity they still need.
	if isNumeric(t) {
		return len(t) < 8 || len(t) > 15
	}

	if !hasLetter(t) {
		return true
	}
	return blacklist[t]
}

// isFalsePositive rejects tokens that match BL shapes but are clearly
// something else: years, calendar dates, long account-style numbers.
func isFalsePositive(token string) bool {
	if len(token) < 6 {
		return true
	}
	if yearRe.MatchString(token) {
		return true
	}
	if isNumeric(token) && len(token) == 6 {
		first, _ := strconv.Atoi(token[:2])
		last, _ := strconv.Atoi(token[4:])
		if first <= 31 || last <= 31 {
			return true
		}
	}
	if isNumeric(token) && len(token) > 15 {
		return true
	}
	return false
}
