package parser

import (
	"regexp"
	"strings"
)

var (
	// Runs of 3+ single alphanumeric characters separated by spaces or tabs,
	// e.g. "O O L U 2 1 6 4". OCR frequently blows tokens apart like this.
	spacedCharsRe = regexp.MustCompile(`\b[A-Za-z0-9](?:[ \t]+[A-Za-z0-9]){2,}\b`)

	// A separator sitting strictly between two alphanumeric characters.
	innerSeparatorRe = regexp.MustCompile(`([A-Za-z0-9])[-_/]([A-Za-z0-9])`)

	intraLineSpaceRe = regexp.MustCompile(`[ \t]+`)
)

// Normalize compacts OCR-mangled text into a canonical uppercase form with
// single-space runs and unified newlines. Line structure is preserved so that
// downstream OCR repair can still see physical layout.
//
// Normalize is idempotent: applying it to already-normalized text is a no-op.
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}

	t := strings.ToUpper(raw)
	t = strings.ReplaceAll(t, "\r\n", "\n")
	t = strings.ReplaceAll(t, "\r", "\n")

	// Rejoin character-spaced tokens: "O O L U 2 1 6 4" -> "OOLU2164".
	t = spacedCharsRe.ReplaceAllStringFunc(t, func(seq string) string {
		return intraLineSpaceRe.ReplaceAllString(seq, "")
	})

	// Strip separators inside tokens: "MAEU-1234567" -> "MAEU1234567".
	// Replacement consumes the trailing character, so adjacent separators
	// ("A-B-C") need another pass; loop until stable.
	for {
		next := innerSeparatorRe.ReplaceAllString(t, "$1$2")
		if next == t {
			break
		}
		t = next
	}

	lines := strings.Split(t, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		out = append(out, strings.TrimSpace(intraLineSpaceRe.ReplaceAllString(line, " ")))
	}

	return strings.TrimSpace(strings.Join(out, "\n"))
}
