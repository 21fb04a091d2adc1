package parser

import "regexp"

// containerShapeRe matches the ISO 6346 layout: 4-letter owner code,
// 6-digit serial, 1 check digit.
var containerShapeRe = regexp.MustCompile(`^([A-Z]{4})(\d{6})(\d)$`)

// ISO 6346 letter values. Multiples of 11 (11, 22, 33) are skipped by the
// standard, which is why the sequence jumps at K, V and the table ends at 38.
var iso6346LetterValues = map[byte]int{
	'A': 10, 'B': 12, 'C': 13, 'D': 14, 'E': 15, 'F': 16, 'G': 17, 'H': 18,
	'I': 19, 'J': 20, 'K': 21, 'L': 23, 'M': 24, 'N': 25, 'O': 26, 'P': 27,
	'Q': 28, 'R': 29, 'S': 30, 'T': 31, 'U': 32, 'V': 34, 'W': 35, 'X': 36,
	'Y': 37, 'Z': 38,
}

// IsContainerNumber validates an ISO 6346 container number, check digit
// included. The pipeline uses this positively to collect container numbers
// and negatively as an absolute disqualifier for BL candidates: a valid
// container number is never a BL number.
func IsContainerNumber(code string) bool {
	if len(code) != 11 {
		return false
	}
	m := containerShapeRe.FindStringSubmatch(code)
	if m == nil {
		return false
	}
	owner, serial := m[1], m[2]
	check := int(m[3][0] - '0')

	total := 0
	weight := 1
	for i := 0; i < len(owner); i++ {
		v, ok := iso6346LetterValues[owner[i]]
		if !ok {
			return false
		}
		total += v * weight
		weight *= 2
	}
	for i := 0; i < len(serial); i++ {
		total += int(serial[i]-'0') * weight
		weight *= 2
	}

	computed := total % 11
	if computed == 10 {
		computed = 0
	}
	return computed == check
}
