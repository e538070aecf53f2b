package mrz

import "strings"

// Candidate line lengths: TD1 lines are 30 characters, TD3 lines are 44, and
// OCR routinely drops a couple of trailing fillers, so the window is wide on
// the low side.
const (
	minCandidateLen = 28
	maxCandidateLen = 44
)

// ScanLines extracts MRZ candidate lines from raw OCR text. A line
// qualifies when, after removing all whitespace, it consists exclusively of
// [A-Z0-9<] and its length falls within [28,44]. Input line order is
// preserved; text with no candidates yields an empty result, not an error.
func ScanLines(text string) []string {
	var candidates []string
	for _, line := range strings.Split(text, "\n") {
		stripped := stripWhitespace(line)
		if len(stripped) < minCandidateLen || len(stripped) > maxCandidateLen {
			continue
		}
		if !isMRZCharset(stripped) {
			continue
		}
		candidates = append(candidates, stripped)
	}
	return candidates
}

func stripWhitespace(line string) string {
	var b strings.Builder
	b.Grow(len(line))
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case ' ', '\t', '\r', '\v', '\f':
		default:
			b.WriteByte(line[i])
		}
	}
	return b.String()
}

// isMRZCharset checks the [A-Z0-9<] character class with explicit byte
// predicates rather than a regex, so candidate detection does not depend on
// regex engine semantics.
func isMRZCharset(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		valid := (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '<'
		if !valid {
			return false
		}
	}
	return len(s) > 0
}
