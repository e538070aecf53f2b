// Package strings provides string manipulation utilities.
package strings

import (
	"strings"
)

// Normalize uppercases a value and strips everything outside [A-Z0-9].
// Cross-field comparisons run on normalized values so OCR punctuation noise
// and case differences never count as mismatches.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToUpper(s) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Levenshtein returns the edit distance between a and b with unit cost for
// insertion, deletion, and substitution. Two rolling rows keep it O(min) in
// memory; inputs here are short name strings.
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

// SimilarityRatio scores how close two strings are on [0,1]:
// (maxLen - distance) / maxLen. Two empty strings are identical, ratio 1.
func SimilarityRatio(a, b string) float64 {
	maxLen := max(len([]rune(a)), len([]rune(b)))
	if maxLen == 0 {
		return 1.0
	}
	return float64(maxLen-Levenshtein(a, b)) / float64(maxLen)
}
