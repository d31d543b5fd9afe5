// Package monthlist parses free-form month-list specifications such as
// "1, 3-5, 8" into sorted sets of month indices.
package monthlist

import (
	"sort"
	"strconv"
	"strings"
)

// Parse extracts positive month indices from text. Tokens are separated by
// commas and/or whitespace; each token is a bare positive integer or an
// ascending inclusive range "a-b". Invalid tokens (non-numeric, zero or
// negative, descending ranges) are silently dropped. The result is
// deduplicated and ascending.
func Parse(text string) []int {
	seen := make(map[int]bool)

	tokens := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	for _, token := range tokens {
		if lo, hi, ok := parseRange(token); ok {
			for m := lo; m <= hi; m++ {
				seen[m] = true
			}
			continue
		}
		if m, err := strconv.Atoi(token); err == nil && m >= 1 {
			seen[m] = true
		}
	}

	months := make([]int, 0, len(seen))
	for m := range seen {
		months = append(months, m)
	}
	sort.Ints(months)
	return months
}

// parseRange interprets a token of the form "a-b" with 1 <= a <= b.
func parseRange(token string) (lo, hi int, ok bool) {
	idx := strings.Index(token, "-")
	if idx <= 0 || idx == len(token)-1 {
		return 0, 0, false
	}
	lo, err := strconv.Atoi(token[:idx])
	if err != nil || lo < 1 {
		return 0, 0, false
	}
	hi, err = strconv.Atoi(token[idx+1:])
	if err != nil || hi < lo {
		return 0, 0, false
	}
	return lo, hi, true
}
