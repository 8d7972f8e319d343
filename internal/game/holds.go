package game

import (
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// ParseHolds turns free-form hold input into sorted, de-duplicated 0-based
// positions. "134", "1,3,4" and "1 3 4" all hold slots 1, 3 and 4. Tokens
// that are not integers in 1..handSize are dropped; empty input holds
// nothing.
func ParseHolds(input string, handSize int) []int {
	input = strings.TrimSpace(input)
	if input == "" {
		return []int{}
	}

	var tokens []string
	if strings.ContainsFunc(input, isHoldSeparator) {
		tokens = strings.FieldsFunc(input, isHoldSeparator)
	} else {
		for _, r := range input {
			tokens = append(tokens, string(r))
		}
	}

	var positions []int
	for _, tok := range tokens {
		n, err := strconv.Atoi(strings.TrimSpace(tok))
		if err != nil || n < 1 || n > handSize {
			continue
		}
		positions = append(positions, n-1)
	}
	return normalizeHolds(positions, handSize)
}

func isHoldSeparator(r rune) bool {
	return r == ',' || unicode.IsSpace(r)
}

// normalizeHolds filters 0-based positions to [0, handSize), de-duplicates
// and sorts them.
func normalizeHolds(positions []int, handSize int) []int {
	seen := make(map[int]bool, handSize)
	out := []int{}
	for _, p := range positions {
		if p < 0 || p >= handSize || seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	sort.Ints(out)
	return out
}
