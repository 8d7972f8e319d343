package display

import (
	"slices"
	"strconv"
	"strings"
)

// ParseBet reads a bet answer. Empty input picks the first option; a number
// must be one of options.
func ParseBet(input string, options []int) (int, bool) {
	input = strings.TrimSpace(input)
	if input == "" && len(options) > 0 {
		return options[0], true
	}
	n, err := strconv.Atoi(input)
	if err != nil || !slices.Contains(options, n) {
		return 0, false
	}
	return n, true
}

// ParseYesNo accepts y, yes, n and no in any case
func ParseYesNo(input string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "y", "yes":
		return true, true
	case "n", "no":
		return false, true
	default:
		return false, false
	}
}

// ParseChoice matches input against options case-insensitively, or as a
// 1-based index into options.
func ParseChoice(input string, options []string) (string, bool) {
	input = strings.TrimSpace(input)
	for _, opt := range options {
		if strings.EqualFold(input, opt) {
			return opt, true
		}
	}
	if n, err := strconv.Atoi(input); err == nil && n >= 1 && n <= len(options) {
		return options[n-1], true
	}
	return "", false
}

// FormatBets lists bet options for a prompt
func FormatBets(options []int) string {
	parts := make([]string, len(options))
	for i, o := range options {
		parts[i] = strconv.Itoa(o)
	}
	return strings.Join(parts, ", ")
}
