// Package numparse extracts numbers from the free-text cost and time
// strings that flow through technology profiles and resource estimates
// ("$45,000 - $60,000", "3-4 months"). Malformed input never errors;
// every function takes an explicit fallback so scoring stays total.
package numparse

import (
	"strconv"
	"strings"
	"unicode"
)

// Default fallbacks used by the clonability engine when a string yields
// no number at all.
const (
	DefaultDevelopmentCost = 50000
	DefaultMonthlyCost     = 200
	DefaultWeeks           = 24
)

// Amount returns the first number found in s, ignoring currency symbols
// and thousands separators. "$45,000 - $60,000" yields 45000.
func Amount(s string, fallback float64) float64 {
	n, ok := firstNumber(s)
	if !ok {
		return fallback
	}
	return n
}

// Weeks interprets s as a duration estimate and converts it to weeks.
// Units recognized: week(s), month(s) (x4), year(s) (x52). A bare number
// is taken as weeks. "3 months" yields 12.
func Weeks(s string, fallback float64) float64 {
	n, ok := firstNumber(s)
	if !ok {
		return fallback
	}

	lower := strings.ToLower(s)
	switch {
	case strings.Contains(lower, "year"):
		return n * 52
	case strings.Contains(lower, "month"):
		return n * 4
	default:
		return n
	}
}

// firstNumber scans s for the first contiguous numeric token. Commas
// inside a number are treated as thousands separators and dropped.
func firstNumber(s string) (float64, bool) {
	var buf strings.Builder
	inNumber := false

	for i, r := range s {
		switch {
		case unicode.IsDigit(r):
			buf.WriteRune(r)
			inNumber = true
		case inNumber && r == ',':
			// thousands separator, skip
		case inNumber && r == '.' && i+1 < len(s) && unicode.IsDigit(rune(s[i+1])):
			buf.WriteRune(r)
		case inNumber:
			return parse(buf.String())
		}
	}
	if inNumber {
		return parse(buf.String())
	}
	return 0, false
}

func parse(s string) (float64, bool) {
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
