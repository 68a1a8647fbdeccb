package numparse

import "testing"

func TestAmount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		in       string
		fallback float64
		want     float64
	}{
		{"dollar range", "$45,000 - $60,000", 0, 45000},
		{"plain number", "20000", 0, 20000},
		{"embedded text", "around $1,500 upfront", 0, 1500},
		{"monthly rate", "$50/month", 0, 50},
		{"decimal", "$99.50", 0, 99.5},
		{"no number", "to be determined", 50000, 50000},
		{"empty", "", 200, 200},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Amount(tc.in, tc.fallback); got != tc.want {
				t.Errorf("Amount(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestWeeks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		in       string
		fallback float64
		want     float64
	}{
		{"weeks", "4 weeks", 0, 4},
		{"single week", "1 week", 0, 1},
		{"months", "3 months", 0, 12},
		{"month range takes first", "3-4 months", 0, 12},
		{"years", "1 year", 0, 52},
		{"bare number is weeks", "12", 0, 12},
		{"unparsable", "soon", 24, 24},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Weeks(tc.in, tc.fallback); got != tc.want {
				t.Errorf("Weeks(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}
