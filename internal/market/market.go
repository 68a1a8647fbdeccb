// Package market carries the optional market-assessment input (SWOT and
// competitor data) produced by the analysis-store collaborator.
package market

import (
	"encoding/json"
	"fmt"
	"os"
)

// Data is a structured market assessment for the analyzed business.
// A nil *Data means no market context is available; the scoring engine
// falls back to neutral values in that case.
type Data struct {
	Strengths     []string `json:"strengths,omitempty"`
	Weaknesses    []string `json:"weaknesses,omitempty"`
	Opportunities []string `json:"opportunities,omitempty"`
	Threats       []string `json:"threats,omitempty"`
	Competitors   []string `json:"competitors,omitempty"`
}

// SWOTCount returns the total number of SWOT items across all four lists.
func (d *Data) SWOTCount() int {
	if d == nil {
		return 0
	}
	return len(d.Strengths) + len(d.Weaknesses) + len(d.Opportunities) + len(d.Threats)
}

// Load reads market data from a JSON file.
func Load(path string) (*Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading market data: %w", err)
	}
	var d Data
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("parsing market data: %w", err)
	}
	return &d, nil
}
