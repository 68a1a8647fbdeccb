// Package detect defines the technology detection types consumed by the
// scoring pipeline. Detection itself happens in an external collaborator;
// this package only carries its output and knows how to read a saved report.
package detect

import (
	"encoding/json"
	"fmt"
	"os"
)

// Technology is a single technology detected on a target website.
// Instances are immutable inputs to the pipeline.
type Technology struct {
	Name       string   `json:"name"`
	Categories []string `json:"categories,omitempty"`
	Confidence int      `json:"confidence"` // 0-100
	Version    string   `json:"version,omitempty"`
}

// report is the envelope format some detectors emit.
type report struct {
	Technologies []Technology `json:"technologies"`
}

// LoadReport reads a detector report from path. Both a bare JSON array and
// a {"technologies": [...]} envelope are accepted.
func LoadReport(path string) ([]Technology, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading detection report: %w", err)
	}
	return ParseReport(data)
}

// ParseReport decodes detector output from raw JSON.
func ParseReport(data []byte) ([]Technology, error) {
	var techs []Technology
	if err := json.Unmarshal(data, &techs); err == nil {
		return techs, nil
	}

	var r report
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parsing detection report: %w", err)
	}
	return r.Technologies, nil
}

// Names returns the technology names in detection order.
func Names(techs []Technology) []string {
	names := make([]string, len(techs))
	for i, t := range techs {
		names[i] = t.Name
	}
	return names
}
