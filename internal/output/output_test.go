package output

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/Dicklesworthstone/sitescope/internal/analyzer"
	"github.com/Dicklesworthstone/sitescope/internal/clonability"
	"github.com/Dicklesworthstone/sitescope/internal/config"
	"github.com/Dicklesworthstone/sitescope/internal/detect"
)

func sampleAssessment(t *testing.T) *analyzer.Assessment {
	t.Helper()
	a, err := analyzer.New(config.Default(), nil)
	if err != nil {
		t.Fatalf("analyzer.New: %v", err)
	}
	techs := []detect.Technology{
		{Name: "React", Categories: []string{"frontend framework"}, Confidence: 100},
		{Name: "Node.js", Categories: []string{"backend runtime"}, Confidence: 90},
	}
	return a.Run(context.Background(), techs, nil, clonability.ResourceEstimates{})
}

func TestAssessmentRendersAllSections(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(&buf, "never")
	f.Assessment(sampleAssessment(t))

	out := buf.String()
	for _, want := range []string{
		"Detected Technologies", "React",
		"Complexity", "Clonability",
		"Technical complexity", "Recommendations", "First year",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q", want)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("color disabled but ANSI escapes present")
	}
}

func TestJSONMode(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(&buf, "never")
	if err := f.JSON(sampleAssessment(t)); err != nil {
		t.Fatalf("JSON: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, `"clonability"`) || !strings.Contains(out, `"insights"`) {
		t.Errorf("unexpected JSON output: %s", out[:min(len(out), 200)])
	}
}

func TestMarkdownBuilder(t *testing.T) {
	md := Markdown(sampleAssessment(t))
	for _, want := range []string{
		"# Clonability Assessment",
		"## Detected Technologies",
		"## Complexity:",
		"## Clonability:",
		"### Estimates",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q", want)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"somewhat longer text", 10, "somewha..."},
		{"anything", 0, ""},
	}
	for _, tc := range tests {
		if got := Truncate(tc.in, tc.max); got != tc.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tc.in, tc.max, got, tc.want)
		}
	}
}

func TestCountStr(t *testing.T) {
	if got := CountStr(1, "technology", "technologies"); got != "1 technology" {
		t.Errorf("got %q", got)
	}
	if got := CountStr(3, "technology", "technologies"); got != "3 technologies" {
		t.Errorf("got %q", got)
	}
}
