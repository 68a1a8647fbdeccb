package cli

import (
	"os"
	"path/filepath"
	"testing"
)

// Commands share the package-level root, so these tests run sequentially.
func runCommand(args ...string) error {
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func writeReport(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "report.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCatalogLookup(t *testing.T) {
	if err := runCommand("catalog", "react"); err != nil {
		t.Errorf("catalog react: %v", err)
	}
	if err := runCommand("catalog"); err != nil {
		t.Errorf("catalog listing: %v", err)
	}
	if err := runCommand("catalog", "not-a-real-technology-zzz"); err == nil {
		t.Error("unknown technology should fail")
	}
}

func TestAnalyzeCommand(t *testing.T) {
	report := writeReport(t, `{"technologies": [
		{"name": "React", "categories": ["frontend framework"], "confidence": 100},
		{"name": "Node.js", "categories": ["backend runtime"], "confidence": 90}
	]}`)

	if err := runCommand("analyze", report); err != nil {
		t.Errorf("analyze: %v", err)
	}
}

func TestAnalyzeBadInputs(t *testing.T) {
	if err := runCommand("analyze", "/nonexistent/report.json"); err == nil {
		t.Error("missing report should fail")
	}

	bad := writeReport(t, `{"technologies": "nope"}`)
	if err := runCommand("analyze", bad); err == nil {
		t.Error("malformed report should fail")
	}
}

func TestInsightsCommand(t *testing.T) {
	report := writeReport(t, `[{"name": "Webflow", "confidence": 100}]`)
	if err := runCommand("insights", report); err != nil {
		t.Errorf("insights: %v", err)
	}
}

func TestStatsCommand(t *testing.T) {
	if err := runCommand("stats"); err != nil {
		t.Errorf("stats: %v", err)
	}
}

func TestMalformedConfigIsReported(t *testing.T) {
	defer func() { cfgFile = "" }()

	bad := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(bad, []byte("cache = }}}"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := runCommand("--config", bad, "stats"); err == nil {
		t.Error("malformed config should fail, not silently use defaults")
	}

	missing := filepath.Join(t.TempDir(), "missing.toml")
	if err := runCommand("--config", missing, "stats"); err != nil {
		t.Errorf("missing config should fall back to defaults: %v", err)
	}
}

func TestVersionCommand(t *testing.T) {
	if err := runCommand("version"); err != nil {
		t.Errorf("version: %v", err)
	}
}
