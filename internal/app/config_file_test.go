package app

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	return path
}

func TestLoadConfigFile_YAML(t *testing.T) {
	path := writeTemp(t, "dataset.yaml", `
url: https://example.gov/notices
output: layoffs.csv
table:
  selector: "table#notices"
  skipHeader: 1
columns: [company, location, date, employees_laid_off, url]
linkColumn: url
fetch:
  timeout: 10s
  userAgent: workshop-bot/1.0
`)
	fc, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fc.URL != "https://example.gov/notices" {
		t.Fatalf("url mismatch: %q", fc.URL)
	}
	if fc.Table.Selector != "table#notices" || fc.Table.SkipHeader != 1 {
		t.Fatalf("table section mismatch: %+v", fc.Table)
	}
	if len(fc.Columns) != 5 || fc.LinkColumn != "url" {
		t.Fatalf("schema mismatch: %v link=%q", fc.Columns, fc.LinkColumn)
	}
	if fc.Fetch.Timeout != Duration(10*time.Second) {
		t.Fatalf("timeout mismatch: %v", fc.Fetch.Timeout)
	}
}

func TestLoadConfigFile_JSON(t *testing.T) {
	path := writeTemp(t, "dataset.json", `{
  "url": "https://example.gov/notices",
  "output": "layoffs.csv",
  "columns": ["first", "last", "affiliation"]
}`)
	fc, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"first", "last", "affiliation"}
	if !reflect.DeepEqual(fc.Columns, want) {
		t.Fatalf("columns mismatch: %v", fc.Columns)
	}
}

func TestApplyFileConfig_FlagsWin(t *testing.T) {
	cfg := Config{
		URL:        "https://flags.example.com",
		OutputPath: OutputDefault,
		UserAgent:  UserAgentDefault,
	}
	var fc FileConfig
	fc.URL = "https://file.example.com"
	fc.Output = "from-file.csv"
	fc.Columns = []string{"a", "b"}
	fc.Fetch.UserAgent = "file-agent/1.0"

	ApplyFileConfig(&cfg, fc)

	if cfg.URL != "https://flags.example.com" {
		t.Fatalf("explicit flag should win, got %q", cfg.URL)
	}
	if cfg.OutputPath != "from-file.csv" {
		t.Fatalf("default output should yield to file, got %q", cfg.OutputPath)
	}
	if cfg.UserAgent != "file-agent/1.0" {
		t.Fatalf("default ua should yield to file, got %q", cfg.UserAgent)
	}
	if !reflect.DeepEqual(cfg.Columns, []string{"a", "b"}) {
		t.Fatalf("columns should come from file, got %v", cfg.Columns)
	}
}

func TestValidateConfig(t *testing.T) {
	valid := Config{
		URL:        "https://example.gov/notices",
		OutputPath: "out.csv",
		Columns:    []string{"company", "url"},
		LinkColumn: "url",
	}
	if err := ValidateConfig(valid); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing url", func(c *Config) { c.URL = "" }},
		{"missing output", func(c *Config) { c.OutputPath = "" }},
		{"no columns", func(c *Config) { c.Columns = nil }},
		{"negative skip", func(c *Config) { c.SkipHeaderRows = -1 }},
		{"unknown link column", func(c *Config) { c.LinkColumn = "nope" }},
	}
	for _, tc := range cases {
		cfg := valid
		cfg.Columns = append([]string{}, valid.Columns...)
		tc.mutate(&cfg)
		if err := ValidateConfig(cfg); err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
	}
}
