package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	yaml "gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so config files can write "10s" instead of
// nanosecond integers. Both forms are accepted.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err == nil {
		v, perr := time.ParseDuration(s)
		if perr != nil {
			return fmt.Errorf("invalid duration %q", s)
		}
		*d = Duration(v)
		return nil
	}
	var n int64
	if err := value.Decode(&n); err != nil {
		return err
	}
	*d = Duration(n)
	return nil
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		v, err := time.ParseDuration(s)
		if err != nil {
			return err
		}
		*d = Duration(v)
		return nil
	}
	var n int64
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*d = Duration(n)
	return nil
}

// FileConfig is the dataset-file schema. Each workshop dataset is one file
// naming the page, the table, and the output columns; nested sections map
// naturally to flags.
type FileConfig struct {
	URL       string `yaml:"url" json:"url"`
	Output    string `yaml:"output" json:"output"`
	OutputPDF string `yaml:"outputPDF" json:"outputPDF"`

	Table struct {
		Selector   string `yaml:"selector" json:"selector"`
		SkipHeader int    `yaml:"skipHeader" json:"skipHeader"`
	} `yaml:"table" json:"table"`

	Columns    []string `yaml:"columns" json:"columns"`
	LinkColumn string   `yaml:"linkColumn" json:"linkColumn"`

	Fetch struct {
		Timeout   Duration `yaml:"timeout" json:"timeout"`
		UserAgent string   `yaml:"userAgent" json:"userAgent"`
	} `yaml:"fetch" json:"fetch"`

	Verbose bool `yaml:"verbose" json:"verbose"`
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		// Try YAML then JSON
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// ApplyFileConfig overlays values from FileConfig into cfg for any fields
// that are currently unset/zero in cfg. Flags should already have been
// parsed; the file supplies defaults while explicit flags win.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}
	if cfg.URL == "" && fc.URL != "" {
		cfg.URL = fc.URL
	}
	if (cfg.OutputPath == "" || cfg.OutputPath == OutputDefault) && fc.Output != "" {
		cfg.OutputPath = fc.Output
	}
	if cfg.OutputPDFPath == "" && fc.OutputPDF != "" {
		cfg.OutputPDFPath = fc.OutputPDF
	}

	if cfg.TableSelector == "" && fc.Table.Selector != "" {
		cfg.TableSelector = fc.Table.Selector
	}
	if cfg.SkipHeaderRows == 0 && fc.Table.SkipHeader > 0 {
		cfg.SkipHeaderRows = fc.Table.SkipHeader
	}

	if len(cfg.Columns) == 0 && len(fc.Columns) > 0 {
		cfg.Columns = append([]string{}, fc.Columns...)
	}
	if cfg.LinkColumn == "" && fc.LinkColumn != "" {
		cfg.LinkColumn = fc.LinkColumn
	}

	if cfg.Timeout == 0 && fc.Fetch.Timeout > 0 {
		cfg.Timeout = time.Duration(fc.Fetch.Timeout)
	}
	if (cfg.UserAgent == "" || cfg.UserAgent == UserAgentDefault) && fc.Fetch.UserAgent != "" {
		cfg.UserAgent = fc.Fetch.UserAgent
	}

	if !cfg.Verbose && fc.Verbose {
		cfg.Verbose = true
	}
}

// Flag defaults shared by main and the file overlay so the overlay can tell
// an untouched flag from an explicit one.
const (
	OutputDefault    = "out.csv"
	UserAgentDefault = "tablegrab/1.0 (+https://github.com/tablegrab/tablegrab)"
)

// ValidateConfig performs minimal schema validation for required settings.
func ValidateConfig(cfg Config) error {
	if cfg.URL == "" {
		return errors.New("config: url is required")
	}
	if cfg.OutputPath == "" {
		return errors.New("config: output path is required")
	}
	if len(cfg.Columns) == 0 {
		return errors.New("config: at least one column is required")
	}
	if cfg.SkipHeaderRows < 0 {
		return errors.New("config: negative header skip is not allowed")
	}
	if cfg.LinkColumn != "" {
		found := false
		for _, c := range cfg.Columns {
			if c == cfg.LinkColumn {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("config: link column %q is not among the declared columns", cfg.LinkColumn)
		}
	}
	return nil
}
