// Package config loads jobtailor settings from a TOML file.
//
// Configuration is explicit: the catalog data path is always supplied here or
// on the command line, never resolved from an implicit process-wide default.
package config

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/vinayprograms/jobtailor/errors"
)

// DefaultDataPath is the posting source used when neither the config file
// nor the command line names one.
const DefaultDataPath = "data/jobs.json"

// Config holds all jobtailor settings.
type Config struct {
	// DataPath is the JSON posting source.
	DataPath string `toml:"data_path"`

	Search SearchConfig `toml:"search"`
	Tailor TailorConfig `toml:"tailor"`
}

// SearchConfig controls search output.
type SearchConfig struct {
	// Limit caps the number of results printed. Zero means no cap.
	Limit int `toml:"limit"`
}

// TailorConfig controls where tailored resumes are written.
type TailorConfig struct {
	// OutputDir, when set, receives tailored resumes that were not given an
	// explicit output path. Empty means write next to the input resume.
	OutputDir string `toml:"output_dir"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		DataPath: DefaultDataPath,
		Search:   SearchConfig{Limit: 10},
	}
}

// Parse decodes a configuration from TOML content. Fields absent from the
// content keep their defaults.
func Parse(content string) (*Config, error) {
	cfg := Default()
	if _, err := toml.Decode(content, cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeMalformed, "parsing config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile loads a configuration from a TOML file.
func LoadFile(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFound("config file not found: %s", path)
		}
		return nil, errors.WrapWithCode(err, errors.CodeIO, "reading config file")
	}
	return Parse(string(content))
}

// Validate checks that all settings are within their contracts.
func (c *Config) Validate() error {
	if c.DataPath == "" {
		return errors.InvalidInput("data_path must not be empty")
	}
	if c.Search.Limit < 0 {
		return errors.InvalidInput("search.limit must not be negative")
	}
	return nil
}
