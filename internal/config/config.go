// SPDX-FileCopyrightText: 2026 pvegen
// SPDX-License-Identifier: FSL-1.1-MIT

// Package config provides configuration loading and validation for
// pvegen.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the pvegen configuration.
type Config struct {
	// Schema contains schema retrieval configuration
	Schema SchemaConfig `mapstructure:"schema" yaml:"schema" json:"schema"`

	// Output contains generated-code output configuration
	Output OutputConfig `mapstructure:"output" yaml:"output" json:"output"`

	// Generation contains generation behavior configuration
	Generation GenerationConfig `mapstructure:"generation" yaml:"generation" json:"generation"`

	// Watch contains file watching configuration
	Watch WatchConfig `mapstructure:"watch" yaml:"watch" json:"watch"`

	// Analyze contains analysis report configuration
	Analyze AnalyzeConfig `mapstructure:"analyze" yaml:"analyze" json:"analyze"`
}

// SchemaConfig describes where the schema document comes from.
type SchemaConfig struct {
	// Path is a local apidata.js or .json schema document
	Path string `mapstructure:"path" yaml:"path" json:"path"`

	// URL overrides the download location for fetch
	URL string `mapstructure:"url" yaml:"url" json:"url"`

	// Cache is where fetched schemas are stored
	Cache string `mapstructure:"cache" yaml:"cache" json:"cache"`
}

// OutputConfig describes the generated package.
type OutputConfig struct {
	// Dir is the output directory for generated source
	Dir string `mapstructure:"dir" yaml:"dir" json:"dir"`

	// Package is the generated package name
	Package string `mapstructure:"package" yaml:"package" json:"package"`
}

// GenerationConfig tunes the pipeline.
type GenerationConfig struct {
	// Include restricts generation to matching API paths
	Include []string `mapstructure:"include" yaml:"include" json:"include"`

	// Exclude drops matching API paths
	Exclude []string `mapstructure:"exclude" yaml:"exclude" json:"exclude"`

	// DynamicBound is the family size when no bound is stated
	DynamicBound int `mapstructure:"dynamicBound" yaml:"dynamicBound" json:"dynamicBound"`
}

// WatchConfig contains file watching configuration.
type WatchConfig struct {
	// Debounce is the debounce duration in milliseconds
	Debounce int `mapstructure:"debounce" yaml:"debounce" json:"debounce"`
}

// AnalyzeConfig contains analysis report configuration.
type AnalyzeConfig struct {
	// Format is the report format (text, yaml, json)
	Format string `mapstructure:"format" yaml:"format" json:"format"`
}

// configFileNames is the list of config file names to search for (in order).
var configFileNames = []string{
	"pvegen.yaml",
	"pvegen.json",
	".pvegen.yaml",
	".pvegen.json",
}

// supportedReportFormats is the list of supported analyze formats.
var supportedReportFormats = []string{"text", "yaml", "json"}

// ErrConfigNotFound is returned when no config file is found.
var ErrConfigNotFound = errors.New("config file not found")

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation error: %s: %s", e.Field, e.Message)
}

// ValidationErrors represents multiple validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	if len(e) == 1 {
		return e[0].Error()
	}
	var sb strings.Builder
	sb.WriteString("config validation errors:\n")
	for _, err := range e {
		sb.WriteString("  - ")
		sb.WriteString(err.Field)
		sb.WriteString(": ")
		sb.WriteString(err.Message)
		sb.WriteString("\n")
	}
	return sb.String()
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Schema: SchemaConfig{
			Path:  "apidata.js",
			Cache: filepath.Join("schemas", "apidata.json"),
		},
		Output: OutputConfig{
			Dir:     "pveapi",
			Package: "pveapi",
		},
		Generation: GenerationConfig{
			DynamicBound: 7,
		},
		Watch: WatchConfig{
			Debounce: 500,
		},
		Analyze: AnalyzeConfig{
			Format: "text",
		},
	}
}

// Load loads the configuration from a file.
// It searches for config files in the following order:
// 1. pvegen.yaml
// 2. pvegen.json
// 3. .pvegen.yaml
// 4. .pvegen.json
//
// If configPath is provided, it will use that path instead.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		found := false
		for _, name := range configFileNames {
			if _, err := os.Stat(name); err == nil {
				v.SetConfigFile(name)
				found = true
				break
			}
		}
		if !found {
			return Default(), nil
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// LoadFromPath loads the configuration from a specific directory.
func LoadFromPath(dir string) (*Config, error) {
	for _, name := range configFileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
	}
	return Default(), nil
}

// setDefaults sets the default values for viper.
func setDefaults(v *viper.Viper) {
	v.SetDefault("schema.path", "apidata.js")
	v.SetDefault("schema.url", "")
	v.SetDefault("schema.cache", filepath.Join("schemas", "apidata.json"))
	v.SetDefault("output.dir", "pveapi")
	v.SetDefault("output.package", "pveapi")
	v.SetDefault("generation.dynamicBound", 7)
	v.SetDefault("watch.debounce", 500)
	v.SetDefault("analyze.format", "text")
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs ValidationErrors

	if c.Output.Dir == "" {
		errs = append(errs, ValidationError{
			Field:   "output.dir",
			Message: "must not be empty",
		})
	}
	if c.Output.Package == "" {
		errs = append(errs, ValidationError{
			Field:   "output.package",
			Message: "must not be empty",
		})
	}
	if c.Generation.DynamicBound <= 0 {
		errs = append(errs, ValidationError{
			Field:   "generation.dynamicBound",
			Message: "must be positive",
		})
	}
	if c.Watch.Debounce < 0 {
		errs = append(errs, ValidationError{
			Field:   "watch.debounce",
			Message: "must not be negative",
		})
	}

	valid := false
	for _, format := range supportedReportFormats {
		if c.Analyze.Format == format {
			valid = true
			break
		}
	}
	if !valid {
		errs = append(errs, ValidationError{
			Field: "analyze.format",
			Message: fmt.Sprintf("unsupported format %q (supported: %s)",
				c.Analyze.Format, strings.Join(supportedReportFormats, ", ")),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
