// Package config loads xmlprops configuration from TOML files and the
// environment.
package config

import (
	"fmt"

	"github.com/teranos/xmlprops/variant"
)

// Config represents the xmlprops configuration
type Config struct {
	// RequiredVersion is a semver constraint the running binary must satisfy, e.g. ">= 0.4"
	RequiredVersion string `mapstructure:"required_version" toml:"required_version,omitempty" yaml:"required_version,omitempty" json:"required_version,omitempty"`

	Generate GenerateConfig `mapstructure:"generate" toml:"generate" yaml:"generate" json:"generate"`
	I18n     I18nConfig     `mapstructure:"i18n" toml:"i18n" yaml:"i18n" json:"i18n"`
	Log      LogConfig      `mapstructure:"log" toml:"log" yaml:"log" json:"log"`
}

// GenerateConfig configures XML to Kotlin generation
type GenerateConfig struct {
	Enabled         bool          `mapstructure:"enabled" toml:"enabled" yaml:"enabled" json:"enabled"`
	Dir             string        `mapstructure:"dir" toml:"dir" yaml:"dir" json:"dir"`                                                 // Markup directory, scanned non-recursively
	Exclude         []string      `mapstructure:"exclude" toml:"exclude" yaml:"exclude" json:"exclude"`                                 // Base names skipped during discovery
	OutDir          string        `mapstructure:"out_dir" toml:"out_dir" yaml:"out_dir" json:"out_dir"`                                 // Root of generated sources
	Workers         int           `mapstructure:"workers" toml:"workers" yaml:"workers" json:"workers"`                                 // Documents generated in parallel
	DefaultVariant  VariantConfig `mapstructure:"default_variant" toml:"default_variant" yaml:"default_variant" json:"default_variant"` // Used when no variant flag is given
	KnownBuildTypes []string      `mapstructure:"known_build_types" toml:"known_build_types" yaml:"known_build_types" json:"known_build_types"`
}

// VariantConfig names a build variant; an empty flavor means none
type VariantConfig struct {
	BuildType string `mapstructure:"build_type" toml:"build_type" yaml:"build_type" json:"build_type"`
	Flavor    string `mapstructure:"flavor" toml:"flavor" yaml:"flavor" json:"flavor"`
}

// I18nConfig configures the string-resource generator
type I18nConfig struct {
	Input   string `mapstructure:"input" toml:"input" yaml:"input" json:"input"` // .properties file
	Package string `mapstructure:"package" toml:"package" yaml:"package" json:"package"`
	Object  string `mapstructure:"object" toml:"object" yaml:"object" json:"object"`
	OutDir  string `mapstructure:"out_dir" toml:"out_dir" yaml:"out_dir" json:"out_dir"`
}

// LogConfig configures logging output
type LogConfig struct {
	JSON bool `mapstructure:"json" toml:"json" yaml:"json" json:"json"`
}

// Context returns the variant as a matcher context.
func (v VariantConfig) Context() variant.Context {
	return variant.Context{BuildType: v.BuildType, Flavor: v.Flavor}
}

// String returns a string representation of the config
func (c *Config) String() string {
	return fmt.Sprintf("Config{Generate: {Dir: %s, OutDir: %s, Variant: %s}, I18n: {Input: %s}}",
		c.Generate.Dir, c.Generate.OutDir, c.Generate.DefaultVariant.Context(), c.I18n.Input)
}
