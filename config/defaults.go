package config

import (
	"github.com/spf13/viper"
)

// Default values shared by SetDefaults and Default
const (
	DefaultDir       = "resources"
	DefaultOutDir    = "build/generated/xmlprops"
	DefaultWorkers   = 4
	DefaultBuildType = "debug"

	DefaultI18nInput   = "src/main/resources/i18n/string.properties"
	DefaultI18nPackage = "io.i18n.resources"
	DefaultI18nObject  = "Strings"
	DefaultI18nOutDir  = "build/generated/i18n"
)

// DefaultKnownBuildTypes are the build types recognized in task names
var DefaultKnownBuildTypes = []string{"debug", "release"}

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	v.SetDefault("required_version", "")

	// Generation defaults
	v.SetDefault("generate.enabled", true)
	v.SetDefault("generate.dir", DefaultDir)
	v.SetDefault("generate.exclude", []string{})
	v.SetDefault("generate.out_dir", DefaultOutDir)
	v.SetDefault("generate.workers", DefaultWorkers)
	v.SetDefault("generate.default_variant.build_type", DefaultBuildType)
	v.SetDefault("generate.default_variant.flavor", "")
	v.SetDefault("generate.known_build_types", DefaultKnownBuildTypes)

	// i18n defaults
	v.SetDefault("i18n.input", DefaultI18nInput)
	v.SetDefault("i18n.package", DefaultI18nPackage)
	v.SetDefault("i18n.object", DefaultI18nObject)
	v.SetDefault("i18n.out_dir", DefaultI18nOutDir)

	// Logging defaults
	v.SetDefault("log.json", false)
}

// Default returns the configuration with every default applied
func Default() *Config {
	return &Config{
		Generate: GenerateConfig{
			Enabled:         true,
			Dir:             DefaultDir,
			Exclude:         []string{},
			OutDir:          DefaultOutDir,
			Workers:         DefaultWorkers,
			DefaultVariant:  VariantConfig{BuildType: DefaultBuildType},
			KnownBuildTypes: append([]string(nil), DefaultKnownBuildTypes...),
		},
		I18n: I18nConfig{
			Input:   DefaultI18nInput,
			Package: DefaultI18nPackage,
			Object:  DefaultI18nObject,
			OutDir:  DefaultI18nOutDir,
		},
	}
}
