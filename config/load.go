package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/teranos/xmlprops/errors"
)

const (
	// EnvPrefix prefixes environment overrides, e.g. XMLPROPS_GENERATE_OUT_DIR
	EnvPrefix = "XMLPROPS"

	// FileName is the project and user config file name
	FileName = "xmlprops.toml"

	// SystemConfigPath is the lowest-precedence config file
	SystemConfigPath = "/etc/xmlprops/xmlprops.toml"
)

// Load reads the configuration. With an explicit path only that file is
// read; otherwise the system, user and project files are merged in that
// order. Environment variables override files in both cases.
func Load(configPath string) (*Config, error) {
	v, err := NewViper(configPath)
	if err != nil {
		return nil, err
	}
	return LoadWithViper(v)
}

// NewViper builds a Viper instance with defaults, environment binding and
// the config files selected as described for Load.
func NewViper(configPath string) (*viper.Viper, error) {
	v := viper.New()

	// Set up environment variable binding
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	if configPath != "" {
		if err := mergeFile(v, configPath); err != nil {
			return nil, err
		}
		return v, nil
	}

	for _, path := range SearchPaths() {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := mergeFile(v, path); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// LoadWithViper loads configuration using a provided Viper instance
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	return &config, nil
}

// LoadFromFile loads configuration from a specific file path, on top of
// defaults and without environment overrides
func LoadFromFile(configPath string) (*Config, error) {
	v := viper.New()
	SetDefaults(v)

	if err := mergeFile(v, configPath); err != nil {
		return nil, err
	}
	return LoadWithViper(v)
}

// SearchPaths returns the config files consulted by Load, lowest precedence
// first. The project file is the nearest xmlprops.toml walking up from the
// working directory.
func SearchPaths() []string {
	paths := []string{SystemConfigPath}

	if user := UserConfigPath(); user != "" {
		paths = append(paths, user)
	}

	if wd, err := os.Getwd(); err == nil {
		if project := FindProjectConfig(wd); project != "" {
			paths = append(paths, project)
		}
	}
	return paths
}

// UserConfigPath returns ~/.xmlprops/xmlprops.toml, or empty string when
// the home directory is unknown
func UserConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".xmlprops", FileName)
}

// FindProjectConfig searches for xmlprops.toml in dir and its parents.
// Returns the path to the first config file found, or empty string if none found
func FindProjectConfig(dir string) string {
	for {
		path := filepath.Join(dir, FileName)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root, stop searching
			return ""
		}
		dir = parent
	}
}

// mergeFile merges one TOML file into v's config layer
func mergeFile(v *viper.Viper, path string) error {
	fileViper := viper.New()
	fileViper.SetConfigFile(path)
	fileViper.SetConfigType("toml")

	if err := fileViper.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "failed to read config file %s", path)
	}
	if err := v.MergeConfigMap(fileViper.AllSettings()); err != nil {
		return errors.Wrapf(err, "failed to merge config file %s", path)
	}
	return nil
}
