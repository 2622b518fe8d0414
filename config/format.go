package config

import (
	"encoding/json"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/teranos/xmlprops/errors"
)

// Output formats accepted by Marshal
const (
	FormatTOML = "toml"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Formats lists the supported output formats
var Formats = []string{FormatTOML, FormatJSON, FormatYAML}

// Marshal renders cfg in the named format
func Marshal(cfg *Config, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case FormatTOML:
		return toml.Marshal(cfg)
	case FormatJSON:
		return json.MarshalIndent(cfg, "", "  ")
	case FormatYAML, "yml":
		return yaml.Marshal(cfg)
	default:
		return nil, errors.WithHintf(
			errors.Newf("unknown format %q", format),
			"use one of: %s", strings.Join(Formats, ", "),
		)
	}
}
