package config

import (
	"github.com/Masterminds/semver/v3"

	"github.com/teranos/xmlprops/errors"
)

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	g := c.Generate

	if c.RequiredVersion != "" {
		if _, err := semver.NewConstraint(c.RequiredVersion); err != nil {
			return errors.Wrapf(err, "invalid required_version %q", c.RequiredVersion)
		}
	}

	if g.Workers <= 0 {
		return errors.Newf("generate.workers must be > 0, got %d", g.Workers)
	}

	// Directories only matter when generation is enabled
	if g.Enabled {
		if g.Dir == "" {
			return errors.New("generate.dir cannot be empty when enabled")
		}
		if g.OutDir == "" {
			return errors.New("generate.out_dir cannot be empty when enabled")
		}
	}

	if g.DefaultVariant.BuildType == "" {
		return errors.New("generate.default_variant.build_type cannot be empty")
	}

	if len(g.KnownBuildTypes) == 0 {
		return errors.New("generate.known_build_types cannot be empty")
	}
	for i, bt := range g.KnownBuildTypes {
		if bt == "" {
			return errors.Newf("generate.known_build_types[%d] cannot be empty", i)
		}
	}

	for i, ex := range g.Exclude {
		if ex == "" {
			return errors.Newf("generate.exclude[%d] cannot be empty", i)
		}
	}

	if c.I18n.Object == "" {
		return errors.New("i18n.object cannot be empty")
	}
	if c.I18n.OutDir == "" {
		return errors.New("i18n.out_dir cannot be empty")
	}

	return nil
}
