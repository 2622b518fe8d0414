package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/xmlprops/variant"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	// Isolated viper instance without user/system config
	v := viper.New()
	SetDefaults(v)

	cfg, err := LoadWithViper(v)
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Equal(t, variant.Context{BuildType: DefaultBuildType}, cfg.Generate.DefaultVariant.Context())
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
required_version = ">= 0.3"

[generate]
dir = "markup"
exclude = ["draft.xml"]
workers = 2
known_build_types = ["debug", "release", "staging"]

[generate.default_variant]
build_type = "release"
flavor = "free"
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, ">= 0.3", cfg.RequiredVersion)
	assert.Equal(t, "markup", cfg.Generate.Dir)
	assert.Equal(t, []string{"draft.xml"}, cfg.Generate.Exclude)
	assert.Equal(t, 2, cfg.Generate.Workers)
	assert.Equal(t, []string{"debug", "release", "staging"}, cfg.Generate.KnownBuildTypes)
	assert.Equal(t, variant.Context{BuildType: "release", Flavor: "free"}, cfg.Generate.DefaultVariant.Context())

	// Untouched sections keep their defaults
	assert.Equal(t, DefaultOutDir, cfg.Generate.OutDir)
	assert.Equal(t, DefaultI18nObject, cfg.I18n.Object)
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoadFromFile_Malformed(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "[generate\nworkers = ")
	_, err := LoadFromFile(path)
	assert.Error(t, err)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
[generate]
workers = 2
out_dir = "from-file"
`)
	t.Setenv("XMLPROPS_GENERATE_WORKERS", "8")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Generate.Workers)
	assert.Equal(t, "from-file", cfg.Generate.OutDir)
}

func TestFindProjectConfig(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "app", "src", "main")
	require.NoError(t, os.MkdirAll(nested, 0755))

	assert.Empty(t, FindProjectConfig(nested))

	path := writeConfig(t, root, "[generate]\n")
	assert.Equal(t, path, FindProjectConfig(nested))
	assert.Equal(t, path, FindProjectConfig(root))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "defaults are valid", mutate: func(c *Config) {}},
		{
			name:    "zero workers",
			mutate:  func(c *Config) { c.Generate.Workers = 0 },
			wantErr: "generate.workers",
		},
		{
			name:    "empty dir when enabled",
			mutate:  func(c *Config) { c.Generate.Dir = "" },
			wantErr: "generate.dir",
		},
		{
			name: "empty dir when disabled",
			mutate: func(c *Config) {
				c.Generate.Enabled = false
				c.Generate.Dir = ""
				c.Generate.OutDir = ""
			},
		},
		{
			name:    "empty out_dir",
			mutate:  func(c *Config) { c.Generate.OutDir = "" },
			wantErr: "generate.out_dir",
		},
		{
			name:    "empty default build type",
			mutate:  func(c *Config) { c.Generate.DefaultVariant.BuildType = "" },
			wantErr: "build_type",
		},
		{
			name:    "no known build types",
			mutate:  func(c *Config) { c.Generate.KnownBuildTypes = nil },
			wantErr: "known_build_types",
		},
		{
			name:    "blank known build type",
			mutate:  func(c *Config) { c.Generate.KnownBuildTypes = []string{"debug", ""} },
			wantErr: "known_build_types[1]",
		},
		{
			name:    "blank exclude",
			mutate:  func(c *Config) { c.Generate.Exclude = []string{""} },
			wantErr: "generate.exclude[0]",
		},
		{
			name:    "empty i18n object",
			mutate:  func(c *Config) { c.I18n.Object = "" },
			wantErr: "i18n.object",
		},
		{
			name:    "empty i18n out_dir",
			mutate:  func(c *Config) { c.I18n.OutDir = "" },
			wantErr: "i18n.out_dir",
		},
		{
			name:    "bad required_version",
			mutate:  func(c *Config) { c.RequiredVersion = "soon" },
			wantErr: "required_version",
		},
		{
			name:   "good required_version",
			mutate: func(c *Config) { c.RequiredVersion = ">= 0.3, < 1" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", FileName)

	cfg := Default()
	cfg.Generate.Dir = "markup"
	cfg.Generate.DefaultVariant.Flavor = "paid"
	require.NoError(t, Save(path, cfg))

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestSave_RotatesBackups(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)

	for i := 1; i <= 5; i++ {
		cfg := Default()
		cfg.Generate.Workers = i
		require.NoError(t, Save(path, cfg))
	}

	workersIn := func(p string) int {
		cfg, err := LoadFromFile(p)
		require.NoError(t, err)
		return cfg.Generate.Workers
	}

	assert.Equal(t, 5, workersIn(path))
	assert.Equal(t, 4, workersIn(BackupPath(path, 1)))
	assert.Equal(t, 3, workersIn(BackupPath(path, 2)))
	assert.Equal(t, 2, workersIn(BackupPath(path, 3)))
	assert.NoFileExists(t, BackupPath(path, 4))
}

func TestMarshal(t *testing.T) {
	cfg := Default()

	out, err := Marshal(cfg, FormatTOML)
	require.NoError(t, err)
	assert.Contains(t, string(out), "[generate]")
	assert.NotContains(t, string(out), "required_version")

	out, err = Marshal(cfg, "JSON")
	require.NoError(t, err)
	assert.Contains(t, string(out), `"out_dir": "build/generated/xmlprops"`)

	out, err = Marshal(cfg, FormatYAML)
	require.NoError(t, err)
	assert.Contains(t, string(out), "generate:")

	_, err = Marshal(cfg, "xml")
	assert.Error(t, err)
}
