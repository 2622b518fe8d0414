package commands

import (
	"github.com/spf13/cobra"

	"github.com/teranos/xmlprops/config"
	"github.com/teranos/xmlprops/errors"
	"github.com/teranos/xmlprops/logger"
	"github.com/teranos/xmlprops/variant"
	"github.com/teranos/xmlprops/version"
)

// DefaultProject is the Gradle project path used when matching task names
const DefaultProject = ":app"

// configPath returns the value of the persistent --config flag
func configPath(cmd *cobra.Command) string {
	path, _ := cmd.Flags().GetString("config")
	return path
}

// verbosity returns the count of -v flags
func verbosity(cmd *cobra.Command) int {
	v, _ := cmd.Flags().GetCount("verbose")
	return v
}

// JSONLogs reports whether logs should be JSON: the --log-json flag wins,
// otherwise log.json from configuration. Config errors are reported later
// by the command itself.
func JSONLogs(cmd *cobra.Command) bool {
	if cmd.Flags().Changed("log-json") {
		on, _ := cmd.Flags().GetBool("log-json")
		return on
	}
	cfg, err := config.Load(configPath(cmd))
	if err != nil {
		return false
	}
	return cfg.Log.JSON
}

// loadConfig loads, validates and version-checks the configuration
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath(cmd))
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	if err := version.Get().Satisfies(cfg.RequiredVersion); err != nil {
		return nil, err
	}

	if logger.ShouldOutput(verbosity(cmd), logger.OutputConfig) {
		logger.Debugw("Configuration loaded",
			"config", cfg.String())
	}
	return cfg, nil
}

// variantFlags holds the variant selection flags shared by generate,
// check and watch
type variantFlags struct {
	buildType string
	flavor    string
	tasks     []string
	project   string
}

func addVariantFlags(cmd *cobra.Command, f *variantFlags) {
	cmd.Flags().StringVarP(&f.buildType, "build-type", "b", "", "Build type to generate for (default: generate.default_variant)")
	cmd.Flags().StringVarP(&f.flavor, "flavor", "f", "", "Product flavor to generate for")
	cmd.Flags().StringSliceVarP(&f.tasks, "task", "t", nil, "Requested build tasks to derive the variant from, e.g. :app:assembleFreeRelease")
	cmd.Flags().StringVar(&f.project, "project", DefaultProject, "Project path used when matching --task names")
}

// resolveVariant picks the variant in order: --task, --build-type,
// configured default. --flavor overrides the flavor of the latter two.
func resolveVariant(f variantFlags, cfg *config.Config) (variant.Context, error) {
	if len(f.tasks) > 0 {
		ctx, ok := variant.ParseTaskRequest(f.project, f.tasks, cfg.Generate.KnownBuildTypes)
		if !ok {
			return variant.Context{}, errors.WithHintf(
				errors.Newf("no %s task in %v names a known build type", f.project, f.tasks),
				"known build types are %v; extend generate.known_build_types or pass --build-type", cfg.Generate.KnownBuildTypes,
			)
		}
		return ctx, nil
	}

	ctx := cfg.Generate.DefaultVariant.Context()
	if f.buildType != "" {
		ctx = variant.Context{BuildType: f.buildType}
	}
	if f.flavor != "" {
		ctx.Flavor = f.flavor
	}
	return ctx, nil
}
