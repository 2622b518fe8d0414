package commands

import (
	"os"
	"path/filepath"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/xmlprops/config"
	"github.com/teranos/xmlprops/errors"
	"github.com/teranos/xmlprops/logger"
	"github.com/teranos/xmlprops/pipeline"
	"github.com/teranos/xmlprops/variant"
	"github.com/teranos/xmlprops/xmlgen"
)

// GenerateCmd generates Kotlin sources for one build variant
var GenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate Kotlin sources for a build variant",
	Long: `Generate one Kotlin file for every markup document whose match rule
accepts the selected build variant.

The variant is taken from --task, then --build-type/--flavor, then
generate.default_variant in configuration. Documents that do not match are
skipped and their previous output is left in place. A failing document
never stops the others; the command exits non-zero if any document failed.

Examples:
  xmlprops generate                                # Default variant from config
  xmlprops generate -b release -f free             # Explicit variant
  xmlprops generate -t :app:assembleFreeRelease    # Variant from a Gradle task
  xmlprops generate --dir markup --out-dir gen     # Override directories`,
	RunE: runGenerate,
}

var (
	generateVariant variantFlags
	generateDirs    dirFlags
)

// dirFlags override the generate.* directory settings
type dirFlags struct {
	dir     string
	outDir  string
	workers int
}

func addDirFlags(cmd *cobra.Command, f *dirFlags) {
	cmd.Flags().StringVar(&f.dir, "dir", "", "Markup directory (default: generate.dir)")
	cmd.Flags().StringVarP(&f.outDir, "out-dir", "o", "", "Output root (default: generate.out_dir)")
	cmd.Flags().IntVarP(&f.workers, "workers", "w", 0, "Documents generated in parallel (default: generate.workers)")
}

// apply overlays the flags onto cfg
func (f dirFlags) apply(cfg *config.Config) {
	if f.dir != "" {
		cfg.Generate.Dir = f.dir
	}
	if f.outDir != "" {
		cfg.Generate.OutDir = f.outDir
	}
	if f.workers > 0 {
		cfg.Generate.Workers = f.workers
	}
}

func init() {
	addVariantFlags(GenerateCmd, &generateVariant)
	addDirFlags(GenerateCmd, &generateDirs)
}

// setup is the shared preamble of generate, check and watch
func setup(cmd *cobra.Command, vf variantFlags, df dirFlags) (*config.Config, variant.Context, *pipeline.Runner, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, variant.Context{}, nil, err
	}
	df.apply(cfg)

	vctx, err := resolveVariant(vf, cfg)
	if err != nil {
		return nil, variant.Context{}, nil, err
	}

	runner := pipeline.NewRunner(xmlgen.NewGenerator(), cfg.Generate.OutDir, cfg.Generate.Workers,
		logger.ComponentLogger("pipeline"))
	return cfg, vctx, runner, nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, vctx, runner, err := setup(cmd, generateVariant, generateDirs)
	if err != nil {
		return err
	}

	if !cfg.Generate.Enabled {
		pterm.Info.Println("Generation is disabled (generate.enabled = false)")
		return nil
	}

	docs, err := pipeline.Discover(cfg.Generate.Dir, cfg.Generate.Exclude, logger.ComponentLogger("discover"))
	if err != nil {
		return err
	}

	v := verbosity(cmd)
	if logger.ShouldOutput(v, logger.OutputDiscovery) {
		pterm.Info.Printf("Found %d markup documents in %s for variant %s\n", len(docs), cfg.Generate.Dir, vctx)
	}

	start := time.Now()
	report := runner.Run(cmd.Context(), docs, vctx)
	printReport(report, v, time.Since(start))

	return reportError(report)
}

// printReport writes per-document lines and the summary to the terminal
func printReport(report *pipeline.Report, v int, elapsed time.Duration) {
	for _, o := range report.Outcomes {
		name := filepath.Base(o.Document)
		switch {
		case o.Failed():
			if logger.ShouldOutput(v, logger.OutputErrors) {
				pterm.Error.Printf("%s: %v\n", name, o.Err)
				for _, hint := range errors.GetAllHints(o.Err) {
					pterm.Printf("  %s %s\n", pterm.Gray("hint:"), hint)
				}
			}
		case o.Result.Emitted():
			if logger.ShouldOutput(v, logger.OutputResults) {
				pterm.Success.Printf("%s -> %s\n", name, pterm.LightCyan(o.Result.Path))
			}
			if logger.ShouldOutput(v, logger.OutputSource) {
				if src, err := os.ReadFile(o.Result.Path); err == nil {
					pterm.Println(pterm.Gray(string(src)))
				}
			}
		default:
			if logger.ShouldOutput(v, logger.OutputSkips) {
				pterm.Printf("%s %s (%s)\n", pterm.Gray("skipped"), name, o.Result.Reason)
			}
		}
	}

	if !logger.ShouldOutput(v, logger.OutputSummary) {
		return
	}
	summary := pterm.Sprintf("%s emitted, %s skipped, %s failed",
		pterm.Green(report.Emitted()), pterm.Yellow(report.Skipped()), pterm.Red(report.Failed()))
	if logger.ShouldOutput(v, logger.OutputTiming) {
		summary += pterm.Sprintf(" in %s", elapsed.Round(time.Millisecond))
	}
	pterm.Println(summary)
}

// reportError turns failed documents into the command's error
func reportError(report *pipeline.Report) error {
	if report.OK() {
		return nil
	}
	return errors.Newf("%d of %d documents failed", report.Failed(), len(report.Outcomes))
}
