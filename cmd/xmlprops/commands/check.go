package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/xmlprops/errors"
	"github.com/teranos/xmlprops/logger"
	"github.com/teranos/xmlprops/pipeline"
)

// CheckCmd verifies that generated sources match the markup
var CheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify generated sources are up to date",
	Long: `Regenerate every markup document into a temporary directory and compare
the result with the output directory. Stale and missing files are reported
with unified diffs; nothing under the output directory is modified.

Files in the output directory that no document produces are ignored.

Examples:
  xmlprops check                    # Check the default variant
  xmlprops check -b release -v      # Check release and show diffs`,
	RunE: runCheck,
}

var (
	checkVariant variantFlags
	checkDirs    dirFlags
)

func init() {
	addVariantFlags(CheckCmd, &checkVariant)
	addDirFlags(CheckCmd, &checkDirs)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, vctx, runner, err := setup(cmd, checkVariant, checkDirs)
	if err != nil {
		return err
	}

	docs, err := pipeline.Discover(cfg.Generate.Dir, cfg.Generate.Exclude, logger.ComponentLogger("discover"))
	if err != nil {
		return err
	}

	result, err := runner.Check(cmd.Context(), docs, vctx)
	if err != nil {
		return err
	}

	v := verbosity(cmd)
	for _, o := range result.Report.Failures() {
		pterm.Error.Printf("%s: %v\n", o.Document, o.Err)
	}
	for _, d := range result.Differences {
		pterm.Warning.Printf("%s %s\n", d.Drift, pterm.LightCyan(d.RelPath))
		if logger.ShouldOutput(v, logger.OutputSkips) && d.Diff != "" {
			pterm.Println(d.Diff)
		}
	}

	if result.UpToDate() {
		pterm.Success.Printf("Generated sources for %s are up to date\n", vctx)
		return nil
	}
	if err := reportError(result.Report); err != nil {
		return err
	}
	return errors.WithHint(
		errors.Newf("%d generated files are out of date", len(result.Differences)),
		"run xmlprops generate with the same variant",
	)
}
