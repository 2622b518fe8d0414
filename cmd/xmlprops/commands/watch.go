package commands

import (
	"os"
	"path/filepath"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/xmlprops/logger"
	"github.com/teranos/xmlprops/pipeline"
	"github.com/teranos/xmlprops/watch"
)

// WatchCmd regenerates documents as they change
var WatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Regenerate whenever markup documents change",
	Long: `Generate every markup document once, then watch the markup directory and
regenerate the documents that change. Bursts of edits are coalesced.
Stop with Ctrl-C.

Examples:
  xmlprops watch                       # Watch with the default variant
  xmlprops watch -b release --debounce 1s`,
	RunE: runWatch,
}

var (
	watchVariant  variantFlags
	watchDirs     dirFlags
	watchDebounce time.Duration
)

func init() {
	addVariantFlags(WatchCmd, &watchVariant)
	addDirFlags(WatchCmd, &watchDirs)
	WatchCmd.Flags().DurationVar(&watchDebounce, "debounce", watch.DefaultDebounce, "Quiet period before regenerating")
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, vctx, runner, err := setup(cmd, watchVariant, watchDirs)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	v := verbosity(cmd)
	dir := cfg.Generate.Dir

	docs, err := pipeline.Discover(dir, cfg.Generate.Exclude, logger.ComponentLogger("discover"))
	if err != nil {
		return err
	}
	start := time.Now()
	printReport(runner.Run(ctx, docs, vctx), v, time.Since(start))

	w, err := watch.New(dir, cfg.Generate.Exclude, logger.ComponentLogger("watch"))
	if err != nil {
		return err
	}
	w.SetDebounce(watchDebounce)
	w.OnChange(func(changed []string) {
		var docs []string
		for _, name := range changed {
			path := filepath.Join(dir, name)
			// Removed documents keep their last output
			if _, err := os.Stat(path); err == nil {
				docs = append(docs, path)
			}
		}
		if len(docs) == 0 {
			return
		}
		start := time.Now()
		printReport(runner.Run(ctx, docs, vctx), v, time.Since(start))
	})

	pterm.Info.Printf("Watching %s for variant %s (Ctrl-C to stop)\n", dir, vctx)
	return w.Run(ctx)
}
