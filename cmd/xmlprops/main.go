package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/teranos/xmlprops/cmd/xmlprops/commands"
	"github.com/teranos/xmlprops/errors"
	"github.com/teranos/xmlprops/logger"
)

var rootCmd = &cobra.Command{
	Use:   "xmlprops",
	Short: "xmlprops - variant-aware XML to Kotlin source generator",
	Long: `xmlprops - Generate Kotlin source files from XML markup documents.

Each markup document describes one Kotlin file and carries a match rule that
decides for which build variants (build type plus optional flavor) the file
is generated.

Available commands:
  generate - Generate Kotlin sources for a build variant
  check    - Verify generated sources are up to date
  watch    - Regenerate whenever markup documents change
  i18n     - Generate a string-key object from a .properties file
  config   - Show and manage xmlprops configuration
  version  - Show version information

Examples:
  xmlprops generate --build-type release           # Generate for release
  xmlprops generate --task :app:assembleFreeDebug  # Derive variant from a task name
  xmlprops check                                   # Fail if outputs drifted
  xmlprops watch -v                                # Regenerate on change`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize global logger before any command runs
		verbosity, _ := cmd.Flags().GetCount("verbose")
		if err := logger.Initialize(commands.JSONLogs(cmd), verbosity); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Cleanup()
	},
}

func init() {
	// Add global flags
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv, -vvv)")
	rootCmd.PersistentFlags().StringP("config", "c", "", "Config file (default: system, user and project xmlprops.toml cascade)")
	rootCmd.PersistentFlags().Bool("log-json", false, "Emit logs as JSON")

	// Add commands
	rootCmd.AddCommand(commands.GenerateCmd)
	rootCmd.AddCommand(commands.CheckCmd)
	rootCmd.AddCommand(commands.WatchCmd)
	rootCmd.AddCommand(commands.I18nCmd)
	rootCmd.AddCommand(commands.ConfigCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if hint := errors.FlattenHints(err); hint != "" {
			fmt.Fprintf(os.Stderr, "Hint: %s\n", hint)
		}
		os.Exit(1)
	}
}
