package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/xmlprops/config"
	"github.com/teranos/xmlprops/errors"
)

// ConfigCmd represents the config command
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show and manage xmlprops configuration",
	Long: `Display and manage xmlprops configuration.

Configuration sources (in order of precedence):
1. Command line flags
2. Environment variables (XMLPROPS_* prefix, e.g. XMLPROPS_GENERATE_OUT_DIR)
3. Project config (xmlprops.toml, searched up from the working directory)
4. User config (~/.xmlprops/xmlprops.toml)
5. System config (/etc/xmlprops/xmlprops.toml)
6. Default values

Examples:
  xmlprops config show                    # Show effective configuration
  xmlprops config show --format json      # Show configuration as JSON
  xmlprops config get generate.out_dir    # Get one value
  xmlprops config validate                # Validate configuration
  xmlprops config init                    # Write ./xmlprops.toml with defaults
  xmlprops config where                   # List consulted config files`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long:  "Display the effective xmlprops configuration from all sources",
	RunE:  runConfigShow,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a specific configuration value",
	Long:  "Get a specific configuration value using dot notation (e.g., generate.dir, i18n.object)",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate current configuration",
	RunE:  runConfigValidate,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with default values",
	Long: `Write the default configuration to ./xmlprops.toml, or to the --config path.
An existing file is only replaced with --force; the replaced file is kept
as a rotating .back1/.back2/.back3 backup.`,
	RunE: runConfigInit,
}

var configWhereCmd = &cobra.Command{
	Use:   "where",
	Short: "Show where configuration is loaded from",
	RunE:  runConfigWhere,
}

var (
	configFormat string
	configForce  bool
)

func init() {
	configShowCmd.Flags().StringVar(&configFormat, "format", config.FormatTOML, "Output format: toml, json, yaml")
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "Replace an existing config file")

	ConfigCmd.AddCommand(configShowCmd)
	ConfigCmd.AddCommand(configGetCmd)
	ConfigCmd.AddCommand(configValidateCmd)
	ConfigCmd.AddCommand(configInitCmd)
	ConfigCmd.AddCommand(configWhereCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath(cmd))
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	data, err := config.Marshal(cfg, configFormat)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if configFormat != config.FormatJSON {
		fmt.Fprintln(out, "# xmlprops configuration")
	}
	fmt.Fprint(out, string(data))
	if configFormat == config.FormatJSON {
		fmt.Fprintln(out)
	}
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	key := args[0]

	v, err := config.NewViper(configPath(cmd))
	if err != nil {
		return err
	}
	if !v.IsSet(key) {
		return errors.Newf("configuration key %q not found", key)
	}

	fmt.Fprintln(cmd.OutOrStdout(), v.Get(key))
	return nil
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	if _, err := loadConfig(cmd); err != nil {
		return err
	}

	pterm.Success.Println("Configuration is valid")
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := configPath(cmd)
	if path == "" {
		path = config.FileName
	}

	if _, err := os.Stat(path); err == nil && !configForce {
		return errors.WithHint(
			errors.Newf("%s already exists", path),
			"pass --force to replace it; the old file is kept as a backup",
		)
	}

	if err := config.Save(path, config.Default()); err != nil {
		return err
	}

	abs, _ := filepath.Abs(path)
	pterm.Success.Printf("Wrote %s\n", pterm.LightCyan(abs))
	return nil
}

func runConfigWhere(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if explicit := configPath(cmd); explicit != "" {
		fmt.Fprintln(out, "Configuration (--config replaces the file cascade):")
		fmt.Fprintln(out, "  1. [DEFAULT]  Built-in defaults")
		fmt.Fprintf(out, "  2. [EXPLICIT] %s\n", describePath(explicit))
		fmt.Fprintf(out, "  3. [ENV]      %s_* environment variables\n", config.EnvPrefix)
		return nil
	}

	project := ""
	if wd, err := os.Getwd(); err == nil {
		project = config.FindProjectConfig(wd)
	}

	fmt.Fprintln(out, "Configuration cascade (later overrides earlier):")
	fmt.Fprintln(out, "  1. [DEFAULT]  Built-in defaults")
	fmt.Fprintf(out, "  2. [SYSTEM]   %s\n", describePath(config.SystemConfigPath))
	fmt.Fprintf(out, "  3. [USER]     %s\n", describePath(config.UserConfigPath()))
	fmt.Fprintf(out, "  4. [PROJECT]  %s\n", describePath(project))
	fmt.Fprintf(out, "  5. [ENV]      %s_* environment variables\n", config.EnvPrefix)
	return nil
}

// describePath renders a config path with whether it exists
func describePath(path string) string {
	if path == "" {
		return pterm.Gray("(none found)")
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Sprintf("%s %s", path, pterm.Gray("(missing)"))
	}
	return fmt.Sprintf("%s %s", path, pterm.Green("(found)"))
}
