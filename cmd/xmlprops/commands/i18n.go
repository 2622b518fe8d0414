package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/xmlprops/i18n"
	"github.com/teranos/xmlprops/logger"
)

// I18nCmd generates the string-key object from a .properties file
var I18nCmd = &cobra.Command{
	Use:   "i18n",
	Short: "Generate a string-key object from a .properties file",
	Long: `Read a Java .properties file and write a Kotlin object holding one
String constant per key, in file order.

Examples:
  xmlprops i18n                                          # Use i18n.* from config
  xmlprops i18n --input strings.properties --object Keys`,
	RunE: runI18n,
}

var i18nFlags struct {
	input  string
	pkg    string
	object string
	outDir string
}

func init() {
	I18nCmd.Flags().StringVarP(&i18nFlags.input, "input", "i", "", "Properties file (default: i18n.input)")
	I18nCmd.Flags().StringVarP(&i18nFlags.pkg, "package", "p", "", "Kotlin package (default: i18n.package)")
	I18nCmd.Flags().StringVar(&i18nFlags.object, "object", "", "Object name (default: i18n.object)")
	I18nCmd.Flags().StringVarP(&i18nFlags.outDir, "out-dir", "o", "", "Output root (default: i18n.out_dir)")
}

func runI18n(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	opts := cfg.I18n
	if i18nFlags.input != "" {
		opts.Input = i18nFlags.input
	}
	if i18nFlags.pkg != "" {
		opts.Package = i18nFlags.pkg
	}
	if i18nFlags.object != "" {
		opts.Object = i18nFlags.object
	}
	if i18nFlags.outDir != "" {
		opts.OutDir = i18nFlags.outDir
	}

	path, count, err := i18n.Generate(opts.Input, opts.Package, opts.Object, opts.OutDir)
	if err != nil {
		return err
	}

	logger.Infow("Generated string keys",
		logger.FieldDocument, opts.Input,
		logger.FieldOutput, path,
		logger.FieldCount, count)
	pterm.Success.Printf("%s -> %s (%d keys)\n", opts.Input, pterm.LightCyan(path), count)
	return nil
}
