package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/stephen-fox/libspook/internal/conf"
)

var exportFormat string

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", conf.FormatJSON,
		"Output format ("+strings.Join(conf.Formats, "|")+")")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Print a configuration file as JSON, YAML, or canonical text",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := conf.ParseFile(args[0])
		if err != nil {
			return fmt.Errorf("parsing %s: %w", args[0], err)
		}
		return conf.Export(cmd.OutOrStdout(), cfg, exportFormat)
	},
}
