package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/stephen-fox/libspook/internal/branding"
	"github.com/stephen-fox/libspook/internal/confdir"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the configuration directory",
	Long: `Create the configuration directory (~/` + branding.HomeDir() + ` unless overridden) and a
commented starter ` + confdir.SharedFile() + `. Existing files are left alone.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := confdir.Dir()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Initializing %s\n", dir)

		if err := confdir.Init(out); err != nil {
			return fmt.Errorf("initializing %s: %w", dir, err)
		}

		fmt.Fprintf(out, "\nAdd a [<name>.exe] section to %s, or create <name>.exe%s for a single process.\n",
			confdir.SharedFile(), confdir.ConfigExt)
		return nil
	},
}
