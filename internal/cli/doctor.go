package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/stephen-fox/libspook/internal/branding"
	"github.com/stephen-fox/libspook/internal/confdir"
	"github.com/stephen-fox/libspook/internal/platform"
	"github.com/stephen-fox/libspook/internal/settings"
)

var doctorFix bool

func init() {
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false, "Tighten permissions on the config directory and files")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the configuration directory and every file in it",
	Long: `Run diagnostic checks on the ` + branding.DisplayName() + ` configuration directory: that it
exists, that other users cannot write to it, and that every configuration
file in it parses and lints cleanly.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		runSettingsCheck(out)

		result, err := confdir.Check(out, doctorFix)
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "\n%d file(s), %d invalid, %d warning(s)\n",
			result.Files, result.Invalid, result.Warnings)
		if result.Invalid > 0 {
			return fmt.Errorf("%d configuration file(s) failed to parse", result.Invalid)
		}
		return nil
	},
}

func runSettingsCheck(w io.Writer) {
	fmt.Fprintln(w, "Settings check:")

	path, err := confdir.SettingsPath()
	if err != nil {
		fmt.Fprintf(w, "  [WARN] Cannot resolve settings path: %v\n", err)
		return
	}
	if _, err := os.Stat(path); err != nil {
		fmt.Fprintf(w, "  [INFO] %s not found, using defaults\n", path)
	} else {
		fmt.Fprintf(w, "  [ OK ] %s\n", path)
	}

	if _, err := platform.NewNotifier(settings.Notifier()); err != nil {
		fmt.Fprintf(w, "  [FAIL] %v\n", err)
	} else {
		fmt.Fprintf(w, "  [ OK ] notifier: %s\n", settings.Notifier())
	}
}
