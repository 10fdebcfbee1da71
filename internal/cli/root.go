package cli

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/stephen-fox/libspook/internal/branding"
	"github.com/stephen-fox/libspook/internal/settings"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string

	configDir string
	verbose   bool

	logger = log.New(os.Stderr)
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "Config directory (default ~/"+branding.HomeDir()+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to stderr")
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` is loaded into processes and, based on a per-user configuration
file, loads further libraries into them. This tool writes, checks, and
simulates those configuration files.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if configDir != "" {
			if err := os.Setenv(branding.EnvVar("CONFIG_DIR"), configDir); err != nil {
				return err
			}
		}
		if err := settings.Load(); err != nil {
			return err
		}

		level := settings.LogLevel()
		if verbose {
			level = log.DebugLevel
		}
		logger = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
			Prefix: branding.CLIName(),
			Level:  level,
		})
		return nil
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err != nil {
		logger.Error(err)
	}
	return err
}
