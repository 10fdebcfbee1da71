package cli

import (
	"github.com/spf13/cobra"
	"github.com/stephen-fox/libspook/internal/attach"
	"github.com/stephen-fox/libspook/internal/branding"
	"github.com/stephen-fox/libspook/internal/confdir"
	"github.com/stephen-fox/libspook/internal/platform"
	"github.com/stephen-fox/libspook/internal/settings"
)

var (
	loadExe  string
	loadFile string
)

func init() {
	loadCmd.Flags().StringVar(&loadExe, "exe", "", "Executable name whose section is loaded (required)")
	loadCmd.Flags().StringVar(&loadFile, "file", "", "Configuration file to read instead of locating one")
	_ = loadCmd.MarkFlagRequired("exe")
	rootCmd.AddCommand(loadCmd)
}

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load a process's libraries into this process",
	Long: `Run the attach routine inside the CLI process as if it were the process
named by --exe. Libraries really are loaded, so their initialization code
runs here. Notifications are written to stderr.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		locate := confdir.Find
		if loadFile != "" {
			locate = func(string) (string, bool, error) { return loadFile, true, nil }
		}

		return attach.Run(attach.Env{
			Identity:         func() (string, error) { return loadExe, nil },
			Locate:           locate,
			Loader:           platform.NewLoader(),
			Notifier:         platform.WriterNotifier{W: cmd.ErrOrStderr(), Title: branding.LibName()},
			InitDeclinedCode: platform.InitDeclinedCode,
			Debug:            verbose || settings.Debug(),
			CommandLine:      platform.CommandLine(),
			Logger:           logger,
		})
	},
}
