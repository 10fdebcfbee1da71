package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/stephen-fox/libspook/internal/conf"
	"github.com/stephen-fox/libspook/internal/confdir"
)

var (
	showExe  string
	showFile string
)

func init() {
	showCmd.Flags().StringVar(&showExe, "exe", "", "Executable name to resolve (e.g. notepad.exe)")
	showCmd.Flags().StringVar(&showFile, "file", "", "Configuration file to read instead of locating one")
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the libraries a process would load",
	Long: `Resolve the configuration file for --exe the way the hook does and list
the libraries its section loads, in order. With --file and no --exe, list
every section of that file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if showFile == "" && showExe == "" {
			return fmt.Errorf("one of --exe or --file is required")
		}

		path := showFile
		if path == "" {
			found, ok, err := confdir.Find(showExe)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintf(out, "No configuration file for %s\n", showExe)
				return nil
			}
			path = found
		}

		cfg, err := conf.ParseFile(path)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
		logger.Debug("parsed config", "path", path, "config", cfg)

		fmt.Fprintf(out, "Configuration: %s\n", path)
		if showExe == "" {
			for _, scope := range cfg.Processes {
				printScope(out, scope)
			}
			return nil
		}

		scope, ok := cfg.Process(showExe)
		if !ok {
			fmt.Fprintf(out, "No [%s] section; nothing is loaded\n", showExe)
			return nil
		}
		printScope(out, *scope)
		return nil
	},
}

func printScope(w io.Writer, scope conf.ProcessScope) {
	fmt.Fprintf(w, "[%s]\n", scope.ExeName)
	if len(scope.Libraries) == 0 {
		fmt.Fprintln(w, "  (no libraries)")
		return
	}
	for i, lib := range scope.Libraries {
		if lib.AllowInitFailure {
			fmt.Fprintf(w, "  %d. %s (may decline to initialize)\n", i+1, lib.Path)
			continue
		}
		fmt.Fprintf(w, "  %d. %s\n", i+1, lib.Path)
	}
}
