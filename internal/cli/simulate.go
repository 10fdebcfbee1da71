package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/stephen-fox/libspook/internal/branding"
	"github.com/stephen-fox/libspook/internal/conf"
	"github.com/stephen-fox/libspook/internal/loader"
	"github.com/stephen-fox/libspook/internal/platform"
)

// errorDLLInitFailed is the Windows code for a DLL whose entry point
// returned FALSE. Configurations target Windows hosts, so simulations use it
// regardless of the platform the tool runs on.
const errorDLLInitFailed = 1114

// declinedKeyword may replace the code in --fail to mean the init-declined code.
const declinedKeyword = "declined"

var (
	simulateExe          string
	simulateFail         []string
	simulateDeclinedCode uint32
)

func init() {
	simulateCmd.Flags().StringVar(&simulateExe, "exe", "", "Executable name to simulate (required)")
	simulateCmd.Flags().StringArrayVar(&simulateFail, "fail", nil,
		"Fail a library load: <path>=<code> or <path>="+declinedKeyword+" (repeatable)")
	simulateCmd.Flags().Uint32Var(&simulateDeclinedCode, "init-declined-code", errorDLLInitFailed,
		"Error code meaning a library declined to initialize")
	_ = simulateCmd.MarkFlagRequired("exe")
	rootCmd.AddCommand(simulateCmd)
}

var simulateCmd = &cobra.Command{
	Use:   "simulate <file>",
	Short: "Walk a load sequence without loading anything",
	Long: `Run the load sequence for --exe against a configuration file using a
loader that only records paths. Use --fail to make individual loads fail
and see which entries are tolerated and where the sequence stops.`,
	Example: `  ` + branding.CLIName() + ` simulate libspook.conf --exe host.exe --fail 'C:\x\b.dll=declined'`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		failures, err := parseFailures(simulateFail, simulateDeclinedCode)
		if err != nil {
			return err
		}

		cfg, err := conf.ParseFile(args[0])
		if err != nil {
			return fmt.Errorf("parsing %s: %w", args[0], err)
		}

		out := cmd.OutOrStdout()
		o := &loader.Orchestrator{
			Loader:           &loader.DryRun{Failures: failures},
			Notifier:         platform.WriterNotifier{W: cmd.ErrOrStderr(), Title: branding.LibName()},
			InitDeclinedCode: simulateDeclinedCode,
			Logger:           logger,
		}
		report, runErr := o.Run(cfg, simulateExe)

		if !report.Matched {
			fmt.Fprintf(out, "No [%s] section; nothing is loaded\n", simulateExe)
			return nil
		}
		scope, _ := cfg.Process(simulateExe)
		printReport(out, report, scope.Libraries)

		if runErr != nil {
			return fmt.Errorf("simulated load sequence for %s stopped: %w", simulateExe, runErr)
		}
		return nil
	},
}

// parseFailures turns "<path>=<code>" flags into a failure table. The last
// '=' separates the code so that paths may contain '='.
func parseFailures(specs []string, declinedCode uint32) (map[string]uint32, error) {
	failures := make(map[string]uint32, len(specs))
	for _, s := range specs {
		i := strings.LastIndex(s, "=")
		if i <= 0 || i == len(s)-1 {
			return nil, fmt.Errorf("invalid --fail value %q: expected <path>=<code>", s)
		}
		path, value := s[:i], s[i+1:]

		if value == declinedKeyword {
			failures[path] = declinedCode
			continue
		}
		code, err := strconv.ParseUint(value, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid error code in --fail value %q: %w", s, err)
		}
		failures[path] = uint32(code)
	}
	return failures, nil
}

func printReport(w io.Writer, report *loader.Report, libs []conf.LibrarySpec) {
	fmt.Fprintf(w, "Load sequence for %s:\n", report.ExeName)
	for _, a := range report.Attempts {
		switch a.Outcome {
		case loader.OutcomeLoaded:
			fmt.Fprintf(w, "  [ OK ] %s\n", a.Library.Path)
		case loader.OutcomeTolerated:
			fmt.Fprintf(w, "  [SKIP] %s: declined to initialize (code %d), tolerated\n", a.Library.Path, a.Code)
		case loader.OutcomeFailed:
			fmt.Fprintf(w, "  [FAIL] %s: %v\n", a.Library.Path, a.Err)
		}
	}
	for _, lib := range libs[len(report.Attempts):] {
		fmt.Fprintf(w, "  [ -- ] %s: not attempted\n", lib.Path)
	}
	fmt.Fprintf(w, "%d loaded, %d tolerated, %d failed\n",
		report.Count(loader.OutcomeLoaded),
		report.Count(loader.OutcomeTolerated),
		report.Count(loader.OutcomeFailed))
}
