package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/stephen-fox/libspook/internal/conf"
)

var checkNoLint bool

func init() {
	checkCmd.Flags().BoolVar(&checkNoLint, "no-lint", false, "Only report parse errors")
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Parse and lint configuration files",
	Long: `Parse each configuration file exactly as the hook would and report the
first error in each. Files that parse are also linted for entries that are
legal but unlikely to work, such as duplicate sections.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		failed := 0

		for _, path := range args {
			cfg, err := conf.ParseFile(path)
			if err != nil {
				failed++
				fmt.Fprintf(out, "[FAIL] %s: %v\n", path, err)
				continue
			}
			fmt.Fprintf(out, "[ OK ] %s: %d process section(s), debug %t\n", path, len(cfg.Processes), cfg.Debug)

			if checkNoLint {
				continue
			}
			result, err := conf.Lint(cfg)
			if err != nil {
				return fmt.Errorf("linting %s: %w", path, err)
			}
			for _, issue := range result.Issues {
				fmt.Fprintf(out, "  [WARN] %s\n", issue)
			}
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d file(s) failed to parse", failed, len(args))
		}
		return nil
	},
}
