package confdir

import (
	"fmt"
	"io"
	"os"

	"github.com/stephen-fox/libspook/internal/conf"
	"github.com/stephen-fox/libspook/internal/platform"
)

// writableByOthers are the permission bits that let other users edit a file
// and thereby choose what gets loaded into this user's processes.
const writableByOthers os.FileMode = 0022

// CheckResult summarizes a Check run.
type CheckResult struct {
	Files    int
	Invalid  int
	Warnings int
}

// Check validates the config directory: existence, permissions, and that
// every *.conf file parses. Lint findings are reported as warnings. When
// fix is true, it creates a missing directory and removes group/other write
// permission.
func Check(w io.Writer, fix bool) (*CheckResult, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}

	res := &CheckResult{}
	fmt.Fprintln(w, "Config directory check:")

	info, statErr := os.Stat(dir)
	if os.IsNotExist(statErr) {
		fmt.Fprintf(w, "  [MISS] %s does not exist (nothing will be loaded)\n", dir)
		if fix {
			fmt.Fprintln(w, "  [FIX ] Running init...")
			if initErr := Init(w); initErr != nil {
				return nil, fmt.Errorf("auto-fix init: %w", initErr)
			}
		}
		return res, nil
	}
	if statErr != nil {
		fmt.Fprintf(w, "  [FAIL] %s: %v\n", dir, statErr)
		return nil, &AccessError{Op: "failed to inspect config directory " + dir, Err: statErr}
	}
	if !info.IsDir() {
		fmt.Fprintf(w, "  [FAIL] %s exists but is not a directory\n", dir)
		return nil, &AccessError{Op: "failed to inspect config directory " + dir, Err: fmt.Errorf("not a directory")}
	}
	fmt.Fprintf(w, "  [ OK ] %s exists\n", dir)
	res.Warnings += checkPerm(w, dir, info.Mode().Perm(), fix)

	files, err := ListConfigs(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		fmt.Fprintln(w, "  [INFO] No configuration files")
		return res, nil
	}

	for _, path := range files {
		res.Files++
		if fi, err := os.Stat(path); err == nil {
			res.Warnings += checkPerm(w, path, fi.Mode().Perm(), fix)
		}

		cfg, err := conf.ParseFile(path)
		if err != nil {
			res.Invalid++
			fmt.Fprintf(w, "  [FAIL] %s: %v\n", path, err)
			continue
		}
		fmt.Fprintf(w, "  [ OK ] %s parses (%d process section(s))\n", path, len(cfg.Processes))

		lint, err := conf.Lint(cfg)
		if err != nil {
			fmt.Fprintf(w, "  [WARN] %s: lint unavailable: %v\n", path, err)
			res.Warnings++
			continue
		}
		for _, issue := range lint.Issues {
			fmt.Fprintf(w, "  [WARN] %s: %s\n", path, issue)
			res.Warnings++
		}
	}

	return res, nil
}

// checkPerm warns about paths other users can write to and returns the
// number of warnings emitted.
func checkPerm(w io.Writer, path string, perm os.FileMode, fix bool) int {
	if !platform.PermissionsEnforced() || perm&writableByOthers == 0 {
		return 0
	}

	fmt.Fprintf(w, "  [WARN] %s has permissions %o (writable by other users)\n", path, perm)
	if !fix {
		return 1
	}

	fixed := perm &^ writableByOthers
	if err := platform.Chmod(path, fixed); err != nil {
		fmt.Fprintf(w, "  [FAIL] Could not fix permissions on %s: %v\n", path, err)
		return 1
	}
	fmt.Fprintf(w, "  [FIX ] Fixed permissions on %s to %o\n", path, fixed)
	return 1
}
