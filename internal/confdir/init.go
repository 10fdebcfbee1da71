package confdir

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/stephen-fox/libspook/internal/platform"
)

// starterConfig is written by Init. Every statement is commented out so the
// file loads nothing until edited.
const starterConfig = `# libspook configuration.
#
# Each [section] is named after a process executable (case-sensitive,
# extension included). Libraries load in the order listed; the first
# failure stops the rest of the list unless allow_init_failure = true
# follows its load line and the library itself declined to initialize.

[general]
debug = false

# [notepad.exe]
# load = C:\tools\first.dll
# allow_init_failure = true
# load = C:\tools\second.dll
`

// Init creates the config directory and the shared configuration file.
// It prints progress messages to w. Existing items are skipped.
func Init(w io.Writer) error {
	dir, err := Dir()
	if err != nil {
		return err
	}

	if err := ensureDir(w, dir, DirPerm); err != nil {
		return err
	}

	return ensureFile(w, filepath.Join(dir, SharedFile()), starterConfig, FilePerm)
}

// ensureDir creates a directory if it doesn't exist.
func ensureDir(w io.Writer, path string, perm os.FileMode) error {
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			fmt.Fprintf(w, "  [SKIP] %s already exists\n", path)
			return nil
		}
		return fmt.Errorf("%s exists but is not a directory", path)
	}

	if err := os.MkdirAll(path, perm); err != nil {
		return fmt.Errorf("creating directory %s: %w", path, err)
	}
	// MkdirAll applies the umask.
	if err := platform.Chmod(path, perm); err != nil {
		return fmt.Errorf("setting permissions on %s: %w", path, err)
	}
	fmt.Fprintf(w, "  [ OK ] Created %s\n", path)
	return nil
}

// ensureFile creates a file with content if it doesn't exist.
func ensureFile(w io.Writer, path, content string, perm os.FileMode) error {
	if _, err := os.Stat(path); err == nil {
		fmt.Fprintf(w, "  [SKIP] %s already exists\n", path)
		return nil
	}

	if err := os.WriteFile(path, []byte(content), perm); err != nil {
		return fmt.Errorf("creating file %s: %w", path, err)
	}
	fmt.Fprintf(w, "  [ OK ] Created %s\n", path)
	return nil
}
