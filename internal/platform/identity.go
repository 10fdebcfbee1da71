package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// CurrentExeName returns the base name of the running executable, extension
// included (e.g., "notepad.exe"). Config sections are matched against it.
func CurrentExeName() (string, error) {
	exePath, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to get current exe path: %w", err)
	}
	return ExeName(exePath)
}

// ExeName returns the base name of exePath.
func ExeName(exePath string) (string, error) {
	name := filepath.Base(exePath)
	if name == "." || name == string(filepath.Separator) || name == "" {
		return "", fmt.Errorf("failed to get exe basename from %q", exePath)
	}
	return name, nil
}

// CommandLine returns the process arguments joined by spaces.
func CommandLine() string {
	return strings.Join(os.Args, " ")
}
