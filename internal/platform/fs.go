package platform

import (
	"os"
	"runtime"
)

// PermissionsEnforced reports whether Unix permission bits mean anything on
// this platform.
func PermissionsEnforced() bool {
	return runtime.GOOS != "windows"
}

// Chmod sets permission bits where they are enforced and does nothing on
// Windows.
func Chmod(path string, mode os.FileMode) error {
	if !PermissionsEnforced() {
		return nil
	}
	return os.Chmod(path, mode)
}
