//go:build windows

package platform

import (
	"errors"
	"syscall"

	"github.com/stephen-fox/libspook/internal/loader"
	"golang.org/x/sys/windows"
)

// InitDeclinedCode is ERROR_DLL_INIT_FAILED, returned by LoadLibrary when a
// DLL's entry point returns FALSE from DLL_PROCESS_ATTACH.
const InitDeclinedCode = uint32(windows.ERROR_DLL_INIT_FAILED)

// NativeLoader loads DLLs with LoadLibraryW.
type NativeLoader struct{}

// NewLoader returns the loader for this platform.
func NewLoader() loader.Loader {
	return NativeLoader{}
}

// Load calls LoadLibraryW and converts a failure into a *loader.PlatformError
// carrying GetLastError.
func (NativeLoader) Load(path string) (loader.Module, error) {
	h, err := windows.LoadLibrary(path)
	if err != nil {
		var errno syscall.Errno
		code := uint32(0)
		if errors.As(err, &errno) {
			code = uint32(errno)
		}
		return 0, &loader.PlatformError{Path: path, Code: code, Err: err}
	}
	return loader.Module(h), nil
}
