//go:build !windows && !(cgo && (linux || darwin || freebsd))

package platform

import (
	"math"

	"github.com/stephen-fox/libspook/internal/loader"
)

// InitDeclinedCode is never produced on this platform.
const InitDeclinedCode = uint32(math.MaxUint32)

// NativeLoader is a stub for platforms without a native library loader.
type NativeLoader struct{}

// NewLoader returns the loader for this platform.
func NewLoader() loader.Loader {
	return NativeLoader{}
}

// Load always fails with ErrUnsupported.
func (NativeLoader) Load(path string) (loader.Module, error) {
	return 0, &loader.PlatformError{Path: path, Err: ErrUnsupported}
}
