//go:build !windows && cgo && (linux || darwin || freebsd)

package platform

import (
	"math"
	"plugin"

	"github.com/stephen-fox/libspook/internal/loader"
)

// InitDeclinedCode is never produced by plugin.Open, so allow_init_failure
// has no effect on this platform.
const InitDeclinedCode = uint32(math.MaxUint32)

// NativeLoader loads Go plugins built with -buildmode=plugin. The plugin's
// init functions run during Load; a panic there cannot be declined cleanly.
type NativeLoader struct {
	loaded []*plugin.Plugin
}

// NewLoader returns the loader for this platform.
func NewLoader() loader.Loader {
	return &NativeLoader{}
}

// Load opens the plugin at path. plugin.Open reports no error codes, so
// failures carry code 0.
func (l *NativeLoader) Load(path string) (loader.Module, error) {
	p, err := plugin.Open(path)
	if err != nil {
		return 0, &loader.PlatformError{Path: path, Err: err}
	}
	l.loaded = append(l.loaded, p)
	return loader.Module(len(l.loaded)), nil
}
