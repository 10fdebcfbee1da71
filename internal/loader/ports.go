package loader

import (
	"errors"
	"fmt"
)

// Module is an opaque handle to a loaded library.
type Module uintptr

// Loader loads a library into the current process.
type Loader interface {
	// Load loads the library at path. A failure should wrap a
	// *PlatformError carrying the platform's last error code.
	Load(path string) (Module, error)
}

// Notifier displays a message to the user. It must not block meaningfully
// and has no way to report failure.
type Notifier interface {
	Notify(message string)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(message string)

// Notify calls f(message).
func (f NotifierFunc) Notify(message string) { f(message) }

// PlatformError is a failed native load together with the platform's
// last error code.
type PlatformError struct {
	Path string
	Code uint32
	Err  error
}

func (e *PlatformError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("loading %s: error code %d", e.Path, e.Code)
	}
	return fmt.Sprintf("loading %s: %v", e.Path, e.Err)
}

func (e *PlatformError) Unwrap() error { return e.Err }

// ErrorCode returns the platform error code carried by err. ok is false
// when err does not wrap a *PlatformError.
func ErrorCode(err error) (code uint32, ok bool) {
	var pe *PlatformError
	if errors.As(err, &pe) {
		return pe.Code, true
	}
	return 0, false
}

// LoadError is the fatal failure that stopped a load sequence.
type LoadError struct {
	Path string
	Code uint32
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load DLL (%s) - last os error: %v", e.Path, e.cause())
}

func (e *LoadError) Unwrap() error { return e.Err }

// cause prefers the platform's own description over the wrapping message.
func (e *LoadError) cause() error {
	var pe *PlatformError
	if errors.As(e.Err, &pe) && pe.Err != nil {
		return pe.Err
	}
	if e.Err != nil {
		return e.Err
	}
	return fmt.Errorf("error code %d", e.Code)
}
