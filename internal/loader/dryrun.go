package loader

import "fmt"

// DryRun is a Loader that loads nothing. It records every requested path
// and fails the paths listed in Failures with the given error code.
type DryRun struct {
	Failures map[string]uint32

	attempted []string
}

// Load records path and returns a fake handle, or a *PlatformError when
// path is listed in Failures.
func (d *DryRun) Load(path string) (Module, error) {
	d.attempted = append(d.attempted, path)
	if code, ok := d.Failures[path]; ok {
		return 0, &PlatformError{
			Path: path,
			Code: code,
			Err:  fmt.Errorf("simulated failure (error code %d)", code),
		}
	}
	return Module(len(d.attempted)), nil
}

// Attempted returns the paths passed to Load, in call order.
func (d *DryRun) Attempted() []string {
	out := make([]string, len(d.attempted))
	copy(out, d.attempted)
	return out
}
