package confdir

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/stephen-fox/libspook/internal/branding"
)

// File name and permission constants for the config directory.
const (
	ConfigExt    = ".conf"
	SettingsFile = "settings.yaml"

	DirPerm  os.FileMode = 0755
	FilePerm os.FileMode = 0644
)

// AccessError means the configuration location could not be determined or
// inspected. It is distinct from the location simply not existing.
type AccessError struct {
	Op  string
	Err error
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *AccessError) Unwrap() error { return e.Err }

// SharedFile returns the name of the file used by processes without their
// own file (e.g., "libspook.conf").
func SharedFile() string {
	return branding.LibName() + ConfigExt
}

// Dir returns the configuration directory. It checks the LIBSPOOK_CONFIG_DIR
// environment variable first, then falls back to ~/.libspook.
func Dir() (string, error) {
	if v := os.Getenv(branding.EnvVar("CONFIG_DIR")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", &AccessError{Op: "failed to get home directory", Err: err}
	}
	return filepath.Join(home, branding.HomeDir()), nil
}

// SettingsPath returns the path of the CLI settings file.
func SettingsPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, SettingsFile), nil
}

// Candidates returns the files consulted for exeName, in order:
// <dir>/<exeName>.conf, then the shared file.
func Candidates(dir, exeName string) []string {
	return []string{
		filepath.Join(dir, exeName+ConfigExt),
		filepath.Join(dir, SharedFile()),
	}
}

// Find returns the configuration file for exeName. ok is false when neither
// the directory nor any candidate file exists.
func Find(exeName string) (path string, ok bool, err error) {
	dir, err := Dir()
	if err != nil {
		return "", false, err
	}
	return FindIn(dir, exeName)
}

// FindIn is Find with an explicit directory.
func FindIn(dir, exeName string) (string, bool, error) {
	info, err := os.Stat(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, &AccessError{Op: "failed to inspect config directory " + dir, Err: err}
	}
	if !info.IsDir() {
		return "", false, &AccessError{Op: "failed to inspect config directory " + dir, Err: errors.New("not a directory")}
	}

	for _, candidate := range Candidates(dir, exeName) {
		info, err := os.Stat(candidate)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return "", false, &AccessError{Op: "failed to inspect config file " + candidate, Err: err}
		}
		if info.IsDir() {
			continue
		}
		return candidate, true, nil
	}

	return "", false, nil
}

// ListConfigs returns every *.conf file in dir, sorted by name. A missing
// directory yields an empty list.
func ListConfigs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading config directory %s: %w", dir, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ConfigExt {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	return files, nil
}
