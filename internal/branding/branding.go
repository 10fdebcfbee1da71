// Package branding provides compile-time identity values for the hook and
// its companion CLI.
//
// branding.yaml is baked into both binaries with //go:embed, so forks can
// rename the library, its config directory, and its environment prefix
// without touching code.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	LibName     string `yaml:"lib_name"`
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
	GoModule    string `yaml:"go_module"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing or empty.
		defaults = brand{
			LibName:     "libspook",
			CLIName:     "spook",
			DisplayName: "libspook",
			Description: "Load extra shared libraries into processes at attach time",
			HomeDir:     ".libspook",
			EnvPrefix:   "LIBSPOOK",
			GoModule:    "github.com/stephen-fox/libspook",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// LibName returns the hook library name, also used as the notification title.
func LibName() string { load(); return defaults.LibName }

// CLIName returns the root command name (e.g., "spook").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".libspook").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "LIBSPOOK").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path. Not consumed at runtime.
func GoModule() string { load(); return defaults.GoModule }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("debug") → "LIBSPOOK_DEBUG".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
