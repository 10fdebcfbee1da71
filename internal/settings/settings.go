package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
	"github.com/stephen-fox/libspook/internal/branding"
	"github.com/stephen-fox/libspook/internal/confdir"
	"github.com/stephen-fox/libspook/internal/platform"
)

const fileType = "yaml"

// Setting keys.
const (
	KeyNotifier = "notifier"
	KeyLogFile  = "log_file"
	KeyLogLevel = "log_level"
	KeyDebug    = "debug"
)

// Keys lists every recognized setting.
var Keys = []string{KeyNotifier, KeyLogFile, KeyLogLevel, KeyDebug}

// Load initializes Viper to read from the settings file and environment.
// A missing settings file is not an error.
func Load() error {
	path, err := confdir.SettingsPath()
	if err != nil {
		return err
	}

	viper.SetConfigFile(path)
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	viper.SetDefault(KeyNotifier, "messagebox")
	viper.SetDefault(KeyLogLevel, "info")
	viper.SetDefault(KeyDebug, false)

	if err := viper.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("reading settings file %s: %w", path, err)
	}
	return nil
}

// Get returns a setting by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Notifier returns the configured notifier kind.
func Notifier() string { return viper.GetString(KeyNotifier) }

// LogFile returns the configured log file path, or "" for none.
func LogFile() string { return viper.GetString(KeyLogFile) }

// Debug reports whether early debug notifications are enabled.
func Debug() bool { return viper.GetBool(KeyDebug) }

// LogLevel returns the configured log level, defaulting to info when the
// setting does not parse.
func LogLevel() log.Level {
	level, err := log.ParseLevel(viper.GetString(KeyLogLevel))
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// Set writes a setting and saves the settings file.
func Set(key, value string) error {
	if !slices.Contains(Keys, key) {
		return fmt.Errorf("unknown setting %q: supported settings are %v", key, Keys)
	}
	if err := validate(key, value); err != nil {
		return err
	}

	path, err := confdir.SettingsPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), confdir.DirPerm); err != nil {
		return fmt.Errorf("creating settings directory: %w", err)
	}

	viper.Set(key, value)

	if err := viper.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing settings file: %w", err)
	}
	return nil
}

// validate rejects values the hook would fail to use.
func validate(key, value string) error {
	switch key {
	case KeyNotifier:
		if _, err := platform.NewNotifier(value); err != nil {
			return err
		}
	case KeyLogLevel:
		if _, err := log.ParseLevel(value); err != nil {
			return fmt.Errorf("invalid log level %q: %w", value, err)
		}
	case KeyDebug:
		if _, err := strconv.ParseBool(value); err != nil {
			return fmt.Errorf("invalid boolean %q for %s", value, KeyDebug)
		}
	}
	return nil
}
