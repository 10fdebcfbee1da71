// Package settings manages libspook's own settings stored at
// ~/.libspook/settings.yaml and overridable with LIBSPOOK_* environment
// variables: which notifier to use, where to write logs, and whether to emit
// debug notifications before a configuration file has been read.
package settings
