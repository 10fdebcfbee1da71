// Package confdir locates libspook configuration files. Files live in a
// per-user directory (~/.libspook, or $LIBSPOOK_CONFIG_DIR) and are looked up
// by the host executable's name, falling back to a shared file. A missing
// directory or file means "nothing to load", never an error. The package also
// creates the directory with a starter file and runs health checks on it.
package confdir
