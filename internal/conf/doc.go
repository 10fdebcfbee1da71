// Package conf parses libspook configuration files. A file is a sequence of
// sections: the [general] section holds global settings and every other
// section is named after a process executable and lists the libraries to
// load into it, in order. The package also renders parsed configurations
// back to text, JSON, or YAML, and lints them against an embedded JSON schema.
package conf
