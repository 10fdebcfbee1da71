// Package platform adapts the operating system to the loader ports: a native
// library loader (LoadLibraryW on Windows, Go plugins where cgo is available,
// a stub elsewhere), message-box and stream notifiers, the current process's
// executable name, and permission handling that is a no-op on Windows.
package platform
