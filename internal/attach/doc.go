// Package attach is the routine the hook runs once when it is loaded into a
// host process: find the process's executable name, locate and parse its
// configuration, and load the configured libraries. Every failure is shown to
// the user exactly once through a notifier; nothing is retried.
package attach
