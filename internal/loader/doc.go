// Package loader applies the load policy of a parsed configuration: it picks
// the process section for the current executable and loads its libraries in
// order through a Loader, stopping at the first failure that the section does
// not explicitly tolerate.
package loader
