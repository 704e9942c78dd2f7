// Package config loads the optional levelpack.hcl defaults file. The file
// is consulted only by the no-argument launch path and supplies the input
// and output paths, the debug mapping limit, and the hold-on-exit behavior
// for double-click style launches.
package config
