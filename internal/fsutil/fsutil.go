// Package fsutil provides file system utility functions.
package fsutil

import "os"

// FileExists reports whether path names an existing regular file. It is
// false for directories, so handing the tool a directory reads as a
// missing input instead of an opaque open error later.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
