//go:build !windows

package hook

import (
	"io/fs"
	"os"
)

// createHookFile creates or truncates a hook file with the executable
// bits set for owner, group, and other.
func createHookFile(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0755)
}

// eligibleSource reports whether a user hooks directory entry can be
// adopted: a regular file readable and executable by owner, group, and
// other. Symlinks and oddly-permissioned files are skipped silently.
func eligibleSource(e fs.DirEntry) bool {
	if !e.Type().IsRegular() {
		return false
	}
	info, err := e.Info()
	if err != nil {
		return false
	}
	return info.Mode().Perm()&0555 == 0555
}
