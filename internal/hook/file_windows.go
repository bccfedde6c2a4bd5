//go:build windows

package hook

import (
	"io/fs"
	"os"
)

// createHookFile creates or truncates a hook file. Windows has no
// executable permission bits; git invokes hooks through sh there.
func createHookFile(path string) (*os.File, error) {
	return os.Create(path)
}

// eligibleSource reports whether a user hooks directory entry can be
// adopted. Without a POSIX permission model every regular file
// qualifies.
func eligibleSource(e fs.DirEntry) bool {
	return e.Type().IsRegular()
}
