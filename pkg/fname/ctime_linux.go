//go:build linux

package fname

import (
	"os"
	"syscall"
	"time"
)

// creationTime reports the closest thing Linux offers without statx: the
// inode change time. Callers treat a false return as "no creation time".
func creationTime(info os.FileInfo) (time.Time, bool) {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return time.Time{}, false
	}
	return time.Unix(stat.Ctim.Sec, stat.Ctim.Nsec), true
}
