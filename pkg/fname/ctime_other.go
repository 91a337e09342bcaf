//go:build !linux && !windows && !darwin

package fname

import (
	"os"
	"time"
)

func creationTime(_ os.FileInfo) (time.Time, bool) {
	return time.Time{}, false
}
