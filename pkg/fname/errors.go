package fname

import "gitlab.com/tozd/go/errors"

var (
	// ErrBadStem means a path has no extractable file-name component. Fatal
	// for that single item only; the batch excludes it and carries on.
	ErrBadStem = errors.Base("file does not have a stem")

	// ErrNotFound means the source file vanished between enumeration and use.
	ErrNotFound = errors.Base("file does not exist")
)
