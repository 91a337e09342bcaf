package batch

import "gitlab.com/tozd/go/errors"

// ErrNameCollision means two source files mapped to the same candidate
// path. Detected at commit time before any rename is attempted.
var ErrNameCollision = errors.Base("two files map to the same candidate name")
