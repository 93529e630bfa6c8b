package sparsetree

import "errors"

// Construction and copy errors. These are the only error paths in the
// package: insertion and clearing are infallible, and a callback that
// needs to signal a user-level error stores it in its own state and
// returns false (stop) rather than threading an error back through
// the core.
var (
	ErrInvalidBounds            = errors.New("sparsetree: root bounds invalid (min must be <= max on every axis)")
	ErrMaxDepthOutOfRange       = errors.New("sparsetree: max depth out of range")
	ErrObjectsPerNodeOutOfRange = errors.New("sparsetree: objects per node must be >= 1")
	ErrIncompatibleCopySource   = errors.New("sparsetree: copy source has different bounds or shape parameters")
)
