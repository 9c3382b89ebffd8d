package slug

import "errors"

var (
	// ErrBuildFailed is returned when the input cannot be turned into a slug.
	// It is joined with the underlying cause, e.g. normalize.ErrNormalization.
	ErrBuildFailed = errors.New("failed to build slug")
)
