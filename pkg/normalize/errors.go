package normalize

import "errors"

var (
	// ErrNormalization is returned when the decomposition pipeline fails to transform the input.
	ErrNormalization = errors.New("failed to normalize text")
)
