package crypto

import "errors"

var (
	// ErrInvalidParameter is returned when a generator is constructed with
	// out-of-range values or a sampling request cannot be satisfied.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrDataUnavailable is returned when no usable word list can be obtained.
	ErrDataUnavailable = errors.New("word data unavailable")
)
