package shamir

import "errors"

var (
	// ErrInvalidThreshold is returned when the (t,n) parameters violate 2 <= t <= n <= 255.
	ErrInvalidThreshold = errors.New("invalid threshold")
	// ErrDuplicateOrInvalidShare is returned when a share has index zero, repeats an index,
	// disagrees in length with the others, or too few shares are supplied to interpolate.
	ErrDuplicateOrInvalidShare = errors.New("duplicate or invalid share")
)
