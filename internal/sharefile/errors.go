package sharefile

import "errors"

var (
	// ErrInvalidRecord is returned for records that fail to parse or validate.
	ErrInvalidRecord = errors.New("invalid share record")

	// ErrInconsistent is returned when records do not belong to one share set.
	ErrInconsistent = errors.New("inconsistent share records")

	// ErrNoShares is returned when no share files were found.
	ErrNoShares = errors.New("no share files found")
)
