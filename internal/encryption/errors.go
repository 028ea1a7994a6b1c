package encryption

import "errors"

var (
	// ErrAuthentication is returned whenever a tag does not verify. It covers a wrong key,
	// insufficient shares, tampering and corruption alike.
	ErrAuthentication = errors.New("authentication failed")
	// ErrKeySize is returned when the key is not KeySize bytes long.
	ErrKeySize = errors.New("invalid key size")
	// ErrMalformed is returned when an envelope cannot be parsed.
	ErrMalformed = errors.New("malformed envelope")
)
