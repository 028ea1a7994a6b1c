package escrow

import (
	"errors"

	"github.com/idelchi/goshare/internal/encryption"
	"github.com/idelchi/goshare/internal/gf256"
	"github.com/idelchi/goshare/internal/shamir"
)

// Category maps an error from this package or the core below it to a short,
// user-facing category. Authentication failures deliberately share one category.
func Category(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, shamir.ErrInvalidThreshold):
		return "invalid threshold"
	case errors.Is(err, gf256.ErrDivisionByZero):
		return "internal error"
	case errors.Is(err, shamir.ErrDuplicateOrInvalidShare):
		return "invalid share"
	case errors.Is(err, encryption.ErrAuthentication):
		return "authentication failed"
	case errors.Is(err, encryption.ErrMalformed):
		return "malformed cipher file"
	case errors.Is(err, encryption.ErrKeySize):
		return "invalid key"
	default:
		return ""
	}
}
