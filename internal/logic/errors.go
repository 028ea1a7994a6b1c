package logic

import (
	"errors"
	"os"

	"github.com/idelchi/gogen/pkg/validator"

	"github.com/idelchi/goshare/internal/escrow"
	"github.com/idelchi/goshare/internal/fileutil"
	"github.com/idelchi/goshare/internal/sharefile"
)

// ErrNoQuorum is returned by check when fewer shares than the threshold are present.
var ErrNoQuorum = errors.New("not enough shares")

// Category maps err to the category printed in front of the error message.
func Category(err error) string {
	switch {
	case errors.Is(err, sharefile.ErrInvalidRecord):
		return "invalid share record"
	case errors.Is(err, sharefile.ErrInconsistent):
		return "inconsistent shares"
	case errors.Is(err, sharefile.ErrNoShares):
		return "no shares"
	case errors.Is(err, ErrNoQuorum):
		return "insufficient shares"
	case errors.Is(err, fileutil.ErrExists):
		return "output exists"
	}

	if category := escrow.Category(err); category != "" {
		return category
	}

	switch {
	case errors.Is(err, validator.ErrValidation):
		return "invalid configuration"
	case errors.Is(err, os.ErrNotExist):
		return "file not found"
	case errors.Is(err, os.ErrPermission):
		return "permission denied"
	default:
		return "operation failed"
	}
}
