package sharefile

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/idelchi/gogen/pkg/validator"

	"github.com/idelchi/goshare/internal/shamir"
)

// Version is the record format version.
const Version = 1

// Record is the persisted form of one share.
type Record struct {
	Version   int    `json:"version"   validate:"eq=1"`
	Set       string `json:"set"       validate:"required,uuid"`
	Index     int    `json:"index"     validate:"min=1,max=255,ltefield=Total"`
	Threshold int    `json:"threshold" validate:"min=2,max=255"`
	Total     int    `json:"total"     validate:"max=255,gtefield=Threshold"`
	Value     string `json:"value"     validate:"required,hexadecimal"`
}

// recordValidator checks Record struct tags; it is safe for concurrent use.
var recordValidator = validator.NewValidator()

// FromSet converts every share of set into a record.
func FromSet(set shamir.ShareSet) []Record {
	records := make([]Record, 0, len(set.Shares))

	for _, share := range set.Shares {
		records = append(records, Record{
			Version:   Version,
			Set:       set.ID.String(),
			Index:     int(share.Index),
			Threshold: set.Threshold,
			Total:     set.Total,
			Value:     hex.EncodeToString(share.Values),
		})
	}

	return records
}

// Validate checks the struct constraints of r.
func (r Record) Validate() error {
	if errs := recordValidator.Validate(r); len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidRecord, errors.Join(errs...))
	}

	return nil
}

// SetID parses the set identifier.
func (r Record) SetID() (uuid.UUID, error) {
	id, err := uuid.Parse(r.Set)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: set %q: %w", ErrInvalidRecord, r.Set, err)
	}

	return id, nil
}

// Share decodes r into a core share.
func (r Record) Share() (shamir.Share, error) {
	if err := r.Validate(); err != nil {
		return shamir.Share{}, err
	}

	values, err := hex.DecodeString(r.Value)
	if err != nil {
		return shamir.Share{}, fmt.Errorf("%w: share %d value: %w", ErrInvalidRecord, r.Index, err)
	}

	return shamir.Share{Index: byte(r.Index), Values: values}, nil
}
