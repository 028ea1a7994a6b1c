package shamir

import (
	"fmt"

	"github.com/google/uuid"
)

const (
	// MinThreshold is the smallest accepted threshold.
	MinThreshold = 2
	// MaxShares is the largest number of shares, bounded by the nonzero field elements.
	MaxShares = 255
)

// Share is one evaluation point of the per-byte polynomials.
type Share struct {
	// Index is the x-coordinate, 1..n. Zero is reserved for the secret.
	Index byte

	// Values holds f_i(Index) for every secret byte position i.
	Values []byte
}

// ShareSet is the complete output of a split.
type ShareSet struct {
	// ID identifies the split the shares belong to. Split leaves it zero; callers assign it.
	ID uuid.UUID

	// Threshold is the number of shares needed to reconstruct.
	Threshold int

	// Total is the number of shares generated.
	Total int

	// Shares holds Total shares with indices 1..Total.
	Shares []Share
}

// Subset returns the shares with the given indices, in the given order.
func (s ShareSet) Subset(indices ...byte) ([]Share, error) {
	subset := make([]Share, 0, len(indices))

	for _, index := range indices {
		if index == 0 || int(index) > len(s.Shares) {
			return nil, fmt.Errorf("%w: no share with index %d", ErrDuplicateOrInvalidShare, index)
		}

		subset = append(subset, s.Shares[index-1])
	}

	return subset, nil
}

// ValidateParams checks 2 <= threshold <= total <= 255.
func ValidateParams(threshold, total int) error {
	switch {
	case threshold < MinThreshold:
		return fmt.Errorf("%w: threshold %d is below %d", ErrInvalidThreshold, threshold, MinThreshold)
	case total > MaxShares:
		return fmt.Errorf("%w: %d shares exceed the maximum of %d", ErrInvalidThreshold, total, MaxShares)
	case threshold > total:
		return fmt.Errorf("%w: threshold %d exceeds %d shares", ErrInvalidThreshold, threshold, total)
	}

	return nil
}
