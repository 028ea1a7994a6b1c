package sharefile

import (
	"bytes"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/idelchi/goshare/internal/shamir"
)

// Collection is a consistent group of shares from one split.
type Collection struct {
	// SetID identifies the split.
	SetID uuid.UUID

	// Threshold and Total are the parameters the split declared.
	Threshold int
	Total     int

	// Shares holds one share per distinct index, ordered by index.
	Shares []shamir.Share
}

// Indices returns the share indices present.
func (c Collection) Indices() []int {
	indices := make([]int, len(c.Shares))
	for i, share := range c.Shares {
		indices[i] = int(share.Index)
	}

	return indices
}

// Quorum reports whether at least Threshold shares are present.
func (c Collection) Quorum() bool {
	return len(c.Shares) >= c.Threshold
}

// Missing returns how many more shares are needed for a quorum.
func (c Collection) Missing() int {
	return max(c.Threshold-len(c.Shares), 0)
}

// FilterSet keeps the records of set id and counts the others.
func FilterSet(records []Record, id uuid.UUID) (kept []Record, skipped int) {
	for _, record := range records {
		if recordID, err := record.SetID(); err == nil && recordID != id {
			skipped++

			continue
		}

		kept = append(kept, record)
	}

	return kept, skipped
}

// Collect checks that records come from one split and converts them to shares.
// Identical duplicates are dropped; conflicting ones are an error.
func Collect(records []Record) (Collection, error) {
	if len(records) == 0 {
		return Collection{}, fmt.Errorf("%w: no records", ErrInconsistent)
	}

	first := records[0]

	setID, err := first.SetID()
	if err != nil {
		return Collection{}, err
	}

	collection := Collection{
		SetID:     setID,
		Threshold: first.Threshold,
		Total:     first.Total,
	}

	byIndex := make(map[byte]shamir.Share, len(records))
	length := -1

	for _, record := range records {
		share, err := record.Share()
		if err != nil {
			return Collection{}, err
		}

		id, err := record.SetID()
		if err != nil {
			return Collection{}, err
		}

		switch {
		case id != setID:
			return Collection{}, fmt.Errorf(
				"%w: share %d belongs to set %s, not %s; are share files of an earlier split left over?",
				ErrInconsistent, record.Index, id, setID)
		case record.Threshold != collection.Threshold || record.Total != collection.Total:
			return Collection{}, fmt.Errorf("%w: share %d declares %d-of-%d, expected %d-of-%d",
				ErrInconsistent, record.Index, record.Threshold, record.Total,
				collection.Threshold, collection.Total)
		case length >= 0 && len(share.Values) != length:
			return Collection{}, fmt.Errorf("%w: share %d holds %d bytes, expected %d",
				ErrInconsistent, record.Index, len(share.Values), length)
		}

		length = len(share.Values)

		if existing, ok := byIndex[share.Index]; ok {
			if !bytes.Equal(existing.Values, share.Values) {
				return Collection{}, fmt.Errorf("%w: conflicting records for share %d", ErrInconsistent, share.Index)
			}

			continue
		}

		byIndex[share.Index] = share
	}

	for _, share := range byIndex {
		collection.Shares = append(collection.Shares, share)
	}

	slices.SortFunc(collection.Shares, func(a, b shamir.Share) int {
		return int(a.Index) - int(b.Index)
	})

	return collection, nil
}
