package shamir

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/idelchi/goshare/internal/gf256"
	"github.com/idelchi/goshare/internal/secret"
)

// Sharer splits and combines secrets.
type Sharer struct {
	// field provides the arithmetic; read-only.
	field *gf256.Field

	// rand is the source of polynomial coefficients.
	rand io.Reader
}

// Option configures a Sharer.
type Option func(*Sharer)

// WithRandom sets the coefficient source. It must be cryptographically secure outside of tests.
func WithRandom(r io.Reader) Option {
	return func(s *Sharer) {
		s.rand = r
	}
}

// WithField reuses an already built field.
func WithField(f *gf256.Field) Option {
	return func(s *Sharer) {
		s.field = f
	}
}

// New creates a Sharer drawing from crypto/rand by default.
func New(opts ...Option) *Sharer {
	sharer := &Sharer{}

	for _, opt := range opts {
		opt(sharer)
	}

	if sharer.field == nil {
		sharer.field = gf256.New()
	}

	if sharer.rand == nil {
		sharer.rand = rand.Reader
	}

	return sharer
}

// Split divides secret into total shares, any threshold of which reconstruct it.
// The coefficient buffer is wiped before returning.
func (s *Sharer) Split(secretBytes []byte, threshold, total int) (ShareSet, error) {
	if err := ValidateParams(threshold, total); err != nil {
		return ShareSet{}, err
	}

	degree := threshold - 1

	// Row i holds c_1..c_{t-1} of the polynomial for byte i.
	coefficients := make([]byte, len(secretBytes)*degree)
	defer secret.Wipe(coefficients)

	if _, err := io.ReadFull(s.rand, coefficients); err != nil {
		return ShareSet{}, fmt.Errorf("drawing coefficients: %w", err)
	}

	shares := make([]Share, total)
	for j := range shares {
		shares[j] = Share{
			Index:  byte(j + 1),
			Values: make([]byte, len(secretBytes)),
		}
	}

	for i, constant := range secretBytes {
		row := coefficients[i*degree : (i+1)*degree]

		for j := range shares {
			shares[j].Values[i] = s.evaluate(constant, row, shares[j].Index)
		}
	}

	return ShareSet{
		Threshold: threshold,
		Total:     total,
		Shares:    shares,
	}, nil
}

// evaluate computes constant + row[0]*x + ... + row[d-1]*x^d by Horner's method.
func (s *Sharer) evaluate(constant byte, row []byte, x byte) byte {
	var y byte

	for k := len(row) - 1; k >= 0; k-- {
		y = s.field.Add(s.field.Mul(y, x), row[k])
	}

	return s.field.Add(s.field.Mul(y, x), constant)
}

// Combine interpolates the shares at zero and returns the candidate secret.
// All supplied shares take part in the interpolation.
func (s *Sharer) Combine(shares []Share) ([]byte, error) {
	if len(shares) < MinThreshold {
		return nil, fmt.Errorf("%w: at least %d shares required, got %d",
			ErrDuplicateOrInvalidShare, MinThreshold, len(shares))
	}

	length := len(shares[0].Values)

	var seen [256]bool

	for _, share := range shares {
		if share.Index == 0 {
			return nil, fmt.Errorf("%w: share index 0 is reserved", ErrDuplicateOrInvalidShare)
		}

		if seen[share.Index] {
			return nil, fmt.Errorf("%w: index %d supplied twice", ErrDuplicateOrInvalidShare, share.Index)
		}

		seen[share.Index] = true

		if len(share.Values) != length {
			return nil, fmt.Errorf("%w: share %d holds %d bytes, expected %d",
				ErrDuplicateOrInvalidShare, share.Index, len(share.Values), length)
		}
	}

	weights, err := s.lagrangeWeights(shares)
	if err != nil {
		return nil, err
	}

	recovered := make([]byte, length)

	for i := range recovered {
		var value byte

		for j, share := range shares {
			value = s.field.Add(value, s.field.Mul(share.Values[i], weights[j]))
		}

		recovered[i] = value
	}

	return recovered, nil
}

// lagrangeWeights returns l_j(0) = prod_{k != j} x_k / (x_j - x_k) for every share.
// They depend only on the indices, so they are shared by all byte positions.
func (s *Sharer) lagrangeWeights(shares []Share) ([]byte, error) {
	weights := make([]byte, len(shares))

	for j, sj := range shares {
		numerator, denominator := byte(1), byte(1)

		for k, sk := range shares {
			if k == j {
				continue
			}

			// 0 - x_k is x_k in characteristic 2.
			numerator = s.field.Mul(numerator, sk.Index)
			denominator = s.field.Mul(denominator, s.field.Add(sj.Index, sk.Index))
		}

		weight, err := s.field.Div(numerator, denominator)
		if err != nil {
			return nil, fmt.Errorf("weighting share %d: %w", sj.Index, err)
		}

		weights[j] = weight
	}

	return weights, nil
}
