package gf256

import "fmt"

const (
	// Polynomial is the irreducible reduction polynomial of the field.
	Polynomial = 0x11b
	// Generator generates the multiplicative group of the field.
	Generator = 0x03

	// order is the size of the multiplicative group.
	order = 255
)

// Field holds the precomputed tables for GF(2^8) arithmetic.
type Field struct {
	// exp[i] = Generator^i, stored twice over so that exp[log a + log b] needs no reduction.
	exp [2 * order]byte

	// log[a] is the discrete logarithm of a. log[0] is unused.
	log [256]byte
}

// New builds the exponent and logarithm tables.
func New() *Field {
	field := &Field{}

	x := byte(1)

	for i := range order {
		field.exp[i] = x
		field.exp[i+order] = x
		field.log[x] = byte(i)

		x = slowMul(x, Generator)
	}

	return field
}

// Add returns a + b, which in characteristic 2 is XOR. Subtraction is the same operation.
func (f *Field) Add(a, b byte) byte {
	return a ^ b
}

// Mul returns a * b.
func (f *Field) Mul(a, b byte) byte {
	if a == 0 || b == 0 {
		return 0
	}

	return f.exp[int(f.log[a])+int(f.log[b])]
}

// Inverse returns the multiplicative inverse of a.
func (f *Field) Inverse(a byte) (byte, error) {
	if a == 0 {
		return 0, fmt.Errorf("%w: inverse of 0", ErrDivisionByZero)
	}

	return f.exp[order-int(f.log[a])], nil
}

// Div returns a / b.
func (f *Field) Div(a, b byte) (byte, error) {
	inv, err := f.Inverse(b)
	if err != nil {
		return 0, fmt.Errorf("dividing %#02x: %w", a, err)
	}

	return f.Mul(a, inv), nil
}

// slowMul multiplies without tables, reducing by Polynomial as it goes.
// Only used to build the tables.
func slowMul(a, b byte) byte {
	var product byte

	for b > 0 {
		if b&1 != 0 {
			product ^= a
		}

		carry := a & 0x80
		a <<= 1

		if carry != 0 {
			a ^= Polynomial & 0xff
		}

		b >>= 1
	}

	return product
}
