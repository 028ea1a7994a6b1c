package gf256_test

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/goccy/go-yaml"

	"github.com/idelchi/goshare/internal/gf256"
)

// Case is a single arithmetic vector from a YAML golden file.
type Case struct {
	Op          string `yaml:"op"`
	A           string `yaml:"a"`
	B           string `yaml:"b"`
	Want        string `yaml:"want"`
	Description string `yaml:"description,omitempty"`
}

// Group is a named collection of vectors.
type Group struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Cases       []Case `yaml:"cases"`
}

func loadVectors(t *testing.T) []Group {
	t.Helper()

	files, err := filepath.Glob("testdata/*.yml")
	if err != nil {
		t.Fatalf("globbing testdata: %v", err)
	}

	if len(files) == 0 {
		t.Fatal("no testdata/*.yml files found")
	}

	var all []Group

	for _, f := range files {
		data, err := os.ReadFile(f) //nolint:gosec // test helper reads known testdata files
		if err != nil {
			t.Fatalf("reading %s: %v", f, err)
		}

		var groups []Group
		if err := yaml.Unmarshal(data, &groups); err != nil {
			t.Fatalf("parsing %s: %v", f, err)
		}

		all = append(all, groups...)
	}

	return all
}

func parseByte(t *testing.T, s string) byte {
	t.Helper()

	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		t.Fatalf("parsing %q: %v", s, err)
	}

	return byte(v)
}

// TestVectors runs the golden vectors against a fresh field.
func TestVectors(t *testing.T) {
	t.Parallel()

	field := gf256.New()

	for _, g := range loadVectors(t) {
		t.Run(g.Name, func(t *testing.T) {
			t.Parallel()

			for i, tc := range g.Cases {
				desc := tc.Description
				if desc == "" {
					desc = fmt.Sprintf("case_%d", i)
				}

				t.Run(desc, func(t *testing.T) {
					t.Parallel()

					a := parseByte(t, tc.A)
					want := parseByte(t, tc.Want)

					var (
						got byte
						err error
					)

					switch tc.Op {
					case "mul":
						got = field.Mul(a, parseByte(t, tc.B))
					case "add":
						got = field.Add(a, parseByte(t, tc.B))
					case "inv":
						got, err = field.Inverse(a)
					case "div":
						got, err = field.Div(a, parseByte(t, tc.B))
					default:
						t.Fatalf("unknown op %q", tc.Op)
					}

					if err != nil {
						t.Fatalf("%s(%s, %s) error: %v", tc.Op, tc.A, tc.B, err)
					}

					if got != want {
						t.Errorf("%s(%s, %s) = %#02x, want %#02x", tc.Op, tc.A, tc.B, got, want)
					}
				})
			}
		})
	}
}

// reference multiplies bit by bit, independent of the tables under test.
func reference(a, b byte) byte {
	var p byte

	for range 8 {
		if b&1 == 1 {
			p ^= a
		}

		hi := a & 0x80
		a <<= 1

		if hi != 0 {
			a ^= 0x1b
		}

		b >>= 1
	}

	return p
}

func TestMulMatchesReference(t *testing.T) {
	t.Parallel()

	field := gf256.New()

	for a := range 256 {
		for b := range 256 {
			got := field.Mul(byte(a), byte(b))
			if want := reference(byte(a), byte(b)); got != want {
				t.Fatalf("Mul(%#02x, %#02x) = %#02x, want %#02x", a, b, got, want)
			}
		}
	}
}

func TestInverseEveryNonZeroElement(t *testing.T) {
	t.Parallel()

	field := gf256.New()

	for a := 1; a < 256; a++ {
		inv, err := field.Inverse(byte(a))
		if err != nil {
			t.Fatalf("Inverse(%#02x) error: %v", a, err)
		}

		if got := field.Mul(byte(a), inv); got != 1 {
			t.Errorf("%#02x * Inverse(%#02x) = %#02x, want 0x01", a, a, got)
		}
	}
}

func TestDivInvertsMul(t *testing.T) {
	t.Parallel()

	field := gf256.New()

	for a := range 256 {
		for b := 1; b < 256; b++ {
			q, err := field.Div(field.Mul(byte(a), byte(b)), byte(b))
			if err != nil {
				t.Fatalf("Div error: %v", err)
			}

			if q != byte(a) {
				t.Fatalf("(%#02x * %#02x) / %#02x = %#02x", a, b, b, q)
			}
		}
	}
}

func TestDivisionByZero(t *testing.T) {
	t.Parallel()

	field := gf256.New()

	if _, err := field.Inverse(0); !errors.Is(err, gf256.ErrDivisionByZero) {
		t.Errorf("Inverse(0) error = %v, want ErrDivisionByZero", err)
	}

	if _, err := field.Div(0x57, 0); !errors.Is(err, gf256.ErrDivisionByZero) {
		t.Errorf("Div(0x57, 0) error = %v, want ErrDivisionByZero", err)
	}
}

func TestMulByZero(t *testing.T) {
	t.Parallel()

	field := gf256.New()

	for a := range 256 {
		if got := field.Mul(byte(a), 0); got != 0 {
			t.Errorf("Mul(%#02x, 0) = %#02x", a, got)
		}
	}
}
