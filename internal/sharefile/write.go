package sharefile

import (
	"encoding/json"
	"fmt"
	"path/filepath"
)

const (
	shareSuffix  = ".share-%d.json"
	bundleSuffix = ".shares.json"
)

// Path returns the per-share file name for input, e.g. "notes.txt.share-2.json".
func Path(input string, index int) string {
	return input + fmt.Sprintf(shareSuffix, index)
}

// BundlePath returns the single-file name for input, e.g. "notes.txt.shares.json".
func BundlePath(input string) string {
	return input + bundleSuffix
}

// Marshal encodes one record as an indented JSON object.
func Marshal(record Record) ([]byte, error) {
	return encode(record)
}

// MarshalBundle encodes records as an indented JSON array.
func MarshalBundle(records []Record) ([]byte, error) {
	return encode(records)
}

func encode(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding share records: %w", err)
	}

	return append(data, '\n'), nil
}

// IsShareFile reports whether name looks like a file written by Path or BundlePath.
func IsShareFile(name string) bool {
	base := filepath.Base(name)

	if ok, _ := filepath.Match("*.share-*.json", base); ok {
		return true
	}

	ok, _ := filepath.Match("*"+bundleSuffix, base)

	return ok
}
