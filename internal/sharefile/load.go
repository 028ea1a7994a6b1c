package sharefile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"
	"golang.org/x/sync/errgroup"
)

// Load reads the records of one share file. The file holds a single record or an array.
func Load(path string) ([]Record, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is user supplied
	if err != nil {
		return nil, fmt.Errorf("reading share file %q: %w", path, err)
	}

	records, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing share file %q: %w", path, err)
	}

	return records, nil
}

// Parse decodes and validates the records in data.
func Parse(data []byte) ([]Record, error) {
	clean := bytes.TrimSpace(jsonc.ToJSON(data))

	var records []Record

	switch {
	case len(clean) == 0:
		return nil, fmt.Errorf("%w: empty document", ErrInvalidRecord)
	case clean[0] == '[':
		if err := json.Unmarshal(clean, &records); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
		}
	default:
		var record Record
		if err := json.Unmarshal(clean, &record); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
		}

		records = append(records, record)
	}

	for i, record := range records {
		if err := record.Validate(); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
	}

	return records, nil
}

// LoadAll loads paths with at most parallel concurrent reads.
// Records are returned in the order of paths.
func LoadAll(paths []string, parallel int) ([]Record, error) {
	loaded := make([][]Record, len(paths))

	var g errgroup.Group
	if parallel > 0 {
		g.SetLimit(parallel)
	}

	for i, path := range paths {
		g.Go(func() error {
			records, err := Load(path)
			if err != nil {
				return err
			}

			loaded[i] = records

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var records []Record
	for _, batch := range loaded {
		records = append(records, batch...)
	}

	return records, nil
}
