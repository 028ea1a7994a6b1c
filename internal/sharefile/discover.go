package sharefile

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Resolve expands args into share file paths. Files are taken as given.
// Directories are walked for names accepted by IsShareFile.
func Resolve(args []string) ([]string, error) {
	seen := make(map[string]struct{})

	var files []string

	add := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}

		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, arg := range args {
		arg = filepath.Clean(arg)

		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("stat %q: %w", arg, err)
		}

		if !info.IsDir() {
			add(arg)

			continue
		}

		walked, err := walkDir(arg)
		if err != nil {
			return nil, err
		}

		for _, path := range walked {
			add(path)
		}
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %v", ErrNoShares, args)
	}

	return files, nil
}

// walkDir returns the share files below root in lexical order.
func walkDir(root string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() || !IsShareFile(path) {
			return nil
		}

		files = append(files, path)

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %q: %w", root, err)
	}

	return files, nil
}
