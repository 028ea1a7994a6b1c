package fileutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// ErrExists is returned when an output path is already taken.
var ErrExists = errors.New("output already exists")

// TempContext holds state for an atomic file write operation.
type TempContext struct {
	TmpFile *os.File
	TmpName string
	Target  string
}

// NewTempContext creates a temp file next to outPath.
// Caller must defer CleanupOnError.
func NewTempContext(outPath string) (*TempContext, error) {
	tmpFile, err := os.CreateTemp(filepath.Dir(outPath), ".tmp-*")
	if err != nil {
		return nil, fmt.Errorf("creating temporary file: %w", err)
	}

	return &TempContext{
		TmpFile: tmpFile,
		TmpName: tmpFile.Name(),
		Target:  outPath,
	}, nil
}

// Commit syncs the temp file, sets perm and renames it onto the target.
func (tc *TempContext) Commit(perm os.FileMode) error {
	if err := tc.TmpFile.Sync(); err != nil {
		return fmt.Errorf("syncing temporary file: %w", err)
	}

	if err := tc.TmpFile.Close(); err != nil {
		return fmt.Errorf("closing temporary file: %w", err)
	}

	if err := os.Chmod(tc.TmpName, perm); err != nil {
		return fmt.Errorf("setting permissions: %w", err)
	}

	if err := os.Rename(tc.TmpName, tc.Target); err != nil {
		return fmt.Errorf("renaming to %q: %w", tc.Target, err)
	}

	return nil
}

// CleanupOnError closes the temp file and removes it if the write failed.
func (tc *TempContext) CleanupOnError(errp *error) {
	tc.TmpFile.Close() //nolint:gosec // best-effort cleanup, may already be closed

	if *errp != nil {
		os.Remove(tc.TmpName) //nolint:gosec // best-effort cleanup
	}
}

// WriteFile atomically replaces path with data. Readers see either the old file or
// the complete new one, never a partial write.
func WriteFile(path string, data []byte, perm os.FileMode) (err error) {
	tc, err := NewTempContext(path)
	if err != nil {
		return err
	}
	defer tc.CleanupOnError(&err)

	if _, err = tc.TmpFile.Write(data); err != nil {
		return fmt.Errorf("writing %q: %w", path, err)
	}

	return tc.Commit(perm)
}

// CheckAbsent fails with ErrExists for the first of paths that exists.
func CheckAbsent(paths ...string) error {
	for _, path := range paths {
		_, err := os.Lstat(path)

		switch {
		case err == nil:
			return fmt.Errorf("%w: %q", ErrExists, path)
		case !errors.Is(err, fs.ErrNotExist):
			return fmt.Errorf("stat %q: %w", path, err)
		}
	}

	return nil
}

// Artifacts tracks files created during one run so a failed run can remove them.
// Files that existed before the run are never recorded. It is safe for concurrent use.
type Artifacts struct {
	mu    sync.Mutex
	paths []string
}

// Write atomically writes path and records it if it did not exist before.
func (a *Artifacts) Write(path string, data []byte, perm os.FileMode) error {
	_, err := os.Lstat(path)
	created := errors.Is(err, fs.ErrNotExist)

	if err := WriteFile(path, data, perm); err != nil {
		return err
	}

	if created {
		a.Add(path)
	}

	return nil
}

// Add records path as created by this run.
func (a *Artifacts) Add(path string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.paths = append(a.paths, path)
}

// Paths returns the recorded paths in write order.
func (a *Artifacts) Paths() []string {
	a.mu.Lock()
	defer a.mu.Unlock()

	return append([]string(nil), a.paths...)
}

// Remove deletes every recorded file, ignoring files that are already gone.
func (a *Artifacts) Remove() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	var errs []error

	for _, path := range a.paths {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			errs = append(errs, fmt.Errorf("removing %q: %w", path, err))
		}
	}

	a.paths = nil

	return errors.Join(errs...)
}
