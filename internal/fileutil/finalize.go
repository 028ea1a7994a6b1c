// Package fileutil provides atomic file writes and output bookkeeping.
package fileutil

import (
	"fmt"
	"os"
	"time"
)

const (
	// OwnerReadWrite is the mode of every file goshare writes.
	OwnerReadWrite os.FileMode = 0o600

	executableBits os.FileMode = 0o111
)

// Source describes the file being processed.
type Source struct {
	Info   os.FileInfo
	IsExec bool
}

// Stat describes filename.
func Stat(filename string) (Source, error) {
	info, err := os.Stat(filename)
	if err != nil {
		return Source{}, fmt.Errorf("getting file info for %q: %w", filename, err)
	}

	if info.IsDir() {
		return Source{}, fmt.Errorf("%q is a directory", filename)
	}

	return Source{
		Info:   info,
		IsExec: info.Mode()&executableBits != 0,
	}, nil
}

// Perm returns the mode for an output file, executable when exec is set.
func Perm(exec bool) os.FileMode {
	if exec {
		return OwnerReadWrite | executableBits
	}

	return OwnerReadWrite
}

// FinalizeOutput optionally preserves timestamps and returns the output file size.
func FinalizeOutput(outPath string, preserveTimestamps bool, modTime time.Time) (int64, error) {
	if preserveTimestamps {
		if err := os.Chtimes(outPath, modTime, modTime); err != nil {
			return 0, fmt.Errorf("preserving timestamps: %w", err)
		}
	}

	outInfo, err := os.Stat(outPath)
	if err != nil {
		return 0, fmt.Errorf("stat output %q: %w", outPath, err)
	}

	return outInfo.Size(), nil
}
