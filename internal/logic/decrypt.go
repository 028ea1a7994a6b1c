package logic

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/idelchi/goshare/internal/encryption"
	"github.com/idelchi/goshare/internal/fileutil"
	"github.com/idelchi/goshare/internal/secret"
	"github.com/idelchi/goshare/internal/sharefile"
)

// decrypt reconstructs the key from the configured shares and decrypts cfg.File.
func (r *Runner) decrypt() error {
	start := time.Now()
	input := r.cfg.File

	outPath, err := r.decryptedPath(input)
	if err != nil {
		return err
	}

	src, err := fileutil.Stat(input)
	if err != nil {
		return err
	}

	if err := r.checkOutputs(outPath); err != nil {
		return err
	}

	data, err := os.ReadFile(input) //nolint:gosec // path is user supplied
	if err != nil {
		return fmt.Errorf("reading %q: %w", input, err)
	}

	header, blob, err := encryption.Unmarshal(data)
	if err != nil {
		return fmt.Errorf("reading %q: %w", input, err)
	}

	collection, err := r.loadShares(header.SetID)
	if err != nil {
		return err
	}

	if !collection.Quorum() {
		r.logger.Warn("fewer shares than the threshold", "present", len(collection.Shares), "threshold", collection.Threshold)
	}

	if r.cfg.Dry {
		r.printf("Would decrypt %q -> %q with shares %v\n", input, outPath, collection.Indices())
		r.printStats(stats{input: src.Info.Size(), shares: len(collection.Shares), duration: time.Since(start)})

		return nil
	}

	plaintext, err := r.escrow.ReconstructAndDecrypt(blob, collection.Shares, data[:encryption.HeaderSize])
	if err != nil {
		return fmt.Errorf("decrypting %q: %w", input, err)
	}
	defer secret.Wipe(plaintext)

	if err := fileutil.WriteFile(outPath, plaintext, fileutil.Perm(header.Executable)); err != nil {
		return err
	}

	size, err := fileutil.FinalizeOutput(outPath, r.cfg.PreserveTimestamps, src.Info.ModTime())
	if err != nil {
		return fmt.Errorf("finalizing output: %w", err)
	}

	r.printf("Processed %q -> %q\n", input, outPath)

	if err := r.deleteInput(input); err != nil {
		return err
	}

	r.printStats(stats{input: src.Info.Size(), output: size, shares: len(collection.Shares), duration: time.Since(start)})

	return nil
}

// decryptedPath strips the encrypt suffix and appends the decrypt suffix.
func (r *Runner) decryptedPath(input string) (string, error) {
	out := strings.TrimSuffix(input, r.cfg.Suffixes.Encrypt) + r.cfg.Suffixes.Decrypt

	if out == input || out == "" {
		return "", fmt.Errorf("%q has no %q suffix to strip, set --decrypt-ext", input, r.cfg.Suffixes.Encrypt)
	}

	return out, nil
}

// loadShares resolves, loads and collects the configured share files.
// With a non-nil set, records of other sets are skipped.
func (r *Runner) loadShares(set uuid.UUID) (sharefile.Collection, error) {
	paths, err := sharefile.Resolve(r.cfg.Shares)
	if err != nil {
		return sharefile.Collection{}, err
	}

	r.logger.Debug("resolved share files", "count", len(paths))

	records, err := sharefile.LoadAll(paths, r.cfg.Parallel)
	if err != nil {
		return sharefile.Collection{}, err
	}

	if set != uuid.Nil {
		kept, skipped := sharefile.FilterSet(records, set)
		if skipped > 0 {
			r.logger.Info("skipped share files of another set", "count", skipped, "set", set)
		}

		if len(kept) == 0 {
			return sharefile.Collection{}, fmt.Errorf("%w: none of %d share records belong to set %s", sharefile.ErrInconsistent, len(records), set)
		}

		records = kept
	}

	collection, err := sharefile.Collect(records)
	if err != nil {
		return sharefile.Collection{}, err
	}

	r.logger.Debug("collected shares", "set", collection.SetID, "indices", collection.Indices())

	return collection, nil
}
