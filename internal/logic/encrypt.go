package logic

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/idelchi/goshare/internal/encryption"
	"github.com/idelchi/goshare/internal/fileutil"
	"github.com/idelchi/goshare/internal/secret"
	"github.com/idelchi/goshare/internal/sharefile"
)

// encrypt encrypts cfg.File and writes the cipher file and its shares.
// If any write fails, every file this run created is removed again.
// Files that existed before, and were overwritten under --force, are left in place.
func (r *Runner) encrypt() (err error) {
	start := time.Now()
	input := r.cfg.File
	cipherPath := input + r.cfg.Suffixes.Encrypt

	src, err := fileutil.Stat(input)
	if err != nil {
		return err
	}

	if err := r.checkOutputs(append([]string{cipherPath}, r.sharePaths(input)...)...); err != nil {
		return err
	}

	if r.cfg.Dry {
		r.printf("Would encrypt %q -> %q\n", input, cipherPath)

		for _, path := range r.sharePaths(input) {
			r.printf("Would write share %q\n", path)
		}

		r.printStats(stats{input: src.Info.Size(), shares: r.cfg.Split.Total, duration: time.Since(start)})

		return nil
	}

	plaintext, err := os.ReadFile(input) //nolint:gosec // path is user supplied
	if err != nil {
		return fmt.Errorf("reading %q: %w", input, err)
	}
	defer secret.Wipe(plaintext)

	setID, err := uuid.NewRandom()
	if err != nil {
		return fmt.Errorf("generating set id: %w", err)
	}

	header := encryption.NewHeader(src.IsExec, setID)

	blob, set, err := r.escrow.SplitAndEncryptWithID(setID, plaintext, r.cfg.Split.Threshold, r.cfg.Split.Total, header.Bytes())
	if err != nil {
		return fmt.Errorf("encrypting %q: %w", input, err)
	}

	r.logger.Debug("split key", "set", set.ID, "threshold", set.Threshold, "shares", set.Total)

	var artifacts fileutil.Artifacts

	defer func() {
		if err == nil {
			return
		}

		if rmErr := artifacts.Remove(); rmErr != nil {
			r.logger.Warn("removing partial output", "error", rmErr)
		}
	}()

	if err = artifacts.Write(cipherPath, encryption.Marshal(header, blob), fileutil.OwnerReadWrite); err != nil {
		return err
	}

	size, err := fileutil.FinalizeOutput(cipherPath, r.cfg.PreserveTimestamps, src.Info.ModTime())
	if err != nil {
		return fmt.Errorf("finalizing output: %w", err)
	}

	r.printf("Processed %q -> %q\n", input, cipherPath)

	if err = r.writeShares(input, sharefile.FromSet(set), &artifacts); err != nil {
		return fmt.Errorf("writing shares: %w", err)
	}

	if err = r.deleteInput(input); err != nil {
		return err
	}

	r.printStats(stats{input: src.Info.Size(), output: size, shares: set.Total, duration: time.Since(start)})

	return nil
}

// checkOutputs refuses to overwrite existing outputs unless --force is set.
func (r *Runner) checkOutputs(paths ...string) error {
	if r.cfg.Force {
		return nil
	}

	if err := fileutil.CheckAbsent(paths...); err != nil {
		return fmt.Errorf("%w (use --force to overwrite)", err)
	}

	return nil
}

// sharePaths lists the share files an encryption of input produces.
func (r *Runner) sharePaths(input string) []string {
	if r.cfg.Split.Bundle {
		return []string{sharefile.BundlePath(input)}
	}

	paths := make([]string, r.cfg.Split.Total)
	for i := range paths {
		paths[i] = sharefile.Path(input, i+1)
	}

	return paths
}

// writeShares writes one file per record, in parallel, or a single bundle.
func (r *Runner) writeShares(input string, records []sharefile.Record, artifacts *fileutil.Artifacts) error {
	if r.cfg.Split.Bundle {
		path := sharefile.BundlePath(input)

		data, err := sharefile.MarshalBundle(records)
		if err != nil {
			return err
		}

		if err := artifacts.Write(path, data, fileutil.OwnerReadWrite); err != nil {
			return err
		}

		r.printf("Wrote %d shares -> %q\n", len(records), path)

		return nil
	}

	var g errgroup.Group
	if r.cfg.Parallel > 0 {
		g.SetLimit(r.cfg.Parallel)
	}

	for _, record := range records {
		g.Go(func() error {
			path := sharefile.Path(input, record.Index)

			data, err := sharefile.Marshal(record)
			if err != nil {
				return err
			}

			return artifacts.Write(path, data, fileutil.OwnerReadWrite)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	for _, record := range records {
		r.printf("Wrote share %d/%d -> %q\n", record.Index, record.Total, sharefile.Path(input, record.Index))
	}

	return nil
}
