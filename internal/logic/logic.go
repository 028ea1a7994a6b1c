// Package logic implements the encrypt, decrypt and check runs of the CLI.
package logic

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/idelchi/goshare/internal/config"
	"github.com/idelchi/goshare/internal/escrow"
	"github.com/idelchi/goshare/internal/logging"
)

// Runner executes one configured run.
type Runner struct {
	cfg    *config.Config
	escrow *escrow.Escrow
	logger *slog.Logger

	// out receives progress lines and reports, errOut receives statistics.
	out    io.Writer
	errOut io.Writer
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// WithEscrow replaces the default escrow.
func WithEscrow(e *escrow.Escrow) Option {
	return func(r *Runner) {
		r.escrow = e
	}
}

// WithOutput redirects stdout and stderr output.
func WithOutput(out, errOut io.Writer) Option {
	return func(r *Runner) {
		r.out = out
		r.errOut = errOut
	}
}

// New creates a Runner for cfg.
func New(cfg *config.Config, opts ...Option) *Runner {
	runner := &Runner{
		cfg:    cfg,
		out:    os.Stdout,
		errOut: os.Stderr,
	}

	for _, opt := range opts {
		opt(runner)
	}

	if runner.logger == nil {
		runner.logger = logging.Discard()
	}

	if runner.escrow == nil {
		runner.escrow = escrow.New(escrow.WithLogger(runner.logger))
	}

	return runner
}

// Run is the main logic of the application.
func Run(cfg *config.Config, logger *slog.Logger) error {
	return New(cfg, WithLogger(logger)).Run()
}

// Run dispatches on the configured command.
func (r *Runner) Run() error {
	switch r.cfg.Command {
	case config.Encrypt:
		return r.encrypt()
	case config.Decrypt:
		return r.decrypt()
	case config.Check:
		return r.check()
	default:
		return fmt.Errorf("unknown command %q", r.cfg.Command)
	}
}

// printf writes a progress line unless running quietly.
func (r *Runner) printf(format string, args ...any) {
	if r.cfg.Quiet {
		return
	}

	fmt.Fprintf(r.out, format, args...)
}

// deleteInput removes path after a successful run when --delete is set.
func (r *Runner) deleteInput(path string) error {
	if !r.cfg.Delete {
		return nil
	}

	if err := os.Remove(path); err != nil {
		return fmt.Errorf("deleting %q: %w", path, err)
	}

	r.printf("Deleted %q\n", path)

	return nil
}

// stats is the summary printed with --stats.
type stats struct {
	input    int64
	output   int64
	shares   int
	duration time.Duration
}

func (r *Runner) printStats(s stats) {
	if !r.cfg.Stats {
		return
	}

	fmt.Fprintf(r.errOut, "\nStats\n")
	fmt.Fprintf(r.errOut, "  Input:     %s\n", humanize.IBytes(uint64(max(0, s.input))))   //nolint:gosec // non-negative
	fmt.Fprintf(r.errOut, "  Output:    %s\n", humanize.IBytes(uint64(max(0, s.output)))) //nolint:gosec // non-negative
	fmt.Fprintf(r.errOut, "  Shares:    %d\n", s.shares)
	fmt.Fprintf(r.errOut, "  Duration:  %s\n", s.duration.Round(time.Millisecond))
}
