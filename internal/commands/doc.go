// Package commands provides the command-line interface for the goshare tool.
//
// It implements commands for:
//   - encryption, splitting the key into shares
//   - decryption from a quorum of shares
//   - checking share files
//
// The package handles command-line parsing, configuration validation,
// and environment variable binding through cobra and viper.
package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/idelchi/gogen/pkg/cobraext"

	"github.com/idelchi/goshare/internal/config"
	"github.com/idelchi/goshare/internal/logging"
	"github.com/idelchi/goshare/internal/logic"
)

// preRun returns a PreRunE handler that records the command and the positional file
// in cfg, then unmarshals and validates the configuration.
func preRun(cfg *config.Config, command config.Command) func(*cobra.Command, []string) error {
	return func(_ *cobra.Command, args []string) error {
		cfg.Command = command

		if len(args) > 0 {
			cfg.File = args[0]
		}

		return cobraext.Validate(cfg, cfg)
	}
}

// run executes the configured command.
func run(cfg *config.Config) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		logger := logging.New(os.Stderr, cfg.Verbose, cfg.Quiet)

		return logic.New(cfg, logic.WithLogger(logger), logic.WithOutput(cmd.OutOrStdout(), cmd.ErrOrStderr())).Run()
	}
}
