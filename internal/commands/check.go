package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/goshare/internal/config"
)

// NewCheckCommand creates a new cobra command for the check subcommand.
func NewCheckCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "check [flags]",
		Short:   "Validate share files and report whether they form a quorum",
		Args:    cobra.NoArgs,
		PreRunE: preRun(cfg, config.Check),
		RunE:    run(cfg),
	}

	shareFlag(cmd)

	return cmd
}
