package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/goshare/internal/config"
)

// NewDecryptCommand creates a new cobra command for the decrypt subcommand.
func NewDecryptCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "decrypt [flags] file",
		Aliases: []string{"dec"},
		Short:   "Decrypt a file from a quorum of shares",
		Example: "  goshare decrypt -s shares/ report.pdf.enc",
		Args:    cobra.ExactArgs(1),
		PreRunE: preRun(cfg, config.Decrypt),
		RunE:    run(cfg),
	}

	shareFlag(cmd)

	return cmd
}

// shareFlag adds the repeatable --share flag.
func shareFlag(cmd *cobra.Command) {
	cmd.Flags().StringSliceP("share", "s", nil, "Share file or directory of share files (repeatable)")
}
