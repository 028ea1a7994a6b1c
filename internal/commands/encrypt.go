package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/goshare/internal/config"
)

// NewEncryptCommand creates a new cobra command for the encrypt subcommand.
func NewEncryptCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "encrypt [flags] file",
		Aliases: []string{"enc"},
		Short:   "Encrypt a file and split its key into shares",
		Example: "  goshare encrypt -t 3 -n 5 report.pdf",
		Args:    cobra.ExactArgs(1),
		PreRunE: preRun(cfg, config.Encrypt),
		RunE:    run(cfg),
	}

	cmd.Flags().IntP("threshold", "t", 0, "Number of shares needed to decrypt")
	cmd.Flags().IntP("shares", "n", 0, "Number of shares to create")
	cmd.Flags().Bool("bundle", false, "Write all shares into a single file")

	return cmd
}
