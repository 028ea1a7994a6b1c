package commands

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/idelchi/gogen/pkg/cobraext"

	"github.com/idelchi/goshare/internal/config"
)

// NewRootCommand creates the root command with common configuration.
// It sets up environment variable binding (GOSHARE_*) and flag handling.
func NewRootCommand(cfg *config.Config, version string) *cobra.Command {
	root := cobraext.NewDefaultRootCommand(version)

	root.Use = "goshare [flags] command [flags]"
	root.Short = "Threshold-escrowed file encryption"
	root.Long = `Encrypts a file under a fresh random key and splits that key into shares.
Any threshold of the shares decrypts the file; fewer reveal nothing about the key.`

	flags := root.PersistentFlags()

	flags.Bool("show", false, "Show the configuration and exit")
	flags.IntP("parallel", "j", runtime.NumCPU(), "Number of parallel share reads and writes, defaults to number of CPUs")
	flags.BoolP("quiet", "q", false, "Suppress non-error output")
	flags.BoolP("verbose", "v", false, "Log debug output")
	flags.Bool("delete", false, "Delete the input file after successful encryption/decryption")
	flags.BoolP("force", "f", false, "Overwrite existing output files")
	flags.Bool("preserve-timestamps", false, "Copy the input modification time to the output")
	flags.Bool("stats", false, "Print sizes and duration after the run")
	flags.Bool("dry", false, "Print planned outputs without writing anything")

	flags.String("encrypt-ext", ".enc", "Suffix to append to encrypted files")
	flags.String("decrypt-ext", "", "Suffix to append to decrypted files, after stripping the encrypted suffix")

	root.AddCommand(
		NewEncryptCommand(cfg),
		NewDecryptCommand(cfg),
		NewCheckCommand(cfg),
	)

	return root
}
