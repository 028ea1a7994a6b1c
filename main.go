// Command goshare encrypts a file and escrows its key among several custodians.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/idelchi/gogen/pkg/cobraext"

	"github.com/idelchi/goshare/internal/commands"
	"github.com/idelchi/goshare/internal/config"
	"github.com/idelchi/goshare/internal/logic"
)

// Global variable for CI stamping.
var version = "unknown - unofficial & generated by unknown"

func main() {
	cfg := &config.Config{}

	root := commands.NewRootCommand(cfg, version)

	if err := root.Execute(); err != nil {
		if errors.Is(err, cobraext.ErrExitGracefully) {
			return
		}

		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", logic.Category(err), err)

		os.Exit(1)
	}
}
