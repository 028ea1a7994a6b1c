// Package config holds the resolved command-line configuration.
package config

import (
	"errors"
	"fmt"

	"github.com/idelchi/gogen/pkg/validator"

	"github.com/idelchi/goshare/internal/shamir"
)

// Command selects what a run does.
type Command string

const (
	// Encrypt splits a fresh key and encrypts one file.
	Encrypt Command = "encrypt"
	// Decrypt reconstructs the key from shares and decrypts one file.
	Decrypt Command = "decrypt"
	// Check validates share files without reconstructing.
	Check Command = "check"
)

// Suffixes holds the file name suffixes for encrypted and decrypted output.
type Suffixes struct {
	Encrypt string `label:"--encrypt-ext" mapstructure:"encrypt-ext" validate:"required,excludesall=/"`
	Decrypt string `label:"--decrypt-ext" mapstructure:"decrypt-ext" validate:"excludesall=/"`
}

// Split holds the threshold parameters for encryption.
type Split struct {
	Threshold int  `label:"--threshold" mapstructure:"threshold"`
	Total     int  `label:"--shares"    mapstructure:"shares"`
	Bundle    bool `label:"--bundle"    mapstructure:"bundle"`
}

// Config represents the application configuration.
type Config struct {
	// Command is set by the subcommand, not by a flag.
	Command Command `mapstructure:"-" validate:"oneof=encrypt decrypt check"`

	Show     bool `label:"--show"     mapstructure:"show"`
	Parallel int  `label:"--parallel" mapstructure:"parallel" validate:"min=1"`
	Quiet    bool `label:"--quiet"    mapstructure:"quiet"`
	Verbose  bool `label:"--verbose"  mapstructure:"verbose"  validate:"exclusive=Quiet"`

	Delete             bool `label:"--delete"              mapstructure:"delete"`
	Force              bool `label:"--force"               mapstructure:"force"`
	PreserveTimestamps bool `label:"--preserve-timestamps" mapstructure:"preserve-timestamps"`
	Stats              bool `label:"--stats"               mapstructure:"stats"`
	Dry                bool `label:"--dry"                 mapstructure:"dry"`

	Suffixes Suffixes `mapstructure:",squash"`
	Split    Split    `mapstructure:",squash"`

	// Shares lists share files or directories for decrypt and check.
	Shares []string `label:"--share" mapstructure:"share" validate:"dive,required"`

	// File is the positional input for encrypt and decrypt.
	File string `label:"file" mapstructure:"-"`
}

// Display returns the value of the Show field.
func (c *Config) Display() bool {
	return c.Show
}

// Validate validates the configuration against the struct tags, then checks what
// depends on the command.
func (c *Config) Validate(config any) error {
	validator := validator.NewValidator()

	if err := registerExclusive(validator); err != nil {
		return fmt.Errorf("registering exclusive: %w", err)
	}

	if errs := validator.Validate(config); len(errs) > 0 {
		return errors.Join(errs...)
	}

	switch c.Command {
	case Encrypt:
		if c.File == "" {
			return errors.New("encrypt needs a file")
		}

		if err := shamir.ValidateParams(c.Split.Threshold, c.Split.Total); err != nil {
			return err
		}
	case Decrypt:
		if c.File == "" {
			return errors.New("decrypt needs a file")
		}

		fallthrough
	case Check:
		if len(c.Shares) == 0 {
			return errors.New("at least one --share is required")
		}
	}

	return nil
}
