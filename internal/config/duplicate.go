package config

import (
	"fmt"
	"io"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// DuplicateConfig holds settings for duplicate position detection.
type DuplicateConfig struct {
	// Suppress drops reports for positions already reported
	Suppress bool

	// MaxCapacity limits remembered positions (0 = unlimited)
	MaxCapacity int

	// DuplicateFile receives the reports that were suppressed (nil = discard)
	DuplicateFile io.Writer
}

// NewDuplicateConfig creates a DuplicateConfig with default values.
func NewDuplicateConfig() *DuplicateConfig {
	return &DuplicateConfig{}
}

// Enabled reports whether positions need to be tracked at all.
func (d *DuplicateConfig) Enabled() bool {
	return d.Suppress || d.DuplicateFile != nil
}

// Validate checks that the duplicate configuration is valid.
func (d *DuplicateConfig) Validate() error {
	if d.MaxCapacity < 0 {
		return fmt.Errorf("duplicate capacity %d: %w", d.MaxCapacity, errors.ErrInvalidConfig)
	}
	return nil
}
