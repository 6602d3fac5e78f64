package config

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/matching"
)

// AnalysisConfig holds settings for evaluating positions.
type AnalysisConfig struct {
	// Workers is the number of goroutines evaluating positions
	// (0 = one per CPU).
	Workers int

	// OverrideSide evaluates every position for Side instead of the side
	// to move named in the FEN.
	OverrideSide bool
	Side         chess.Colour

	// Status filters. When any is set, only positions in one of the
	// selected states are reported.
	MatchCheck     bool
	MatchCheckmate bool
	MatchStalemate bool

	// MaterialPattern restricts reports to positions with at least (or,
	// with MaterialExact, exactly) the named pieces, e.g. "KQ:kr".
	MaterialPattern string
	MaterialExact   bool

	// StopAfter stops after this many positions are reported (0 = no limit).
	StopAfter int
}

// NewAnalysisConfig creates an AnalysisConfig with default values.
// Filters are disabled by default.
func NewAnalysisConfig() *AnalysisConfig {
	return &AnalysisConfig{}
}

// MaterialMatcher returns the matcher for MaterialPattern, or nil when no
// pattern is set.
func (a *AnalysisConfig) MaterialMatcher() *matching.MaterialMatcher {
	if a == nil || a.MaterialPattern == "" {
		return nil
	}
	return matching.NewMaterialMatcher(a.MaterialPattern, a.MaterialExact)
}

// Filtering reports whether any status filter is enabled.
func (a *AnalysisConfig) Filtering() bool {
	return a.MatchCheck || a.MatchCheckmate || a.MatchStalemate
}

// Validate checks that the analysis configuration is valid.
func (a *AnalysisConfig) Validate() error {
	if a.Workers < 0 {
		return fmt.Errorf("worker count %d: %w", a.Workers, errors.ErrInvalidConfig)
	}
	if a.StopAfter < 0 {
		return fmt.Errorf("stop after %d: %w", a.StopAfter, errors.ErrInvalidConfig)
	}
	return matching.ValidatePattern(a.MaterialPattern)
}
