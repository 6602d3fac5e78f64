// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

var (
	// Input options
	fenInput     = flag.String("fen", "", "Evaluate a single position (FEN, optionally followed by 'moves e2e4 ...')")
	fileListFile = flag.String("f", "", "File containing list of position files to process (one per line)")

	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	jsonOutput   = flag.Bool("J", false, "Output in JSON format")
	listMoves    = flag.Bool("moves", false, "List the legal moves of every piece")
	showBoard    = flag.Bool("board", false, "Draw the board after each report")

	// Evaluation options
	sideToMove = flag.String("side", "", "Evaluate for this side (w or b) regardless of the FEN")

	// Status filters
	checkFilter     = flag.Bool("check", false, "Only output positions where the side to move is in check")
	checkmateFilter = flag.Bool("checkmate", false, "Only output checkmated positions")
	stalemateFilter = flag.Bool("stalemate", false, "Only output stalemated positions")
	stopAfter       = flag.Int("stopafter", 0, "Stop after matching N positions")

	// Material matching
	materialMatch      = flag.String("z", "", "Material balance to match (e.g., 'QR:qrr')")
	materialMatchExact = flag.String("y", "", "Exact material balance to match")

	// Duplicate detection
	suppressDuplicates = flag.Bool("D", false, "Suppress positions already reported")
	duplicateFile      = flag.String("d", "", "Output suppressed duplicates to this file")
	duplicateCapacity  = flag.Int("duplicate-capacity", 0, "Maximum remembered positions (0 = unlimited)")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (no position count)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")

	// Performance options
	workers = flag.Int("workers", 0, "Number of worker threads (0 = auto-detect based on CPU cores)")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	applyOutputFlags(cfg)
	applyFilterFlags(cfg)
	applyDuplicateFlags(cfg)
	if err := applySideFlag(cfg); err != nil {
		return err
	}

	cfg.Analysis.Workers = *workers
	cfg.Analysis.StopAfter = *stopAfter
	if *quiet {
		cfg.Verbosity = 0
	}
	return cfg.Validate()
}

// applyOutputFlags configures the report format.
func applyOutputFlags(cfg *config.Config) {
	if *jsonOutput {
		cfg.Output.Format = config.JSON
	} else {
		cfg.Output.Format = config.Text
	}
	cfg.Output.ListMoves = *listMoves
	cfg.Output.ShowBoard = *showBoard
}

// applyFilterFlags configures the status and material filters.
func applyFilterFlags(cfg *config.Config) {
	cfg.Analysis.MatchCheck = *checkFilter
	cfg.Analysis.MatchCheckmate = *checkmateFilter
	cfg.Analysis.MatchStalemate = *stalemateFilter

	switch {
	case *materialMatchExact != "":
		cfg.Analysis.MaterialPattern = *materialMatchExact
		cfg.Analysis.MaterialExact = true
	case *materialMatch != "":
		cfg.Analysis.MaterialPattern = *materialMatch
	}
}

// applyDuplicateFlags configures duplicate detection settings.
// The duplicate file itself is opened by setupDuplicateFile.
func applyDuplicateFlags(cfg *config.Config) {
	cfg.Duplicate.Suppress = *suppressDuplicates
	cfg.Duplicate.MaxCapacity = *duplicateCapacity
}

// applySideFlag overrides the side to move when -side is given.
func applySideFlag(cfg *config.Config) error {
	if *sideToMove == "" {
		return nil
	}
	side, err := parseSide(*sideToMove)
	if err != nil {
		return err
	}
	cfg.Analysis.OverrideSide = true
	cfg.Analysis.Side = side
	return nil
}

// parseSide accepts w, b, white or black in any case.
func parseSide(s string) (chess.Colour, error) {
	switch strings.ToLower(s) {
	case "w", "white":
		return chess.White, nil
	case "b", "black":
		return chess.Black, nil
	}
	return chess.White, fmt.Errorf("side %q: %w", s, errors.ErrInvalidConfig)
}
