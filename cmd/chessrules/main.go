// chessrules evaluates chess positions: legal moves, check, checkmate and stalemate.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/output"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessrules-go version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)
	setupDuplicateFile(cfg)

	positions := collectPositions(cfg, *fenInput, *fileListFile, flag.Args(), os.Stdin)
	writer := output.NewWriter(cfg.OutputFile, cfg.Output)
	stats := evaluatePositions(positions, cfg, writer)

	if closer, ok := cfg.OutputFile.(*os.File); ok && closer != os.Stdout {
		closer.Close() //nolint:errcheck,gosec // G104: cleanup on exit
	}

	reportStatistics(cfg, stats)
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

// setupDuplicateFile configures the duplicate output file.
func setupDuplicateFile(cfg *config.Config) {
	if *duplicateFile == "" {
		return
	}

	file, err := os.Create(*duplicateFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating duplicate file %s: %v\n", *duplicateFile, err)
		os.Exit(1)
	}
	cfg.Duplicate.DuplicateFile = file
}

// reportStatistics prints the final statistics to the log.
func reportStatistics(cfg *config.Config, stats Stats) {
	if cfg.Analysis.Filtering() || cfg.Analysis.MaterialPattern != "" {
		cfg.Logf(1, "%d position(s) matched out of %d.\n", stats.Matched, stats.Total)
	} else {
		cfg.Logf(1, "%d position(s) evaluated.\n", stats.Total)
	}
	if cfg.Duplicate.Enabled() {
		cfg.Logf(1, "%d duplicate(s) suppressed.\n", stats.Duplicates)
	}
	if stats.Failed > 0 {
		cfg.Logf(1, "%d position(s) could not be evaluated.\n", stats.Failed)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessrules [options] [input-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Evaluates chess positions for check, checkmate and stalemate.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nInput lines (files or stdin, one per line, # for comments):\n")
	fmt.Fprintf(os.Stderr, "  <fen>                       Evaluate the position\n")
	fmt.Fprintf(os.Stderr, "  <fen> moves e2e4 e7e5 ...   Play the moves first\n")
	fmt.Fprintf(os.Stderr, "  startpos moves e2e4 ...     Play from the initial position\n")
	fmt.Fprintf(os.Stderr, "\nMoves are coordinate pairs; add q, r, b or n to choose a promotion.\n")
}
