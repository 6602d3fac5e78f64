// processor.go - Position input, parallel evaluation and report output
package main

import (
	"bufio"
	"io"
	"os"
	"runtime"
	"strings"
	"sync/atomic"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/hashing"
	"github.com/lgbarn/chessrules-go/internal/output"
	"github.com/lgbarn/chessrules-go/internal/processing"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

// Stats counts what happened to the positions of a run.
type Stats struct {
	Total      int // Positions evaluated
	Matched    int // Positions written to output
	Failed     int // Positions that could not be set up or replayed
	Duplicates int // Matching positions dropped as repeats
}

// processInput reads every position from r. Indexes continue from first.
func processInput(r io.Reader, name string, first int, cfg *config.Config) []processing.Position {
	cfg.CurrentInputFile = name

	positions, err := processing.ReadPositions(r, name, first)
	if err != nil {
		cfg.Logf(0, "Error reading %s: %v\n", name, err)
	}
	cfg.Logf(2, "Read %d position(s) from %s\n", len(positions), name)

	return positions
}

// collectPositions gathers positions from -fen, the -f file list, file
// arguments and, when none of those name any input, stdin.
func collectPositions(cfg *config.Config, fen string, fileList string, args []string, stdin io.Reader) []processing.Position {
	var positions []processing.Position

	if fen != "" {
		fenPositions, err := processing.ReadPositions(strings.NewReader(fen), "", 1)
		if err != nil {
			cfg.Logf(0, "Error reading -fen: %v\n", err)
		}
		positions = append(positions, fenPositions...)
	}

	files := args
	if fileList != "" {
		listed, err := readFileList(fileList)
		if err != nil {
			cfg.Logf(0, "Error reading file list %s: %v\n", fileList, err)
		}
		files = append(listed, args...)
	}

	if fen == "" && fileList == "" && len(args) == 0 {
		return processInput(stdin, "stdin", 1, cfg)
	}

	for _, filename := range files {
		file, err := os.Open(filename) //nolint:gosec // G304: CLI tool opens user-specified files
		if err != nil {
			cfg.Logf(0, "Error opening file %s: %v\n", filename, err)
			continue
		}
		positions = append(positions, processInput(file, filename, len(positions)+1, cfg)...)
		file.Close() //nolint:errcheck,gosec // G104: read-only file
	}

	return positions
}

// readFileList reads file names one per line, skipping blank lines and
// '#' comments.
func readFileList(path string) ([]string, error) {
	file, err := os.Open(path) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var names []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, line)
	}
	return names, scanner.Err()
}

// numWorkers resolves the configured worker count for n positions.
func numWorkers(cfg *config.Config, n int) int {
	workers := cfg.Analysis.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}
	return workers
}

// evaluatePositions evaluates positions in parallel and writes the matching
// reports to w in input order.
func evaluatePositions(positions []processing.Position, cfg *config.Config, w output.ReportWriter) Stats {
	var stats Stats
	var matched int64
	limit := int64(cfg.Analysis.StopAfter)
	limitReached := func() bool {
		return limit > 0 && atomic.LoadInt64(&matched) >= limit
	}

	bufferSize := len(positions)
	if bufferSize > 100 {
		bufferSize = 100
	}
	if bufferSize < 1 {
		bufferSize = 1
	}

	var detector *hashing.ThreadSafeDuplicateDetector
	var dupWriter output.ReportWriter
	if cfg.Duplicate.Enabled() {
		detector = hashing.NewThreadSafeDuplicateDetector(cfg.Duplicate.MaxCapacity)
		if cfg.Duplicate.DuplicateFile != nil {
			dupWriter = output.NewWriter(cfg.Duplicate.DuplicateFile, cfg.Output)
		}
	}

	pool := worker.NewPool(numWorkers(cfg, len(positions)), bufferSize,
		worker.AnalyzeFunc(cfg.Analysis, cfg.Output.ListMoves))
	pool.Start()

	go func() {
		for i, pos := range positions {
			if limitReached() {
				break
			}
			pool.Submit(worker.WorkItem{Position: pos, Index: i})
		}
		pool.Close()
	}()

	// Only this goroutine writes reports or touches stats.
	worker.InOrder(pool.Results(), func(result worker.ProcessResult) {
		if limitReached() {
			pool.Stop()
			return
		}

		stats.Total++
		if result.Report.Failed() {
			stats.Failed++
			cfg.Logf(2, "%v\n", result.Report.Err)
		}
		if !result.Matched {
			return
		}

		if detector != nil && !result.Report.Failed() &&
			detector.CheckAndAdd(result.Report.Board, result.Report.ToMove) {
			stats.Duplicates++
			if dupWriter != nil {
				if err := dupWriter.WriteReport(result.Report); err != nil {
					cfg.Logf(0, "Error writing duplicate: %v\n", err)
				}
			}
			return
		}

		if err := w.WriteReport(result.Report); err != nil {
			cfg.Logf(0, "Error writing report: %v\n", err)
			return
		}
		atomic.AddInt64(&matched, 1)
		stats.Matched++
	})

	if err := w.Close(); err != nil {
		cfg.Logf(0, "Error writing output: %v\n", err)
	}
	if dupWriter != nil {
		if err := dupWriter.Close(); err != nil {
			cfg.Logf(0, "Error writing duplicates: %v\n", err)
		}
	}
	return stats
}
