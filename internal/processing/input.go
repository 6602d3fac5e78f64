package processing

import (
	"bufio"
	"io"
	"strings"
)

// movesKeyword separates a FEN from the moves to replay on it, as in
// "<fen> moves e2e4 e7e5".
const movesKeyword = "moves"

// Position is one record of input: a FEN and optional moves to replay.
type Position struct {
	Index int    // 1-based position number across all inputs
	File  string // Input name
	Line  int    // Line number within the input
	FEN   string
	Moves []string
}

// ParseLine splits an input line into its FEN and trailing moves. The
// keyword "startpos" stands for the standard starting position.
func ParseLine(text string) (fen string, moves []string) {
	fields := strings.Fields(text)
	for i, f := range fields {
		if f == movesKeyword {
			moves = fields[i+1:]
			fields = fields[:i]
			break
		}
	}
	fen = strings.Join(fields, " ")
	if fen == "startpos" {
		fen = ""
	}
	return fen, moves
}

// ReadPositions reads one position per line. Blank lines and lines starting
// with '#' are skipped. Index numbering continues from first.
func ReadPositions(r io.Reader, name string, first int) ([]Position, error) {
	var positions []Position
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fen, moves := ParseLine(text)
		positions = append(positions, Position{
			Index: first + len(positions),
			File:  name,
			Line:  line,
			FEN:   fen,
			Moves: moves,
		})
	}
	return positions, scanner.Err()
}
