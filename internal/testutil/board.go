package testutil

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Placement maps square names ("e4") to the piece on them.
type Placement map[string]chess.Piece

// MustSquare parses a square name, failing the test on error.
func MustSquare(t testing.TB, name string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(name)
	if err != nil {
		t.Fatalf("ParseSquare(%q) error: %v", name, err)
	}
	return sq
}

// Squares parses a list of square names, failing the test on error.
func Squares(t testing.TB, names ...string) []chess.Square {
	t.Helper()
	squares := make([]chess.Square, 0, len(names))
	for _, name := range names {
		squares = append(squares, MustSquare(t, name))
	}
	return squares
}

// BoardOf builds a board holding exactly the given pieces.
func BoardOf(t testing.TB, placement Placement) chess.Board {
	t.Helper()
	var b chess.Board
	for name, p := range placement {
		b.Set(MustSquare(t, name), p)
	}
	return b
}
