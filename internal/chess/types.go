// Package chess provides core chess types and operations.
package chess

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Colour represents the colour of a piece or player.
type Colour uint8

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns the row delta a pawn of this colour moves by.
// White advances toward row 0.
func (c Colour) Forward() int {
	if c == White {
		return -1
	}
	return 1
}

// PawnStartRow returns the row from which a pawn of this colour may
// advance two squares.
func (c Colour) PawnStartRow() int {
	if c == White {
		return 6
	}
	return 1
}

// PromotionRow returns the far row a pawn of this colour promotes on.
func (c Colour) PromotionRow() int {
	if c == White {
		return 0
	}
	return BoardSize - 1
}

// PieceKind represents a chess piece type.
type PieceKind uint8

const (
	NoPiece PieceKind = iota // Empty square
	Pawn
	Rook
	Knight
	Bishop
	Queen
	King
)

// String returns the string representation of a piece kind.
func (k PieceKind) String() string {
	names := []string{"Empty", "Pawn", "Rook", "Knight", "Bishop", "Queen", "King"}
	if int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece kind (uppercase).
func (k PieceKind) Letter() byte {
	letters := []byte{' ', 'P', 'R', 'N', 'B', 'Q', 'K'}
	if int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Piece is a coloured piece. The zero value is an empty square.
type Piece struct {
	Kind   PieceKind
	Colour Colour
}

// Empty is the value held by an unoccupied square.
var Empty = Piece{}

// W creates a white piece.
func W(kind PieceKind) Piece {
	return Piece{Kind: kind, Colour: White}
}

// B creates a black piece.
func B(kind PieceKind) Piece {
	return Piece{Kind: kind, Colour: Black}
}

// IsEmpty reports whether p marks an unoccupied square.
func (p Piece) IsEmpty() bool {
	return p.Kind == NoPiece
}

// Letter returns the FEN letter for p: uppercase for White, lowercase
// for Black, and ' ' for an empty square.
func (p Piece) Letter() byte {
	l := p.Kind.Letter()
	if p.Colour == Black && l >= 'A' && l <= 'Z' {
		l += 'a' - 'A'
	}
	return l
}

// String returns e.g. "White Knight", or "Empty".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.Colour.String() + " " + p.Kind.String()
}

// BoardSize is the number of rows and columns on the board.
const BoardSize = 8

// Square is a board coordinate. Row 0 is Black's back rank (rank 8) and
// col 0 is the a-file.
type Square struct {
	Row int
	Col int
}

// Sq is shorthand for Square{Row: row, Col: col}.
func Sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

// Valid reports whether s lies on the board.
func (s Square) Valid() bool {
	return s.Row >= 0 && s.Row < BoardSize && s.Col >= 0 && s.Col < BoardSize
}

// Offset returns the square dr rows and dc columns away from s.
// The result may be off the board.
func (s Square) Offset(dr, dc int) Square {
	return Square{Row: s.Row + dr, Col: s.Col + dc}
}

// String returns the coordinate name of the square, e.g. "e4".
// Off-board squares render as "-".
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{byte('a' + s.Col), byte('8' - s.Row)})
}

// ParseSquare converts a coordinate name such as "e4" to a Square.
func ParseSquare(name string) (Square, error) {
	if len(name) != 2 {
		return Square{}, fmt.Errorf("%q: %w", name, errors.ErrInvalidSquare)
	}
	file, rank := name[0], name[1]
	if file >= 'A' && file <= 'H' {
		file += 'a' - 'A'
	}
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return Square{}, fmt.Errorf("%q: %w", name, errors.ErrInvalidSquare)
	}
	return Square{Row: int('8' - rank), Col: int(file - 'a')}, nil
}
