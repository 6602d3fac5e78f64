package chess

import "strings"

// Board is an 8x8 grid of pieces indexed [row][col].
//
// Board is a value type: assigning or passing it copies every square, so a
// function that receives a Board can modify its copy without affecting the
// caller's.
type Board struct {
	Squares [BoardSize][BoardSize]Piece
}

// NewBoard creates an empty board.
func NewBoard() Board {
	return Board{}
}

// NewInitialBoard creates a board with the standard starting position.
// Black occupies rows 0 and 1, White rows 6 and 7.
func NewInitialBoard() Board {
	var b Board
	backRank := []PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < BoardSize; col++ {
		b.Squares[0][col] = B(backRank[col])
		b.Squares[1][col] = B(Pawn)
		b.Squares[6][col] = W(Pawn)
		b.Squares[7][col] = W(backRank[col])
	}
	return b
}

// Get returns the piece at sq, or Empty if sq is off the board.
func (b Board) Get(sq Square) Piece {
	if !sq.Valid() {
		return Empty
	}
	return b.Squares[sq.Row][sq.Col]
}

// Set places a piece at sq. Off-board squares are ignored.
func (b *Board) Set(sq Square, p Piece) {
	if sq.Valid() {
		b.Squares[sq.Row][sq.Col] = p
	}
}

// With returns a copy of b with p placed at sq.
func (b Board) With(sq Square, p Piece) Board {
	b.Set(sq, p)
	return b
}

// Clone returns an independent copy of b.
func (b Board) Clone() Board {
	return b
}

// MovePiece returns a copy of b with the piece on from moved to to.
// Whatever stood on to is overwritten. The receiver is unchanged.
func (b Board) MovePiece(from, to Square) Board {
	if !from.Valid() || !to.Valid() {
		return b
	}
	p := b.Squares[from.Row][from.Col]
	b.Squares[from.Row][from.Col] = Empty
	b.Squares[to.Row][to.Col] = p
	return b
}

// Pieces returns the squares holding pieces of the given colour, in
// row-major order.
func (b Board) Pieces(colour Colour) []Square {
	var squares []Square
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			p := b.Squares[row][col]
			if !p.IsEmpty() && p.Colour == colour {
				squares = append(squares, Square{Row: row, Col: col})
			}
		}
	}
	return squares
}

// Count returns the number of pieces of the given kind and colour.
func (b Board) Count(p Piece) int {
	n := 0
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.Squares[row][col] == p {
				n++
			}
		}
	}
	return n
}

// String renders the board as eight lines of FEN letters, row 0 first,
// with '.' for empty squares.
func (b Board) String() string {
	var sb strings.Builder
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			p := b.Squares[row][col]
			if p.IsEmpty() {
				sb.WriteByte('.')
			} else {
				sb.WriteByte(p.Letter())
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
