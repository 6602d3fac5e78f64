// Package engine provides chess move generation, check detection and
// game status evaluation.
//
// Every function takes a chess.Board by value and never modifies it, so the
// functions are safe to call concurrently on the same position.
package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// Direction and offset tables, in generation order.
var (
	rookDirs   = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	bishopDirs = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	queenDirs  = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}, {-1, 0}, {1, 0}, {0, -1}, {0, 1}}

	knightOffsets = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
)

// PseudoMoves returns the destination squares reachable by the piece on sq
// under piece-movement rules alone, without regard to whether the move
// leaves the mover's king in check. An empty or off-board square yields nil.
func PseudoMoves(board chess.Board, sq chess.Square) []chess.Square {
	piece := board.Get(sq)
	if piece.IsEmpty() {
		return nil
	}

	switch piece.Kind {
	case chess.Pawn:
		return pawnMoves(board, sq, piece.Colour)
	case chess.Rook:
		return slidingMoves(board, sq, piece.Colour, rookDirs)
	case chess.Bishop:
		return slidingMoves(board, sq, piece.Colour, bishopDirs)
	case chess.Queen:
		return slidingMoves(board, sq, piece.Colour, queenDirs)
	case chess.Knight:
		return offsetMoves(board, sq, piece.Colour, knightOffsets)
	case chess.King:
		return offsetMoves(board, sq, piece.Colour, kingOffsets)
	}
	return nil
}

// pawnMoves generates pushes and diagonal captures. There is no en passant
// and no promotion flag; promotion is applied by the caller.
func pawnMoves(board chess.Board, from chess.Square, colour chess.Colour) []chess.Square {
	var moves []chess.Square
	dir := colour.Forward()

	one := from.Offset(dir, 0)
	if one.Valid() && board.Get(one).IsEmpty() {
		moves = append(moves, one)

		// Double push from the starting row, both squares must be empty
		if from.Row == colour.PawnStartRow() {
			two := from.Offset(2*dir, 0)
			if two.Valid() && board.Get(two).IsEmpty() {
				moves = append(moves, two)
			}
		}
	}

	// Captures
	for _, dc := range [2]int{-1, 1} {
		to := from.Offset(dir, dc)
		if !to.Valid() {
			continue
		}
		target := board.Get(to)
		if !target.IsEmpty() && target.Colour != colour {
			moves = append(moves, to)
		}
	}

	return moves
}

// slidingMoves walks each direction until the edge or the first occupied
// square, which is included only when it holds an opposing piece.
func slidingMoves(board chess.Board, from chess.Square, colour chess.Colour, dirs [][2]int) []chess.Square {
	var moves []chess.Square
	for _, dir := range dirs {
		for to := from.Offset(dir[0], dir[1]); to.Valid(); to = to.Offset(dir[0], dir[1]) {
			target := board.Get(to)
			if !target.IsEmpty() {
				if target.Colour != colour {
					moves = append(moves, to)
				}
				break // Blocked
			}
			moves = append(moves, to)
		}
	}
	return moves
}

// offsetMoves handles knight and king jumps: any on-board destination not
// holding a piece of the mover's colour.
func offsetMoves(board chess.Board, from chess.Square, colour chess.Colour, offsets [][2]int) []chess.Square {
	var moves []chess.Square
	for _, off := range offsets {
		to := from.Offset(off[0], off[1])
		if !to.Valid() {
			continue
		}
		target := board.Get(to)
		if target.IsEmpty() || target.Colour != colour {
			moves = append(moves, to)
		}
	}
	return moves
}
