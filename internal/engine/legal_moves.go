package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// LegalMoves returns the pseudo-moves of the piece on sq that do not leave
// its own king in check, in generation order. An empty or off-board square
// yields nil.
func LegalMoves(board chess.Board, sq chess.Square) []chess.Square {
	piece := board.Get(sq)
	if piece.IsEmpty() {
		return nil
	}

	var moves []chess.Square
	for _, to := range PseudoMoves(board, sq) {
		if tryMove(board, sq, to, piece.Colour) {
			moves = append(moves, to)
		}
	}
	return moves
}

// IsLegalMove returns true if the piece on from may legally move to to.
func IsLegalMove(board chess.Board, from, to chess.Square) bool {
	piece := board.Get(from)
	if piece.IsEmpty() || !to.Valid() {
		return false
	}
	for _, sq := range PseudoMoves(board, from) {
		if sq == to {
			return tryMove(board, from, to, piece.Colour)
		}
	}
	return false
}

// tryMove makes a move on a copy of the board and reports whether the
// mover's king is safe afterwards.
func tryMove(board chess.Board, from, to chess.Square, colour chess.Colour) bool {
	return !IsKingInCheck(board.MovePiece(from, to), colour)
}
