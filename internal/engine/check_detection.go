package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// IsKingInCheck returns true if the given colour's king is attacked.
// A board without a king of that colour is never in check.
func IsKingInCheck(board chess.Board, colour chess.Colour) bool {
	kingSq, ok := FindKing(board, colour)
	if !ok {
		return false // No king found
	}
	return IsAttacked(board, kingSq, colour.Opposite())
}

// FindKing finds the king of the given colour, scanning in row-major order.
func FindKing(board chess.Board, colour chess.Colour) (chess.Square, bool) {
	king := chess.Piece{Kind: chess.King, Colour: colour}
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			if board.Squares[row][col] == king {
				return chess.Sq(row, col), true
			}
		}
	}
	return chess.Square{}, false
}

// IsAttacked returns true if any piece of byColour has sq among its
// pseudo-moves.
//
// The attack set is exactly the pseudo-move set, so a pawn attacks the
// empty square in front of it as well as its capture diagonals when they
// hold an enemy piece. Check and mate detection are defined against this
// set.
func IsAttacked(board chess.Board, sq chess.Square, byColour chess.Colour) bool {
	if !sq.Valid() {
		return false
	}
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			p := board.Squares[row][col]
			if p.IsEmpty() || p.Colour != byColour {
				continue
			}
			for _, to := range PseudoMoves(board, chess.Sq(row, col)) {
				if to == sq {
					return true
				}
			}
		}
	}
	return false
}
