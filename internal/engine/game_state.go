package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// Status classifies a position for the side about to move.
type Status int

const (
	InProgress Status = iota
	Check
	Checkmate
	Stalemate
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	}
	return "unknown"
}

// IsTerminal reports whether the status ends the game.
func (s Status) IsTerminal() bool {
	return s == Checkmate || s == Stalemate
}

// HasAnyLegalMove returns true if the given colour has at least one legal move.
func HasAnyLegalMove(board chess.Board, colour chess.Colour) bool {
	for _, sq := range board.Pieces(colour) {
		if len(LegalMoves(board, sq)) > 0 {
			return true
		}
	}
	return false
}

// IsCheckmate returns true if colour is in check and has no legal move.
func IsCheckmate(board chess.Board, colour chess.Colour) bool {
	return IsKingInCheck(board, colour) && !HasAnyLegalMove(board, colour)
}

// IsStalemate returns true if colour is not in check and has no legal move.
func IsStalemate(board chess.Board, colour chess.Colour) bool {
	return !IsKingInCheck(board, colour) && !HasAnyLegalMove(board, colour)
}

// Evaluate classifies the position for colour, checking checkmate first,
// then stalemate, then check.
func Evaluate(board chess.Board, colour chess.Colour) Status {
	inCheck := IsKingInCheck(board, colour)
	canMove := HasAnyLegalMove(board, colour)
	switch {
	case inCheck && !canMove:
		return Checkmate
	case !canMove:
		return Stalemate
	case inCheck:
		return Check
	}
	return InProgress
}
