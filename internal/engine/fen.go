package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ConvertFENCharToPiece converts a FEN character to a piece kind.
func ConvertFENCharToPiece(c byte) chess.PieceKind {
	switch c {
	case 'K', 'k':
		return chess.King
	case 'Q', 'q':
		return chess.Queen
	case 'R', 'r':
		return chess.Rook
	case 'N', 'n':
		return chess.Knight
	case 'B', 'b':
		return chess.Bishop
	case 'P', 'p':
		return chess.Pawn
	default:
		return chess.NoPiece
	}
}

// NewBoardFromFEN creates a board from a FEN string and returns it with the
// side to move. Only the piece placement field is required; the side to move
// defaults to White. Castling, en passant and clock fields are accepted and
// ignored.
func NewBoardFromFEN(fen string) (chess.Board, chess.Colour, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return chess.Board{}, chess.White, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	board, err := parsePiecePositions(parts[0])
	if err != nil {
		return chess.Board{}, chess.White, err
	}

	toMove, err := parseSideToMove(parts)
	if err != nil {
		return chess.Board{}, chess.White, err
	}

	return board, toMove, nil
}

// MustParseFEN is like NewBoardFromFEN but panics on error.
// It is intended for package-level fixtures.
func MustParseFEN(fen string) chess.Board {
	board, _, err := NewBoardFromFEN(fen)
	if err != nil {
		panic(err)
	}
	return board
}

// parsePiecePositions parses the piece placement field of a FEN string.
// The first rank listed is row 0.
func parsePiecePositions(positions string) (chess.Board, error) {
	var board chess.Board
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return board, fmt.Errorf("expected %d ranks, got %d: %w", chess.BoardSize, len(ranks), errors.ErrInvalidFEN)
	}

	for row, rank := range ranks {
		col := 0
		for i := 0; i < len(rank); i++ {
			c := rank[i]
			if c >= '1' && c <= '8' {
				col += int(c - '0')
				if col > chess.BoardSize {
					return board, fmt.Errorf("rank %d overflows: %w", row+1, errors.ErrInvalidFEN)
				}
				continue
			}

			kind := ConvertFENCharToPiece(c)
			if kind == chess.NoPiece {
				return board, fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			if col >= chess.BoardSize {
				return board, fmt.Errorf("rank %d overflows: %w", row+1, errors.ErrInvalidFEN)
			}

			colour := chess.White
			if unicode.IsLower(rune(c)) {
				colour = chess.Black
			}
			board.Squares[row][col] = chess.Piece{Kind: kind, Colour: colour}
			col++
		}
		if col != chess.BoardSize {
			return board, fmt.Errorf("rank %d has %d squares: %w", row+1, col, errors.ErrInvalidFEN)
		}
	}
	return board, nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(parts []string) (chess.Colour, error) {
	if len(parts) < 2 {
		return chess.White, nil
	}
	switch parts[1] {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	default:
		return chess.White, fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
}

// BoardToFEN converts a board and side to move to a FEN string. Castling and
// en passant are not tracked, so those fields are always "-".
func BoardToFEN(board chess.Board, toMove chess.Colour) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	if toMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteString(" - - 0 1")

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board chess.Board) {
	for row := 0; row < chess.BoardSize; row++ {
		emptyCount := 0
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Squares[row][col]
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}
