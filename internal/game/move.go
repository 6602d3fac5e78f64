package game

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Step is one move in coordinate form, e.g. "e2e4" or "e7e8q". Promote is
// NoPiece unless a promotion letter was given.
type Step struct {
	From    chess.Square
	To      chess.Square
	Promote chess.PieceKind
}

// ParseStep parses a coordinate move. An optional fifth character names the
// promotion piece (q, r, b or n, either case).
func ParseStep(text string) (Step, error) {
	text = strings.TrimSpace(text)
	if len(text) != 4 && len(text) != 5 {
		return Step{}, fmt.Errorf("move %q: %w", text, errors.ErrIllegalMove)
	}

	from, err := chess.ParseSquare(text[0:2])
	if err != nil {
		return Step{}, fmt.Errorf("move %q: %w", text, err)
	}
	to, err := chess.ParseSquare(text[2:4])
	if err != nil {
		return Step{}, fmt.Errorf("move %q: %w", text, err)
	}

	step := Step{From: from, To: to}
	if len(text) == 5 {
		switch text[4] {
		case 'q', 'Q':
			step.Promote = chess.Queen
		case 'r', 'R':
			step.Promote = chess.Rook
		case 'b', 'B':
			step.Promote = chess.Bishop
		case 'n', 'N':
			step.Promote = chess.Knight
		default:
			return Step{}, fmt.Errorf("move %q: %w", text, errors.ErrInvalidPromotion)
		}
	}
	return step, nil
}

// String returns the coordinate form of the step.
func (s Step) String() string {
	out := s.From.String() + s.To.String()
	if s.Promote != chess.NoPiece {
		out += strings.ToLower(string(s.Promote.Letter()))
	}
	return out
}

// Play applies a step. When the move reaches Promotion the promotion piece
// is placed straight away, defaulting to a queen if the step names none.
func (g *Game) Play(step Step) (MoveResult, error) {
	if step.Promote != chess.NoPiece {
		p := g.Board().Get(step.From)
		if p.Kind != chess.Pawn || (step.To.Row != 0 && step.To.Row != chess.BoardSize-1) {
			return MoveResult{}, fmt.Errorf("%s is not a promotion: %w", step, errors.ErrNoPromotion)
		}
	}

	result, err := g.Move(step.From, step.To)
	if err != nil || result.State != Promotion {
		return result, err
	}

	kind := step.Promote
	if kind == chess.NoPiece {
		kind = chess.Queen
	}
	if err := g.Promote(kind); err != nil {
		return result, err
	}
	result.State = g.State()
	return result, nil
}
