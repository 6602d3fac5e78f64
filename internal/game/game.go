// Package game drives a single chess game on top of the rules engine.
//
// A Game owns the turn order, capture bookkeeping and pawn promotion, and
// asks the engine after every move whether the side to move is in check,
// checkmated or stalemated.
package game

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// State is the phase a game is in.
type State int

const (
	InProgress State = iota
	Check
	Checkmate
	Stalemate
	Promotion // A pawn reached the far row and waits for Promote
)

// String returns the string representation of a state.
func (s State) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case Promotion:
		return "promotion"
	}
	return "unknown"
}

// IsOver reports whether no further moves are accepted.
func (s State) IsOver() bool {
	return s == Checkmate || s == Stalemate
}

func stateFromStatus(status engine.Status) State {
	switch status {
	case engine.Check:
		return Check
	case engine.Checkmate:
		return Checkmate
	case engine.Stalemate:
		return Stalemate
	}
	return InProgress
}

// MoveResult describes a move applied by Game.Move.
type MoveResult struct {
	From     chess.Square
	To       chess.Square
	Piece    chess.Piece
	Captured chess.Piece // Empty when nothing was taken
	State    State       // State of the game after the move
}

// Game is a chess game in progress. It is safe for concurrent use.
type Game struct {
	mu sync.Mutex

	id        string
	board     chess.Board
	toMove    chess.Colour
	state     State
	promoteAt chess.Square
	captured  [2][]chess.Piece // Indexed by the colour of the captured piece
}

// New creates a game at the standard starting position with White to move.
func New() *Game {
	return NewFromBoard(chess.NewInitialBoard(), chess.White)
}

// NewFromBoard creates a game from an arbitrary position. The position is
// evaluated immediately, so a game may start in check or already be over.
func NewFromBoard(board chess.Board, toMove chess.Colour) *Game {
	g := &Game{
		id:     uuid.New().String(),
		board:  board,
		toMove: toMove,
	}
	g.state = stateFromStatus(engine.Evaluate(board, toMove))
	return g
}

// ID returns the unique identifier of the game.
func (g *Game) ID() string {
	return g.id
}

// Board returns a copy of the current position.
func (g *Game) Board() chess.Board {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.board
}

// ToMove returns the colour whose turn it is. While a promotion is pending
// this is still the colour of the promoting pawn.
func (g *Game) ToMove() chess.Colour {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.toMove
}

// State returns the current game state.
func (g *Game) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// CheckedKing returns the square of the king in check, if any.
func (g *Game) CheckedKing() (chess.Square, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state != Check && g.state != Checkmate {
		return chess.Square{}, false
	}
	return engine.FindKing(g.board, g.toMove)
}

// PromotionSquare returns the square of the pawn waiting to be promoted.
func (g *Game) PromotionSquare() (chess.Square, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.promoteAt, g.state == Promotion
}

// Captured returns the pieces of the given colour taken so far, in
// capture order.
func (g *Game) Captured(colour chess.Colour) []chess.Piece {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]chess.Piece(nil), g.captured[colour]...)
}

// LegalMoves returns the legal destinations for the piece on from. It is
// empty unless the piece belongs to the side to move and the game is
// accepting moves.
func (g *Game) LegalMoves(from chess.Square) []chess.Square {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state.IsOver() || g.state == Promotion {
		return nil
	}
	if p := g.board.Get(from); p.IsEmpty() || p.Colour != g.toMove {
		return nil
	}
	return engine.LegalMoves(g.board, from)
}

// Move plays the piece on from to to. A pawn reaching the far row leaves
// the game in Promotion until Promote is called; otherwise the turn passes
// and the opponent's position is evaluated.
func (g *Game) Move(from, to chess.Square) (MoveResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	switch {
	case g.state.IsOver():
		return MoveResult{}, fmt.Errorf("game is %s: %w", g.state, errors.ErrGameOver)
	case g.state == Promotion:
		return MoveResult{}, fmt.Errorf("pawn on %s: %w", g.promoteAt, errors.ErrPromotionPending)
	}

	piece := g.board.Get(from)
	if piece.IsEmpty() {
		return MoveResult{}, fmt.Errorf("no piece on %s: %w", from, errors.ErrIllegalMove)
	}
	if piece.Colour != g.toMove {
		return MoveResult{}, fmt.Errorf("%s on %s cannot move, %s to play: %w", piece, from, g.toMove, errors.ErrIllegalMove)
	}
	if !engine.IsLegalMove(g.board, from, to) {
		return MoveResult{}, fmt.Errorf("%s %s-%s: %w", piece, from, to, errors.ErrIllegalMove)
	}

	captured := g.board.Get(to)
	if !captured.IsEmpty() {
		g.captured[captured.Colour] = append(g.captured[captured.Colour], captured)
	}
	g.board = g.board.MovePiece(from, to)

	if piece.Kind == chess.Pawn && (to.Row == 0 || to.Row == chess.BoardSize-1) {
		g.promoteAt = to
		g.state = Promotion
	} else {
		g.passTurn()
	}

	return MoveResult{
		From:     from,
		To:       to,
		Piece:    piece,
		Captured: captured,
		State:    g.state,
	}, nil
}

// Promote replaces the waiting pawn with a piece of the given kind, then
// passes the turn.
func (g *Game) Promote(kind chess.PieceKind) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state != Promotion {
		return errors.ErrNoPromotion
	}
	switch kind {
	case chess.Queen, chess.Rook, chess.Bishop, chess.Knight:
	default:
		return fmt.Errorf("%s: %w", kind, errors.ErrInvalidPromotion)
	}

	g.board.Set(g.promoteAt, chess.Piece{Kind: kind, Colour: g.toMove})
	g.passTurn()
	return nil
}

// Reset returns the game to the starting position. The ID is kept.
func (g *Game) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.board = chess.NewInitialBoard()
	g.toMove = chess.White
	g.state = InProgress
	g.promoteAt = chess.Square{}
	g.captured = [2][]chess.Piece{}
}

// passTurn hands the move to the opponent and evaluates their position.
// Callers must hold g.mu.
func (g *Game) passTurn() {
	g.toMove = g.toMove.Opposite()
	g.state = stateFromStatus(engine.Evaluate(g.board, g.toMove))
}
