// Package processing turns input positions into evaluated reports.
package processing

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/game"
)

// PieceMoves lists the legal destinations of one piece.
type PieceMoves struct {
	From  chess.Square
	Piece chess.Piece
	To    []chess.Square
}

// Report is the evaluation of a single position.
type Report struct {
	Position Position

	Board  chess.Board
	ToMove chess.Colour // The side the position was evaluated for
	FEN    string       // The evaluated position

	Status      engine.Status
	InCheck     bool
	KingSquare  chess.Square // Valid only when HasKing
	HasKing     bool
	LegalMoves  int          // Legal moves available to ToMove
	PieceMoves  []PieceMoves // Filled when moves are listed
	CapturedW   []chess.Piece
	CapturedB   []chess.Piece
	MovesPlayed int

	Err error
}

// Failed reports whether the position could not be evaluated.
func (r *Report) Failed() bool {
	return r.Err != nil
}

// Analyze sets up the position, replays any moves through a game session,
// and classifies the result for the side to move.
func Analyze(pos Position, analysis *config.AnalysisConfig, listMoves bool) *Report {
	report := &Report{Position: pos}

	board := chess.NewInitialBoard()
	toMove := chess.White
	if pos.FEN != "" {
		var err error
		board, toMove, err = engine.NewBoardFromFEN(pos.FEN)
		if err != nil {
			report.Err = positionError(pos, err)
			return report
		}
	}

	if len(pos.Moves) > 0 {
		g := game.NewFromBoard(board, toMove)
		for _, text := range pos.Moves {
			step, err := game.ParseStep(text)
			if err == nil {
				_, err = g.Play(step)
			}
			if err != nil {
				report.Err = positionError(pos, errors.Wrapf(err, "move %d", report.MovesPlayed+1))
				return report
			}
			report.MovesPlayed++
		}
		board, toMove = g.Board(), g.ToMove()
		report.CapturedW = g.Captured(chess.White)
		report.CapturedB = g.Captured(chess.Black)
	}

	if analysis != nil && analysis.OverrideSide {
		toMove = analysis.Side
	}

	report.Board = board
	report.ToMove = toMove
	report.FEN = engine.BoardToFEN(board, toMove)
	report.Status = engine.Evaluate(board, toMove)
	report.InCheck = report.Status == engine.Check || report.Status == engine.Checkmate
	report.KingSquare, report.HasKing = engine.FindKing(board, toMove)

	for _, from := range board.Pieces(toMove) {
		moves := engine.LegalMoves(board, from)
		report.LegalMoves += len(moves)
		if listMoves && len(moves) > 0 {
			report.PieceMoves = append(report.PieceMoves, PieceMoves{
				From:  from,
				Piece: board.Get(from),
				To:    moves,
			})
		}
	}

	return report
}

// Matches reports whether a report passes the status filters. Failed
// reports never match a filter.
func Matches(r *Report, analysis *config.AnalysisConfig) bool {
	if analysis == nil || !analysis.Filtering() {
		return true
	}
	if r.Failed() {
		return false
	}
	switch r.Status {
	case engine.Check:
		return analysis.MatchCheck
	case engine.Checkmate:
		return analysis.MatchCheckmate
	case engine.Stalemate:
		return analysis.MatchStalemate
	}
	return false
}

func positionError(pos Position, err error) error {
	return &errors.PositionError{
		Err:   err,
		Index: pos.Index,
		File:  pos.File,
		Line:  pos.Line,
		FEN:   pos.FEN,
	}
}
