// Package errors provides sentinel errors and error types for chessrules.
// The rules engine itself never fails; these cover board decoding, game
// sessions and the command-line front end. Errors are inspected with
// errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidSquare indicates a square name that is not a1..h8.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrGameOver indicates a move was attempted after checkmate or stalemate.
	ErrGameOver = errors.New("game is over")

	// ErrPromotionPending indicates a move was attempted while a pawn
	// is waiting to be promoted.
	ErrPromotionPending = errors.New("promotion pending")

	// ErrNoPromotion indicates a promotion was requested when no pawn
	// is waiting to be promoted.
	ErrNoPromotion = errors.New("no promotion pending")

	// ErrInvalidPromotion indicates a promotion to a king, pawn or empty piece.
	ErrInvalidPromotion = errors.New("invalid promotion piece")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// PositionError wraps errors with the location of the position that caused
// them: source file, line and the offending FEN text. It supports
// unwrapping via errors.Is() and errors.As().
type PositionError struct {
	Err   error  // The underlying error
	Index int    // 1-based position number in the input (0 if not applicable)
	File  string // Source file name (if known)
	Line  int    // Line number in source file (if known)
	FEN   string // The FEN text that caused the error (if applicable)
}

// Error returns a formatted error message including all available context.
func (e *PositionError) Error() string {
	var parts []string

	if e.File != "" {
		if e.Line > 0 {
			parts = append(parts, fmt.Sprintf("%s:%d", e.File, e.Line))
		} else {
			parts = append(parts, e.File)
		}
	} else if e.Line > 0 {
		parts = append(parts, fmt.Sprintf("line %d", e.Line))
	}

	if e.Index > 0 {
		parts = append(parts, fmt.Sprintf("position %d", e.Index))
	}

	if e.FEN != "" {
		parts = append(parts, fmt.Sprintf("fen %q", e.FEN))
	}

	context := strings.Join(parts, ", ")

	switch {
	case e.Err != nil && context != "":
		return fmt.Sprintf("%s: %v", context, e.Err)
	case e.Err != nil:
		return e.Err.Error()
	case context != "":
		return context
	}
	return "position error"
}

// Unwrap returns the underlying error.
func (e *PositionError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
