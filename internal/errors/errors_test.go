package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestSentinelErrors_Distinct(t *testing.T) {
	sentinels := []error{
		ErrInvalidFEN,
		ErrInvalidSquare,
		ErrIllegalMove,
		ErrGameOver,
		ErrPromotionPending,
		ErrNoPromotion,
		ErrInvalidPromotion,
		ErrInvalidConfig,
	}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("errors.Is(%v, %v) = true, want false", a, b)
			}
		}
	}
}

// TestSentinelErrors_Wrapping verifies wrapped sentinel errors can still be detected
func TestSentinelErrors_Wrapping(t *testing.T) {
	wrapped := fmt.Errorf("failed to parse position: %w", ErrInvalidFEN)

	if !errors.Is(wrapped, ErrInvalidFEN) {
		t.Errorf("errors.Is(wrapped, ErrInvalidFEN) = false, want true")
	}
}

func TestPositionError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *PositionError
		contains []string
		exact    string
	}{
		{
			name: "full context",
			err: &PositionError{
				Err:   ErrInvalidFEN,
				Index: 5,
				File:  "positions.txt",
				Line:  42,
				FEN:   "8/8/x7",
			},
			contains: []string{"positions.txt:42", "position 5", `"8/8/x7"`, "invalid FEN"},
		},
		{
			name:     "line without file",
			err:      &PositionError{Err: ErrInvalidFEN, Line: 3},
			contains: []string{"line 3", "invalid FEN"},
		},
		{
			name:  "no context",
			err:   &PositionError{Err: ErrIllegalMove},
			exact: "illegal move",
		},
		{
			name:  "nothing at all",
			err:   &PositionError{},
			exact: "position error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			if tt.exact != "" && msg != tt.exact {
				t.Errorf("PositionError.Error() = %q, want %q", msg, tt.exact)
			}
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("PositionError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

func TestPositionError_Unwrap(t *testing.T) {
	posErr := &PositionError{
		Err:  ErrInvalidFEN,
		File: "test.txt",
	}

	if unwrapped := errors.Unwrap(posErr); !errors.Is(unwrapped, ErrInvalidFEN) {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, ErrInvalidFEN)
	}
	if !errors.Is(posErr, ErrInvalidFEN) {
		t.Error("errors.Is(posErr, ErrInvalidFEN) = false, want true")
	}
}

func TestPositionError_As(t *testing.T) {
	posErr := &PositionError{
		Err:   ErrInvalidFEN,
		Index: 3,
		Line:  24,
	}
	wrapped := fmt.Errorf("processing failed: %w", posErr)

	var extracted *PositionError
	if !errors.As(wrapped, &extracted) {
		t.Fatal("errors.As() could not extract PositionError")
	}
	if extracted.Index != 3 {
		t.Errorf("extracted.Index = %d, want 3", extracted.Index)
	}
	if extracted.Line != 24 {
		t.Errorf("extracted.Line = %d, want 24", extracted.Line)
	}
}

// TestWrap verifies the Wrap helper function
func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrInvalidFEN, "parsing FEN string")

	if !errors.Is(wrapped, ErrInvalidFEN) {
		t.Error("Wrap should preserve the underlying error")
	}
	if msg := wrapped.Error(); !containsIgnoreCase(msg, "parsing FEN string") {
		t.Errorf("Wrap should include context, got %q", msg)
	}
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

// TestWrapf verifies the Wrapf helper function
func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrIllegalMove, "move %s-%s", "e2", "e5")

	if !errors.Is(wrapped, ErrIllegalMove) {
		t.Error("Wrapf should preserve the underlying error")
	}
	if msg := wrapped.Error(); !containsIgnoreCase(msg, "move e2-e5") {
		t.Errorf("Wrapf should include formatted context, got %q", msg)
	}
	if Wrapf(nil, "move %d", 1) != nil {
		t.Error("Wrapf(nil) should return nil")
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
