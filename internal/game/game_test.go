package game

import (
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

// play applies coordinate moves, failing the test on the first error.
func play(t *testing.T, g *Game, moves ...string) MoveResult {
	t.Helper()
	var result MoveResult
	for _, text := range moves {
		step, err := ParseStep(text)
		if err != nil {
			t.Fatalf("ParseStep(%q) error: %v", text, err)
		}
		result, err = g.Play(step)
		if err != nil {
			t.Fatalf("Play(%s) error: %v", text, err)
		}
	}
	return result
}

func fromFEN(t *testing.T, fen string) *Game {
	t.Helper()
	board, toMove, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q) error: %v", fen, err)
	}
	return NewFromBoard(board, toMove)
}

func TestNew(t *testing.T) {
	g := New()

	if _, err := uuid.Parse(g.ID()); err != nil {
		t.Errorf("ID() = %q is not a UUID: %v", g.ID(), err)
	}
	if other := New(); other.ID() == g.ID() {
		t.Errorf("two games share ID %q", g.ID())
	}
	if got := g.State(); got != InProgress {
		t.Errorf("State() = %v; want %v", got, InProgress)
	}
	if got := g.ToMove(); got != chess.White {
		t.Errorf("ToMove() = %v; want White", got)
	}
	testutil.AssertBoard(t, g.Board(), chess.NewInitialBoard())
	if _, ok := g.CheckedKing(); ok {
		t.Error("CheckedKing() reported a king in check at the start")
	}
	if _, ok := g.PromotionSquare(); ok {
		t.Error("PromotionSquare() reported a pending promotion at the start")
	}
}

func TestBoardIsACopy(t *testing.T) {
	g := New()
	b := g.Board()
	b.Set(testutil.MustSquare(t, "e2"), chess.Empty)

	if got := g.Board().Get(testutil.MustSquare(t, "e2")); got != chess.W(chess.Pawn) {
		t.Errorf("game board e2 = %v after modifying copy; want White Pawn", got)
	}
}

func TestLegalMoves(t *testing.T) {
	g := New()

	testutil.AssertSquares(t, g.LegalMoves(testutil.MustSquare(t, "e2")), testutil.Squares(t, "e3", "e4"), "White pawn e2")
	testutil.AssertSquares(t, g.LegalMoves(testutil.MustSquare(t, "g1")), testutil.Squares(t, "f3", "h3"), "White knight g1")
	testutil.AssertSquares(t, g.LegalMoves(testutil.MustSquare(t, "e7")), nil, "Black pawn on White's turn")
	testutil.AssertSquares(t, g.LegalMoves(testutil.MustSquare(t, "e4")), nil, "empty square")
}

func TestMove_Errors(t *testing.T) {
	tests := []struct {
		name     string
		from, to string
	}{
		{"empty square", "e4", "e5"},
		{"opponent's piece", "e7", "e5"},
		{"not a pawn move", "e2", "e5"},
		{"blocked rook", "a1", "a3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New()
			_, err := g.Move(testutil.MustSquare(t, tt.from), testutil.MustSquare(t, tt.to))
			testutil.AssertErrorIs(t, err, errors.ErrIllegalMove)
			testutil.AssertBoard(t, g.Board(), chess.NewInitialBoard(), "board after rejected move")
			if got := g.ToMove(); got != chess.White {
				t.Errorf("ToMove() = %v after rejected move; want White", got)
			}
		})
	}
}

func TestMove_TurnAlternation(t *testing.T) {
	g := New()

	result := play(t, g, "e2e4")
	if result.Piece != chess.W(chess.Pawn) || !result.Captured.IsEmpty() {
		t.Errorf("result = %+v; want White Pawn, nothing captured", result)
	}
	if got := g.ToMove(); got != chess.Black {
		t.Errorf("ToMove() = %v; want Black", got)
	}

	_, err := g.Move(testutil.MustSquare(t, "d2"), testutil.MustSquare(t, "d4"))
	testutil.AssertErrorIs(t, err, errors.ErrIllegalMove, "White moving twice")

	play(t, g, "e7e5")
	if got := g.ToMove(); got != chess.White {
		t.Errorf("ToMove() = %v; want White", got)
	}
}

func TestMove_Captures(t *testing.T) {
	g := New()

	result := play(t, g, "e2e4", "d7d5", "e4d5")
	if result.Captured != chess.B(chess.Pawn) {
		t.Errorf("Captured = %v; want Black Pawn", result.Captured)
	}
	play(t, g, "d8d5")

	testutil.AssertEqual(t, g.Captured(chess.Black), []chess.Piece{chess.B(chess.Pawn)}, "captured black pieces")
	testutil.AssertEqual(t, g.Captured(chess.White), []chess.Piece{chess.W(chess.Pawn)}, "captured white pieces")

	// The returned slice is a copy.
	g.Captured(chess.White)[0] = chess.W(chess.Queen)
	testutil.AssertEqual(t, g.Captured(chess.White), []chess.Piece{chess.W(chess.Pawn)})
}

func TestFoolsMate(t *testing.T) {
	g := New()

	result := play(t, g, "f2f3", "e7e5", "g2g4", "d8h4")
	if result.State != Checkmate {
		t.Errorf("result.State = %v; want %v", result.State, Checkmate)
	}
	if got := g.State(); got != Checkmate {
		t.Errorf("State() = %v; want %v", got, Checkmate)
	}
	if !g.State().IsOver() {
		t.Error("IsOver() = false after checkmate")
	}
	if sq, ok := g.CheckedKing(); !ok || sq != testutil.MustSquare(t, "e1") {
		t.Errorf("CheckedKing() = %v, %v; want e1, true", sq, ok)
	}
	if moves := g.LegalMoves(testutil.MustSquare(t, "e1")); len(moves) != 0 {
		t.Errorf("LegalMoves(e1) = %v after checkmate; want none", moves)
	}

	_, err := g.Move(testutil.MustSquare(t, "a2"), testutil.MustSquare(t, "a3"))
	testutil.AssertErrorIs(t, err, errors.ErrGameOver)
}

func TestCheck(t *testing.T) {
	g := New()

	play(t, g, "e2e4", "f7f6", "d1h5")
	if got := g.State(); got != Check {
		t.Fatalf("State() = %v; want %v", got, Check)
	}
	if sq, ok := g.CheckedKing(); !ok || sq != testutil.MustSquare(t, "e8") {
		t.Errorf("CheckedKing() = %v, %v; want e8, true", sq, ok)
	}

	// Only moves that deal with the check are offered.
	testutil.AssertSquares(t, g.LegalMoves(testutil.MustSquare(t, "a7")), nil, "a7 pawn while in check")
	testutil.AssertSquares(t, g.LegalMoves(testutil.MustSquare(t, "g7")), testutil.Squares(t, "g6"), "g7 pawn blocks")

	play(t, g, "g7g6")
	if got := g.State(); got != InProgress {
		t.Errorf("State() = %v after blocking; want %v", got, InProgress)
	}
}

func TestPromotion(t *testing.T) {
	const fen = "7k/P7/8/8/8/8/8/4K3 w - - 0 1"

	t.Run("pending promotion blocks play", func(t *testing.T) {
		g := fromFEN(t, fen)
		result, err := g.Move(testutil.MustSquare(t, "a7"), testutil.MustSquare(t, "a8"))
		testutil.AssertNoError(t, err)
		if result.State != Promotion {
			t.Errorf("result.State = %v; want %v", result.State, Promotion)
		}
		if sq, ok := g.PromotionSquare(); !ok || sq != testutil.MustSquare(t, "a8") {
			t.Errorf("PromotionSquare() = %v, %v; want a8, true", sq, ok)
		}
		if got := g.ToMove(); got != chess.White {
			t.Errorf("ToMove() = %v during promotion; want White", got)
		}
		if moves := g.LegalMoves(testutil.MustSquare(t, "e1")); moves != nil {
			t.Errorf("LegalMoves(e1) = %v during promotion; want none", moves)
		}

		_, err = g.Move(testutil.MustSquare(t, "e1"), testutil.MustSquare(t, "e2"))
		testutil.AssertErrorIs(t, err, errors.ErrPromotionPending)

		testutil.AssertErrorIs(t, g.Promote(chess.King), errors.ErrInvalidPromotion)
		testutil.AssertErrorIs(t, g.Promote(chess.Pawn), errors.ErrInvalidPromotion)
		testutil.AssertErrorIs(t, g.Promote(chess.NoPiece), errors.ErrInvalidPromotion)
	})

	t.Run("queen gives check", func(t *testing.T) {
		g := fromFEN(t, fen)
		play(t, g, "a7a8")

		if got := g.Board().Get(testutil.MustSquare(t, "a8")); got != chess.W(chess.Queen) {
			t.Errorf("a8 = %v; want White Queen", got)
		}
		if got := g.ToMove(); got != chess.Black {
			t.Errorf("ToMove() = %v; want Black", got)
		}
		if got := g.State(); got != Check {
			t.Errorf("State() = %v; want %v", got, Check)
		}
		testutil.AssertErrorIs(t, g.Promote(chess.Queen), errors.ErrNoPromotion)
	})

	t.Run("underpromotion to knight", func(t *testing.T) {
		g := fromFEN(t, fen)
		play(t, g, "a7a8n")

		if got := g.Board().Get(testutil.MustSquare(t, "a8")); got != chess.W(chess.Knight) {
			t.Errorf("a8 = %v; want White Knight", got)
		}
		if got := g.State(); got != InProgress {
			t.Errorf("State() = %v; want %v", got, InProgress)
		}
	})

	t.Run("black promotes on row 7", func(t *testing.T) {
		g := fromFEN(t, "4k3/8/8/8/8/8/7p/K7 b - - 0 1")
		result := play(t, g, "h2h1r")
		if result.State != Check {
			t.Errorf("result.State = %v; want %v", result.State, Check)
		}
		if got := g.Board().Get(testutil.MustSquare(t, "h1")); got != chess.B(chess.Rook) {
			t.Errorf("h1 = %v; want Black Rook", got)
		}
	})

	t.Run("promotion letter on an ordinary move", func(t *testing.T) {
		g := New()
		step, err := ParseStep("e2e4q")
		testutil.AssertNoError(t, err)
		_, err = g.Play(step)
		testutil.AssertErrorIs(t, err, errors.ErrNoPromotion)
		testutil.AssertBoard(t, g.Board(), chess.NewInitialBoard())
	})

	t.Run("promote without pending pawn", func(t *testing.T) {
		testutil.AssertErrorIs(t, New().Promote(chess.Queen), errors.ErrNoPromotion)
	})
}

func TestNewFromBoard_Terminal(t *testing.T) {
	g := fromFEN(t, "k7/2Q5/8/8/8/8/8/4K3 b - - 0 1")

	if got := g.State(); got != Stalemate {
		t.Fatalf("State() = %v; want %v", got, Stalemate)
	}
	if _, ok := g.CheckedKing(); ok {
		t.Error("CheckedKing() reported a king in check in stalemate")
	}
	_, err := g.Move(testutil.MustSquare(t, "a8"), testutil.MustSquare(t, "b8"))
	testutil.AssertErrorIs(t, err, errors.ErrGameOver)
}

func TestReset(t *testing.T) {
	g := New()
	id := g.ID()
	play(t, g, "f2f3", "e7e5", "g2g4", "d8h4")

	g.Reset()

	if g.ID() != id {
		t.Errorf("ID() = %q after Reset; want %q", g.ID(), id)
	}
	if got := g.State(); got != InProgress {
		t.Errorf("State() = %v; want %v", got, InProgress)
	}
	if got := g.ToMove(); got != chess.White {
		t.Errorf("ToMove() = %v; want White", got)
	}
	testutil.AssertBoard(t, g.Board(), chess.NewInitialBoard())
	if got := g.Captured(chess.White); len(got) != 0 {
		t.Errorf("Captured(White) = %v; want none", got)
	}
}

func TestConcurrentReads(t *testing.T) {
	g := New()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, sq := range g.Board().Pieces(chess.White) {
				g.LegalMoves(sq)
			}
			g.State()
		}()
	}
	play(t, g, "e2e4")
	wg.Wait()
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{InProgress, "in progress"},
		{Check, "check"},
		{Checkmate, "checkmate"},
		{Stalemate, "stalemate"},
		{Promotion, "promotion"},
		{State(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q; want %q", int(tt.state), got, tt.want)
		}
	}
}
