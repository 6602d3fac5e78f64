package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/processing"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

const (
	foolsMateFEN = "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3"
	pawnKingFEN  = "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1"
)

func analyze(t *testing.T, index int, fen string, moves ...string) *processing.Report {
	t.Helper()
	return processing.Analyze(processing.Position{Index: index, FEN: fen, Moves: moves}, nil, true)
}

// TestTextWriter_WriteReport verifies the text layout of a checkmate report
func TestTextWriter_WriteReport(t *testing.T) {
	var buf bytes.Buffer
	writer := NewTextWriter(&buf, config.NewOutputConfig())

	testutil.AssertNoError(t, writer.WriteReport(analyze(t, 1, foolsMateFEN)))
	testutil.AssertNoError(t, writer.Close())

	want := "[position 1] rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w - - 0 1\n" +
		"status: checkmate\n" +
		"to move: white\n" +
		"in check: e1\n" +
		"legal moves: 0\n" +
		"\n"
	testutil.AssertEqual(t, buf.String(), want)
}

func TestTextWriter_MovesAndBoard(t *testing.T) {
	var buf bytes.Buffer
	out := &config.OutputConfig{ListMoves: true, ShowBoard: true}
	OutputReport(&buf, analyze(t, 2, pawnKingFEN), out)

	got := buf.String()
	for _, want := range []string{
		"status: in progress\n",
		"legal moves: 6\n",
		"  Pe2: e3 e4\n",
		"  Ke1: d2 f2 d1 f1\n",
		"  8 . . . . k . . .\n",
		"  2 . . . . P . . .\n",
		"  1 . . . . K . . .\n",
		"    a b c d e f g h\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "in check") {
		t.Errorf("output should not report check:\n%s", got)
	}
}

func TestTextWriter_Replay(t *testing.T) {
	var buf bytes.Buffer
	OutputReport(&buf, analyze(t, 1, "", "e2e4", "d7d5", "e4d5"), nil)

	got := buf.String()
	if !strings.Contains(got, "moves played: 3\n") {
		t.Errorf("missing move count:\n%s", got)
	}
	if !strings.Contains(got, "captured: white -, black p\n") {
		t.Errorf("missing captures:\n%s", got)
	}
	if !strings.Contains(got, "to move: black\n") {
		t.Errorf("wrong side to move:\n%s", got)
	}
}

func TestTextWriter_Error(t *testing.T) {
	var buf bytes.Buffer
	r := processing.Analyze(processing.Position{Index: 4, File: "in.txt", Line: 9, FEN: "junk"}, nil, false)
	OutputReport(&buf, r, nil)

	got := buf.String()
	if !strings.HasPrefix(got, "[position 4 in.txt:9] error: ") {
		t.Errorf("unexpected error line: %q", got)
	}
	if !strings.HasSuffix(got, "\n\n") {
		t.Errorf("error report should end with a blank line: %q", got)
	}
}

// TestJSONWriter_Batch verifies JSON writer buffers and outputs array
func TestJSONWriter_Batch(t *testing.T) {
	var buf bytes.Buffer
	writer := NewJSONWriter(&buf, &config.OutputConfig{ListMoves: true})

	testutil.AssertNoError(t, writer.WriteReport(analyze(t, 1, foolsMateFEN)))
	testutil.AssertNoError(t, writer.WriteReport(analyze(t, 2, pawnKingFEN)))
	if buf.Len() != 0 {
		t.Error("JSON writer should buffer until Close")
	}
	testutil.AssertNoError(t, writer.Close())

	var result JSONOutput
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if len(result.Positions) != 2 {
		t.Fatalf("positions = %d, want 2", len(result.Positions))
	}

	mate := result.Positions[0]
	if mate.Status != "checkmate" || !mate.InCheck || mate.King != "e1" || mate.ToMove != "white" {
		t.Errorf("unexpected mate report: %+v", mate)
	}
	if mate.Moves != nil {
		t.Errorf("mated side should list no moves, got %v", mate.Moves)
	}

	quiet := result.Positions[1]
	want := []JSONPieceMoves{
		{From: "e2", Piece: "pawn", To: []string{"e3", "e4"}},
		{From: "e1", Piece: "king", To: []string{"d2", "f2", "d1", "f1"}},
	}
	testutil.AssertEqual(t, quiet.Moves, want)
	if quiet.LegalMoves != 6 {
		t.Errorf("legalMoves = %d, want 6", quiet.LegalMoves)
	}

	// A second close writes nothing.
	before := buf.Len()
	testutil.AssertNoError(t, writer.Close())
	if buf.Len() != before {
		t.Error("Close after Flush should not write again")
	}
}

// TestJSONWriter_Single verifies single mode writes each report immediately
func TestJSONWriter_Single(t *testing.T) {
	var buf bytes.Buffer
	writer := NewJSONWriterSingle(&buf, &config.OutputConfig{ShowBoard: true})

	testutil.AssertNoError(t, writer.WriteReport(analyze(t, 1, pawnKingFEN)))
	if buf.Len() == 0 {
		t.Fatal("single mode should write immediately")
	}

	var jr JSONReport
	if err := json.Unmarshal(buf.Bytes(), &jr); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	testutil.AssertEqual(t, len(jr.Board), 8, "board rows")
	testutil.AssertEqual(t, jr.Board[0], "....k...")
	testutil.AssertEqual(t, jr.Board[6], "....P...")
}

func TestReportToJSON_Error(t *testing.T) {
	r := processing.Analyze(processing.Position{Index: 3, FEN: "8/8/8 w"}, nil, false)
	jr := ReportToJSON(r, nil)

	if jr.Error == "" {
		t.Error("error should be set")
	}
	if jr.FEN != "8/8/8 w" {
		t.Errorf("fen = %q, want input text", jr.FEN)
	}
	if jr.Status != "" || jr.ToMove != "" {
		t.Errorf("failed report should carry no evaluation: %+v", jr)
	}
}

func TestReportToJSON_Captured(t *testing.T) {
	jr := ReportToJSON(analyze(t, 1, "", "e2e4", "d7d5", "e4d5", "d8d5"), nil)
	testutil.AssertEqual(t, jr.Captured, &JSONCaptured{White: "P", Black: "p"})
	testutil.AssertEqual(t, jr.MovesPlayed, 4)
}

func TestNewWriter(t *testing.T) {
	var buf bytes.Buffer
	if _, ok := NewWriter(&buf, &config.OutputConfig{Format: config.JSON}).(*JSONWriter); !ok {
		t.Error("JSON format should give a JSONWriter")
	}
	if _, ok := NewWriter(&buf, nil).(*TextWriter); !ok {
		t.Error("nil output config should give a TextWriter")
	}
}

func TestOutputWriter_Wrap(t *testing.T) {
	var buf bytes.Buffer
	ow := NewOutputWriter(&buf, 10, "  ")
	ow.Write("abcd")
	ow.Write("efgh")
	ow.Write("ij")
	ow.NewLine()

	testutil.AssertEqual(t, buf.String(), "abcd efgh\n  ij\n")
}
