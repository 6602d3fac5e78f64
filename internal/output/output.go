// Package output provides report formatting in text and JSON.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/processing"
)

// defaultLineLength is the wrap column for move lists.
const defaultLineLength = 80

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	indent        string
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer. Continuation lines start
// with indent.
func NewOutputWriter(w io.Writer, maxLineLength int, indent string) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = defaultLineLength
	}
	return &OutputWriter{
		w:             w,
		indent:        indent,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			fmt.Fprint(o.w, o.indent)
			o.lineLength = len(o.indent)
			o.needsSpace = false
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// WriteNoSpace writes without adding a leading space.
func (o *OutputWriter) WriteNoSpace(s string) {
	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// OutputReport writes one report in text form followed by a blank line.
func OutputReport(w io.Writer, r *processing.Report, out *config.OutputConfig) {
	fmt.Fprintf(w, "[%s]", positionLabel(r.Position))

	if r.Failed() {
		fmt.Fprintf(w, " error: %v\n\n", r.Err)
		return
	}
	fmt.Fprintf(w, " %s\n", r.FEN)

	fmt.Fprintf(w, "status: %s\n", r.Status)
	fmt.Fprintf(w, "to move: %s\n", colourName(r.ToMove))
	if r.InCheck {
		fmt.Fprintf(w, "in check: %s\n", r.KingSquare)
	} else if !r.HasKing {
		fmt.Fprintln(w, "in check: no king")
	}
	fmt.Fprintf(w, "legal moves: %d\n", r.LegalMoves)
	if r.MovesPlayed > 0 {
		fmt.Fprintf(w, "moves played: %d\n", r.MovesPlayed)
		outputCaptured(w, r)
	}

	if out != nil && out.ListMoves {
		outputPieceMoves(w, r.PieceMoves)
	}
	if out != nil && out.ShowBoard {
		outputBoard(w, r.Board)
	}

	fmt.Fprintln(w)
}

// positionLabel names a position by its index and, when known, its source.
func positionLabel(pos processing.Position) string {
	label := fmt.Sprintf("position %d", pos.Index)
	if pos.File != "" {
		label += fmt.Sprintf(" %s:%d", pos.File, pos.Line)
	}
	return label
}

func outputCaptured(w io.Writer, r *processing.Report) {
	if len(r.CapturedW) == 0 && len(r.CapturedB) == 0 {
		return
	}
	fmt.Fprintf(w, "captured: white %s, black %s\n",
		pieceLetters(r.CapturedW), pieceLetters(r.CapturedB))
}

func pieceLetters(pieces []chess.Piece) string {
	if len(pieces) == 0 {
		return "-"
	}
	var sb strings.Builder
	for _, p := range pieces {
		sb.WriteByte(p.Letter())
	}
	return sb.String()
}

// outputPieceMoves writes one wrapped line per movable piece, e.g.
// "  Ng1: f3 h3".
func outputPieceMoves(w io.Writer, moves []processing.PieceMoves) {
	for _, pm := range moves {
		ow := NewOutputWriter(w, defaultLineLength, "       ")
		ow.WriteNoSpace("  " + string(pm.Piece.Letter()) + pm.From.String() + ":")
		for _, to := range pm.To {
			ow.Write(to.String())
		}
		ow.NewLine()
	}
}

// outputBoard draws the board with rank and file labels, Black at the top.
func outputBoard(w io.Writer, b chess.Board) {
	for row := 0; row < chess.BoardSize; row++ {
		fmt.Fprintf(w, "  %d", chess.BoardSize-row)
		for col := 0; col < chess.BoardSize; col++ {
			p := b.Get(chess.Sq(row, col))
			if p.IsEmpty() {
				fmt.Fprint(w, " .")
			} else {
				fmt.Fprintf(w, " %c", p.Letter())
			}
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w, "    a b c d e f g h")
}

func colourName(c chess.Colour) string {
	return strings.ToLower(c.String())
}
