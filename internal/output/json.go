package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/processing"
)

// JSONReport represents a position report in JSON format.
type JSONReport struct {
	Index       int              `json:"index"`
	File        string           `json:"file,omitempty"`
	Line        int              `json:"line,omitempty"`
	FEN         string           `json:"fen,omitempty"`
	ToMove      string           `json:"toMove,omitempty"`
	Status      string           `json:"status,omitempty"`
	InCheck     bool             `json:"inCheck"`
	King        string           `json:"king,omitempty"`
	LegalMoves  int              `json:"legalMoves"`
	Moves       []JSONPieceMoves `json:"moves,omitempty"`
	MovesPlayed int              `json:"movesPlayed,omitempty"`
	Captured    *JSONCaptured    `json:"captured,omitempty"`
	Board       []string         `json:"board,omitempty"`
	Error       string           `json:"error,omitempty"`
}

// JSONPieceMoves lists the legal destinations of one piece.
type JSONPieceMoves struct {
	From  string   `json:"from"`
	Piece string   `json:"piece"`
	To    []string `json:"to"`
}

// JSONCaptured holds captured pieces by the colour of the captured piece.
type JSONCaptured struct {
	White string `json:"white,omitempty"`
	Black string `json:"black,omitempty"`
}

// JSONOutput holds multiple reports for array output.
type JSONOutput struct {
	Positions []*JSONReport `json:"positions"`
}

// OutputReportJSON outputs a single report in JSON format.
func OutputReportJSON(w io.Writer, r *processing.Report, out *config.OutputConfig) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ReportToJSON(r, out))
}

// OutputReportsJSON outputs multiple reports as a JSON array.
func OutputReportsJSON(w io.Writer, reports []*processing.Report, out *config.OutputConfig) error {
	jsonReports := make([]*JSONReport, len(reports))
	for i, r := range reports {
		jsonReports[i] = ReportToJSON(r, out)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(&JSONOutput{Positions: jsonReports})
}

// ReportToJSON converts a report to JSON format.
func ReportToJSON(r *processing.Report, out *config.OutputConfig) *JSONReport {
	jr := &JSONReport{
		Index: r.Position.Index,
		File:  r.Position.File,
		Line:  r.Position.Line,
	}

	if r.Failed() {
		jr.FEN = r.Position.FEN
		jr.Error = r.Err.Error()
		return jr
	}

	jr.FEN = r.FEN
	jr.ToMove = colourName(r.ToMove)
	jr.Status = r.Status.String()
	jr.InCheck = r.InCheck
	if r.InCheck {
		jr.King = r.KingSquare.String()
	}
	jr.LegalMoves = r.LegalMoves
	jr.MovesPlayed = r.MovesPlayed

	if len(r.CapturedW) > 0 || len(r.CapturedB) > 0 {
		jr.Captured = &JSONCaptured{}
		if len(r.CapturedW) > 0 {
			jr.Captured.White = pieceLetters(r.CapturedW)
		}
		if len(r.CapturedB) > 0 {
			jr.Captured.Black = pieceLetters(r.CapturedB)
		}
	}

	if out != nil && out.ListMoves {
		jr.Moves = convertPieceMoves(r.PieceMoves)
	}
	if out != nil && out.ShowBoard {
		jr.Board = strings.Split(strings.TrimSuffix(r.Board.String(), "\n"), "\n")
	}

	return jr
}

func convertPieceMoves(moves []processing.PieceMoves) []JSONPieceMoves {
	result := make([]JSONPieceMoves, 0, len(moves))
	for _, pm := range moves {
		jm := JSONPieceMoves{
			From:  pm.From.String(),
			Piece: strings.ToLower(pm.Piece.Kind.String()),
			To:    make([]string, len(pm.To)),
		}
		for i, to := range pm.To {
			jm.To[i] = to.String()
		}
		result = append(result, jm)
	}
	return result
}
