// Package matching provides position filtering by material balance.
package matching

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// pieceKinds lists the kinds a pattern can name.
var pieceKinds = []chess.PieceKind{chess.King, chess.Queen, chess.Rook, chess.Bishop, chess.Knight, chess.Pawn}

// MaterialMatcher matches positions by material balance.
type MaterialMatcher struct {
	// Pattern like "QR:qrr" means white has Q+R, black has Q+2R
	pattern     string
	exactMatch  bool
	whitePieces map[chess.PieceKind]int
	blackPieces map[chess.PieceKind]int
}

// NewMaterialMatcher creates a new material matcher.
// Pattern format: "QRN:qrn" (white pieces : black pieces)
// Use uppercase for white, lowercase for black
// K=King, Q=Queen, R=Rook, B=Bishop, N=Knight, P=Pawn
func NewMaterialMatcher(pattern string, exact bool) *MaterialMatcher {
	mm := &MaterialMatcher{
		pattern:     pattern,
		exactMatch:  exact,
		whitePieces: make(map[chess.PieceKind]int),
		blackPieces: make(map[chess.PieceKind]int),
	}
	mm.parsePattern(pattern)
	return mm
}

// ValidatePattern rejects patterns with more than one ':' or with letters
// that name no piece of the side they appear under.
func ValidatePattern(pattern string) error {
	parts := strings.Split(pattern, ":")
	if len(parts) > 2 {
		return fmt.Errorf("material pattern %q: %w", pattern, errors.ErrInvalidConfig)
	}
	if strings.Trim(parts[0], "KQRBNP") != "" {
		return fmt.Errorf("material pattern %q: bad white piece: %w", pattern, errors.ErrInvalidConfig)
	}
	if len(parts) == 2 && strings.Trim(parts[1], "kqrbnp") != "" {
		return fmt.Errorf("material pattern %q: bad black piece: %w", pattern, errors.ErrInvalidConfig)
	}
	return nil
}

// parsePattern parses a material pattern like "QR:qrr"
func (mm *MaterialMatcher) parsePattern(pattern string) {
	parts := strings.Split(pattern, ":")
	if len(parts) >= 1 {
		parsePieces(parts[0], chess.White, mm.whitePieces)
	}
	if len(parts) >= 2 {
		parsePieces(parts[1], chess.Black, mm.blackPieces)
	}
}

// parsePieces counts the letters of one side. Letters in the other side's
// case are ignored.
func parsePieces(s string, colour chess.Colour, counts map[chess.PieceKind]int) {
	for i := 0; i < len(s); i++ {
		for _, kind := range pieceKinds {
			if (chess.Piece{Kind: kind, Colour: colour}).Letter() == s[i] {
				counts[kind]++
			}
		}
	}
}

// MatchBoard checks if a position matches the material pattern.
func (mm *MaterialMatcher) MatchBoard(board chess.Board) bool {
	whiteCounts := make(map[chess.PieceKind]int)
	blackCounts := make(map[chess.PieceKind]int)

	for _, sq := range board.Pieces(chess.White) {
		whiteCounts[board.Get(sq).Kind]++
	}
	for _, sq := range board.Pieces(chess.Black) {
		blackCounts[board.Get(sq).Kind]++
	}

	if mm.exactMatch {
		return mm.exactMaterialMatch(whiteCounts, blackCounts)
	}
	return mm.minimalMaterialMatch(whiteCounts, blackCounts)
}

// exactMaterialMatch checks for exact material match.
func (mm *MaterialMatcher) exactMaterialMatch(whiteCounts, blackCounts map[chess.PieceKind]int) bool {
	for _, kind := range pieceKinds {
		if whiteCounts[kind] != mm.whitePieces[kind] {
			return false
		}
		if blackCounts[kind] != mm.blackPieces[kind] {
			return false
		}
	}
	return true
}

// minimalMaterialMatch checks that at least the specified pieces exist.
func (mm *MaterialMatcher) minimalMaterialMatch(whiteCounts, blackCounts map[chess.PieceKind]int) bool {
	for kind, count := range mm.whitePieces {
		if whiteCounts[kind] < count {
			return false
		}
	}
	for kind, count := range mm.blackPieces {
		if blackCounts[kind] < count {
			return false
		}
	}
	return true
}

// HasCriteria returns true if a material pattern is set.
func (mm *MaterialMatcher) HasCriteria() bool {
	return mm.pattern != ""
}

// Pattern returns the pattern the matcher was built from.
func (mm *MaterialMatcher) Pattern() string {
	return mm.pattern
}
