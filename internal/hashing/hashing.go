// Package hashing provides duplicate detection for chess positions.
package hashing

import (
	"math/rand"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

var (
	// pieceKeys is indexed by colour, piece kind, row and column.
	pieceKeys [2][7][chess.BoardSize][chess.BoardSize]uint64
	// blackToMoveKey is mixed in when Black is to move.
	blackToMoveKey uint64
)

func init() {
	initZobrist()
}

func initZobrist() {
	// Fixed seed so hashes are stable between runs
	rnd := rand.New(rand.NewSource(0xC0DE))

	for c := range pieceKeys {
		for k := range pieceKeys[c] {
			for r := range pieceKeys[c][k] {
				for f := range pieceKeys[c][k][r] {
					pieceKeys[c][k][r][f] = rnd.Uint64()
				}
			}
		}
	}
	blackToMoveKey = rnd.Uint64()
}

// GenerateZobristHash hashes the placement and the side to move.
func GenerateZobristHash(b chess.Board, toMove chess.Colour) uint64 {
	var hash uint64
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			p := b.Squares[row][col]
			if p.IsEmpty() {
				continue
			}
			hash ^= pieceKeys[p.Colour][p.Kind][row][col]
		}
	}
	if toMove == chess.Black {
		hash ^= blackToMoveKey
	}
	return hash
}

// WeakHash is a cheap second opinion on the placement, independent of the
// Zobrist keys.
func WeakHash(b chess.Board) uint64 {
	var hash uint64
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			p := b.Squares[row][col]
			if p.IsEmpty() {
				continue
			}
			square := uint64(row*chess.BoardSize + col + 1)
			hash += square * uint64(p.Letter())
		}
	}
	return hash
}

// PositionSignature stores identifying information about a position.
type PositionSignature struct {
	// Hash is the Zobrist hash of the position
	Hash uint64
	// WeakHash is a fast hash for quick comparison
	WeakHash uint64
	// ToMove is the side the position was evaluated for
	ToMove chess.Colour
}

// DuplicateDetector tracks seen positions for duplicate detection.
type DuplicateDetector struct {
	// hashTable stores seen signatures by Zobrist hash
	hashTable map[uint64][]PositionSignature
	// duplicateCount tracks number of duplicates found
	duplicateCount int
	// maxCapacity limits stored signatures (0 = unlimited)
	maxCapacity int
	// entries counts stored signatures
	entries int
}

// NewDuplicateDetector creates a new duplicate detector.
// maxCapacity of 0 means unlimited capacity.
func NewDuplicateDetector(maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:   make(map[uint64][]PositionSignature),
		maxCapacity: maxCapacity,
	}
}

// CheckAndAdd checks if a position is a duplicate and records it.
// Returns true if the position was seen before. Once the detector is full,
// new positions are still checked but no longer recorded.
func (d *DuplicateDetector) CheckAndAdd(b chess.Board, toMove chess.Colour) bool {
	sig := PositionSignature{
		Hash:     GenerateZobristHash(b, toMove),
		WeakHash: WeakHash(b),
		ToMove:   toMove,
	}

	for _, existing := range d.hashTable[sig.Hash] {
		if existing == sig {
			d.duplicateCount++
			return true
		}
	}

	if d.IsFull() {
		return false
	}
	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	d.entries++
	return false
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of recorded positions.
func (d *DuplicateDetector) UniqueCount() int {
	return d.entries
}

// IsFull returns true if the detector has reached its capacity limit.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.entries >= d.maxCapacity
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]PositionSignature)
	d.duplicateCount = 0
	d.entries = 0
}
