// Package eval implements static position evaluation: material balance plus
// per-square positional bonus tables.
package eval

import "github.com/chessblunder/blunder/pkg/board"

// Score is a signed centipawn position score; positive favors white.
type Score int32

const (
	NegInf    Score = -2_000_000
	Inf       Score = 2_000_000
	KingValue Score = 100000
)

// NominalValue is the material value of a piece kind, in centipawns, using
// the commonly cited AlphaZero relative valuations. King is set far above
// any realistic material count so a king-capturing line always dominates
// evaluation.
func NominalValue(p board.Piece) Score {
	switch p {
	case board.King:
		return KingValue
	case board.Queen:
		return 950
	case board.Rook:
		return 563
	case board.Bishop:
		return 333
	case board.Knight:
		return 305
	case board.Pawn:
		return 100
	default:
		return 0
	}
}

// Evaluate returns the static score of b: for every occupied cell, the sum
// of its material value and positional bonus, negated for black, zero
// contribution for a square whose combined value happens to be exactly
// zero. The evaluator is total and side-to-move agnostic: callers interpret
// the sign according to who is to move at the leaf.
func Evaluate(b *board.Board) Score {
	var total Score

	for i := range b.Cells {
		c := b.Cells[i]
		kind := c.Kind()
		if kind == board.NoPiece {
			continue
		}

		pos := i
		if !c.White() {
			pos = mirrorIndex(i)
		}

		s := Score(squareBonus[kind][pos]) + NominalValue(kind)
		if s == 0 {
			continue
		}
		if c.White() {
			total += s
		} else {
			total -= s
		}
	}

	return total
}

// mirrorIndex flips a board index vertically (rank 0 <-> rank 7, file
// unchanged), used to read white-oriented square-bonus tables from black's
// perspective.
func mirrorIndex(i int) int {
	return ((board.Width*board.Width - 1) - i) &^ 7 | (i & 7)
}
