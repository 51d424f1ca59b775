// Package board implements the chess board representation, move application
// and pseudo-legal move generation.
package board

import (
	"fmt"
	"strings"
)

const Width = 8

// Board is an 8x8 grid of Cells plus turn/terminal bits. Cells are indexed
// Rank*8+File, with File 0 = a-file and Rank 0 = white's back rank. Board is
// a value type: ApplyMove takes one by value and returns a new one, never
// mutating its input.
type Board struct {
	Cells       [Width * Width]Cell
	WhiteToMove bool
	WhiteWon    bool
	BlackWon    bool
}

func (b *Board) At(s Square) Cell {
	return b.Cells[s.Index()]
}

func (b *Board) Set(s Square, c Cell) {
	b.Cells[s.Index()] = c
}

// ToMove returns the colour whose turn it is.
func (b *Board) ToMove() Color {
	if b.WhiteToMove {
		return White
	}
	return Black
}

// Terminal reports whether either side has already won by king capture; no
// further moves should be generated from such a board.
func (b *Board) Terminal() bool {
	return b.WhiteWon || b.BlackWon
}

var startingBackRank = [Width]Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// Starting returns the standard chess starting position.
func Starting() Board {
	var b Board
	b.WhiteToMove = true

	for f := File(0); f < Width; f++ {
		b.Set(NewSquare(f, 1), NewCell(Pawn, true))
		b.Set(NewSquare(f, 6), NewCell(Pawn, false))
		b.Set(NewSquare(f, 0), NewCell(startingBackRank[f], true))
		b.Set(NewSquare(f, 7), NewCell(startingBackRank[f], false))
	}
	return b
}

// ApplyMove returns a new Board reflecting the effect of applying m to b. b
// is unchanged. The source cell must belong to the side to move; violations
// of that and other internal invariants (wrong-coloured capture, missing
// en-passant victim, malformed castling geometry) panic rather than being
// reported to the caller -- they indicate a bug in the move generator, not a
// recoverable runtime condition.
func ApplyMove(b Board, m Move) Board {
	ret := b
	ret.WhiteToMove = !b.WhiteToMove

	for i := range ret.Cells {
		ret.Cells[i] = ret.Cells[i].WithLastWasDoubleStep(false)
	}

	origin := b.At(m.From)
	target := b.At(m.To)

	if origin.White() != b.WhiteToMove {
		panic(fmt.Sprintf("apply move %v: origin %v does not belong to side to move", m, origin))
	}
	if target.Occupied() && target.White() == origin.White() {
		panic(fmt.Sprintf("apply move %v: target %v has the mover's colour", m, target))
	}

	if target.Kind() == King {
		count := 0
		for _, c := range ret.Cells {
			if c.Equals(target) {
				count++
			}
		}
		if count == 1 {
			if target.White() {
				ret.BlackWon = true
			} else {
				ret.WhiteWon = true
			}
		}
	}

	switch origin.Kind() {
	case Pawn:
		dy := int(m.To.Rank) - int(m.From.Rank)
		startRank := Rank(1)
		if !origin.White() {
			startRank = 6
		}
		switch {
		case m.From.Rank == startRank && (dy == 2 || dy == -2):
			origin = origin.WithLastWasDoubleStep(true)
		case m.IsPromotion:
			if m.PromoteToQueen {
				origin = origin.WithKind(Queen)
			} else {
				origin = origin.WithKind(Knight)
			}
		case m.From.File != m.To.File && !target.Occupied():
			// en passant: victim sits beside the origin, behind the destination.
			victimSq := NewSquare(m.To.File, m.From.Rank)
			victim := b.At(victimSq)
			if victim.Kind() != Pawn || !victim.LastWasDoubleStep() || victim.White() == origin.White() {
				panic(fmt.Sprintf("apply move %v: invalid en passant victim at %v", m, victimSq))
			}
			ret.Set(victimSq, Cell(0))
		}
	case King:
		if diff := int(m.To.File) - int(m.From.File); diff > 1 || diff < -1 {
			rookFrom, rookTo := castlingRookSquares(m)
			rook := b.At(rookFrom)
			if rook.Kind() != Rook {
				panic(fmt.Sprintf("apply move %v: no rook at %v for castling", m, rookFrom))
			}
			ret.Set(rookFrom, Cell(0))
			ret.Set(rookTo, rook.WithHasMoved(true))
		}
	}

	origin = origin.WithHasMoved(true)
	ret.Set(m.From, Cell(0))
	ret.Set(m.To, origin)

	return ret
}

// castlingRookSquares returns the rook's origin and destination for a
// castling king move, inferred from the king's destination file. Kingside
// (destination file g) moves the h-file rook to f; queenside (destination
// file c) moves the a-file rook to d.
func castlingRookSquares(m Move) (from, to Square) {
	rank := m.From.Rank
	if m.To.File == 6 {
		return NewSquare(7, rank), NewSquare(5, rank)
	}
	return NewSquare(0, rank), NewSquare(3, rank)
}

// String renders the board as 8 rank-lines, black's back rank first, using
// the same character set accepted by the starting-position parser.
func (b *Board) String() string {
	var sb strings.Builder
	for y := Width - 1; y >= 0; y-- {
		for x := 0; x < Width; x++ {
			c := b.At(NewSquare(File(x), Rank(y)))
			if !c.Occupied() {
				sb.WriteByte('.')
			} else {
				sb.WriteRune(c.Kind().Letter(c.White()))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
