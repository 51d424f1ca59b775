package board_test

import (
	"testing"

	"github.com/chessblunder/blunder/pkg/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sq(file, rank int) board.Square {
	return board.NewSquare(board.File(file), board.Rank(rank))
}

func hasMove(moves []board.Move, from, to board.Square) bool {
	for _, m := range moves {
		if m.From == from && m.To == to {
			return true
		}
	}
	return false
}

func TestStartingPositionHas20Moves(t *testing.T) {
	b := board.Starting()
	assert.Len(t, board.GenerateAll(&b), 20)
}

func TestKnightInCenterHasExactlyEightMoves(t *testing.T) {
	var b board.Board
	b.WhiteToMove = true
	b.Set(sq(4, 4), board.NewCell(board.Knight, true))

	assert.Len(t, board.GenerateAll(&b), 8)
}

func TestPawnCapturesBothDiagonals(t *testing.T) {
	var b board.Board
	b.WhiteToMove = true
	b.Set(sq(4, 3), board.NewCell(board.Pawn, true))
	b.Set(sq(3, 4), board.NewCell(board.Pawn, false))
	b.Set(sq(5, 4), board.NewCell(board.Pawn, false))

	moves := board.GenerateAll(&b)
	assert.True(t, hasMove(moves, sq(4, 3), sq(3, 4)))
	assert.True(t, hasMove(moves, sq(4, 3), sq(5, 4)))
}

func TestEnPassantCaptureIsGeneratedAndApplied(t *testing.T) {
	var b board.Board
	b.WhiteToMove = true
	b.Set(sq(4, 4), board.NewCell(board.Pawn, true))
	b.Set(sq(3, 4), board.NewCell(board.Pawn, false).WithLastWasDoubleStep(true))

	moves := board.GenerateAll(&b)
	require.True(t, hasMove(moves, sq(4, 4), sq(3, 5)))

	next := board.ApplyMove(b, board.Move{From: sq(4, 4), To: sq(3, 5)})
	assert.False(t, next.At(sq(3, 4)).Occupied(), "captured pawn must be removed")
	assert.True(t, next.At(sq(3, 5)).Occupied())
}

func TestPromotionEmitsQueenAndKnightVariants(t *testing.T) {
	var b board.Board
	b.WhiteToMove = true
	b.Set(sq(0, 6), board.NewCell(board.Pawn, true))

	moves := board.GenerateAll(&b)

	var sawQueen, sawKnight bool
	for _, m := range moves {
		if m.From == sq(0, 6) && m.To == sq(0, 7) {
			if m.IsPromotion && m.PromoteToQueen {
				sawQueen = true
			}
			if m.IsPromotion && !m.PromoteToQueen {
				sawKnight = true
			}
		}
	}
	assert.True(t, sawQueen)
	assert.True(t, sawKnight)
}

func TestApplyMoveKingCaptureEndsGame(t *testing.T) {
	var b board.Board
	b.WhiteToMove = true
	b.Set(sq(0, 0), board.NewCell(board.Rook, true))
	b.Set(sq(0, 7), board.NewCell(board.King, false))
	b.Set(sq(7, 7), board.NewCell(board.King, true))

	next := board.ApplyMove(b, board.Move{From: sq(0, 0), To: sq(0, 7)})
	assert.True(t, next.WhiteWon)
	assert.True(t, next.Terminal())
}

// TestCastlingBlockedByAttackOnEachDiagonal exercises the diagonal scan in
// isAttacked: a bishop bearing on the king's crossing square along either
// diagonal through it must block castling. From the back rank only the two
// upward directions stay on the board, so those are the two cases here.
// See DESIGN.md.
func TestCastlingBlockedByAttackOnEachDiagonal(t *testing.T) {
	cases := []struct {
		name   string
		bishop board.Square
	}{
		{"attack via (+1,+1)", sq(7, 2)}, // h3, bears on f1 via dir (1,1): f1,g2,h3
		{"attack via (-1,+1)", sq(3, 2)}, // d3, bears on f1 via dir (-1,1): f1,e2,d3
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var b board.Board
			b.WhiteToMove = true
			b.Set(sq(4, 0), board.NewCell(board.King, true))
			b.Set(sq(7, 0), board.NewCell(board.Rook, true))
			b.Set(tc.bishop, board.NewCell(board.Bishop, false))

			moves := board.GenerateAll(&b)
			assert.False(t, hasMove(moves, sq(4, 0), sq(6, 0)), "castling through an attacked square must not be generated")
		})
	}
}

func TestCastlingKingsideAndQueenside(t *testing.T) {
	var b board.Board
	b.WhiteToMove = true
	b.Set(sq(4, 0), board.NewCell(board.King, true))
	b.Set(sq(0, 0), board.NewCell(board.Rook, true))
	b.Set(sq(7, 0), board.NewCell(board.Rook, true))

	moves := board.GenerateAll(&b)
	assert.True(t, hasMove(moves, sq(4, 0), sq(6, 0)), "kingside castle")
	assert.True(t, hasMove(moves, sq(4, 0), sq(2, 0)), "queenside castle")

	kingside := board.ApplyMove(b, board.Move{From: sq(4, 0), To: sq(6, 0)})
	assert.Equal(t, board.Rook, kingside.At(sq(5, 0)).Kind())
	assert.False(t, kingside.At(sq(7, 0)).Occupied())
}

// TestCastlingIgnoresCheckOnOrigin reproduces a known gap rather than fixing
// it: castling out of check is not rejected, only squares strictly between
// king and rook are checked. See movegen.go's visitCastling and DESIGN.md.
func TestCastlingIgnoresCheckOnOrigin(t *testing.T) {
	var b board.Board
	b.WhiteToMove = true
	b.Set(sq(4, 0), board.NewCell(board.King, true))
	b.Set(sq(7, 0), board.NewCell(board.Rook, true))
	b.Set(sq(4, 7), board.NewCell(board.Rook, false)) // attacks e1 itself, not f1/g1

	moves := board.GenerateAll(&b)
	assert.True(t, hasMove(moves, sq(4, 0), sq(6, 0)), "reproduced gap: castling out of check is not rejected")
}
