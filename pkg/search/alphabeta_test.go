package search_test

import (
	"testing"

	"github.com/chessblunder/blunder/pkg/board"
	"github.com/chessblunder/blunder/pkg/board/fen"
	"github.com/chessblunder/blunder/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlphaBetaAgreesWithMinimax(t *testing.T) {
	positions := []string{
		fen.Initial,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	}

	for _, p := range positions {
		b, err := fen.Decode(p)
		require.NoError(t, err)

		findMin := !b.WhiteToMove
		want := search.Minimax(&b, 3, findMin)
		got := search.AlphaBeta(&b, 3, findMin, search.NewTable())

		assert.Equalf(t, want.Score, got.Score, "alpha-beta/minimax disagree on %q", p)
	}
}

func TestAlphaBetaFindsMateInOne(t *testing.T) {
	b, err := fen.Decode("k7/7R/6R1/8/8/8/8/7K w - - 0 1")
	require.NoError(t, err)

	pv := search.AlphaBeta(&b, 2, false, search.NewTable())
	require.NotEmpty(t, pv.Line)

	child := board.ApplyMove(b, pv.Line[0])
	assert.True(t, child.BlackWon || child.WhiteWon || pv.Score >= 90000,
		"expected a near-mate score, got %v", pv.Score)
}

func TestAlphaBetaTranspositionTableIsOptional(t *testing.T) {
	b, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	withTT := search.AlphaBeta(&b, 2, false, search.NewTable())
	withoutTT := search.AlphaBeta(&b, 2, false, nil)

	assert.Equal(t, withTT.Score, withoutTT.Score)
}
