package search_test

import (
	"testing"

	"github.com/chessblunder/blunder/pkg/board"
	"github.com/chessblunder/blunder/pkg/board/fen"
	"github.com/chessblunder/blunder/pkg/search"
	"github.com/seekerror/stdlib/pkg/lang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestIterativePlaysThePuzzleCapture reproduces a literal scenario from the
// retrieved test suite: from this position, iterative-deepening alpha-beta
// at depth 6 should find the free knight on f6, not miss it behind the
// aspiration window or a shallow horizon.
func TestIterativePlaysThePuzzleCapture(t *testing.T) {
	b, err := fen.Decode("r2q1b1r/2p1kpp1/ppQp1n2/3PP1p1/8/8/PPP3PP/RN3RK1 w - - 0 1")
	require.NoError(t, err)

	pv := search.Iterative(&b, lang.Some(6), false, search.NewTable())
	m := pv.Move()

	assert.Equal(t, board.NewSquare(4, 4), m.From, "expected the e5 pawn to move")
	assert.Equal(t, board.NewSquare(5, 5), m.To, "expected the capture to land on f6")
}
