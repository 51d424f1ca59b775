package eval_test

import (
	"testing"

	"github.com/chessblunder/blunder/pkg/board"
	"github.com/chessblunder/blunder/pkg/board/fen"
	"github.com/chessblunder/blunder/pkg/eval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateStartingPositionIsZero(t *testing.T) {
	b := board.Starting()
	assert.Equal(t, eval.Score(0), eval.Evaluate(&b))
}

func TestEvaluateFavorsSideWithExtraMaterial(t *testing.T) {
	b, err := fen.Decode("4k3/8/8/8/8/8/8/4K2Q w - - 0 1")
	require.NoError(t, err)

	assert.Greater(t, int(eval.Evaluate(&b)), 0)
}

func TestEvaluateIsAntisymmetricUnderColorMirror(t *testing.T) {
	// The second position is the first with every piece moved to its
	// rank-mirrored square and recoloured -- the same transform Evaluate
	// itself applies via mirrorIndex when reading black's pieces.
	original, err := fen.Decode("4k3/8/8/8/8/8/8/4K2Q w - - 0 1")
	require.NoError(t, err)
	mirrored, err := fen.Decode("4k2q/8/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	assert.Equal(t, eval.Evaluate(&original), -eval.Evaluate(&mirrored))
}

func TestNominalValueOrdering(t *testing.T) {
	assert.Greater(t, int(eval.NominalValue(board.Queen)), int(eval.NominalValue(board.Rook)))
	assert.Greater(t, int(eval.NominalValue(board.Rook)), int(eval.NominalValue(board.Bishop)))
	assert.Greater(t, int(eval.NominalValue(board.Knight)), int(eval.NominalValue(board.Pawn)))
	assert.Greater(t, int(eval.NominalValue(board.King)), int(eval.NominalValue(board.Queen)))
}
