package engine_test

import (
	"context"
	"errors"
	"testing"

	"github.com/chessblunder/blunder/pkg/board"
	"github.com/chessblunder/blunder/pkg/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// initialPosition is the starting position as Position reports it: piece
// placement and side to move, with the castling and en-passant fields "-".
const initialPosition = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"

func TestNewStartsAtInitialPosition(t *testing.T) {
	e := engine.New(context.Background(), "test", "tester")
	assert.Equal(t, initialPosition, e.Position())
}

func TestMoveAppliesPseudoLegalMove(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "test", "tester")

	require.NoError(t, e.Move(ctx, "e2e4"))

	b := e.Board()
	assert.False(t, b.WhiteToMove)
	assert.True(t, b.At(board.NewSquare(4, 3)).Occupied())
}

func TestMoveRejectsIllegalMove(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "test", "tester")

	err := e.Move(ctx, "e2e5")
	assert.ErrorIs(t, err, engine.ErrInvalidMove)
}

func TestMoveRejectsUnparsableText(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "test", "tester")

	err := e.Move(ctx, "nonsense")
	assert.ErrorIs(t, err, engine.ErrInvalidMove)
}

func TestTakeBackUndoesLastMove(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "test", "tester")

	require.NoError(t, e.Move(ctx, "e2e4"))
	require.NoError(t, e.TakeBack(ctx))

	assert.Equal(t, initialPosition, e.Position())
}

func TestTakeBackWithNoHistoryErrors(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "test", "tester")

	assert.Error(t, e.TakeBack(ctx))
}

func TestResetRejectsInvalidPosition(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "test", "tester")

	err := e.Reset(ctx, "not a position")
	assert.True(t, errors.Is(err, engine.ErrInvalidPosition))
}

func TestSelectMoveAppliesAMoveAndAdvancesTurn(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "test", "tester", engine.WithSelectors(engine.MinimaxMoveWhite, engine.MinimaxMoveBlack))

	m, err := e.SelectMove(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, board.Move{}, m)

	b := e.Board()
	assert.False(t, b.WhiteToMove)
}

func TestSelectMoveOnBareKingsStillFindsAMove(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "test", "tester")
	require.NoError(t, e.Reset(ctx, "4k3/8/8/8/8/8/8/4K3 w - - 0 1"))

	m, err := e.SelectMove(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, board.Move{}, m)
}
