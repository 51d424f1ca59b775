package fen_test

import (
	"strings"
	"testing"

	"github.com/chessblunder/blunder/pkg/board"
	"github.com/chessblunder/blunder/pkg/board/fen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeEncodeRoundTrip(t *testing.T) {
	tests := []string{
		fen.Initial,
		"4k3/2pppp2/8/4P1K1/4PP2/3P4/8/8 w - - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/5P2/PPPPP1PP/RNBQKBNR w KQkq - 0 1",
		"r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1",
	}

	for _, tt := range tests {
		b, err := fen.Decode(tt)
		require.NoError(t, err)

		fields := strings.Fields(tt)
		want := fields[0] + " " + fields[1] + " - - 0 1"
		assert.Equal(t, want, fen.Encode(&b))
	}
}

func TestDecodeInitialMatchesStarting(t *testing.T) {
	b, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	want := board.Starting()
	assert.Equal(t, want.Cells, b.Cells)
	assert.True(t, b.WhiteToMove)
}

func TestDecodeSideToMove(t *testing.T) {
	b, err := fen.Decode("8/8/8/8/8/8/8/4K2k b - - 0 1")
	require.NoError(t, err)
	assert.False(t, b.WhiteToMove)
}

func TestDecodeRejectsBadActiveColor(t *testing.T) {
	_, err := fen.Decode("8/8/8/8/8/8/8/8 x - - 0 1")
	assert.Error(t, err)
}

func TestDecodeRejectsShortRank(t *testing.T) {
	_, err := fen.Decode("7/8/8/8/8/8/8/8 w - - 0 1")
	assert.Error(t, err)
}

func TestDecodeMarksNonStartingCellsAsMoved(t *testing.T) {
	b, err := fen.Decode("rnbqkbnr/pppppppp/8/8/8/5P2/PPPPP1PP/RNBQKBNR w KQkq - 0 1")
	require.NoError(t, err)

	moved := b.At(board.NewSquare(5, 2))
	assert.True(t, moved.HasMoved())

	vacated := b.At(board.NewSquare(5, 1))
	assert.False(t, vacated.Occupied())

	unmoved := b.At(board.NewSquare(0, 1))
	assert.False(t, unmoved.HasMoved())
}

func TestDecodeStartingPositionBoardText(t *testing.T) {
	text := "rnbqkbnr\n" +
		"pppppppp\n" +
		"........\n" +
		"........\n" +
		"........\n" +
		"........\n" +
		"PPPPPPPP\n" +
		"RNBQKBNR\n"

	b, err := fen.DecodeStartingPosition(text)
	require.NoError(t, err)

	want := board.Starting()
	assert.Equal(t, want.Cells, b.Cells)
	assert.True(t, b.WhiteToMove)
}
