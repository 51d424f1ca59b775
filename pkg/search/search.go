// Package search implements the fixed-depth and iterative-deepening
// alpha-beta minimax over a board.Board, with a quiescence extension, move
// ordering and a direct-mapped transposition cache. Search in this package
// is synchronous: a call runs to completion on the calling goroutine, there
// is no suspension point, and no state is shared across invocations.
package search

import (
	"github.com/chessblunder/blunder/pkg/board"
	"github.com/chessblunder/blunder/pkg/eval"
)

// PV describes the outcome of a completed search: the best line found, its
// score (positive favors white, absolute rather than relative to the side
// to move), the depth completed and the number of nodes visited.
type PV struct {
	Line  []board.Move
	Score eval.Score
	Nodes uint64
	Depth int
}

// Move returns the first move of the line, or the zero Move if no legal
// move was available.
func (pv PV) Move() board.Move {
	if len(pv.Line) == 0 {
		return board.Move{}
	}
	return pv.Line[0]
}

func first(line []board.Move) board.Move {
	if len(line) == 0 {
		return board.Move{}
	}
	return line[0]
}

func prepend(m board.Move, rest []board.Move) []board.Move {
	return append([]board.Move{m}, rest...)
}
