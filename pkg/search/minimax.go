package search

import (
	"github.com/chessblunder/blunder/pkg/board"
	"github.com/chessblunder/blunder/pkg/eval"
)

// DefaultMinimaxDepth is the depth used by the naive minimax selector when
// none is specified.
const DefaultMinimaxDepth = 4

// Minimax runs naive fixed-depth minimax from b: no transposition cache, no
// move ordering, moves considered in generator scan order. findMin is true
// if the side to move at b seeks to minimise the (always white-positive)
// score -- in this convention, the side to move minimises iff it is black.
// Minimax exists alongside AlphaBeta as a correctness baseline: the two
// must agree on score at equal depth.
//
// Pseudo-code:
//
//	function minimax(node, depth, findMin) is
//	    if depth = 0 or node is terminal then
//	        return the heuristic value of node
//	    if findMin then
//	        value := +inf
//	        for each child of node do
//	            value := min(value, minimax(child, depth-1, false))
//	        return value
//	    else
//	        value := -inf
//	        for each child of node do
//	            value := max(value, minimax(child, depth-1, true))
//	        return value
//
// See: https://en.wikipedia.org/wiki/Minimax.
func Minimax(b *board.Board, depth int, findMin bool) PV {
	score, line, nodes := minimaxStep(b, depth, findMin)
	return PV{Line: line, Score: score, Nodes: nodes, Depth: depth}
}

func minimaxStep(b *board.Board, depth int, findMin bool) (eval.Score, []board.Move, uint64) {
	if findMin && b.WhiteWon {
		return eval.KingValue, nil, 1
	}
	if !findMin && b.BlackWon {
		return -eval.KingValue, nil, 1
	}
	if depth == 0 {
		return eval.Evaluate(b), nil, 1
	}

	moves := board.GenerateAll(b)
	if len(moves) == 0 {
		return eval.Evaluate(b), nil, 1
	}

	var nodes uint64 = 1
	best := eval.Inf
	if !findMin {
		best = eval.NegInf
	}
	var line []board.Move

	for _, m := range moves {
		child := board.ApplyMove(*b, m)
		score, rem, n := minimaxStep(&child, depth-1, !findMin)
		nodes += n

		if findMin {
			if score < best {
				best = score
				line = prepend(m, rem)
			}
		} else {
			if score > best {
				best = score
				line = prepend(m, rem)
			}
		}
	}

	return best, line, nodes
}
