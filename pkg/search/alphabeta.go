package search

import (
	"github.com/chessblunder/blunder/pkg/board"
	"github.com/chessblunder/blunder/pkg/eval"
	"github.com/chessblunder/blunder/pkg/hash"
)

// DefaultSearchDepth is the depth used by the alpha-beta selectors. The
// iterative driver's depth cap is DefaultMaxDepth.
const DefaultSearchDepth = 6

// AlphaBeta runs fixed-depth alpha-beta minimax from b with ordered
// generation, a quiescence extension at the horizon, and transposition
// caching. tt may be nil, in which case no caching occurs.
//
// Pseudo-code:
//
//	function alphabeta(node, depth, alpha, beta, findMin) is
//	    if node is terminal then return the king-valued score
//	    if depth = 0 then return quiescence(node, alpha, beta, !findMin)
//	    if findMin then
//	        value := +inf
//	        for each child of node do
//	            value := min(value, alphabeta(child, depth-1, alpha, beta, false))
//	            beta := min(beta, value)
//	            if value <= alpha then break
//	        return value
//	    else
//	        value := -inf
//	        for each child of node do
//	            value := max(value, alphabeta(child, depth-1, alpha, beta, true))
//	            alpha := max(alpha, value)
//	            if value >= beta then break
//	        return value
//
// See: https://en.wikipedia.org/wiki/Alpha%E2%80%93beta_pruning.
func AlphaBeta(b *board.Board, depth int, findMin bool, tt *Table) PV {
	score, line, nodes := alphaBetaStep(b, depth, eval.NegInf, eval.Inf, findMin, tt)
	return PV{Line: line, Score: score, Nodes: nodes, Depth: depth}
}

// alphaBetaStep probes tt before expanding a non-leaf node, and stores the
// completed result at the slot indexed by the position's hash, overwriting
// any prior occupant -- no ageing, per the direct-mapped replacement policy
// described in transposition.go.
func alphaBetaStep(b *board.Board, depth int, alpha, beta eval.Score, findMin bool, tt *Table) (eval.Score, []board.Move, uint64) {
	if findMin && b.WhiteWon {
		return eval.KingValue, nil, 1
	}
	if !findMin && b.BlackWon {
		return -eval.KingValue, nil, 1
	}
	if depth == 0 {
		score, nodes := quiescence(b, alpha, beta, !findMin, 0)
		return score, nil, nodes
	}

	var fp hash.Fingerprint
	if tt != nil {
		fp = hash.New(b)
		if score, move, ok := tt.Read(fp); ok {
			return score, []board.Move{move}, 1
		}
	}

	moves := board.GenerateOrdered(b)
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
		score, rem, n := alphaBetaStep(&child, depth-1, alpha, beta, !findMin, tt)
		nodes += n

		if findMin {
			if score < best {
				best = score
				beta = score
				line = prepend(m, rem)
			}
			if best <= alpha {
				break
			}
		} else {
			if score > best {
				best = score
				alpha = score
				line = prepend(m, rem)
			}
			if best >= beta {
				break
			}
		}
	}

	if tt != nil {
		tt.Write(fp, best, first(line))
	}
	return best, line, nodes
}
