package search

import (
	"github.com/chessblunder/blunder/pkg/board"
	"github.com/chessblunder/blunder/pkg/eval"
)

// MaxQuiescenceDepth bounds the capture-only extension below the nominal
// search horizon.
const MaxQuiescenceDepth = 20

// quiescence continues the search past the nominal horizon over capturing
// moves only, to avoid evaluating a tactically unstable position. It is
// symmetric in role to alphaBetaStep but returns only a score, since the
// quiescence tail is not part of the reported principal variation.
func quiescence(b *board.Board, alpha, beta eval.Score, findMin bool, qdepth int) (eval.Score, uint64) {
	if findMin && b.WhiteWon {
		return eval.KingValue, 1
	}
	if !findMin && b.BlackWon {
		return -eval.KingValue, 1
	}
	if qdepth >= MaxQuiescenceDepth {
		return eval.Evaluate(b), 1
	}

	moves := board.GenerateCaptures(b)
	if len(moves) == 0 {
		return eval.Evaluate(b), 1
	}

	var nodes uint64 = 1
	best := eval.Inf
	if !findMin {
		best = eval.NegInf
	}

	for _, m := range moves {
		child := board.ApplyMove(*b, m)
		score, n := quiescence(&child, alpha, beta, !findMin, qdepth+1)
		nodes += n

		if findMin {
			if score < best {
				best = score
				beta = score
			}
			if best <= alpha {
				break
			}
		} else {
			if score > best {
				best = score
				alpha = score
			}
			if best >= beta {
				break
			}
		}
	}

	return best, nodes
}
