package search

import (
	"github.com/chessblunder/blunder/pkg/board"
	"github.com/chessblunder/blunder/pkg/eval"
	"github.com/seekerror/stdlib/pkg/lang"
)

// DefaultMaxDepth is the deepest ply the iterative driver will reach,
// absent an earlier mate-score cutoff.
const DefaultMaxDepth = 6

// aspirationDelta is the half-width (in centipawns) of the aspiration
// window around the previous depth's score.
const aspirationDelta = 50

// Iterative runs synchronous iterative-deepening alpha-beta with
// aspiration windows. Depth 1 is searched with a full [-inf, +inf] window;
// each subsequent depth d in [2, maxDepth] searches a narrow window
// centred on the previous depth's score, re-searching with a widened side
// on a fail-high or fail-low. If a depth's score reaches King value in
// absolute terms, the principal variation has collapsed to a forced mate
// and deepening stops early. tt is allocated once by the caller and reused
// across depths within this single call. limit overrides DefaultMaxDepth
// when set; callers with no reason to cap depth pass the zero value
// (lang.Optional[int]{}).
func Iterative(b *board.Board, limit lang.Optional[int], findMin bool, tt *Table) PV {
	maxDepth := DefaultMaxDepth
	if v, ok := limit.V(); ok {
		maxDepth = v
	}

	pv := AlphaBeta(b, 1, findMin, tt)

	for depth := 2; depth <= maxDepth; depth++ {
		guess := pv.Score
		alpha, beta := guess-aspirationDelta, guess+aspirationDelta

		next := alphaBetaWindow(b, depth, findMin, tt, alpha, beta)
		switch {
		case next.Score <= alpha:
			next = alphaBetaWindow(b, depth, findMin, tt, eval.NegInf, guess+aspirationDelta)
		case next.Score >= beta:
			next = alphaBetaWindow(b, depth, findMin, tt, guess-aspirationDelta, eval.Inf)
		}

		pv = next
		if abs(pv.Score) >= eval.KingValue {
			break
		}
	}

	return pv
}

func alphaBetaWindow(b *board.Board, depth int, findMin bool, tt *Table, alpha, beta eval.Score) PV {
	score, line, nodes := alphaBetaStep(b, depth, alpha, beta, findMin, tt)
	return PV{Line: line, Score: score, Nodes: nodes, Depth: depth}
}

func abs(s eval.Score) eval.Score {
	if s < 0 {
		return -s
	}
	return s
}
