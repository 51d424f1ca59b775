package engine

import (
	"math/rand"

	"github.com/chessblunder/blunder/pkg/board"
	"github.com/chessblunder/blunder/pkg/search"
	"github.com/seekerror/stdlib/pkg/lang"
)

// Three selector families, each with a white and a black variant, plus
// RandomMove for either colour. Each
// allocates a fresh transposition cache for the call (alpha-beta and
// complex only; minimax never caches) and releases it on return. Every
// selector returns a single Move; callers combine it with board.ApplyMove
// to progress the game.

// MinimaxMoveWhite selects white's move via naive fixed-depth minimax, no
// cache, no ordering.
func MinimaxMoveWhite(b *board.Board) board.Move {
	return search.Minimax(b, search.DefaultMinimaxDepth, false).Move()
}

// MinimaxMoveBlack selects black's move via naive fixed-depth minimax, no
// cache, no ordering.
func MinimaxMoveBlack(b *board.Board) board.Move {
	return search.Minimax(b, search.DefaultMinimaxDepth, true).Move()
}

// AlphaBetaMoveWhite selects white's move via fixed-depth alpha-beta with
// ordered generation, a transposition cache, and quiescence at the
// horizon.
func AlphaBetaMoveWhite(b *board.Board) board.Move {
	return search.AlphaBeta(b, search.DefaultSearchDepth, false, search.NewTable()).Move()
}

// AlphaBetaMoveBlack selects black's move via fixed-depth alpha-beta with
// ordered generation, a transposition cache, and quiescence at the
// horizon.
func AlphaBetaMoveBlack(b *board.Board) board.Move {
	return search.AlphaBeta(b, search.DefaultSearchDepth, true, search.NewTable()).Move()
}

// ComplexMoveWhite selects white's move via iterative-deepening alpha-beta
// with aspiration windows and quiescence, to the default depth.
func ComplexMoveWhite(b *board.Board) board.Move {
	return search.Iterative(b, lang.Optional[int]{}, false, search.NewTable()).Move()
}

// ComplexMoveBlack selects black's move via iterative-deepening alpha-beta
// with aspiration windows and quiescence, to the default depth.
func ComplexMoveBlack(b *board.Board) board.Move {
	return search.Iterative(b, lang.Optional[int]{}, true, search.NewTable()).Move()
}

// RandomMove selects uniformly at random among the pseudo-legal moves at
// b, for the CLI's --random-* selector. It returns the zero Move if none
// are available.
func RandomMove(b *board.Board, r *rand.Rand) board.Move {
	moves := board.GenerateAll(b)
	if len(moves) == 0 {
		return board.Move{}
	}
	return moves[r.Intn(len(moves))]
}
