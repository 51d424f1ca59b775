package engine

import "errors"

// Sentinel errors returned by Engine methods. Programmer-error invariant
// violations inside pkg/board panic instead of surfacing here -- those
// indicate a bug in the move generator, not a recoverable runtime
// condition; see pkg/board.ApplyMove.
var (
	// ErrInvalidMove is returned by Move when the candidate move text does
	// not parse or is not among the pseudo-legal moves at the current
	// position.
	ErrInvalidMove = errors.New("invalid move")

	// ErrInvalidPosition is returned by Reset when the given board text or
	// FEN fails to parse.
	ErrInvalidPosition = errors.New("invalid position")

	// ErrNoLegalMoves is returned by SelectMove when the current position
	// has no pseudo-legal move to choose from.
	ErrNoLegalMoves = errors.New("no legal moves available")
)
