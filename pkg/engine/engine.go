package engine

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/chessblunder/blunder/pkg/board"
	"github.com/chessblunder/blunder/pkg/board/fen"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
)

var version = build.NewVersion(0, 1, 0)

// Selector picks a move for the side to move at b.
type Selector func(b *board.Board) board.Move

// Engine encapsulates game-playing state around the pure selection API: the
// current position, the boards before each applied move (for TakeBack) and
// a Selector per colour. Nothing is persisted; every call is synchronous.
type Engine struct {
	name, author string

	white, black Selector

	b       board.Board
	history []board.Board
	mu      sync.Mutex
}

// Option is an engine creation option.
type Option func(*Engine)

// WithSelectors sets the selectors used for white's and black's moves when
// SelectMove is called. The default, if unset, is AlphaBetaMoveWhite and
// AlphaBetaMoveBlack.
func WithSelectors(white, black Selector) Option {
	return func(e *Engine) {
		e.white = white
		e.black = black
	}
}

// New creates an Engine at the standard starting position.
func New(ctx context.Context, name, author string, opts ...Option) *Engine {
	e := &Engine{
		name:   name,
		author: author,
		white:  AlphaBetaMoveWhite,
		black:  AlphaBetaMoveBlack,
	}
	for _, fn := range opts {
		fn(e)
	}

	_ = e.Reset(ctx, fen.Initial)

	logw.Infof(ctx, "Initialized engine: %v", e.Name())
	return e
}

// Name returns the engine name and version.
func (e *Engine) Name() string {
	return fmt.Sprintf("%v %v", e.name, version)
}

// Author returns the author.
func (e *Engine) Author() string {
	return e.author
}

// Board returns a copy of the current board. Board is a value type, so the
// caller cannot observe or corrupt engine state through it.
func (e *Engine) Board() board.Board {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.b
}

// Position returns the current position as a FEN string (piece placement
// and side to move only; see pkg/board/fen).
func (e *Engine) Position() string {
	e.mu.Lock()
	defer e.mu.Unlock()

	return fen.Encode(&e.b)
}

// Reset resets the engine to the position described by text, which may be
// either FEN or the tolerant starting-position board-text format.
func (e *Engine) Reset(ctx context.Context, text string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	b, err := decodeEither(text)
	if err != nil {
		logw.Errorf(ctx, "Invalid position %q: %v", text, err)
		return fmt.Errorf("%w: %v", ErrInvalidPosition, err)
	}

	e.b = b
	e.history = nil
	logw.Infof(ctx, "Reset to:\n%v", e.b.String())
	return nil
}

// Move applies the given move text (e.g. "e2e4", "g7g8q") if it names a
// pseudo-legal move at the current position.
func (e *Engine) Move(ctx context.Context, text string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	candidate, err := board.ParseMove(text)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidMove, err)
	}

	for _, m := range board.GenerateAll(&e.b) {
		if !m.Equals(candidate) {
			continue
		}
		e.history = append(e.history, e.b)
		e.b = board.ApplyMove(e.b, m)
		logw.Infof(ctx, "Move %v applied", m)
		return nil
	}
	return fmt.Errorf("%w: %v", ErrInvalidMove, text)
}

// TakeBack undoes the latest move, if any.
func (e *Engine) TakeBack(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.history) == 0 {
		return fmt.Errorf("no move to take back")
	}

	e.b = e.history[len(e.history)-1]
	e.history = e.history[:len(e.history)-1]
	logw.Infof(ctx, "Took back to:\n%v", e.b.String())
	return nil
}

// SelectMove runs the configured selector for the side to move and applies
// the result, returning the move played.
func (e *Engine) SelectMove(ctx context.Context) (board.Move, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	selector := e.white
	if !e.b.WhiteToMove {
		selector = e.black
	}

	m := selector(&e.b)
	if m.From == m.To {
		return board.Move{}, ErrNoLegalMoves
	}

	e.history = append(e.history, e.b)
	e.b = board.ApplyMove(e.b, m)
	logw.Infof(ctx, "Selected %v", m)
	return m, nil
}

// decodeEither parses text as FEN if it looks like one (a rank separator
// is present), otherwise as the tolerant starting-position board-text
// format.
func decodeEither(text string) (board.Board, error) {
	if strings.ContainsRune(text, '/') {
		return fen.Decode(text)
	}
	return fen.DecodeStartingPosition(text)
}
