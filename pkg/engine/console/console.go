// Package console implements a synchronous line-oriented debug driver for
// pkg/engine. There is no background analysis loop: every command completes
// before the next line is read, matching this engine's synchronous search
// core.
package console

import (
	"context"
	"fmt"
	"strings"

	"github.com/chessblunder/blunder/pkg/board"
	"github.com/chessblunder/blunder/pkg/engine"
	"github.com/chessblunder/blunder/pkg/hash"
	"github.com/seekerror/logw"
)

const ProtocolName = "console"

// Driver reads commands from in and writes output lines to the returned
// channel until it sees "quit"/"exit"/"q" or in is closed.
type Driver struct {
	e    *engine.Engine
	out  chan string
	done chan struct{}

	// autoWhite/autoBlack mark which colours the engine plays on its own;
	// a colour without --play-* set here has the driver call SelectMove
	// for it automatically after every board change, instead of waiting
	// for the user to type a move.
	autoWhite, autoBlack bool
}

// NewDriver starts the driver's processing loop in a goroutine and returns
// immediately with the output channel. The loop itself is synchronous --
// command N+1 is not read until command N's reply has been written -- but
// runs on its own goroutine so callers can pump in/out concurrently.
// autoWhite/autoBlack select whether
// the driver plays that colour's moves itself (true) or waits for the user
// to type them (false, i.e. that colour was started with --play-*).
func NewDriver(ctx context.Context, e *engine.Engine, in <-chan string, autoWhite, autoBlack bool) (*Driver, <-chan string) {
	out := make(chan string, 100)
	d := &Driver{
		e:         e,
		out:       out,
		done:      make(chan struct{}),
		autoWhite: autoWhite,
		autoBlack: autoBlack,
	}
	go d.process(ctx, in)

	return d, out
}

// Closed reports when the driver has finished processing.
func (d *Driver) Closed() <-chan struct{} {
	return d.done
}

func (d *Driver) process(ctx context.Context, in <-chan string) {
	defer close(d.done)
	defer close(d.out)

	logw.Infof(ctx, "Console protocol initialized")

	d.out <- fmt.Sprintf("engine %v (%v)", d.e.Name(), d.e.Author())
	d.printBoard(ctx)
	d.playAutoMoves(ctx)

	for line := range in {
		parts := strings.Fields(strings.TrimSpace(line))
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch strings.ToLower(cmd) {
		case "reset", "r":
			// reset [<fenstring>] moves ...

			pos := ""
			moveIdx := len(args)
			for i, arg := range args {
				if arg == "moves" {
					moveIdx = i
					break
				}
			}
			if moveIdx > 0 {
				pos = strings.Join(args[0:moveIdx], " ")
			}
			if pos == "" {
				pos = startingPosition
			}
			if err := d.e.Reset(ctx, pos); err != nil {
				d.out <- fmt.Sprintf("invalid position: %v", line)
				continue
			}
			for _, arg := range args[min(moveIdx+1, len(args)):] {
				if err := d.e.Move(ctx, arg); err != nil {
					d.out <- fmt.Sprintf("invalid position move %q: %v", arg, err)
					break
				}
			}
			d.printBoard(ctx)
			d.playAutoMoves(ctx)

		case "undo", "u":
			if err := d.e.TakeBack(ctx); err != nil {
				d.out <- fmt.Sprintf("nothing to undo: %v", err)
			}
			d.printBoard(ctx)

		case "print", "p":
			d.printBoard(ctx)

		case "go", "g":
			m, err := d.e.SelectMove(ctx)
			if err != nil {
				d.out <- fmt.Sprintf("no move available: %v", err)
				continue
			}
			d.out <- fmt.Sprintf("bestmove %v", m)
			d.printBoard(ctx)
			d.playAutoMoves(ctx)

		case "quit", "exit", "q":
			logw.Infof(ctx, "Driver closed")
			return

		default:
			// Assume a bare move if not a recognized command.

			if err := d.e.Move(ctx, cmd); err != nil {
				d.out <- fmt.Sprintf("invalid move: %q", cmd)
			} else {
				d.printBoard(ctx)
				d.playAutoMoves(ctx)
			}
		}
	}

	logw.Infof(ctx, "Input stream broken. Exiting")
}

// playAutoMoves runs SelectMove repeatedly for as long as the side to move
// is one of the engine's own colours (not started with --play-*), stopping
// at a terminal position or the first colour waiting on a human.
func (d *Driver) playAutoMoves(ctx context.Context) {
	for {
		b := d.e.Board()
		if b.Terminal() {
			return
		}
		if (b.WhiteToMove && !d.autoWhite) || (!b.WhiteToMove && !d.autoBlack) {
			return
		}

		m, err := d.e.SelectMove(ctx)
		if err != nil {
			d.out <- fmt.Sprintf("no move available: %v", err)
			return
		}
		d.out <- fmt.Sprintf("bestmove %v", m)
		d.printBoard(ctx)
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// startingPosition is the sentinel passed to Engine.Reset for a bare
// "reset"/"r" with no position text.
const startingPosition = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

const (
	files      = "    a   b   c   d   e   f   g   h"
	horizontal = "  ---------------------------------"
	vertical   = " | "
)

func (d *Driver) printBoard(ctx context.Context) {
	b := d.e.Board()

	d.out <- ""
	d.out <- files
	d.out <- horizontal

	var sb strings.Builder
	for rank := board.Width - 1; rank >= 0; rank-- {
		sb.Reset()
		sb.WriteString(board.Rank(rank).String())
		sb.WriteString(vertical)
		for file := 0; file < board.Width; file++ {
			c := b.At(board.NewSquare(board.File(file), board.Rank(rank)))
			if c.Occupied() {
				sb.WriteString(printPiece(c))
			} else {
				sb.WriteString(" ")
			}
			sb.WriteString(vertical)
		}
		d.out <- sb.String()
		d.out <- horizontal
	}
	d.out <- files
	d.out <- ""
	d.out <- fmt.Sprintf("fen:       %v", d.e.Position())
	d.out <- fmt.Sprintf("to move:   %v", toMoveString(&b))
	d.out <- fmt.Sprintf("terminal:  %v (white won: %v, black won: %v)", b.Terminal(), b.WhiteWon, b.BlackWon)
	d.out <- fmt.Sprintf("hash:      0x%x", hash.Hash64(hash.New(&b)))
	d.out <- ""
}

func printPiece(c board.Cell) string {
	letter := c.Kind().Letter(c.White())
	return string(letter)
}

func toMoveString(b *board.Board) string {
	if b.WhiteToMove {
		return "white"
	}
	return "black"
}
