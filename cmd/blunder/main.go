// blunder is a console chess engine. It plays one colour per the
// --play-*/--random-*/--minimax-*/--alphabeta-*/--complex-* flags (one
// selector per colour) and reads moves and commands from stdin.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/chessblunder/blunder/pkg/board"
	"github.com/chessblunder/blunder/pkg/board/fen"
	"github.com/chessblunder/blunder/pkg/engine"
	"github.com/chessblunder/blunder/pkg/engine/console"
	"github.com/seekerror/logw"
)

var (
	playWhite      = flag.Bool("play-white", false, "White moves are entered by hand")
	randomWhite    = flag.Bool("random-white", false, "White moves are chosen uniformly at random")
	minimaxWhite   = flag.Bool("minimax-white", false, "White moves are chosen by fixed-depth minimax")
	alphabetaWhite = flag.Bool("alphabeta-white", false, "White moves are chosen by fixed-depth alpha-beta")
	complexWhite   = flag.Bool("complex-white", false, "White moves are chosen by iterative-deepening alpha-beta")

	playBlack      = flag.Bool("play-black", false, "Black moves are entered by hand")
	randomBlack    = flag.Bool("random-black", false, "Black moves are chosen uniformly at random")
	minimaxBlack   = flag.Bool("minimax-black", false, "Black moves are chosen by fixed-depth minimax")
	alphabetaBlack = flag.Bool("alphabeta-black", false, "Black moves are chosen by fixed-depth alpha-beta")
	complexBlack   = flag.Bool("complex-black", false, "Black moves are chosen by iterative-deepening alpha-beta")

	noTests = flag.Bool("no-tests", false, "Suppress the internal self-tests at startup")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: blunder [options] [position-file]

BLUNDER is a simple console chess engine. Exactly one of --play-*,
--random-*, --minimax-*, --alphabeta-*, --complex-* should be set per
colour; if more than one is set for a colour, the most capable one wins
(complex > alphabeta > minimax > random > play). An optional trailing
argument names a file holding a starting position in the tolerant
board-text or FEN format.

Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	if !*noTests {
		runSelfTests(ctx)
	}

	white, autoWhite := selectorFor(*playWhite, *randomWhite, *minimaxWhite, *alphabetaWhite, *complexWhite, true)
	black, autoBlack := selectorFor(*playBlack, *randomBlack, *minimaxBlack, *alphabetaBlack, *complexBlack, false)

	e := engine.New(ctx, "blunder", "chessblunder", engine.WithSelectors(white, black))

	if path := flag.Arg(0); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			logw.Exitf(ctx, "Failed to read position file %q: %v", path, err)
		}
		if err := e.Reset(ctx, string(data)); err != nil {
			logw.Exitf(ctx, "Invalid starting position in %q: %v", path, err)
		}
	}

	in := readStdinLines(ctx)
	driver, out := console.NewDriver(ctx, e, in, autoWhite, autoBlack)
	go writeStdoutLines(ctx, out)

	<-driver.Closed()
}

// readStdinLines reads stdin lines into a chan. Async.
func readStdinLines(ctx context.Context) <-chan string {
	ret := make(chan string, 1)
	go func() {
		defer close(ret)

		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			logw.Debugf(ctx, "<< %v", scanner.Text())
			ret <- scanner.Text()
		}
	}()
	return ret
}

// writeStdoutLines writes lines from the given chan to stdout.
func writeStdoutLines(ctx context.Context, out <-chan string) {
	for line := range out {
		logw.Debugf(ctx, ">> %v", line)
		_, _ = fmt.Fprintln(os.Stdout, line)
	}
}

// selectorFor picks the most capable selector requested for a colour, and
// reports whether the engine plays that colour automatically (false means
// --play-* was requested or implied, i.e. the driver waits for a human).
func selectorFor(play, random, minimax, alphabeta, complex bool, white bool) (engine.Selector, bool) {
	switch {
	case complex:
		if white {
			return engine.ComplexMoveWhite, true
		}
		return engine.ComplexMoveBlack, true
	case alphabeta:
		if white {
			return engine.AlphaBetaMoveWhite, true
		}
		return engine.AlphaBetaMoveBlack, true
	case minimax:
		if white {
			return engine.MinimaxMoveWhite, true
		}
		return engine.MinimaxMoveBlack, true
	case random:
		r := rand.New(rand.NewSource(time.Now().UnixNano()))
		return func(b *board.Board) board.Move { return engine.RandomMove(b, r) }, true
	case play:
		if white {
			return engine.AlphaBetaMoveWhite, false
		}
		return engine.AlphaBetaMoveBlack, false
	default:
		if white {
			return engine.ComplexMoveWhite, true
		}
		return engine.ComplexMoveBlack, true
	}
}

// runSelfTests runs a minimal startup sanity check: the engine must be able
// to load the standard starting position and report it back as the FEN that
// fen.Encode writes for it (castling and en-passant fields "-").
func runSelfTests(ctx context.Context) {
	e := engine.New(ctx, "blunder-selftest", "chessblunder")
	start := board.Starting()
	if got, want := e.Position(), fen.Encode(&start); got != want {
		logw.Exitf(ctx, "self-test failed: starting position %q != %q", got, want)
	}
	logw.Infof(ctx, "Self-tests passed")
}
