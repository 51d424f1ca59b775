// perft is a movegen debugging tool. See: https://www.chessprogramming.org/Perft_Results.
//
// It counts pseudo-legal, not legal, nodes: this engine's move generator has
// no check filter (an in-check side simply loses its king on the next ply,
// the same terminal condition as any other king capture), so the counts at
// a given depth can be larger than the legal-move perft tables published
// for standard positions.
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/chessblunder/blunder/pkg/board"
	"github.com/chessblunder/blunder/pkg/board/fen"
	"github.com/seekerror/logw"
)

var (
	depth    = flag.Int("depth", 4, "Search depth")
	position = flag.String("fen", "", "Start position (default to standard)")
	divide   = flag.Bool("divide", false, "Divide counts by initial move")
)

func main() {
	ctx := context.Background()
	flag.Parse()

	if *position == "" {
		*position = fen.Initial
	}

	b, err := fen.Decode(*position)
	if err != nil {
		logw.Exitf(ctx, "Invalid fen '%v': %v", *position, err)
	}

	for i := 1; i <= *depth; i++ {
		start := time.Now()
		nodes := search(b, i, *divide && i == *depth)
		duration := time.Since(start)

		println(fmt.Sprintf("perft,%v,%v,%v,%v", *position, i, nodes, duration.Microseconds()))
	}
}

func search(b board.Board, depth int, d bool) int64 {
	if depth == 0 {
		return 1
	}
	if b.Terminal() {
		return 1
	}

	var nodes int64
	for _, m := range board.GenerateAll(&b) {
		count := search(board.ApplyMove(b, m), depth-1, false)
		if d {
			println(fmt.Sprintf("%v: %v", m, count))
		}
		nodes += count
	}
	return nodes
}
