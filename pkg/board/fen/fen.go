// Package fen loads boards from the tolerant starting-position text format
// and from FEN, in both cases reading only piece placement and side to move.
// Castling rights, en-passant target and the move clocks are not part of
// this engine's data model and are not parsed.
package fen

import (
	"fmt"
	"strings"

	"github.com/chessblunder/blunder/pkg/board"
)

// Initial is the standard starting position in FEN.
const Initial = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Decode parses the piece-placement and active-color fields of a FEN string
// (fields 3-6 are ignored). Any square whose occupant differs from the
// standard starting position is marked HasMoved, so castling and
// double-step rights are consistent for positions reached only through
// this entry point.
func Decode(fenString string) (board.Board, error) {
	fields := strings.Fields(strings.TrimSpace(fenString))
	if len(fields) < 2 {
		return board.Board{}, fmt.Errorf("invalid FEN %q: need at least placement and active color", fenString)
	}

	b, err := decodePlacement(fields[0], '/')
	if err != nil {
		return board.Board{}, fmt.Errorf("invalid FEN %q: %w", fenString, err)
	}

	switch fields[1] {
	case "w", "W":
		b.WhiteToMove = true
	case "b", "B":
		b.WhiteToMove = false
	default:
		return board.Board{}, fmt.Errorf("invalid FEN %q: bad active color %q", fenString, fields[1])
	}

	markMoved(&b)
	return b, nil
}

// DecodeStartingPosition parses the CLI's tolerant board-text format: 8
// rank-lines top-down (black's back rank first), each with 8 characters
// from {'.', ' ', the piece letters}. '\r' is ignored, '\n' ends a rank.
// Side to move defaults to white; callers needing otherwise flip b.WhiteToMove.
func DecodeStartingPosition(text string) (board.Board, error) {
	b, err := decodePlacement(text, '\n')
	if err != nil {
		return board.Board{}, fmt.Errorf("invalid starting position: %w", err)
	}
	b.WhiteToMove = true
	markMoved(&b)
	return b, nil
}

// decodePlacement parses rank-major piece placement text, rank 8 (or the
// text's first line) down to rank 1, separated by sep ('/' for FEN, '\n'
// for the board-text format). Digits 1-8 denote runs of empty squares.
func decodePlacement(text string, sep rune) (board.Board, error) {
	var b board.Board

	rank := board.Width - 1
	file := 0

	for _, r := range text {
		switch {
		case r == '\r':
			continue
		case r == sep:
			if file != board.Width {
				return board.Board{}, fmt.Errorf("rank %d has %d squares, want %d", rank+1, file, board.Width)
			}
			rank--
			file = 0
			continue
		case r >= '1' && r <= '8':
			file += int(r - '0')
			continue
		}

		if file >= board.Width || rank < 0 {
			return board.Board{}, fmt.Errorf("too many squares")
		}

		piece, ok := board.ParsePiece(r)
		if !ok {
			return board.Board{}, fmt.Errorf("unexpected token %q", r)
		}
		if piece != board.NoPiece {
			white := r >= 'A' && r <= 'Z'
			b.Set(board.NewSquare(board.File(file), board.Rank(rank)), board.NewCell(piece, white))
		}
		file++
	}

	if rank != 0 && rank != -1 {
		return board.Board{}, fmt.Errorf("incomplete board: stopped at rank %d", rank+1)
	}
	return b, nil
}

// Encode renders b's piece placement and side to move as a FEN string.
// Castling rights and en-passant are always written as "-" since this
// engine's data model does not track them independently of hasMoved /
// lastWasDoubleStep; move clocks are always "0 1".
func Encode(b *board.Board) string {
	var sb strings.Builder
	for rank := board.Width - 1; rank >= 0; rank-- {
		blanks := 0
		for file := 0; file < board.Width; file++ {
			c := b.At(board.NewSquare(board.File(file), board.Rank(rank)))
			if !c.Occupied() {
				blanks++
				continue
			}
			if blanks > 0 {
				sb.WriteString(fmt.Sprintf("%d", blanks))
				blanks = 0
			}
			sb.WriteRune(c.Kind().Letter(c.White()))
		}
		if blanks > 0 {
			sb.WriteString(fmt.Sprintf("%d", blanks))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if b.WhiteToMove {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteString(" - - 0 1")
	return sb.String()
}

func markMoved(b *board.Board) {
	start := board.Starting()
	for i := range b.Cells {
		if !b.Cells[i].Equals(start.Cells[i]) {
			b.Cells[i] = b.Cells[i].WithHasMoved(true)
		}
	}
}
