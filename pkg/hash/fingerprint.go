// Package hash computes the compact position fingerprint used as the
// transposition-table key, and a 64-bit hash of that fingerprint.
package hash

import "github.com/chessblunder/blunder/pkg/board"

// Fingerprint is a 32-byte nibble-packed summary of a board's piece
// placement plus the side-to-move bit. It deliberately omits HasMoved and
// LastWasDoubleStep: two positions with identical piece placement but
// different castling rights or en-passant availability produce the same
// Fingerprint. This is a known soundness gap in the cache, kept
// deliberately rather than fixed; see DESIGN.md.
type Fingerprint struct {
	Nibbles     [32]byte
	WhiteToMove bool
}

// New computes the Fingerprint of b. Two cells are packed per byte: the low
// nibble holds (kind&7)|(white<<3) for the lower-indexed cell, the high
// nibble the same for the next.
func New(b *board.Board) Fingerprint {
	var fp Fingerprint
	fp.WhiteToMove = b.WhiteToMove

	for i := 0; i < 32; i++ {
		a := b.Cells[i*2]
		c := b.Cells[i*2+1]
		lo := byte(a.Kind()) & 0x7
		if a.White() {
			lo |= 0x8
		}
		hi := byte(c.Kind()) & 0x7
		if c.White() {
			hi |= 0x8
		}
		fp.Nibbles[i] = lo | hi<<4
	}
	return fp
}

func (fp Fingerprint) Equals(o Fingerprint) bool {
	return fp.WhiteToMove == o.WhiteToMove && fp.Nibbles == o.Nibbles
}
