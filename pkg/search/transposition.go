package search

import (
	"unsafe"

	"github.com/chessblunder/blunder/pkg/board"
	"github.com/chessblunder/blunder/pkg/eval"
	"github.com/chessblunder/blunder/pkg/hash"
)

// tableBits is K from the source: the table holds 2^tableBits entries,
// roughly 48MiB at 48 bytes/entry.
const tableBits = 20

// entry is one transposition-table slot.
type entry struct {
	fp    hash.Fingerprint
	score eval.Score
	move  board.Move
	valid bool
}

// Table is a direct-mapped transposition cache keyed by position hash.
// There is no chaining: a collision at a slot overwrites its prior
// occupant unconditionally, with no ageing or depth-preferred replacement
// beyond that. A stored entry is a hit only when its Fingerprint equals
// the one being probed; a colliding hash with a different Fingerprint is
// correctly reported as a miss.
//
// The Fingerprint omits hasMoved and lastWasDoubleStep, so two positions
// with identical piece placement but different castling rights or
// en-passant availability alias to the same slot -- a known soundness gap
// carried over unchanged; see DESIGN.md.
type Table struct {
	entries []entry
	mask    uint64
}

// NewTable allocates a fresh transposition table with 2^tableBits entries.
// Callers own the table for the duration of one top-level search and
// discard it on return; the table carries no state across invocations.
func NewTable() *Table {
	n := uint64(1) << tableBits
	return &Table{
		entries: make([]entry, n),
		mask:    n - 1,
	}
}

// Read probes the table for fp, returning the stored score and move. ok is
// false on a miss, whether the slot is empty or holds a different
// position's Fingerprint.
func (t *Table) Read(fp hash.Fingerprint) (eval.Score, board.Move, bool) {
	slot := &t.entries[hash.Hash64(fp)&t.mask]
	if !slot.valid || !slot.fp.Equals(fp) {
		return 0, board.Move{}, false
	}
	return slot.score, slot.move, true
}

// Write stores fp's score and best move, overwriting any prior occupant of
// the slot.
func (t *Table) Write(fp hash.Fingerprint, score eval.Score, move board.Move) {
	t.entries[hash.Hash64(fp)&t.mask] = entry{fp: fp, score: score, move: move, valid: true}
}

// Size returns the table's allocated size in bytes.
func (t *Table) Size() uint64 {
	return uint64(len(t.entries)) * uint64(unsafe.Sizeof(entry{}))
}
