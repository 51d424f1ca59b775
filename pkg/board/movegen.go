package board

// Sink receives pseudo-legal moves as they are produced. Returning false
// cancels generation immediately; no further square is visited after a sink
// returns false. This is the single mechanism backing GenerateAll,
// GenerateOrdered and GenerateCaptures below.
type Sink func(Move) bool

var kingOffsets = [8][2]int{{-1, -1}, {0, -1}, {1, -1}, {-1, 0}, {1, 0}, {-1, 1}, {0, 1}, {1, 1}}
var knightOffsets = [8][2]int{{-2, -1}, {-1, -2}, {1, -2}, {2, -1}, {2, 1}, {1, 2}, {-1, 2}, {-2, 1}}
var rookDirs = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
var bishopDirs = [4][2]int{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}}

func inBounds(x, y int) bool {
	return x >= 0 && x < Width && y >= 0 && y < Width
}

// genOrder is the deterministic piece-type scan order used while walking the
// board for move generation.
var genOrder = [...]Piece{Pawn, King, Queen, Rook, Bishop, Knight}

// visit walks every pseudo-legal move for the side to move, one piece kind
// at a time in genOrder and, within each kind, ranks 1->8 and files a->h
// within each rank, calling sink for each.
func visit(b *Board, sink Sink) {
	white := b.WhiteToMove
	for _, kind := range genOrder {
		for y := 0; y < Width; y++ {
			for x := 0; x < Width; x++ {
				sq := NewSquare(File(x), Rank(y))
				c := b.At(sq)
				if c.Kind() != kind || c.White() != white {
					continue
				}
				if !visitPiece(b, sq, c, sink) {
					return
				}
			}
		}
	}
}

func visitPiece(b *Board, from Square, c Cell, sink Sink) bool {
	switch c.Kind() {
	case Pawn:
		return visitPawn(b, from, c, sink)
	case Knight:
		return visitOffsets(b, from, knightOffsets[:], sink)
	case King:
		if !visitOffsets(b, from, kingOffsets[:], sink) {
			return false
		}
		return visitCastling(b, from, sink)
	case Rook:
		return visitRays(b, from, rookDirs[:], sink)
	case Bishop:
		return visitRays(b, from, bishopDirs[:], sink)
	case Queen:
		if !visitRays(b, from, rookDirs[:], sink) {
			return false
		}
		return visitRays(b, from, bishopDirs[:], sink)
	}
	return true
}

func visitOffsets(b *Board, from Square, offsets [][2]int, sink Sink) bool {
	white := b.WhiteToMove
	for _, o := range offsets {
		x, y := int(from.File)+o[0], int(from.Rank)+o[1]
		if !inBounds(x, y) {
			continue
		}
		to := NewSquare(File(x), Rank(y))
		target := b.At(to)
		if target.Occupied() && target.White() == white {
			continue
		}
		if !sink(Move{From: from, To: to}) {
			return false
		}
	}
	return true
}

func visitRays(b *Board, from Square, dirs [][2]int, sink Sink) bool {
	white := b.WhiteToMove
	for _, d := range dirs {
		for i := 1; i < Width; i++ {
			x, y := int(from.File)+d[0]*i, int(from.Rank)+d[1]*i
			if !inBounds(x, y) {
				break
			}
			to := NewSquare(File(x), Rank(y))
			target := b.At(to)
			if target.Occupied() && target.White() == white {
				break
			}
			if !sink(Move{From: from, To: to}) {
				return false
			}
			if target.Occupied() {
				break
			}
		}
	}
	return true
}

func visitPawn(b *Board, from Square, c Cell, sink Sink) bool {
	white := c.White()
	dir, startRank, epRank := 1, Rank(1), Rank(4)
	if !white {
		dir, startRank, epRank = -1, 6, 3
	}

	ty := int(from.Rank) + dir
	if ty >= 0 && ty < Width {
		to := NewSquare(from.File, Rank(ty))
		if !b.At(to).Occupied() {
			if from.Rank == startRank {
				to2 := NewSquare(from.File, Rank(ty+dir))
				if !b.At(to2).Occupied() {
					if !sink(Move{From: from, To: to2}) {
						return false
					}
				}
			}
			if !visitPawnDestination(from, to, sink) {
				return false
			}
		}

		for _, dx := range [2]int{-1, 1} {
			tx := int(from.File) + dx
			if tx < 0 || tx >= Width {
				continue
			}
			dst := NewSquare(File(tx), Rank(ty))
			target := b.At(dst)
			if target.Occupied() && target.White() != white {
				if !visitPawnDestination(from, dst, sink) {
					return false
				}
			}
		}
	}

	if from.Rank == epRank {
		for _, dx := range [2]int{-1, 1} {
			fx := int(from.File) + dx
			if fx < 0 || fx >= Width {
				continue
			}
			victimSq := NewSquare(File(fx), from.Rank)
			victim := b.At(victimSq)
			if victim.Kind() == Pawn && victim.LastWasDoubleStep() && victim.White() != white {
				to := NewSquare(File(fx), Rank(ty))
				if !sink(Move{From: from, To: to}) {
					return false
				}
			}
		}
	}

	return true
}

func visitPawnDestination(from, to Square, sink Sink) bool {
	if to.Rank == Width-1 || to.Rank == 0 {
		if !sink(Move{From: from, To: to, IsPromotion: true, PromoteToQueen: true}) {
			return false
		}
		return sink(Move{From: from, To: to, IsPromotion: true, PromoteToQueen: false})
	}
	return sink(Move{From: from, To: to})
}

// visitCastling emits castling moves from the king's square. It does not
// check whether the king's own square is currently attacked, only the
// squares strictly between king and rook -- a deliberate deviation from
// standard castling-out-of-check rules; see DESIGN.md.
func visitCastling(b *Board, from Square, sink Sink) bool {
	king := b.At(from)
	if king.HasMoved() {
		return true
	}
	white := king.White()
	rank := from.Rank
	kingFile := int(from.File)

	attempt := func(rookFile, kingDestFile int) bool {
		rookSq := NewSquare(File(rookFile), rank)
		rook := b.At(rookSq)
		if rook.Kind() != Rook || rook.White() != white || rook.HasMoved() {
			return true
		}

		lo, hi := kingFile, rookFile
		if lo > hi {
			lo, hi = hi, lo
		}
		for x := lo + 1; x < hi; x++ {
			sq := NewSquare(File(x), rank)
			if b.At(sq).Occupied() || isAttacked(b, sq, white) {
				return true
			}
		}

		return sink(Move{From: from, To: NewSquare(File(kingDestFile), rank)})
	}

	if !attempt(0, 2) {
		return false
	}
	return attempt(7, 6)
}

func scanAttack(b *Board, from Square, dir [2]int, white bool, kinds ...Piece) bool {
	x, y := int(from.File), int(from.Rank)
	for {
		x += dir[0]
		y += dir[1]
		if !inBounds(x, y) {
			return false
		}
		c := b.At(NewSquare(File(x), Rank(y)))
		if !c.Occupied() {
			continue
		}
		if c.White() == white {
			return false
		}
		for _, k := range kinds {
			if c.Kind() == k {
				return true
			}
		}
		return false
	}
}

// isAttacked reports whether sq is attacked by the opponent of white. Scans
// all four orthogonal rays, all four diagonal rays, the two pawn-attack
// squares, and the eight knight offsets. See DESIGN.md.
func isAttacked(b *Board, sq Square, white bool) bool {
	for _, d := range rookDirs {
		if scanAttack(b, sq, d, white, Rook, Queen) {
			return true
		}
	}
	for _, d := range bishopDirs {
		if scanAttack(b, sq, d, white, Bishop, Queen) {
			return true
		}
	}

	dir := 1
	if !white {
		dir = -1
	}
	for _, dx := range [2]int{-1, 1} {
		px, py := int(sq.File)+dx, int(sq.Rank)+dir
		if !inBounds(px, py) {
			continue
		}
		c := b.At(NewSquare(File(px), Rank(py)))
		if c.Kind() == Pawn && c.White() != white {
			return true
		}
	}

	for _, o := range knightOffsets {
		px, py := int(sq.File)+o[0], int(sq.Rank)+o[1]
		if !inBounds(px, py) {
			continue
		}
		c := b.At(NewSquare(File(px), Rank(py)))
		if c.Kind() == Knight && c.White() != white {
			return true
		}
	}
	return false
}

// GenerateAll produces every pseudo-legal move for the side to move.
func GenerateAll(b *Board) []Move {
	var moves []Move
	visit(b, func(m Move) bool {
		moves = append(moves, m)
		return true
	})
	return moves
}

// GenerateOrdered produces the same set as GenerateAll, ordered by MVV-LVA
// (Most Valuable Victim / Least Valuable Attacker) for alpha-beta efficiency,
// non-captures last.
func GenerateOrdered(b *Board) []Move {
	return orderMoves(b, true)
}

// GenerateCaptures produces only the capturing subset, ordered identically
// to GenerateOrdered but with non-captures dropped entirely. Used by
// quiescence search.
func GenerateCaptures(b *Board) []Move {
	return orderMoves(b, false)
}

// victimOrder and attackerOrder implement the two-stage MVV-LVA bucketing
// described by the move generator's ordering rule: bucket by attacker kind,
// re-bucket within each attacker bucket by victim kind, then emit victim
// buckets from most to least valuable (non-captures last), preserving
// ascending attacker value within each victim bucket.
var attackerOrder = []Piece{Pawn, Knight, Bishop, Rook, Queen, King}
var victimOrder = []Piece{King, Queen, Rook, Bishop, Knight, Pawn}

func orderMoves(b *Board, includeQuiet bool) []Move {
	// victimOf is the kind captured by m; an en-passant capture lands on an
	// empty square and takes a pawn.
	victimOf := func(m Move) Piece {
		victim := b.At(m.To).Kind()
		if victim == NoPiece && b.At(m.From).Kind() == Pawn && m.From.File != m.To.File {
			return Pawn
		}
		return victim
	}

	var byAttacker [numPieceKinds][]Move
	visit(b, func(m Move) bool {
		victim := victimOf(m)
		if victim == NoPiece && !includeQuiet {
			return true
		}
		attacker := b.At(m.From).Kind()
		byAttacker[attacker] = append(byAttacker[attacker], m)
		return true
	})

	var byVictim [numPieceKinds][]Move
	for _, a := range attackerOrder {
		for _, m := range byAttacker[a] {
			v := victimOf(m)
			byVictim[v] = append(byVictim[v], m)
		}
	}

	var out []Move
	for _, v := range victimOrder {
		out = append(out, byVictim[v]...)
	}
	if includeQuiet {
		out = append(out, byVictim[NoPiece]...)
	}
	return out
}
