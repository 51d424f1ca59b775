package board

import "fmt"

// Move represents a not-necessarily-legal move: source and destination square,
// plus the promotion choice when the move is a pawn reaching the last rank.
// The debug move-kind tag carried by the original design is dropped entirely
// (see DESIGN.md) -- callers that need to classify a move (pawn push, castle,
// en passant, ...) derive it from From/To geometry and the board being moved
// on, the same information the tag would have cached.
type Move struct {
	From, To       Square
	IsPromotion    bool
	PromoteToQueen bool // meaningful only when IsPromotion; false means knight.
}

// ParseMove parses a move in pure algebraic coordinate notation, such as "e2e4"
// or "g7g8q". The promotion suffix is 'q' for queen or 'n'/'k' for knight,
// matching the front-end's move-text convention.
func ParseMove(str string) (Move, error) {
	runes := []rune(str)

	if len(runes) < 4 || len(runes) > 5 {
		return Move{}, fmt.Errorf("invalid move: %q", str)
	}

	from, err := ParseSquare(runes[0], runes[1])
	if err != nil {
		return Move{}, fmt.Errorf("invalid from in %q: %w", str, err)
	}
	to, err := ParseSquare(runes[2], runes[3])
	if err != nil {
		return Move{}, fmt.Errorf("invalid to in %q: %w", str, err)
	}

	m := Move{From: from, To: to}

	if len(runes) == 5 {
		switch runes[4] {
		case 'q', 'Q':
			m.IsPromotion = true
			m.PromoteToQueen = true
		case 'n', 'N', 'k', 'K':
			m.IsPromotion = true
			m.PromoteToQueen = false
		default:
			return Move{}, fmt.Errorf("invalid promotion in %q", str)
		}
	}

	return m, nil
}

func (m Move) Equals(o Move) bool {
	return m.From == o.From && m.To == o.To && m.IsPromotion == o.IsPromotion && m.PromoteToQueen == o.PromoteToQueen
}

func (m Move) String() string {
	if !m.IsPromotion {
		return fmt.Sprintf("%v%v", m.From, m.To)
	}
	if m.PromoteToQueen {
		return fmt.Sprintf("%v%v=Q", m.From, m.To)
	}
	return fmt.Sprintf("%v%v=N", m.From, m.To)
}
