package board

// Piece represents a chess piece kind, colour-agnostic. None is always zero so
// that testing for occupancy is a simple nonzero check. Values fit in 3 bits;
// Cell stores them in 4 to leave headroom.
type Piece uint8

const (
	NoPiece Piece = iota
	King
	Queen
	Rook
	Bishop
	Knight
	Pawn

	numPieceKinds
)

func ParsePiece(r rune) (Piece, bool) {
	switch r {
	case 'k', 'K':
		return King, true
	case 'q', 'Q':
		return Queen, true
	case 'r', 'R':
		return Rook, true
	case 'b', 'B':
		return Bishop, true
	case 'n', 'N':
		return Knight, true
	case 'p', 'P':
		return Pawn, true
	case '.', ' ':
		return NoPiece, true
	default:
		return NoPiece, false
	}
}

func (p Piece) IsValid() bool {
	return p < numPieceKinds
}

func (p Piece) String() string {
	switch p {
	case NoPiece:
		return "."
	case King:
		return "k"
	case Queen:
		return "q"
	case Rook:
		return "r"
	case Bishop:
		return "b"
	case Knight:
		return "n"
	case Pawn:
		return "p"
	default:
		return "?"
	}
}

// Letter renders the piece using the given colour's case convention.
func (p Piece) Letter(white bool) rune {
	s := p.String()
	r := rune(s[0])
	if white {
		r = r - 'a' + 'A'
	}
	return r
}
