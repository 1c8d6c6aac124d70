package rules

import (
	"fmt"
	"strings"
)

// Move is an origin, a destination and an optional promotion kind.
// Two moves are equal only if all three fields match.
type Move struct {
	From      Square
	To        Square
	Promotion PieceKind
}

// NewMove constructs a Move value from components.
func NewMove(from, to Square, promotion PieceKind) Move {
	return Move{From: from, To: to, Promotion: promotion}
}

// String produces the coordinate form of the move (e.g. "e2e4", "e7e8q").
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if ch := m.Promotion.letter(); ch != 0 {
		s += string(ch)
	}
	return s
}

// ParseMove converts a coordinate string (e2e4, e7e8q) into a Move.
func ParseMove(movestr string) (Move, error) {
	movestr = strings.TrimSpace(strings.ToLower(movestr))
	if len(movestr) < 4 || len(movestr) > 5 {
		return Move{}, fmt.Errorf("%w: bad move length %q", ErrInvalidEncoding, movestr)
	}
	from, err := ParseSquare(movestr[0:2])
	if err != nil {
		return Move{}, err
	}
	to, err := ParseSquare(movestr[2:4])
	if err != nil {
		return Move{}, err
	}
	var promo PieceKind
	if len(movestr) == 5 {
		promo = kindFromLetter(movestr[4])
		if !isPromotionKind(promo) {
			return Move{}, fmt.Errorf("%w: bad promotion piece %q", ErrInvalidEncoding, movestr[4:])
		}
	}
	return NewMove(from, to, promo), nil
}

func isPromotionKind(k PieceKind) bool {
	for _, pk := range PromotionKinds {
		if k == pk {
			return true
		}
	}
	return false
}
