package rules

// Status is the state of a game as seen by one side.
type Status uint8

const (
	// InProgress indicates the side has legal moves and is not in check.
	InProgress Status = iota
	// Check indicates the side is in check but has a legal reply.
	Check
	// Checkmate indicates the side is in check with no legal move.
	Checkmate
	// Stalemate indicates the side is not in check and has no legal move.
	Stalemate
)

func (s Status) String() string {
	switch s {
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	default:
		return "in progress"
	}
}

// Outcome is a Status together with the side it applies to.
type Outcome struct {
	Status Status
	Side   Side
}

// Terminal reports whether no further moves can be made.
func (o Outcome) Terminal() bool {
	return o.Status == Checkmate || o.Status == Stalemate
}

func (o Outcome) String() string {
	if o.Status == InProgress || o.Status == Stalemate {
		return o.Status.String()
	}
	return o.Status.String() + " (" + o.Side.String() + ")"
}

// Outcome derives the state of the game for the side to move.
func (r GameRecord) Outcome() (Outcome, error) {
	return r.OutcomeFor(r.turn)
}

// OutcomeFor derives the state of the game for side, whether or not it is
// that side's turn. Combining "has a legal move" with "is in check"
// distinguishes checkmate from stalemate.
func (r GameRecord) OutcomeFor(side Side) (Outcome, error) {
	inCheck, err := kingInCheck(&r.pos, side)
	if err != nil {
		return Outcome{}, err
	}
	canMove, err := r.hasLegalMove(side)
	if err != nil {
		return Outcome{}, err
	}
	out := Outcome{Status: InProgress, Side: side}
	switch {
	case inCheck && !canMove:
		out.Status = Checkmate
	case inCheck:
		out.Status = Check
	case !canMove:
		out.Status = Stalemate
	}
	return out, nil
}
