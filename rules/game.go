package rules

// A Game is the mutable front end over a GameRecord: it holds the current
// record and swaps it for a new one on every accepted move. A Game performs
// no locking; use one writer at a time.
type Game struct {
	rec GameRecord
	err error // deferred option error, reported by the first call that needs it
}

// Option configures a Game in NewGame.
type Option func(*Game)

// WithPosition starts the game from pos, deriving castling rights from placement.
func WithPosition(pos Position) Option {
	return func(g *Game) {
		g.rec = NewRecord(pos, g.rec.turn)
	}
}

// WithTurn sets the side to move.
func WithTurn(side Side) Option {
	return func(g *Game) {
		g.rec = g.rec.WithTurn(side)
	}
}

// WithRecord starts the game from a complete record.
func WithRecord(rec GameRecord) Option {
	return func(g *Game) {
		g.rec = rec
	}
}

// WithFEN starts the game from a FEN string. A parse failure is reported by
// Err and by every later call that returns an error.
func WithFEN(fen string) Option {
	return func(g *Game) {
		rec, err := ParseFEN(fen)
		if err != nil {
			g.err = err
			return
		}
		g.rec = rec
	}
}

// NewGame returns a new game in the standard starting position with White to
// move. Options are applied in order.
//
// Example:
//
//	// Standard game
//	game := NewGame()
//
//	// Game from a board description
//	pos, _ := LoadBoard(text)
//	game := NewGame(WithPosition(pos), WithTurn(Black))
func NewGame(options ...Option) *Game {
	g := &Game{rec: StartingRecord()}
	for _, opt := range options {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Err returns the error left by a failed option, if any.
func (g *Game) Err() error { return g.err }

// Record returns the current game record.
func (g *Game) Record() GameRecord { return g.rec }

// Board returns a copy of the current piece placement.
func (g *Game) Board() Position { return g.rec.pos }

// SetBoard replaces the position. Castling rights are re-derived from the
// placement and any en passant opportunity is dropped.
func (g *Game) SetBoard(pos Position) {
	g.rec = NewRecord(pos, g.rec.turn)
	g.err = nil
}

// TeamTurn reports which side is to move.
func (g *Game) TeamTurn() Side { return g.rec.turn }

// SetTeamTurn sets the side to move.
func (g *Game) SetTeamTurn(side Side) { g.rec = g.rec.WithTurn(side) }

// LegalMoves returns the legal moves of the piece on sq. Squares that are
// empty or hold a piece of the side not to move yield no moves.
func (g *Game) LegalMoves(sq Square) ([]Move, error) {
	if g.err != nil {
		return nil, g.err
	}
	return g.rec.LegalMoves(sq)
}

// AllLegalMoves returns every legal move of the side to move.
func (g *Game) AllLegalMoves() ([]Move, error) {
	if g.err != nil {
		return nil, g.err
	}
	return g.rec.AllLegalMoves()
}

// MakeMove plays m for the side to move. Moves that are not legal, or any
// move once the game has ended, fail with an error wrapping ErrInvalidMove and
// leave the game unchanged.
func (g *Game) MakeMove(m Move) error {
	if g.err != nil {
		return g.err
	}
	out, err := g.rec.Outcome()
	if err != nil {
		return err
	}
	if out.Terminal() {
		return &MoveError{Move: m, Reason: "game is over by " + out.Status.String()}
	}
	if pc, ok := g.rec.pos.PieceAt(m.From); !ok {
		return &MoveError{Move: m, Reason: "no piece on " + m.From.String()}
	} else if pc.Side != g.rec.turn {
		return &MoveError{Move: m, Reason: "not " + pc.Side.String() + "'s turn"}
	}
	next, err := g.rec.Apply(m)
	if err != nil {
		return err
	}
	g.rec = next
	return nil
}

// Outcome derives the state of the game for the side to move.
func (g *Game) Outcome() (Outcome, error) {
	if g.err != nil {
		return Outcome{}, g.err
	}
	return g.rec.Outcome()
}

// IsInCheck reports whether side's king is attacked.
func (g *Game) IsInCheck(side Side) (bool, error) {
	if g.err != nil {
		return false, g.err
	}
	return kingInCheck(&g.rec.pos, side)
}

// IsInCheckmate reports whether side is in check with no legal move.
func (g *Game) IsInCheckmate(side Side) (bool, error) {
	return g.statusIs(side, Checkmate)
}

// IsInStalemate reports whether side is not in check and has no legal move.
func (g *Game) IsInStalemate(side Side) (bool, error) {
	return g.statusIs(side, Stalemate)
}

func (g *Game) statusIs(side Side, want Status) (bool, error) {
	if g.err != nil {
		return false, g.err
	}
	out, err := g.rec.OutcomeFor(side)
	if err != nil {
		return false, err
	}
	return out.Status == want, nil
}
