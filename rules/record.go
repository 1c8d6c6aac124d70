package rules

import (
	"errors"
	"fmt"
)

// CastlingRights holds the four "never moved" facts as bit flags.
type CastlingRights uint8

const (
	// White king-side (short) castling
	WhiteKingside CastlingRights = 1 << iota
	// White queen-side (long) castling
	WhiteQueenside
	// Black king-side castling
	BlackKingside
	// Black queen-side castling
	BlackQueenside

	AllCastling = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

// Has reports whether every right in want is held.
func (c CastlingRights) Has(want CastlingRights) bool { return c&want == want }

// castle describes one castling option. Columns refer to the side's back row.
type castle struct {
	right   CastlingRights
	side    Side
	rookCol int
	transit int // the square the king crosses
	kingTo  int
	rookTo  int
}

const kingCol = 5

var castles = [4]castle{
	{right: WhiteKingside, side: White, rookCol: 8, transit: 6, kingTo: 7, rookTo: 6},
	{right: WhiteQueenside, side: White, rookCol: 1, transit: 4, kingTo: 3, rookTo: 4},
	{right: BlackKingside, side: Black, rookCol: 8, transit: 6, kingTo: 7, rookTo: 6},
	{right: BlackQueenside, side: Black, rookCol: 1, transit: 4, kingTo: 3, rookTo: 4},
}

// rightsTouching returns the rights lost when a piece leaves or is captured on sq.
func rightsTouching(sq Square) CastlingRights {
	var lost CastlingRights
	for _, c := range castles {
		row := c.side.backRow()
		if sq == Sq(row, kingCol) || sq == Sq(row, c.rookCol) {
			lost |= c.right
		}
	}
	return lost
}

// rightsFromPlacement grants each right whose king and rook stand on their
// original squares.
func rightsFromPlacement(pos *Position) CastlingRights {
	var rights CastlingRights
	for _, c := range castles {
		row := c.side.backRow()
		if pos.at(Sq(row, kingCol)) == (Piece{Side: c.side, Kind: King}) &&
			pos.at(Sq(row, c.rookCol)) == (Piece{Side: c.side, Kind: Rook}) {
			rights |= c.right
		}
	}
	return rights
}

// GameRecord is everything needed to decide legality: placement, side to
// move, castling rights and the en passant target left by the previous move.
// It is an immutable value; Apply returns a new record.
type GameRecord struct {
	pos       Position
	turn      Side
	castling  CastlingRights
	enPassant Square // square behind a pawn that just advanced two rows

	// Halfmove clock (half-moves since the last capture or pawn move)
	halfmoveClock int
	// Fullmove number (starts at 1, incremented after Black's move)
	fullmoveNumber int
}

// StartingRecord returns the standard initial game: start position, White to
// move, all castling rights.
func StartingRecord() GameRecord {
	return NewRecord(StartingPosition(), White)
}

// NewRecord builds a record for an externally supplied position. Castling
// rights are granted wherever king and rook stand on their original squares;
// there is no en passant target.
func NewRecord(pos Position, turn Side) GameRecord {
	return GameRecord{
		pos:            pos,
		turn:           turn,
		castling:       rightsFromPlacement(&pos),
		enPassant:      NoSquare,
		fullmoveNumber: 1,
	}
}

// Position returns a copy of the piece placement.
func (r GameRecord) Position() Position { return r.pos }

// Turn reports which side is to play.
func (r GameRecord) Turn() Side { return r.turn }

// Castling returns the castling rights still held.
func (r GameRecord) Castling() CastlingRights { return r.castling }

// EnPassant returns the en passant target square or NoSquare.
func (r GameRecord) EnPassant() Square { return r.enPassant }

// HalfmoveClock returns the number of half-moves since the last capture or pawn move.
func (r GameRecord) HalfmoveClock() int { return r.halfmoveClock }

// FullmoveNumber returns the full move counter (incremented after Black's move).
func (r GameRecord) FullmoveNumber() int { return r.fullmoveNumber }

// WithTurn returns a copy of the record with a different side to move. The
// en passant fact belongs to the previous mover's opponent, so it is dropped
// when the side actually changes.
func (r GameRecord) WithTurn(side Side) GameRecord {
	if side != r.turn {
		r.turn = side
		r.enPassant = NoSquare
	}
	return r
}

// WithCastling returns a copy of the record with the given rights, masked to
// those the placement can support.
func (r GameRecord) WithCastling(c CastlingRights) GameRecord {
	r.castling = c & rightsFromPlacement(&r.pos)
	return r
}

// Apply plays m if it is legal for the side to move and returns the resulting record.
// The receiver is never modified.
func (r GameRecord) Apply(m Move) (GameRecord, error) {
	legal, err := r.IsLegal(m)
	if err != nil {
		return r, err
	}
	if !legal {
		return r, &MoveError{Move: m, Reason: "not a legal move for " + r.turn.String()}
	}
	return r.play(m), nil
}

// play applies m without checking legality.
func (r GameRecord) play(m Move) GameRecord {
	next := r
	moved := r.pos.at(m.From)
	captured := r.pos.at(m.To)

	next.pos.applyMove(m, r.enPassant)

	next.castling &^= rightsTouching(m.From) | rightsTouching(m.To)

	next.enPassant = NoSquare
	if moved.Kind == Pawn && abs(m.To.Row-m.From.Row) == 2 {
		next.enPassant = Sq((m.From.Row+m.To.Row)/2, m.From.Col)
	}

	if moved.Kind == Pawn || !captured.IsZero() {
		next.halfmoveClock = 0
	} else {
		next.halfmoveClock++
	}
	if r.turn == Black {
		next.fullmoveNumber++
	}
	next.turn = r.turn.Opponent()
	return next
}

// applyMove moves pieces for m, including the rook of a castling move and
// the pawn taken en passant. enPassant is the current en passant target.
func (p *Position) applyMove(m Move, enPassant Square) {
	pc := p.at(m.From)
	switch {
	case pc.Kind == Pawn && m.To == enPassant && m.From.Col != m.To.Col && p.at(m.To).IsZero():
		p.ClearSquare(Sq(m.From.Row, m.To.Col))
	case pc.Kind == King && abs(m.To.Col-m.From.Col) == 2:
		if m.To.Col > m.From.Col {
			p.movePiece(Sq(m.From.Row, 8), Sq(m.From.Row, m.To.Col-1))
		} else {
			p.movePiece(Sq(m.From.Row, 1), Sq(m.From.Row, m.To.Col+1))
		}
	}
	p.movePiece(m.From, m.To)
	if m.Promotion != NoKind {
		p.SetPiece(m.To, Piece{Side: pc.Side, Kind: m.Promotion})
	}
}

// Validate checks that the record describes a reachable-looking game: one
// king per side, no pawns on the first or last row, castling rights backed
// by placement and an en passant target consistent with the last move.
// All problems found are reported, each wrapping ErrInvalidState.
func (r GameRecord) Validate() error {
	var errs []error
	for _, side := range [2]Side{White, Black} {
		if _, err := kingSquare(&r.pos, side); err != nil {
			errs = append(errs, err)
		}
	}
	for col := 1; col <= 8; col++ {
		for _, row := range [2]int{1, 8} {
			if pc := r.pos.at(Sq(row, col)); pc.Kind == Pawn {
				errs = append(errs, fmt.Errorf("%w: %s pawn on %s", ErrInvalidState, pc.Side, Sq(row, col)))
			}
		}
	}
	if extra := r.castling &^ rightsFromPlacement(&r.pos); extra != 0 {
		errs = append(errs, fmt.Errorf("%w: castling rights %04b without king and rook in place", ErrInvalidState, extra))
	}
	if r.enPassant != NoSquare {
		if err := r.validateEnPassant(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (r GameRecord) validateEnPassant() error {
	mover := r.turn.Opponent()
	ep := r.enPassant
	// The pawn that advanced stands one row past the target, in its own direction.
	pawnSq := ep.offset(mover.forward(), 0)
	origin := ep.offset(-mover.forward(), 0)
	switch {
	case !ep.Valid() || ep.Row != mover.pawnRow()+mover.forward():
		return fmt.Errorf("%w: en passant target %s on wrong row", ErrInvalidState, ep)
	case r.pos.at(pawnSq) != (Piece{Side: mover, Kind: Pawn}):
		return fmt.Errorf("%w: no %s pawn in front of en passant target %s", ErrInvalidState, mover, ep)
	case !r.pos.at(ep).IsZero() || !r.pos.at(origin).IsZero():
		return fmt.Errorf("%w: en passant path %s not empty", ErrInvalidState, ep)
	}
	return nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
