package rules

import (
	"fmt"
	"strconv"
	"strings"
)

// FENStartPos is the FEN string for the standard initial chess position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN parses a FEN string into a GameRecord. The halfmove and fullmove
// fields are optional. Castling rights the placement cannot support are
// dropped.
func ParseFEN(fen string) (GameRecord, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return GameRecord{}, fmt.Errorf("%w: not enough fields", ErrInvalidFEN)
	}

	rec := GameRecord{enPassant: NoSquare, fullmoveNumber: 1}

	// 1. Piece placement
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return GameRecord{}, fmt.Errorf("%w: incorrect number of ranks", ErrInvalidFEN)
	}
	for i, rankStr := range ranks {
		if len(rankStr) == 0 {
			return GameRecord{}, fmt.Errorf("%w: empty rank description", ErrInvalidFEN)
		}
		row := 8 - i
		col := 1
		for j := 0; j < len(rankStr); j++ {
			ch := rankStr[j]
			if ch >= '1' && ch <= '8' {
				// Digit: skip that many files (empty squares)
				col += int(ch - '0')
				continue
			}
			pc, ok := pieceFromLetter(ch)
			if !ok {
				return GameRecord{}, fmt.Errorf("%w: unrecognized piece character %q", ErrInvalidFEN, ch)
			}
			if col > 8 {
				return GameRecord{}, fmt.Errorf("%w: too many squares in rank %d", ErrInvalidFEN, row)
			}
			rec.pos.SetPiece(Sq(row, col), pc)
			col++
		}
		if col != 9 {
			return GameRecord{}, fmt.Errorf("%w: rank %d does not have 8 columns", ErrInvalidFEN, row)
		}
	}

	// 2. Side to move
	switch fields[1] {
	case "w":
		rec.turn = White
	case "b":
		rec.turn = Black
	default:
		return GameRecord{}, fmt.Errorf("%w: side to move must be 'w' or 'b'", ErrInvalidFEN)
	}

	// 3. Castling rights
	if fields[2] != "-" {
		for _, ch := range fields[2] {
			switch ch {
			case 'K':
				rec.castling |= WhiteKingside
			case 'Q':
				rec.castling |= WhiteQueenside
			case 'k':
				rec.castling |= BlackKingside
			case 'q':
				rec.castling |= BlackQueenside
			default:
				return GameRecord{}, fmt.Errorf("%w: invalid castling rights character %q", ErrInvalidFEN, ch)
			}
		}
	}
	rec.castling &= rightsFromPlacement(&rec.pos)

	// 4. En passant target square
	if fields[3] != "-" {
		sq, err := ParseSquare(fields[3])
		if err != nil {
			return GameRecord{}, fmt.Errorf("%w: invalid en passant square %q", ErrInvalidFEN, fields[3])
		}
		rec.enPassant = sq
	}

	// 5. Halfmove clock
	if len(fields) > 4 {
		halfmove, err := strconv.Atoi(fields[4])
		if err != nil {
			return GameRecord{}, fmt.Errorf("%w: halfmove clock is not a number", ErrInvalidFEN)
		}
		rec.halfmoveClock = halfmove
	}

	// 6. Fullmove number
	if len(fields) > 5 {
		fullmove, err := strconv.Atoi(fields[5])
		if err != nil {
			return GameRecord{}, fmt.Errorf("%w: fullmove number is not a number", ErrInvalidFEN)
		}
		rec.fullmoveNumber = fullmove
	}
	return rec, nil
}

// MustParseFEN is ParseFEN for constants; it panics on error.
func MustParseFEN(fen string) GameRecord {
	rec, err := ParseFEN(fen)
	if err != nil {
		panic(err)
	}
	return rec
}

// FEN produces the FEN string of the record.
func (r GameRecord) FEN() string {
	var sb strings.Builder

	// 1. Piece placement
	for row := 8; row >= 1; row-- {
		empty := 0
		for col := 1; col <= 8; col++ {
			pc := r.pos.at(Sq(row, col))
			if pc.IsZero() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			sb.WriteByte(pc.Letter())
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if row > 1 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')

	// 2. Side to move
	if r.turn == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')

	// 3. Castling rights
	if r.castling == 0 {
		sb.WriteByte('-')
	} else {
		for _, c := range [4]struct {
			right CastlingRights
			ch    byte
		}{{WhiteKingside, 'K'}, {WhiteQueenside, 'Q'}, {BlackKingside, 'k'}, {BlackQueenside, 'q'}} {
			if r.castling.Has(c.right) {
				sb.WriteByte(c.ch)
			}
		}
	}
	sb.WriteByte(' ')

	// 4. En passant square
	sb.WriteString(r.enPassant.String())
	sb.WriteByte(' ')

	// 5. Halfmove clock, 6. Fullmove number
	sb.WriteString(strconv.Itoa(r.halfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(r.fullmoveNumber))
	return sb.String()
}
