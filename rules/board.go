// Package rules implements the rules of chess: move generation, check
// detection, legality filtering (castling, en passant, promotion) and the
// game state machine that decides check, checkmate and stalemate.
//
// Positions and game records are plain values; copying one gives an
// independent scratch state. A *Game is not safe for concurrent mutation:
// callers serving several goroutines must guard each game with its own lock.
package rules

import "strings"

// PieceKind is a colorless piece type.
type PieceKind uint8

const (
	NoKind PieceKind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// PromotionKinds lists the kinds a pawn may promote to, in emission order.
var PromotionKinds = [...]PieceKind{Knight, Bishop, Rook, Queen}

// String returns the lower-case name of the kind.
func (k PieceKind) String() string {
	switch k {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	default:
		return "none"
	}
}

// letter returns the lower-case board letter of the kind, 0 for NoKind.
func (k PieceKind) letter() byte {
	switch k {
	case Pawn:
		return 'p'
	case Knight:
		return 'n'
	case Bishop:
		return 'b'
	case Rook:
		return 'r'
	case Queen:
		return 'q'
	case King:
		return 'k'
	default:
		return 0
	}
}

// kindFromLetter maps a board letter (either case) to its kind.
func kindFromLetter(ch byte) PieceKind {
	switch ch | 0x20 {
	case 'p':
		return Pawn
	case 'n':
		return Knight
	case 'b':
		return Bishop
	case 'r':
		return Rook
	case 'q':
		return Queen
	case 'k':
		return King
	default:
		return NoKind
	}
}

// Side is one of the two players.
type Side uint8

const (
	White Side = 0
	Black Side = 1
)

// Opponent returns the other side.
func (s Side) Opponent() Side { return s ^ 1 }

func (s Side) String() string {
	if s == Black {
		return "black"
	}
	return "white"
}

// forward is the row delta of a pawn advance.
func (s Side) forward() int {
	if s == Black {
		return -1
	}
	return 1
}

// backRow is the row the side's pieces start on.
func (s Side) backRow() int {
	if s == Black {
		return 8
	}
	return 1
}

// pawnRow is the row the side's pawns start on.
func (s Side) pawnRow() int {
	if s == Black {
		return 7
	}
	return 2
}

// promotionRow is the farthest row from the side.
func (s Side) promotionRow() int {
	if s == Black {
		return 1
	}
	return 8
}

// Piece is a side and a kind. The zero value is the empty square.
type Piece struct {
	Side Side
	Kind PieceKind
}

// NoPiece is the empty-square value.
var NoPiece = Piece{}

// IsZero reports whether p is the empty-square value.
func (p Piece) IsZero() bool { return p.Kind == NoKind }

// Letter returns the board letter: upper case for White, lower case for Black.
func (p Piece) Letter() byte {
	ch := p.Kind.letter()
	if ch == 0 {
		return ' '
	}
	if p.Side == White {
		return ch - 0x20
	}
	return ch
}

// pieceFromLetter is the inverse of Letter; ok is false for unknown letters.
func pieceFromLetter(ch byte) (Piece, bool) {
	kind := kindFromLetter(ch)
	if kind == NoKind {
		return NoPiece, false
	}
	side := White
	if ch >= 'a' && ch <= 'z' {
		side = Black
	}
	return Piece{Side: side, Kind: kind}, true
}

func (p Piece) String() string {
	if p.IsZero() {
		return "empty"
	}
	return p.Side.String() + " " + p.Kind.String()
}

// Square is a board coordinate. Row 1 is White's back rank, column 1 is the a-file.
type Square struct {
	Row int
	Col int
}

// NoSquare is the zero Square, used where no square applies.
var NoSquare = Square{}

// Sq builds a square from row and column.
func Sq(row, col int) Square { return Square{Row: row, Col: col} }

// Valid reports whether the square is on the board.
func (s Square) Valid() bool {
	return s.Row >= 1 && s.Row <= 8 && s.Col >= 1 && s.Col <= 8
}

// offset returns the square shifted by (dr, dc); the result may be off board.
func (s Square) offset(dr, dc int) Square {
	return Square{Row: s.Row + dr, Col: s.Col + dc}
}

// String returns algebraic notation ("e4"), or "-" for squares off the board.
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{'a' + byte(s.Col-1), '0' + byte(s.Row)})
}

// ParseSquare converts algebraic notation ("e4") into a Square.
func ParseSquare(alg string) (Square, error) {
	if len(alg) != 2 {
		return NoSquare, errInvalidSquare(alg)
	}
	file, rank := alg[0]|0x20, alg[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare, errInvalidSquare(alg)
	}
	return Square{Row: int(rank - '0'), Col: int(file-'a') + 1}, nil
}

// Position is piece placement on an 8x8 board. It is a value: assigning a
// Position copies it.
type Position struct {
	squares [8][8]Piece
}

var backRank = [8]PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// StartingPosition returns the standard initial arrangement.
func StartingPosition() Position {
	var p Position
	for col := 1; col <= 8; col++ {
		kind := backRank[col-1]
		p.SetPiece(Sq(1, col), Piece{Side: White, Kind: kind})
		p.SetPiece(Sq(2, col), Piece{Side: White, Kind: Pawn})
		p.SetPiece(Sq(7, col), Piece{Side: Black, Kind: Pawn})
		p.SetPiece(Sq(8, col), Piece{Side: Black, Kind: kind})
	}
	return p
}

// PieceAt returns the piece on sq and whether the square is occupied.
// Squares off the board are reported empty.
func (p *Position) PieceAt(sq Square) (Piece, bool) {
	if !sq.Valid() {
		return NoPiece, false
	}
	pc := p.squares[sq.Row-1][sq.Col-1]
	return pc, !pc.IsZero()
}

// at is PieceAt without the ok flag.
func (p *Position) at(sq Square) Piece {
	pc, _ := p.PieceAt(sq)
	return pc
}

// SetPiece places pc on sq, replacing any occupant. Squares off the board are ignored.
func (p *Position) SetPiece(sq Square, pc Piece) {
	if !sq.Valid() {
		return
	}
	p.squares[sq.Row-1][sq.Col-1] = pc
}

// ClearSquare empties sq.
func (p *Position) ClearSquare(sq Square) { p.SetPiece(sq, NoPiece) }

// movePiece relocates whatever stands on from to to, capturing any occupant of to.
func (p *Position) movePiece(from, to Square) {
	pc := p.at(from)
	p.ClearSquare(from)
	p.SetPiece(to, pc)
}

// Squares returns the occupied squares of one side, rows ascending then columns.
func (p *Position) Squares(side Side) []Square {
	out := make([]Square, 0, 16)
	for row := 1; row <= 8; row++ {
		for col := 1; col <= 8; col++ {
			pc := p.squares[row-1][col-1]
			if !pc.IsZero() && pc.Side == side {
				out = append(out, Sq(row, col))
			}
		}
	}
	return out
}

// Count returns how many pieces of the given side and kind are on the board.
func (p *Position) Count(pc Piece) int {
	n := 0
	for row := range p.squares {
		for col := range p.squares[row] {
			if p.squares[row][col] == pc {
				n++
			}
		}
	}
	return n
}

// String renders the board in the pipe-delimited text form accepted by LoadBoard.
func (p Position) String() string {
	var sb strings.Builder
	for row := 8; row >= 1; row-- {
		sb.WriteByte('|')
		for col := 1; col <= 8; col++ {
			sb.WriteByte(p.squares[row-1][col-1].Letter())
			sb.WriteByte('|')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
