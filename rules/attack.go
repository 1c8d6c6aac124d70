package rules

import "fmt"

// IsAttacked reports whether any piece of side by attacks sq. Pawns attack
// only their two forward diagonals. The scan works outward from sq and never
// consults the legality filter.
func IsAttacked(pos Position, sq Square, by Side) bool {
	return isAttacked(&pos, sq, by)
}

func isAttacked(pos *Position, sq Square, by Side) bool {
	return pawnAttacks(pos, sq, by) ||
		pieceAt(pos, sq, by, Knight, knightOffsets[:]) ||
		pieceAt(pos, sq, by, King, kingOffsets[:]) ||
		rayAttacks(pos, sq, by, diagonalDirs[:], Bishop) ||
		rayAttacks(pos, sq, by, straightDirs[:], Rook)
}

// pawnAttacks checks the two squares a pawn of side by would attack sq from.
func pawnAttacks(pos *Position, sq Square, by Side) bool {
	pawn := Piece{Side: by, Kind: Pawn}
	back := -by.forward()
	for _, dc := range [2]int{-1, 1} {
		if pos.at(sq.offset(back, dc)) == pawn {
			return true
		}
	}
	return false
}

// pieceAt checks the squares reached by one step of each offset for a piece of the given kind.
func pieceAt(pos *Position, sq Square, by Side, kind PieceKind, offsets [][2]int) bool {
	want := Piece{Side: by, Kind: kind}
	for _, off := range offsets {
		if pos.at(sq.offset(off[0], off[1])) == want {
			return true
		}
	}
	return false
}

// rayAttacks walks each direction to the first occupant and checks it for
// the slider kind or a queen.
func rayAttacks(pos *Position, sq Square, by Side, dirs [][2]int, slider PieceKind) bool {
	for _, dir := range dirs {
		to := sq.offset(dir[0], dir[1])
		for to.Valid() {
			pc, ok := pos.PieceAt(to)
			if ok {
				if pc.Side == by && (pc.Kind == slider || pc.Kind == Queen) {
					return true
				}
				break
			}
			to = to.offset(dir[0], dir[1])
		}
	}
	return false
}

// KingSquare locates the king of side. A board with no king or several kings
// for that side fails with ErrInvalidState.
func KingSquare(pos Position, side Side) (Square, error) {
	return kingSquare(&pos, side)
}

func kingSquare(pos *Position, side Side) (Square, error) {
	king := Piece{Side: side, Kind: King}
	found := NoSquare
	count := 0
	for row := 1; row <= 8; row++ {
		for col := 1; col <= 8; col++ {
			if pos.squares[row-1][col-1] == king {
				found = Sq(row, col)
				count++
			}
		}
	}
	if count != 1 {
		return NoSquare, fmt.Errorf("%w: %s has %d kings", ErrInvalidState, side, count)
	}
	return found, nil
}

// KingInCheck reports whether the king of side is attacked by the opponent.
func KingInCheck(pos Position, side Side) (bool, error) {
	return kingInCheck(&pos, side)
}

func kingInCheck(pos *Position, side Side) (bool, error) {
	ksq, err := kingSquare(pos, side)
	if err != nil {
		return false, err
	}
	return isAttacked(pos, ksq, side.Opponent()), nil
}
