package rules

// Direction tables, as (row, column) deltas.
var (
	knightOffsets = [8][2]int{{2, 1}, {2, -1}, {-2, 1}, {-2, -1}, {1, 2}, {1, -2}, {-1, 2}, {-1, -2}}
	kingOffsets   = [8][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	diagonalDirs  = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	straightDirs  = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
)

// GeometricMoves returns the moves the piece on sq can make by movement shape
// alone, without regard to the safety of its own king. En passant and castling
// are not produced here. An empty square yields no moves.
func GeometricMoves(pos Position, sq Square) []Move {
	pc, ok := pos.PieceAt(sq)
	if !ok {
		return nil
	}
	moves := make([]Move, 0, 28)
	switch pc.Kind {
	case Pawn:
		moves = pawnMoves(&pos, sq, pc.Side, moves)
	case Knight:
		moves = jumpMoves(&pos, sq, pc.Side, knightOffsets[:], moves)
	case Bishop:
		moves = slideMoves(&pos, sq, pc.Side, diagonalDirs[:], moves)
	case Rook:
		moves = slideMoves(&pos, sq, pc.Side, straightDirs[:], moves)
	case Queen:
		moves = slideMoves(&pos, sq, pc.Side, diagonalDirs[:], moves)
		moves = slideMoves(&pos, sq, pc.Side, straightDirs[:], moves)
	case King:
		moves = jumpMoves(&pos, sq, pc.Side, kingOffsets[:], moves)
	}
	return moves
}

// appendPawnMove adds from->to, expanded into the four promotion variants
// when to lies on the side's farthest row.
func appendPawnMove(moves []Move, from, to Square, side Side) []Move {
	if to.Row == side.promotionRow() {
		for _, k := range PromotionKinds {
			moves = append(moves, NewMove(from, to, k))
		}
		return moves
	}
	return append(moves, NewMove(from, to, NoKind))
}

func pawnMoves(pos *Position, from Square, side Side, moves []Move) []Move {
	dir := side.forward()

	one := from.offset(dir, 0)
	if one.Valid() && pos.at(one).IsZero() {
		moves = appendPawnMove(moves, from, one, side)
		if from.Row == side.pawnRow() {
			two := from.offset(2*dir, 0)
			if two.Valid() && pos.at(two).IsZero() {
				moves = append(moves, NewMove(from, two, NoKind))
			}
		}
	}

	for _, dc := range [2]int{-1, 1} {
		to := from.offset(dir, dc)
		if !to.Valid() {
			continue
		}
		if target, ok := pos.PieceAt(to); ok && target.Side != side {
			moves = appendPawnMove(moves, from, to, side)
		}
	}
	return moves
}

func jumpMoves(pos *Position, from Square, side Side, offsets [][2]int, moves []Move) []Move {
	for _, off := range offsets {
		to := from.offset(off[0], off[1])
		if !to.Valid() {
			continue
		}
		if target, ok := pos.PieceAt(to); ok && target.Side == side {
			continue
		}
		moves = append(moves, NewMove(from, to, NoKind))
	}
	return moves
}

func slideMoves(pos *Position, from Square, side Side, dirs [][2]int, moves []Move) []Move {
	for _, dir := range dirs {
		to := from.offset(dir[0], dir[1])
		for to.Valid() {
			target, ok := pos.PieceAt(to)
			if ok {
				if target.Side != side {
					moves = append(moves, NewMove(from, to, NoKind))
				}
				break
			}
			moves = append(moves, NewMove(from, to, NoKind))
			to = to.offset(dir[0], dir[1])
		}
	}
	return moves
}
