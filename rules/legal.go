package rules

// LegalMoves returns the legal moves of the piece on sq. An empty square, or
// a piece of the side not to move, yields no moves and no error. A mover
// without exactly one king fails with ErrInvalidState.
func (r GameRecord) LegalMoves(sq Square) ([]Move, error) {
	pc, ok := r.pos.PieceAt(sq)
	if !ok || pc.Side != r.turn {
		return nil, nil
	}
	return r.movesFrom(sq, pc)
}

// AllLegalMoves returns the legal moves of every piece of the side to move.
func (r GameRecord) AllLegalMoves() ([]Move, error) {
	return r.sideMoves(r.turn, false)
}

// IsLegal reports whether m is among the legal moves from m.From.
func (r GameRecord) IsLegal(m Move) (bool, error) {
	moves, err := r.LegalMoves(m.From)
	if err != nil {
		return false, err
	}
	for _, lm := range moves {
		if lm == m {
			return true, nil
		}
	}
	return false, nil
}

// sideMoves collects legal moves of side, stopping after the first one when
// firstOnly is set.
func (r GameRecord) sideMoves(side Side, firstOnly bool) ([]Move, error) {
	if _, err := kingSquare(&r.pos, side); err != nil {
		return nil, err
	}
	var all []Move
	for _, sq := range r.pos.Squares(side) {
		moves, err := r.movesFrom(sq, r.pos.at(sq))
		if err != nil {
			return nil, err
		}
		all = append(all, moves...)
		if firstOnly && len(all) > 0 {
			return all, nil
		}
	}
	return all, nil
}

// hasLegalMove reports whether side has at least one legal move.
func (r GameRecord) hasLegalMove(side Side) (bool, error) {
	moves, err := r.sideMoves(side, true)
	return len(moves) > 0, err
}

// movesFrom filters the geometric moves of pc on sq down to those that keep
// its own king safe, then adds en passant and castling where available.
func (r GameRecord) movesFrom(sq Square, pc Piece) ([]Move, error) {
	ksq, err := kingSquare(&r.pos, pc.Side)
	if err != nil {
		return nil, err
	}

	candidates := GeometricMoves(r.pos, sq)
	legal := candidates[:0]
	for _, m := range candidates {
		if r.keepsKingSafe(m, pc, ksq) {
			legal = append(legal, m)
		}
	}

	switch pc.Kind {
	case Pawn:
		if m, ok := r.enPassantCapture(sq, pc.Side); ok && r.keepsKingSafe(m, pc, ksq) {
			legal = append(legal, m)
		}
	case King:
		legal = append(legal, r.castlingMoves(sq, pc.Side)...)
	}
	return legal, nil
}

// keepsKingSafe plays m on a scratch copy of the position and reports whether
// the mover's king is out of check afterwards. ksq is the king's square
// before the move.
func (r GameRecord) keepsKingSafe(m Move, pc Piece, ksq Square) bool {
	scratch := r.pos
	scratch.applyMove(m, r.enPassant)
	if pc.Kind == King {
		ksq = m.To
	}
	return !isAttacked(&scratch, ksq, pc.Side.Opponent())
}

// enPassantCapture returns the en passant capture available to the pawn on
// from, if any. Only the side to move can capture en passant, and only onto
// the target left by the immediately preceding two-square advance.
func (r GameRecord) enPassantCapture(from Square, side Side) (Move, bool) {
	ep := r.enPassant
	if ep == NoSquare || side != r.turn {
		return Move{}, false
	}
	dir := side.forward()
	fifth := side.pawnRow() + 3*dir
	if from.Row != fifth || ep.Row != from.Row+dir || abs(ep.Col-from.Col) != 1 {
		return Move{}, false
	}
	victim := r.pos.at(Sq(from.Row, ep.Col))
	if victim != (Piece{Side: side.Opponent(), Kind: Pawn}) || !r.pos.at(ep).IsZero() {
		return Move{}, false
	}
	return NewMove(from, ep, NoKind), true
}

// castlingMoves returns the two-column king moves available from from.
// Kingside and queenside are evaluated independently.
func (r GameRecord) castlingMoves(from Square, side Side) []Move {
	row := side.backRow()
	if from != Sq(row, kingCol) {
		return nil
	}
	them := side.Opponent()
	if isAttacked(&r.pos, from, them) {
		return nil
	}

	var moves []Move
	for _, c := range castles {
		if c.side != side || !r.castling.Has(c.right) {
			continue
		}
		if r.pos.at(Sq(row, c.rookCol)) != (Piece{Side: side, Kind: Rook}) {
			continue
		}
		if !r.pathClear(row, c.rookCol) {
			continue
		}
		if isAttacked(&r.pos, Sq(row, c.transit), them) || isAttacked(&r.pos, Sq(row, c.kingTo), them) {
			continue
		}
		m := NewMove(from, Sq(row, c.kingTo), NoKind)
		scratch := r.pos
		scratch.applyMove(m, NoSquare)
		if isAttacked(&scratch, m.To, them) {
			continue
		}
		moves = append(moves, m)
	}
	return moves
}

// pathClear reports whether every square strictly between the king's
// original column and rookCol on row is empty.
func (r GameRecord) pathClear(row, rookCol int) bool {
	lo, hi := kingCol, rookCol
	if lo > hi {
		lo, hi = hi, lo
	}
	for col := lo + 1; col < hi; col++ {
		if !r.pos.at(Sq(row, col)).IsZero() {
			return false
		}
	}
	return true
}
