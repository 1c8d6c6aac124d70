package rules

// Perft counts leaf nodes (move sequences) from the record for a given depth.
func Perft(r GameRecord, depth int) (uint64, error) {
	if depth <= 0 {
		return 1, nil
	}
	moves, err := r.AllLegalMoves()
	if err != nil {
		return 0, err
	}
	if depth == 1 {
		return uint64(len(moves)), nil
	}
	var nodes uint64
	for _, m := range moves {
		n, err := Perft(r.play(m), depth-1)
		if err != nil {
			return 0, err
		}
		nodes += n
	}
	return nodes, nil
}

// PerftDivide returns a map from each legal root move to the number of leaf nodes
// reachable from that move at the given depth. Useful for debugging.
func PerftDivide(r GameRecord, depth int) (map[Move]uint64, error) {
	result := make(map[Move]uint64)
	if depth <= 0 {
		return result, nil
	}
	moves, err := r.AllLegalMoves()
	if err != nil {
		return nil, err
	}
	for _, m := range moves {
		cnt, err := Perft(r.play(m), depth-1)
		if err != nil {
			return nil, err
		}
		result[m] = cnt
	}
	return result, nil
}
