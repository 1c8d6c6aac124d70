package rules_test

import (
	"sort"
	"testing"

	"chess-rules/rules"
)

// Reference positions used across the package tests.
const (
	kiwipeteFEN  = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	position3FEN = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	position4FEN = "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"
	position5FEN = "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8"
	enPassantFEN = "k7/8/8/3pP3/8/8/8/7K w - d6 0 2"
	promotionFEN = "1n5k/P7/8/8/8/8/8/7K w - - 0 1"
)

var referenceFENs = []string{
	rules.FENStartPos,
	kiwipeteFEN,
	position3FEN,
	position4FEN,
	position5FEN,
	enPassantFEN,
	promotionFEN,
}

func sq(t *testing.T, alg string) rules.Square {
	t.Helper()
	s, err := rules.ParseSquare(alg)
	if err != nil {
		t.Fatalf("ParseSquare(%q): %v", alg, err)
	}
	return s
}

func mv(t *testing.T, text string) rules.Move {
	t.Helper()
	m, err := rules.ParseMove(text)
	if err != nil {
		t.Fatalf("ParseMove(%q): %v", text, err)
	}
	return m
}

func record(t *testing.T, fen string) rules.GameRecord {
	t.Helper()
	rec, err := rules.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return rec
}

func board(t *testing.T, text string) rules.Position {
	t.Helper()
	pos, err := rules.LoadBoard(text)
	if err != nil {
		t.Fatalf("LoadBoard: %v", err)
	}
	return pos
}

// moveStrings renders moves in coordinate form, sorted.
func moveStrings(moves []rules.Move) []string {
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.String())
	}
	sort.Strings(out)
	return out
}

func containsMove(moves []rules.Move, m rules.Move) bool {
	for _, x := range moves {
		if x == m {
			return true
		}
	}
	return false
}
