package rules_test

import (
	"errors"
	"testing"

	"chess-rules/rules"
)

func TestIsAttackedRookFiles(t *testing.T) {
	pos := board(t, `
		. . . . k . . .
		. . . . . . . .
		. . . . . . . .
		. . . . . . . .
		R . . p . . . .
		. . . . . . . .
		. . . . . . . .
		. . . . K . . .`)
	for _, alg := range []string{"a8", "a1", "b4", "c4", "d4"} {
		if !rules.IsAttacked(pos, sq(t, alg), rules.White) {
			t.Fatalf("expected %s attacked by rook on a4", alg)
		}
	}
	if rules.IsAttacked(pos, sq(t, "e4"), rules.White) {
		t.Fatalf("e4 is behind the pawn and must not be attacked")
	}
	if rules.IsAttacked(pos, sq(t, "b5"), rules.White) {
		t.Fatalf("b5 is not on a rook line")
	}
}

func TestIsAttackedPawnsOnlyDiagonally(t *testing.T) {
	pos := board(t, `
		. . . . k . . .
		. . . . . . . .
		. . . . . . . .
		. . . p . . . .
		. . . . . . . .
		. . . . . . . .
		. . . . . . . .
		. . . . K . . .`)
	if !rules.IsAttacked(pos, sq(t, "c4"), rules.Black) || !rules.IsAttacked(pos, sq(t, "e4"), rules.Black) {
		t.Fatalf("black pawn on d5 should attack c4 and e4")
	}
	if rules.IsAttacked(pos, sq(t, "d4"), rules.Black) {
		t.Fatalf("pawn must not attack the square it pushes to")
	}
	if rules.IsAttacked(pos, sq(t, "c6"), rules.Black) {
		t.Fatalf("pawn must not attack backwards")
	}
}

func TestIsAttackedKnightAndKing(t *testing.T) {
	pos := board(t, `
		. . . . k . . .
		. . . . . . . .
		. . . . . . . .
		. . . . . . . .
		. . . N . . . .
		. . . . . . . .
		. . . . . . . .
		. . . . K . . .`)
	for _, alg := range []string{"c6", "e6", "b5", "f5", "b3", "f3", "c2", "e2"} {
		if !rules.IsAttacked(pos, sq(t, alg), rules.White) {
			t.Fatalf("expected %s attacked by knight on d4", alg)
		}
	}
	if rules.IsAttacked(pos, sq(t, "d5"), rules.White) {
		t.Fatalf("d5 is adjacent to the knight, not attacked by it")
	}
	for _, alg := range []string{"d8", "f8", "d7", "e7", "f7"} {
		if !rules.IsAttacked(pos, sq(t, alg), rules.Black) {
			t.Fatalf("expected %s attacked by king on e8", alg)
		}
	}
}

func TestIsAttackedSlidersBlocked(t *testing.T) {
	pos := board(t, `
		. . . . k . . .
		. . . . . . . .
		. . . . . . . .
		. . . . . . . .
		. . . . . . . .
		. . . . . . . .
		. n . . . . . .
		Q . . . K . . .`)
	if !rules.IsAttacked(pos, sq(t, "b2"), rules.White) {
		t.Fatalf("queen attacks the knight on b2")
	}
	if rules.IsAttacked(pos, sq(t, "c3"), rules.White) {
		t.Fatalf("c3 is behind the knight on b2")
	}
	if !rules.IsAttacked(pos, sq(t, "d1"), rules.White) {
		t.Fatalf("d1 is on the queen's rank")
	}
}

func TestKingSquareRequiresExactlyOneKing(t *testing.T) {
	pos := board(t, `
		. . . . k . . .
		. . . . . . . .
		. . . . . . . .
		. . . . . . . .
		. . . . . . . .
		. . . . . . . .
		. . . . . . . .
		. . . K . K . .`)
	if _, err := rules.KingSquare(pos, rules.White); !errors.Is(err, rules.ErrInvalidState) {
		t.Fatalf("two white kings: expected ErrInvalidState, got %v", err)
	}
	if got, err := rules.KingSquare(pos, rules.Black); err != nil || got != sq(t, "e8") {
		t.Fatalf("black king: got %v, %v", got, err)
	}
	if _, err := rules.KingInCheck(pos, rules.White); !errors.Is(err, rules.ErrInvalidState) {
		t.Fatalf("KingInCheck with two kings: expected ErrInvalidState, got %v", err)
	}

	var empty rules.Position
	if _, err := rules.KingSquare(empty, rules.Black); !errors.Is(err, rules.ErrInvalidState) {
		t.Fatalf("no king: expected ErrInvalidState, got %v", err)
	}
}

func TestKingInCheck(t *testing.T) {
	rec := record(t, "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	check, err := rules.KingInCheck(rec.Position(), rules.White)
	if err != nil || !check {
		t.Fatalf("white: got %v, %v; want check", check, err)
	}
	check, err = rules.KingInCheck(rec.Position(), rules.Black)
	if err != nil || check {
		t.Fatalf("black: got %v, %v; want no check", check, err)
	}
}
