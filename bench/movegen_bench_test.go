package bench

import (
	"testing"

	"chess-rules/rules"
)

func benchLegalMoves(b *testing.B, fen string) {
	rec, err := rules.ParseFEN(fen)
	if err != nil {
		b.Fatalf("ParseFEN: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := rec.AllLegalMoves(); err != nil {
			b.Fatalf("AllLegalMoves: %v", err)
		}
	}
}

func BenchmarkLegalMoves_Initial(b *testing.B) {
	benchLegalMoves(b, rules.FENStartPos)
}

func BenchmarkLegalMoves_Kiwipete(b *testing.B) {
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	benchLegalMoves(b, fen)
}

func BenchmarkLegalMoves_Pos6(b *testing.B) {
	fen := "r4rk1/1pp1qppp/p1np1n2/2b1p3/2B1P3/2NP1N2/PPP1QPPP/R4RK1 w - - 0 10"
	benchLegalMoves(b, fen)
}

func benchGeometric(b *testing.B, fen string) {
	rec, err := rules.ParseFEN(fen)
	if err != nil {
		b.Fatalf("ParseFEN: %v", err)
	}
	pos := rec.Position()
	squares := pos.Squares(rec.Turn())
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, sq := range squares {
			_ = rules.GeometricMoves(pos, sq)
		}
	}
}

func BenchmarkGeometricMoves_Kiwipete(b *testing.B) {
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	benchGeometric(b, fen)
}

func BenchmarkIsAttacked_AllSquares(b *testing.B) {
	rec, err := rules.ParseFEN("r4rk1/1pp1qppp/p1np1n2/2b1p3/2B1P3/2NP1N2/PPP1QPPP/R4RK1 w - - 0 10")
	if err != nil {
		b.Fatalf("ParseFEN: %v", err)
	}
	pos := rec.Position()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for row := 1; row <= 8; row++ {
			for col := 1; col <= 8; col++ {
				_ = rules.IsAttacked(pos, rules.Sq(row, col), rules.Black)
			}
		}
	}
}

func BenchmarkApply_AllMoves_Initial(b *testing.B) {
	rec := rules.StartingRecord()
	moves, err := rec.AllLegalMoves()
	if err != nil {
		b.Fatalf("AllLegalMoves: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, m := range moves {
			if _, err := rec.Apply(m); err != nil {
				b.Fatalf("illegal move in cached list: %v", m)
			}
		}
	}
}
