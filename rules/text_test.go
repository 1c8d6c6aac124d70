package rules_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chess-rules/rules"
)

func TestLoadBoardStartingPosition(t *testing.T) {
	pos := board(t, `
		r n b q k b n r
		p p p p p p p p
		. . . . . . . .
		. . . . . . . .
		. . . . . . . .
		. . . . . . . .
		P P P P P P P P
		R N B Q K B N R`)
	assert.Equal(t, rules.StartingPosition(), pos)
}

func TestLoadBoardRoundTrip(t *testing.T) {
	for _, fen := range referenceFENs {
		pos := record(t, fen).Position()
		text := pos.String()
		back, err := rules.LoadBoard(text)
		require.NoError(t, err, fen)
		assert.Equal(t, pos, back, fen)
		assert.Equal(t, text, back.String())
	}
}

func TestLoadBoardPieceMapping(t *testing.T) {
	pos := board(t, `
		|k| | | | | | | |
		| | | | | | | | |
		| | | | | | | | |
		| | | | | | | | |
		| | | | | | | | |
		| | | | | | | | |
		| | | | | | |p| |
		|R| | | | | | |K|`)
	cases := map[string]rules.Piece{
		"a8": {Side: rules.Black, Kind: rules.King},
		"g2": {Side: rules.Black, Kind: rules.Pawn},
		"a1": {Side: rules.White, Kind: rules.Rook},
		"h1": {Side: rules.White, Kind: rules.King},
	}
	for alg, want := range cases {
		got, ok := pos.PieceAt(sq(t, alg))
		require.True(t, ok, alg)
		assert.Equal(t, want, got, alg)
	}
	assert.Len(t, pos.Squares(rules.White), 2)
	assert.Len(t, pos.Squares(rules.Black), 2)
}

func TestLoadBoardErrors(t *testing.T) {
	cases := map[string]string{
		"too few rows": `
			. . . . k . . .
			. . . . K . . .`,
		"short row": `
			. . . . k . .
			. . . . . . . .
			. . . . . . . .
			. . . . . . . .
			. . . . . . . .
			. . . . . . . .
			. . . . . . . .
			. . . . K . . .`,
		"unknown letter": `
			. . . . k . . .
			. . . . . . . .
			. . . . x . . .
			. . . . . . . .
			. . . . . . . .
			. . . . . . . .
			. . . . . . . .
			. . . . K . . .`,
		"wide cell": `
			|k| | | | | | | |
			| | | | | | | | |
			| | | | | | | | |
			| | | |QQ| | | | |
			| | | | | | | | |
			| | | | | | | | |
			| | | | | | | | |
			|K| | | | | | | |`,
	}
	for name, text := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := rules.LoadBoard(text)
			require.Error(t, err)
			assert.True(t, errors.Is(err, rules.ErrInvalidBoard), "got %v", err)
		})
	}
}

func TestMustLoadBoardPanics(t *testing.T) {
	assert.Panics(t, func() { rules.MustLoadBoard("") })
}
