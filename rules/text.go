package rules

import (
	"fmt"
	"strings"
)

// LoadBoard parses a textual board description into a Position.
//
// The text holds eight rows, the first being row 8. A row is either
// pipe-delimited, one character per cell with a space for an empty square:
//
//	|r|n|b|q|k|b|n|r|
//
// or eight whitespace-separated single characters with '.' for an empty square:
//
//	r n b q k b n r
//
// Upper-case letters are White, lower-case Black: p pawn, n knight, b bishop,
// r rook, q queen, k king. Blank lines are ignored.
func LoadBoard(text string) (Position, error) {
	var pos Position
	rows := make([]string, 0, 8)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		rows = append(rows, line)
	}
	if len(rows) != 8 {
		return pos, fmt.Errorf("%w: expected 8 rows, got %d", ErrInvalidBoard, len(rows))
	}

	for i, line := range rows {
		row := 8 - i
		cells, err := splitCells(line)
		if err != nil {
			return pos, fmt.Errorf("%w: row %d: %v", ErrInvalidBoard, row, err)
		}
		for col, cell := range cells {
			if cell == ' ' || cell == '.' {
				continue
			}
			pc, ok := pieceFromLetter(cell)
			if !ok {
				return pos, fmt.Errorf("%w: row %d: unrecognized piece character %q", ErrInvalidBoard, row, cell)
			}
			pos.SetPiece(Sq(row, col+1), pc)
		}
	}
	return pos, nil
}

// MustLoadBoard is LoadBoard for fixtures known to be valid; it panics on error.
func MustLoadBoard(text string) Position {
	pos, err := LoadBoard(text)
	if err != nil {
		panic(err)
	}
	return pos
}

// splitCells returns the eight cell characters of one row.
func splitCells(line string) ([]byte, error) {
	var cells []byte
	if strings.Contains(line, "|") {
		line = strings.TrimSpace(line)
		line = strings.TrimPrefix(line, "|")
		line = strings.TrimSuffix(line, "|")
		for _, cell := range strings.Split(line, "|") {
			if len(cell) != 1 {
				return nil, fmt.Errorf("cell %q is not a single character", cell)
			}
			cells = append(cells, cell[0])
		}
	} else {
		for _, cell := range strings.Fields(line) {
			if len(cell) != 1 {
				return nil, fmt.Errorf("cell %q is not a single character", cell)
			}
			cells = append(cells, cell[0])
		}
	}
	if len(cells) != 8 {
		return nil, fmt.Errorf("expected 8 cells, got %d", len(cells))
	}
	return cells, nil
}
