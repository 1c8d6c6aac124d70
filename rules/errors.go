package rules

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidMove     = errors.New("invalid move")
	ErrInvalidState    = errors.New("invalid state")
	ErrInvalidBoard    = errors.New("invalid board")
	ErrInvalidFEN      = errors.New("invalid FEN")
	ErrInvalidEncoding = errors.New("invalid move encoding")
)

// MoveError reports a move rejected by Game.MakeMove.
type MoveError struct {
	Move   Move
	Reason string
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("invalid move %s: %s", e.Move, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidMove.
func (e *MoveError) Unwrap() error { return ErrInvalidMove }

func errInvalidSquare(alg string) error {
	return fmt.Errorf("%w: bad square %q", ErrInvalidEncoding, alg)
}
