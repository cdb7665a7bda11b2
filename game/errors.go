package game

import (
	"errors"
	"fmt"
)

// ErrIllegalMove is wrapped by every error the model returns when a move,
// placement or lookup breaks the rules of the game.
var ErrIllegalMove = errors.New("illegal move")

var (
	ErrNoStools       = errors.New("a game needs at least one stool")
	ErrInvalidStool   = fmt.Errorf("%w: invalid stool index", ErrIllegalMove)
	ErrNoCheese       = fmt.Errorf("%w: there is no cheese to be moved", ErrIllegalMove)
	ErrCheeseTooLarge = fmt.Errorf("%w: can only stack cheese of smaller sizes", ErrIllegalMove)
	ErrMoveIndex      = errors.New("move index out of range")
)
