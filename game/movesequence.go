package game

import (
	"fmt"
	"strings"
)

// Move is a single relocation of a top cheese
type Move struct {
	From int
	To   int
}

func (mv Move) String() string {
	return fmt.Sprintf("(%d, %d)", mv.From, mv.To)
}

// MoveSequence is an ordered record of moves. It does not check that the
// moves are legal; replaying it through GenerateModel does.
type MoveSequence struct {
	moves []Move
}

// NewMoveSequence constructs a MoveSequence holding the given moves
func NewMoveSequence(moves ...Move) *MoveSequence {
	ms := &MoveSequence{moves: []Move{}}
	ms.moves = append(ms.moves, moves...)
	return ms
}

func (ms *MoveSequence) Add(from, to int) {
	ms.moves = append(ms.moves, Move{From: from, To: to})
}

// Get returns the i-th move
func (ms *MoveSequence) Get(i int) (Move, error) {
	if i < 0 || i >= len(ms.moves) {
		return Move{}, fmt.Errorf("%w: %d", ErrMoveIndex, i)
	}
	return ms.moves[i], nil
}

func (ms *MoveSequence) Length() int {
	return len(ms.moves)
}

// Moves returns a copy of the recorded moves
func (ms *MoveSequence) Moves() []Move {
	return append([]Move(nil), ms.moves...)
}

// GenerateModel builds a model in the standard starting configuration and
// applies every move in the sequence to it.
func (ms *MoveSequence) GenerateModel(numberOfStools, numberOfCheeses int) (*Model, error) {
	m, err := NewModel(numberOfStools)
	if err != nil {
		return nil, err
	}
	m.FillFirstStool(numberOfCheeses)

	for i, mv := range ms.moves {
		if err := m.Move(mv.From, mv.To); err != nil {
			return nil, fmt.Errorf("move %d %s: %w", i, mv, err)
		}
	}

	return m, nil
}

func (ms *MoveSequence) String() string {
	parts := make([]string, 0, len(ms.moves))
	for _, mv := range ms.moves {
		parts = append(parts, mv.String())
	}
	return "MoveSequence([" + strings.Join(parts, ", ") + "])"
}
