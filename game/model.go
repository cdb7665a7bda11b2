package game

import (
	"fmt"

	"github.com/minaorangina/toah/cheese"
)

// Model is a game of Towers of Anne Hoy: a fixed number of stools holding
// stacks of cheese, where a cheese may only rest on a strictly larger one.
// The stool count is fixed when the model is constructed.
type Model struct {
	stools          [][]cheese.Cheese
	numberOfCheeses int
	numberOfMoves   int
	moves           *MoveSequence
}

// NewModel constructs an empty game with numberOfStools stools
func NewModel(numberOfStools int) (*Model, error) {
	if numberOfStools <= 0 {
		return nil, ErrNoStools
	}

	m := &Model{
		stools: make([][]cheese.Cheese, numberOfStools),
		moves:  NewMoveSequence(),
	}
	for i := range m.stools {
		m.stools[i] = []cheese.Cheese{}
	}

	return m, nil
}

// FillFirstStool puts n cheeses on stool 0, size n at the bottom and size 1 on top.
// Stool 0 is expected to be empty.
func (m *Model) FillFirstStool(n int) {
	for _, c := range cheese.Tower(n) {
		m.stools[0] = append(m.stools[0], c)
		m.numberOfCheeses++
	}
}

// Add places c on top of the given stool
func (m *Model) Add(stool int, c cheese.Cheese) error {
	if !m.validStool(stool) {
		return fmt.Errorf("%w: %d", ErrInvalidStool, stool)
	}
	if top, ok := m.top(stool); ok && !c.SmallerThan(top) {
		return fmt.Errorf("%w: %s on %s", ErrCheeseTooLarge, c, top)
	}

	m.stools[stool] = append(m.stools[stool], c)
	m.numberOfCheeses++

	return nil
}

// Move moves the top cheese of origin onto dest.
// Only moves that are applied are counted and recorded.
func (m *Model) Move(origin, dest int) error {
	if !m.validStool(origin) {
		return fmt.Errorf("%w: %d", ErrInvalidStool, origin)
	}
	if !m.validStool(dest) {
		return fmt.Errorf("%w: %d", ErrInvalidStool, dest)
	}

	moving, ok := m.top(origin)
	if !ok {
		return fmt.Errorf("%w: stool %d is empty", ErrNoCheese, origin)
	}
	if top, ok := m.top(dest); ok && !moving.SmallerThan(top) {
		return fmt.Errorf("%w: %s on %s", ErrCheeseTooLarge, moving, top)
	}

	last := len(m.stools[origin]) - 1
	m.stools[origin] = m.stools[origin][:last]
	m.stools[dest] = append(m.stools[dest], moving)

	m.numberOfMoves++
	m.moves.Add(origin, dest)

	return nil
}

// TopCheese returns the cheese on top of the given stool
func (m *Model) TopCheese(stool int) (cheese.Cheese, error) {
	if !m.validStool(stool) {
		return cheese.Cheese{}, fmt.Errorf("%w: %d", ErrInvalidStool, stool)
	}

	top, ok := m.top(stool)
	if !ok {
		return cheese.Cheese{}, fmt.Errorf("%w: stool %d is empty", ErrNoCheese, stool)
	}

	return top, nil
}

// CheeseLocation returns the index of the stool holding a cheese equal to c.
// If more than one stool holds an equal cheese, the highest index wins.
func (m *Model) CheeseLocation(c cheese.Cheese) (int, bool) {
	location, found := -1, false
	for i, stool := range m.stools {
		for _, other := range stool {
			if other.Equal(c) {
				location, found = i, true
				break
			}
		}
	}

	return location, found
}

// CheeseAt returns the cheese at the given height (0 is the bottom) of a stool,
// if there is one.
func (m *Model) CheeseAt(stool, height int) (cheese.Cheese, bool) {
	if !m.validStool(stool) || height < 0 || height >= len(m.stools[stool]) {
		return cheese.Cheese{}, false
	}

	return m.stools[stool][height], true
}

func (m *Model) NumberOfCheeses() int {
	return m.numberOfCheeses
}

func (m *Model) NumberOfMoves() int {
	return m.numberOfMoves
}

func (m *Model) NumberOfStools() int {
	return len(m.stools)
}

// Height returns the number of cheeses on a stool, or 0 for an unknown stool
func (m *Model) Height(stool int) int {
	if !m.validStool(stool) {
		return 0
	}
	return len(m.stools[stool])
}

// MoveSeq returns a copy of the moves applied so far
func (m *Model) MoveSeq() *MoveSequence {
	return NewMoveSequence(m.moves.Moves()...)
}

// Solved reports whether every cheese sits on the last stool
func (m *Model) Solved() bool {
	return m.Height(m.NumberOfStools()-1) == m.numberOfCheeses
}

// Equal reports whether both models have the same cheese at every height of every stool
func (m *Model) Equal(other *Model) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.NumberOfStools() != other.NumberOfStools() {
		return false
	}

	for i := range m.stools {
		if len(m.stools[i]) != len(other.stools[i]) {
			return false
		}
		for h, c := range m.stools[i] {
			if !c.Equal(other.stools[i][h]) {
				return false
			}
		}
	}

	return true
}

func (m *Model) validStool(stool int) bool {
	return stool >= 0 && stool < len(m.stools)
}

func (m *Model) top(stool int) (cheese.Cheese, bool) {
	s := m.stools[stool]
	if len(s) == 0 {
		return cheese.Cheese{}, false
	}
	return s[len(s)-1], true
}
