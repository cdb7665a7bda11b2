// Package solver moves a tower of cheese from the first stool to the last,
// using the Frame–Stewart strategy on four stools and the classic recursion
// on three.
package solver

import (
	"errors"
	"fmt"
)

var ErrUnsupportedStools = errors.New("tour needs three or four stools")

// Mover applies a single move of a top cheese
type Mover interface {
	Move(origin, dest int) error
}

// Model is the part of a game the tour needs
type Model interface {
	Mover
	NumberOfCheeses() int
	NumberOfStools() int
}

// Option configures a tour
type Option func(*tour)

type tour struct {
	afterMove func(origin, dest int)
}

// WithAfterMove registers fn to be called after every applied move
func WithAfterMove(fn func(origin, dest int)) Option {
	return func(t *tour) {
		t.afterMove = fn
	}
}

type hookedMover struct {
	Mover
	afterMove func(origin, dest int)
}

func (h hookedMover) Move(origin, dest int) error {
	if err := h.Mover.Move(origin, dest); err != nil {
		return err
	}
	h.afterMove(origin, dest)
	return nil
}

// Tour moves every cheese from stool 0 of m to its last stool. m must be in
// the starting configuration. Errors from m are returned as they are: they
// mean the recursion went wrong, not that the game is in a recoverable state.
func Tour(m Model, opts ...Option) error {
	t := &tour{}
	for _, opt := range opts {
		opt(t)
	}

	var mover Mover = m
	if t.afterMove != nil {
		mover = hookedMover{Mover: m, afterMove: t.afterMove}
	}

	n := m.NumberOfCheeses()
	switch m.NumberOfStools() {
	case 3:
		return ThreeStool(mover, n, 0, 1, 2)
	case 4:
		return FourStool(mover, n, 0, 1, 2, 3)
	default:
		return fmt.Errorf("%w: got %d", ErrUnsupportedStools, m.NumberOfStools())
	}
}

// ThreeStool moves n cheeses from src to dst using spare.
func ThreeStool(m Mover, n, src, spare, dst int) error {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return m.Move(src, dst)
	}

	if err := ThreeStool(m, n-1, src, dst, spare); err != nil {
		return err
	}
	if err := m.Move(src, dst); err != nil {
		return err
	}
	return ThreeStool(m, n-1, spare, src, dst)
}

// FourStool moves n cheeses from p0 to p3 using p1 and p2.
// The top n-Split(n) cheeses are parked on p2 using all four stools, the
// remaining Split(n) go to p3 on three stools, then the parked ones follow.
func FourStool(m Mover, n, p0, p1, p2, p3 int) error {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return m.Move(p0, p3)
	}

	i := Split(n)
	if err := FourStool(m, n-i, p0, p3, p1, p2); err != nil {
		return err
	}
	if err := ThreeStool(m, i, p0, p1, p3); err != nil {
		return err
	}
	return FourStool(m, n-i, p2, p0, p1, p3)
}

// Split returns the largest i with i(i+1)/2 <= n: the number of cheeses
// FourStool moves on three stools.
func Split(n int) int {
	if n < 1 {
		return 0
	}

	i := (isqrt(8*n+1) - 1) / 2
	for triangle(i+1) <= n {
		i++
	}
	for triangle(i) > n {
		i--
	}
	return i
}

// ThreeStoolMoves is the number of moves ThreeStool makes for n cheeses
func ThreeStoolMoves(n int) int {
	if n <= 0 {
		return 0
	}
	return 1<<uint(n) - 1
}

// FourStoolMoves is the number of moves FourStool makes for n cheeses
func FourStoolMoves(n int) int {
	if n <= 0 {
		return 0
	}
	if n == 1 {
		return 1
	}
	i := Split(n)
	return 2*FourStoolMoves(n-i) + ThreeStoolMoves(i)
}

// Moves is the number of moves Tour makes for n cheeses on the given number
// of stools. ok is false when Tour does not support that many stools.
func Moves(stools, n int) (moves int, ok bool) {
	switch stools {
	case 3:
		return ThreeStoolMoves(n), true
	case 4:
		return FourStoolMoves(n), true
	}
	return 0, false
}

func triangle(i int) int {
	return i * (i + 1) / 2
}

func isqrt(x int) int {
	if x < 2 {
		return x
	}
	r := x
	for {
		next := (r + x/r) / 2
		if next >= r {
			return r
		}
		r = next
	}
}
