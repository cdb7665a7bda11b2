package cheese

import (
	"errors"
	"fmt"
)

var ErrInvalidSize = errors.New("cheese size must be positive")

// Cheese represents a round of cheese of a given (relative) size.
// Cheeses of the same size are interchangeable.
type Cheese struct {
	Size int
}

// New constructs a cheese
func New(size int) (Cheese, error) {
	if size <= 0 {
		return Cheese{}, ErrInvalidSize
	}
	return Cheese{Size: size}, nil
}

// Equal reports whether two cheeses are the same size
func (c Cheese) Equal(other Cheese) bool {
	return c.Size == other.Size
}

// SmallerThan reports whether c may rest on top of other
func (c Cheese) SmallerThan(other Cheese) bool {
	return c.Size < other.Size
}

func (c Cheese) String() string {
	return fmt.Sprintf("Cheese(%d)", c.Size)
}

// Tower returns n cheeses ordered largest (bottom) to smallest (top)
func Tower(n int) []Cheese {
	cheeses := []Cheese{}
	for size := n; size > 0; size-- {
		cheeses = append(cheeses, Cheese{Size: size})
	}
	return cheeses
}
