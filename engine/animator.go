package engine

import (
	"io"
	"time"

	"github.com/minaorangina/toah/game"
	"github.com/minaorangina/toah/solver"
)

// Animator prints a model after every move of a tour, pausing between moves
type Animator struct {
	out      io.Writer
	renderer *Renderer
	delay    time.Duration
	sleep    func(time.Duration)
}

func NewAnimator(out io.Writer, renderer *Renderer, delay time.Duration) *Animator {
	if renderer == nil {
		renderer = NewPlainRenderer()
	}
	return &Animator{
		out:      out,
		renderer: renderer,
		delay:    delay,
		sleep:    time.Sleep,
	}
}

// Option returns a solver option that animates a tour of m
func (a *Animator) Option(m *game.Model) solver.Option {
	return solver.WithAfterMove(func(origin, dest int) {
		SendText(a.out, animatedMoveText, m.NumberOfMoves(), origin, dest)
		SendText(a.out, "%s\n\n", a.renderer.Render(m))
		if a.delay > 0 {
			a.sleep(a.delay)
		}
	})
}
