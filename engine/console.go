package engine

import (
	"bufio"
	"errors"
	"io"
	"log/slog"

	"github.com/minaorangina/toah/game"
	"github.com/minaorangina/toah/internal/logging"
	"github.com/minaorangina/toah/protocol"
	"github.com/minaorangina/toah/solver"
)

var (
	ErrNilModel = errors.New("console needs a model")
	ErrNoInput  = errors.New("console needs an input and an output")
)

// ConsoleOpts configures a Console
type ConsoleOpts struct {
	Model    *game.Model
	In       io.Reader
	Out      io.Writer
	Renderer *Renderer
	Logger   *slog.Logger
}

// Console lets a person solve a model by typing moves
type Console struct {
	id       string
	model    *game.Model
	scanner  *bufio.Scanner
	out      io.Writer
	renderer *Renderer
	logger   *slog.Logger
}

// NewConsole constructs a Console
func NewConsole(opts ConsoleOpts) (*Console, error) {
	if opts.Model == nil {
		return nil, ErrNilModel
	}
	if opts.In == nil || opts.Out == nil {
		return nil, ErrNoInput
	}
	if opts.Renderer == nil {
		opts.Renderer = NewPlainRenderer()
	}
	if opts.Logger == nil {
		opts.Logger = logging.NewNop()
	}

	id := NewID()
	return &Console{
		id:       id,
		model:    opts.Model,
		scanner:  bufio.NewScanner(opts.In),
		out:      opts.Out,
		renderer: opts.Renderer,
		logger:   opts.Logger.With("session", id),
	}, nil
}

func (c *Console) ID() string {
	return c.id
}

// Play runs the game until the player types the end token, the input runs
// out or the tower reaches the last stool. Illegal moves are reported to the
// player and do not end the session.
func (c *Console) Play() error {
	lastStool := c.model.NumberOfStools() - 1
	c.logger.Info("session started", "stools", c.model.NumberOfStools(), "cheeses", c.model.NumberOfCheeses())

	SendText(c.out, welcomeText, lastStool, protocol.EndToken)
	SendText(c.out, "%s\n", c.renderer.Render(c.model))

	for {
		origin, ok, err := c.askStool(originPrompt)
		if err != nil || !ok {
			return c.finish(err)
		}
		dest, ok, err := c.askStool(destPrompt)
		if err != nil || !ok {
			return c.finish(err)
		}

		if err := c.model.Move(origin, dest); err != nil {
			if !errors.Is(err, game.ErrIllegalMove) {
				return c.finish(err)
			}
			c.logger.Debug("move rejected", "origin", origin, "dest", dest, "error", err)
			SendText(c.out, illegalMoveText, err)
			continue
		}

		SendText(c.out, "%s\n", c.renderer.Render(c.model))

		if c.model.Solved() {
			SendText(c.out, solvedText, c.model.NumberOfMoves())
			if best, ok := solver.Moves(c.model.NumberOfStools(), c.model.NumberOfCheeses()); ok {
				SendText(c.out, bestText, best)
			}
			c.logger.Info("session solved", "moves", c.model.NumberOfMoves())
			return nil
		}
	}
}

// askStool prompts until the player names an existing stool. ok is false
// when the player ends the session or the input is exhausted.
func (c *Console) askStool(prompt string) (stool int, ok bool, err error) {
	lastStool := c.model.NumberOfStools() - 1
	for {
		SendText(c.out, "%s", prompt)
		if !c.scanner.Scan() {
			return 0, false, c.scanner.Err()
		}

		msg, err := protocol.Parse(c.scanner.Text())
		if err != nil || (msg.Command == protocol.SelectStool && (msg.Stool < 0 || msg.Stool > lastStool)) {
			SendText(c.out, retryStoolText, lastStool, protocol.EndToken)
			continue
		}
		if msg.Command == protocol.End {
			return 0, false, nil
		}

		return msg.Stool, true, nil
	}
}

func (c *Console) finish(err error) error {
	if err != nil {
		c.logger.Error("session failed", "error", err)
		return err
	}
	SendText(c.out, goodbyeText, c.model.NumberOfMoves())
	c.logger.Info("session ended", "moves", c.model.NumberOfMoves())
	return nil
}
