package protocol

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/minaorangina/toah/game"
)

// Cmd represents a command typed at the console
type Cmd int

const (
	Null Cmd = iota
	SelectStool
	End
)

var cmdNames = []string{
	"Null",
	"SelectStool",
	"End",
}

func (c Cmd) String() string {
	if c < 0 || int(c) >= len(cmdNames) {
		return fmt.Sprintf("Cmd(%d)", int(c))
	}
	return cmdNames[c]
}

// EndToken ends a console session
const EndToken = "END"

var (
	ErrNotAStool   = errors.New("not a stool number")
	ErrInvalidMove = errors.New("moves are written as origin-destination, e.g. 0-3")
)

// InboundMessage is a parsed line of console input
type InboundMessage struct {
	Command Cmd
	Stool   int
}

// Parse reads a stool selection or the end token from a line of input.
// It does not check that the stool exists.
func Parse(line string) (InboundMessage, error) {
	text := strings.TrimSpace(line)
	if strings.EqualFold(text, EndToken) {
		return InboundMessage{Command: End}, nil
	}

	stool, err := strconv.Atoi(text)
	if err != nil {
		return InboundMessage{}, fmt.Errorf("%w: %q", ErrNotAStool, text)
	}

	return InboundMessage{Command: SelectStool, Stool: stool}, nil
}

// ParseMove reads a move written as "origin-destination"
func ParseMove(token string) (game.Move, error) {
	parts := strings.Split(strings.TrimSpace(token), "-")
	if len(parts) != 2 {
		return game.Move{}, fmt.Errorf("%w: %q", ErrInvalidMove, token)
	}

	from, err := strconv.Atoi(parts[0])
	if err != nil {
		return game.Move{}, fmt.Errorf("%w: %q", ErrInvalidMove, token)
	}
	to, err := strconv.Atoi(parts[1])
	if err != nil {
		return game.Move{}, fmt.Errorf("%w: %q", ErrInvalidMove, token)
	}

	return game.Move{From: from, To: to}, nil
}

// ParseMoves reads a list of move tokens into a sequence
func ParseMoves(tokens []string) (*game.MoveSequence, error) {
	ms := game.NewMoveSequence()
	for _, token := range tokens {
		mv, err := ParseMove(token)
		if err != nil {
			return nil, err
		}
		ms.Add(mv.From, mv.To)
	}
	return ms, nil
}
