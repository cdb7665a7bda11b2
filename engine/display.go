package engine

import (
	"fmt"
	"io"
	"strings"

	"github.com/minaorangina/toah/game"
	"github.com/muesli/termenv"
	uuid "github.com/satori/go.uuid"
)

const (
	welcomeText = "Welcome to the TOWER OF ANNE HOY\n" +
		"Move the whole tower of cheese from the first stool to the last one.\n" +
		"Stools are numbered from 0 to %d. Enter a stool number to pick up its top cheese,\n" +
		"then the number of the stool to put it on.\n" +
		"You may only stack smaller cheeses on top of larger ones.\n" +
		"To exit the game, type '%s' at any time.\n\n"
	originPrompt     = "<Enter a stool index to move its top cheese> "
	destPrompt       = "<Enter a stool index to place the cheese on> "
	retryStoolText   = "Invalid entry. Please enter a stool number between 0 and %d, or '%s'.\n"
	illegalMoveText  = "You can't do that: %s\n"
	solvedText       = "\nYou did it in %d moves!\n"
	bestText         = "The computer tour takes %d moves.\n"
	goodbyeText      = "\nGoodbye! You made %d moves.\n"
	animatedMoveText = "Move %d: stool %d -> stool %d\n"
)

const (
	cheeseColour = "#f6c744"
	stoolColour  = "#8b5a2b"
	cheeseMark   = '-'
	stoolMark    = '='
)

// NewID constructs a session ID
func NewID() string {
	return uuid.NewV4().String()
}

func SendText(w io.Writer, text string, a ...interface{}) {
	fmt.Fprintf(w, text, a...)
}

// Renderer draws a model for the terminal, colouring cheeses and stools
// when the terminal supports it.
type Renderer struct {
	profile termenv.Profile
}

// NewRenderer returns a Renderer for the colour profile of stdout
func NewRenderer() *Renderer {
	return &Renderer{profile: termenv.ColorProfile()}
}

// NewPlainRenderer returns a Renderer that never emits escape codes
func NewPlainRenderer() *Renderer {
	return &Renderer{profile: termenv.Ascii}
}

func (r *Renderer) Render(m *game.Model) string {
	lines := strings.Split(m.String(), "\n")
	last := len(lines) - 1
	for i, line := range lines {
		if i == last {
			lines[i] = r.colourRuns(line, stoolMark, stoolColour)
			continue
		}
		lines[i] = r.colourRuns(line, cheeseMark, cheeseColour)
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) colourRuns(line string, mark byte, colour string) string {
	var b strings.Builder
	for i := 0; i < len(line); {
		if line[i] != mark {
			b.WriteByte(line[i])
			i++
			continue
		}

		j := i
		for j < len(line) && line[j] == mark {
			j++
		}
		b.WriteString(r.profile.String(line[i:j]).Foreground(r.profile.Color(colour)).String())
		i = j
	}
	return b.String()
}
