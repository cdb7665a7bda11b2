package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/minaorangina/toah/config"
	"github.com/minaorangina/toah/game"
	"github.com/minaorangina/toah/protocol"
	"github.com/minaorangina/toah/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(input))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestTourCmd(t *testing.T) {
	t.Run("reports the number of moves", func(t *testing.T) {
		out, err := run(t, "", "tour", "-c", "5")
		require.NoError(t, err)
		assert.Contains(t, out, "5 cheeses moved across 4 stools in 13 moves.")
	})

	t.Run("animates every move", func(t *testing.T) {
		out, err := run(t, "", "tour", "-c", "3", "--animate", "--delay", "0s")
		require.NoError(t, err)
		assert.Equal(t, 5, strings.Count(out, "Move "))
	})

	t.Run("prints the move sequence", func(t *testing.T) {
		out, err := run(t, "", "tour", "-c", "2", "--moves")
		require.NoError(t, err)
		assert.Contains(t, out, "MoveSequence([(0, 2), (0, 3), (2, 3)])")
	})

	t.Run("refuses stool counts it cannot tour", func(t *testing.T) {
		_, err := run(t, "", "tour", "-s", "5")
		assert.ErrorIs(t, err, solver.ErrUnsupportedStools)
	})

	t.Run("refuses an empty game", func(t *testing.T) {
		_, err := run(t, "", "tour", "-c", "0")
		assert.ErrorIs(t, err, config.ErrNoCheeses)
	})

	t.Run("refuses a tower that is too tall", func(t *testing.T) {
		_, err := run(t, "", "tour", "-c", "200")
		assert.ErrorIs(t, err, config.ErrTooManyCheeses)
	})

	t.Run("refuses an unknown log level", func(t *testing.T) {
		_, err := run(t, "", "tour", "--log-level", "chatty")
		assert.Error(t, err)
	})
}

func TestPlayCmd(t *testing.T) {
	out, err := run(t, "0\n1\nEND\n", "play", "-s", "3", "-c", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Goodbye! You made 1 moves.")
}

func TestReplayCmd(t *testing.T) {
	t.Run("rebuilds the game", func(t *testing.T) {
		out, err := run(t, "", "replay", "-s", "4", "-c", "3", "0-2", "0-1", "2-1", "0-3")
		require.NoError(t, err)
		assert.Contains(t, out, "4 moves replayed.")
		assert.NotContains(t, out, "Solved!")
	})

	t.Run("recognises a solved game", func(t *testing.T) {
		out, err := run(t, "", "replay", "-s", "3", "-c", "1", "0-2")
		require.NoError(t, err)
		assert.Contains(t, out, "1 moves replayed. Solved!")
	})

	t.Run("stops at an illegal move", func(t *testing.T) {
		_, err := run(t, "", "replay", "-s", "3", "-c", "2", "0-1", "0-1")
		assert.ErrorIs(t, err, game.ErrIllegalMove)
	})

	t.Run("rejects malformed moves", func(t *testing.T) {
		_, err := run(t, "", "replay", "0:1")
		assert.ErrorIs(t, err, protocol.ErrInvalidMove)
	})
}

func TestVersionCmd(t *testing.T) {
	t.Run("prints the version", func(t *testing.T) {
		out, err := run(t, "", "version")
		require.NoError(t, err)
		assert.Equal(t, "toah version "+Version+"\n", out)
	})

	t.Run("ignores a broken environment", func(t *testing.T) {
		t.Setenv("TOAH_STOOLS", "four")
		out, err := run(t, "", "version")
		require.NoError(t, err)
		assert.Equal(t, "toah version "+Version+"\n", out)
	})
}
