package game

import (
	"testing"

	utils "github.com/minaorangina/toah/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveSequence(t *testing.T) {
	t.Run("records moves in order", func(t *testing.T) {
		ms := NewMoveSequence()
		ms.Add(0, 1)
		ms.Add(0, 2)

		utils.AssertEqual(t, ms.Length(), 2)

		mv, err := ms.Get(1)
		utils.AssertNoError(t, err)
		utils.AssertEqual(t, mv, Move{From: 0, To: 2})
	})

	t.Run("out of range lookups fail", func(t *testing.T) {
		ms := NewMoveSequence(Move{0, 1})
		_, err := ms.Get(1)
		assert.ErrorIs(t, err, ErrMoveIndex)
		_, err = ms.Get(-1)
		assert.ErrorIs(t, err, ErrMoveIndex)
	})

	t.Run("Moves returns a copy", func(t *testing.T) {
		ms := NewMoveSequence(Move{0, 1})
		moves := ms.Moves()
		moves[0] = Move{2, 3}

		mv, _ := ms.Get(0)
		utils.AssertEqual(t, mv, Move{0, 1})
	})

	t.Run("the model's history cannot be rewritten by callers", func(t *testing.T) {
		m := newFilledModel(t, 3, 2)
		require.NoError(t, m.Move(0, 1))

		m.MoveSeq().Add(1, 2)
		utils.AssertEqual(t, m.MoveSeq().Length(), 1)
	})

	t.Run("string form", func(t *testing.T) {
		ms := NewMoveSequence(Move{0, 1}, Move{0, 2})
		utils.AssertStringEquality(t, ms.String(), "MoveSequence([(0, 1), (0, 2)])")
	})
}

func TestGenerateModel(t *testing.T) {
	t.Run("replaying history rebuilds the same model", func(t *testing.T) {
		m := newFilledModel(t, 4, 4)
		for _, mv := range []Move{{0, 1}, {0, 2}, {1, 2}, {0, 3}, {0, 1}} {
			require.NoError(t, m.Move(mv.From, mv.To))
		}

		replayed, err := m.MoveSeq().GenerateModel(4, 4)
		utils.AssertNoError(t, err)

		assert.True(t, replayed.Equal(m))
		utils.AssertEqual(t, replayed.NumberOfMoves(), m.NumberOfMoves())
		utils.AssertDeepEqual(t, replayed.MoveSeq().Moves(), m.MoveSeq().Moves())
	})

	t.Run("an illegal recorded move is reported", func(t *testing.T) {
		ms := NewMoveSequence(Move{0, 1}, Move{0, 1})
		_, err := ms.GenerateModel(3, 3)
		assert.ErrorIs(t, err, ErrIllegalMove)
	})

	t.Run("an invalid stool count is reported", func(t *testing.T) {
		_, err := NewMoveSequence().GenerateModel(0, 3)
		assert.ErrorIs(t, err, ErrNoStools)
	})
}
