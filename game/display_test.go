package game

import (
	"strings"
	"testing"

	"github.com/minaorangina/toah/cheese"
	utils "github.com/minaorangina/toah/internal"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	t.Run("draws cheeses centred over their stools", func(t *testing.T) {
		m := newFilledModel(t, 3, 2)
		blank := "     " + stoolSpacing

		want := strings.Join([]string{
			"  -  " + stoolSpacing + blank + blank,
			" --- " + stoolSpacing + blank + blank,
			"=====  =====  =====  ",
		}, "\n")

		utils.AssertStringEquality(t, m.String(), want)
	})

	t.Run("follows the cheese as it moves", func(t *testing.T) {
		m := newFilledModel(t, 2, 1)
		require.NoError(t, m.Move(0, 1))

		utils.AssertStringEquality(t, m.String(), "      -   \n===  ===  ")
	})

	t.Run("an empty game is just the stools", func(t *testing.T) {
		m, _ := NewModel(2)
		utils.AssertStringEquality(t, m.String(), "=  =  ")
	})

	t.Run("widens for a cheese larger than the count", func(t *testing.T) {
		m, _ := NewModel(1)
		require.NoError(t, m.Add(0, cheese.Cheese{Size: 2}))
		utils.AssertStringEquality(t, m.String(), " ---   \n=====  ")
	})
}
