package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScore(t *testing.T) {
	t.Run("empty board scores zero for both players", func(t *testing.T) {
		b := NewBoard()
		require.Equal(t, 0, Score(b, Player1))
		require.Equal(t, 0, Score(b, Player2))
	})

	t.Run("center pieces score 3 each", func(t *testing.T) {
		b := NewBoard()
		require.NoError(t, b.Drop(CenterCol, Player1))
		require.Equal(t, centerWeight, Score(b, Player1))
		require.Equal(t, 0, Score(b, Player2))
	})

	t.Run("center control plus a vertical pair", func(t *testing.T) {
		// X X stacked in the center plus an O in the corner. X gets 2x3
		// center and +2 for the unblocked vertical pair; O sees only the
		// opposing pair at -2.
		b := NewBoard()
		require.NoError(t, b.Drop(3, Player1))
		require.NoError(t, b.Drop(3, Player1))
		require.NoError(t, b.Drop(0, Player2))
		require.Equal(t, 8, Score(b, Player1))
		require.Equal(t, -2, Score(b, Player2))
	})

	t.Run("three in a row weighs more for the defender", func(t *testing.T) {
		// XXX on the bottom row: +5+2 for the owner, -4-2 against the
		// opponent. The asymmetry is the evaluator's defensive bias.
		b := NewBoard()
		for c := 0; c < 3; c++ {
			require.NoError(t, b.Drop(c, Player1))
		}
		require.Equal(t, 7, Score(b, Player1))
		require.Equal(t, -6, Score(b, Player2))
	})

	t.Run("connected four dominates the score", func(t *testing.T) {
		b := NewBoard()
		for c := 0; c < 4; c++ {
			require.NoError(t, b.Drop(c, Player1))
		}
		require.Equal(t, 110, Score(b, Player1))
		require.Equal(t, -106, Score(b, Player2))
	})
}
