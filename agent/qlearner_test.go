package agent

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"connect4/game"
)

func newGreedyLearner() *QLearner {
	// Epsilon 0 makes the policy deterministic for these tests.
	return NewQLearner(DefaultAlpha, DefaultGamma, 0, rand.New(rand.NewSource(1)))
}

func TestQLearnerGreedyChoice(t *testing.T) {
	t.Run("picks the highest-valued legal column", func(t *testing.T) {
		q := newGreedyLearner()
		b := game.NewBoard()
		vals := q.values(serialize(b))
		vals[5] = 1.5
		vals[2] = 0.7

		col, err := q.FindMove(b, game.Player1)

		require.NoError(t, err)
		require.Equal(t, 5, col)
	})

	t.Run("ignores full columns whatever their value", func(t *testing.T) {
		q := newGreedyLearner()
		b := game.NewBoard()
		for r := 0; r < game.Rows; r++ {
			require.NoError(t, b.Drop(5, game.Player2))
		}
		vals := q.values(serialize(b))
		vals[5] = 10
		vals[1] = 0.5

		col, err := q.FindMove(b, game.Player1)

		require.NoError(t, err)
		require.Equal(t, 1, col)
	})

	t.Run("unseen states default to column 0", func(t *testing.T) {
		q := newGreedyLearner()

		col, err := q.FindMove(game.NewBoard(), game.Player1)

		require.NoError(t, err)
		require.Equal(t, 0, col)
	})
}

func TestQLearnerUpdate(t *testing.T) {
	t.Run("terminal update moves Q toward the reward", func(t *testing.T) {
		q := newGreedyLearner()
		b := game.NewBoard()
		_, err := q.FindMove(b, game.Player1)
		require.NoError(t, err)
		after := b.Copy()
		require.NoError(t, after.Drop(0, game.Player1))

		q.Learn(1.0, &after, true)

		// Q(s,0) = 0 + alpha*(1 + 0 - 0)
		require.InDelta(t, DefaultAlpha, q.values(serialize(b))[0], 1e-9)
	})

	t.Run("non-terminal update bootstraps from the next state", func(t *testing.T) {
		q := newGreedyLearner()
		b := game.NewBoard()
		after := b.Copy()
		require.NoError(t, after.Drop(0, game.Player1))
		q.values(serialize(&after))[3] = 2.0

		_, err := q.FindMove(b, game.Player1)
		require.NoError(t, err)
		q.Learn(0, &after, false)

		// Q(s,0) = alpha*(0 + gamma*2.0)
		require.InDelta(t, DefaultAlpha*DefaultGamma*2.0, q.values(serialize(b))[0], 1e-9)
	})

	t.Run("learning without a prior action is a no-op", func(t *testing.T) {
		q := newGreedyLearner()

		q.Learn(1.0, game.NewBoard(), true)

		require.Zero(t, q.States())
	})
}

func TestQLearnerPersistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "qtable.yaml")

	q := newGreedyLearner()
	b := game.NewBoard()
	_, err := q.FindMove(b, game.Player1)
	require.NoError(t, err)
	q.Learn(1.0, b, true)
	require.NoError(t, q.Save(path))

	loaded := newGreedyLearner()
	require.NoError(t, loaded.Load(path))

	require.Equal(t, q.States(), loaded.States())
	require.InDelta(t, q.values(serialize(b))[0], loaded.values(serialize(b))[0], 1e-9)

	t.Run("loading a missing file fails", func(t *testing.T) {
		require.Error(t, newGreedyLearner().Load(filepath.Join(t.TempDir(), "absent.yaml")))
	})
}
