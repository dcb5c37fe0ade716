package cmd

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"connect4/game"
	"connect4/searcher"
)

func TestHumanAgent(t *testing.T) {
	t.Run("accepts the first legal column", func(t *testing.T) {
		var out bytes.Buffer
		h := &humanAgent{scanner: bufio.NewScanner(strings.NewReader("4\n")), out: &out}

		col, err := h.FindMove(game.NewBoard(), game.Player1)

		require.NoError(t, err)
		require.Equal(t, 4, col)
	})

	t.Run("re-prompts on garbage, out-of-bounds and full columns", func(t *testing.T) {
		b := game.NewBoard()
		for r := 0; r < game.Rows; r++ {
			require.NoError(t, b.Drop(2, game.Player1))
		}
		var out bytes.Buffer
		h := &humanAgent{scanner: bufio.NewScanner(strings.NewReader("x\n9\n2\n0\n")), out: &out}

		col, err := h.FindMove(b, game.Player2)

		require.NoError(t, err)
		require.Equal(t, 0, col)
		require.Contains(t, out.String(), "Please enter an integer")
		require.Contains(t, out.String(), "out of bounds")
		require.Contains(t, out.String(), "column is full")
	})

	t.Run("closed input is an error", func(t *testing.T) {
		var out bytes.Buffer
		h := &humanAgent{scanner: bufio.NewScanner(strings.NewReader("")), out: &out}

		_, err := h.FindMove(game.NewBoard(), game.Player1)

		require.Error(t, err)
	})
}

func TestLoadConfig(t *testing.T) {
	t.Run("missing path yields defaults", func(t *testing.T) {
		config, err := LoadConfig("")

		require.NoError(t, err)
		require.Equal(t, searcher.DefaultDepth, config.Minimax.Depth)
		require.Equal(t, 2000, config.MCTS.Iterations)
	})

	t.Run("file values overlay the defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("minimax:\n  depth: 7\nmcts:\n  heuristic: true\n"), 0644))

		config, err := LoadConfig(path)

		require.NoError(t, err)
		require.Equal(t, 7, config.Minimax.Depth)
		require.True(t, config.MCTS.Heuristic)
		require.Equal(t, 2000, config.MCTS.Iterations, "untouched values keep their defaults")
	})

	t.Run("unreadable file is an error", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
	})
}

func TestNewAgent(t *testing.T) {
	config := DefaultConfig()

	for _, kind := range []string{"minimax", "mcts", "qlearner", "random"} {
		a, err := newAgent(kind, config)
		require.NoError(t, err, kind)
		require.NotNil(t, a, kind)
	}

	_, err := newAgent("alphazero", config)
	require.Error(t, err)
}
