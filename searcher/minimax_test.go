package searcher

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"connect4/game"
)

type mv struct {
	col   int
	piece game.Piece
}

// playOut drops the given (column, piece) pairs onto a fresh board.
func playOut(t *testing.T, moves ...mv) *game.Board {
	t.Helper()
	b := game.NewBoard()
	for _, m := range moves {
		require.NoError(t, b.Drop(m.col, m.piece))
	}
	return b
}

func TestMinimaxBaseCase(t *testing.T) {
	// Depth 0 is terminal: the static evaluation and no column.
	m := NewMinimax()
	b := playOut(t, mv{3, game.Player1}, mv{3, game.Player1}, mv{0, game.Player2})

	value, col := m.search(b, 0, math.Inf(-1), math.Inf(1), true, game.Player1)

	require.Equal(t, float64(game.Score(b, game.Player1)), value)
	require.Equal(t, -1, col)
}

func TestMinimaxImmediateWin(t *testing.T) {
	// X holds columns 0-2 on the bottom row; column 3 completes the four.
	b := playOut(t,
		mv{0, game.Player1}, mv{1, game.Player1}, mv{2, game.Player1},
		mv{0, game.Player2}, mv{1, game.Player2},
	)

	for _, depth := range []int{1, 3, 5} {
		m := NewMinimax(WithDepth(depth))
		col, err := m.FindMove(b, game.Player1)
		require.NoError(t, err)
		require.Equal(t, 3, col, "depth %d should take the win", depth)
	}
}

func TestMinimaxImmediateBlock(t *testing.T) {
	// O threatens to complete at column 3; X must block.
	b := playOut(t,
		mv{0, game.Player2}, mv{1, game.Player2}, mv{2, game.Player2},
		mv{0, game.Player1}, mv{1, game.Player1},
	)

	for _, depth := range []int{2, DefaultDepth} {
		m := NewMinimax(WithDepth(depth))
		col, err := m.FindMove(b, game.Player1)
		require.NoError(t, err)
		require.Equal(t, 3, col, "depth %d should block", depth)
	}
}

func TestMinimaxDeterminism(t *testing.T) {
	b := playOut(t,
		mv{3, game.Player1}, mv{3, game.Player2}, mv{2, game.Player1},
		mv{4, game.Player2}, mv{5, game.Player1}, mv{1, game.Player2},
		mv{2, game.Player1},
	)
	m := NewMinimax()

	first, err := m.FindMove(b, game.Player2)
	require.NoError(t, err)
	second, err := m.FindMove(b, game.Player2)
	require.NoError(t, err)

	require.Equal(t, first, second)
	require.Contains(t, b.LegalColumns(), first)
}

// plainMinimax searches the same tree without pruning, for the equivalence
// check below.
func plainMinimax(b *game.Board, depth int, maximizing bool, root game.Piece) float64 {
	legal := b.LegalColumns()
	if depth == 0 || b.EndState(root) != game.Playing || len(legal) == 0 {
		return float64(game.Score(b, root))
	}

	mover := root
	if !maximizing {
		mover = root.Opponent()
	}

	value := math.Inf(-1)
	if !maximizing {
		value = math.Inf(1)
	}
	for _, col := range legal {
		child := b.Copy()
		mustDrop(&child, col, mover)
		score := plainMinimax(&child, depth-1, !maximizing, root)
		if maximizing && score > value || !maximizing && score < value {
			value = score
		}
	}
	return value
}

func TestAlphaBetaEquivalence(t *testing.T) {
	// Pruning changes the work done, never the value.
	b := playOut(t,
		mv{3, game.Player1}, mv{3, game.Player2}, mv{2, game.Player1},
		mv{4, game.Player2}, mv{5, game.Player1}, mv{1, game.Player2},
		mv{2, game.Player1},
	)
	m := NewMinimax()

	for depth := 1; depth <= 4; depth++ {
		pruned, _ := m.search(b, depth, math.Inf(-1), math.Inf(1), true, game.Player1)
		unpruned := plainMinimax(b, depth, true, game.Player1)
		require.Equal(t, unpruned, pruned, "depth %d", depth)
	}
}

func TestMinimaxNoLegalMoves(t *testing.T) {
	b, err := game.ParseBoard(fullBoard)
	require.NoError(t, err)
	m := NewMinimax(WithMinimaxRand(rand.New(rand.NewSource(1))))

	_, err = m.FindMove(b, game.Player1)

	require.ErrorIs(t, err, ErrNoMove)
}

func TestMinimaxReturnsLegalColumn(t *testing.T) {
	// One open column left: the engine must find it regardless of value.
	b, err := game.ParseBoard(fullBoard)
	require.NoError(t, err)
	for r := 0; r < game.Rows; r++ {
		b[r][5] = game.NoPlayer
	}
	m := NewMinimax()

	col, err := m.FindMove(b, game.Player2)

	require.NoError(t, err)
	require.Equal(t, 5, col)
}

// A finished drawn game used as a full-board fixture.
const fullBoard = `|==============|
|O O X X X O O |
|X X X O O O X |
|X O O O X O O |
|X X X O X X X |
|O O O X O O O |
|O X X X O X X |
|==============|
|0 1 2 3 4 5 6 |`
