package searcher

import (
	"math"
	"time"

	"golang.org/x/exp/rand"

	"connect4/game"
)

// DefaultDepth is the fixed minimax search depth in plies.
const DefaultDepth = 5

type MinimaxOption func(m *Minimax)

// WithDepth overrides the search depth.
func WithDepth(depth int) MinimaxOption {
	return func(m *Minimax) {
		if depth > 0 {
			m.depth = depth
		}
	}
}

// WithMinimaxRand sets the source used for the uniform fallback move.
func WithMinimaxRand(rng *rand.Rand) MinimaxOption {
	return func(m *Minimax) {
		if rng != nil {
			m.rng = rng
		}
	}
}

// Minimax is a depth-bounded adversarial searcher with alpha-beta pruning
// over the static evaluation in game.Score. For a fixed board, player and
// depth the returned column is deterministic.
type Minimax struct {
	depth int
	rng   *rand.Rand
}

func NewMinimax(options ...MinimaxOption) *Minimax {
	m := &Minimax{
		depth: DefaultDepth,
		rng:   rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// FindMove returns the best column for player, or ErrNoMove when the
// position has no legal columns.
func (m *Minimax) FindMove(b *game.Board, player game.Piece) (int, error) {
	legal := b.LegalColumns()
	if len(legal) == 0 {
		return -1, ErrNoMove
	}

	_, col := m.search(b, m.depth, math.Inf(-1), math.Inf(1), true, player)
	if col < 0 {
		// No column improved on the +-Inf bounds. Should not happen on a
		// non-terminal position; fall back to a uniform legal move rather
		// than returning an invalid one.
		col = legal[m.rng.Intn(len(legal))]
	}
	return col, nil
}

// search returns the minimax value of b and the column achieving it, or -1
// at a terminal node. alpha and beta bound the values still worth exploring;
// pruning changes the work done, never the returned value.
func (m *Minimax) search(b *game.Board, depth int, alpha, beta float64, maximizing bool, root game.Piece) (float64, int) {
	legal := b.LegalColumns()
	if depth == 0 || b.EndState(root) != game.Playing || len(legal) == 0 {
		return float64(game.Score(b, root)), -1
	}

	mover := root
	if !maximizing {
		mover = root.Opponent()
	}
	bestCol := -1

	if maximizing {
		value := math.Inf(-1)
		for _, col := range legal {
			child := b.Copy()
			mustDrop(&child, col, mover)
			score, _ := m.search(&child, depth-1, alpha, beta, false, root)
			if score > value {
				value, bestCol = score, col
			}
			alpha = math.Max(alpha, value)
			if alpha >= beta {
				break
			}
		}
		return value, bestCol
	}

	value := math.Inf(1)
	for _, col := range legal {
		child := b.Copy()
		mustDrop(&child, col, mover)
		score, _ := m.search(&child, depth-1, alpha, beta, true, root)
		if score < value {
			value, bestCol = score, col
		}
		beta = math.Min(beta, value)
		if alpha >= beta {
			break
		}
	}
	return value, bestCol
}
