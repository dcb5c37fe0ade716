// Package searcher implements the two move-finding engines: depth-bounded
// minimax with alpha-beta pruning, and Monte Carlo tree search with UCT
// selection.
package searcher

import (
	"errors"
	"fmt"

	"golang.org/x/exp/slices"

	"connect4/game"
)

// ErrNoMove signals that no move could be determined: the position has no
// legal columns, or the search ran with an empty budget.
var ErrNoMove = errors.New("no move determined")

// Rewards from a single playout, always relative to one player's perspective.
const (
	WinReward  = 1.0
	DrawReward = 0.5
	LossReward = 0.0
)

// mustDrop plays a pre-validated move. Both engines filter candidates through
// LegalColumns, so a failure here is a defect in the search itself.
func mustDrop(b *game.Board, col int, piece game.Piece) {
	if err := b.Drop(col, piece); err != nil {
		panic(fmt.Sprintf("searcher played illegal column %d: %v", col, err))
	}
}

// centerFirst orders columns by distance from the center, nearest first,
// keeping the ascending-column order within each distance. Expanding strong
// candidates first biases early tree growth toward them.
func centerFirst(cols []int) []int {
	ordered := slices.Clone(cols)
	slices.SortStableFunc(ordered, func(a, b int) int {
		return distance(a) - distance(b)
	})
	return ordered
}

func distance(col int) int {
	if col < game.CenterCol {
		return game.CenterCol - col
	}
	return col - game.CenterCol
}
