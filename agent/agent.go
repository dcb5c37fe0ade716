// Package agent defines the move-generator capability every engine and
// baseline player implements, plus the players that are not tree searchers:
// the uniform random mover and the tabular Q-learner. Agents carry their own
// state; there are no package-level default instances.
package agent

import (
	"time"

	"golang.org/x/exp/rand"

	"connect4/game"
	"connect4/searcher"
)

// Agent produces a move for the player to act. Implementations either
// return a column that is legal on the given board, or an error wrapping
// ErrNoMove when no move can be determined.
type Agent interface {
	FindMove(b *game.Board, player game.Piece) (int, error)
}

// ErrNoMove is the shared "no move determined" sentinel.
var ErrNoMove = searcher.ErrNoMove

// Both searchers implement the Agent capability directly.
var (
	_ Agent = (*searcher.Minimax)(nil)
	_ Agent = (*searcher.MCTS)(nil)
)

// Random plays a uniformly random legal column. It is the baseline opponent
// for strength experiments.
type Random struct {
	rng *rand.Rand
}

// NewRandom creates a random mover; a nil rng gets a time-seeded source.
func NewRandom(rng *rand.Rand) *Random {
	if rng == nil {
		rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return &Random{rng: rng}
}

func (a *Random) FindMove(b *game.Board, player game.Piece) (int, error) {
	legal := b.LegalColumns()
	if len(legal) == 0 {
		return -1, ErrNoMove
	}
	return legal[a.rng.Intn(len(legal))], nil
}
