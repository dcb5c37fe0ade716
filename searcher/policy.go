package searcher

import (
	"golang.org/x/exp/rand"

	"connect4/game"
)

// rollout plays the node's position out to a terminal state, or to the depth
// cutoff when one is set, and returns the result from the perspective of the
// node's last mover: 1 win, 0.5 draw, 0 loss. A node whose game is already
// over returns without simulating a single move.
func (m *MCTS) rollout(n *node) float64 {
	b := n.board // independent copy, the node's board is never touched
	perspective := n.lastMover

	mover := n.lastMover // owner of the latest move on b
	depth := 0
	for {
		switch b.EndState(mover) {
		case game.Win:
			m.metrics.AddFullPlayout()
			if mover == perspective {
				return WinReward
			}
			return LossReward
		case game.Draw:
			m.metrics.AddFullPlayout()
			return DrawReward
		}

		if m.cutoff > 0 && depth >= m.cutoff {
			return evalReward(&b, perspective)
		}

		current := mover.Opponent()
		legal := b.LegalColumns()
		var col int
		if m.heuristic {
			col = heuristicMove(&b, current, legal, m.rng)
		} else {
			col = legal[m.rng.Intn(len(legal))]
		}
		mustDrop(&b, col, current)
		mover = current
		depth++
	}
}

// evalReward maps the sign of the static evaluation to a terminal-equivalent
// reward for positions cut off mid-rollout.
func evalReward(b *game.Board, perspective game.Piece) float64 {
	static := game.Score(b, perspective)
	switch {
	case static > 0:
		return WinReward
	case static < 0:
		return LossReward
	}
	return DrawReward
}

// heuristicMove picks a rollout move for current: an immediate win if one
// exists, else a block of the opponent's immediate win, else the center
// column, else uniformly at random.
func heuristicMove(b *game.Board, current game.Piece, legal []int, rng *rand.Rand) int {
	for _, col := range legal {
		probe := b.Copy()
		mustDrop(&probe, col, current)
		if probe.EndState(current) == game.Win {
			return col
		}
	}

	opponent := current.Opponent()
	for _, col := range legal {
		probe := b.Copy()
		mustDrop(&probe, col, opponent)
		if probe.EndState(opponent) == game.Win {
			return col
		}
	}

	if b.CheckMove(game.CenterCol) == game.MoveValid {
		return game.CenterCol
	}

	return legal[rng.Intn(len(legal))]
}
