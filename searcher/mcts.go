package searcher

import (
	"time"

	"golang.org/x/exp/rand"

	"connect4/experiments/metrics"
	"connect4/game"
)

// Defaults for the MCTS hyperparameters.
const (
	DefaultExploration = 1.4
	DefaultCutoff      = 6 // rollout depth before falling back to game.Score
)

type Option func(m *MCTS)

// WithIterations sets a fixed iteration budget.
func WithIterations(iterations int) Option {
	return func(m *MCTS) {
		if iterations > 0 {
			m.iterations = iterations
		}
	}
}

// WithDuration sets a wall-clock budget, checked between iterations only:
// the search may overrun by at most one iteration's cost.
func WithDuration(duration time.Duration) Option {
	return func(m *MCTS) {
		if duration > 0 {
			m.duration = duration
		}
	}
}

// WithExploration sets the UCT exploration constant.
func WithExploration(c float64) Option {
	return func(m *MCTS) {
		if c > 0 {
			m.exploration = c
		}
	}
}

// WithCutoff bounds rollout depth; beyond it the sign of the static
// evaluation stands in for the playout result.
func WithCutoff(depth int) Option {
	return func(m *MCTS) {
		if depth > 0 {
			m.cutoff = depth
		}
	}
}

// WithHeuristicPolicy replaces uniform rollout moves with the
// win / block / center / random policy and bounds rollouts at DefaultCutoff
// unless WithCutoff set one.
func WithHeuristicPolicy() Option {
	return func(m *MCTS) {
		m.heuristic = true
	}
}

// WithRand sets the rollout random source, making searches reproducible.
func WithRand(rng *rand.Rand) Option {
	return func(m *MCTS) {
		if rng != nil {
			m.rng = rng
		}
	}
}

// WithMetrics collects per-search metrics.
func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = metrics.NewCollector()
	}
}

// MCTS is a Monte Carlo tree searcher: each iteration selects a leaf by UCT,
// expands one child, plays the position out, and backpropagates the result.
// The tree lives for a single FindMove call; nothing is reused across moves.
type MCTS struct {
	iterations  int
	duration    time.Duration
	exploration float64
	cutoff      int
	heuristic   bool
	rng         *rand.Rand
	metrics     metrics.Collector
}

func NewMCTS(options ...Option) *MCTS {
	m := &MCTS{
		exploration: DefaultExploration,
		rng:         rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		metrics:     metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.heuristic && m.cutoff == 0 {
		m.cutoff = DefaultCutoff
	}
	return m
}

// FindMove runs the search budget and returns the most-visited root move.
// It returns ErrNoMove when the position has no legal columns or when no
// budget was configured, never an illegal column.
func (m *MCTS) FindMove(b *game.Board, player game.Piece) (int, error) {
	if len(b.LegalColumns()) == 0 {
		return -1, ErrNoMove
	}

	t := newTree(b, player.Opponent())
	m.metrics.Start(m.cutoff, m.heuristic)

	switch {
	case m.iterations > 0:
		for i := 0; i < m.iterations; i++ {
			m.simulate(t)
		}
	case m.duration > 0:
		start := time.Now()
		for time.Since(start) < m.duration {
			m.simulate(t)
		}
	default:
		return -1, ErrNoMove
	}

	m.metrics.SetTreeSize(len(t.nodes))
	return t.bestMove()
}

// Metrics returns the metrics of the latest search, when collected.
func (m *MCTS) Metrics() metrics.SearchMetric {
	return m.metrics.Complete()
}

// simulate runs one select-expand-rollout-backup iteration.
func (m *MCTS) simulate(t *tree) {
	id := m.selectOrExpand(t)
	reward := m.rollout(t.node(id))
	t.backup(id, reward)
	m.metrics.AddIteration()
}

// selectOrExpand descends through fully expanded nodes by UCT score and
// materializes one new child at the first expandable node. A terminal node
// is returned as is.
func (m *MCTS) selectOrExpand(t *tree) nodeID {
	id := rootID
	for {
		n := t.node(id)
		if len(n.untried) > 0 {
			return t.expand(id)
		}
		if len(n.children) == 0 { // terminal
			return id
		}
		id = t.selectChild(id, m.exploration)
	}
}
