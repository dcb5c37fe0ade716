package agent

import (
	"fmt"
	"math"
	"os"
	"time"

	"golang.org/x/exp/rand"
	"gopkg.in/yaml.v3"

	"connect4/game"
)

// Default Q-learning hyperparameters.
const (
	DefaultAlpha   = 0.5 // learning rate
	DefaultGamma   = 0.9 // discount factor
	DefaultEpsilon = 0.1 // exploration probability
)

// QLearner is a tabular Q-learning player. The table maps serialized board
// states to one Q-value per column. Action choice is epsilon-greedy over the
// legal columns; learning is an off-policy update the caller drives through
// Learn after observing the reward for the last chosen action.
type QLearner struct {
	Alpha   float64
	Gamma   float64
	Epsilon float64

	table      map[string][]float64
	rng        *rand.Rand
	lastState  string
	lastAction int
}

// NewQLearner creates a learner with an empty table. A nil rng gets a
// time-seeded source.
func NewQLearner(alpha, gamma, epsilon float64, rng *rand.Rand) *QLearner {
	if rng == nil {
		rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return &QLearner{
		Alpha:      alpha,
		Gamma:      gamma,
		Epsilon:    epsilon,
		table:      make(map[string][]float64),
		rng:        rng,
		lastAction: -1,
	}
}

// serialize flattens the board into a table key.
func serialize(b *game.Board) string {
	var key [game.Rows * game.Cols]byte
	for r := 0; r < game.Rows; r++ {
		for c := 0; c < game.Cols; c++ {
			key[r*game.Cols+c] = '0' + byte(b[r][c])
		}
	}
	return string(key[:])
}

// values returns the Q-values for a state, initializing absent states to
// zero.
func (q *QLearner) values(state string) []float64 {
	vals, ok := q.table[state]
	if !ok {
		vals = make([]float64, game.Cols)
		q.table[state] = vals
	}
	return vals
}

// FindMove chooses epsilon-greedily among the legal columns and remembers
// the state/action pair for the next Learn call.
func (q *QLearner) FindMove(b *game.Board, player game.Piece) (int, error) {
	legal := b.LegalColumns()
	if len(legal) == 0 {
		return -1, ErrNoMove
	}

	state := serialize(b)
	action := legal[0]
	if q.rng.Float64() < q.Epsilon {
		action = legal[q.rng.Intn(len(legal))]
	} else {
		vals := q.values(state)
		for _, col := range legal[1:] {
			if vals[col] > vals[action] {
				action = col
			}
		}
	}

	q.lastState = state
	q.lastAction = action
	return action, nil
}

// Learn applies the Q-learning update for the last chosen action given the
// observed reward and resulting board. done marks a terminal transition and
// clears the stored state/action pair.
func (q *QLearner) Learn(reward float64, newBoard *game.Board, done bool) {
	if q.lastAction < 0 {
		return
	}

	nextQ := 0.0
	if !done {
		vals := q.values(serialize(newBoard))
		nextQ = vals[0]
		for _, v := range vals[1:] {
			nextQ = math.Max(nextQ, v)
		}
	}

	vals := q.values(q.lastState)
	vals[q.lastAction] += q.Alpha * (reward + q.Gamma*nextQ - vals[q.lastAction])

	if done {
		q.lastState = ""
		q.lastAction = -1
	}
}

// States returns the number of distinct states in the table.
func (q *QLearner) States() int {
	return len(q.table)
}

// Save writes the Q-table to path.
func (q *QLearner) Save(path string) error {
	data, err := yaml.Marshal(q.table)
	if err != nil {
		return fmt.Errorf("failed to encode Q-table: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write Q-table: %w", err)
	}
	return nil
}

// Load replaces the Q-table with the contents of path.
func (q *QLearner) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read Q-table: %w", err)
	}
	table := make(map[string][]float64)
	if err := yaml.Unmarshal(data, &table); err != nil {
		return fmt.Errorf("failed to decode Q-table: %w", err)
	}
	q.table = table
	return nil
}
