// Package experiments runs agent-strength studies and writes their results
// as CSV for offline analysis.
package experiments

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"connect4/agent"
	"connect4/engine"
	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/searcher"
)

const NumGames = 30 // per matchup

var budgetConfigs = []metrics.AgentConfig{
	{ID: 1, Kind: "mcts", Iterations: 50},
	{ID: 2, Kind: "mcts", Iterations: 200},
	{ID: 3, Kind: "mcts", Iterations: 500},
	{ID: 4, Kind: "mcts", Iterations: 2000},
	{ID: 5, Kind: "mcts", Iterations: 500, Heuristic: true},
	{ID: 6, Kind: "minimax", Depth: searcher.DefaultDepth},
}

// RunBudgetExperiment pits each configuration against a uniform random
// baseline. More search budget should win more often; the written records
// quantify by how much.
func RunBudgetExperiment(outDir string) error {
	baseline := metrics.AgentConfig{ID: 0, Kind: "random"}
	matchUps := make([][2]metrics.AgentConfig, 0, len(budgetConfigs))
	for _, config := range budgetConfigs {
		matchUps = append(matchUps, [2]metrics.AgentConfig{config, baseline})
	}
	return runExperiment(outDir, "budget_to_strength", append(budgetConfigs, baseline), matchUps)
}

func runExperiment(outDir, name string, configs []metrics.AgentConfig, matchUps [][2]metrics.AgentConfig) error {
	writer, err := metrics.NewWriter(outDir, name)
	if err != nil {
		return err
	}
	log.Info().Str("experiment", name).Str("dir", writer.Dir()).Msg("experiment started")

	var gameRecords []metrics.GameRecord
	var moveRecords []metrics.MoveRecord
	count := 0
	for _, matchUp := range matchUps {
		log.Info().Int("agent1", matchUp[0].ID).Int("agent2", matchUp[1].ID).Msg("matchup started")
		for i := 0; i < NumGames; i++ {
			count++
			gameRecord, gameMoves, err := runGame(count, matchUp)
			if err != nil {
				return fmt.Errorf("game %d failed: %w", count, err)
			}
			gameRecords = append(gameRecords, gameRecord)
			moveRecords = append(moveRecords, gameMoves...)
		}
	}

	if err := writer.WriteAgentConfigs(configs); err != nil {
		return err
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return err
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return err
	}
	log.Info().Int("games", len(gameRecords)).Msg("experiment finished")
	return nil
}

func runGame(id int, matchUp [2]metrics.AgentConfig) (metrics.GameRecord, []metrics.MoveRecord, error) {
	players := [2]*instrumented{
		newInstrumented(matchUp[0]),
		newInstrumented(matchUp[1]),
	}

	start := time.Now()
	e := engine.NewLocal(players[0], players[1])
	winner, err := e.Run()
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}

	record := metrics.GameRecord{
		ID:     id,
		Agent1: matchUp[0].ID,
		Agent2: matchUp[1].ID,
		GameMetric: metrics.GameMetric{
			StartingPlayer: int(game.Player1),
			Winner:         int(winner),
			StartTime:      start,
			Duration:       time.Since(start),
			TotalMoves:     len(e.History),
		},
	}

	var moves []metrics.MoveRecord
	for step, mv := range e.History {
		player := players[mv.Player-game.Player1]
		searchIdx := step / 2
		if searchIdx < len(player.searches) {
			moves = append(moves, metrics.MoveRecord{
				Game: id,
				MoveMetric: metrics.MoveMetric{
					Step:         step + 1,
					Player:       int(mv.Player),
					SearchMetric: player.searches[searchIdx],
				},
			})
		}
	}
	return record, moves, nil
}

// instrumented wraps an agent built from a config and records the search
// metric of every move it makes.
type instrumented struct {
	inner    agent.Agent
	mcts     *searcher.MCTS // nil unless the config is an MCTS agent
	searches []metrics.SearchMetric
}

func newInstrumented(config metrics.AgentConfig) *instrumented {
	a := &instrumented{}
	switch config.Kind {
	case "mcts":
		options := []searcher.Option{searcher.WithMetrics()}
		if config.Iterations > 0 {
			options = append(options, searcher.WithIterations(config.Iterations))
		}
		if config.Duration > 0 {
			options = append(options, searcher.WithDuration(config.Duration))
		}
		if config.Cutoff > 0 {
			options = append(options, searcher.WithCutoff(config.Cutoff))
		}
		if config.Heuristic {
			options = append(options, searcher.WithHeuristicPolicy())
		}
		a.mcts = searcher.NewMCTS(options...)
		a.inner = a.mcts
	case "minimax":
		options := []searcher.MinimaxOption{}
		if config.Depth > 0 {
			options = append(options, searcher.WithDepth(config.Depth))
		}
		a.inner = searcher.NewMinimax(options...)
	case "random":
		a.inner = agent.NewRandom(nil)
	default:
		panic(fmt.Sprintf("unknown agent kind %q", config.Kind))
	}
	return a
}

func (a *instrumented) FindMove(b *game.Board, player game.Piece) (int, error) {
	col, err := a.inner.FindMove(b, player)
	if err != nil {
		return col, err
	}
	if a.mcts != nil {
		a.searches = append(a.searches, a.mcts.Metrics())
	} else {
		a.searches = append(a.searches, metrics.SearchMetric{})
	}
	return col, nil
}
