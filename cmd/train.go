package cmd

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"connect4/agent"
	"connect4/game"
)

// Learning rewards: winning 1, losing -1, anything else 0.
const (
	trainWinReward  = 1.0
	trainLossReward = -1.0
)

var (
	trainEpisodes int
	trainOut      string

	trainCmd = &cobra.Command{
		Use:   "train",
		Short: "Train the Q-learner against a random opponent and save its table",
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := LoadConfig(configPath)
			if err != nil {
				return err
			}

			q := agent.NewQLearner(config.QLearner.Alpha, config.QLearner.Gamma, config.QLearner.Epsilon, nil)
			if path := config.QLearner.TablePath; path != "" {
				if err := q.Load(path); err != nil {
					log.Warn().Err(err).Msg("starting with an empty Q-table")
				}
			}

			opponent := agent.NewRandom(nil)
			var wins int
			for episode := 0; episode < trainEpisodes; episode++ {
				winner, err := trainEpisode(q, opponent)
				if err != nil {
					return fmt.Errorf("episode %d: %w", episode+1, err)
				}
				if winner == game.Player1 {
					wins++
				}
				if (episode+1)%1000 == 0 {
					log.Info().Int("episode", episode+1).Int("wins", wins).Int("states", q.States()).Msg("training progress")
				}
			}

			if err := q.Save(trainOut); err != nil {
				return err
			}
			fmt.Printf("trained %d episodes, won %d, learned %d states, table saved to %s\n",
				trainEpisodes, wins, q.States(), trainOut)
			return nil
		},
	}
)

func init() {
	trainCmd.Flags().IntVar(&trainEpisodes, "episodes", 10000, "number of self-play episodes")
	trainCmd.Flags().StringVar(&trainOut, "out", "qtable.yaml", "file to save the learned Q-table to")
	rootCmd.AddCommand(trainCmd)
}

// trainEpisode plays one game with the learner as Player1, feeding it a
// reward after each opponent reply: the learner observes the state its next
// decision starts from.
func trainEpisode(q *agent.QLearner, opponent agent.Agent) (game.Piece, error) {
	b := game.NewBoard()
	for {
		col, err := q.FindMove(b, game.Player1)
		if err != nil {
			q.Learn(0, b, true)
			return game.NoPlayer, nil // learner found a full board
		}
		if err := b.Drop(col, game.Player1); err != nil {
			return game.NoPlayer, err
		}
		switch b.EndState(game.Player1) {
		case game.Win:
			q.Learn(trainWinReward, b, true)
			return game.Player1, nil
		case game.Draw:
			q.Learn(0, b, true)
			return game.NoPlayer, nil
		}

		reply, err := opponent.FindMove(b, game.Player2)
		if err != nil {
			return game.NoPlayer, err
		}
		if err := b.Drop(reply, game.Player2); err != nil {
			return game.NoPlayer, err
		}
		switch b.EndState(game.Player2) {
		case game.Win:
			q.Learn(trainLossReward, b, true)
			return game.Player2, nil
		case game.Draw:
			q.Learn(0, b, true)
			return game.NoPlayer, nil
		}

		q.Learn(0, b, false)
	}
}
