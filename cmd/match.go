package cmd

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"connect4/engine"
	"connect4/game"
)

var (
	matchAgent1 string
	matchAgent2 string
	matchGames  int

	matchCmd = &cobra.Command{
		Use:   "match",
		Short: "Run a headless series between two agents",
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := LoadConfig(configPath)
			if err != nil {
				return err
			}

			var wins1, wins2, draws int
			for i := 0; i < matchGames; i++ {
				// Fresh agents per game: no state leaks between games.
				a1, err := newAgent(matchAgent1, config)
				if err != nil {
					return err
				}
				a2, err := newAgent(matchAgent2, config)
				if err != nil {
					return err
				}

				winner, err := engine.NewLocal(a1, a2).Run()
				if err != nil {
					return fmt.Errorf("game %d: %w", i+1, err)
				}
				switch winner {
				case game.Player1:
					wins1++
				case game.Player2:
					wins2++
				default:
					draws++
				}
				log.Info().Int("game", i+1).Stringer("winner", winner).Msg("game finished")
			}

			fmt.Printf("%s (X) %d - %d %s (O), %d draws\n",
				matchAgent1, wins1, wins2, matchAgent2, draws)
			return nil
		},
	}
)

func init() {
	matchCmd.Flags().StringVar(&matchAgent1, "agent1", "mcts", "first player: mcts, minimax, qlearner or random")
	matchCmd.Flags().StringVar(&matchAgent2, "agent2", "random", "second player: mcts, minimax, qlearner or random")
	matchCmd.Flags().IntVar(&matchGames, "games", 10, "number of games to play")
	rootCmd.AddCommand(matchCmd)
}
