// Package engine runs complete games between two agents on a local board.
package engine

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"connect4/agent"
	"connect4/game"
)

// Move is one played move, recorded in game order.
type Move struct {
	Col    int
	Player game.Piece
}

// Local drives a game between two agents on a single in-process board.
// Player1 always moves first.
type Local struct {
	Board   *game.Board
	History []Move

	// OnMove, when set, is called after every applied move, before the end
	// state is checked. The CLI uses it to render progress.
	OnMove func(b *game.Board, mv Move)

	agents map[game.Piece]agent.Agent
}

// NewLocal creates an engine for a fresh game between player1 and player2.
func NewLocal(player1, player2 agent.Agent) *Local {
	if player1 == nil || player2 == nil {
		panic("engine needs two agents")
	}
	return &Local{
		Board: game.NewBoard(),
		agents: map[game.Piece]agent.Agent{
			game.Player1: player1,
			game.Player2: player2,
		},
	}
}

// Run plays the game to its end and returns the winner, NoPlayer for a
// draw. An agent returning an error or an illegal column aborts the game.
func (e *Local) Run() (game.Piece, error) {
	current := game.Player1
	for {
		col, err := e.agents[current].FindMove(e.Board, current)
		if err != nil {
			return game.NoPlayer, fmt.Errorf("player %s found no move: %w", current, err)
		}
		if e.Board.CheckMove(col) != game.MoveValid {
			return game.NoPlayer, fmt.Errorf("player %s returned illegal column %d", current, col)
		}
		if err := e.Board.Drop(col, current); err != nil {
			return game.NoPlayer, fmt.Errorf("failed to apply column %d: %w", col, err)
		}

		mv := Move{Col: col, Player: current}
		e.History = append(e.History, mv)
		log.Debug().Int("move", len(e.History)).Stringer("player", current).Int("column", col).Msg("played")
		if e.OnMove != nil {
			e.OnMove(e.Board, mv)
		}

		switch e.Board.EndState(current) {
		case game.Win:
			log.Info().Stringer("winner", current).Int("moves", len(e.History)).Msg("game over")
			return current, nil
		case game.Draw:
			log.Info().Int("moves", len(e.History)).Msg("game drawn")
			return game.NoPlayer, nil
		}

		current = current.Opponent()
	}
}
