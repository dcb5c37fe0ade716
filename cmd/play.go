package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"connect4/agent"
	"connect4/engine"
	"connect4/game"
)

var opponentKind string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play an interactive game against an agent (or another human)",
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := LoadConfig(configPath)
		if err != nil {
			return err
		}

		human := &humanAgent{scanner: bufio.NewScanner(os.Stdin), out: os.Stdout}
		var opponent agent.Agent
		if opponentKind == "human" {
			opponent = human
		} else {
			opponent, err = newAgent(opponentKind, config)
			if err != nil {
				return err
			}
		}

		e := engine.NewLocal(human, opponent)
		fmt.Println(renderBoard(e.Board))
		e.OnMove = func(b *game.Board, mv engine.Move) {
			if mv.Player == game.Player2 && opponentKind != "human" {
				fmt.Printf("%s plays column %d\n", opponentKind, mv.Col)
			}
			fmt.Println(renderBoard(b))
		}

		winner, err := e.Run()
		if err != nil {
			return err
		}
		switch winner {
		case game.NoPlayer:
			fmt.Println("It's a draw!")
		case game.Player1:
			fmt.Println("Player X wins!")
		case game.Player2:
			fmt.Println("Player O wins!")
		}
		return nil
	},
}

func init() {
	playCmd.Flags().StringVar(&opponentKind, "opponent", "mcts",
		"opponent kind: mcts, minimax, qlearner, random or human")
	rootCmd.AddCommand(playCmd)
}

// humanAgent reads column choices from an input stream, re-prompting on
// invalid input until a legal column arrives.
type humanAgent struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func (h *humanAgent) FindMove(b *game.Board, player game.Piece) (int, error) {
	for {
		fmt.Fprintf(h.out, "Player %s, choose column (0-%d): ", player, game.Cols-1)
		if !h.scanner.Scan() {
			if err := h.scanner.Err(); err != nil {
				return -1, fmt.Errorf("failed to read input: %w", err)
			}
			return -1, fmt.Errorf("input closed: %w", agent.ErrNoMove)
		}
		col, err := strconv.Atoi(strings.TrimSpace(h.scanner.Text()))
		if err != nil {
			fmt.Fprintf(h.out, "Please enter an integer 0-%d.\n", game.Cols-1)
			continue
		}
		switch b.CheckMove(col) {
		case game.MoveOutOfBounds:
			fmt.Fprintln(h.out, "Input is out of bounds.")
		case game.MoveColumnFull:
			fmt.Fprintln(h.out, "Selected column is full.")
		default:
			return col, nil
		}
	}
}
