package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"connect4/game"
)

// scripted plays a fixed column sequence.
type scripted struct {
	cols []int
	next int
}

func (s *scripted) FindMove(b *game.Board, player game.Piece) (int, error) {
	col := s.cols[s.next%len(s.cols)]
	s.next++
	return col, nil
}

func TestLocalRun(t *testing.T) {
	t.Run("vertical win for the first player", func(t *testing.T) {
		// X stacks column 0, O stacks column 1: X connects four first.
		e := NewLocal(&scripted{cols: []int{0}}, &scripted{cols: []int{1}})

		winner, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, game.Player1, winner)
		require.Len(t, e.History, 7)
		require.Equal(t, Move{Col: 0, Player: game.Player1}, e.History[0])
	})

	t.Run("second player can win too", func(t *testing.T) {
		// X wanders, O stacks column 6.
		e := NewLocal(&scripted{cols: []int{0, 1, 2, 4}}, &scripted{cols: []int{6}})

		winner, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, game.Player2, winner)
	})

	t.Run("illegal column aborts the game", func(t *testing.T) {
		e := NewLocal(&scripted{cols: []int{9}}, &scripted{cols: []int{1}})

		_, err := e.Run()

		require.Error(t, err)
		require.Contains(t, err.Error(), "illegal column")
	})

	t.Run("on-move callback sees every move", func(t *testing.T) {
		e := NewLocal(&scripted{cols: []int{0}}, &scripted{cols: []int{1}})
		var seen []Move
		e.OnMove = func(b *game.Board, mv Move) {
			seen = append(seen, mv)
		}

		_, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, e.History, seen)
	})
}
