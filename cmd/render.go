package cmd

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"

	"connect4/game"
)

var (
	output      = termenv.DefaultOutput()
	player1Tint = output.Color("1") // red
	player2Tint = output.Color("3") // yellow
)

// renderBoard is the colored sibling of game.Board.String for interactive
// play: X in red, O in yellow, plus the column index footer.
func renderBoard(b *game.Board) string {
	border := "|" + strings.Repeat("=", game.Cols*2) + "|"
	var sb strings.Builder
	sb.WriteString(border)
	sb.WriteByte('\n')
	for r := game.Rows - 1; r >= 0; r-- {
		sb.WriteByte('|')
		for c := 0; c < game.Cols; c++ {
			sb.WriteString(renderCell(b[r][c]))
			sb.WriteByte(' ')
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(border)
	sb.WriteString("\n|")
	for c := 0; c < game.Cols; c++ {
		fmt.Fprintf(&sb, "%d ", c)
	}
	sb.WriteByte('|')
	return sb.String()
}

func renderCell(p game.Piece) string {
	switch p {
	case game.Player1:
		return output.String(p.String()).Foreground(player1Tint).Bold().String()
	case game.Player2:
		return output.String(p.String()).Foreground(player2Tint).Bold().String()
	}
	return " "
}
