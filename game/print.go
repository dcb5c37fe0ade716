package game

import (
	"fmt"
	"strings"
)

// String renders the board for the console, row 0 at the bottom:
//
//	|==============|
//	|              |
//	|              |
//	|    X X       |
//	|    O X X     |
//	|  O X O O     |
//	|  O O X X     |
//	|==============|
//	|0 1 2 3 4 5 6 |
func (b *Board) String() string {
	border := "|" + strings.Repeat("=", Cols*2) + "|"
	var sb strings.Builder
	sb.WriteString(border)
	sb.WriteByte('\n')
	for r := Rows - 1; r >= 0; r-- {
		sb.WriteByte('|')
		for c := 0; c < Cols; c++ {
			sb.WriteString(b[r][c].String())
			sb.WriteByte(' ')
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(border)
	sb.WriteString("\n|")
	for c := 0; c < Cols; c++ {
		fmt.Fprintf(&sb, "%d ", c)
	}
	sb.WriteByte('|')
	return sb.String()
}

// ParseBoard turns the output of String back into a board. Handy for test
// fixtures and for reconstructing a position from a crash log.
func ParseBoard(s string) (*Board, error) {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	if len(lines) < Rows+2 {
		return nil, fmt.Errorf("expected at least %d lines, got %d", Rows+2, len(lines))
	}
	b := NewBoard()
	// Rows are lines[1] through lines[Rows], top row first.
	for i := 0; i < Rows; i++ {
		line := lines[1+i]
		if len(line) < 1+2*Cols {
			return nil, fmt.Errorf("row line %d too short: %q", i, line)
		}
		content := line[1:]
		r := Rows - 1 - i
		for c := 0; c < Cols; c++ {
			switch content[2*c] {
			case 'X':
				b[r][c] = Player1
			case 'O':
				b[r][c] = Player2
			case ' ':
				b[r][c] = NoPlayer
			default:
				return nil, fmt.Errorf("unexpected cell %q at row %d col %d", content[2*c], r, c)
			}
		}
	}
	return b, nil
}
