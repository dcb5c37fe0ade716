package game

// Window scores. The win/loss weights are symmetric but the three-in-a-row
// and two-in-a-row weights are not (+5 vs -4, +2 vs -2): threats against us
// weigh slightly more than our own, giving the evaluation a defensive bias.
// Tuned behavior depends on these exact values.
const (
	scoreWin    = 100
	scoreThree  = 5
	scoreTwo    = 2
	scoreLoss   = -100
	scoreOThree = -4
	scoreOTwo   = -2

	centerWeight = 3
)

// Score statically evaluates the position for player. Positive favors
// player, negative favors the opponent; the magnitude is an unbounded sum
// over all 4-cell windows plus center-column control, not a probability.
func Score(b *Board, player Piece) int {
	opponent := player.Opponent()
	score := 0

	// Center-column control.
	for r := 0; r < Rows; r++ {
		if b[r][CenterCol] == player {
			score += centerWeight
		}
	}

	// Horizontal windows.
	for r := 0; r < Rows; r++ {
		for c := 0; c <= Cols-4; c++ {
			score += scoreWindow(b[r][c], b[r][c+1], b[r][c+2], b[r][c+3], player, opponent)
		}
	}
	// Vertical windows.
	for c := 0; c < Cols; c++ {
		for r := 0; r <= Rows-4; r++ {
			score += scoreWindow(b[r][c], b[r+1][c], b[r+2][c], b[r+3][c], player, opponent)
		}
	}
	// Diagonal windows, both orientations.
	for r := 0; r <= Rows-4; r++ {
		for c := 0; c <= Cols-4; c++ {
			score += scoreWindow(b[r][c+3], b[r+1][c+2], b[r+2][c+1], b[r+3][c], player, opponent)
			score += scoreWindow(b[r][c], b[r+1][c+1], b[r+2][c+2], b[r+3][c+3], player, opponent)
		}
	}
	return score
}

func scoreWindow(w0, w1, w2, w3, player, opponent Piece) int {
	var p, o int
	for _, cell := range [4]Piece{w0, w1, w2, w3} {
		switch cell {
		case player:
			p++
		case opponent:
			o++
		}
	}
	switch {
	case p == 4:
		return scoreWin
	case p == 3 && o == 0:
		return scoreThree
	case p == 2 && o == 0:
		return scoreTwo
	case o == 4:
		return scoreLoss
	case o == 3 && p == 0:
		return scoreOThree
	case o == 2 && p == 0:
		return scoreOTwo
	}
	return 0
}
