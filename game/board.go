package game

import "errors"

const (
	Rows = 6
	Cols = 7

	// CenterCol is the middle column, the most valuable one on an odd-width board.
	CenterCol = Cols / 2
)

// Piece is the content of a single board cell.
type Piece int8

const (
	NoPlayer Piece = iota
	Player1
	Player2
)

// Opponent returns the other player. Calling it on NoPlayer is a logic error.
func (p Piece) Opponent() Piece {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	}
	panic("no opponent for NoPlayer")
}

func (p Piece) String() string {
	switch p {
	case Player1:
		return "X"
	case Player2:
		return "O"
	}
	return " "
}

// GameState classifies a position from one player's point of view.
type GameState int

const (
	Playing GameState = iota
	Win
	Draw
)

// MoveStatus reports whether a column can be played.
type MoveStatus int

const (
	MoveValid MoveStatus = iota
	MoveOutOfBounds
	MoveColumnFull
)

var (
	ErrOutOfBounds = errors.New("column out of bounds")
	ErrColumnFull  = errors.New("column is full")
)

// Board is a 6x7 grid with row 0 at the bottom. Within a column the occupied
// cells form a contiguous run from row 0 upward (gravity). Board is a value
// type: assignment copies the whole grid, so search code can hand out
// independent positions without aliasing.
type Board [Rows][Cols]Piece

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{}
}

// Copy returns an independent copy of the board.
func (b *Board) Copy() Board {
	return *b
}

// CheckMove reports whether dropping into col is currently legal.
func (b *Board) CheckMove(col int) MoveStatus {
	if col < 0 || col >= Cols {
		return MoveOutOfBounds
	}
	if b[Rows-1][col] != NoPlayer {
		return MoveColumnFull
	}
	return MoveValid
}

// LegalColumns returns the playable columns in ascending order.
func (b *Board) LegalColumns() []int {
	cols := make([]int, 0, Cols)
	for c := 0; c < Cols; c++ {
		if b[Rows-1][c] == NoPlayer {
			cols = append(cols, c)
		}
	}
	return cols
}

// Drop places piece at the lowest empty row of col, mutating the board in
// place. It returns ErrOutOfBounds or ErrColumnFull on an illegal move;
// callers that generate candidates through LegalColumns never hit either.
func (b *Board) Drop(col int, piece Piece) error {
	switch b.CheckMove(col) {
	case MoveOutOfBounds:
		return ErrOutOfBounds
	case MoveColumnFull:
		return ErrColumnFull
	}
	for r := 0; r < Rows; r++ {
		if b[r][col] == NoPlayer {
			b[r][col] = piece
			return nil
		}
	}
	panic("legal column has no empty row")
}

// ConnectedFour reports whether piece has four aligned cells in any of the
// four directions.
func (b *Board) ConnectedFour(piece Piece) bool {
	// Horizontal
	for r := 0; r < Rows; r++ {
		for c := 0; c <= Cols-4; c++ {
			if b[r][c] == piece && b[r][c+1] == piece && b[r][c+2] == piece && b[r][c+3] == piece {
				return true
			}
		}
	}
	// Vertical
	for c := 0; c < Cols; c++ {
		for r := 0; r <= Rows-4; r++ {
			if b[r][c] == piece && b[r+1][c] == piece && b[r+2][c] == piece && b[r+3][c] == piece {
				return true
			}
		}
	}
	// Diagonal up-right
	for r := 0; r <= Rows-4; r++ {
		for c := 0; c <= Cols-4; c++ {
			if b[r][c] == piece && b[r+1][c+1] == piece && b[r+2][c+2] == piece && b[r+3][c+3] == piece {
				return true
			}
		}
	}
	// Diagonal up-left
	for r := 0; r <= Rows-4; r++ {
		for c := 3; c < Cols; c++ {
			if b[r][c] == piece && b[r+1][c-1] == piece && b[r+2][c-2] == piece && b[r+3][c-3] == piece {
				return true
			}
		}
	}
	return false
}

// Full reports whether no cell is empty.
func (b *Board) Full() bool {
	for c := 0; c < Cols; c++ {
		if b[Rows-1][c] == NoPlayer {
			return false
		}
	}
	return true
}

// EndState classifies the position for piece: Win if piece has connected
// four, Draw if the board is full without a win, Playing otherwise.
func (b *Board) EndState(piece Piece) GameState {
	if b.ConnectedFour(piece) {
		return Win
	}
	if b.Full() {
		return Draw
	}
	return Playing
}
