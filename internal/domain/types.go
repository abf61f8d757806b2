package domain

import "fmt"

// Slot is the content of a single board cell.
type Slot int

const (
	Empty   Slot = 0
	Player1 Slot = 1
	Player2 Slot = 2
)

const (
	DefaultRows    = 6
	DefaultColumns = 7
	ToWin          = 4
)

// Marker returns the symbol drawn for the slot ("X", "O" or a blank).
func (s Slot) Marker() string {
	switch s {
	case Player1:
		return "X"
	case Player2:
		return "O"
	default:
		return " "
	}
}

// Opponent returns the other player. Empty has no opponent.
func (s Slot) Opponent() Slot {
	switch s {
	case Player1:
		return Player2
	case Player2:
		return Player1
	default:
		return Empty
	}
}

func (s Slot) String() string {
	switch s {
	case Player1:
		return "player1"
	case Player2:
		return "player2"
	default:
		return "empty"
	}
}

// Position is a board coordinate. Row 0 is the top row.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Label formats the position the way the cells were named on the physical
// board: column letter, then row number counted from the bottom.
func (p Position) Label(rows int) string {
	return fmt.Sprintf("%c%d", 'A'+rune(p.Col), rows-p.Row)
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// to represent the game status
type GameStatus string

const (
	StatusInProgress GameStatus = "in_progress"
	StatusWon        GameStatus = "won"
	StatusDraw       GameStatus = "draw"
)

// IsTerminal reports whether the board is frozen.
func (s GameStatus) IsTerminal() bool {
	return s == StatusWon || s == StatusDraw
}

// Outcome is the game status after a move. Winner and WinningLine are only
// set when Status is StatusWon.
type Outcome struct {
	Status      GameStatus `json:"status"`
	Winner      Slot       `json:"winner"`
	WinningLine []Position `json:"winningLine,omitempty"`
}

// DropResult describes an applied drop.
type DropResult struct {
	Position Position `json:"position"`
	Player   Slot     `json:"player"`
	Outcome  Outcome  `json:"outcome"`
}

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidColumn   Error = "invalid column"
	ErrColumnFull      Error = "column is full"
	ErrGameAlreadyOver Error = "game is already over"
	ErrInvalidSize     Error = "invalid board size"
	ErrInvalidPosition Error = "position is outside the board"
)
