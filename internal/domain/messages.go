package domain

// Message types sent to viewers.
const (
	MsgState    = "state"
	MsgMoveMade = "move_made"
	MsgGameOver = "game_over"
	MsgReset    = "reset"
	MsgError    = "error"
)

// Message types accepted from viewers.
const (
	MsgDrop  = "drop"
	MsgClick = "click"
)

type ClientMessage struct {
	Type   string `json:"type"`
	Column int    `json:"column"`
	Row    int    `json:"row"`
}

// ServerMessage carries everything a view needs to redraw the table.
type ServerMessage struct {
	Type         string     `json:"type"`
	Message      string     `json:"message,omitempty"`
	GameID       string     `json:"gameId,omitempty"`
	Board        [][]int    `json:"board,omitempty"`
	Rows         int        `json:"rows,omitempty"`
	Columns      int        `json:"columns,omitempty"`
	Column       *int       `json:"column,omitempty"`
	Row          *int       `json:"row,omitempty"`
	Player       int        `json:"player,omitempty"`
	NextTurn     int        `json:"nextTurn,omitempty"`
	Status       GameStatus `json:"status,omitempty"`
	Winner       int        `json:"winner,omitempty"`
	WinningCells []Position `json:"winningCells,omitempty"`
	MoveCount    int        `json:"moveCount"`
	ValidColumns []int      `json:"validColumns,omitempty"`
}

type ErrorMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// StateMessage snapshots the engine.
func StateMessage(e *Engine) ServerMessage {
	outcome := e.Outcome()
	msg := ServerMessage{
		Type:         MsgState,
		Board:        e.board.Ints(),
		Rows:         e.Rows(),
		Columns:      e.Columns(),
		NextTurn:     int(e.Turn()),
		Status:       outcome.Status,
		Winner:       int(outcome.Winner),
		WinningCells: outcome.WinningLine,
		MoveCount:    e.MoveCount(),
		ValidColumns: e.ValidColumns(),
	}
	if outcome.Status.IsTerminal() {
		msg.NextTurn = 0
	}
	return msg
}

// MoveMessage snapshots the engine right after result was applied.
func MoveMessage(e *Engine, result DropResult) ServerMessage {
	msg := StateMessage(e)
	msg.Type = MsgMoveMade
	if result.Outcome.Status.IsTerminal() {
		msg.Type = MsgGameOver
	}
	row, col := result.Position.Row, result.Position.Col
	msg.Row = &row
	msg.Column = &col
	msg.Player = int(result.Player)
	return msg
}
