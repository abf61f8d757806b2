package domain

// Engine owns one board together with the turn and the outcome. It is not
// safe for concurrent use; hosts serialise calls themselves.
type Engine struct {
	board     Board
	turn      Slot
	outcome   Outcome
	moveCount int
}

// NewEngine returns an engine for the standard 6x7 board.
func NewEngine() *Engine {
	e, _ := NewEngineSize(DefaultRows, DefaultColumns)
	return e
}

func NewEngineSize(rows, columns int) (*Engine, error) {
	if rows < 1 || columns < 1 {
		return nil, ErrInvalidSize
	}

	return &Engine{
		board:   NewBoard(rows, columns),
		turn:    Player1,
		outcome: Outcome{Status: StatusInProgress, Winner: Empty},
	}, nil
}

// DropDisc drops the current player's disc into column. A rejected drop
// leaves the engine untouched.
func (e *Engine) DropDisc(column int) (DropResult, error) {
	if e.outcome.Status.IsTerminal() {
		return DropResult{}, ErrGameAlreadyOver
	}

	player := e.turn
	row, err := e.board.DropDisc(column, player)
	if err != nil {
		return DropResult{}, err
	}

	e.moveCount++
	// the turn flips even when this move ends the game
	e.turn = player.Opponent()

	pos := Position{Row: row, Col: column}
	if line, ok := FindLine(e.board, pos); ok {
		e.outcome = Outcome{Status: StatusWon, Winner: player, WinningLine: line}
	} else if e.board.IsFull() {
		e.outcome = Outcome{Status: StatusDraw, Winner: Empty}
	}

	return DropResult{Position: pos, Player: player, Outcome: e.Outcome()}, nil
}

// Reset empties the board and starts a new game with Player1 to move.
func (e *Engine) Reset() {
	e.board.Clear()
	e.turn = Player1
	e.outcome = Outcome{Status: StatusInProgress, Winner: Empty}
	e.moveCount = 0
}

// Board returns a copy of the grid.
func (e *Engine) Board() Board {
	return e.board.Copy()
}

func (e *Engine) Turn() Slot {
	return e.turn
}

func (e *Engine) Outcome() Outcome {
	out := e.outcome
	if e.outcome.WinningLine != nil {
		out.WinningLine = append([]Position(nil), e.outcome.WinningLine...)
	}
	return out
}

func (e *Engine) MoveCount() int {
	return e.moveCount
}

func (e *Engine) Rows() int {
	return e.board.Rows()
}

func (e *Engine) Columns() int {
	return e.board.Columns()
}

func (e *Engine) LowestEmptyRow(column int) (int, error) {
	return e.board.LowestEmptyRow(column)
}

func (e *Engine) ValidColumns() []int {
	if e.outcome.Status.IsTerminal() {
		return []int{}
	}
	return e.board.ValidMoves()
}

func (e *Engine) IsFinished() bool {
	return e.outcome.Status.IsTerminal()
}
