package domain

// Board is a row-major grid. board[0] is the top row.
type Board [][]Slot

func NewBoard(rows, columns int) Board {
	board := make(Board, rows)
	for i := range board {
		board[i] = make([]Slot, columns)
	}
	return board
}

func (b Board) Rows() int {
	return len(b)
}

func (b Board) Columns() int {
	if len(b) == 0 {
		return 0
	}
	return len(b[0])
}

func (b Board) InBounds(pos Position) bool {
	return pos.Row >= 0 && pos.Row < b.Rows() && pos.Col >= 0 && pos.Col < b.Columns()
}

// At returns the slot at pos. Positions outside the grid read as Empty so
// they never match a player's disc.
func (b Board) At(pos Position) Slot {
	if !b.InBounds(pos) {
		return Empty
	}
	return b[pos.Row][pos.Col]
}

func (b Board) IsValidMove(column int) bool {
	if column < 0 || column >= b.Columns() {
		return false
	}

	return b[0][column] == Empty
}

// LowestEmptyRow returns the row a disc dropped into column would land on.
func (b Board) LowestEmptyRow(column int) (int, error) {
	if column < 0 || column >= b.Columns() {
		return -1, ErrInvalidColumn
	}

	for row := b.Rows() - 1; row >= 0; row-- {
		if b[row][column] == Empty {
			return row, nil
		}
	}

	return -1, ErrColumnFull
}

// DropDisc lets a disc fall to the bottom of column, or onto the disc below.
func (b Board) DropDisc(column int, player Slot) (int, error) {
	row, err := b.LowestEmptyRow(column)
	if err != nil {
		return -1, err
	}

	b[row][column] = player
	return row, nil
}

func (b Board) IsFull() bool {
	for c := 0; c < b.Columns(); c++ {
		if b[0][c] == Empty {
			return false
		}
	}

	return true
}

func (b Board) Clear() {
	for r := range b {
		for c := range b[r] {
			b[r][c] = Empty
		}
	}
}

// this creates a deep copy of the board
func (b Board) Copy() Board {
	newBoard := make(Board, len(b))
	for i := range b {
		newBoard[i] = make([]Slot, len(b[i]))
		copy(newBoard[i], b[i])
	}
	return newBoard
}

func (b Board) CountDiscs(player Slot) int {
	count := 0
	for r := range b {
		for c := range b[r] {
			if b[r][c] == player {
				count++
			}
		}
	}
	return count
}

// ValidMoves lists the columns that still accept a disc, left to right.
func (b Board) ValidMoves() []int {
	validMoves := []int{}
	for col := 0; col < b.Columns(); col++ {
		if b.IsValidMove(col) {
			validMoves = append(validMoves, col)
		}
	}
	return validMoves
}

// Ints converts the grid into plain integers for the wire.
func (b Board) Ints() [][]int {
	intBoard := make([][]int, len(b))
	for i := range b {
		intBoard[i] = make([]int, len(b[i]))
		for j := range b[i] {
			intBoard[i][j] = int(b[i][j])
		}
	}
	return intBoard
}
