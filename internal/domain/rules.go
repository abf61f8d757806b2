package domain

// Axis is a scan direction. Winning cells are reported in the order they
// appear when walking along (DRow, DCol).
type Axis struct {
	Name string
	DRow int
	DCol int
}

// Axes are checked in this order; the first winning one is reported.
var Axes = [...]Axis{
	{Name: "horizontal", DRow: 0, DCol: 1},
	{Name: "vertical", DRow: 1, DCol: 0},
	{Name: "diagonal_down", DRow: 1, DCol: 1},
	{Name: "diagonal_up", DRow: -1, DCol: 1},
}

// CountInDirection counts the player's discs next to pos, walking away from
// it one step at a time. pos itself is not counted.
func (b Board) CountInDirection(pos Position, deltaRow, deltaCol int, player Slot) int {
	if player == Empty {
		return 0
	}

	count := 0
	next := Position{Row: pos.Row + deltaRow, Col: pos.Col + deltaCol}
	for b.InBounds(next) && b[next.Row][next.Col] == player {
		count++
		next.Row += deltaRow
		next.Col += deltaCol
	}
	return count
}

// FindLine looks for four in a row through pos along each axis. The run is
// extended both ways from pos, so a disc dropped into the middle of a line
// completes it just like one dropped at the end.
func FindLine(board Board, pos Position) ([]Position, bool) {
	player := board.At(pos)
	if player == Empty {
		return nil, false
	}

	for _, axis := range Axes {
		back := board.CountInDirection(pos, -axis.DRow, -axis.DCol, player)
		forward := board.CountInDirection(pos, axis.DRow, axis.DCol, player)
		if back+1+forward < ToWin {
			continue
		}

		// earliest window of ToWin cells that still covers pos
		start := -back
		if start < -(ToWin - 1) {
			start = -(ToWin - 1)
		}

		line := make([]Position, ToWin)
		for i := range line {
			step := start + i
			line[i] = Position{Row: pos.Row + step*axis.DRow, Col: pos.Col + step*axis.DCol}
		}
		return line, true
	}

	return nil, false
}
