// Package view draws the board for terminal players.
package view

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/iamasit07/connectfour/internal/domain"
	"github.com/muesli/termenv"
)

// Terminal renders boards with termenv. Winning cells are bracketed as well
// as highlighted so they stay visible without colour support.
type Terminal struct {
	out *termenv.Output
}

func NewTerminal(w io.Writer, opts ...termenv.OutputOption) *Terminal {
	return &Terminal{out: termenv.NewOutput(w, opts...)}
}

func (t *Terminal) Render(board domain.Board, turn domain.Slot, outcome domain.Outcome) string {
	winning := make(map[domain.Position]bool, len(outcome.WinningLine))
	for _, p := range outcome.WinningLine {
		winning[p] = true
	}

	var sb strings.Builder
	for c := 0; c < board.Columns(); c++ {
		fmt.Fprintf(&sb, "  %c ", 'A'+rune(c))
	}
	sb.WriteString("\n")

	for r := 0; r < board.Rows(); r++ {
		sb.WriteString("|")
		for c := 0; c < board.Columns(); c++ {
			pos := domain.Position{Row: r, Col: c}
			sb.WriteString(t.cell(board.At(pos), winning[pos]))
			sb.WriteString("|")
		}
		fmt.Fprintf(&sb, " %d\n", board.Rows()-r)
	}

	sb.WriteString(t.status(board, turn, outcome))
	sb.WriteString("\n")
	return sb.String()
}

// Draw writes the rendered board to the terminal.
func (t *Terminal) Draw(board domain.Board, turn domain.Slot, outcome domain.Outcome) error {
	_, err := io.WriteString(t.out, t.Render(board, turn, outcome))
	return err
}

func (t *Terminal) cell(s domain.Slot, winning bool) string {
	text := " " + s.Marker() + " "
	if winning {
		text = "[" + s.Marker() + "]"
	}

	style := t.out.String(text)
	switch s {
	case domain.Player1:
		style = style.Foreground(t.out.Color("9"))
	case domain.Player2:
		style = style.Foreground(t.out.Color("11"))
	}
	if winning {
		style = style.Bold().Background(t.out.Color("2"))
	}
	return style.String()
}

func (t *Terminal) status(board domain.Board, turn domain.Slot, outcome domain.Outcome) string {
	switch outcome.Status {
	case domain.StatusWon:
		labels := make([]string, len(outcome.WinningLine))
		for i, p := range outcome.WinningLine {
			labels[i] = p.Label(board.Rows())
		}
		return t.out.String(fmt.Sprintf("%s wins: %s", outcome.Winner.Marker(), strings.Join(labels, " "))).Bold().String()
	case domain.StatusDraw:
		return t.out.String("Draw: the board is full").Bold().String()
	default:
		return fmt.Sprintf("%s to move", turn.Marker())
	}
}

// ColumnRange describes the accepted column inputs, e.g. "a-g or 1-7".
func ColumnRange(columns int) string {
	return fmt.Sprintf("a-%c or 1-%d", 'a'+rune(columns-1), columns)
}

// ColumnPrompt is shown after input that names no column.
func ColumnPrompt(columns int) string {
	return fmt.Sprintf("Pick a column between a and %c", 'a'+rune(columns-1))
}

// ParseColumn reads a column as a letter ("a", "C") or a 1-based number.
func ParseColumn(input string, columns int) (int, error) {
	input = strings.TrimSpace(strings.ToLower(input))
	if input == "" {
		return -1, domain.ErrInvalidColumn
	}

	col := -1
	if n, err := strconv.Atoi(input); err == nil {
		col = n - 1
	} else if len(input) == 1 && input[0] >= 'a' && input[0] <= 'z' {
		col = int(input[0] - 'a')
	}

	if col < 0 || col >= columns {
		return -1, fmt.Errorf("%q: %w", input, domain.ErrInvalidColumn)
	}
	return col, nil
}
