package view

import (
	"bytes"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/iamasit07/connectfour/internal/domain"
	"github.com/muesli/termenv"
)

var ansi = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func render(t *testing.T, e *domain.Engine) string {
	t.Helper()
	term := NewTerminal(&bytes.Buffer{}, termenv.WithProfile(termenv.Ascii))
	return ansi.ReplaceAllString(term.Render(e.Board(), e.Turn(), e.Outcome()), "")
}

func TestRenderInProgress(t *testing.T) {
	e := domain.NewEngine()
	for _, col := range []int{3, 3} {
		if _, err := e.DropDisc(col); err != nil {
			t.Fatal(err)
		}
	}

	out := render(t, e)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 8 {
		t.Fatalf("expected header, 6 rows and status, got %d lines:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "  A   B") {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if lines[6] != "|   |   |   | X |   |   |   | 1" {
		t.Fatalf("unexpected bottom row %q", lines[6])
	}
	if lines[5] != "|   |   |   | O |   |   |   | 2" {
		t.Fatalf("unexpected second row %q", lines[5])
	}
	if lines[7] != "X to move" {
		t.Fatalf("unexpected status %q", lines[7])
	}
}

func TestRenderHighlightsWinningLine(t *testing.T) {
	e := domain.NewEngine()
	for _, col := range []int{0, 6, 1, 6, 2, 6, 3} {
		if _, err := e.DropDisc(col); err != nil {
			t.Fatal(err)
		}
	}

	out := render(t, e)
	if !strings.Contains(out, "|[X]|[X]|[X]|[X]|   |   | O | 1") {
		t.Fatalf("winning cells not highlighted:\n%s", out)
	}
	if !strings.Contains(out, "X wins: A1 B1 C1 D1") {
		t.Fatalf("missing win status:\n%s", out)
	}
}

func TestDrawWritesToOutput(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerminal(&buf, termenv.WithProfile(termenv.Ascii))
	e := domain.NewEngine()
	if err := term.Draw(e.Board(), e.Turn(), e.Outcome()); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(ansi.ReplaceAllString(buf.String(), ""), "X to move") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestParseColumn(t *testing.T) {
	tests := []struct {
		in   string
		want int
		err  bool
	}{
		{"a", 0, false},
		{"G", 6, false},
		{" 4 ", 3, false},
		{"1", 0, false},
		{"h", -1, true},
		{"0", -1, true},
		{"8", -1, true},
		{"", -1, true},
		{"ab", -1, true},
	}
	for _, tt := range tests {
		got, err := ParseColumn(tt.in, 7)
		if (err != nil) != tt.err || got != tt.want {
			t.Errorf("ParseColumn(%q) = %d, %v; want %d, err=%v", tt.in, got, err, tt.want, tt.err)
		}
		if err != nil && !errors.Is(err, domain.ErrInvalidColumn) {
			t.Errorf("ParseColumn(%q): expected ErrInvalidColumn, got %v", tt.in, err)
		}
	}
}

func TestColumnPromptFollowsBoardWidth(t *testing.T) {
	if got := ColumnPrompt(7); got != "Pick a column between a and g" {
		t.Errorf("ColumnPrompt(7) = %q", got)
	}
	if got := ColumnPrompt(9); got != "Pick a column between a and i" {
		t.Errorf("ColumnPrompt(9) = %q", got)
	}
	if got := ColumnRange(5); got != "a-e or 1-5" {
		t.Errorf("ColumnRange(5) = %q", got)
	}
}
