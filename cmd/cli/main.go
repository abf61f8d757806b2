package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/iamasit07/connectfour/internal/config"
	"github.com/iamasit07/connectfour/internal/domain"
	"github.com/iamasit07/connectfour/internal/service/game"
	"github.com/iamasit07/connectfour/internal/view"
)

func main() {
	config.LoadEnv()
	// game logs would interleave with the board
	if config.GetEnv("CONNECT4_DEBUG", "") == "" {
		log.SetOutput(io.Discard)
	}

	table := game.NewTable(domain.NewEngine(), nil)
	term := view.NewTerminal(os.Stdout)
	draw := func() {
		table.View(func(board domain.Board, turn domain.Slot, outcome domain.Outcome) {
			if err := term.Draw(board, turn, outcome); err != nil {
				log.Fatalf("draw: %v", err)
			}
		})
	}

	fmt.Printf("Connect Four: enter a column (%s), r to reset, q to quit\n", view.ColumnRange(table.Snapshot().Columns))
	draw()

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		input := strings.TrimSpace(strings.ToLower(scanner.Text()))
		switch input {
		case "q", "quit":
			return
		case "r", "reset":
			table.Reset()
			draw()
			continue
		}

		columns := table.Snapshot().Columns
		col, err := view.ParseColumn(input, columns)
		if err == nil {
			_, err = table.Drop(col)
		}
		switch {
		case err == nil:
			draw()
		case errors.Is(err, domain.ErrGameAlreadyOver):
			fmt.Println("The game is over, press r to play again")
		case errors.Is(err, domain.ErrColumnFull):
			fmt.Println("That column is full")
		default:
			fmt.Println(view.ColumnPrompt(columns))
		}
	}
}
