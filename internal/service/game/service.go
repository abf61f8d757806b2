package game

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/iamasit07/connectfour/internal/domain"
	"github.com/iamasit07/connectfour/pkg/uid"
)

// Broadcaster pushes a message to every viewer of the table.
type Broadcaster interface {
	BroadcastMessage(message domain.ServerMessage)
}

// Table is the hot-seat host around a single engine. Every view goes through
// it, so drops and resets are applied one at a time.
type Table struct {
	mu          sync.Mutex
	engine      *domain.Engine
	broadcaster Broadcaster
	gameID      string // changes on every reset
	startedAt   time.Time
	finishedAt  time.Time
}

func NewTable(engine *domain.Engine, broadcaster Broadcaster) *Table {
	return &Table{
		engine:      engine,
		broadcaster: broadcaster,
		gameID:      uid.GenerateGameID(),
		startedAt:   time.Now(),
	}
}

// Drop plays the current player's disc into column.
func (t *Table) Drop(column int) (domain.ServerMessage, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.dropLocked(column)
}

// Click handles a click on any cell: the disc goes into that cell's column.
func (t *Table) Click(pos domain.Position) (domain.ServerMessage, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if pos.Row < 0 || pos.Row >= t.engine.Rows() || pos.Col < 0 || pos.Col >= t.engine.Columns() {
		return domain.ServerMessage{}, fmt.Errorf("click at %v: %w", pos, domain.ErrInvalidPosition)
	}
	return t.dropLocked(pos.Col)
}

func (t *Table) dropLocked(column int) (domain.ServerMessage, error) {
	result, err := t.engine.DropDisc(column)
	if err != nil {
		return domain.ServerMessage{}, fmt.Errorf("drop in column %d: %w", column, err)
	}

	log.Printf("[GAME] %s dropped at %s (move %d)",
		result.Player, result.Position.Label(t.engine.Rows()), t.engine.MoveCount())

	switch result.Outcome.Status {
	case domain.StatusWon:
		t.finishedAt = time.Now()
		log.Printf("[GAME] %s wins with %v after %s",
			result.Outcome.Winner, result.Outcome.WinningLine, t.finishedAt.Sub(t.startedAt).Round(time.Second))
	case domain.StatusDraw:
		t.finishedAt = time.Now()
		log.Printf("[GAME] Board full, game drawn after %d moves", t.engine.MoveCount())
	}

	msg := domain.MoveMessage(t.engine, result)
	msg.GameID = t.gameID
	t.broadcast(msg)
	return msg, nil
}

// Reset clears the table for a new game.
func (t *Table) Reset() domain.ServerMessage {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.resetLocked()
}

// ResetIfIdle clears the table only if its game finished at least ttl
// before now. The check and the reset happen under one lock, so a game
// started in between is never wiped. idle is how long the board sat.
func (t *Table) ResetIfIdle(ttl time.Duration, now time.Time) (idle time.Duration, reset bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.engine.IsFinished() {
		return 0, false
	}
	idle = now.Sub(t.finishedAt)
	if idle < ttl {
		return idle, false
	}
	t.resetLocked()
	return idle, true
}

func (t *Table) resetLocked() domain.ServerMessage {
	t.engine.Reset()
	t.gameID = uid.GenerateGameID()
	t.startedAt = time.Now()
	t.finishedAt = time.Time{}
	log.Printf("[GAME] Board reset, new game %s", t.gameID)

	msg := domain.StateMessage(t.engine)
	msg.Type = domain.MsgReset
	msg.GameID = t.gameID
	t.broadcast(msg)
	return msg
}

// Snapshot returns the current state without changing it.
func (t *Table) Snapshot() domain.ServerMessage {
	t.mu.Lock()
	defer t.mu.Unlock()

	msg := domain.StateMessage(t.engine)
	msg.GameID = t.gameID
	return msg
}

// Join runs fn with the current state while holding the table lock. A
// viewer registered inside fn sees that state before any later change.
func (t *Table) Join(fn func(state domain.ServerMessage)) {
	t.mu.Lock()
	defer t.mu.Unlock()

	msg := domain.StateMessage(t.engine)
	msg.GameID = t.gameID
	fn(msg)
}

// GameID returns the id of the round being played.
func (t *Table) GameID() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.gameID
}

// FinishedAt returns when the current game ended, or the zero time.
func (t *Table) FinishedAt() time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.finishedAt
}

// View runs fn against a copy of the board and the current outcome.
func (t *Table) View(fn func(board domain.Board, turn domain.Slot, outcome domain.Outcome)) {
	t.mu.Lock()
	board, turn, outcome := t.engine.Board(), t.engine.Turn(), t.engine.Outcome()
	t.mu.Unlock()

	fn(board, turn, outcome)
}

// broadcast runs under t.mu so viewers get changes in the order they were
// applied. Broadcasters must not block on slow viewers.
func (t *Table) broadcast(msg domain.ServerMessage) {
	if t.broadcaster == nil {
		return
	}
	t.broadcaster.BroadcastMessage(msg)
}
