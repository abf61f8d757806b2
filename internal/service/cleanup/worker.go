package cleanup

import (
	"context"
	"log"
	"time"

	"github.com/iamasit07/connectfour/internal/service/game"
)

// Worker clears a finished board once nobody has touched it for TTL, so
// the next players walk up to an empty table.
type Worker struct {
	Table    *game.Table
	TTL      time.Duration
	Interval time.Duration
	now      func() time.Time
}

func NewWorker(table *game.Table, ttl, interval time.Duration) *Worker {
	return &Worker{Table: table, TTL: ttl, Interval: interval, now: time.Now}
}

// Start runs the cleanup loop until ctx is cancelled.
func (w *Worker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.Interval)
	defer ticker.Stop()
	log.Println("[CLEANUP] Background worker started")

	for {
		select {
		case <-ctx.Done():
			log.Println("[CLEANUP] Background worker stopped")
			return
		case <-ticker.C:
			w.runCleanup()
		}
	}
}

// runCleanup resets the table if its game ended more than TTL ago.
func (w *Worker) runCleanup() bool {
	idle, reset := w.Table.ResetIfIdle(w.TTL, w.now())
	if reset {
		log.Printf("[CLEANUP] Game finished %s ago, cleared the board", idle.Round(time.Second))
	}
	return reset
}
