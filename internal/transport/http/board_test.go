package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/connectfour/internal/config"
	"github.com/iamasit07/connectfour/internal/domain"
	"github.com/iamasit07/connectfour/internal/service/game"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	cfg := &config.Config{
		AllowedOrigins: []string{"http://localhost:5173"},
		StaticDir:      filepath.Join(t.TempDir(), "missing"),
	}
	return NewRouter(cfg, game.NewTable(domain.NewEngine(), nil), nil)
}

func do(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) domain.ServerMessage {
	t.Helper()
	var msg domain.ServerMessage
	if err := json.Unmarshal(w.Body.Bytes(), &msg); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return msg
}

func TestGetBoard(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/api/board", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	msg := decode(t, w)
	if msg.Type != domain.MsgState || len(msg.Board) != 6 || len(msg.Board[0]) != 7 {
		t.Fatalf("unexpected state %+v", msg)
	}
	if len(msg.ValidColumns) != 7 {
		t.Fatalf("expected all columns open, got %v", msg.ValidColumns)
	}
}

func TestDropStatusCodes(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"missing column", map[string]any{}, http.StatusBadRequest},
		{"out of range", map[string]int{"column": 7}, http.StatusBadRequest},
		{"first", map[string]int{"column": 0}, http.StatusOK},
		{"second", map[string]int{"column": 0}, http.StatusOK},
		{"third", map[string]int{"column": 0}, http.StatusOK},
		{"fourth", map[string]int{"column": 0}, http.StatusOK},
		{"fifth", map[string]int{"column": 0}, http.StatusOK},
		{"sixth", map[string]int{"column": 0}, http.StatusOK},
		{"full", map[string]int{"column": 0}, http.StatusConflict},
	}
	for _, tt := range tests {
		w := do(t, r, http.MethodPost, "/api/drop", tt.body)
		if w.Code != tt.status {
			t.Fatalf("%s: expected %d, got %d (%s)", tt.name, tt.status, w.Code, w.Body.String())
		}
	}
}

func TestWinThenGameOverThenReset(t *testing.T) {
	r := newTestRouter(t)

	var w *httptest.ResponseRecorder
	for _, col := range []int{0, 6, 1, 6, 2, 6, 3} {
		w = do(t, r, http.MethodPost, "/api/drop", map[string]int{"column": col})
		if w.Code != http.StatusOK {
			t.Fatalf("drop %d: %d %s", col, w.Code, w.Body.String())
		}
	}
	msg := decode(t, w)
	if msg.Type != domain.MsgGameOver || msg.Winner != int(domain.Player1) {
		t.Fatalf("expected game over for player1, got %+v", msg)
	}
	want := []domain.Position{{Row: 5, Col: 0}, {Row: 5, Col: 1}, {Row: 5, Col: 2}, {Row: 5, Col: 3}}
	for i := range want {
		if msg.WinningCells[i] != want[i] {
			t.Fatalf("expected winning cells %v, got %v", want, msg.WinningCells)
		}
	}

	w = do(t, r, http.MethodPost, "/api/click", map[string]int{"row": 0, "column": 4})
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 after game over, got %d", w.Code)
	}

	w = do(t, r, http.MethodPost, "/api/reset", nil)
	if w.Code != http.StatusOK || decode(t, w).Type != domain.MsgReset {
		t.Fatalf("reset failed: %d %s", w.Code, w.Body.String())
	}

	w = do(t, r, http.MethodPost, "/api/click", map[string]int{"row": 0, "column": 4})
	if w.Code != http.StatusOK {
		t.Fatalf("click after reset: %d %s", w.Code, w.Body.String())
	}
	if msg := decode(t, w); *msg.Row != 5 || *msg.Column != 4 {
		t.Fatalf("expected disc at bottom of column 4, got %+v", msg)
	}
}

func TestClickBodyMatchesWebsocketFields(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodPost, "/api/click", map[string]int{"row": 2, "col": 1})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without a column field, got %d", w.Code)
	}

	raw, err := json.Marshal(domain.ClientMessage{Type: domain.MsgClick, Row: 2, Column: 1})
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/click", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("websocket click body rejected: %d %s", w.Code, w.Body.String())
	}
	if msg := decode(t, w); *msg.Row != 5 || *msg.Column != 1 {
		t.Fatalf("expected disc at bottom of column 1, got %+v", msg)
	}
}

func TestCORS(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/board", nil)
	req.Header.Set("Origin", "http://evil.example")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for foreign origin, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodOptions, "/api/drop", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK || w.Header().Get("Access-Control-Allow-Origin") != "http://localhost:5173" {
		t.Fatalf("preflight failed: %d %v", w.Code, w.Header())
	}
}

func TestHealthAndStatic(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>board</html>"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg := &config.Config{StaticDir: dir}
	r := NewRouter(cfg, game.NewTable(domain.NewEngine(), nil), nil)

	if w := do(t, r, http.MethodGet, "/healthz", nil); w.Code != http.StatusOK {
		t.Fatalf("healthz: %d", w.Code)
	}
	if w := do(t, r, http.MethodGet, "/some/page", nil); w.Code != http.StatusOK || !bytes.Contains(w.Body.Bytes(), []byte("board")) {
		t.Fatalf("expected index fallback, got %d %q", w.Code, w.Body.String())
	}
	if w := do(t, r, http.MethodGet, "/api/nope", nil); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown api route, got %d", w.Code)
	}
}
