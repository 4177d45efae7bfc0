package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/eggroll-game/eggroll/game/leaderboard"
	"github.com/eggroll-game/eggroll/game/level"
	"github.com/eggroll-game/eggroll/game/service"
	"github.com/eggroll-game/eggroll/game/session"
)

const classicLevel = `1
4
0..O
`

const gauntletLevel = `2
6
0..P
0..O
`

func newTestServer(t *testing.T) *Server {
	t.Helper()

	dir := t.TempDir()
	files := map[string]string{
		"classic.txt":  classicLevel,
		"gauntlet.txt": gauntletLevel,
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write level: %v", err)
		}
	}

	levels, err := level.NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create level manager: %v", err)
	}

	svc := service.NewGameService(
		session.NewManager(),
		levels,
		func(name string) leaderboard.Store {
			return leaderboard.NewFileStore(levels.Path(name))
		},
	)

	return NewServer(svc, nil)
}

func doJSON(t *testing.T, srv *Server, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal body: %v", err)
		}
		reqBody = bytes.NewBuffer(data)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)
	return w
}

func createSession(t *testing.T, srv *Server, levelID string) service.SessionInfo {
	t.Helper()

	w := doJSON(t, srv, "POST", "/api/sessions", map[string]string{"level_id": levelID})
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var info service.SessionInfo
	if err := json.Unmarshal(w.Body.Bytes(), &info); err != nil {
		t.Fatalf("Failed to decode session: %v", err)
	}
	return info
}

func TestCreateSession(t *testing.T) {
	srv := newTestServer(t)

	info := createSession(t, srv, "classic")
	if info.LevelName != "classic" {
		t.Errorf("Expected level classic, got %s", info.LevelName)
	}
	if info.Board != "0..O" {
		t.Errorf("Unexpected board %q", info.Board)
	}

	w := doJSON(t, srv, "POST", "/api/sessions", map[string]string{"level_id": "nope"})
	if w.Code != http.StatusInternalServerError {
		t.Errorf("Expected 500 for unknown level, got %d", w.Code)
	}
}

func TestGetAndDeleteSession(t *testing.T) {
	srv := newTestServer(t)
	info := createSession(t, srv, "classic")

	w := doJSON(t, srv, "GET", "/api/sessions/"+info.ID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	w = doJSON(t, srv, "DELETE", "/api/sessions/"+info.ID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	w = doJSON(t, srv, "GET", "/api/sessions/"+info.ID, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404 after delete, got %d", w.Code)
	}
}

func TestMoveEndpoint(t *testing.T) {
	srv := newTestServer(t)
	info := createSession(t, srv, "classic")

	w := doJSON(t, srv, "POST", "/api/sessions/"+info.ID+"/move", map[string]interface{}{
		"direction": "right",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var result service.MoveResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("Failed to decode result: %v", err)
	}
	if !result.Success {
		t.Fatal("Expected a successful move")
	}
	if result.Board != "...@" {
		t.Errorf("Expected board ...@, got %q", result.Board)
	}
	if result.ScoreDelta != 13 {
		t.Errorf("Expected score delta 13, got %d", result.ScoreDelta)
	}
	if !result.GameOver {
		t.Error("Expected game over")
	}
}

func TestMoveEndpointBadRequests(t *testing.T) {
	srv := newTestServer(t)
	info := createSession(t, srv, "classic")

	req := httptest.NewRequest("POST", "/api/sessions/"+info.ID+"/move", bytes.NewBufferString("{"))
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for malformed body, got %d", w.Code)
	}

	w2 := doJSON(t, srv, "POST", "/api/sessions/"+info.ID+"/move", map[string]string{"direction": "sideways"})
	if w2.Code != http.StatusInternalServerError {
		t.Errorf("Expected 500 for unknown direction, got %d", w2.Code)
	}
}

func TestResetEndpoint(t *testing.T) {
	srv := newTestServer(t)
	info := createSession(t, srv, "gauntlet")

	doJSON(t, srv, "POST", "/api/sessions/"+info.ID+"/move", map[string]string{"direction": "left"})

	w := doJSON(t, srv, "POST", "/api/sessions/"+info.ID+"/reset", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	var response struct {
		Board string `json:"board"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if response.Board != "0..P\n0..O" {
		t.Errorf("Expected the restored board, got %q", response.Board)
	}
}

func TestHistoryEndpoint(t *testing.T) {
	srv := newTestServer(t)
	info := createSession(t, srv, "gauntlet")

	doJSON(t, srv, "POST", "/api/sessions/"+info.ID+"/move", map[string]string{"direction": "left"})
	doJSON(t, srv, "POST", "/api/sessions/"+info.ID+"/move", map[string]string{"direction": "right"})

	w := doJSON(t, srv, "GET", "/api/sessions/"+info.ID+"/history?order=asc&limit=1&page=2", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	var history service.HistoryResponse
	if err := json.Unmarshal(w.Body.Bytes(), &history); err != nil {
		t.Fatalf("Failed to decode history: %v", err)
	}
	if history.TotalMoves != 2 || history.TotalPages != 2 {
		t.Errorf("Expected 2 moves over 2 pages, got %+v", history)
	}
	if len(history.Moves) != 1 || history.Moves[0].MoveNumber != 2 {
		t.Errorf("Unexpected page: %+v", history.Moves)
	}
}

func TestListLevels(t *testing.T) {
	srv := newTestServer(t)

	w := doJSON(t, srv, "GET", "/api/levels", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	var levels []service.LevelInfo
	if err := json.Unmarshal(w.Body.Bytes(), &levels); err != nil {
		t.Fatalf("Failed to decode levels: %v", err)
	}
	if len(levels) != 2 {
		t.Errorf("Expected 2 levels, got %d", len(levels))
	}
}

func TestLeaderboardFlow(t *testing.T) {
	srv := newTestServer(t)
	info := createSession(t, srv, "classic")

	// Submitting before the game is over is refused
	w := doJSON(t, srv, "POST", "/api/levels/classic/leaderboard", map[string]string{
		"session_id":  info.ID,
		"player_name": "alice",
	})
	if w.Code != http.StatusConflict {
		t.Fatalf("Expected 409 before game over, got %d: %s", w.Code, w.Body.String())
	}

	doJSON(t, srv, "POST", "/api/sessions/"+info.ID+"/move", map[string]string{"direction": "right"})

	w = doJSON(t, srv, "POST", "/api/levels/classic/leaderboard", map[string]string{
		"session_id":  info.ID,
		"player_name": "alice",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var board service.LeaderboardInfo
	if err := json.Unmarshal(w.Body.Bytes(), &board); err != nil {
		t.Fatalf("Failed to decode board: %v", err)
	}
	if len(board.Entries) != 1 || board.Entries[0].Name != "alice" || board.Entries[0].Score != 13 {
		t.Errorf("Unexpected entries: %+v", board.Entries)
	}

	w = doJSON(t, srv, "GET", "/api/levels/classic/leaderboard", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	w = doJSON(t, srv, "DELETE", "/api/levels/classic/leaderboard", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	w = doJSON(t, srv, "GET", "/api/levels/classic/leaderboard", nil)
	var cleared service.LeaderboardInfo
	if err := json.Unmarshal(w.Body.Bytes(), &cleared); err != nil {
		t.Fatalf("Failed to decode board: %v", err)
	}
	if len(cleared.Entries) != 0 {
		t.Errorf("Expected an empty board after clear, got %+v", cleared.Entries)
	}
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	w := doJSON(t, srv, "GET", "/api/health", nil)
	if w.Code != http.StatusOK {
		t.Errorf("Expected 200, got %d", w.Code)
	}
}
