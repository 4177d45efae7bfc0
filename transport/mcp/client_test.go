package mcp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/eggroll-game/eggroll/game/engine"
	"github.com/eggroll-game/eggroll/game/service"
)

func TestNewClient(t *testing.T) {
	baseURL := "http://localhost:8080"
	client := NewClient(baseURL)

	if client == nil {
		t.Fatal("Expected client to be created")
	}

	if client.baseURL != baseURL {
		t.Errorf("Expected baseURL %s, got %s", baseURL, client.baseURL)
	}

	if client.httpClient == nil {
		t.Error("Expected HTTP client to be initialized")
	}

	if client.mcpServer == nil {
		t.Error("Expected MCP server to be initialized")
	}
}

func TestClient_apiCall(t *testing.T) {
	expectedResponse := map[string]interface{}{
		"id":         "ab12",
		"level_name": "classic",
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/sessions/ab12" {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(expectedResponse)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	var result map[string]interface{}
	if err := client.apiCall("GET", "/api/sessions/ab12", nil, &result); err != nil {
		t.Fatalf("apiCall failed: %v", err)
	}

	if result["id"] != "ab12" {
		t.Errorf("Expected id ab12, got %v", result["id"])
	}
}

func TestClient_apiCallErrorResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "session not found"})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	err := client.apiCall("GET", "/api/sessions/zzzz", nil, nil)
	if err == nil {
		t.Fatal("Expected an error for a 404 response")
	}
	if !strings.Contains(err.Error(), "session not found") {
		t.Errorf("Expected the API error message, got %v", err)
	}
}

func TestFormatGameState(t *testing.T) {
	state := &engine.GameState{
		Score:          13,
		MovesRemaining: 3,
		Eggs:           []engine.Position{},
		Terminal:       true,
		PreviousMoves:  []string{"→"},
	}

	out := formatGameState(state, "...@")

	if !strings.Contains(out, "Score: 13 | Remaining Moves: 3 | Eggs left: 0") {
		t.Errorf("Missing stats header in %q", out)
	}
	if !strings.Contains(out, "...@") {
		t.Errorf("Missing board in %q", out)
	}
	if !strings.Contains(out, "Previous Moves: →") {
		t.Errorf("Missing previous moves in %q", out)
	}
	if !strings.Contains(out, "GAME OVER") {
		t.Errorf("Missing game over marker in %q", out)
	}
}

func TestFormatGameState_Nil(t *testing.T) {
	if out := formatGameState(nil, ""); out != "No game state available" {
		t.Errorf("Unexpected output for nil state: %q", out)
	}
}

func TestFormatMoveResult(t *testing.T) {
	result := &service.MoveResult{
		Success:      true,
		Direction:    "right",
		Glyph:        "→",
		EggsResolved: 1,
		ScoreDelta:   13,
		Frames:       []string{".0.O", "..0O", "...@"},
		Board:        "...@",
		GameState: &engine.GameState{
			Score:          13,
			MovesRemaining: 3,
			Eggs:           []engine.Position{},
		},
	}

	out := formatMoveResult(result)

	if !strings.Contains(out, "Move right → resolved 1 egg(s), score +13") {
		t.Errorf("Missing move summary in %q", out)
	}
	if !strings.Contains(out, "(3 waves)") {
		t.Errorf("Missing wave count in %q", out)
	}
}

func TestFormatMoveResult_Refused(t *testing.T) {
	result := &service.MoveResult{
		Success:   false,
		GameState: &engine.GameState{},
	}

	if out := formatMoveResult(result); !strings.Contains(out, "Move refused") {
		t.Errorf("Expected refusal message in %q", out)
	}
}

func TestFormatHistory(t *testing.T) {
	history := &service.HistoryResponse{
		Page:       1,
		TotalPages: 2,
		TotalMoves: 3,
		Moves: []engine.MoveRecord{
			{MoveNumber: 1, Direction: "right", Glyph: "→", EggsResolved: 1, EggsRemaining: 1, ScoreDelta: 14, MovesLeft: 4},
			{MoveNumber: 2, Direction: "left", Glyph: "←", EggsResolved: 0, EggsRemaining: 1, ScoreDelta: 0, MovesLeft: 3},
		},
	}

	out := formatHistory(history)

	if !strings.Contains(out, "Move History (Page 1/2) - Total: 3") {
		t.Errorf("Missing header in %q", out)
	}
	if !strings.Contains(out, "1. right → resolved=1 left=1 score+14 [moves left: 4]") {
		t.Errorf("Missing first record in %q", out)
	}
	if !strings.Contains(out, "2. left ← resolved=0 left=1 score+0 [moves left: 3]") {
		t.Errorf("Missing second record in %q", out)
	}
}
