package service

import (
	"time"

	"github.com/eggroll-game/eggroll/game/engine"
	"github.com/eggroll-game/eggroll/game/leaderboard"
)

// SessionInfo provides information about a game session
type SessionInfo struct {
	ID             string            `json:"id"`
	LevelName      string            `json:"level_name"`
	CreatedAt      time.Time         `json:"created_at"`
	LastAccessedAt time.Time         `json:"last_accessed_at"`
	GameState      *engine.GameState `json:"game_state"`
	Board          string            `json:"board"`
}

// MoveResult contains the result of a move operation
type MoveResult struct {
	Success       bool              `json:"success"`
	Direction     string            `json:"direction,omitempty"`
	Glyph         string            `json:"glyph,omitempty"`
	GameState     *engine.GameState `json:"game_state"`
	Board         string            `json:"board"`
	Frames        []string          `json:"frames,omitempty"`
	ScoreDelta    int               `json:"score_delta"`
	EggsResolved  int               `json:"eggs_resolved"`
	EggsRemaining int               `json:"eggs_remaining"`
	GameOver      bool              `json:"game_over"`
	Message       string            `json:"message,omitempty"`
}

// HistoryOptions configures move history retrieval
type HistoryOptions struct {
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
	Order string `json:"order"` // "asc" or "desc"
}

// HistoryResponse contains paginated move history
type HistoryResponse struct {
	Moves       []engine.MoveRecord `json:"moves"`
	TotalMoves  int                 `json:"total_moves"`
	Page        int                 `json:"page"`
	PageSize    int                 `json:"page_size"`
	TotalPages  int                 `json:"total_pages"`
	HasNext     bool                `json:"has_next"`
	HasPrevious bool                `json:"has_previous"`
}

// LevelInfo provides information about a playable level
type LevelInfo struct {
	Filename string `json:"filename"`
	LevelID  string `json:"level_id"` // The identifier to use for session creation
	Name     string `json:"name"`
	Rows     int    `json:"rows"`
	Cols     int    `json:"cols"`
	Moves    int    `json:"moves"`
	Eggs     int    `json:"eggs"`
	Nests    int    `json:"nests"`
}

// LeaderboardInfo carries a level's ranked scores plus the rendered
// table for text clients
type LeaderboardInfo struct {
	Level   string              `json:"level"`
	Entries []leaderboard.Entry `json:"entries"`
	Table   string              `json:"table"`
}
