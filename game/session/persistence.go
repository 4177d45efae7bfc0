package session

import (
	"time"

	"github.com/eggroll-game/eggroll/game/engine"
	"github.com/eggroll-game/eggroll/game/service"
)

// SessionPersistence defines the interface for persisting sessions
type SessionPersistence interface {
	// Save persists a session to storage
	Save(session *service.Session) error

	// Load retrieves a session from storage by ID
	Load(id string) (*service.Session, error)

	// Delete removes a session from storage
	Delete(id string) error

	// ListAll returns all persisted session IDs
	ListAll() ([]string, error)

	// Exists checks if a session exists in storage
	Exists(id string) bool
}

// PersistedSessionData represents the JSON structure for persisted
// sessions. The board is stored as its rendered text; eggs are
// recomputed from it on load.
type PersistedSessionData struct {
	ID             string              `json:"id"`
	LevelName      string              `json:"level_name"`
	CreatedAt      time.Time           `json:"created_at"`
	LastAccessedAt time.Time           `json:"last_accessed_at"`
	Board          string              `json:"board"`
	MovesRemaining int                 `json:"moves_remaining"`
	Score          int                 `json:"score"`
	Terminal       bool                `json:"terminal"`
	Submitted      bool                `json:"submitted"`
	PreviousMoves  []string            `json:"previous_moves"`
	MoveHistory    []engine.MoveRecord `json:"move_history"`
	TotalMoves     int                 `json:"total_moves"`
}
