package service

import (
	"context"
	"time"

	"github.com/eggroll-game/eggroll/game/engine"
	"github.com/eggroll-game/eggroll/game/leaderboard"
)

// GameService defines all game-related operations
type GameService interface {
	// Session Management
	CreateSession(ctx context.Context, levelName string) (*SessionInfo, error)
	GetSession(ctx context.Context, sessionID string) (*SessionInfo, error)
	ListSessions(ctx context.Context) ([]*SessionInfo, error)
	DeleteSession(ctx context.Context, sessionID string) error

	// Game Operations
	Move(ctx context.Context, sessionID, direction string, reset bool) (*MoveResult, error)
	Reset(ctx context.Context, sessionID string) (*engine.GameState, error)

	// Game State
	GetGameState(ctx context.Context, sessionID string) (*engine.GameState, error)
	GetMoveHistory(ctx context.Context, sessionID string, opts HistoryOptions) (*HistoryResponse, error)

	// Levels
	ListLevels(ctx context.Context) ([]*LevelInfo, error)

	// Leaderboards
	GetLeaderboard(ctx context.Context, levelName string) (*LeaderboardInfo, error)
	SubmitScore(ctx context.Context, sessionID, playerName string) (*LeaderboardInfo, error)
	ClearLeaderboard(ctx context.Context, levelName string) error
}

// SessionManager defines session storage operations
type SessionManager interface {
	Create(id string, level *engine.Level) (*Session, error)
	Get(id string) (*Session, error)
	GetOrCreate(id string, level *engine.Level) (*Session, error)
	List() []*Session
	Delete(id string) error
	UpdateLastAccessed(id string) error
	Save(id string) error
}

// LevelManager handles level loading
type LevelManager interface {
	Load(name string) (*engine.Level, error)
	List() ([]*LevelInfo, error)
	Default() *engine.Level
	Path(name string) string
	Refresh() error
}

// StoreFactory resolves the leaderboard store for a level name.
// Injecting the factory keeps the service free of file-path knowledge.
type StoreFactory func(levelName string) leaderboard.Store

// Session represents an active game session
type Session struct {
	ID             string
	Engine         *engine.GameEngine
	Level          *engine.Level
	Submitted      bool
	CreatedAt      time.Time
	LastAccessedAt time.Time
}
