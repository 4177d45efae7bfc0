package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/eggroll-game/eggroll/game/engine"
	"github.com/eggroll-game/eggroll/game/leaderboard"
)

var (
	ErrGameNotOver       = errors.New("game is not over yet")
	ErrScoreNotQualified = errors.New("score does not qualify for the leaderboard")
	ErrAlreadySubmitted  = errors.New("score already submitted for this session")
)

// gameServiceImpl implements the GameService interface. Its mutex
// serializes every game mutation in the process, so the lock-free
// engine only ever runs one move at a time.
type gameServiceImpl struct {
	sessions SessionManager
	levels   LevelManager
	stores   StoreFactory
	mu       sync.RWMutex
}

// NewGameService creates a new game service instance
func NewGameService(sessions SessionManager, levels LevelManager, stores StoreFactory) GameService {
	return &gameServiceImpl{
		sessions: sessions,
		levels:   levels,
		stores:   stores,
	}
}

// CreateSession creates a new game session
func (s *gameServiceImpl) CreateSession(ctx context.Context, levelName string) (*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var level *engine.Level
	var err error
	if levelName != "" {
		level, err = s.levels.Load(levelName)
		if err != nil {
			available, listErr := s.levels.List()
			if listErr == nil && len(available) > 0 {
				var ids []string
				for _, info := range available {
					ids = append(ids, info.LevelID)
				}
				return nil, fmt.Errorf("level '%s' not found. Available levels: %v", levelName, ids)
			}
			return nil, fmt.Errorf("failed to load level %s: %w", levelName, err)
		}
	} else {
		level = s.levels.Default()
	}

	// Let the session manager generate a proper 4-character ID
	session, err := s.sessions.Create("", level)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return s.sessionInfo(session), nil
}

// GetSession retrieves session information
func (s *gameServiceImpl) GetSession(ctx context.Context, sessionID string) (*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)

	return s.sessionInfo(session), nil
}

// ListSessions returns all active sessions
func (s *gameServiceImpl) ListSessions(ctx context.Context) ([]*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := s.sessions.List()
	result := make([]*SessionInfo, 0, len(sessions))

	for _, sess := range sessions {
		result = append(result, s.sessionInfo(sess))
	}

	return result, nil
}

// DeleteSession removes a session
func (s *gameServiceImpl) DeleteSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sessions.Delete(sessionID)
}

// Move executes a single move for a session. The move cascades to
// completion inside the engine; the result carries one rendered board
// frame per wave so clients can animate.
func (s *gameServiceImpl) Move(ctx context.Context, sessionID, direction string, reset bool) (*MoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)

	if reset {
		sess.Engine.Reset()
		sess.Submitted = false
	}

	dir, err := engine.ParseDirectionName(direction)
	if err != nil {
		return nil, err
	}

	state := sess.Engine.GetState()

	if !sess.Engine.CanAccept() {
		return &MoveResult{
			Success:       false,
			GameState:     state,
			Board:         state.Grid.Render(),
			EggsRemaining: len(state.Eggs),
			GameOver:      true,
			Message:       "Game over. Reset to play again.",
		}, nil
	}

	var frames []string
	rec := sess.Engine.Move(dir, func(g *engine.Grid) {
		frames = append(frames, g.Render())
	})
	if rec == nil {
		return nil, fmt.Errorf("move rejected for session %s", sessionID)
	}

	state = sess.Engine.GetState()
	result := &MoveResult{
		Success:       true,
		Direction:     rec.Direction,
		Glyph:         rec.Glyph,
		GameState:     state,
		Board:         state.Grid.Render(),
		Frames:        frames,
		ScoreDelta:    rec.ScoreDelta,
		EggsResolved:  rec.EggsResolved,
		EggsRemaining: rec.EggsRemaining,
		GameOver:      state.Terminal,
		Message:       state.Message,
	}
	if state.Terminal {
		result.Message = fmt.Sprintf("Game over. Final score: %d", state.Score)
	}

	s.sessions.Save(sessionID)

	return result, nil
}

// Reset restarts a session's game from its level
func (s *gameServiceImpl) Reset(ctx context.Context, sessionID string) (*engine.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)

	state := sess.Engine.Reset()
	sess.Submitted = false
	s.sessions.Save(sessionID)

	return state, nil
}

// GetGameState returns the current state of a session
func (s *gameServiceImpl) GetGameState(ctx context.Context, sessionID string) (*engine.GameState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)

	return sess.Engine.GetState(), nil
}

// GetMoveHistory returns a page of the session's move history
func (s *gameServiceImpl) GetMoveHistory(ctx context.Context, sessionID string, opts HistoryOptions) (*HistoryResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	history := sess.Engine.GetMoveHistory()
	total := len(history)

	page := opts.Page
	if page < 1 {
		page = 1
	}
	limit := opts.Limit
	if limit < 1 {
		limit = 20
	}

	ordered := make([]engine.MoveRecord, total)
	copy(ordered, history)
	if opts.Order == "desc" {
		for i, j := 0, total-1; i < j; i, j = i+1, j-1 {
			ordered[i], ordered[j] = ordered[j], ordered[i]
		}
	}

	totalPages := (total + limit - 1) / limit
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return &HistoryResponse{
		Moves:       ordered[start:end],
		TotalMoves:  total,
		Page:        page,
		PageSize:    limit,
		TotalPages:  totalPages,
		HasNext:     page < totalPages,
		HasPrevious: page > 1 && total > 0,
	}, nil
}

// ListLevels returns information about all available levels
func (s *gameServiceImpl) ListLevels(ctx context.Context) ([]*LevelInfo, error) {
	return s.levels.List()
}

// GetLeaderboard returns a level's ranked scores
func (s *gameServiceImpl) GetLeaderboard(ctx context.Context, levelName string) (*LeaderboardInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, err := s.levels.Load(levelName); err != nil {
		return nil, fmt.Errorf("level not found: %w", err)
	}

	board, err := leaderboard.NewBoard(s.stores(levelName))
	if err != nil {
		return nil, err
	}

	return s.leaderboardInfo(levelName, board), nil
}

// SubmitScore records a finished session's score on its level's
// leaderboard. The game must be over and the score must qualify; a
// session submits at most once per run.
func (s *gameServiceImpl) SubmitScore(ctx context.Context, sessionID, playerName string) (*LeaderboardInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	if !sess.Engine.IsTerminal() {
		return nil, ErrGameNotOver
	}
	if sess.Submitted {
		return nil, ErrAlreadySubmitted
	}

	levelName := sess.Level.Name
	board, err := leaderboard.NewBoard(s.stores(levelName))
	if err != nil {
		return nil, err
	}

	score := sess.Engine.GetScore()
	if !board.Qualifies(score) {
		return nil, ErrScoreNotQualified
	}

	if err := board.Submit(playerName, score); err != nil {
		return nil, fmt.Errorf("failed to submit score: %w", err)
	}
	sess.Submitted = true

	// Cached levels hold the old trailer until refreshed
	if err := s.levels.Refresh(); err != nil {
		return nil, fmt.Errorf("failed to refresh levels after submit: %w", err)
	}

	return s.leaderboardInfo(levelName, board), nil
}

// ClearLeaderboard truncates a level's score trailer
func (s *gameServiceImpl) ClearLeaderboard(ctx context.Context, levelName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.levels.Load(levelName); err != nil {
		return fmt.Errorf("level not found: %w", err)
	}

	board, err := leaderboard.NewBoard(s.stores(levelName))
	if err != nil {
		return err
	}
	if err := board.Clear(); err != nil {
		return err
	}

	return s.levels.Refresh()
}

func (s *gameServiceImpl) sessionInfo(sess *Session) *SessionInfo {
	state := sess.Engine.GetState()
	return &SessionInfo{
		ID:             sess.ID,
		LevelName:      sess.Level.Name,
		CreatedAt:      sess.CreatedAt,
		LastAccessedAt: sess.LastAccessedAt,
		GameState:      state,
		Board:          state.Grid.Render(),
	}
}

func (s *gameServiceImpl) leaderboardInfo(levelName string, board *leaderboard.Board) *LeaderboardInfo {
	return &LeaderboardInfo{
		Level:   levelName,
		Entries: board.Entries(),
		Table:   board.Render(),
	}
}
