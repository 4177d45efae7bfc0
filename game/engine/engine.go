package engine

import (
	"fmt"
	"time"
)

// Engine provides the main interface for game operations
type Engine interface {
	// Game state management
	GetState() *GameState
	SetState(state *GameState) error
	Reset() *GameState
	IsTerminal() bool
	GetScore() int
	GetMovesRemaining() int
	GetEggs() []Position

	// Movement
	Move(dir Direction, frame FrameFunc) *MoveRecord
	CanAccept() bool

	// Level
	GetLevel() *Level

	// History
	GetMoveHistory() []MoveRecord
	GetLastMove() *MoveRecord
}

// GameEngine implements the Engine interface
type GameEngine struct {
	state *GameState
	level *Level
}

// NewEngine creates a new game engine for the provided level
func NewEngine(level *Level) (*GameEngine, error) {
	if err := ValidateLevel(level); err != nil {
		return nil, err
	}

	return &GameEngine{
		level: level,
		state: InitGameStateFromLevel(level),
	}, nil
}

// GetState returns the current game state
func (e *GameEngine) GetState() *GameState {
	return e.state
}

// SetState sets the game state (used for persistence loading)
func (e *GameEngine) SetState(state *GameState) error {
	if state == nil {
		return fmt.Errorf("state cannot be nil")
	}
	if state.Grid == nil {
		return fmt.Errorf("state grid cannot be nil")
	}
	e.state = state
	return nil
}

// Reset reinitializes the game from the level, preserving cumulative
// move history and totals.
func (e *GameEngine) Reset() *GameState {
	prevHistory := e.state.MoveHistory
	prevTotal := e.state.TotalMoves

	e.state = InitGameStateFromLevel(e.level)
	e.state.MoveHistory = prevHistory
	e.state.TotalMoves = prevTotal

	return e.state
}

// IsTerminal reports whether further moves are accepted
func (e *GameEngine) IsTerminal() bool {
	return e.state.Terminal
}

// GetScore returns the current score
func (e *GameEngine) GetScore() int {
	return e.state.Score
}

// GetMovesRemaining returns the remaining move budget
func (e *GameEngine) GetMovesRemaining() int {
	return e.state.MovesRemaining
}

// GetEggs returns the active egg coordinates
func (e *GameEngine) GetEggs() []Position {
	return e.state.Eggs
}

// CanAccept reports whether the engine will accept another move.
func (e *GameEngine) CanAccept() bool {
	return !e.state.Terminal && e.state.MovesRemaining > 0
}

// Move charges one move from the budget and resolves it to
// completion. It returns nil when the game is already terminal.
// frame, if non-nil, observes the grid after each wave.
func (e *GameEngine) Move(dir Direction, frame FrameFunc) *MoveRecord {
	if !e.CanAccept() {
		return nil
	}

	gs := e.state
	gs.MovesRemaining--
	gs.PreviousMoves = append(gs.PreviousMoves, dir.Glyph())

	scoreBefore := gs.Score
	resolved := gs.Resolve(dir, frame)

	rec := MoveRecord{
		Direction:     dir.String(),
		Glyph:         dir.Glyph(),
		ScoreDelta:    gs.Score - scoreBefore,
		EggsResolved:  resolved,
		EggsRemaining: len(gs.Eggs),
		MovesLeft:     gs.MovesRemaining,
		Timestamp:     time.Now().Unix(),
		MoveNumber:    gs.TotalMoves + 1,
	}
	gs.MoveHistory = append(gs.MoveHistory, rec)
	gs.TotalMoves++

	return &rec
}

// GetLevel returns the level this engine was built from
func (e *GameEngine) GetLevel() *Level {
	return e.level
}

// GetMoveHistory returns the complete move history
func (e *GameEngine) GetMoveHistory() []MoveRecord {
	return e.state.MoveHistory
}

// GetLastMove returns the last move made, or nil if no moves
func (e *GameEngine) GetLastMove() *MoveRecord {
	if len(e.state.MoveHistory) == 0 {
		return nil
	}
	return &e.state.MoveHistory[len(e.state.MoveHistory)-1]
}
