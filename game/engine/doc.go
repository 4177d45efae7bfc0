// Package engine provides the core game logic for Egg Roll.
//
// The engine package implements the game mechanics including:
//   - Grid storage with bounds-checked reads
//   - Direction decoding (delta, axis, polarity, display glyph)
//   - Wavefront movement resolution with collision-free ordering
//   - Scoring, move budget, and terminal-state computation
//   - Level file parsing and validation
//
// Core Types:
//
// The Engine interface defines the main contract for game operations,
// implemented by GameEngine. GameState holds the mutable state of one
// playthrough; Level is the immutable parsed level file.
//
// Usage:
//
//	level, err := engine.LoadLevel("levels/classic.txt")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	game, err := engine.NewEngine(level)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	dir, err := engine.ParseDirection("r")
//	if err == nil {
//		game.Move(dir, nil)
//	}
//
// Game Rules:
//
// Every egg on the board slides in the chosen direction until it hits
// an obstacle, falls into a frying pan (score -5), or closes an empty
// nest (score +10 plus the remaining move budget). Eggs move in
// waves: within one wave the egg closest to the direction of travel
// moves first, which guarantees two eggs never occupy the same cell.
// The game ends when the move budget is spent or no eggs remain.
package engine
