// Package tui implements the interactive terminal front end: board
// rendering, the move prompt loop, per-wave animation and the
// end-of-game leaderboard flow.
package tui
