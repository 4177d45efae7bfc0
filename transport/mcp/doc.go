// Package mcp provides a Model Context Protocol surface for the egg
// rolling game.
//
// The Client proxies every tool call to the REST API, so the MCP
// server never touches game state directly and agents see exactly
// what HTTP clients see.
//
// MCP Tools:
//
//   - create_session: Create a new game session with level selection
//   - list_sessions: List all active sessions
//   - get_session: Get one session's details
//   - game_state: Current score, budget, and board rendering
//   - move: Execute a single directional move (left/right/forward/back)
//   - reset_game: Restore the level to its starting state
//   - move_history: Paginated history of accepted moves
//   - list_levels: List playable levels
//   - leaderboard: Show a level's top scores
//   - submit_score: Record a finished session's score
//
// Transport Modes:
//
// The server supports two transport modes:
//   - Stdio: direct stdio communication for local MCP clients
//   - HTTP: the /mcp endpoint mounted by the main server
//
// Usage:
//
//	client := mcp.NewClient("http://localhost:8080")
//	server.ServeStdio(client.GetMCPServer())
package mcp
