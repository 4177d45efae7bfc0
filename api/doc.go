// Package api provides the HTTP REST interface for the egg rolling game.
//
// The api package implements:
//   - RESTful endpoints for game operations
//   - Session management endpoints
//   - Level listing and per-level leaderboards
//   - WebSocket upgrade handling
//
// Endpoints:
//
// Session Management:
//   - POST /api/sessions - Create new session (optional level_id)
//   - GET /api/sessions - List active sessions (sort/order/limit query params)
//   - GET /api/sessions/{id} - Get session details with the rendered board
//   - DELETE /api/sessions/{id} - Delete a session
//
// Game Operations:
//   - GET /api/sessions/{id}/state - Current game state and board
//   - POST /api/sessions/{id}/move - Execute one move (direction, optional reset)
//   - POST /api/sessions/{id}/reset - Restore the session's level to its start
//   - GET /api/sessions/{id}/history - Paginated move history (page, limit, order)
//
// Levels and Leaderboards:
//   - GET /api/levels - List playable levels with geometry and counts
//   - GET /api/levels/{name}/leaderboard - Ranked scores plus rendered table
//   - POST /api/levels/{name}/leaderboard - Submit a finished session's score
//   - DELETE /api/levels/{name}/leaderboard - Clear the level's scores
//
// Misc:
//   - GET /api/health - Liveness probe
//   - GET /ws?session={id} - WebSocket upgrade for live state updates
//
// All endpoints accept and return JSON. Errors are returned as JSON
// with appropriate HTTP status codes:
//
//	{
//	  "error": "error message",
//	  "code": 404
//	}
//
// Score submissions that are refused for game-flow reasons (game not
// over, score too low, already submitted) return 409 Conflict.
package api
