// Package websocket provides real-time state updates for the egg
// rolling game.
//
// The package uses a hub-and-spoke model where a central Hub manages
// all WebSocket connections. Each client connection is handled by
// dedicated read and write goroutines with ping/pong keepalive.
//
// Message Protocol:
//
// Outgoing messages are JSON-encoded:
//
//	{
//	  "session_id": "ab12",
//	  "event": "move",
//	  "game_state": { ... },
//	  "board": "..0O\n#P..",
//	  "frames": [".0.O", "..0O", "...@"]
//	}
//
// Move events carry the per-wave animation frames so clients can
// replay the cascade; reset events carry the restored state.
//
// Session Integration:
//
// Clients specify their session ID via query parameter
// (?session=ab12) when establishing the connection. Updates are
// broadcast only to clients connected to the same session.
//
// Usage:
//
//	hub := websocket.NewHub()
//	go hub.Run()
//	http.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
//		hub.ServeWS(w, r, sessionID)
//	})
//
// Slow clients whose send buffers fill are dropped rather than
// blocking the hub.
package websocket
