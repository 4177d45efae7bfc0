// Package service exposes the game to transports. GameService is the
// single entry point the REST API, the WebSocket hub and the MCP tools
// all call into; its implementation serializes moves so the engine
// never runs concurrently.
package service
