// Package websocket provides the WebSocket render feed for the 2048 game.
//
// The websocket package implements:
//   - Session-aware WebSocket connections
//   - Broadcasting of the game state after every change
//   - Connection lifecycle management
//
// Architecture:
//
// A central Hub keeps, per session ID, the set of connected clients. Each
// connection gets a read goroutine (which only keeps the connection alive)
// and a write goroutine fed by a buffered channel. A client whose buffer
// fills up is disconnected rather than allowed to stall a broadcast.
//
// Message Protocol:
//
// The feed is one way. Outgoing messages are JSON:
//
//	{"session_id": "ab12", "event": "state_update", "game_state": {...}}
//	{"session_id": "ab12", "event": "game_over", "data": {...}}
//
// Moves are made through the REST API; this package only renders them.
//
// Usage:
//
//	hub := websocket.NewHub()
//	go hub.Run(ctx)
//
//	router.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
//		hub.ServeWS(w, r, r.URL.Query().Get("session"))
//	})
//
// Cancelling the context passed to Run disconnects every client.
package websocket
