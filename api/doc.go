// Package api provides the HTTP REST API for the 2048 server.
//
// The api package implements:
//   - Session management endpoints
//   - Move, bulk move and reset endpoints
//   - Paginated move history
//   - Configuration listing, loading and saving
//   - WebSocket upgrade for the render feed
//
// Endpoints:
//
// Session Management:
//   - POST /api/sessions - Create new session ({"config_id": "mini"}, optional)
//   - GET /api/sessions - List sessions (?sort=accessed|created|score&order=asc|desc&limit=N)
//   - GET /api/sessions/unified - Several sessions side by side (?sessionIds=a,b or ?configId=classic)
//   - GET /api/sessions/{id} - Get specific session
//   - DELETE /api/sessions/{id} - Delete session
//
// Game Operations:
//   - GET /api/sessions/{id}/state - Current game state
//   - POST /api/sessions/{id}/move - {"direction": "left", "reset": false}
//   - POST /api/sessions/{id}/bulk-move - {"moves": ["left", "up"], "reset": false}
//   - POST /api/sessions/{id}/reset - Start a new game, best score kept
//   - GET /api/sessions/{id}/history - ?page=1&limit=20&order=desc
//
// Configuration:
//   - GET /api/configs - List available configurations
//   - GET /api/configs/{name} - Load one configuration
//   - POST /api/configs - Save a configuration ({"config_id": "huge", "grid_size": 6, ...})
//
// Render feed:
//   - GET /ws?session={id} - WebSocket state updates, see package websocket
//
// Usage:
//
//	server := api.NewServer(gameService, hub)
//	http.ListenAndServe(":8080", server)
//
// Error Handling:
//
// Errors are returned as JSON with the HTTP status code repeated in the body:
//
//	{
//	  "error": "invalid direction \"diagonal\": use up, down, left or right",
//	  "code": 400
//	}
//
// Invalid directions, session IDs and configs map to 400, unknown sessions
// and configs to 404, and moves on a finished game to 409.
package api
