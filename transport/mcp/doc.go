// Package mcp exposes the 2048 REST API as Model Context Protocol tools.
//
// The Client registers one tool per REST operation and proxies every call
// over HTTP, so an agent sees exactly the state a browser or the terminal
// client would:
//   - create_session, list_sessions, get_session
//   - game_state, move, bulk_move, reset_game, move_history
//   - list_configs, game_instructions
//
// Results are plain text with the board right-aligned:
//
//	Score: 16 | Best: 16 | Highest tile: 8 | Moves: 3
//
//	   8    2    .    .
//	   4    .    .    .
//	   .    .    .    .
//	   .    .    .    2
//
// Transport Modes:
//   - Stdio: server.ServeStdio(client.GetMCPServer())
//   - HTTP: client.HTTPHandler() mounted at /mcp, one JSON-RPC message per POST
package mcp
