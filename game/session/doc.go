// Package session provides session management for the 2048 game.
//
// The session package implements:
//   - Thread-safe session storage and retrieval
//   - Unique session ID generation
//   - JSON file persistence of running games
//   - Best scores kept per configuration
//   - Session cleanup and expiration
//
// Core Types:
//
// Manager is the main session manager that handles all session operations.
// Each session owns its own engine; sessions never share a grid.
//
// BestScores records the highest score reached per config ID. Engines get a
// per-config view of it, so every classic session competes for the same
// record while a mini session keeps its own. Records only ever go up.
//
// Session Identifiers:
//
// Generated IDs are 4 hex characters drawn from crypto/rand. Caller-chosen IDs
// are allowed if they use letters, digits, '-' or '_'. Lookups ignore case.
//
// Usage:
//
//	best, _ := session.NewBestScores("sessions/best/scores.json")
//	persistence, _ := session.NewFilePersistence("sessions", configs, best)
//	manager := session.NewManagerWithPersistence(persistence, best)
//
//	sess, err := manager.Create("", "classic", configs.GetDefault())
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Retrieve existing session, loading it from disk if needed
//	sess, err = manager.Get(sess.ID)
//
// Cleanup:
//
// CleanupExpiredSessions drops idle sessions from memory only; their files
// stay on disk and are reloaded on the next Get.
package session
