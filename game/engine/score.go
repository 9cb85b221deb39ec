package engine

import "sync"

// BestScoreStore persists the best score outside the session.
// A missing value loads as 0.
type BestScoreStore interface {
	LoadBestScore() (int, error)
	SaveBestScore(score int) error
}

// MemoryBestScore is an in-process BestScoreStore
type MemoryBestScore struct {
	mu   sync.Mutex
	best int
}

func (m *MemoryBestScore) LoadBestScore() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.best, nil
}

// SaveBestScore keeps score only if it beats the stored value
func (m *MemoryBestScore) SaveBestScore(score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if score > m.best {
		m.best = score
	}
	return nil
}

// ScoreTracker holds the running score and the best score seen so far
type ScoreTracker struct {
	current int
	best    int
}

// NewScoreTracker starts at zero with the given best score
func NewScoreTracker(best int) *ScoreTracker {
	if best < 0 {
		best = 0
	}
	return &ScoreTracker{best: best}
}

// Add accumulates a merge result into the current score
func (s *ScoreTracker) Add(delta int) {
	if delta > 0 {
		s.current += delta
	}
}

func (s *ScoreTracker) Current() int { return s.current }

func (s *ScoreTracker) Best() int { return s.best }

// MaybeUpdateBest raises best to current if current is higher and reports
// whether it did.
func (s *ScoreTracker) MaybeUpdateBest() bool {
	if s.current > s.best {
		s.best = s.current
		return true
	}
	return false
}

// RaiseBest lifts best to at least best without touching the current score
func (s *ScoreTracker) RaiseBest(best int) {
	if best > s.best {
		s.best = best
	}
}

// Reset zeroes the current score; best is kept
func (s *ScoreTracker) Reset() {
	s.current = 0
}

// Restore sets both scores, never lowering best
func (s *ScoreTracker) Restore(current, best int) {
	if current < 0 {
		current = 0
	}
	s.current = current
	if best > s.best {
		s.best = best
	}
	s.MaybeUpdateBest()
}
