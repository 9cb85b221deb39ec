package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/VitSay/2048/game/engine"
)

// BestScoreProvider hands out a best-score store per configuration, so that
// a 3x3 record never competes with a 4x4 one.
type BestScoreProvider interface {
	ForConfig(configID string) engine.BestScoreStore
}

// BestScores keeps the best score per config ID, optionally mirrored to a
// JSON file. Writes only ever raise a value.
type BestScores struct {
	path   string
	scores map[string]int
	mu     sync.RWMutex
}

// NewMemoryBestScores returns a provider that never touches disk
func NewMemoryBestScores() *BestScores {
	return &BestScores{scores: make(map[string]int)}
}

// NewBestScores loads best scores from path. A missing file is an empty table.
func NewBestScores(path string) (*BestScores, error) {
	b := &BestScores{path: path, scores: make(map[string]int)}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return b, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read best scores: %w", err)
	}
	if len(data) == 0 {
		return b, nil
	}
	if err := json.Unmarshal(data, &b.scores); err != nil {
		return nil, fmt.Errorf("failed to parse best scores %s: %w", path, err)
	}
	return b, nil
}

// Get returns the best score recorded for configID, 0 when none
func (b *BestScores) Get(configID string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.scores[configID]
}

// Record stores score for configID if it beats the current record.
// It reports whether the record changed.
func (b *BestScores) Record(configID string, score int) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if score <= b.scores[configID] {
		return false, nil
	}
	b.scores[configID] = score
	return true, b.flush()
}

// All returns a copy of every recorded best score
func (b *BestScores) All() map[string]int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make(map[string]int, len(b.scores))
	for k, v := range b.scores {
		out[k] = v
	}
	return out
}

// flush writes the table atomically; callers hold the write lock
func (b *BestScores) flush() error {
	if b.path == "" {
		return nil
	}
	data, err := json.MarshalIndent(b.scores, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal best scores: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(b.path), 0755); err != nil {
		return fmt.Errorf("failed to create best scores directory: %w", err)
	}
	tmp := b.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write best scores: %w", err)
	}
	if err := os.Rename(tmp, b.path); err != nil {
		return fmt.Errorf("failed to replace best scores: %w", err)
	}
	return nil
}

// ForConfig implements BestScoreProvider
func (b *BestScores) ForConfig(configID string) engine.BestScoreStore {
	return &configBestScore{scores: b, configID: configID}
}

type configBestScore struct {
	scores   *BestScores
	configID string
}

func (c *configBestScore) LoadBestScore() (int, error) {
	return c.scores.Get(c.configID), nil
}

func (c *configBestScore) SaveBestScore(score int) error {
	_, err := c.scores.Record(c.configID, score)
	return err
}
