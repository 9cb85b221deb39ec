package engine

import (
	"math/rand/v2"
	"time"
)

// RandSource is the subset of *rand.Rand the spawner needs, abstracted for tests
type RandSource interface {
	IntN(n int) int
	Float64() float64
}

// NewRandSource returns a PCG-backed source seeded from seed
func NewRandSource(seed uint64) RandSource {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Spawner places new low-value tiles on random empty cells
type Spawner struct {
	rng            RandSource
	twoProbability float64
}

// NewSpawner creates a spawner; twoProbability outside [0,1] falls back to 0.5
func NewSpawner(rng RandSource, twoProbability float64) *Spawner {
	if rng == nil {
		rng = NewRandSource(uint64(time.Now().UnixNano()))
	}
	if twoProbability < 0 || twoProbability > 1 {
		twoProbability = DefaultTwoChance
	}
	return &Spawner{rng: rng, twoProbability: twoProbability}
}

// Place puts a 2 or a 4 on a uniformly chosen empty cell of g and returns its
// position. On a full grid it returns ErrGridFull and leaves g unchanged.
func (s *Spawner) Place(g Grid) (Position, error) {
	empty := g.EmptyCells()
	if len(empty) == 0 {
		return Position{}, ErrGridFull
	}
	pos := empty[s.rng.IntN(len(empty))]
	value := 4
	if s.rng.Float64() < s.twoProbability {
		value = 2
	}
	g[pos.Row][pos.Col] = NewTile(value)
	return pos, nil
}
