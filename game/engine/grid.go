package engine

import "fmt"

// Grid is a square matrix of tile slots; a nil slot is empty
type Grid [][]*Tile

// SlideResult reports what a Grid.Slide did
type SlideResult struct {
	ScoreGained int
	Merges      int
	Changed     bool
}

// NewGrid creates an empty size x size grid
func NewGrid(size int) (Grid, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: size must be positive, got %d", ErrMalformedGrid, size)
	}
	g := make(Grid, size)
	for row := range g {
		g[row] = make([]*Tile, size)
	}
	return g, nil
}

// GridFromValues builds a grid from a value matrix where 0 means empty
func GridFromValues(values [][]int) (Grid, error) {
	g := make(Grid, len(values))
	for row, vals := range values {
		g[row] = make([]*Tile, len(vals))
		for col, v := range vals {
			if v < 0 {
				return nil, fmt.Errorf("%w: negative value %d at (%d,%d)", ErrMalformedGrid, v, row, col)
			}
			if v > 0 {
				g[row][col] = NewTile(v)
			}
		}
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// Size returns the side length
func (g Grid) Size() int {
	return len(g)
}

// Validate checks that the grid is non-empty and square
func (g Grid) Validate() error {
	if len(g) == 0 {
		return fmt.Errorf("%w: grid has no rows", ErrMalformedGrid)
	}
	for row, cells := range g {
		if len(cells) != len(g) {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformedGrid, row, len(cells), len(g))
		}
	}
	return nil
}

// Values returns the grid as a value matrix, 0 for empty slots
func (g Grid) Values() [][]int {
	values := make([][]int, len(g))
	for row, cells := range g {
		values[row] = make([]int, len(cells))
		for col, t := range cells {
			if t != nil {
				values[row][col] = t.Value
			}
		}
	}
	return values
}

// Clone deep-copies the grid, tiles included
func (g Grid) Clone() Grid {
	c := make(Grid, len(g))
	for row, cells := range g {
		c[row] = make([]*Tile, len(cells))
		for col, t := range cells {
			if t != nil {
				tile := *t
				c[row][col] = &tile
			}
		}
	}
	return c
}

// EmptyCells lists empty positions in row-major order
func (g Grid) EmptyCells() []Position {
	var empty []Position
	for row, cells := range g {
		for col, t := range cells {
			if t == nil {
				empty = append(empty, Position{Row: row, Col: col})
			}
		}
	}
	return empty
}

// Occupied counts non-empty cells
func (g Grid) Occupied() int {
	n := 0
	for _, cells := range g {
		for _, t := range cells {
			if t != nil {
				n++
			}
		}
	}
	return n
}

// Sum adds up every tile value
func (g Grid) Sum() int {
	sum := 0
	for _, cells := range g {
		for _, t := range cells {
			if t != nil {
				sum += t.Value
			}
		}
	}
	return sum
}

// MaxTile returns the highest tile value, 0 on an empty grid
func (g Grid) MaxTile() int {
	highest := 0
	for _, cells := range g {
		for _, t := range cells {
			if t != nil && t.Value > highest {
				highest = t.Value
			}
		}
	}
	return highest
}

// ClearMergeFlags resets every tile's merge tag
func (g Grid) ClearMergeFlags() {
	for _, cells := range g {
		for _, t := range cells {
			if t != nil {
				t.merged = false
			}
		}
	}
}

// HasMoves reports whether any direction could change the grid
func (g Grid) HasMoves() bool {
	size := len(g)
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			t := g[row][col]
			if t == nil {
				return true
			}
			if col+1 < size && g[row][col+1] != nil && g[row][col+1].Value == t.Value {
				return true
			}
			if row+1 < size && g[row+1][col] != nil && g[row+1][col].Value == t.Value {
				return true
			}
		}
	}
	return false
}

// SlideRowLeft compacts row to the left and merges equal neighbours once,
// scanning left to right. A tile produced by a merge is not compared with its
// new right neighbour, so 2,2,4 becomes 4,4. The result is padded with empty
// slots to size. The second return value is the score gained.
func SlideRowLeft(row []*Tile, size int) ([]*Tile, int) {
	compact := make([]*Tile, 0, size)
	for _, t := range row {
		if t != nil {
			compact = append(compact, t)
		}
	}

	gained := 0
	for i := 0; i < len(compact)-1; i++ {
		if compact[i].CanMergeWith(compact[i+1]) {
			gained += compact[i].MergeWith(compact[i+1])
			compact = append(compact[:i+1], compact[i+2:]...)
		}
	}

	for len(compact) < size {
		compact = append(compact, nil)
	}
	return compact, gained
}

// RotateRight returns g turned 90 degrees clockwise:
// new[col][size-1-row] = old[row][col]. g itself is not modified.
func RotateRight(g Grid) (Grid, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	size := len(g)
	rotated, err := NewGrid(size)
	if err != nil {
		return nil, err
	}
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			rotated[col][size-1-row] = g[row][col]
		}
	}
	return rotated, nil
}

func rotateTimes(g Grid, n int) (Grid, error) {
	var err error
	for i := 0; i < n; i++ {
		if g, err = RotateRight(g); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Slide shifts every tile toward dir, merging as it goes. It works on a copy
// and clears merge tags first, so g is left untouched.
func (g Grid) Slide(dir Direction) (Grid, SlideResult, error) {
	var result SlideResult
	if err := g.Validate(); err != nil {
		return nil, result, err
	}

	before := g.Values()
	work := g.Clone()
	work.ClearMergeFlags()

	r := dir.rotations()
	work, err := rotateTimes(work, r)
	if err != nil {
		return nil, result, err
	}

	size := len(work)
	for row := range work {
		occupied := 0
		for _, t := range work[row] {
			if t != nil {
				occupied++
			}
		}
		slid, gained := SlideRowLeft(work[row], size)
		work[row] = slid
		result.ScoreGained += gained
		for _, t := range slid {
			if t != nil {
				occupied--
			}
		}
		result.Merges += occupied
	}

	if work, err = rotateTimes(work, (4-r)%4); err != nil {
		return nil, result, err
	}

	after := work.Values()
	for row := range before {
		for col := range before[row] {
			if before[row][col] != after[row][col] {
				result.Changed = true
			}
		}
	}
	return work, result, nil
}
