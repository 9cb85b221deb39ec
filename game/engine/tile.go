package engine

// Tile is a numbered piece on the grid. The merge tag is transient: it is
// never serialized and Grid.Slide clears it before every move.
type Tile struct {
	Value  int `json:"value"`
	merged bool
}

// NewTile creates an unmerged tile
func NewTile(value int) *Tile {
	return &Tile{Value: value}
}

// Merged reports whether the tile absorbed another one during the current move
func (t *Tile) Merged() bool {
	return t.merged
}

// CanMergeWith reports whether t and other are equal and neither merged this move
func (t *Tile) CanMergeWith(other *Tile) bool {
	if t == nil || other == nil {
		return false
	}
	return !t.merged && !other.merged && t.Value == other.Value
}

// MergeWith absorbs other into t and returns the new value, or 0 if the tiles
// cannot merge. Only t changes; the caller drops other.
func (t *Tile) MergeWith(other *Tile) int {
	if !t.CanMergeWith(other) {
		return 0
	}
	t.Value += other.Value
	t.merged = true
	return t.Value
}
