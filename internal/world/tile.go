// Package world provides dungeon generation, map management and visibility.
package world

// Tile represents a single map cell.
//
// Explored is the only field that changes after creation: it latches from
// false to true the first time the tile enters the player's field of view
// and is never reset.
type Tile struct {
	Blocked     bool // Impassable for movement
	BlocksSight bool // Opaque for field-of-view purposes
	Explored    bool // Has the tile ever been visible
}

// FloorTile returns a passable, transparent tile.
func FloorTile() Tile {
	return Tile{Blocked: false, BlocksSight: false}
}

// WallTile returns an impassable, opaque tile.
func WallTile() Tile {
	return Tile{Blocked: true, BlocksSight: true}
}

// IsPassable returns true if the tile can be walked on.
func (t Tile) IsPassable() bool {
	return !t.Blocked
}
