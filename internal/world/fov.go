package world

// Octant transforms for the recursive shadowcasting scan. Each column is
// one octant: the four multipliers map scan-local (row, col) deltas onto
// map coordinates.
var octantMultipliers = [4][8]int{
	{1, 0, 0, -1, -1, 0, 0, 1},
	{0, 1, -1, 0, 0, -1, 1, 0},
	{0, 1, 1, 0, 0, -1, -1, 0},
	{1, 0, 0, 1, -1, 0, 0, -1},
}

// FOVMap tracks which tiles are currently visible from a single observer.
//
// Transparency and walkability are derived from the dungeon once at
// construction. Recompute must be called by the driver whenever the
// observer's position changed since the last frame; the map itself holds no
// policy about when that happens. There is exactly one observer (the
// player): monster sight is deliberately modeled as "the monster is visible
// to the player", not as an independent vision cone.
type FOVMap struct {
	dungeon     *Dungeon
	transparent [][]bool
	walkable    [][]bool
	visible     [][]bool
}

// NewFOVMap creates a visibility tracker for the given dungeon, deriving
// the static per-tile transparency and walkability flags.
func NewFOVMap(dungeon *Dungeon) *FOVMap {
	transparent := make([][]bool, dungeon.Height)
	walkable := make([][]bool, dungeon.Height)
	visible := make([][]bool, dungeon.Height)
	for y := 0; y < dungeon.Height; y++ {
		transparent[y] = make([]bool, dungeon.Width)
		walkable[y] = make([]bool, dungeon.Width)
		visible[y] = make([]bool, dungeon.Width)
		for x := 0; x < dungeon.Width; x++ {
			tile := dungeon.Tiles[y][x]
			transparent[y][x] = !tile.BlocksSight
			walkable[y][x] = !tile.Blocked
		}
	}

	return &FOVMap{
		dungeon:     dungeon,
		transparent: transparent,
		walkable:    walkable,
		visible:     visible,
	}
}

// Recompute recalculates the visible set from the observer position using
// recursive shadowcasting bounded by radius. Every tile that becomes
// visible also has its Explored flag latched on the dungeon; exploration
// never reverts.
func (f *FOVMap) Recompute(observerX, observerY, radius int) {
	for y := range f.visible {
		for x := range f.visible[y] {
			f.visible[y][x] = false
		}
	}

	if radius <= 0 {
		return
	}

	f.markVisible(observerX, observerY)

	for i := 0; i < 8; i++ {
		f.castLight(observerX, observerY, 1, 1.0, 0.0, radius,
			octantMultipliers[0][i], octantMultipliers[1][i],
			octantMultipliers[2][i], octantMultipliers[3][i])
	}
}

// IsVisible returns true if the tile is in the current field of view.
func (f *FOVMap) IsVisible(x, y int) bool {
	return f.visible[y][x]
}

// IsExplored returns true if the tile has ever been visible.
func (f *FOVMap) IsExplored(x, y int) bool {
	return f.dungeon.At(x, y).Explored
}

// markVisible flags a tile as visible and latches exploration.
func (f *FOVMap) markVisible(x, y int) {
	f.visible[y][x] = true
	f.dungeon.Tiles[y][x].Explored = true
}

// castLight scans one octant recursively, narrowing the [start, end] slope
// window as walls cast shadows.
func (f *FOVMap) castLight(cx, cy, row int, start, end float64, radius, xx, xy, yx, yy int) {
	if start < end {
		return
	}

	radiusSq := float64(radius * radius)

	for j := row; j <= radius; j++ {
		dx, dy := -j-1, -j
		blocked := false
		newStart := start

		for dx <= 0 {
			dx++
			if dx > 0 {
				break
			}

			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			// Translate scan-local deltas into map coordinates.
			x := cx + dx*xx + dy*xy
			y := cy + dx*yx + dy*yy

			inBounds := f.dungeon.InBounds(x, y)
			if inBounds && float64(dx*dx+dy*dy) < radiusSq {
				f.markVisible(x, y)
			}

			opaque := !inBounds || !f.transparent[y][x]

			if blocked {
				if opaque {
					newStart = rSlope
					continue
				}
				blocked = false
				start = newStart
			} else if opaque && j < radius {
				blocked = true
				f.castLight(cx, cy, j+1, start, lSlope, radius, xx, xy, yx, yy)
				newStart = rSlope
			}
		}
		if blocked {
			break
		}
	}
}
