package world

// Room represents a rectangular room in the dungeon, stored as two corner
// coordinates with X1 < X2 and Y1 < Y2. Only the interior cells (exclusive
// of the boundary ring) are ever carved, so two rooms whose rectangles
// merely touch still keep a solid wall between them.
type Room struct {
	X1, Y1 int // Top-left corner
	X2, Y2 int // Bottom-right corner
}

// NewRoom creates a room from a top-left position and dimensions.
func NewRoom(x, y, w, h int) Room {
	return Room{X1: x, Y1: y, X2: x + w, Y2: y + h}
}

// Center returns the center coordinates of the room.
func (r Room) Center() (int, int) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// Intersects returns true if this room overlaps or touches another room.
// The test is inclusive on both axes: rooms sharing an edge count as
// intersecting. Generation relies on this conservatism to reject candidates
// that would merge into an open cavern.
func (r Room) Intersects(other Room) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}

// Contains returns true if the given point is inside the room's interior.
func (r Room) Contains(x, y int) bool {
	return x > r.X1 && x < r.X2 && y > r.Y1 && y < r.Y2
}
