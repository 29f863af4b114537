package world

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dragonslayer/internal/telemetry"
)

const (
	// DefaultWidth is the default map width in tiles.
	DefaultWidth = 80
	// DefaultHeight is the default map height in tiles.
	DefaultHeight = 45
)

// GenParams holds the tunable parameters for dungeon generation.
type GenParams struct {
	MaxRooms    int // Number of room placement attempts
	RoomMinSize int // Minimum room dimension
	RoomMaxSize int // Maximum room dimension
}

// Populator is invoked once for each accepted room, immediately after the
// room is carved and before it is connected to its predecessor. The level
// builder uses it to place monsters and items while generation is running.
type Populator func(room Room)

// Dungeon represents the game map: a fixed-size grid of tiles plus the list
// of rooms accepted during generation, in acceptance order.
type Dungeon struct {
	Width  int
	Height int
	Tiles  [][]Tile // Indexed [y][x]
	Rooms  []Room
	rng    *rand.Rand
}

// NewDungeon creates a new dungeon of the given size filled with walls.
// The rng drives all generation decisions; pass a seeded source for
// reproducible layouts.
func NewDungeon(width, height int, rng *rand.Rand) *Dungeon {
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		for x := range tiles[y] {
			tiles[y][x] = WallTile()
		}
	}

	return &Dungeon{
		Width:  width,
		Height: height,
		Tiles:  tiles,
		Rooms:  make([]Room, 0),
		rng:    rng,
	}
}

// Generate carves rooms and corridors into the dungeon.
//
// It makes params.MaxRooms placement attempts. Each candidate gets a random
// size in [RoomMinSize, RoomMaxSize] and a random position that keeps the
// whole rectangle inside the map; a candidate that intersects any accepted
// room (inclusive test) is rejected silently with no retry, so the final
// room count may be lower than requested. Each accepted room is carved,
// handed to populate, and connected to the immediately preceding accepted
// room by an L-shaped corridor between the two centers, with a coin flip
// choosing the dog-leg orientation. The rooms therefore form a single chain
// with no loops. The first accepted room has no predecessor; its center is
// the level entrance.
//
// populate may be nil for map-only generation.
func (d *Dungeon) Generate(ctx context.Context, params GenParams, populate Populator) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "dungeon.generate")
	defer span.End()

	startTime := time.Now()

	for i := 0; i < params.MaxRooms; i++ {
		w := params.RoomMinSize + d.rng.Intn(params.RoomMaxSize-params.RoomMinSize+1)
		h := params.RoomMinSize + d.rng.Intn(params.RoomMaxSize-params.RoomMinSize+1)
		x := d.rng.Intn(d.Width - w)
		y := d.rng.Intn(d.Height - h)

		candidate := NewRoom(x, y, w, h)

		rejected := false
		for _, other := range d.Rooms {
			if candidate.Intersects(other) {
				rejected = true
				break
			}
		}
		if rejected {
			continue
		}

		d.carveRoom(candidate)

		if populate != nil {
			populate(candidate)
		}

		if len(d.Rooms) > 0 {
			// Connect to the previous room, not the nearest one.
			prevX, prevY := d.Rooms[len(d.Rooms)-1].Center()
			newX, newY := candidate.Center()

			if d.rng.Intn(2) == 0 {
				d.carveHorizontalTunnel(prevX, newX, prevY)
				d.carveVerticalTunnel(prevY, newY, newX)
			} else {
				d.carveVerticalTunnel(prevY, newY, prevX)
				d.carveHorizontalTunnel(prevX, newX, newY)
			}
		}

		d.Rooms = append(d.Rooms, candidate)
	}

	span.SetAttributes(
		attribute.Int("dungeon.width", d.Width),
		attribute.Int("dungeon.height", d.Height),
		attribute.Int("dungeon.room_attempts", params.MaxRooms),
		attribute.Int("dungeon.room_count", len(d.Rooms)),
		attribute.Int64("dungeon.generation_us", time.Since(startTime).Microseconds()),
	)
}

// Entrance returns the center of the first accepted room, where the player
// starts. ok is false when generation produced no rooms at all; callers
// that need a spawn position must request at least one room.
func (d *Dungeon) Entrance() (x, y int, ok bool) {
	if len(d.Rooms) == 0 {
		return 0, 0, false
	}
	x, y = d.Rooms[0].Center()
	return x, y, true
}

// At returns a pointer to the tile at the given position. Out-of-bounds
// coordinates are a programming error and panic; every legal entity
// position and FOV query is in-bounds by construction.
func (d *Dungeon) At(x, y int) *Tile {
	if !d.InBounds(x, y) {
		panic(fmt.Sprintf("world: tile access out of bounds: (%d,%d) on %dx%d map", x, y, d.Width, d.Height))
	}
	return &d.Tiles[y][x]
}

// InBounds returns true if the coordinates fall inside the map.
func (d *Dungeon) InBounds(x, y int) bool {
	return x >= 0 && x < d.Width && y >= 0 && y < d.Height
}

// IsBlocked returns true if the tile at the given position blocks movement.
func (d *Dungeon) IsBlocked(x, y int) bool {
	return d.At(x, y).Blocked
}

// carveRoom clears the interior of the room, leaving the boundary ring as
// wall. Adjacent rooms are guaranteed a separating wall even when their
// rectangles touch.
func (d *Dungeon) carveRoom(room Room) {
	for y := room.Y1 + 1; y < room.Y2; y++ {
		for x := room.X1 + 1; x < room.X2; x++ {
			d.Tiles[y][x] = FloorTile()
		}
	}
}

// carveHorizontalTunnel carves a horizontal tunnel between two columns.
func (d *Dungeon) carveHorizontalTunnel(x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		d.Tiles[y][x] = FloorTile()
	}
}

// carveVerticalTunnel carves a vertical tunnel between two rows.
func (d *Dungeon) carveVerticalTunnel(y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		d.Tiles[y][x] = FloorTile()
	}
}
