package game

// Config holds the numeric parameters consumed at session setup. These are
// plain values with no file format; presentation passes them in once and
// the level is never regenerated.
type Config struct {
	// Seed for random number generation, used for reproducible dungeon
	// generation. A seed of 0 means a random seed will be generated.
	Seed int64

	// Map dimensions in tiles.
	MapWidth  int
	MapHeight int

	// Room placement attempts and size bounds. MaxRooms must be at least 1
	// for the level to have an entrance.
	MaxRooms    int
	RoomMinSize int
	RoomMaxSize int

	// Per-room population caps. Actual counts can come out lower because
	// rejected placements are never retried.
	MaxRoomMonsters int
	MaxRoomItems    int

	// FOVRadius bounds the player's field of view.
	FOVRadius int

	// Starting player stats.
	PlayerHP      int
	PlayerDefense int
	PlayerPower   int
}

// DefaultConfig returns the standard session parameters.
func DefaultConfig() Config {
	return Config{
		MapWidth:        80,
		MapHeight:       45,
		MaxRooms:        30,
		RoomMinSize:     6,
		RoomMaxSize:     10,
		MaxRoomMonsters: 3,
		MaxRoomItems:    2,
		FOVRadius:       10,
		PlayerHP:        30,
		PlayerDefense:   2,
		PlayerPower:     5,
	}
}
