// Package entity provides the capability-composed actor model and the
// ordered registry that holds every actor on the current level.
package entity

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
)

// DeathKind selects one of exactly two death transitions. It is a closed
// enum matched explicitly at the resolution site, not an open callback
// registry.
type DeathKind int

const (
	// DeathPlayer marks the player: death ends the run but mutates no
	// further simulation state.
	DeathPlayer DeathKind = iota
	// DeathMonster marks a monster: death strips its capabilities and
	// leaves inert remains.
	DeathMonster
)

// String returns a human-readable death kind name.
func (k DeathKind) String() string {
	switch k {
	case DeathPlayer:
		return "player"
	case DeathMonster:
		return "monster"
	default:
		return "unknown"
	}
}

// Fighter is the combat capability: an entity with a Fighter can deal and
// receive damage.
type Fighter struct {
	MaxHP   int
	HP      int
	Defense int
	Power   int
	OnDeath DeathKind
}

// TakeDamage applies damage to the fighter, clamping HP at zero.
// Non-positive damage changes nothing.
func (f *Fighter) TakeDamage(damage int) {
	if damage <= 0 {
		return
	}
	f.HP -= damage
	if f.HP < 0 {
		f.HP = 0
	}
}

// Heal restores HP up to MaxHP and returns the amount actually healed.
func (f *Fighter) Heal(amount int) int {
	if amount <= 0 {
		return 0
	}
	if f.HP+amount > f.MaxHP {
		amount = f.MaxHP - f.HP
	}
	f.HP += amount
	return amount
}

// AI is a marker capability: its presence means the entity acts during the
// monster pass of every turn.
type AI struct{}

// ItemEffect identifies what using an item does.
type ItemEffect int

const (
	// EffectHeal restores hit points to the user.
	EffectHeal ItemEffect = iota
)

// Item is the pickup capability: an entity with an Item can be carried in
// the inventory and used for its effect.
type Item struct {
	Effect ItemEffect
	Power  int
}

// Entity is anything on the map: the player, a monster, an item, remains.
// Behavior is composed from the three optional capability fields rather
// than a type hierarchy; death removes capabilities at runtime, turning a
// monster into inert scenery.
type Entity struct {
	ID    uuid.UUID // Stable handle, survives registry index churn
	X, Y  int
	Glyph rune
	Name  string
	Color tcell.Color
	// Blocks marks the entity as occupying its tile exclusively for
	// movement. Corpses and items do not block.
	Blocks bool
	Alive  bool

	Fighter *Fighter
	AI      *AI
	Item    *Item
}

// New creates an entity with no capabilities attached.
func New(x, y int, glyph rune, name string, color tcell.Color, blocks bool) *Entity {
	return &Entity{
		ID:     uuid.New(),
		X:      x,
		Y:      y,
		Glyph:  glyph,
		Name:   name,
		Color:  color,
		Blocks: blocks,
	}
}

// Pos returns the entity's current coordinates.
func (e *Entity) Pos() (int, int) {
	return e.X, e.Y
}

// SetPos moves the entity to the given coordinates.
func (e *Entity) SetPos(x, y int) {
	e.X = x
	e.Y = y
}

// DistanceTo returns the Euclidean distance to another entity.
func (e *Entity) DistanceTo(other *Entity) float64 {
	return math.Hypot(float64(other.X-e.X), float64(other.Y-e.Y))
}
