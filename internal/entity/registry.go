package entity

import "fmt"

// PlayerIndex is the registry slot reserved for the player. All reads of
// the convention go through Registry.Player so the layout can change
// without touching call sites.
const PlayerIndex = 0

// Registry is the ordered collection of every entity on the level. Index 0
// holds the player; other indices carry no meaning and are NOT stable
// across Remove, which swap-removes.
type Registry struct {
	entities []*Entity
}

// NewRegistry creates a registry seeded with the player entity.
func NewRegistry(player *Entity) *Registry {
	return &Registry{entities: []*Entity{player}}
}

// Player returns the player entity.
func (r *Registry) Player() *Entity {
	return r.entities[PlayerIndex]
}

// Add appends an entity and returns its current index.
func (r *Registry) Add(e *Entity) int {
	r.entities = append(r.entities, e)
	return len(r.entities) - 1
}

// Len returns the number of entities in the registry.
func (r *Registry) Len() int {
	return len(r.entities)
}

// At returns the entity at the given index.
func (r *Registry) At(i int) *Entity {
	return r.entities[i]
}

// All returns the underlying entity slice in registry order. Callers must
// treat it as read-only.
func (r *Registry) All() []*Entity {
	return r.entities
}

// MutTwo returns two distinct entities by index for simultaneous mutation,
// the accessor every attack resolution must go through. Equal indices are a
// programming error, not a recoverable condition: an entity can never
// target itself, and the panic keeps that invariant structural rather than
// caller-optional.
func (r *Registry) MutTwo(first, second int) (*Entity, *Entity) {
	if first == second {
		panic(fmt.Sprintf("entity: MutTwo called with equal indices %d", first))
	}
	if first < 0 || first >= len(r.entities) || second < 0 || second >= len(r.entities) {
		panic(fmt.Sprintf("entity: MutTwo index out of range: %d, %d (len %d)", first, second, len(r.entities)))
	}
	return r.entities[first], r.entities[second]
}

// Remove takes the entity at index i out of the registry by swapping in the
// last element. The index of whatever was last is reassigned, so callers
// must not hold any index across this call; look up, remove and use in one
// motion.
func (r *Registry) Remove(i int) *Entity {
	if i == PlayerIndex {
		panic("entity: cannot remove the player from the registry")
	}
	e := r.entities[i]
	last := len(r.entities) - 1
	r.entities[i] = r.entities[last]
	r.entities[last] = nil
	r.entities = r.entities[:last]
	return e
}

// IsBlocked reports whether any blocking entity occupies the given tile.
func (r *Registry) IsBlocked(x, y int) bool {
	for _, e := range r.entities {
		if e.Blocks && e.X == x && e.Y == y {
			return true
		}
	}
	return false
}

// FighterIndexAt returns the index of the first entity at the given tile
// that carries a Fighter capability, or -1. "First" is registry order; two
// blocking fighters can never share a tile, so the choice only matters for
// construction bugs.
func (r *Registry) FighterIndexAt(x, y int) int {
	for i, e := range r.entities {
		if e.Fighter != nil && e.X == x && e.Y == y {
			return i
		}
	}
	return -1
}

// ItemIndexAt returns the index of the first entity at the given tile that
// carries an Item capability, or -1.
func (r *Registry) ItemIndexAt(x, y int) int {
	for i, e := range r.entities {
		if e.Item != nil && e.X == x && e.Y == y {
			return i
		}
	}
	return -1
}
