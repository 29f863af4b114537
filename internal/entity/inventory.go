package entity

import "errors"

// InventoryCapacity is the number of carriable items, one per selection
// letter a-z.
const InventoryCapacity = 26

// ErrInventoryFull is returned by Add when every slot is taken. The item
// stays wherever it was; the caller reports the rejection and moves on.
var ErrInventoryFull = errors.New("entity: inventory is full")

// Inventory holds the items the player has picked up, in pickup order. It
// is owned by the session, not the registry: a carried item is off the map
// entirely.
type Inventory struct {
	items []*Entity
}

// NewInventory creates an empty inventory.
func NewInventory() *Inventory {
	return &Inventory{items: make([]*Entity, 0, InventoryCapacity)}
}

// Add stores an item, returning ErrInventoryFull when at capacity.
func (inv *Inventory) Add(item *Entity) error {
	if len(inv.items) >= InventoryCapacity {
		return ErrInventoryFull
	}
	inv.items = append(inv.items, item)
	return nil
}

// At returns the item in the given slot, or nil if the slot is empty.
func (inv *Inventory) At(slot int) *Entity {
	if slot < 0 || slot >= len(inv.items) {
		return nil
	}
	return inv.items[slot]
}

// RemoveAt takes the item out of the given slot, shifting later items down
// so slot letters stay dense.
func (inv *Inventory) RemoveAt(slot int) *Entity {
	item := inv.items[slot]
	inv.items = append(inv.items[:slot], inv.items[slot+1:]...)
	return item
}

// Len returns the number of carried items.
func (inv *Inventory) Len() int {
	return len(inv.items)
}

// Items returns the carried items in slot order. Callers must treat the
// slice as read-only.
func (inv *Inventory) Items() []*Entity {
	return inv.items
}
