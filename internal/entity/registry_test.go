package entity

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newTestPlayer() *Entity {
	player := New(5, 5, '@', "Player", tcell.ColorWhite, true)
	player.Alive = true
	player.Fighter = &Fighter{MaxHP: 30, HP: 30, Defense: 2, Power: 5, OnDeath: DeathPlayer}
	return player
}

func newTestMonster(name string, x, y int) *Entity {
	m := New(x, y, 'o', name, tcell.ColorGreen, true)
	m.Alive = true
	m.Fighter = &Fighter{MaxHP: 10, HP: 10, Power: 3, OnDeath: DeathMonster}
	m.AI = &AI{}
	return m
}

func TestRegistryPlayerAccessor(t *testing.T) {
	player := newTestPlayer()
	r := NewRegistry(player)
	r.Add(newTestMonster("Orc", 1, 1))

	if r.Player() != player {
		t.Error("Player() should return the entity the registry was seeded with")
	}
}

func TestRegistryMutTwoReturnsDistinctEntities(t *testing.T) {
	r := NewRegistry(newTestPlayer())
	monsterIndex := r.Add(newTestMonster("Orc", 1, 1))

	a, b := r.MutTwo(PlayerIndex, monsterIndex)

	if a == b {
		t.Fatal("MutTwo returned the same entity twice")
	}
	if a.Name != "Player" || b.Name != "Orc" {
		t.Errorf("MutTwo returned (%s, %s), want (Player, Orc)", a.Name, b.Name)
	}
}

func TestRegistryMutTwoPanicsOnEqualIndices(t *testing.T) {
	r := NewRegistry(newTestPlayer())

	defer func() {
		if recover() == nil {
			t.Error("MutTwo with equal indices should panic")
		}
	}()
	r.MutTwo(0, 0)
}

func TestRegistryMutTwoPanicsOutOfRange(t *testing.T) {
	r := NewRegistry(newTestPlayer())

	defer func() {
		if recover() == nil {
			t.Error("MutTwo with out-of-range index should panic")
		}
	}()
	r.MutTwo(0, 5)
}

func TestRegistryRemoveSwapsInLast(t *testing.T) {
	r := NewRegistry(newTestPlayer())
	first := r.Add(newTestMonster("First", 1, 1))
	r.Add(newTestMonster("Middle", 2, 2))
	r.Add(newTestMonster("Last", 3, 3))

	removed := r.Remove(first)

	if removed.Name != "First" {
		t.Errorf("Remove returned %q, want First", removed.Name)
	}
	if r.Len() != 3 {
		t.Errorf("Len() = %d after removal, want 3", r.Len())
	}
	// The index of the removed entity now holds what was last.
	if r.At(first).Name != "Last" {
		t.Errorf("slot %d holds %q after swap-removal, want Last", first, r.At(first).Name)
	}
}

func TestRegistryRemovePlayerPanics(t *testing.T) {
	r := NewRegistry(newTestPlayer())

	defer func() {
		if recover() == nil {
			t.Error("removing the player should panic")
		}
	}()
	r.Remove(PlayerIndex)
}

func TestRegistryIsBlocked(t *testing.T) {
	r := NewRegistry(newTestPlayer())
	r.Add(newTestMonster("Orc", 3, 4))

	item := New(6, 6, '!', "Healing Potion", tcell.ColorPurple, false)
	item.Item = &Item{Effect: EffectHeal, Power: 4}
	r.Add(item)

	if !r.IsBlocked(3, 4) {
		t.Error("tile with a blocking monster should be blocked")
	}
	if r.IsBlocked(6, 6) {
		t.Error("tile with only a non-blocking item should not be blocked")
	}
	if r.IsBlocked(9, 9) {
		t.Error("empty tile should not be blocked")
	}
}

func TestRegistryFighterIndexAt(t *testing.T) {
	r := NewRegistry(newTestPlayer())
	monsterIndex := r.Add(newTestMonster("Orc", 3, 4))

	item := New(3, 4, '!', "Healing Potion", tcell.ColorPurple, false)
	item.Item = &Item{Effect: EffectHeal, Power: 4}
	r.Add(item)

	if got := r.FighterIndexAt(3, 4); got != monsterIndex {
		t.Errorf("FighterIndexAt(3,4) = %d, want %d", got, monsterIndex)
	}
	if got := r.FighterIndexAt(8, 8); got != -1 {
		t.Errorf("FighterIndexAt(8,8) = %d, want -1", got)
	}
}

func TestRegistryItemIndexAt(t *testing.T) {
	r := NewRegistry(newTestPlayer())
	r.Add(newTestMonster("Orc", 3, 4))

	item := New(3, 4, '!', "Healing Potion", tcell.ColorPurple, false)
	item.Item = &Item{Effect: EffectHeal, Power: 4}
	itemIndex := r.Add(item)

	if got := r.ItemIndexAt(3, 4); got != itemIndex {
		t.Errorf("ItemIndexAt(3,4) = %d, want %d", got, itemIndex)
	}
	if got := r.ItemIndexAt(5, 5); got != -1 {
		t.Errorf("ItemIndexAt(5,5) = %d, want -1 (player is not an item)", got)
	}
}
