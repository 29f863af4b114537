package game

import (
	"github.com/samdwyer/dragonslayer/internal/entity"
	"github.com/samdwyer/dragonslayer/internal/gamedata"
	"github.com/samdwyer/dragonslayer/internal/world"
)

// populateRoom places monsters and items in a freshly carved room. It runs
// as the generator's populate callback, so spawn positions draw from the
// same RNG stream as the layout.
//
// Placement has no retry budget: a sampled cell that is already blocked by
// terrain or another entity is skipped outright, so rooms can come out
// sparser than the configured caps. That is accepted behavior — retrying
// would change the RNG stream and break layout reproducibility.
func (s *Session) populateRoom(room world.Room) {
	numMonsters := s.rng.Intn(s.cfg.MaxRoomMonsters + 1)
	for n := 0; n < numMonsters; n++ {
		x := room.X1 + 1 + s.rng.Intn(room.X2-room.X1-1)
		y := room.Y1 + 1 + s.rng.Intn(room.Y2-room.Y1-1)

		if s.isBlocked(x, y) {
			continue
		}

		def := s.monsters.SpawnRandom(s.rng)
		s.registry.Add(newMonster(def, x, y))
	}

	numItems := s.rng.Intn(s.cfg.MaxRoomItems + 1)
	for n := 0; n < numItems; n++ {
		x := room.X1 + 1 + s.rng.Intn(room.X2-room.X1-1)
		y := room.Y1 + 1 + s.rng.Intn(room.Y2-room.Y1-1)

		if s.isBlocked(x, y) {
			continue
		}

		def := s.items.SpawnRandom(s.rng)
		item := newItem(def, x, y)
		if item == nil {
			s.log.WithField("item_def", def.ID).Warn("skipping item with unknown effect")
			continue
		}
		s.registry.Add(item)
	}
}

// newMonster builds a blocking, AI-driven fighter entity from a monster
// definition.
func newMonster(def *gamedata.MonsterDef, x, y int) *entity.Entity {
	monster := entity.New(x, y, def.GlyphRune(), def.Name, def.TCellColor(), true)
	monster.Alive = true
	monster.Fighter = &entity.Fighter{
		MaxHP:   def.HP,
		HP:      def.HP,
		Defense: def.Defense,
		Power:   def.Power,
		OnDeath: entity.DeathMonster,
	}
	monster.AI = &entity.AI{}
	return monster
}

// newItem builds a non-blocking pickup entity from an item definition, or
// nil when the definition names an effect this build does not know.
func newItem(def *gamedata.ItemDef, x, y int) *entity.Entity {
	var effect entity.ItemEffect
	switch def.Effect {
	case "heal":
		effect = entity.EffectHeal
	default:
		return nil
	}

	item := entity.New(x, y, def.GlyphRune(), def.Name, def.TCellColor(), false)
	item.Item = &entity.Item{Effect: effect, Power: def.Power}
	return item
}
