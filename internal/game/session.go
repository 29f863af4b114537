package game

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dragonslayer/internal/combat"
	"github.com/samdwyer/dragonslayer/internal/entity"
	"github.com/samdwyer/dragonslayer/internal/gamedata"
	"github.com/samdwyer/dragonslayer/internal/logger"
	"github.com/samdwyer/dragonslayer/internal/telemetry"
	"github.com/samdwyer/dragonslayer/internal/world"
)

// Session is one run of the simulation: a generated level, its entity
// registry, the player's inventory and the visibility tracker, advanced
// one classified player intent at a time.
//
// Everything is single-threaded and synchronous: a tick runs to completion
// before HandleIntent returns, so the presentation layer only ever
// observes post-tick state.
type Session struct {
	cfg       Config
	rng       *rand.Rand
	dungeon   *world.Dungeon
	fov       *world.FOVMap
	registry  *entity.Registry
	inventory *entity.Inventory
	monsters  *gamedata.MonsterRegistry
	items     *gamedata.ItemRegistry

	// Previous observer position, for the recompute-only-on-move policy.
	prevX, prevY int

	log *logrus.Entry
}

// NewSession generates a level from the config and returns a session ready
// to accept intents. The player starts at the center of the first accepted
// room; cfg.MaxRooms must be at least 1 for the spawn position to be
// defined.
func NewSession(ctx context.Context, cfg Config) (*Session, error) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "session.new")
	defer span.End()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	monsters, err := gamedata.LoadMonsterRegistry()
	if err != nil {
		return nil, fmt.Errorf("loading monster definitions: %w", err)
	}
	items, err := gamedata.LoadItemRegistry()
	if err != nil {
		return nil, fmt.Errorf("loading item definitions: %w", err)
	}

	player := entity.New(0, 0, '@', "Player", tcell.ColorWhite, true)
	player.Alive = true
	player.Fighter = &entity.Fighter{
		MaxHP:   cfg.PlayerHP,
		HP:      cfg.PlayerHP,
		Defense: cfg.PlayerDefense,
		Power:   cfg.PlayerPower,
		OnDeath: entity.DeathPlayer,
	}

	s := &Session{
		cfg:       cfg,
		rng:       rand.New(rand.NewSource(seed)),
		registry:  entity.NewRegistry(player),
		inventory: entity.NewInventory(),
		monsters:  monsters,
		items:     items,
		prevX:     -1,
		prevY:     -1,
		log: logger.Log.WithFields(logrus.Fields{
			"component": "session",
			"seed":      seed,
		}),
	}

	s.dungeon = world.NewDungeon(cfg.MapWidth, cfg.MapHeight, s.rng)
	s.dungeon.Generate(ctx, world.GenParams{
		MaxRooms:    cfg.MaxRooms,
		RoomMinSize: cfg.RoomMinSize,
		RoomMaxSize: cfg.RoomMaxSize,
	}, s.populateRoom)

	if x, y, ok := s.dungeon.Entrance(); ok {
		player.SetPos(x, y)
	}

	s.fov = world.NewFOVMap(s.dungeon)

	s.log.WithFields(logrus.Fields{
		"rooms":    len(s.dungeon.Rooms),
		"entities": s.registry.Len(),
	}).Info("session created")

	span.SetAttributes(
		attribute.Int64("session.seed", seed),
		attribute.Int("session.rooms", len(s.dungeon.Rooms)),
		attribute.Int("session.entities", s.registry.Len()),
	)

	return s, nil
}

// =============================================================================
// Render-query surface (read-only)
// =============================================================================

// Dungeon exposes the tile map for rendering.
func (s *Session) Dungeon() *world.Dungeon { return s.dungeon }

// FOV exposes the visibility tracker for rendering.
func (s *Session) FOV() *world.FOVMap { return s.fov }

// Registry exposes the entity collection for rendering.
func (s *Session) Registry() *entity.Registry { return s.registry }

// Inventory exposes the player's carried items.
func (s *Session) Inventory() *entity.Inventory { return s.inventory }

// Player returns the player entity.
func (s *Session) Player() *entity.Entity { return s.registry.Player() }

// RefreshFOV recomputes the field of view if the player moved since the
// last call, latching exploration on newly seen tiles. The caller invokes
// it once per frame before rendering; skipping the recompute when the
// observer is stationary is a caching optimization, not a correctness
// requirement. Returns true when a recompute ran.
func (s *Session) RefreshFOV() bool {
	player := s.registry.Player()
	if player.X == s.prevX && player.Y == s.prevY {
		return false
	}
	s.fov.Recompute(player.X, player.Y, s.cfg.FOVRadius)
	s.prevX, s.prevY = player.X, player.Y
	return true
}

// =============================================================================
// Intent surface
// =============================================================================

// HandleIntent runs one tick: it applies the player intent, classifies the
// outcome, and on TookTurn gives every AI-capable entity its turn. The
// returned events describe what happened for the presentation layer.
func (s *Session) HandleIntent(ctx context.Context, intent Intent) (Outcome, []Event) {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "session.tick")
	defer span.End()

	outcome, events := s.handlePlayerIntent(intent)

	// Monsters act only when the player spent a turn and is still alive;
	// a dead player's session idles until the quit intent arrives.
	if outcome == TookTurn && s.registry.Player().Alive {
		events = append(events, s.runAIPass()...)
	}

	span.SetAttributes(
		attribute.String("tick.outcome", outcome.String()),
		attribute.Int("tick.events", len(events)),
	)

	return outcome, events
}

// handlePlayerIntent applies the player half of the tick.
func (s *Session) handlePlayerIntent(intent Intent) (Outcome, []Event) {
	switch intent.Kind {
	case IntentQuit:
		return Exit, nil

	case IntentToggleDisplay:
		return DidNotTakeTurn, nil

	case IntentMove:
		if !s.registry.Player().Alive {
			return DidNotTakeTurn, nil
		}
		return TookTurn, s.moveOrAttack(intent.DX, intent.DY)

	case IntentPickUp:
		if !s.registry.Player().Alive {
			return DidNotTakeTurn, nil
		}
		return DidNotTakeTurn, s.pickUp()

	case IntentUseItem:
		if !s.registry.Player().Alive {
			return DidNotTakeTurn, nil
		}
		return s.useItem(intent.Slot)

	default:
		return DidNotTakeTurn, nil
	}
}

// moveOrAttack resolves a player movement intent. A destination occupied by
// a fighter resolves as an attack; an unblocked destination relocates the
// player; a blocked one is a no-op with a descriptive event.
func (s *Session) moveOrAttack(dx, dy int) []Event {
	if dx == 0 && dy == 0 {
		// A zero-step move is a deliberate wait.
		return nil
	}

	player := s.registry.Player()
	x, y := player.X+dx, player.Y+dy

	if targetIndex := s.registry.FighterIndexAt(x, y); targetIndex != -1 {
		attacker, target := s.registry.MutTwo(entity.PlayerIndex, targetIndex)
		return attackEvents(combat.Attack(attacker, target))
	}

	if s.isBlocked(x, y) {
		return []Event{message("The way is blocked.")}
	}

	player.SetPos(x, y)
	return nil
}

// pickUp moves the item on the player's tile into the inventory. Picking
// up never consumes a turn.
func (s *Session) pickUp() []Event {
	player := s.registry.Player()

	itemIndex := s.registry.ItemIndexAt(player.X, player.Y)
	if itemIndex == -1 {
		return []Event{message("There is nothing here to pick up.")}
	}

	item := s.registry.At(itemIndex)
	if err := s.inventory.Add(item); err != nil {
		if errors.Is(err, entity.ErrInventoryFull) {
			// The item stays in the registry untouched.
			return []Event{message(fmt.Sprintf("Your inventory is full, cannot pick up %s.", item.Name))}
		}
		return []Event{message(err.Error())}
	}

	// The index was looked up in this same call, so it is still valid here;
	// swap-removal means it must never be held any longer than this.
	s.registry.Remove(itemIndex)

	s.log.WithFields(logrus.Fields{
		"item_id": item.ID,
		"item":    item.Name,
	}).Debug("item picked up")

	return []Event{{Kind: EventPickup, Text: fmt.Sprintf("You picked up a %s!", item.Name)}}
}

// useItem applies the effect of the inventory item in the given slot.
// A successful use consumes both the item and the turn; a cancelled or
// empty-slot use consumes neither.
func (s *Session) useItem(slot int) (Outcome, []Event) {
	item := s.inventory.At(slot)
	if item == nil {
		return DidNotTakeTurn, []Event{message("There is no item in that slot.")}
	}

	player := s.registry.Player()

	switch item.Item.Effect {
	case entity.EffectHeal:
		fighter := player.Fighter
		if fighter.HP == fighter.MaxHP {
			return DidNotTakeTurn, []Event{message("You are already at full health.")}
		}
		fighter.Heal(item.Item.Power)
		s.inventory.RemoveAt(slot)
		return TookTurn, []Event{message("Your wounds start to feel better!")}

	default:
		return DidNotTakeTurn, []Event{message(fmt.Sprintf("The %s cannot be used.", item.Name))}
	}
}

// runAIPass gives every AI-capable entity one turn, in registry order.
func (s *Session) runAIPass() []Event {
	var events []Event
	for i := 0; i < s.registry.Len(); i++ {
		if s.registry.At(i).AI != nil {
			events = append(events, s.aiTakeTurn(i)...)
		}
	}
	return events
}

// isBlocked reports whether the tile blocks movement, either as terrain or
// because a blocking entity occupies it.
func (s *Session) isBlocked(x, y int) bool {
	if s.dungeon.IsBlocked(x, y) {
		return true
	}
	return s.registry.IsBlocked(x, y)
}
