// Package combat resolves attacks between entities and applies death
// transitions.
package combat

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/samdwyer/dragonslayer/internal/entity"
	"github.com/samdwyer/dragonslayer/internal/logger"
)

// CorpseGlyph is the display glyph every dead fighter takes on.
const CorpseGlyph = '%'

// CorpseColor is a dark red.
var CorpseColor = tcell.NewRGBColor(128, 0, 0)

// AttackResult describes what a single attack resolution did.
type AttackResult struct {
	Damage     int      // Hit points removed, 0 for a deflected attack
	NoEffect   bool     // True when power did not exceed defense
	TargetDied bool     // True when this attack killed the target
	Messages   []string // Presentation text, in order
}

// Attack resolves one attack from attacker against target and applies the
// outcome. Damage is attacker power minus target defense; a zero-or-negative
// result changes no hit points and is reported as a distinct no-effect
// outcome rather than an error. Callers must obtain the two entities
// through Registry.MutTwo so self-targeting is structurally impossible.
func Attack(attacker, target *entity.Entity) AttackResult {
	log := logger.Log.WithFields(logrus.Fields{
		"component":   "combat",
		"attacker_id": attacker.ID,
		"attacker":    attacker.Name,
		"target_id":   target.ID,
		"target":      target.Name,
	})

	damage := attacker.Fighter.Power - target.Fighter.Defense

	if damage <= 0 {
		log.WithField("damage", damage).Debug("attack had no effect")
		return AttackResult{
			NoEffect: true,
			Messages: []string{
				fmt.Sprintf("%s attacks %s but it has no effect!", attacker.Name, target.Name),
			},
		}
	}

	result := AttackResult{
		Damage: damage,
		Messages: []string{
			fmt.Sprintf("%s attacks %s for %d hit points.", attacker.Name, target.Name, damage),
		},
	}

	target.Fighter.TakeDamage(damage)

	log.WithFields(logrus.Fields{
		"damage":   damage,
		"hp_after": target.Fighter.HP,
	}).Debug("attack resolved")

	// The Alive check makes the transition fire exactly once; a corpse has
	// no Fighter and can never re-enter this path anyway.
	if target.Fighter.HP <= 0 && target.Alive {
		kind := target.Fighter.OnDeath
		result.TargetDied = true
		result.Messages = append(result.Messages, applyDeath(target))
		log.WithField("death_kind", kind.String()).Info("target died")
	}

	return result
}

// applyDeath marks the target dead and runs the transition selected by its
// OnDeath kind, returning the message to present.
func applyDeath(target *entity.Entity) string {
	target.Alive = false

	switch target.Fighter.OnDeath {
	case entity.DeathPlayer:
		// The session stops accepting actions once the player is dead;
		// nothing else in the simulation needs to change.
		target.Glyph = CorpseGlyph
		target.Color = CorpseColor
		return "You died!"

	case entity.DeathMonster:
		msg := fmt.Sprintf("%s is dead!", target.Name)
		target.Glyph = CorpseGlyph
		target.Color = CorpseColor
		target.Blocks = false
		target.Fighter = nil
		target.AI = nil
		target.Name = "remains of " + target.Name
		return msg

	default:
		panic(fmt.Sprintf("combat: unknown death kind %d", target.Fighter.OnDeath))
	}
}
