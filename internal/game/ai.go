package game

import (
	"math"

	"github.com/sirupsen/logrus"

	"github.com/samdwyer/dragonslayer/internal/combat"
	"github.com/samdwyer/dragonslayer/internal/entity"
)

// meleeRange is the Euclidean distance below which a monster attacks
// instead of closing in.
const meleeRange = 2.0

// aiTakeTurn runs the two-state decision procedure for the monster at the
// given registry index. The decision is recomputed fresh every tick from
// current positions; there is no persistent state machine.
//
// Monster sight reuses the player's FOV: if the player can see the
// monster, the monster can see the player, and outside that it sleeps.
func (s *Session) aiTakeTurn(index int) []Event {
	monster := s.registry.At(index)

	if !s.fov.IsVisible(monster.X, monster.Y) {
		return nil
	}

	player := s.registry.Player()

	if monster.DistanceTo(player) >= meleeRange {
		s.moveTowards(monster, player.X, player.Y)
		return nil
	}

	if player.Fighter != nil && player.Fighter.HP > 0 {
		attacker, target := s.registry.MutTwo(index, entity.PlayerIndex)
		s.log.WithFields(logrus.Fields{
			"monster_id": monster.ID,
			"monster":    monster.Name,
		}).Debug("monster attacks player")
		return attackEvents(combat.Attack(attacker, target))
	}

	return nil
}

// moveTowards takes one step toward the target: the displacement vector is
// normalized to unit length and each axis is rounded independently, giving
// one of the 8 grid directions (with a diagonal bias when both deltas
// round away from zero). A blocked destination means the monster stays put
// this turn; there is no alternate pathing.
func (s *Session) moveTowards(e *entity.Entity, targetX, targetY int) {
	dx := float64(targetX - e.X)
	dy := float64(targetY - e.Y)
	distance := math.Hypot(dx, dy)

	stepX := int(math.Round(dx / distance))
	stepY := int(math.Round(dy / distance))

	if !s.isBlocked(e.X+stepX, e.Y+stepY) {
		e.SetPos(e.X+stepX, e.Y+stepY)
	}
}
