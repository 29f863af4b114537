package combat

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dragonslayer/internal/entity"
)

func newFighter(name string, hp, defense, power int, onDeath entity.DeathKind) *entity.Entity {
	e := entity.New(0, 0, 'x', name, tcell.ColorWhite, true)
	e.Alive = true
	e.Fighter = &entity.Fighter{
		MaxHP:   hp,
		HP:      hp,
		Defense: defense,
		Power:   power,
		OnDeath: onDeath,
	}
	return e
}

func TestAttackDamageFormula(t *testing.T) {
	// power 5 vs defense 2 → exactly 3 damage.
	attacker := newFighter("Player", 30, 2, 5, entity.DeathPlayer)
	target := newFighter("Orc", 10, 2, 3, entity.DeathMonster)

	result := Attack(attacker, target)

	if result.Damage != 3 {
		t.Errorf("Damage = %d, want 3", result.Damage)
	}
	if result.NoEffect {
		t.Error("a damaging attack must not report NoEffect")
	}
	if target.Fighter.HP != 7 {
		t.Errorf("target HP = %d, want 7", target.Fighter.HP)
	}
	if result.TargetDied {
		t.Error("target should survive at 7 HP")
	}
}

func TestAttackNoEffect(t *testing.T) {
	// power 3 vs defense 5 → no hp change, distinct no-effect outcome.
	attacker := newFighter("Orc", 10, 0, 3, entity.DeathMonster)
	target := newFighter("Player", 30, 5, 5, entity.DeathPlayer)

	result := Attack(attacker, target)

	if !result.NoEffect {
		t.Error("deflected attack should report NoEffect")
	}
	if result.Damage != 0 {
		t.Errorf("Damage = %d, want 0", result.Damage)
	}
	if target.Fighter.HP != 30 {
		t.Errorf("target HP = %d, want 30 (unchanged)", target.Fighter.HP)
	}
	if len(result.Messages) != 1 || !strings.Contains(result.Messages[0], "no effect") {
		t.Errorf("Messages = %v, want a single no-effect line", result.Messages)
	}
}

func TestAttackNeverDrivesHPNegative(t *testing.T) {
	// Overkill on the player, whose Fighter survives death and stays
	// observable: HP clamps at 0.
	attacker := newFighter("Troll", 16, 1, 4, entity.DeathMonster)
	target := newFighter("Player", 2, 0, 5, entity.DeathPlayer)

	Attack(attacker, target)

	if target.Fighter.HP != 0 {
		t.Errorf("HP = %d after overkill, want 0", target.Fighter.HP)
	}
}

func TestAttackKillsMonsterAtExactZero(t *testing.T) {
	// hp 3, incoming damage 3 → dead, stripped, renamed.
	attacker := newFighter("Player", 30, 2, 5, entity.DeathPlayer)
	target := newFighter("Orc", 3, 2, 3, entity.DeathMonster)

	result := Attack(attacker, target)

	if !result.TargetDied {
		t.Fatal("attack should have killed the target")
	}
	if target.Alive {
		t.Error("target should be marked dead")
	}
	if target.Fighter != nil {
		t.Error("monster death should strip the Fighter capability")
	}
	if target.AI != nil {
		t.Error("monster death should strip the AI capability")
	}
	if target.Blocks {
		t.Error("a corpse should not block movement")
	}
	if target.Name != "remains of Orc" {
		t.Errorf("Name = %q, want \"remains of Orc\"", target.Name)
	}
	if target.Glyph != CorpseGlyph {
		t.Errorf("Glyph = %q, want %q", target.Glyph, CorpseGlyph)
	}
	if len(result.Messages) != 2 {
		t.Errorf("Messages = %v, want attack line plus death line", result.Messages)
	}
}

func TestMonsterDeathTransitionFiresOnce(t *testing.T) {
	attacker := newFighter("Player", 30, 2, 5, entity.DeathPlayer)
	target := newFighter("Orc", 3, 2, 3, entity.DeathMonster)

	Attack(attacker, target)

	// The corpse has no Fighter, so a second kill cannot be resolved
	// against it at all; in particular the rename must not stack.
	if target.Name != "remains of Orc" {
		t.Fatalf("Name = %q after death, want \"remains of Orc\"", target.Name)
	}
	if target.Fighter != nil {
		t.Fatal("corpse should have no Fighter to attack")
	}
}

func TestPlayerDeathLeavesSimulationIntact(t *testing.T) {
	attacker := newFighter("Troll", 16, 1, 4, entity.DeathMonster)
	target := newFighter("Player", 3, 0, 5, entity.DeathPlayer)

	result := Attack(attacker, target)

	if !result.TargetDied {
		t.Fatal("attack should have killed the player")
	}
	if target.Alive {
		t.Error("player should be marked dead")
	}
	// Unlike monsters, the player keeps the Fighter so the HP readout
	// still renders; only the glyph changes.
	if target.Fighter == nil {
		t.Error("player death should not strip the Fighter")
	}
	if target.Name != "Player" {
		t.Errorf("Name = %q, player death must not rename", target.Name)
	}
	if target.Glyph != CorpseGlyph {
		t.Errorf("Glyph = %q, want corpse glyph", target.Glyph)
	}
	if len(result.Messages) != 2 || result.Messages[1] != "You died!" {
		t.Errorf("Messages = %v, want death announcement", result.Messages)
	}
}
