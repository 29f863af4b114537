package gamedata

import (
	"math/rand"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestLoadMonsters(t *testing.T) {
	monsters, err := LoadMonsters()
	if err != nil {
		t.Fatalf("LoadMonsters failed: %v", err)
	}

	if len(monsters) != 2 {
		t.Fatalf("loaded %d monsters, want 2", len(monsters))
	}

	orc := monsters[0]
	if orc.ID != "orc" || orc.Name != "Orc" {
		t.Errorf("first monster = %s/%s, want orc/Orc", orc.ID, orc.Name)
	}
	if orc.HP != 10 || orc.Defense != 0 || orc.Power != 3 {
		t.Errorf("orc stats = %d/%d/%d, want 10/0/3", orc.HP, orc.Defense, orc.Power)
	}
	if orc.GlyphRune() != 'o' {
		t.Errorf("orc glyph = %q, want 'o'", orc.GlyphRune())
	}
}

func TestLoadItems(t *testing.T) {
	items, err := LoadItems()
	if err != nil {
		t.Fatalf("LoadItems failed: %v", err)
	}

	if len(items) != 1 {
		t.Fatalf("loaded %d items, want 1", len(items))
	}
	potion := items[0]
	if potion.ID != "healing_potion" || potion.Effect != "heal" || potion.Power != 4 {
		t.Errorf("potion = %s/%s/%d, want healing_potion/heal/4", potion.ID, potion.Effect, potion.Power)
	}
	if potion.GlyphRune() != '!' {
		t.Errorf("potion glyph = %q, want '!'", potion.GlyphRune())
	}
}

func TestMonsterRegistryGetByID(t *testing.T) {
	registry := MustLoadMonsterRegistry()

	if troll := registry.GetByID("troll"); troll == nil || troll.Name != "Troll" {
		t.Errorf("GetByID(troll) = %v, want the Troll definition", troll)
	}
	if registry.GetByID("dragon") != nil {
		t.Error("GetByID for an unknown id should return nil")
	}
}

func TestSpawnRandomIsWeighted(t *testing.T) {
	registry := MustLoadMonsterRegistry()
	rng := rand.New(rand.NewSource(42))

	counts := make(map[string]int)
	const trials = 1000
	for i := 0; i < trials; i++ {
		def := registry.SpawnRandom(rng)
		if def == nil {
			t.Fatal("SpawnRandom returned nil from a populated registry")
		}
		counts[def.ID]++
	}

	// Weights are 4:1, so orcs should clearly dominate without trolls
	// vanishing entirely.
	if counts["orc"] <= counts["troll"] {
		t.Errorf("orc count %d should exceed troll count %d", counts["orc"], counts["troll"])
	}
	if counts["troll"] == 0 {
		t.Error("troll should spawn at least once in 1000 trials")
	}
}

func TestSpawnRandomReproducible(t *testing.T) {
	registry := MustLoadMonsterRegistry()

	var first, second []string
	for _, out := range []*[]string{&first, &second} {
		rng := rand.New(rand.NewSource(7))
		for i := 0; i < 50; i++ {
			*out = append(*out, registry.SpawnRandom(rng).ID)
		}
	}

	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("draw %d differs: %s != %s", i, first[i], second[i])
		}
	}
}

func TestSpawnRandomEmptyRegistry(t *testing.T) {
	registry := NewMonsterRegistry(nil)

	if registry.SpawnRandom(rand.New(rand.NewSource(1))) != nil {
		t.Error("SpawnRandom on an empty registry should return nil")
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input    string
		expected tcell.Color
		wantErr  bool
	}{
		{"#FF0000", tcell.NewRGBColor(255, 0, 0), false},
		{"00FF00", tcell.NewRGBColor(0, 255, 0), false},
		{"#3F7F3F", tcell.NewRGBColor(63, 127, 63), false},
		{"#FFF", tcell.ColorDefault, true},
		{"#GGGGGG", tcell.ColorDefault, true},
		{"", tcell.ColorDefault, true},
	}

	for _, tt := range tests {
		got, err := ParseHexColor(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseHexColor(%q) succeeded, want error", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseHexColor(%q) failed: %v", tt.input, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("ParseHexColor(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}
