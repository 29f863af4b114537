package game

import "testing"

func TestOutcomeString(t *testing.T) {
	tests := []struct {
		outcome  Outcome
		expected string
	}{
		{TookTurn, "took_turn"},
		{DidNotTakeTurn, "did_not_take_turn"},
		{Exit, "exit"},
		{Outcome(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.outcome.String(); got != tt.expected {
			t.Errorf("Outcome(%d).String() = %q, want %q", tt.outcome, got, tt.expected)
		}
	}
}

func TestIntentConstructors(t *testing.T) {
	if i := MoveIntent(-1, 1); i.Kind != IntentMove || i.DX != -1 || i.DY != 1 {
		t.Errorf("MoveIntent(-1,1) = %+v", i)
	}
	if i := UseItemIntent(3); i.Kind != IntentUseItem || i.Slot != 3 {
		t.Errorf("UseItemIntent(3) = %+v", i)
	}
	if QuitIntent().Kind != IntentQuit {
		t.Error("QuitIntent kind mismatch")
	}
	if PickUpIntent().Kind != IntentPickUp {
		t.Error("PickUpIntent kind mismatch")
	}
	if ToggleDisplayIntent().Kind != IntentToggleDisplay {
		t.Error("ToggleDisplayIntent kind mismatch")
	}
}
