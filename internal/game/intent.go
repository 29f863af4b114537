// Package game drives the turn-based simulation: one classified player
// intent per tick, followed by a pass over every AI-capable entity.
package game

// Outcome classifies what a player intent did to simulated time.
type Outcome int

const (
	// TookTurn means the action consumed the player's turn and the
	// monsters get to act.
	TookTurn Outcome = iota
	// DidNotTakeTurn means the world received no simulated time.
	DidNotTakeTurn
	// Exit stops the session; no further ticks run.
	Exit
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case TookTurn:
		return "took_turn"
	case DidNotTakeTurn:
		return "did_not_take_turn"
	case Exit:
		return "exit"
	default:
		return "unknown"
	}
}

// IntentKind identifies a classified player intent.
type IntentKind int

const (
	// IntentMove moves one step, or attacks the fighter standing there.
	IntentMove IntentKind = iota
	// IntentPickUp picks up the item on the player's tile.
	IntentPickUp
	// IntentUseItem uses the inventory item in the given slot.
	IntentUseItem
	// IntentToggleDisplay is a presentation-only action.
	IntentToggleDisplay
	// IntentQuit ends the session.
	IntentQuit
)

// Intent is one classified player action, the single entry point the
// presentation layer feeds each tick.
type Intent struct {
	Kind   IntentKind
	DX, DY int // Movement delta for IntentMove
	Slot   int // Inventory slot for IntentUseItem
}

// MoveIntent returns a movement intent for the given delta.
func MoveIntent(dx, dy int) Intent {
	return Intent{Kind: IntentMove, DX: dx, DY: dy}
}

// PickUpIntent returns a pick-up intent.
func PickUpIntent() Intent {
	return Intent{Kind: IntentPickUp}
}

// UseItemIntent returns a use-item intent for the given inventory slot.
func UseItemIntent(slot int) Intent {
	return Intent{Kind: IntentUseItem, Slot: slot}
}

// ToggleDisplayIntent returns a display-toggle intent.
func ToggleDisplayIntent() Intent {
	return Intent{Kind: IntentToggleDisplay}
}

// QuitIntent returns a quit intent.
func QuitIntent() Intent {
	return Intent{Kind: IntentQuit}
}
