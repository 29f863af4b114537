package game

import "github.com/samdwyer/dragonslayer/internal/combat"

// EventKind categorizes a notification produced by a tick.
type EventKind int

const (
	// EventMessage is plain narrative text (rejected actions, flavor).
	EventMessage EventKind = iota
	// EventAttack reports a resolved attack, including deflected ones.
	EventAttack
	// EventDeath reports an entity dying this tick.
	EventDeath
	// EventPickup reports an item entering the inventory.
	EventPickup
)

// Event is a notification for the presentation layer. The core never
// draws; it only describes what happened.
type Event struct {
	Kind EventKind
	Text string
}

// message is a convenience constructor for plain-text events.
func message(text string) Event {
	return Event{Kind: EventMessage, Text: text}
}

// attackEvents converts a combat resolution into presentation events: the
// attack line first, then the death line when the blow was fatal.
func attackEvents(result combat.AttackResult) []Event {
	events := make([]Event, 0, len(result.Messages))
	for i, msg := range result.Messages {
		kind := EventAttack
		if result.TargetDied && i == len(result.Messages)-1 {
			kind = EventDeath
		}
		events = append(events, Event{Kind: kind, Text: msg})
	}
	return events
}
