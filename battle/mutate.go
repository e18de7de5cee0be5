package battle

import (
	"github.com/dreamtides/dtengine/ability"
	"github.com/dreamtides/dtengine/action"
	"github.com/dreamtides/dtengine/ids"
)

// PlayCardFromHand moves a card from hand onto the stack, paying its
// energy cost and passing stack priority to the opponent for fast
// responses (spec.md 4.D). Grounded on
// original_source/rules_engine/src/battle_mutations/src/play_cards/play_card.rs.
func (s *State) PlayCardFromHand(player ids.PlayerName, handCard ids.HandCardId) {
	card := s.Card(handCard)
	def := s.Definition(card)
	s.SpendEnergy(player, def.Cost)
	s.playCard(SourcePlayer{Player: player}, card, playedFromHandTrigger)
}

// PlayCardFromVoid plays a reclaim-eligible card from the void, attaching a
// banish-on-leave rider so the card is removed from the game rather than
// returning to the void once it resolves (spec.md glossary: Reclaim).
func (s *State) PlayCardFromVoid(player ids.PlayerName, voidCard ids.VoidCardId) {
	card := s.Card(voidCard)
	def := s.Definition(card)
	s.SpendEnergy(player, def.Cost)
	s.ApplyReclaimRider(card)
	s.playCard(SourcePlayer{Player: player}, card, playedFromVoidTrigger)
}

// ApplyReclaimRider marks a card played from the void so that it is
// banished, rather than returned to the void, once it leaves play.
// Referenced by ability.ExpandReclaim's doc comment as the mutation-layer
// half of the reclaim named ability (spec.md glossary: Reclaim).
func (s *State) ApplyReclaimRider(card *CardInstance) {
	card.BanishOnLeavePlay = true
}

func (s *State) playCard(source EffectSource, card *CardInstance, trigger ability.Trigger) {
	player := source.Controller()
	s.MoveToZone(card, ids.ZoneStack)
	s.PushStack(card.InstanceId)
	opponent := player.Opponent()
	s.StackPriority = &opponent
	s.Players[player].CardsPlayedThisTurn++

	s.PushAnimation(AnimPlayCardFromHand{Player: player, Card: card.InstanceId})
	s.Record(source, trigger)
	s.gatherTargetPrompts(source, card)
	s.DrainTriggers()
}

// PassPriority resolves the top of the stack when the player holding
// priority has nothing further to add, matching spec.md 4.D's stack
// resolution loop. Grounded on
// .../phase_mutations/resolve_stack.rs's pass-priority handling.
func (s *State) PassPriority(player ids.PlayerName) {
	if len(s.Stack) == 0 {
		s.StackPriority = nil
		return
	}
	s.ResolveTopOfStack()
}

// ResolveTopOfStack resolves the card currently on top of the stack:
// characters materialize onto the battlefield (subject to the character
// limit), events apply their effect and go to the void (or banishment,
// for a reclaimed card).
func (s *State) ResolveTopOfStack() {
	id, ok := s.TopOfStack()
	if !ok {
		s.PanicWithDiagnostics("resolve requested with an empty stack")
		return
	}
	card := s.Card(id)
	def := s.Definition(card)
	player := card.Controller
	source := SourcePlayer{Player: player}
	targets := s.resolvedTargetsFor(card)

	if def.IsCharacter {
		s.MoveToZone(card, ids.ZoneBattlefield)
		s.PushAnimation(AnimResolveCharacter{Character: card.InstanceId})
		s.RecomputeStaticEffects()
		s.ApplyCharacterLimit(source, player)
		s.Record(source, materializedTrigger)
	} else {
		for _, data := range s.Abilities(card).EventAbilities {
			event, ok := data.Ability.(ability.AbilityEvent)
			if !ok {
				continue
			}
			eventSource := SourceEvent{Player: player, StackCard: card.InstanceId, AbilityNumber: data.AbilityNumber}
			s.ApplyEffect(eventSource, event.Effect, targets)
		}
		if card.BanishOnLeavePlay {
			s.MoveToZone(card, ids.ZoneBanished)
		} else {
			s.MoveToZone(card, ids.ZoneVoid)
		}
	}
	delete(s.stackTargets, id)

	if len(s.Stack) == 0 {
		s.StackPriority = nil
	} else {
		next := s.Card(s.Stack[len(s.Stack)-1]).Controller.Opponent()
		s.StackPriority = &next
	}
	s.DrainTriggers()
}

// SubmitCharacterTarget resolves the active choose-character prompt,
// attaching the chosen character as the stack item's target and resuming
// the dispatcher (spec.md 4.D: "submitting ... may enqueue further prompts
// or apply an effect").
func (s *State) SubmitCharacterTarget(character ids.BattlefieldCharacterId) {
	p := s.popPrompt()
	if p == nil || p.Kind != PromptChooseCharacter {
		s.PanicWithDiagnostics("no active choose-character prompt", "character", character)
		return
	}
	target := character
	s.setResolvedTarget(p.StackItem, ResolvedTargets{Character: &target})
	s.PushAnimation(AnimSelectStackCardTargets{Player: p.Player, Source: p.StackItem, Targets: []ids.CardId{character}})
	s.DrainTriggers()
}

// SubmitStackCardTarget resolves the active choose-stack-card prompt.
func (s *State) SubmitStackCardTarget(stackCard ids.StackCardId) {
	p := s.popPrompt()
	if p == nil || p.Kind != PromptChooseStackCard {
		s.PanicWithDiagnostics("no active choose-stack-card prompt", "card", stackCard)
		return
	}
	target := stackCard
	s.setResolvedTarget(p.StackItem, ResolvedTargets{StackCard: &target})
	s.PushAnimation(AnimSelectStackCardTargets{Player: p.Player, Source: p.StackItem, Targets: []ids.CardId{stackCard}})
	s.DrainTriggers()
}

// SubmitPromptChoice resolves an active generic-choice prompt (e.g. "pay
// energy or decline" against a negate-unless-pays-cost effect), applying
// the chosen alternative's effect if any.
func (s *State) SubmitPromptChoice(index int) {
	p := s.popPrompt()
	if p == nil || p.Kind != PromptGenericChoice {
		s.PanicWithDiagnostics("no active generic-choice prompt", "index", index)
		return
	}
	if index < 0 || index >= len(p.Choices) {
		s.PanicWithDiagnostics("generic-choice index out of range", "index", index, "count", len(p.Choices))
		return
	}
	choice := p.Choices[index]
	s.PushAnimation(AnimMakeChoice{Player: p.Player, Choice: choice.Label})
	if choice.Effect != nil {
		if p.Resume != nil {
			s.ApplyStandardEffect(p.Resume.Source, choice.Effect, p.Resume.Targets)
		} else {
			s.ApplyStandardEffect(SourcePlayer{Player: p.Player}, choice.Effect, ResolvedTargets{})
		}
	}
	s.DrainTriggers()
}

// SubmitCardOrder applies the order chosen for a select-deck-card-order
// prompt (the foresee UI). For a deck-target prompt, cards named in order go
// to the top of the deck in the order given and any remaining cards stay in
// place; for a void-target prompt the prompt is popped and no card moves.
func (s *State) SubmitCardOrder(player ids.PlayerName, order []ids.CardId) {
	p := s.popPrompt()
	if p == nil || p.Kind != PromptSelectDeckCardOrder {
		s.PanicWithDiagnostics("no active card-order prompt")
		return
	}
	if p.OrderTarget == action.OrderTargetDeck {
		for i := len(order) - 1; i >= 0; i-- {
			s.PutOnTopOfDeck(s.Card(order[i]), player)
		}
	}
	s.DrainTriggers()
}
