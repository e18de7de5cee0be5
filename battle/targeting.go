package battle

import (
	"github.com/dreamtides/dtengine/ability"
	"github.com/dreamtides/dtengine/ids"
)

// gatherTargetPrompts inspects a newly-stacked card's ability effect for a
// target Predicate and either resolves it trivially (PredicateThis/That
// name an already-known referent) or pushes the matching choose-character
// / choose-stack-card prompt. Resolved or pending targets live in
// s.stackTargets, consumed by resolvedTargetsFor at resolution time.
// Grounded on
// original_source/rules_engine/src/battle_mutations/src/effects/apply_effect_with_prompt_for_targets.rs's
// prompt-construction half, simplified to the single-target shape this
// catalog's StandardEffect variants need (see ResolvedTargets in
// effects.go).
func (s *State) gatherTargetPrompts(source EffectSource, card *CardInstance) {
	def := s.Definition(card)
	if def.IsCharacter {
		return
	}
	var effect ability.Effect
	found := false
	for _, data := range s.Abilities(card).EventAbilities {
		if event, ok := data.Ability.(ability.AbilityEvent); ok {
			effect, found = event.Effect, true
			break
		}
	}
	if !found {
		return
	}

	predicate, kind, forDissolve, ok := firstTargetPredicate(effect)
	if !ok {
		return
	}

	switch predicate.(type) {
	case ability.PredicateThis:
		s.setResolvedTarget(card.InstanceId, ResolvedTargets{Character: &card.InstanceId})
	case ability.PredicateThat:
		// "that spell/character" resolves against the event that triggered
		// this ability's construction (e.g. a reactive counterspell card);
		// package cardtext binds it before the effect reaches this layer,
		// so there is nothing further to gather here.
	default:
		player := source.Controller()
		switch kind {
		case PromptChooseCharacter:
			pool := s.MatchingCharacters(player, predicate)
			if forDissolve {
				pool = s.excludePreventDissolve(pool)
			}
			choices := idsOfCharacters(pool)
			s.PushPrompt(&Prompt{Player: player, Kind: PromptChooseCharacter, StackItem: card.InstanceId, CharacterChoices: choices})
		case PromptChooseStackCard:
			choices := s.matchingStackCards(player, predicate)
			s.PushPrompt(&Prompt{Player: player, Kind: PromptChooseStackCard, StackItem: card.InstanceId, StackChoices: choices})
		}
	}
}

// firstTargetPredicate walks an Effect tree for the first StandardEffect
// leaf carrying a Target Predicate, returning which kind of prompt it
// needs and whether matching_characters should apply the for_dissolve
// exclusion (spec.md section 4.E).
func firstTargetPredicate(e ability.Effect) (ability.Predicate, PromptKind, bool, bool) {
	switch v := e.(type) {
	case ability.EffectSingle:
		return targetOfStandard(v.Effect)
	case ability.EffectWithOptionsValue:
		return targetOfStandard(v.Options.Effect)
	case ability.EffectList:
		for _, opts := range v.Effects {
			if p, k, fd, ok := targetOfStandard(opts.Effect); ok {
				return p, k, fd, true
			}
		}
	case ability.EffectListWithOptions:
		for _, opts := range v.Effects {
			if p, k, fd, ok := targetOfStandard(opts.Effect); ok {
				return p, k, fd, true
			}
		}
	case ability.EffectModal:
		if len(v.Choices) > 0 {
			return targetOfStandard(v.Choices[0].Effect)
		}
	}
	return nil, 0, false, false
}

func targetOfStandard(e ability.StandardEffect) (ability.Predicate, PromptKind, bool, bool) {
	switch v := e.(type) {
	case ability.EffectDissolveCharacter:
		return v.Target, PromptChooseCharacter, true, true
	case ability.EffectGainsSpark:
		return v.Target, PromptChooseCharacter, false, true
	case ability.EffectGainsSparkUntilNextMainForEach:
		return v.Target, PromptChooseCharacter, false, true
	case ability.EffectAbandonAndGainEnergyForSpark:
		return v.Target, PromptChooseCharacter, false, true
	case ability.EffectDisableActivatedAbilitiesWhileInPlay:
		return v.Target, PromptChooseCharacter, false, true
	case ability.EffectPreventDissolve:
		return v.Target, PromptChooseCharacter, false, true
	case ability.EffectPutOnTopOfEnemyDeck:
		return v.Target, PromptChooseCharacter, false, true
	case ability.EffectGainControl:
		return v.Target, PromptChooseCharacter, false, true
	case ability.EffectNegate:
		return v.Target, PromptChooseStackCard, false, true
	case ability.EffectNegateUnlessPaysCost:
		return v.Target, PromptChooseStackCard, false, true
	case ability.EffectCounterspell:
		return v.Target, PromptChooseStackCard, false, true
	default:
		return nil, 0, false, false
	}
}

func (s *State) excludePreventDissolve(cards []*CardInstance) []*CardInstance {
	var out []*CardInstance
	for _, c := range cards {
		if !c.PreventDissolveUntilEndOfTurn {
			out = append(out, c)
		}
	}
	return out
}

// MatchingCharactersForDissolve is matching_characters with for_dissolve =
// true (spec.md section 4.E): excludes characters under an active
// prevent-dissolve anchor, so a dissolve effect with no other legal
// targets is correctly reported as unplayable (scenario 4).
func (s *State) MatchingCharactersForDissolve(player ids.PlayerName, predicate ability.Predicate) []*CardInstance {
	return s.excludePreventDissolve(s.MatchingCharacters(player, predicate))
}

func (s *State) matchingStackCards(player ids.PlayerName, predicate ability.Predicate) []ids.CardId {
	var pool []*CardInstance
	switch v := predicate.(type) {
	case ability.PredicateAny:
		pool = s.matchingCards(append(s.CardsInZone(player, ids.ZoneStack), s.CardsInZone(player.Opponent(), ids.ZoneStack)...), v.Card)
	case ability.PredicateEnemy:
		pool = s.matchingCards(s.CardsInZone(player.Opponent(), ids.ZoneStack), v.Card)
	case ability.PredicateYour:
		pool = s.matchingCards(s.CardsInZone(player, ids.ZoneStack), v.Card)
	}
	return idsOfCharacters(pool)
}

func idsOfCharacters(cards []*CardInstance) []ids.CardId {
	out := make([]ids.CardId, len(cards))
	for i, c := range cards {
		out[i] = c.InstanceId
	}
	return out
}

func (s *State) setResolvedTarget(stackCard ids.CardId, targets ResolvedTargets) {
	if s.stackTargets == nil {
		s.stackTargets = make(map[ids.CardId]ResolvedTargets)
	}
	s.stackTargets[stackCard] = targets
}

func (s *State) resolvedTargetsFor(card *CardInstance) ResolvedTargets {
	if s.stackTargets == nil {
		return ResolvedTargets{}
	}
	return s.stackTargets[card.InstanceId]
}
