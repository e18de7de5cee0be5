package battle

import (
	"github.com/dreamtides/dtengine/ability"
	"github.com/dreamtides/dtengine/action"
	"github.com/dreamtides/dtengine/ids"
)

// NextToAct returns which player is expected to submit the next action:
// the prompt's player if one is active, the stack-priority holder if the
// stack is non-empty, otherwise the active player.
func (s *State) NextToAct() ids.PlayerName {
	if p := s.FrontPrompt(); p != nil {
		return p.Player
	}
	if s.StackPriority != nil {
		return *s.StackPriority
	}
	return s.ActivePlayer
}

// LegalActions enumerates every action.BattleAction player may currently
// submit, matching spec.md section 8's invariant 8 ("legal_actions(state,
// player) contains action ⇒ execute_action does not invoke panic_with!").
// Grounded on
// original_source/rules_engine/src/battle_queries/src/legal_actions/legal_actions.rs's
// top-level dispatch by game state (prompt active / stack non-empty /
// normal main-phase play).
func (s *State) LegalActions(player ids.PlayerName) []action.BattleAction {
	if s.Status.Over {
		return nil
	}

	if p := s.FrontPrompt(); p != nil {
		if p.Player != player {
			return nil
		}
		return s.promptLegalActions(p)
	}

	var out []action.BattleAction
	if s.StackPriority != nil {
		if *s.StackPriority != player {
			return nil
		}
		out = append(out, action.PassPriority{})
		out = append(out, s.fastCardActions(player)...)
		return out
	}

	// The ending phase gives the opponent a fast-response window before the
	// active player's StartNextTurn is accepted (see ToEndingPhase's doc
	// comment); unlike every other phase, the non-active player has legal
	// actions here.
	if s.Phase == PhaseEnding {
		if player == s.ActivePlayer {
			return []action.BattleAction{action.StartNextTurn{}}
		}
		return s.fastCardActions(player)
	}

	if player != s.ActivePlayer {
		return nil
	}

	out = append(out, action.EndTurn{})
	for _, c := range s.CardsInZone(player, ids.ZoneHand) {
		if s.CanPlayCard(player, c) {
			out = append(out, action.PlayCardFromHand{Card: c.InstanceId})
		}
	}
	return out
}

func (s *State) promptLegalActions(p *Prompt) []action.BattleAction {
	var out []action.BattleAction
	switch p.Kind {
	case PromptChooseCharacter:
		for _, c := range p.CharacterChoices {
			out = append(out, action.SelectCharacterTarget{Character: c})
		}
	case PromptChooseStackCard:
		for _, c := range p.StackChoices {
			out = append(out, action.SelectStackCardTarget{Card: c})
		}
	case PromptChooseHandCards:
		// Hand-card selection reuses SelectCharacterTarget's shape: both
		// carry a single bare CardId and HandCardId is a CardId alias, so
		// the action vocabulary does not need a dedicated variant.
		for _, c := range p.HandChoices {
			out = append(out, action.SelectCharacterTarget{Character: c})
		}
	case PromptChooseEnergyValue:
		for amount := p.EnergyMin; amount.Cmp(p.EnergyMax) <= 0; amount = amount.Add(ids.Energy(1)) {
			out = append(out, action.SelectEnergyAdditionalCost{Amount: amount})
			if amount == p.EnergyMax {
				break
			}
		}
	case PromptSelectDeckCardOrder:
		for position, c := range p.OrderCards {
			out = append(out, action.SelectCardOrder{Target: p.OrderTarget, Card: c, Position: position})
		}
	case PromptGenericChoice:
		for i := range p.Choices {
			out = append(out, action.SelectPromptChoice{Index: i})
		}
	}
	return out
}

// fastCardActions returns PlayCardFromHand for every fast card in
// player's hand they can currently afford, the only plays legal while an
// opponent holds stack priority or during the ending phase (spec.md 4.E:
// "fast cards in hand they can afford").
func (s *State) fastCardActions(player ids.PlayerName) []action.BattleAction {
	var out []action.BattleAction
	for _, c := range s.CardsInZone(player, ids.ZoneHand) {
		def := s.Definition(c)
		if def.IsFast && s.CanPlayCard(player, c) {
			out = append(out, action.PlayCardFromHand{Card: c.InstanceId})
		}
	}
	return out
}

// CanPlayCard reports whether player can currently play card: they can
// afford its cost, its CanPlayRestriction hint (if any) is satisfied, and
// it has at least one legal target if its effect requires one (spec.md
// 4.E). Grounded on
// original_source/rules_engine/src/battle_queries/src/legal_actions/can_play_restrictions.rs.
func (s *State) CanPlayCard(player ids.PlayerName, card *CardInstance) bool {
	def := s.Definition(card)
	if s.Players[player].CurrentEnergy.Cmp(def.Cost) < 0 {
		return false
	}
	if !s.restrictionSatisfied(player, def.Abilities) {
		return false
	}
	return s.HasLegalTargets(player, card)
}

func (s *State) restrictionSatisfied(player ids.PlayerName, list *ability.List) bool {
	switch list.CanPlayRestriction {
	case ability.RestrictionUnrestricted:
		return true
	case ability.RestrictionEnemyCharacterOnBattlefield:
		return len(s.CardsInZone(player.Opponent(), ids.ZoneBattlefield)) > 0
	case ability.RestrictionDissolveEnemyCharacter:
		return len(s.excludePreventDissolve(s.CardsInZone(player.Opponent(), ids.ZoneBattlefield))) > 0
	case ability.RestrictionEnemyCardOnStack:
		return s.enemyStackCardCount(player, nil) > 0
	case ability.RestrictionEnemyEventCardOnStack:
		isEvent := true
		return s.enemyStackCardCount(player, &isEvent) > 0
	case ability.RestrictionEnemyCharacterCardOnStack:
		isEvent := false
		return s.enemyStackCardCount(player, &isEvent) > 0
	case ability.RestrictionAdditionalEnergyAvailable:
		return s.Players[player].CurrentEnergy.Cmp(list.RestrictionEnergy) >= 0
	default:
		return true
	}
}

// enemyStackCardCount counts the opponent's stack cards, optionally
// filtered by character-ness (wantCharacter == !*isEventFilter).
func (s *State) enemyStackCardCount(player ids.PlayerName, isEventFilter *bool) int {
	count := 0
	for _, c := range s.CardsInZone(player.Opponent(), ids.ZoneStack) {
		if isEventFilter == nil {
			count++
			continue
		}
		isEvent := !s.Definition(c).IsCharacter
		if isEvent == *isEventFilter {
			count++
		}
	}
	return count
}

// HasLegalTargets reports whether card's primary effect has at least one
// resolvable target for player, so a targeted effect with no valid target
// (e.g. dissolve when the only character is shielded by prevent-dissolve)
// is correctly excluded from legal actions (spec.md section 8 scenario 4).
func (s *State) HasLegalTargets(player ids.PlayerName, card *CardInstance) bool {
	def := s.Definition(card)
	if def.IsCharacter {
		return true
	}
	if len(s.Abilities(card).EventAbilities) == 0 {
		return true
	}
	for _, data := range s.Abilities(card).EventAbilities {
		event, ok := data.Ability.(ability.AbilityEvent)
		if !ok {
			continue
		}
		predicate, kind, forDissolve, needsTarget := firstTargetPredicate(event.Effect)
		if !needsTarget {
			return true
		}
		switch predicate.(type) {
		case ability.PredicateThis, ability.PredicateThat:
			return true
		}
		switch kind {
		case PromptChooseCharacter:
			pool := s.MatchingCharacters(player, predicate)
			if forDissolve {
				pool = s.excludePreventDissolve(pool)
			}
			if len(pool) > 0 {
				return true
			}
		case PromptChooseStackCard:
			if len(s.matchingStackCards(player, predicate)) > 0 {
				return true
			}
		}
	}
	return false
}
