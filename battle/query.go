package battle

import (
	"github.com/dreamtides/dtengine/ability"
	"github.com/dreamtides/dtengine/ids"
)

// CountMatchingCharacters counts battlefield characters matching predicate,
// scoped to the controller(s) predicate selects (spec.md 4.B conditions and
// quantity expressions). Grounded on
// original_source/rules_engine/src/battle_queries/src/battle_card_queries/card_queries.rs's
// counting helpers.
func (s *State) CountMatchingCharacters(player ids.PlayerName, predicate ability.Predicate) int {
	return len(s.MatchingCharacters(player, predicate))
}

// MatchingCharacters returns every battlefield character predicate selects,
// relative to player (the ability's controller). It is not given the
// ability's source card, so PredicateAnother (player's characters) and
// PredicateAnyOther (both battlefields) do not exclude the source.
func (s *State) MatchingCharacters(player ids.PlayerName, predicate ability.Predicate) []*CardInstance {
	switch v := predicate.(type) {
	case ability.PredicateYour:
		return s.matchingCards(s.CardsInZone(player, ids.ZoneBattlefield), v.Card)
	case ability.PredicateEnemy:
		return s.matchingCards(s.CardsInZone(player.Opponent(), ids.ZoneBattlefield), v.Card)
	case ability.PredicateAny:
		return s.matchingCards(s.battlefieldBothPlayers(player), v.Card)
	case ability.PredicateAnyOther:
		return s.matchingCards(s.battlefieldBothPlayers(player), v.Card)
	case ability.PredicateAnother:
		return s.matchingCards(s.CardsInZone(player, ids.ZoneBattlefield), v.Card)
	default:
		// PredicateThis/It/Them/That name a single already-resolved
		// referent rather than a countable set, so they select no
		// characters here.
		return nil
	}
}

func (s *State) battlefieldBothPlayers(player ids.PlayerName) []*CardInstance {
	out := append([]*CardInstance{}, s.CardsInZone(player, ids.ZoneBattlefield)...)
	return append(out, s.CardsInZone(player.Opponent(), ids.ZoneBattlefield)...)
}

// matchingCards filters cards by a CardPredicate (spec.md 4.B), the
// "what kind of card" half of targeting — zone/controller scoping is
// already baked into the cards slice by the caller.
func (s *State) matchingCards(cards []*CardInstance, predicate ability.CardPredicate) []*CardInstance {
	var out []*CardInstance
	for _, c := range cards {
		if s.cardMatches(c, predicate) {
			out = append(out, c)
		}
	}
	return out
}

func (s *State) cardMatches(c *CardInstance, predicate ability.CardPredicate) bool {
	def := s.Definition(c)
	switch predicate.Kind {
	case ability.CardPredicateCard:
		return true
	case ability.CardPredicateCharacter:
		return def.IsCharacter
	case ability.CardPredicateEvent:
		return !def.IsCharacter
	case ability.CardPredicateCardOnStack:
		return c.Zone == ids.ZoneStack
	case ability.CardPredicateCharacterType:
		return def.IsCharacter && hasType(def.CharacterTypes, predicate.Subtype)
	case ability.CardPredicateNotCharacterType:
		return def.IsCharacter && !hasType(def.CharacterTypes, predicate.Subtype)
	case ability.CardPredicateCharacterWithSpark:
		return def.IsCharacter && compareOperator(int(c.CurrentSpark()), int(predicate.Spark), predicate.Operator)
	case ability.CardPredicateCardWithCost:
		return compareOperator(int(def.Cost), int(predicate.Cost), predicate.Operator)
	case ability.CardPredicateCharacterWithCostComparedToControlled:
		return def.IsCharacter && predicate.Nested != nil && s.costComparedToControlled(c, *predicate.Nested)
	case ability.CardPredicateCharacterWithMaterializedAbility:
		return def.IsCharacter && def.Abilities.BattlefieldTriggers[ability.TriggerMaterialized]
	case ability.CardPredicateFast:
		return def.IsFast
	case ability.CardPredicateCharacterWithMultiActivatedAbility:
		return def.IsCharacter && hasMultiActivatedAbility(def.Abilities)
	default:
		return false
	}
}

func hasMultiActivatedAbility(list *ability.List) bool {
	for _, data := range list.ActivatedAbilities {
		if a, ok := data.Ability.(ability.AbilityActivated); ok && a.IsMulti {
			return true
		}
	}
	return false
}

func hasType(types []string, want string) bool {
	for _, t := range types {
		if t == want {
			return true
		}
	}
	return false
}

func (s *State) costComparedToControlled(c *CardInstance, nested ability.CardPredicate) bool {
	def := s.Definition(c)
	for _, other := range s.CardsInZone(c.Controller, ids.ZoneBattlefield) {
		if other.InstanceId == c.InstanceId {
			continue
		}
		if compareOperator(int(def.Cost), int(s.Definition(other).Cost), nested.Operator) {
			return true
		}
	}
	return false
}

// matchingCardsByPredicate resolves an outer Predicate (which names a
// controller-scoped void, e.g. PredicateYourVoid/PredicateEnemyVoid) into
// the matching cards in that zone, used by EffectBanishCardsFromVoid.
func (s *State) matchingCardsByPredicate(player ids.PlayerName, predicate ability.Predicate) []*CardInstance {
	switch v := predicate.(type) {
	case ability.PredicateYourVoid:
		return s.matchingCards(s.CardsInZone(player, ids.ZoneVoid), v.Card)
	case ability.PredicateEnemyVoid:
		return s.matchingCards(s.CardsInZone(player.Opponent(), ids.ZoneVoid), v.Card)
	default:
		return nil
	}
}
