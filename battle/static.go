package battle

import (
	"github.com/dreamtides/dtengine/ability"
	"github.com/dreamtides/dtengine/ids"
)

// RecomputeStaticEffects reapplies every battlefield static ability's
// continuous effect from scratch, rather than mutating incrementally on
// entry/exit. This mirrors
// original_source/rules_engine/src/battle_queries/src/battle_card_queries/static_ability_queries.rs's
// "derive, don't accumulate" approach to static abilities: re-deriving the
// full set on every battlefield membership change is simpler to reason
// about than tracking which prior application to undo when a source
// leaves play. Called whenever a card enters or leaves the battlefield and
// whenever EffectDisableActivatedAbilitiesWhileInPlay is applied.
func (s *State) RecomputeStaticEffects() {
	for _, c := range s.Cards {
		c.ActivatedAbilitiesDisabled = false
	}

	for _, source := range s.allBattlefieldCards() {
		list := s.Abilities(source)
		for _, data := range list.StaticAbilities {
			static, ok := data.Ability.(ability.AbilityStatic)
			if !ok {
				continue
			}
			s.applyStaticAbility(source, static)
		}
	}
}

func (s *State) applyStaticAbility(source *CardInstance, static ability.AbilityStatic) {
	switch e := static.Effect.(type) {
	case ability.EffectDisableActivatedAbilitiesWhileInPlay:
		es := SourceCharacter{Player: source.Controller, Character: source.InstanceId}
		for _, target := range s.MatchingCharacters(es.Controller(), e.Target) {
			target.ActivatedAbilitiesDisabled = true
		}
	}
}

func (s *State) allBattlefieldCards() []*CardInstance {
	var out []*CardInstance
	for _, c := range s.Cards {
		if c.Zone == ids.ZoneBattlefield {
			out = append(out, c)
		}
	}
	sortCardsById(out)
	return out
}
