package ability

import "github.com/dreamtides/dtengine/ids"

// AbilityData wraps one ability with its position within the owning card's
// definition, grounded on original_source's battle_state/ability_list.rs
// `AbilityData<T>`.
type AbilityData struct {
	AbilityNumber ids.AbilityNumber
	Ability       Ability
}

// List groups a card's abilities by kind and precomputes the flags package
// battle's legality layer needs, mirroring original_source's AbilityList:
// rather than re-scanning every ability on every legal-actions query, the
// catalog computes these once when a card definition is parsed.
type List struct {
	EventAbilities     []AbilityData
	StaticAbilities    []AbilityData
	ActivatedAbilities []AbilityData
	TriggeredAbilities []AbilityData

	// CanPlayRestriction short-circuits expensive legality checks (spec.md
	// 4.E); RestrictionUnrestricted if the card has no cheap restriction.
	CanPlayRestriction CanPlayRestriction
	RestrictionEnergy  ids.Energy // populated only for RestrictionAdditionalEnergyAvailable

	// BattlefieldTriggers / StackTriggers record which TriggerKinds this
	// card's abilities can respond to while in each zone, so the trigger
	// dispatcher in package battle does not need to walk every ability of
	// every card on every event.
	BattlefieldTriggers map[TriggerKind]bool
	StackTriggers       map[TriggerKind]bool

	HasBattlefieldActivatedAbilities bool
	HasPlayFromVoidAbility            bool
}

// NewList builds a List from a flat slice of abilities, computing the
// derived flags.
func NewList(abilities []AbilityData) *List {
	l := &List{
		CanPlayRestriction:  RestrictionUnrestricted,
		BattlefieldTriggers: make(map[TriggerKind]bool),
		StackTriggers:       make(map[TriggerKind]bool),
	}
	for _, data := range abilities {
		switch a := data.Ability.(type) {
		case AbilityEvent:
			l.EventAbilities = append(l.EventAbilities, data)
		case AbilityStatic:
			l.StaticAbilities = append(l.StaticAbilities, data)
			if IsReclaim(a) {
				l.HasPlayFromVoidAbility = true
			}
		case AbilityActivated:
			l.ActivatedAbilities = append(l.ActivatedAbilities, data)
			l.HasBattlefieldActivatedAbilities = true
		case AbilityTriggered:
			l.TriggeredAbilities = append(l.TriggeredAbilities, data)
			l.BattlefieldTriggers[a.Trigger.Kind] = true
		case AbilityNamed:
			if IsReclaim(a) {
				l.HasPlayFromVoidAbility = true
			}
		}
	}
	return l
}
