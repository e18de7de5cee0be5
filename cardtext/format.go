package cardtext

import (
	"fmt"
	"strings"

	"github.com/dreamtides/dtengine/ability"
)

// Format renders an Ability back to card text, the inverse of
// ParseCardText for the grammar subset this package implements. Re-parsing
// Format's output reproduces the same Ability value (spec.md section 4.C's
// round-trip law), though Format's literal text need not match a card's
// original oracle text byte-for-byte (bindings are already substituted by
// the time an Ability exists).
func Format(a ability.Ability) string {
	switch v := a.(type) {
	case ability.AbilityEvent:
		return formatEffect(v.Effect) + "."
	case ability.AbilityStatic:
		return formatStandardEffect(v.Effect) + "."
	case ability.AbilityActivated:
		return formatActivated(v) + "."
	case ability.AbilityTriggered:
		return formatTrigger(v.Trigger) + ": " + formatEffect(v.Effect) + "."
	case ability.AbilityNamed:
		return "{" + v.Keyword + "}"
	default:
		return fmt.Sprintf("<unformattable ability %T>", a)
	}
}

// FormatAll joins multiple abilities with the "$br" paragraph separator,
// the inverse of ParseCardText's segment split.
func FormatAll(abilities []ability.Ability) string {
	parts := make([]string, len(abilities))
	for i, a := range abilities {
		parts[i] = Format(a)
	}
	return strings.Join(parts, " $br ")
}

func formatActivated(a ability.AbilityActivated) string {
	var tag string
	switch {
	case a.IsFast && a.IsMulti:
		tag = "$fastmultiactivated"
	case a.IsFast:
		tag = "$fastactivated"
	case a.IsMulti:
		tag = "$multiactivated"
	default:
		tag = "$activated"
	}
	costs := make([]string, len(a.Costs))
	for i, c := range a.Costs {
		costs[i] = formatCost(c)
	}
	return tag + " " + strings.Join(costs, ", ") + ": " + formatEffect(a.Effect)
}

func formatCost(c ability.Cost) string {
	switch v := c.(type) {
	case ability.CostEnergy:
		return fmt.Sprintf("$%d", uint32(v.Amount))
	case ability.CostDiscardCards:
		return fmt.Sprintf("discard %s", countNoun(v.Count, "card"))
	case ability.CostBanishCardsFromYourVoid:
		return fmt.Sprintf("banish %s from your void", countNoun(v.Count, "card"))
	case ability.CostSpendOneOrMoreEnergy:
		return "spend one or more energy"
	case ability.CostAbandonCharactersCount:
		return fmt.Sprintf("abandon %s", countNoun(v.Count, "character"))
	default:
		return fmt.Sprintf("<unformattable cost %T>", c)
	}
}

func formatTrigger(t ability.Trigger) string {
	switch t.Kind {
	case ability.TriggerMaterialized:
		return "$materialized"
	case ability.TriggerJudgment:
		return "$judgment"
	case ability.TriggerEndOfYourTurn:
		return "at the end of your turn"
	case ability.TriggerDiscard:
		return "whenever you discard " + formatPredicateOrDefault(t.Predicate, "a card")
	case ability.TriggerAbandon:
		return "whenever you abandon " + formatPredicateOrDefault(t.Predicate, "a character")
	case ability.TriggerDissolved:
		return "whenever " + formatPredicate(t.Predicate) + " is dissolved"
	case ability.TriggerPlayedCardFromHand:
		return "whenever " + formatPredicate(t.Predicate) + " is played from your hand"
	case ability.TriggerPlayedCardFromVoid:
		return "whenever " + formatPredicate(t.Predicate) + " is played from your void"
	default:
		return "<unformattable trigger>"
	}
}

func formatPredicateOrDefault(p ability.Predicate, fallback string) string {
	if p == nil {
		return fallback
	}
	return formatPredicate(p)
}

func formatEffect(e ability.Effect) string {
	switch v := e.(type) {
	case ability.EffectSingle:
		return formatStandardEffect(v.Effect)
	case ability.EffectWithOptionsValue:
		return formatEffectWithOptions(v.Options, []ability.StandardEffect{v.Options.Effect})
	case ability.EffectList:
		return formatEffectList(v.Effects)
	case ability.EffectListWithOptions:
		effects := make([]ability.StandardEffect, len(v.Effects))
		for i, w := range v.Effects {
			effects[i] = w.Effect
		}
		return formatEffectWithOptions(v.Options, effects)
	case ability.EffectModal:
		choices := make([]string, len(v.Choices))
		for i, c := range v.Choices {
			choices[i] = c.Label + ": " + formatStandardEffect(c.Effect)
		}
		return strings.Join(choices, " or ")
	default:
		return fmt.Sprintf("<unformattable effect %T>", e)
	}
}

func formatEffectWithOptions(opts ability.EffectWithOptions, effects []ability.StandardEffect) string {
	body := formatEffectChain(effects)
	if opts.Optional {
		body = "you may " + body
	}
	if opts.Condition != nil {
		body = "if " + formatCondition(*opts.Condition) + ", " + body
	}
	return body
}

func formatEffectList(effects []ability.EffectWithOptions) string {
	plain := make([]ability.StandardEffect, len(effects))
	for i, w := range effects {
		plain[i] = w.Effect
	}
	return formatEffectChain(plain)
}

func formatEffectChain(effects []ability.StandardEffect) string {
	parts := make([]string, len(effects))
	for i, e := range effects {
		parts[i] = formatStandardEffect(e)
	}
	return strings.Join(parts, ", then ")
}

func formatCondition(c ability.Condition) string {
	switch c.Kind {
	case ability.ConditionPredicateCount:
		if your, ok := c.Predicate.(ability.PredicateYour); ok {
			return fmt.Sprintf("you control %d %s", c.Count, formatCardPredicate(your.Card))
		}
		return fmt.Sprintf("you control %d %s", c.Count, formatPredicate(c.Predicate))
	default:
		return "<unformattable condition>"
	}
}

func formatStandardEffect(e ability.StandardEffect) string {
	switch v := e.(type) {
	case ability.EffectDrawCards:
		return "draw " + countNoun(v.Count, "card")
	case ability.EffectDiscardCards:
		return "discard " + countNoun(v.Count, "card")
	case ability.EffectDissolveCharacter:
		return "dissolve " + formatPredicate(v.Target)
	case ability.EffectNegate:
		return "negate " + formatPredicate(v.Target)
	case ability.EffectCounterspell:
		return "negate " + formatPredicate(v.Target)
	case ability.EffectNegateUnlessPaysCost:
		return fmt.Sprintf("negate %s unless its controller pays $%d", formatPredicate(v.Target), uint32(v.Cost))
	case ability.EffectGainEnergy:
		return fmt.Sprintf("gain $%d", uint32(v.Amount))
	case ability.EffectSpendEnergy:
		return fmt.Sprintf("spend $%d", uint32(v.Amount))
	case ability.EffectGainPoints:
		return fmt.Sprintf("gain %d %s", int(v.Amount), pluralize(int(v.Amount), "point"))
	case ability.EffectGainsSpark:
		return fmt.Sprintf("%s gains +%d spark", formatPredicate(v.Target), int(v.Amount))
	case ability.EffectGainsSparkUntilNextMainForEach:
		return fmt.Sprintf("%s gains +%d spark until your next main phase for each %s you control",
			formatPredicate(v.Target), int(v.PerUnit), formatCardPredicate(quantityCardPredicate(v.Quantity)))
	case ability.EffectBanishCardsFromVoid:
		return fmt.Sprintf("banish %s from %s", countNoun(v.Count, "card"), formatVoidPredicate(v.Predicate))
	case ability.EffectAbandonAndGainEnergyForSpark:
		return fmt.Sprintf("abandon %s and gain energy equal to its spark", formatPredicate(v.Target))
	case ability.EffectDisableActivatedAbilitiesWhileInPlay:
		return "disable the activated abilities of " + formatPredicate(v.Target)
	case ability.EffectForesee:
		return fmt.Sprintf("foresee %d", v.Count)
	case ability.EffectDiscover:
		return "discover a " + formatCardPredicate(v.Predicate)
	case ability.EffectCreateTriggerUntilEndOfTurn:
		return "until end of turn, " + formatTrigger(v.Trigger) + ": " + formatStandardEffect(v.Effect)
	case ability.EffectPreventDissolve:
		return formatPredicate(v.Target) + " cannot be dissolved this turn"
	case ability.EffectPutOnTopOfEnemyDeck:
		return "return " + formatPredicate(v.Target) + " to the top of the enemy's deck"
	case ability.EffectGainControl:
		return "take control of " + formatPredicate(v.Target)
	case ability.EffectConditional:
		body := "if " + formatCondition(v.Condition) + ", " + formatStandardEffect(v.Then)
		if v.Else != nil {
			body += ". otherwise, " + formatStandardEffect(v.Else)
		}
		return body
	case ability.EffectCountingGainPointsForEach:
		return fmt.Sprintf("gain %d %s for each %s",
			int(v.PerUnit), pluralize(int(v.PerUnit), "point"), formatPredicate(quantityPredicate(v.Quantity)))
	case ability.EffectReclaimPermission:
		return "{reclaim}"
	default:
		return fmt.Sprintf("<unformattable effect %T>", e)
	}
}

func quantityCardPredicate(q ability.QuantityExpression) ability.CardPredicate {
	if your, ok := q.Predicate.(ability.PredicateYour); ok {
		return your.Card
	}
	return ability.CardPredicate{Kind: ability.CardPredicateCard}
}

func quantityPredicate(q ability.QuantityExpression) ability.Predicate {
	if q.Predicate != nil {
		return q.Predicate
	}
	return ability.PredicateAny{Card: ability.CardPredicate{Kind: ability.CardPredicateCard}}
}

func formatVoidPredicate(p ability.Predicate) string {
	switch p.(type) {
	case ability.PredicateEnemyVoid:
		return "the enemy's void"
	case ability.PredicateYourVoid:
		return "your void"
	default:
		return formatPredicate(p)
	}
}

func formatPredicate(p ability.Predicate) string {
	switch v := p.(type) {
	case ability.PredicateThis:
		return "this"
	case ability.PredicateIt:
		return "it"
	case ability.PredicateThem:
		return "them"
	case ability.PredicateThat:
		return "that"
	case ability.PredicateEnemy:
		return "the enemy's " + formatCardPredicate(v.Card)
	case ability.PredicateYour:
		return formatCardPredicate(v.Card) + " you control"
	case ability.PredicateAnother:
		return "another " + formatCardPredicate(v.Card) + " you control"
	case ability.PredicateAny:
		return "any " + formatCardPredicate(v.Card)
	case ability.PredicateAnyOther:
		return "any other " + formatCardPredicate(v.Card)
	case ability.PredicateYourVoid:
		return formatCardPredicate(v.Card) + " in your void"
	case ability.PredicateEnemyVoid:
		return formatCardPredicate(v.Card) + " in the enemy's void"
	default:
		return fmt.Sprintf("<unformattable predicate %T>", p)
	}
}

func formatCardPredicate(cp ability.CardPredicate) string {
	switch cp.Kind {
	case ability.CardPredicateCard:
		return "card"
	case ability.CardPredicateCharacter:
		return "character"
	case ability.CardPredicateEvent:
		return "event"
	case ability.CardPredicateCardOnStack:
		return "card on the stack"
	case ability.CardPredicateCharacterType:
		return "{cardtype: " + cp.Subtype + "}"
	case ability.CardPredicateNotCharacterType:
		return "non-{cardtype: " + cp.Subtype + "} character"
	case ability.CardPredicateCharacterWithSpark:
		return fmt.Sprintf("character with spark %d %s", int(cp.Spark), cp.Operator)
	case ability.CardPredicateCardWithCost:
		return fmt.Sprintf("character with cost $%d %s", uint32(cp.Cost), cp.Operator)
	case ability.CardPredicateCharacterWithCostComparedToControlled:
		return "character with cost less than or equal to the number of " + formatCardPredicate(*cp.Nested) + " you control"
	case ability.CardPredicateCharacterWithMaterializedAbility:
		return "character with a materialized ability"
	case ability.CardPredicateFast:
		return "fast " + formatCardPredicate(*cp.Nested)
	default:
		return "<unformattable card predicate>"
	}
}

func countNoun(count int, noun string) string {
	if count == 1 {
		return "a " + noun
	}
	return fmt.Sprintf("%d %s", count, pluralize(count, noun))
}

func pluralize(count int, noun string) string {
	if count == 1 {
		return noun
	}
	return noun + "s"
}
