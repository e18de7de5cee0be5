// Package ability is the Ability Intermediate Representation: the tagged
// sum types for effects, predicates, costs, triggers, conditions, quantity
// expressions, and modal choices that a parsed card-text ability is made of
// (spec.md section 4.A/4.B). The teacher represents abilities with a single
// int-enum AbilityType/EffectType plus a loosely-typed Effect{Type, Value}
// struct (pkg/ability/types.go); this package generalizes that into one Go
// struct per variant behind a closed interface, because spec.md requires
// effects, predicates, and costs to carry heterogeneous per-variant payloads
// that a single shared struct cannot express without an ad-hoc Value field.
package ability

import "github.com/dreamtides/dtengine/ids"

// Predicate selects which object(s) an effect applies to (spec.md 4.B).
type Predicate interface {
	isPredicate()
}

type (
	// PredicateThis matches the ability's own source card.
	PredicateThis struct{}

	// PredicateIt refers to a previously-named referent within the same
	// effect list, e.g. "banish a character, then materialize it."
	PredicateIt struct{}

	// PredicateThem is the plural form of PredicateIt.
	PredicateThem struct{}

	// PredicateThat refers to the card that triggered this ability.
	PredicateThat struct{}

	// PredicateEnemy matches cards controlled by the opponent.
	PredicateEnemy struct{ Card CardPredicate }

	// PredicateYour matches any card controlled by the ability's controller.
	PredicateYour struct{ Card CardPredicate }

	// PredicateAnother matches a card controlled by the owner, excluding the
	// ability's own source card.
	PredicateAnother struct{ Card CardPredicate }

	// PredicateAny matches any card regardless of controller.
	PredicateAny struct{ Card CardPredicate }

	// PredicateAnyOther matches any card except the source, including enemy
	// cards.
	PredicateAnyOther struct{ Card CardPredicate }

	// PredicateYourVoid matches cards in the controller's void.
	PredicateYourVoid struct{ Card CardPredicate }

	// PredicateEnemyVoid matches cards in the opponent's void.
	PredicateEnemyVoid struct{ Card CardPredicate }
)

func (PredicateThis) isPredicate()      {}
func (PredicateIt) isPredicate()        {}
func (PredicateThem) isPredicate()      {}
func (PredicateThat) isPredicate()      {}
func (PredicateEnemy) isPredicate()     {}
func (PredicateYour) isPredicate()      {}
func (PredicateAnother) isPredicate()   {}
func (PredicateAny) isPredicate()       {}
func (PredicateAnyOther) isPredicate()  {}
func (PredicateYourVoid) isPredicate()  {}
func (PredicateEnemyVoid) isPredicate() {}

// Operator compares a numeric property against a fixed value, used by
// CardPredicate variants such as CharacterWithSpark.
type Operator int

const (
	OpOrLess Operator = iota
	OpOrMore
	OpExactly
	OpLowerBy
	OpHigherBy
)

func (o Operator) String() string {
	switch o {
	case OpOrLess:
		return "or less"
	case OpOrMore:
		return "or more"
	case OpExactly:
		return "exactly"
	case OpLowerBy:
		return "lower by"
	case OpHigherBy:
		return "higher by"
	default:
		return "unknown-operator"
	}
}

// CardPredicate composes filters that select a set of cards (spec.md 4.B).
// It is itself a closed sum; most variants are simple value objects, so
// unlike Predicate they are represented as one struct with a Kind tag plus
// only the fields relevant to that Kind, mirroring the teacher's
// TargetRestrictions []string idiom but with typed fields instead of
// free-form strings.
type CardPredicateKind int

const (
	CardPredicateCard CardPredicateKind = iota
	CardPredicateCharacter
	CardPredicateEvent
	CardPredicateCardOnStack
	CardPredicateCharacterType
	CardPredicateNotCharacterType
	CardPredicateCharacterWithSpark
	CardPredicateCardWithCost
	CardPredicateCharacterWithCostComparedToControlled
	CardPredicateCharacterWithMaterializedAbility
	CardPredicateFast
	CardPredicateCharacterWithMultiActivatedAbility
)

// CardPredicate filters candidate cards. Operator/Value/Subtype/Nested are
// populated according to Kind; zero value otherwise.
type CardPredicate struct {
	Kind     CardPredicateKind
	Subtype  string       // CharacterType / NotCharacterType
	Spark    ids.Spark    // CharacterWithSpark
	Cost     ids.Energy   // CardWithCost
	Operator Operator     // CharacterWithSpark / CardWithCost
	Nested   *CardPredicate // Fast{target}, CardWithCost{target}, CharacterWithCostComparedToControlled{target}
}

// Trigger names the game event a Triggered ability listens for (spec.md
// 4.B).
type TriggerKind int

const (
	TriggerMaterialized TriggerKind = iota
	TriggerJudgment
	TriggerEndOfYourTurn
	TriggerDiscard
	TriggerAbandon
	TriggerDissolved
	TriggerPlayedCardFromHand
	TriggerPlayedCardFromVoid
)

func (t TriggerKind) String() string {
	switch t {
	case TriggerMaterialized:
		return "materialized"
	case TriggerJudgment:
		return "judgment"
	case TriggerEndOfYourTurn:
		return "end of your turn"
	case TriggerDiscard:
		return "discard"
	case TriggerAbandon:
		return "abandon"
	case TriggerDissolved:
		return "dissolved"
	case TriggerPlayedCardFromHand:
		return "played from hand"
	case TriggerPlayedCardFromVoid:
		return "played from void"
	default:
		return "unknown-trigger"
	}
}

// Trigger pairs a TriggerKind with the predicate (if any) narrowing which
// cards fire it, e.g. Discard(Predicate).
type Trigger struct {
	Kind      TriggerKind
	Predicate Predicate // nil for triggers with no qualifying predicate
}
