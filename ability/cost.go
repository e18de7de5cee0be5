package ability

import "github.com/dreamtides/dtengine/ids"

// Cost is paid before a card or ability enters the stack (spec.md 4.B).
// Variable costs require prompts during payment.
type Cost interface {
	isCost()
}

type (
	// CostEnergy requires paying a fixed amount of energy.
	CostEnergy struct{ Amount ids.Energy }

	// CostDiscardCards requires discarding N cards matching a predicate.
	CostDiscardCards struct {
		Predicate CardPredicate
		Count     int
	}

	// CostBanishCardsFromYourVoid requires banishing N cards from your void.
	CostBanishCardsFromYourVoid struct{ Count int }

	// CostSpendOneOrMoreEnergy requires spending a player-chosen amount of
	// energy, at least one, resolved via a choose-energy-value prompt.
	CostSpendOneOrMoreEnergy struct{}

	// CostAbandonCharactersCount requires abandoning N controlled
	// characters.
	CostAbandonCharactersCount struct{ Count int }
)

func (CostEnergy) isCost()                     {}
func (CostDiscardCards) isCost()                {}
func (CostBanishCardsFromYourVoid) isCost()     {}
func (CostSpendOneOrMoreEnergy) isCost()        {}
func (CostAbandonCharactersCount) isCost()      {}

// QuantityExpression is a named integer source used as an effect multiplier
// (spec.md 4.B), e.g. "draw a card for each card played this turn".
type QuantityExpressionKind int

const (
	QuantityCardsPlayedThisTurn QuantityExpressionKind = iota
	QuantityCardsDiscardedThisTurn
	QuantityEnergySpentOnThisCard
	QuantityCardsMatchingPredicate
)

// QuantityExpression names an integer source; Predicate is populated only
// for QuantityCardsMatchingPredicate.
type QuantityExpression struct {
	Kind      QuantityExpressionKind
	Predicate Predicate
}

// Condition is a truth predicate over battle state (spec.md 4.B), used to
// gate conditional effects ("if you control a Spirit Animal, ...").
type ConditionKind int

const (
	ConditionPredicateCount ConditionKind = iota
	ConditionCharactersShareType
)

// Condition evaluates to true or false against BattleState; Predicate/Count
// are populated for ConditionPredicateCount.
type Condition struct {
	Kind      ConditionKind
	Predicate Predicate
	Count     int
	Operator  Operator
}
