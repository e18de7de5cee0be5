package ability

import "github.com/dreamtides/dtengine/ids"

// StandardEffect enumerates every card-effect primitive the system
// supports (spec.md 4.B). Effects are data, not code: the mutation layer in
// package battle pattern-matches on the concrete type via a type switch, and
// adding a new effect means adding a new struct plus a new switch case,
// mirroring spec.md section 9's "the compiler forces handling in every
// pattern-match site" design note.
type StandardEffect interface {
	isStandardEffect()
}

type (
	// EffectDrawCards draws N cards for the controller.
	EffectDrawCards struct{ Count int }

	// EffectDiscardCards discards N cards matching a predicate.
	EffectDiscardCards struct {
		Predicate CardPredicate
		Count     int
	}

	// EffectDissolveCharacter removes a character from the battlefield,
	// sending it to its owner's void, unless protected by an active
	// prevent-dissolve anchor.
	EffectDissolveCharacter struct{ Target Predicate }

	// EffectNegate counters a target stack item so it is removed from the
	// stack without resolving.
	EffectNegate struct{ Target Predicate }

	// EffectNegateUnlessPaysCost counters a target stack item unless its
	// controller, when prompted, pays an additional energy cost to save
	// it; declining (or being unable to afford it) lets the negation
	// through.
	EffectNegateUnlessPaysCost struct {
		Target Predicate
		Cost   ids.Energy
	}

	// EffectGainEnergy grants the controller energy.
	EffectGainEnergy struct{ Amount ids.Energy }

	// EffectSpendEnergy spends a fixed amount of the controller's energy as
	// part of an effect (distinct from a Cost, which is paid before the
	// card enters the stack).
	EffectSpendEnergy struct{ Amount ids.Energy }

	// EffectGainPoints grants the controller victory points.
	EffectGainPoints struct{ Amount ids.Points }

	// EffectGainsSpark permanently increases a target's spark.
	EffectGainsSpark struct {
		Target Predicate
		Amount ids.Spark
	}

	// EffectGainsSparkUntilNextMainForEach grants spark until the
	// controller's next main phase, scaled by a quantity expression, e.g.
	// "gains +1 spark until your next main phase for each card drawn this
	// turn".
	EffectGainsSparkUntilNextMainForEach struct {
		Target     Predicate
		PerUnit    ids.Spark
		Quantity   QuantityExpression
	}

	// EffectBanishCardsFromVoid banishes N cards matching a predicate from
	// a void.
	EffectBanishCardsFromVoid struct {
		Predicate Predicate
		Count     int
	}

	// EffectAbandonAndGainEnergyForSpark abandons a target character and
	// grants the controller energy equal to (or scaled from) its spark.
	EffectAbandonAndGainEnergyForSpark struct {
		Target          Predicate
		EnergyPerSpark  ids.Energy
	}

	// EffectDisableActivatedAbilitiesWhileInPlay is a static-effect rider
	// that disables a target's activated abilities for as long as the
	// effect's source remains on the battlefield.
	EffectDisableActivatedAbilitiesWhileInPlay struct{ Target Predicate }

	// EffectCounterspell negates a target stack item unconditionally; kept
	// distinct from EffectNegate because "counterspell" cards additionally
	// carry their own can-play restrictions (spec.md 4.E
	// CanPlayRestriction).
	EffectCounterspell struct{ Target Predicate }

	// EffectForesee looks at the top N cards of the controller's deck and
	// lets them reorder/bin some of them.
	EffectForesee struct{ Count int }

	// EffectDiscover searches for one card matching a predicate from
	// outside the normal zones accessible to the controller (e.g. deck) and
	// puts it into hand.
	EffectDiscover struct{ Predicate CardPredicate }

	// EffectCreateTriggerUntilEndOfTurn installs a temporary trigger
	// listener that expires at end of turn.
	EffectCreateTriggerUntilEndOfTurn struct {
		Trigger Trigger
		Effect  StandardEffect
	}

	// EffectPreventDissolve grants a target an anchor making it untargetable
	// by dissolve effects until end of turn.
	EffectPreventDissolve struct{ Target Predicate }

	// EffectPutOnTopOfEnemyDeck returns a target card to the top of the
	// enemy's deck.
	EffectPutOnTopOfEnemyDeck struct{ Target Predicate }

	// EffectGainControl takes control of a target character.
	EffectGainControl struct{ Target Predicate }

	// EffectConditional applies Then only if Condition holds, otherwise
	// applies the optional Else.
	EffectConditional struct {
		Condition Condition
		Then      StandardEffect
		Else      StandardEffect // nil if there is no else-branch
	}

	// EffectCountingGainPointsForEach grants points scaled by a quantity
	// expression, e.g. "gain 1 point for each character you control".
	EffectCountingGainPointsForEach struct {
		PerUnit  ids.Points
		Quantity QuantityExpression
	}

	// EffectReclaimPermission is the canonical expansion target of the
	// "reclaim" named ability (spec.md 4.A): it marks a card as playable
	// from the void and, when the card resolves from that zone, attaches a
	// banish-on-leave rider. It carries no data of its own; package battle
	// recognizes it structurally.
	EffectReclaimPermission struct{}
)

func (EffectDrawCards) isStandardEffect()                           {}
func (EffectDiscardCards) isStandardEffect()                        {}
func (EffectDissolveCharacter) isStandardEffect()                   {}
func (EffectNegate) isStandardEffect()                               {}
func (EffectNegateUnlessPaysCost) isStandardEffect()                 {}
func (EffectGainEnergy) isStandardEffect()                           {}
func (EffectSpendEnergy) isStandardEffect()                          {}
func (EffectGainPoints) isStandardEffect()                           {}
func (EffectGainsSpark) isStandardEffect()                           {}
func (EffectGainsSparkUntilNextMainForEach) isStandardEffect()       {}
func (EffectBanishCardsFromVoid) isStandardEffect()                  {}
func (EffectAbandonAndGainEnergyForSpark) isStandardEffect()         {}
func (EffectDisableActivatedAbilitiesWhileInPlay) isStandardEffect() {}
func (EffectCounterspell) isStandardEffect()                         {}
func (EffectForesee) isStandardEffect()                              {}
func (EffectDiscover) isStandardEffect()                             {}
func (EffectCreateTriggerUntilEndOfTurn) isStandardEffect()          {}
func (EffectPreventDissolve) isStandardEffect()                      {}
func (EffectPutOnTopOfEnemyDeck) isStandardEffect()                  {}
func (EffectGainControl) isStandardEffect()                          {}
func (EffectConditional) isStandardEffect()                          {}
func (EffectCountingGainPointsForEach) isStandardEffect()            {}
func (EffectReclaimPermission) isStandardEffect()                    {}
