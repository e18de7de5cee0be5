package ability

import "github.com/dreamtides/dtengine/ids"

// Ability is the top-level sum type: one of Event, Static, Activated,
// Triggered, or Named (spec.md 4.A). The teacher's pkg/ability/types.go
// Ability struct is a single flat struct with a Type int discriminant and
// every variant's fields inlined (Cost, Effects, TriggerCondition, etc, all
// present regardless of Type); this package generalizes that into a closed
// interface with one struct per variant so a Static ability cannot
// accidentally carry a TriggerCondition, matching spec.md section 9's
// "Sum-type polymorphism replaces inheritance" design note.
type Ability interface {
	isAbility()
}

type (
	// AbilityEvent fires once, on resolution, for an event card.
	AbilityEvent struct{ Effect Effect }

	// AbilityStatic continuously modifies the rules while its source
	// remains in its defining zone (usually the battlefield).
	AbilityStatic struct{ Effect StandardEffect }

	// AbilityActivated is player-initiated: pay Costs, then apply Effect.
	AbilityActivated struct {
		Costs             []Cost
		Effect            Effect
		TimingRestriction CanPlayRestriction
		IsFast            bool
		IsMulti           bool // true if usable more than once per turn
	}

	// AbilityTriggered fires automatically when Trigger matches a game
	// event.
	AbilityTriggered struct {
		Trigger Trigger
		Effect  Effect
	}

	// AbilityNamed is a keyword ability that expands into a canonical
	// ability at catalog-build time, e.g. "reclaim" expands into a
	// play-from-void AbilityStatic with a banish-on-leave rider.
	AbilityNamed struct {
		Keyword  string
		Expanded Ability
	}
)

func (AbilityEvent) isAbility()     {}
func (AbilityStatic) isAbility()    {}
func (AbilityActivated) isAbility() {}
func (AbilityTriggered) isAbility() {}
func (AbilityNamed) isAbility()     {}

// CanPlayRestriction is a per-card hint stored on the ability list used to
// short-circuit expensive legality checks (spec.md 4.E).
type CanPlayRestriction int

const (
	RestrictionUnrestricted CanPlayRestriction = iota
	RestrictionEnemyCharacterOnBattlefield
	RestrictionDissolveEnemyCharacter
	RestrictionEnemyCardOnStack
	RestrictionEnemyEventCardOnStack
	RestrictionEnemyCharacterCardOnStack
	RestrictionAdditionalEnergyAvailable
)

// RestrictionWithEnergy bundles RestrictionAdditionalEnergyAvailable(n)'s
// payload; most restrictions carry no data.
type RestrictionWithEnergy struct {
	Restriction CanPlayRestriction
	Amount      ids.Energy
}

// ExpandNamed resolves a Named ability to its expansion, or returns the
// ability unchanged if it is not Named. Non-Named abilities are their own
// fixed point.
func ExpandNamed(a Ability) Ability {
	if named, ok := a.(AbilityNamed); ok {
		return named.Expanded
	}
	return a
}

// ExpandReclaim builds the canonical "reclaim" named ability: a static
// play-from-void permission plus a banish-on-leave rider attached at
// resolution time by package battle (see battle.ApplyReclaimRider).
func ExpandReclaim() Ability {
	return AbilityNamed{
		Keyword:  "reclaim",
		Expanded: AbilityStatic{Effect: EffectReclaimPermission{}},
	}
}

// IsReclaim reports whether a is (or expands to) the reclaim static
// permission.
func IsReclaim(a Ability) bool {
	static, ok := ExpandNamed(a).(AbilityStatic)
	if !ok {
		return false
	}
	_, ok = static.Effect.(EffectReclaimPermission)
	return ok
}
