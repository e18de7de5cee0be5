package ability

// Effect is the outer wrapper around one or more StandardEffects, carrying
// optionality, per-effect costs, conditions, and modal choices (spec.md
// 4.B). Grounded directly on original_source's effect.rs `Effect` enum
// (Effect/WithOptions/List), extended with ListWithOptions and Modal per
// spec.md's description of the full variant set.
type Effect interface {
	isEffect()
}

type (
	// EffectSingle wraps one StandardEffect with no options.
	EffectSingle struct{ Effect StandardEffect }

	// EffectWithOptionsValue wraps one StandardEffect plus optionality, a
	// resolution-time cost, and/or a condition.
	EffectWithOptionsValue struct{ Options EffectWithOptions }

	// EffectList applies a sequence of EffectWithOptions in order.
	EffectList struct{ Effects []EffectWithOptions }

	// EffectListWithOptions is a List additionally gated as a unit by
	// optionality/cost/condition (e.g. "you may pay {e}: do A, then B").
	EffectListWithOptions struct {
		Effects   []EffectWithOptions
		Options   EffectWithOptions // Effect field unused; carries Optional/Cost/Condition only
	}

	// EffectModal presents the controller a choice among ModalChoices; only
	// the chosen branch's effect applies.
	EffectModal struct{ Choices []ModalChoice }
)

func (EffectSingle) isEffect()            {}
func (EffectWithOptionsValue) isEffect()  {}
func (EffectList) isEffect()              {}
func (EffectListWithOptions) isEffect()   {}
func (EffectModal) isEffect()             {}

// EffectWithOptions carries a StandardEffect plus its resolution-time
// qualifiers. Grounded on original_source's ability_data/src/effect.rs
// EffectWithOptions struct including its to_effect() normalization helper,
// reproduced below as NormalizeEffect.
type EffectWithOptions struct {
	Effect    StandardEffect
	Optional  bool
	Cost      Cost       // resolution-time cost ("you may pay X to ..."); nil if none
	Condition *Condition // nil if unconditional
}

// NormalizeEffect collapses an EffectWithOptions with no optional flag,
// cost, or condition down to a bare EffectSingle, matching
// original_source's `EffectWithOptions::to_effect`.
func NormalizeEffect(opts EffectWithOptions) Effect {
	if !opts.Optional && opts.Cost == nil && opts.Condition == nil {
		return EffectSingle{Effect: opts.Effect}
	}
	return EffectWithOptionsValue{Options: opts}
}

// ModalChoice is one alternative in a modal effect; the controller picks
// exactly one index to apply.
type ModalChoice struct {
	Label  string
	Effect StandardEffect
}
