package ability_test

import (
	"testing"

	"github.com/dreamtides/dtengine/ability"
	"github.com/dreamtides/dtengine/ids"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeEffectCollapsesBareEffect(t *testing.T) {
	opts := ability.EffectWithOptions{Effect: ability.EffectDrawCards{Count: 1}}
	got := ability.NormalizeEffect(opts)
	single, ok := got.(ability.EffectSingle)
	assert.True(t, ok)
	assert.Equal(t, ability.EffectDrawCards{Count: 1}, single.Effect)
}

func TestNormalizeEffectKeepsOptionsWhenOptional(t *testing.T) {
	opts := ability.EffectWithOptions{Effect: ability.EffectDrawCards{Count: 1}, Optional: true}
	got := ability.NormalizeEffect(opts)
	_, ok := got.(ability.EffectWithOptionsValue)
	assert.True(t, ok)
}

func TestExpandNamedReclaim(t *testing.T) {
	reclaim := ability.ExpandReclaim()
	assert.True(t, ability.IsReclaim(reclaim))

	expanded := ability.ExpandNamed(reclaim)
	static, ok := expanded.(ability.AbilityStatic)
	assert.True(t, ok)
	_, ok = static.Effect.(ability.EffectReclaimPermission)
	assert.True(t, ok)
}

func TestExpandNamedIdentityOnNonNamed(t *testing.T) {
	a := ability.AbilityEvent{Effect: ability.EffectSingle{Effect: ability.EffectDrawCards{Count: 2}}}
	assert.Equal(t, a, ability.ExpandNamed(a))
}

func TestAbilityListDerivedFlags(t *testing.T) {
	abilities := []ability.AbilityData{
		{AbilityNumber: 0, Ability: ability.AbilityTriggered{
			Trigger: ability.Trigger{Kind: ability.TriggerMaterialized},
			Effect:  ability.EffectSingle{Effect: ability.EffectGainEnergy{Amount: ids.Energy(1)}},
		}},
		{AbilityNumber: 1, Ability: ability.AbilityActivated{
			Costs:  []ability.Cost{ability.CostEnergy{Amount: ids.Energy(2)}},
			Effect: ability.EffectSingle{Effect: ability.EffectDrawCards{Count: 1}},
		}},
	}

	list := ability.NewList(abilities)
	assert.True(t, list.HasBattlefieldActivatedAbilities)
	assert.True(t, list.BattlefieldTriggers[ability.TriggerMaterialized])
	assert.False(t, list.HasPlayFromVoidAbility)
	assert.Len(t, list.TriggeredAbilities, 1)
	assert.Len(t, list.ActivatedAbilities, 1)
}
