package cardtext_test

import (
	"testing"

	"github.com/dreamtides/dtengine/ability"
	"github.com/dreamtides/dtengine/cardtext"
	"github.com/dreamtides/dtengine/ids"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDrawCards(t *testing.T) {
	abilities, err := cardtext.ParseCardText("Draw a card.", nil)
	require.NoError(t, err)
	require.Len(t, abilities, 1)
	event, ok := abilities[0].(ability.AbilityEvent)
	require.True(t, ok)
	single, ok := event.Effect.(ability.EffectSingle)
	require.True(t, ok)
	assert.Equal(t, ability.EffectDrawCards{Count: 1}, single.Effect)
}

func TestParseMultipleAbilitiesSeparatedByBr(t *testing.T) {
	abilities, err := cardtext.ParseCardText("Draw a card. $br Gain $2.", nil)
	require.NoError(t, err)
	require.Len(t, abilities, 2)

	first := abilities[0].(ability.AbilityEvent).Effect.(ability.EffectSingle).Effect
	assert.Equal(t, ability.EffectDrawCards{Count: 1}, first)

	second := abilities[1].(ability.AbilityEvent).Effect.(ability.EffectSingle).Effect
	assert.Equal(t, ability.EffectGainEnergy{Amount: ids.Energy(2)}, second)
}

func TestParseStripsFlavorAndReminderText(t *testing.T) {
	abilities, err := cardtext.ParseCardText("Draw a card. {flavor: Drawing cards is fun.}", nil)
	require.NoError(t, err)
	require.Len(t, abilities, 1)
}

func TestParseTriggeredMaterialized(t *testing.T) {
	abilities, err := cardtext.ParseCardText("$materialized: draw a card.", nil)
	require.NoError(t, err)
	require.Len(t, abilities, 1)
	triggered, ok := abilities[0].(ability.AbilityTriggered)
	require.True(t, ok)
	assert.Equal(t, ability.TriggerMaterialized, triggered.Trigger.Kind)
}

func TestParseActivatedWithEnergyCost(t *testing.T) {
	abilities, err := cardtext.ParseCardText("$activated $2: draw a card.", nil)
	require.NoError(t, err)
	activated, ok := abilities[0].(ability.AbilityActivated)
	require.True(t, ok)
	require.Len(t, activated.Costs, 1)
	assert.Equal(t, ability.CostEnergy{Amount: ids.Energy(2)}, activated.Costs[0])
}

func TestParseGainsSparkUntilNextMainForEach(t *testing.T) {
	abilities, err := cardtext.ParseCardText(
		"A character you control gains +1 spark until your next main phase for each {cardtype: warrior} you control.", nil)
	require.NoError(t, err)
	effect := abilities[0].(ability.AbilityEvent).Effect.(ability.EffectSingle).Effect
	spark, ok := effect.(ability.EffectGainsSparkUntilNextMainForEach)
	require.True(t, ok)
	assert.Equal(t, ids.Spark(1), spark.PerUnit)
}

func TestParseOptionalDraw(t *testing.T) {
	abilities, err := cardtext.ParseCardText("You may draw a card.", nil)
	require.NoError(t, err)
	_, ok := abilities[0].(ability.AbilityEvent).Effect.(ability.EffectWithOptionsValue)
	assert.True(t, ok)
}

func TestParseConditionalGainEnergy(t *testing.T) {
	abilities, err := cardtext.ParseCardText("If you control 2 {cardtype: warrior}, gain $1.", nil)
	require.NoError(t, err)
	opts, ok := abilities[0].(ability.AbilityEvent).Effect.(ability.EffectWithOptionsValue)
	require.True(t, ok)
	require.NotNil(t, opts.Options.Condition)
	assert.Equal(t, 2, opts.Options.Condition.Count)
}

func TestParseConditionAnotherExcludesSource(t *testing.T) {
	abilities, err := cardtext.ParseCardText("If you control another 2 {cardtype: warrior}, gain $1.", nil)
	require.NoError(t, err)
	opts, ok := abilities[0].(ability.AbilityEvent).Effect.(ability.EffectWithOptionsValue)
	require.True(t, ok)
	require.NotNil(t, opts.Options.Condition)
	_, ok = opts.Options.Condition.Predicate.(ability.PredicateAnother)
	assert.True(t, ok, "expected PredicateAnother, got %T", opts.Options.Condition.Predicate)
}

func TestParseConditionWithoutAnotherIncludesSource(t *testing.T) {
	abilities, err := cardtext.ParseCardText("If you control 2 {cardtype: warrior}, gain $1.", nil)
	require.NoError(t, err)
	opts, ok := abilities[0].(ability.AbilityEvent).Effect.(ability.EffectWithOptionsValue)
	require.True(t, ok)
	require.NotNil(t, opts.Options.Condition)
	_, ok = opts.Options.Condition.Predicate.(ability.PredicateYour)
	assert.True(t, ok, "expected PredicateYour, got %T", opts.Options.Condition.Predicate)
}

func TestParseStaticDisableActivatedAbilities(t *testing.T) {
	abilities, err := cardtext.ParseCardText("Disable the activated abilities of enemy characters.", nil)
	require.NoError(t, err)
	static, ok := abilities[0].(ability.AbilityStatic)
	require.True(t, ok)
	_, ok = static.Effect.(ability.EffectDisableActivatedAbilitiesWhileInPlay)
	assert.True(t, ok)
}

func TestParseUnrecognizedTextFails(t *testing.T) {
	_, err := cardtext.ParseCardText("Blorgify the frobnicator.", nil)
	require.Error(t, err)
}

func TestBindVariablesSubstitutesEnergyPlaceholder(t *testing.T) {
	abilities, err := cardtext.ParseCardText("Gain ${e}.", map[string]cardtext.BindingValue{
		"e": cardtext.IntBinding(3),
	})
	require.NoError(t, err)
	effect := abilities[0].(ability.AbilityEvent).Effect.(ability.EffectSingle).Effect
	assert.Equal(t, ability.EffectGainEnergy{Amount: ids.Energy(3)}, effect)
}

func TestBindVariablesMissingBindingFails(t *testing.T) {
	_, err := cardtext.ParseCardText("Gain ${e}.", nil)
	require.Error(t, err)
}

// roundTrip asserts that re-parsing Format(a) produces an Ability deeply
// equal to a, the round-trip law spec.md section 4.C requires of the
// parser/formatter pair.
func roundTrip(t *testing.T, text string) {
	t.Helper()
	abilities, err := cardtext.ParseCardText(text, nil)
	require.NoError(t, err)
	require.Len(t, abilities, 1)

	formatted := cardtext.Format(abilities[0])
	reparsed, err := cardtext.ParseCardText(formatted, nil)
	require.NoError(t, err, "formatted text %q failed to reparse", formatted)
	require.Len(t, reparsed, 1)
	assert.Equal(t, abilities[0], reparsed[0], "round trip mismatch via formatted text %q", formatted)
}

func TestRoundTripLaw(t *testing.T) {
	cases := []string{
		"Draw a card.",
		"Draw 3 cards.",
		"Discard a card.",
		"Gain $2.",
		"Gain 1 point.",
		"Dissolve an enemy character.",
		"Negate that.",
		"$materialized: draw a card.",
		"$activated $2: draw a card.",
		"$fastactivated $1, discard a card: gain 1 point.",
		"Disable the activated abilities of enemy characters.",
		"Foresee 2.",
		"You may draw a card.",
		"If you control 2 {cardtype: warrior}, gain $1.",
	}
	for _, text := range cases {
		text := text
		t.Run(text, func(t *testing.T) { roundTrip(t, text) })
	}
}
