package catalog_test

import (
	"testing"

	"github.com/dreamtides/dtengine/ability"
	"github.com/dreamtides/dtengine/cardtext"
	"github.com/dreamtides/dtengine/catalog"
	"github.com/dreamtides/dtengine/ids"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildParsesOracleTextAndIndexesByIdentity(t *testing.T) {
	c, err := catalog.Build([]catalog.RawCard{
		{
			Identity:    "sparkling-scout",
			Name:        "Sparkling Scout",
			Cost:        ids.Energy(1),
			IsCharacter: true,
			OracleText:  "$materialized: draw a card.",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())

	def, ok := c.Lookup("sparkling-scout")
	require.True(t, ok)
	require.Len(t, def.Abilities.TriggeredAbilities, 1)
	assert.Equal(t, ability.TriggerMaterialized, def.Abilities.TriggeredAbilities[0].Ability.(ability.AbilityTriggered).Trigger.Kind)
}

func TestBuildFailsOnBadOracleText(t *testing.T) {
	_, err := catalog.Build([]catalog.RawCard{
		{Identity: "broken", Name: "Broken Card", OracleText: "Blorgify the frobnicator."},
	})
	assert.Error(t, err)
}

func TestMustLookupMissingReturnsCatalogMissing(t *testing.T) {
	c, err := catalog.Build(nil)
	require.NoError(t, err)
	_, err = c.MustLookup("nonexistent")
	assert.Error(t, err)
}

func TestBuildSubstitutesBindings(t *testing.T) {
	c, err := catalog.Build([]catalog.RawCard{
		{
			Identity:   "energy-burst",
			Name:       "Energy Burst",
			OracleText: "Gain ${e}.",
			Bindings:   map[string]cardtext.BindingValue{"e": cardtext.IntBinding(3)},
		},
	})
	require.NoError(t, err)
	def, _ := c.Lookup("energy-burst")
	require.Len(t, def.Abilities.EventAbilities, 1)
}
