package ids_test

import (
	"testing"

	"github.com/dreamtides/dtengine/ids"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnergySubUnderflow(t *testing.T) {
	_, ok := ids.Energy(2).Sub(5)
	require.False(t, ok, "spending below zero must fail, not wrap")
}

func TestEnergySubExact(t *testing.T) {
	result, ok := ids.Energy(5).Sub(5)
	require.True(t, ok)
	assert.Equal(t, ids.Energy(0), result)
}

func TestEnergyCmp(t *testing.T) {
	assert.Equal(t, -1, ids.Energy(1).Cmp(2))
	assert.Equal(t, 0, ids.Energy(2).Cmp(2))
	assert.Equal(t, 1, ids.Energy(3).Cmp(2))
}

func TestTurnIdMax(t *testing.T) {
	assert.Equal(t, ids.TurnId(50), ids.MaxTurnId)
}

func TestPlayerOpponent(t *testing.T) {
	assert.Equal(t, ids.PlayerTwo, ids.PlayerOne.Opponent())
	assert.Equal(t, ids.PlayerOne, ids.PlayerTwo.Opponent())
}

func TestToDisplay(t *testing.T) {
	assert.Equal(t, ids.DisplayUser, ids.ToDisplay(ids.PlayerOne, ids.PlayerOne))
	assert.Equal(t, ids.DisplayEnemy, ids.ToDisplay(ids.PlayerOne, ids.PlayerTwo))
}
