package action_test

import (
	"testing"

	"github.com/dreamtides/dtengine/action"
	"github.com/dreamtides/dtengine/ids"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBattleExtractsWrappedAction(t *testing.T) {
	wrapped := action.BattleActionGame{Action: action.EndTurn{}}

	extracted, ok := action.Battle(wrapped)
	require.True(t, ok)
	assert.Equal(t, action.EndTurn{}, extracted)
}

func TestBattleRejectsDisplayOnlyAction(t *testing.T) {
	_, ok := action.Battle(action.OpenPanel{Panel: "deck-list"})
	assert.False(t, ok)
}

func TestSelectCardOrderCarriesTargetCardAndPosition(t *testing.T) {
	var a action.BattleAction = action.SelectCardOrder{
		Target:   action.OrderTargetVoid,
		Card:     ids.CardId(7),
		Position: 2,
	}

	order, ok := a.(action.SelectCardOrder)
	require.True(t, ok)
	assert.Equal(t, action.OrderTargetVoid, order.Target)
	assert.Equal(t, "void", order.Target.String())
	assert.Equal(t, ids.CardId(7), order.Card)
	assert.Equal(t, 2, order.Position)
}

func TestCardBrowserTypeString(t *testing.T) {
	assert.Equal(t, "enemy-void", action.BrowserEnemyVoid.String())
	assert.Equal(t, "user-status", action.BrowserUserStatus.String())
}

func TestDebugActionIsDistinctFromBattleAction(t *testing.T) {
	var a action.BattleAction = action.Debug{Action: action.DebugSetEnergy{
		Player: ids.PlayerOne,
		Energy: ids.Energy(5),
	}}

	dbg, ok := a.(action.Debug)
	require.True(t, ok)
	setEnergy, ok := dbg.Action.(action.DebugSetEnergy)
	require.True(t, ok)
	assert.Equal(t, ids.Energy(5), setEnergy.Energy)
}
