package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dreamtides/dtengine/action"
	"github.com/dreamtides/dtengine/battle"
	"github.com/dreamtides/dtengine/catalog"
	"github.com/dreamtides/dtengine/ids"
	"github.com/dreamtides/dtengine/search"
)

func buildScoutBattle(t *testing.T) *battle.State {
	t.Helper()
	cat, err := catalog.Build([]catalog.RawCard{
		{Identity: "scout", Name: "Scout", Cost: 0, Spark: 1, IsCharacter: true},
	})
	require.NoError(t, err)

	s := battle.NewState(cat, 42)
	require.NoError(t, s.Execute(ids.PlayerOne, action.Debug{Action: action.DebugAddCardToHand{
		Player: ids.PlayerOne, Card: "scout",
	}}))
	return s
}

func TestBattleNodeLegalActionsReflectsHand(t *testing.T) {
	s := buildScoutBattle(t)
	node := search.NewBattleNode(s, 1)

	status := node.Status()
	require.False(t, status.Over)

	legal := node.LegalActions(status.CurrentTurn)
	assert.NotEmpty(t, legal)
}

func TestBattleNodeMakeCopyIsIndependent(t *testing.T) {
	s := buildScoutBattle(t)
	node := search.NewBattleNode(s, 2)
	copied := node.MakeCopy()

	status := node.Status()
	legal := copied.LegalActions(status.CurrentTurn)
	require.NotEmpty(t, legal)

	require.NoError(t, copied.ExecuteAction(status.CurrentTurn, legal[0]))

	// The original node's underlying state must be untouched by the copy's
	// mutation.
	assert.Equal(t, status, node.Status())
}

func TestBattleNodeMakeRandomizedCopyPreservesLegalMoveCount(t *testing.T) {
	s := buildScoutBattle(t)
	node := search.NewBattleNode(s, 3)
	status := node.Status()

	randomized := node.MakeRandomizedCopy(status.CurrentTurn)
	assert.Len(t, randomized.LegalActions(status.CurrentTurn), len(node.LegalActions(status.CurrentTurn)))
}

func TestBattleNodeRandomActionExecutes(t *testing.T) {
	s := buildScoutBattle(t)
	node := search.NewBattleNode(s, 4)
	status := node.Status()

	a, ok := node.RandomAction(status.CurrentTurn)
	require.True(t, ok)
	assert.NoError(t, node.ExecuteAction(status.CurrentTurn, a))
}

func TestBattleNodeExecuteActionRejectsForeignActionType(t *testing.T) {
	s := buildScoutBattle(t)
	node := search.NewBattleNode(s, 5)
	status := node.Status()

	err := node.ExecuteAction(status.CurrentTurn, "not-a-battle-action")
	assert.Error(t, err)
}
