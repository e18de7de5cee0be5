package saveformat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dreamtides/dtengine/action"
	"github.com/dreamtides/dtengine/battle"
	"github.com/dreamtides/dtengine/catalog"
	"github.com/dreamtides/dtengine/dterr"
	"github.com/dreamtides/dtengine/ids"
	"github.com/dreamtides/dtengine/saveformat"
)

func scoutCards() []catalog.RawCard {
	return []catalog.RawCard{
		{Identity: "scout", Name: "Scout", Cost: 0, Spark: 1, IsCharacter: true},
	}
}

func buildQuiescentBattle(t *testing.T) *battle.State {
	t.Helper()
	cat, err := catalog.Build(scoutCards())
	require.NoError(t, err)

	s := battle.NewState(cat, 11)
	require.NoError(t, s.Execute(ids.PlayerOne, action.Debug{Action: action.DebugAddCardToBattlefield{
		Player: ids.PlayerOne, Card: "scout",
	}}))
	require.NoError(t, s.Execute(ids.PlayerOne, action.Debug{Action: action.DebugSetEnergy{
		Player: ids.PlayerOne, Energy: 3,
	}}))
	return s
}

func TestSaveLoadRoundTripsBattleState(t *testing.T) {
	s := buildQuiescentBattle(t)
	snap, err := s.Snapshot()
	require.NoError(t, err)

	doc := &saveformat.Document{
		Quest:  saveformat.QuestState{Deck: []ids.CardIdentity{"scout"}, Currency: 5},
		Battle: snap,
	}

	data, err := saveformat.Save(doc)
	require.NoError(t, err)

	loaded, restored, err := saveformat.Load(data, scoutCards(), 99)
	require.NoError(t, err)
	require.NotNil(t, restored)

	assert.Equal(t, saveformat.CurrentVersion, loaded.Version)
	assert.Equal(t, []ids.CardIdentity{"scout"}, loaded.Quest.Deck)
	assert.Equal(t, 5, loaded.Quest.Currency)
	assert.Equal(t, ids.PlayerName(ids.PlayerOne), restored.ActivePlayer)
	assert.Equal(t, ids.Energy(3), restored.Players[ids.PlayerOne].CurrentEnergy)
	assert.Len(t, restored.CardsInZone(ids.PlayerOne, ids.ZoneBattlefield), 1)
}

func TestSaveLoadIsByteStable(t *testing.T) {
	s := buildQuiescentBattle(t)
	snap, err := s.Snapshot()
	require.NoError(t, err)

	doc := &saveformat.Document{Quest: saveformat.QuestState{Deck: []ids.CardIdentity{"scout"}}, Battle: snap}

	first, err := saveformat.Save(doc)
	require.NoError(t, err)
	second, err := saveformat.Save(doc)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestLoadRejectsUnknownVersion(t *testing.T) {
	_, _, err := saveformat.Load([]byte(`{"version": 99, "quest": {"deck": []}}`), scoutCards(), 1)
	require.Error(t, err)

	dtErr, ok := err.(*dterr.Error)
	require.True(t, ok)
	assert.Equal(t, dterr.SaveVersionUnsupported, dtErr.Code)
}

func TestSnapshotRejectsNonQuiescentBattle(t *testing.T) {
	cat, err := catalog.Build([]catalog.RawCard{
		{Identity: "minstrel", Name: "Minstrel", Cost: 0, Spark: 1, IsCharacter: true},
		{Identity: "immolate", Name: "Immolate", Cost: 2, IsFast: true, OracleText: "dissolve an enemy character."},
	})
	require.NoError(t, err)

	s := battle.NewState(cat, 5)
	require.NoError(t, s.Execute(ids.PlayerTwo, action.Debug{Action: action.DebugAddCardToBattlefield{
		Player: ids.PlayerTwo, Card: "minstrel",
	}}))
	require.NoError(t, s.Execute(ids.PlayerOne, action.Debug{Action: action.DebugAddCardToHand{
		Player: ids.PlayerOne, Card: "immolate",
	}}))
	require.NoError(t, s.Execute(ids.PlayerOne, action.Debug{Action: action.DebugSetEnergy{
		Player: ids.PlayerOne, Energy: 2,
	}}))

	hand := s.CardsInZone(ids.PlayerOne, ids.ZoneHand)
	require.Len(t, hand, 1)
	require.NoError(t, s.Execute(ids.PlayerOne, action.PlayCardFromHand{Card: hand[0].InstanceId}))

	_, err = s.Snapshot()
	require.Error(t, err)
	dtErr, ok := err.(*dterr.Error)
	require.True(t, ok)
	assert.Equal(t, dterr.SaveNotQuiescent, dtErr.Code)
}

func TestLoadWithoutBattleReturnsNilState(t *testing.T) {
	doc := &saveformat.Document{Quest: saveformat.QuestState{Currency: 1}}
	data, err := saveformat.Save(doc)
	require.NoError(t, err)

	loaded, restored, err := saveformat.Load(data, scoutCards(), 1)
	require.NoError(t, err)
	assert.Nil(t, restored)
	assert.Equal(t, 1, loaded.Quest.Currency)
}
