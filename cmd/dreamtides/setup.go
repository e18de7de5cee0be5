package main

import (
	"github.com/dreamtides/dtengine/action"
	"github.com/dreamtides/dtengine/battle"
	"github.com/dreamtides/dtengine/catalog"
	"github.com/dreamtides/dtengine/ids"
)

// newDemoBattle deals every sample card to both players' hands and seeds
// their starting energy, giving simulate/search-bench a non-trivial battle
// to run against without a deck-building pipeline. Debug setup always
// happens before Tracing is assigned: once Tracing is non-nil, Execute
// legality-checks every action including Debug ones, and LegalActions never
// offers a Debug action.
func newDemoBattle(cat *catalog.Catalog, seed int64) (*battle.State, error) {
	s := battle.NewState(cat, seed)

	for _, player := range []ids.PlayerName{ids.PlayerOne, ids.PlayerTwo} {
		for _, card := range sampleCards() {
			if err := s.Execute(player, action.Debug{Action: action.DebugAddCardToHand{
				Player: player,
				Card:   ids.BaseCardId(card.Identity),
			}}); err != nil {
				return nil, err
			}
		}
		if err := s.Execute(player, action.Debug{Action: action.DebugSetEnergy{
			Player: player,
			Energy: 5,
		}}); err != nil {
			return nil, err
		}
	}

	s.Tracing = &battle.Tracing{BattleId: battle.NewBattleId()}
	return s, nil
}
