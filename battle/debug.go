package battle

import (
	"github.com/dreamtides/dtengine/action"
	"github.com/dreamtides/dtengine/ids"
)

// ExecuteDebugAction applies a debug-only mutation, bypassing normal
// legality and cost checks. Never offered by LegalActions in a real match;
// exercised only by test scenarios and the search layer's test harness.
// Grounded on
// original_source/rules_engine/src/battle_mutations/src/debug/debug_actions.rs,
// reproduced variant-for-variant against action.DebugBattleAction.
func (s *State) ExecuteDebugAction(invoker ids.PlayerName, a action.DebugBattleAction) {
	switch v := a.(type) {
	case action.DebugDrawCard:
		s.DrawCard(SourceGame{Player: v.Player}, v.Player)

	case action.DebugSetEnergy:
		s.SetEnergy(v.Player, v.Energy)

	case action.DebugSetPoints:
		s.Players[v.Player].Points = v.Points
		s.checkVictory(v.Player)

	case action.DebugSetProducedEnergy:
		s.Players[v.Player].ProducedEnergy = v.Energy

	case action.DebugSetSparkBonus:
		s.Players[v.Player].SparkBonus = v.Spark

	case action.DebugAddCardToHand:
		s.addDebugCard(v.Player, v.Card, ids.ZoneHand)

	case action.DebugAddCardToBattlefield:
		s.addDebugCard(v.Player, v.Card, ids.ZoneBattlefield)

	case action.DebugAddCardToVoid:
		s.addDebugCard(v.Player, v.Card, ids.ZoneVoid)

	case action.DebugMoveHandToDeck:
		for _, c := range s.CardsInZone(v.Player, ids.ZoneHand) {
			s.MoveToZone(c, ids.ZoneDeck)
		}

	case action.DebugSetCardsRemainingInDeck:
		deck := s.CardsInZone(v.Player, ids.ZoneDeck)
		for i := v.Cards; i < len(deck); i++ {
			s.MoveToZone(deck[i], ids.ZoneVoid)
		}

	case action.DebugOpponentPlayCard:
		opponent := invoker.Opponent()
		for _, c := range s.CardsInZone(opponent, ids.ZoneHand) {
			if c.Identity == ids.CardIdentity(v.Card) {
				s.PlayCardFromHand(opponent, c.InstanceId)
				break
			}
		}

	case action.DebugOpponentContinue:
		s.PassPriority(invoker.Opponent())

	case action.DebugSetNextDreamwellCard:
		s.setNextDreamwellCard(v.Card)

	default:
		s.PanicWithDiagnostics("unhandled debug action variant", "action", a)
	}
}

func (s *State) addDebugCard(player ids.PlayerName, card ids.BaseCardId, zone ids.Zone) {
	identity := ids.CardIdentity(card)
	instance := &CardInstance{
		InstanceId: s.NewCardId(),
		ObjectId:   s.NewObjectId(),
		Identity:   identity,
		Owner:      player,
		Controller: player,
		Zone:       ids.ZoneVoid,
	}
	s.Cards[instance.InstanceId] = instance
	s.MoveToZone(instance, zone)
	if zone == ids.ZoneBattlefield {
		s.RecomputeStaticEffects()
	}
}

func (s *State) setNextDreamwellCard(card ids.BaseCardId) {
	dw := &s.Dreamwell
	if len(dw.Cards) == 0 {
		return
	}
	identity := ids.CardIdentity(card)
	dw.Cards[dw.NextIndex].Identity = identity
}
