package battle_test

import (
	"testing"

	"github.com/dreamtides/dtengine/action"
	"github.com/dreamtides/dtengine/battle"
	"github.com/dreamtides/dtengine/catalog"
	"github.com/dreamtides/dtengine/dterr"
	"github.com/dreamtides/dtengine/ids"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustBuildCatalog(t *testing.T, cards ...catalog.RawCard) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Build(cards)
	require.NoError(t, err)
	return cat
}

func mustAddToHand(t *testing.T, s *battle.State, player ids.PlayerName, identity ids.CardIdentity) ids.CardId {
	t.Helper()
	require.NoError(t, s.Execute(player, action.Debug{Action: action.DebugAddCardToHand{Player: player, Card: ids.BaseCardId(identity)}}))
	hand := s.CardsInZone(player, ids.ZoneHand)
	return hand[len(hand)-1].InstanceId
}

func mustAddToBattlefield(t *testing.T, s *battle.State, player ids.PlayerName, identity ids.CardIdentity) ids.CardId {
	t.Helper()
	require.NoError(t, s.Execute(player, action.Debug{Action: action.DebugAddCardToBattlefield{Player: player, Card: ids.BaseCardId(identity)}}))
	battlefield := s.CardsInZone(player, ids.ZoneBattlefield)
	return battlefield[len(battlefield)-1].InstanceId
}

func mustSetEnergy(t *testing.T, s *battle.State, player ids.PlayerName, amount ids.Energy) {
	t.Helper()
	require.NoError(t, s.Execute(player, action.Debug{Action: action.DebugSetEnergy{Player: player, Energy: amount}}))
}

// TestImmolateDuringEnemyEndStep exercises scenario 1: a fast dissolve
// event, played by the non-active player during the active player's
// ending phase, resolves once they pass priority.
func TestImmolateDuringEnemyEndStep(t *testing.T) {
	cat := mustBuildCatalog(t,
		catalog.RawCard{Identity: "minstrel", Name: "Minstrel", Cost: ids.Energy(1), Spark: ids.Spark(2), IsCharacter: true},
		catalog.RawCard{Identity: "immolate", Name: "Immolate", Cost: ids.Energy(2), IsFast: true, OracleText: "dissolve an enemy character."},
	)
	s := battle.NewState(cat, 1)

	minstrel := mustAddToBattlefield(t, s, ids.PlayerTwo, "minstrel")
	immolate := mustAddToHand(t, s, ids.PlayerOne, "immolate")
	mustSetEnergy(t, s, ids.PlayerOne, ids.Energy(2))

	s.ActivePlayer = ids.PlayerTwo
	s.ToEndingPhase()
	s.Tracing = &battle.Tracing{BattleId: "t1"}

	legal := s.LegalActions(ids.PlayerOne)
	assert.Contains(t, legal, action.BattleAction(action.PlayCardFromHand{Card: immolate}))

	require.NoError(t, s.Execute(ids.PlayerOne, action.PlayCardFromHand{Card: immolate}))

	prompt := s.FrontPrompt()
	require.NotNil(t, prompt)
	assert.Equal(t, battle.PromptChooseCharacter, prompt.Kind)
	assert.Contains(t, prompt.CharacterChoices, minstrel)

	require.NoError(t, s.Execute(ids.PlayerOne, action.SelectCharacterTarget{Character: minstrel}))
	require.NoError(t, s.Execute(ids.PlayerTwo, action.PassPriority{}))

	assert.Equal(t, ids.ZoneVoid, s.Card(minstrel).Zone)
	assert.Equal(t, ids.Energy(0), s.Players[ids.PlayerOne].CurrentEnergy)
	assert.Empty(t, s.Stack)

	found := false
	for _, anim := range s.PollAnimations() {
		if d, ok := anim.(battle.AnimDissolve); ok && d.Target == minstrel {
			found = true
		}
	}
	assert.True(t, found, "expected an AnimDissolve for the dissolved character")
}

func buildNegateScenario(t *testing.T) (s *battle.State, immolate, ripple, minstrel ids.CardId) {
	t.Helper()
	cat := mustBuildCatalog(t,
		catalog.RawCard{Identity: "minstrel", Name: "Minstrel", Cost: ids.Energy(1), Spark: ids.Spark(2), IsCharacter: true},
		catalog.RawCard{Identity: "immolate", Name: "Immolate", Cost: ids.Energy(2), IsFast: true, OracleText: "dissolve an enemy character."},
		catalog.RawCard{
			Identity: "rippleofdefiance", Name: "Ripple of Defiance", Cost: ids.Energy(1), IsFast: true,
			OracleText: "negate an enemy card on the stack unless its controller pays $2.",
		},
	)
	s = battle.NewState(cat, 1)
	s.ActivePlayer = ids.PlayerTwo
	s.Phase = battle.PhaseMain

	minstrel = mustAddToBattlefield(t, s, ids.PlayerOne, "minstrel")
	immolate = mustAddToHand(t, s, ids.PlayerTwo, "immolate")
	ripple = mustAddToHand(t, s, ids.PlayerOne, "rippleofdefiance")
	mustSetEnergy(t, s, ids.PlayerTwo, ids.Energy(4))
	mustSetEnergy(t, s, ids.PlayerOne, ids.Energy(1))

	require.NoError(t, s.Execute(ids.PlayerTwo, action.PlayCardFromHand{Card: immolate}))
	prompt := s.FrontPrompt()
	require.NotNil(t, prompt)
	require.NoError(t, s.Execute(ids.PlayerTwo, action.SelectCharacterTarget{Character: minstrel}))

	require.NoError(t, s.Execute(ids.PlayerOne, action.PlayCardFromHand{Card: ripple}))
	prompt = s.FrontPrompt()
	require.NotNil(t, prompt)
	assert.Equal(t, battle.PromptChooseStackCard, prompt.Kind)
	assert.Contains(t, prompt.StackChoices, immolate)
	require.NoError(t, s.Execute(ids.PlayerOne, action.SelectStackCardTarget{Card: immolate}))

	require.NoError(t, s.Execute(ids.PlayerTwo, action.PassPriority{}))
	return s, immolate, ripple, minstrel
}

// TestNegateUnlessPaysCostPay exercises scenario 2: the targeted card's
// controller pays the additional cost, so the original effect resolves
// normally and the negation never happens.
func TestNegateUnlessPaysCostPay(t *testing.T) {
	s, _, _, minstrel := buildNegateScenario(t)

	prompt := s.FrontPrompt()
	require.NotNil(t, prompt)
	assert.Equal(t, battle.PromptGenericChoice, prompt.Kind)
	require.Len(t, prompt.Choices, 2)

	require.NoError(t, s.Execute(ids.PlayerTwo, action.SelectPromptChoice{Index: 0}))
	require.NoError(t, s.Execute(ids.PlayerOne, action.PassPriority{}))

	assert.Empty(t, s.Stack)
	assert.Equal(t, ids.Energy(0), s.Players[ids.PlayerTwo].CurrentEnergy)
	assert.Equal(t, ids.ZoneVoid, s.Card(minstrel).Zone)
}

// TestNegateUnlessPaysCostDecline exercises scenario 3: the targeted
// card's controller declines, so it is negated and its effect never
// applies.
func TestNegateUnlessPaysCostDecline(t *testing.T) {
	s, _, _, minstrel := buildNegateScenario(t)

	prompt := s.FrontPrompt()
	require.NotNil(t, prompt)
	require.Len(t, prompt.Choices, 2)

	require.NoError(t, s.Execute(ids.PlayerTwo, action.SelectPromptChoice{Index: 1}))

	assert.Empty(t, s.Stack)
	assert.Equal(t, ids.Energy(2), s.Players[ids.PlayerTwo].CurrentEnergy)
	assert.Equal(t, ids.ZoneBattlefield, s.Card(minstrel).Zone)
}

// TestPreventDissolveAnchorExcludesTarget exercises scenario 4: a
// dissolve effect with no legal target, because its only potential
// target is shielded by an active prevent-dissolve anchor, is excluded
// from the legal action set and rejected by Execute.
func TestPreventDissolveAnchorExcludesTarget(t *testing.T) {
	cat := mustBuildCatalog(t,
		catalog.RawCard{Identity: "minstrel", Name: "Minstrel", Cost: ids.Energy(1), Spark: ids.Spark(2), IsCharacter: true},
		catalog.RawCard{Identity: "immolate", Name: "Immolate", Cost: ids.Energy(2), IsFast: true, OracleText: "dissolve an enemy character."},
	)
	s := battle.NewState(cat, 1)
	s.ActivePlayer = ids.PlayerOne
	s.Phase = battle.PhaseMain

	minstrel := mustAddToBattlefield(t, s, ids.PlayerTwo, "minstrel")
	s.Card(minstrel).PreventDissolveUntilEndOfTurn = true
	immolate := mustAddToHand(t, s, ids.PlayerOne, "immolate")
	mustSetEnergy(t, s, ids.PlayerOne, ids.Energy(2))
	s.Tracing = &battle.Tracing{BattleId: "t4"}

	assert.False(t, s.HasLegalTargets(ids.PlayerOne, s.Card(immolate)))

	legal := s.LegalActions(ids.PlayerOne)
	assert.NotContains(t, legal, action.BattleAction(action.PlayCardFromHand{Card: immolate}))

	err := s.Execute(ids.PlayerOne, action.PlayCardFromHand{Card: immolate})
	require.Error(t, err)
	dtErr, ok := err.(*dterr.Error)
	require.True(t, ok)
	assert.Equal(t, dterr.ActionIllegal, dtErr.Code)
}

// TestCharacterLimitAbandonsLowestSpark exercises scenario 5: playing a
// character beyond the battlefield limit abandons the controller's
// lowest-spark character (ties broken by cost, then id) and permanently
// grants its spark to the controller's spark_bonus.
func TestCharacterLimitAbandonsLowestSpark(t *testing.T) {
	cat := mustBuildCatalog(t,
		catalog.RawCard{Identity: "scout", Name: "Scout", Cost: ids.Energy(0), Spark: ids.Spark(2), IsCharacter: true},
		catalog.RawCard{Identity: "weakling", Name: "Weakling", Cost: ids.Energy(0), Spark: ids.Spark(1), IsCharacter: true},
		catalog.RawCard{Identity: "minstrel", Name: "Minstrel", Cost: ids.Energy(1), Spark: ids.Spark(2), IsCharacter: true},
	)
	s := battle.NewState(cat, 1)
	s.ActivePlayer = ids.PlayerOne
	s.Phase = battle.PhaseMain

	weakling := mustAddToBattlefield(t, s, ids.PlayerOne, "weakling")
	for i := 0; i < battle.CharacterLimit-1; i++ {
		mustAddToBattlefield(t, s, ids.PlayerOne, "scout")
	}
	require.Len(t, s.CardsInZone(ids.PlayerOne, ids.ZoneBattlefield), battle.CharacterLimit)

	minstrel := mustAddToHand(t, s, ids.PlayerOne, "minstrel")
	mustSetEnergy(t, s, ids.PlayerOne, ids.Energy(1))

	require.NoError(t, s.Execute(ids.PlayerOne, action.PlayCardFromHand{Card: minstrel}))
	require.NoError(t, s.Execute(ids.PlayerTwo, action.PassPriority{}))

	assert.Len(t, s.CardsInZone(ids.PlayerOne, ids.ZoneBattlefield), battle.CharacterLimit)
	assert.Equal(t, ids.ZoneVoid, s.Card(weakling).Zone)
	assert.Equal(t, ids.Spark(1), s.Players[ids.PlayerOne].SparkBonus)
}

// TestCharacterLimitDoesNotTriggerAtExactlyEight exercises the boundary
// property that the character limit fires only when the battlefield would
// exceed CharacterLimit: resolving the 8th character through normal play
// must leave all 8 on the battlefield, with nothing abandoned.
func TestCharacterLimitDoesNotTriggerAtExactlyEight(t *testing.T) {
	cat := mustBuildCatalog(t,
		catalog.RawCard{Identity: "scout", Name: "Scout", Cost: ids.Energy(0), Spark: ids.Spark(2), IsCharacter: true},
	)
	s := battle.NewState(cat, 1)
	s.ActivePlayer = ids.PlayerOne
	s.Phase = battle.PhaseMain

	for i := 0; i < battle.CharacterLimit-1; i++ {
		mustAddToBattlefield(t, s, ids.PlayerOne, "scout")
	}
	require.Len(t, s.CardsInZone(ids.PlayerOne, ids.ZoneBattlefield), battle.CharacterLimit-1)

	eighth := mustAddToHand(t, s, ids.PlayerOne, "scout")
	mustSetEnergy(t, s, ids.PlayerOne, ids.Energy(0))

	require.NoError(t, s.Execute(ids.PlayerOne, action.PlayCardFromHand{Card: eighth}))
	require.NoError(t, s.Execute(ids.PlayerTwo, action.PassPriority{}))

	assert.Len(t, s.CardsInZone(ids.PlayerOne, ids.ZoneBattlefield), battle.CharacterLimit)
	assert.Equal(t, ids.ZoneBattlefield, s.Card(eighth).Zone)
	assert.Equal(t, ids.Spark(0), s.Players[ids.PlayerOne].SparkBonus)
}

// TestGainPointsToVictory exercises scenario 6: reaching the victory
// point threshold ends the battle and records the winner.
func TestGainPointsToVictory(t *testing.T) {
	cat := mustBuildCatalog(t,
		catalog.RawCard{Identity: "pointblast", Name: "Point Blast", Cost: ids.Energy(0), OracleText: "gain 25 points."},
	)
	s := battle.NewState(cat, 1)
	s.ActivePlayer = ids.PlayerOne
	s.Phase = battle.PhaseMain

	blast := mustAddToHand(t, s, ids.PlayerOne, "pointblast")

	require.NoError(t, s.Execute(ids.PlayerOne, action.PlayCardFromHand{Card: blast}))
	require.NoError(t, s.Execute(ids.PlayerTwo, action.PassPriority{}))

	assert.True(t, s.Status.Over)
	require.NotNil(t, s.Status.Winner)
	assert.Equal(t, ids.PlayerOne, *s.Status.Winner)

	found := false
	for _, anim := range s.PollAnimations() {
		if v, ok := anim.(battle.AnimVictory); ok && v.Winner == ids.PlayerOne {
			found = true
		}
	}
	assert.True(t, found, "expected an AnimVictory for the winner")
}

// TestEnergyNeverUnderflows verifies invariant 3: SpendEnergy never
// leaves a player with negative energy, since it refuses to apply an
// over-large spend.
func TestEnergyNeverUnderflows(t *testing.T) {
	cat := mustBuildCatalog(t)
	s := battle.NewState(cat, 1)
	mustSetEnergy(t, s, ids.PlayerOne, ids.Energy(1))

	assert.Panics(t, func() {
		s.SpendEnergy(ids.PlayerOne, ids.Energy(2))
	})
	assert.Equal(t, ids.Energy(1), s.Players[ids.PlayerOne].CurrentEnergy)
}

// TestHandSizeLimitConvertsDrawToEnergy verifies spec.md's boundary test:
// drawing into a full hand grants energy instead of a card.
func TestHandSizeLimitConvertsDrawToEnergy(t *testing.T) {
	cat := mustBuildCatalog(t,
		catalog.RawCard{Identity: "filler", Name: "Filler", Cost: ids.Energy(0), IsCharacter: true},
	)
	s := battle.NewState(cat, 1)
	for i := 0; i < battle.HandSizeLimit; i++ {
		mustAddToHand(t, s, ids.PlayerOne, "filler")
	}
	for i := 0; i < 3; i++ {
		card := &battle.CardInstance{
			InstanceId: s.NewCardId(),
			ObjectId:   s.NewObjectId(),
			Identity:   "filler",
			Owner:      ids.PlayerOne,
			Controller: ids.PlayerOne,
			Zone:       ids.ZoneDeck,
		}
		s.Cards[card.InstanceId] = card
		s.MoveToZone(card, ids.ZoneDeck)
	}
	mustSetEnergy(t, s, ids.PlayerOne, ids.Energy(0))

	_, drew := s.DrawCard(battle.SourceGame{Player: ids.PlayerOne}, ids.PlayerOne)

	assert.False(t, drew)
	assert.Equal(t, ids.Energy(1), s.Players[ids.PlayerOne].CurrentEnergy)
	assert.Len(t, s.CardsInZone(ids.PlayerOne, ids.ZoneHand), battle.HandSizeLimit)
}

// TestLegalActionsNeverOffersAnUnaffordableCard verifies the legality
// layer's energy gate: a card costing more than the player's current
// energy never appears in LegalActions, satisfying invariant 8's
// no-panic guarantee for that action by construction.
func TestLegalActionsNeverOffersAnUnaffordableCard(t *testing.T) {
	cat := mustBuildCatalog(t,
		catalog.RawCard{Identity: "expensive", Name: "Expensive", Cost: ids.Energy(5), IsCharacter: true},
	)
	s := battle.NewState(cat, 1)
	s.ActivePlayer = ids.PlayerOne
	s.Phase = battle.PhaseMain
	card := mustAddToHand(t, s, ids.PlayerOne, "expensive")
	mustSetEnergy(t, s, ids.PlayerOne, ids.Energy(1))

	legal := s.LegalActions(ids.PlayerOne)
	assert.NotContains(t, legal, action.BattleAction(action.PlayCardFromHand{Card: card}))
}
