// Package action defines the external action vocabulary: the tagged unions
// a request shell submits to mutate a battle (spec.md section 6's
// GameAction/BattleAction). It mirrors the ability package's closed
// sum-type idiom (one struct per variant, a private marker method) rather
// than the teacher's single flat struct, for the same reason: a
// PlayCardFromHand action has no business carrying a prompt-choice index,
// and the type system should say so.
package action

import "github.com/dreamtides/dtengine/ids"

// BattleAction is every mutation a player (or the AI, substituting for one)
// may request against a BattleState. Grounded on
// original_source/rules_engine/src/action_data/src/battle_action_data.rs's
// BattleAction enum, reproduced variant-for-variant.
type BattleAction interface {
	isBattleAction()
}

type (
	// PlayCardFromHand plays the named card, paying its cost.
	PlayCardFromHand struct {
		Card ids.HandCardId
	}

	// PassPriority declines to act in response to a pending stack item (or
	// to an empty stack at the end of a phase), causing the stack to
	// resolve or the phase to advance.
	PassPriority struct{}

	// EndTurn ends the active player's turn.
	EndTurn struct{}

	// StartNextTurn begins the next turn after the opponent has ended
	// theirs.
	StartNextTurn struct{}

	// SelectCharacterTarget selects a battlefield character as a target
	// for a pending prompt.
	SelectCharacterTarget struct {
		Character ids.BattlefieldCharacterId
	}

	// SelectStackCardTarget selects a card on the stack as a target for a
	// pending prompt.
	SelectStackCardTarget struct {
		Card ids.StackCardId
	}

	// SelectPromptChoice picks the choice at Index from the active modal
	// prompt.
	SelectPromptChoice struct {
		Index int
	}

	// SelectEnergyAdditionalCost commits Amount as the additional energy
	// cost for the card currently being played.
	SelectEnergyAdditionalCost struct {
		Amount ids.Energy
	}

	// SetSelectedEnergyAdditionalCost updates the provisional amount shown
	// by an energy-cost selector before it is committed.
	SetSelectedEnergyAdditionalCost struct {
		Amount ids.Energy
	}

	// SelectCardOrder sets the position of Card within Target (deck or
	// void) during an ordering prompt.
	SelectCardOrder struct {
		Target   CardOrderSelectionTarget
		Card     ids.CardId
		Position int
	}

	// SubmitMulligan confirms the player's mulligan decision.
	SubmitMulligan struct{}

	// BrowseCards opens a read-only browser over Which zone.
	BrowseCards struct {
		Which CardBrowserType
	}

	// CloseCardBrowser closes an open card browser.
	CloseCardBrowser struct{}

	// ToggleOrderSelectorVisibility shows or hides an active card-order
	// selector without changing its contents.
	ToggleOrderSelectorVisibility struct{}

	// Debug wraps a debug-only action, never legal outside test/dev
	// configurations.
	Debug struct {
		Action DebugBattleAction
	}
)

func (PlayCardFromHand) isBattleAction()               {}
func (PassPriority) isBattleAction()                   {}
func (EndTurn) isBattleAction()                        {}
func (StartNextTurn) isBattleAction()                  {}
func (SelectCharacterTarget) isBattleAction()           {}
func (SelectStackCardTarget) isBattleAction()           {}
func (SelectPromptChoice) isBattleAction()              {}
func (SelectEnergyAdditionalCost) isBattleAction()      {}
func (SetSelectedEnergyAdditionalCost) isBattleAction() {}
func (SelectCardOrder) isBattleAction()                 {}
func (SubmitMulligan) isBattleAction()                  {}
func (BrowseCards) isBattleAction()                     {}
func (CloseCardBrowser) isBattleAction()                {}
func (ToggleOrderSelectorVisibility) isBattleAction()   {}
func (Debug) isBattleAction()                           {}

// CardOrderSelectionTarget names which zone an ordering prompt is arranging.
type CardOrderSelectionTarget int

const (
	OrderTargetDeck CardOrderSelectionTarget = iota
	OrderTargetVoid
)

func (t CardOrderSelectionTarget) String() string {
	if t == OrderTargetVoid {
		return "void"
	}
	return "deck"
}

// CardBrowserType names which zone a read-only browser displays, projected
// to the viewer (spec.md section 3's DisplayPlayer split applied to zone
// browsing).
type CardBrowserType int

const (
	BrowserUserDeck CardBrowserType = iota
	BrowserEnemyDeck
	BrowserUserVoid
	BrowserEnemyVoid
	BrowserUserStatus
	BrowserEnemyStatus
)

func (b CardBrowserType) String() string {
	switch b {
	case BrowserUserDeck:
		return "user-deck"
	case BrowserEnemyDeck:
		return "enemy-deck"
	case BrowserUserVoid:
		return "user-void"
	case BrowserEnemyVoid:
		return "enemy-void"
	case BrowserUserStatus:
		return "user-status"
	case BrowserEnemyStatus:
		return "enemy-status"
	default:
		return "unknown-browser"
	}
}

// DebugBattleAction is a debug-only mutation, available only under a
// development configuration (never offered by the legality layer in a real
// match). Grounded on
// original_source/rules_engine/src/battle_state/src/actions/debug_battle_action.rs's
// DebugBattleAction enum, reproduced variant-for-variant.
type DebugBattleAction interface {
	isDebugBattleAction()
}

type (
	// DebugDrawCard draws a card for Player, bypassing legality checks.
	DebugDrawCard struct {
		Player ids.PlayerName
	}

	// DebugSetEnergy forces Player's current energy to Energy.
	DebugSetEnergy struct {
		Player ids.PlayerName
		Energy ids.Energy
	}

	// DebugSetPoints forces Player's point total to Points.
	DebugSetPoints struct {
		Player ids.PlayerName
		Points ids.Points
	}

	// DebugSetProducedEnergy forces Player's per-turn produced energy to
	// Energy.
	DebugSetProducedEnergy struct {
		Player ids.PlayerName
		Energy ids.Energy
	}

	// DebugSetSparkBonus forces Player's spark_bonus to Spark.
	DebugSetSparkBonus struct {
		Player ids.PlayerName
		Spark  ids.Spark
	}

	// DebugAddCardToHand adds Card to Player's hand, bypassing the deck.
	DebugAddCardToHand struct {
		Player ids.PlayerName
		Card   ids.BaseCardId
	}

	// DebugAddCardToBattlefield adds Card to Player's battlefield.
	DebugAddCardToBattlefield struct {
		Player ids.PlayerName
		Card   ids.BaseCardId
	}

	// DebugAddCardToVoid adds Card to Player's void.
	DebugAddCardToVoid struct {
		Player ids.PlayerName
		Card   ids.BaseCardId
	}

	// DebugMoveHandToDeck moves every card in Player's hand back into
	// their deck.
	DebugMoveHandToDeck struct {
		Player ids.PlayerName
	}

	// DebugSetCardsRemainingInDeck truncates Player's deck to Cards cards,
	// moving the rest to their void.
	DebugSetCardsRemainingInDeck struct {
		Player ids.PlayerName
		Cards  int
	}

	// DebugOpponentPlayCard causes the non-acting player to play Card,
	// resolving any prompt choices automatically.
	DebugOpponentPlayCard struct {
		Card ids.BaseCardId
	}

	// DebugOpponentContinue causes the non-acting player to take their
	// single legal "continue" action (e.g. PassPriority).
	DebugOpponentContinue struct{}

	// DebugSetNextDreamwellCard forces the dreamwell to draw the named
	// card on its next activation.
	DebugSetNextDreamwellCard struct {
		Card ids.BaseCardId
	}
)

func (DebugDrawCard) isDebugBattleAction()                {}
func (DebugSetEnergy) isDebugBattleAction()                {}
func (DebugSetPoints) isDebugBattleAction()                {}
func (DebugSetProducedEnergy) isDebugBattleAction()        {}
func (DebugSetSparkBonus) isDebugBattleAction()            {}
func (DebugAddCardToHand) isDebugBattleAction()            {}
func (DebugAddCardToBattlefield) isDebugBattleAction()     {}
func (DebugAddCardToVoid) isDebugBattleAction()            {}
func (DebugMoveHandToDeck) isDebugBattleAction()           {}
func (DebugSetCardsRemainingInDeck) isDebugBattleAction()  {}
func (DebugOpponentPlayCard) isDebugBattleAction()         {}
func (DebugOpponentContinue) isDebugBattleAction()         {}
func (DebugSetNextDreamwellCard) isDebugBattleAction()     {}

// GameAction is the outermost request-shell union: a BattleAction plus
// actions that only affect client-side display state and never touch
// BattleState (spec.md section 6: "GameAction is a tagged union covering
// BattleAction plus display-only actions").
type GameAction interface {
	isGameAction()
}

type (
	// BattleActionGame wraps a BattleAction as a GameAction, the
	// counterpart of original_source's `impl From<BattleAction> for
	// GameAction`.
	BattleActionGame struct {
		Action BattleAction
	}

	// OpenPanel opens a named display-only panel (e.g. a card's detail
	// view) with no battle-state effect.
	OpenPanel struct {
		Panel string
	}

	// ClosePanel closes a named display-only panel.
	ClosePanel struct {
		Panel string
	}

	// SetDisplayProperties updates client-local display preferences
	// (e.g. animation speed) that the engine core never reads.
	SetDisplayProperties struct {
		Properties map[string]string
	}
)

func (BattleActionGame) isGameAction()    {}
func (OpenPanel) isGameAction()           {}
func (ClosePanel) isGameAction()          {}
func (SetDisplayProperties) isGameAction() {}

// Battle extracts the wrapped BattleAction, or (nil, false) if action is a
// display-only GameAction.
func Battle(a GameAction) (BattleAction, bool) {
	wrapped, ok := a.(BattleActionGame)
	if !ok {
		return nil, false
	}
	return wrapped.Action, true
}
