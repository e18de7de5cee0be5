package battle

import (
	"fmt"

	"github.com/dreamtides/dtengine/action"
	"github.com/dreamtides/dtengine/dterr"
	"github.com/dreamtides/dtengine/ids"
)

// Execute applies a, dispatching to the mutation that matches its
// variant. When s.Tracing is non-nil, a is first checked against
// LegalActions and rejected with dterr.ActionIllegal rather than applied —
// the "request shell" half of spec.md section 7's error model; invariant
// failures inside the mutation itself still panic via
// PanicWithDiagnostics regardless of tracing. Grounded on
// original_source/rules_engine/src/battle_mutations/src/actions/apply_battle_action.rs's
// execute().
func (s *State) Execute(player ids.PlayerName, a action.BattleAction) error {
	if s.Tracing != nil && !containsAction(s.LegalActions(player), a) {
		return dterr.NewActionIllegal(fmt.Sprintf("%T is not legal for %v", a, player))
	}

	switch v := a.(type) {
	case action.PlayCardFromHand:
		s.PlayCardFromHand(player, v.Card)
	case action.PassPriority:
		s.PassPriority(player)
	case action.EndTurn:
		s.ToEndingPhase()
	case action.StartNextTurn:
		s.StartTurn(player.Opponent())
	case action.SelectCharacterTarget:
		s.SubmitCharacterTarget(v.Character)
	case action.SelectStackCardTarget:
		s.SubmitStackCardTarget(v.Card)
	case action.SelectPromptChoice:
		s.SubmitPromptChoice(v.Index)
	case action.SelectEnergyAdditionalCost:
		s.SpendEnergy(player, v.Amount)
	case action.SetSelectedEnergyAdditionalCost:
		if p := s.FrontPrompt(); p != nil {
			p.EnergyCurrent = v.Amount
		}
	case action.SelectCardOrder:
		s.recordCardOrderPosition(v)
	case action.SubmitMulligan:
		s.Players[player].Mulligan = MulliganKept
	case action.BrowseCards, action.CloseCardBrowser, action.ToggleOrderSelectorVisibility:
		// Display-only; no BattleState effect.
	case action.Debug:
		s.ExecuteDebugAction(player, v.Action)
	default:
		s.PanicWithDiagnostics("unhandled battle action variant", "action", a)
	}
	return nil
}

func containsAction(legal []action.BattleAction, a action.BattleAction) bool {
	for _, candidate := range legal {
		if candidate == a {
			return true
		}
	}
	return false
}

// recordCardOrderPosition accumulates one SelectCardOrder response into the
// front card-order prompt's working order; a SubmitCardOrder-equivalent
// commit happens once every card named in the prompt has a position (the
// UI issues one SelectCardOrder per card, then the prompt is cleared when
// the order is fully specified).
func (s *State) recordCardOrderPosition(v action.SelectCardOrder) {
	p := s.FrontPrompt()
	if p == nil || p.Kind != PromptSelectDeckCardOrder || p.OrderTarget != v.Target {
		s.PanicWithDiagnostics("no active card-order prompt for target", "target", v.Target)
		return
	}
	reordered := reorderWithPosition(p.OrderCards, v.Card, v.Position)
	p.OrderCards = reordered
	s.PushAnimation(AnimMakeChoice{Player: p.Player, Choice: fmt.Sprintf("order %v at %d", v.Card, v.Position)})
}

func reorderWithPosition(cards []ids.CardId, card ids.CardId, position int) []ids.CardId {
	without := make([]ids.CardId, 0, len(cards))
	for _, c := range cards {
		if c != card {
			without = append(without, c)
		}
	}
	if position < 0 {
		position = 0
	}
	if position > len(without) {
		position = len(without)
	}
	out := make([]ids.CardId, 0, len(cards))
	out = append(out, without[:position]...)
	out = append(out, card)
	out = append(out, without[position:]...)
	return out
}
