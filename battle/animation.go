package battle

import "github.com/dreamtides/dtengine/ids"

// Animation is a typed record of a significant mutation, appended in strict
// mutation order and cleared whenever the client polls (spec.md 4.D).
// Grounded on
// original_source/rules_engine/src/battle_state/src/battle/battle_animation.rs's
// BattleAnimation enum, reproduced variant-for-variant (minus the fields
// that are presentation-only metadata the engine core never reads).
type Animation interface {
	isAnimation()
}

type (
	AnimStartTurn struct {
		Player ids.PlayerName
	}
	AnimJudgment struct {
		Player   ids.PlayerName
		NewScore *ids.Points // nil if the player gained no points this judgment
	}
	AnimDreamwellActivation struct {
		Player              ids.PlayerName
		DreamwellIdentity   ids.CardIdentity
		NewEnergy           ids.Energy
		NewProducedEnergy   ids.Energy
	}
	AnimPlayCardFromHand struct {
		Player ids.PlayerName
		Card   ids.CardId
	}
	AnimDrawCards struct {
		Player ids.PlayerName
		Cards  []ids.CardId
	}
	AnimSelectStackCardTargets struct {
		Player   ids.PlayerName
		Source   ids.CardId
		Targets  []ids.CardId
	}
	AnimMakeChoice struct {
		Player ids.PlayerName
		Choice string
	}
	AnimResolveCharacter struct {
		Character ids.CardId
	}
	AnimNegate struct {
		Target ids.CardId
	}
	AnimDissolve struct {
		Target ids.CardId
	}
	AnimVictory struct {
		Winner ids.PlayerName
	}
)

func (AnimStartTurn) isAnimation()               {}
func (AnimJudgment) isAnimation()                {}
func (AnimDreamwellActivation) isAnimation()      {}
func (AnimPlayCardFromHand) isAnimation()         {}
func (AnimDrawCards) isAnimation()                {}
func (AnimSelectStackCardTargets) isAnimation()   {}
func (AnimMakeChoice) isAnimation()               {}
func (AnimResolveCharacter) isAnimation()         {}
func (AnimNegate) isAnimation()                   {}
func (AnimDissolve) isAnimation()                 {}
func (AnimVictory) isAnimation()                  {}

// PushAnimation appends an animation event in mutation order.
func (s *State) PushAnimation(a Animation) {
	s.Animations = append(s.Animations, a)
}

// PollAnimations returns and clears the pending animation log, matching
// spec.md section 6's `poll` contract ("the log is cleared each time the
// client polls").
func (s *State) PollAnimations() []Animation {
	out := s.Animations
	s.Animations = nil
	return out
}
