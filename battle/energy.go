package battle

import "github.com/dreamtides/dtengine/ids"

// SpendEnergy deducts amount from player's current energy. Underflowing
// energy is an invariant failure (spec.md section 7): legality must have
// already guaranteed affordability before this is called.
func (s *State) SpendEnergy(player ids.PlayerName, amount ids.Energy) {
	p := s.Players[player]
	remaining, ok := p.CurrentEnergy.Sub(amount)
	if !ok {
		s.PanicWithDiagnostics("insufficient energy", "player", player, "amount", amount, "current", p.CurrentEnergy)
	}
	p.CurrentEnergy = remaining
}

// GainEnergy adds amount to player's current energy.
func (s *State) GainEnergy(player ids.PlayerName, amount ids.Energy) {
	p := s.Players[player]
	p.CurrentEnergy = p.CurrentEnergy.Add(amount)
}

// SetEnergy forces player's current energy to amount (used by
// DebugSetEnergy and by ActivateDreamwell).
func (s *State) SetEnergy(player ids.PlayerName, amount ids.Energy) {
	s.Players[player].CurrentEnergy = amount
}

// GainPoints adds amount to player's point total and checks for judgment
// victory (spec.md 4.D: "Points >= 25 at end of judgment wins").
func (s *State) GainPoints(source EffectSource, player ids.PlayerName, amount ids.Points) {
	p := s.Players[player]
	p.Points = p.Points.Add(amount)
	s.checkVictory(player)
}

func (s *State) checkVictory(player ids.PlayerName) {
	if s.Status.Over {
		return
	}
	if s.Players[player].Points.Cmp(VictoryPoints) >= 0 {
		winner := player
		s.Status = Status{Over: true, Winner: &winner}
		s.PushAnimation(AnimVictory{Winner: player})
	}
}
