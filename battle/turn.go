package battle

import (
	"github.com/dreamtides/dtengine/ability"
	"github.com/dreamtides/dtengine/ids"
)

// temporaryTrigger is a trigger installed mid-resolution by
// EffectCreateTriggerUntilEndOfTurn, firing Effect the next time Trigger's
// kind is recorded before the end of the current turn.
type temporaryTrigger struct {
	Owner   ids.PlayerName
	Trigger ability.Trigger
	Effect  ability.StandardEffect
}

// ToEndingPhase transitions the active player into their ending phase,
// grounded on
// original_source/rules_engine/src/battle_mutations/src/phase_mutations/turn.rs's
// to_ending_phase. The opponent then gets priority for fast responses
// before StartNextTurn is accepted.
func (s *State) ToEndingPhase() {
	s.Phase = PhaseEnding
	s.fireEndOfTurnTriggers()
	s.logf("Ending turn for %s", s.ActivePlayer)
}

func (s *State) fireEndOfTurnTriggers() {
	source := SourceGame{Player: s.ActivePlayer}
	s.Record(source, ability.Trigger{Kind: ability.TriggerEndOfYourTurn})
	for _, tt := range s.temporaryTriggers {
		if tt.Owner != s.ActivePlayer {
			continue
		}
		s.ApplyStandardEffect(SourceGame{Player: tt.Owner}, tt.Effect, ResolvedTargets{})
	}
	s.temporaryTriggers = nil
	s.clearEndOfTurnCardState()
}

func (s *State) clearEndOfTurnCardState() {
	for _, c := range s.Cards {
		c.PreventDissolveUntilEndOfTurn = false
		c.UsedActivatedThisTurn = nil
	}
	for _, p := range s.Players {
		p.CardsPlayedThisTurn = 0
		p.CardsDiscardedThisTurn = 0
		p.UsedActivatedAbilitiesThisTurn = make(map[ids.AbilityId]bool)
	}
}

// StartTurn begins a turn for player: advances turn_id, checks the
// turn-limit draw, runs judgment, activates the dreamwell, and draws for
// turn (skipped on the very first turn), ending in the Main phase.
// Grounded on
// original_source/rules_engine/src/battle_mutations/src/phase_mutations/turn.rs's
// start_turn.
func (s *State) StartTurn(player ids.PlayerName) {
	s.ActivePlayer = player
	s.TurnId = s.TurnId.Add(ids.TurnId(1))
	if s.TurnId.Cmp(ids.MaxTurnId) > 0 {
		s.Status = Status{Over: true, Winner: nil}
		return
	}

	source := SourceGame{Player: player}
	s.PushAnimation(AnimStartTurn{Player: player})
	s.RunJudgment(player, source)
	s.ActivateDreamwell(player, source)
	s.Phase = PhaseDraw

	if s.TurnId != ids.TurnId(1) {
		s.DrawCard(source, player)
	}

	s.Phase = PhaseMain
	s.DrainTriggers()
}

// RunJudgment compares player's total spark to their opponent's and
// awards max(0, spark - opponent_spark) points, grounded on
// .../phase_mutations/judgment_phase.rs's run.
func (s *State) RunJudgment(player ids.PlayerName, source EffectSource) {
	s.Phase = PhaseJudgment
	spark := s.TotalSpark(player)
	opponentSpark := s.TotalSpark(player.Opponent())

	if spark.Cmp(opponentSpark) > 0 {
		gained, _ := spark.Sub(opponentSpark)
		points := ids.Points(uint32(gained))
		s.GainPoints(source, player, points)
		newScore := s.Players[player].Points
		s.PushAnimation(AnimJudgment{Player: player, NewScore: &newScore})
	} else {
		s.PushAnimation(AnimJudgment{Player: player, NewScore: nil})
	}

	s.Record(source, judgmentTrigger)
}

// TotalSpark sums the current spark of every battlefield character player
// controls, plus their spark_bonus.
func (s *State) TotalSpark(player ids.PlayerName) ids.Spark {
	total := s.Players[player].SparkBonus
	for _, c := range s.CardsInZone(player, ids.ZoneBattlefield) {
		total = total.Add(c.CurrentSpark())
	}
	return total
}

// ActivateDreamwell draws the next dreamwell card and sets player's energy
// to its energy_produced, grounded on
// .../card_mutations/dreamwell.rs's draw.
func (s *State) ActivateDreamwell(player ids.PlayerName, source EffectSource) {
	dw := &s.Dreamwell
	if len(dw.Cards) == 0 {
		return
	}
	if dw.NextIndex == 0 && !dw.FirstIterationComplete {
		s.shuffleDreamwell()
	}

	index := dw.NextIndex
	if dw.FirstIterationComplete {
		for index < len(dw.Cards) && dw.Cards[index].Phase == 0 {
			index++
		}
	}
	if index >= len(dw.Cards) {
		s.PanicWithDiagnostics("dreamwell index out of range", "index", index)
	}
	card := dw.Cards[index]

	dw.NextIndex = index + 1
	if dw.NextIndex >= len(dw.Cards) {
		dw.FirstIterationComplete = true
		dw.NextIndex = 0
	}

	s.SetEnergy(player, card.EnergyProduced)
	s.Players[player].ProducedEnergy = card.EnergyProduced
	s.PushAnimation(AnimDreamwellActivation{
		Player:            player,
		DreamwellIdentity: card.Identity,
		NewEnergy:         card.EnergyProduced,
		NewProducedEnergy: card.EnergyProduced,
	})
}

func (s *State) shuffleDreamwell() {
	cards := append([]DreamwellCard(nil), s.Dreamwell.Cards...)
	s.rng.Shuffle(len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })
	stableSortByPhase(cards)
	s.Dreamwell.Cards = cards
}

func stableSortByPhase(cards []DreamwellCard) {
	for i := 1; i < len(cards); i++ {
		for j := i; j > 0 && cards[j].Phase < cards[j-1].Phase; j-- {
			cards[j], cards[j-1] = cards[j-1], cards[j]
		}
	}
}

// ApplyCharacterLimit abandons the controller's lowest-spark character
// (ties broken by lowest cost, then CardId) if their battlefield holds more
// than CharacterLimit characters, granting spark_bonus equal to the abandoned
// character's current spark. Grounded on
// .../play_cards/character_limit.rs's apply, using the "newer" tiebreak
// order confirmed against original_source's battle_mutations vs
// battle_mutations_old split.
func (s *State) ApplyCharacterLimit(source EffectSource, player ids.PlayerName) {
	chars := s.CardsInZone(player, ids.ZoneBattlefield)
	if len(chars) <= CharacterLimit {
		return
	}

	target := chars[0]
	targetCost := s.Definition(target).Cost
	for _, c := range chars[1:] {
		cost := s.Definition(c).Cost
		if c.CurrentSpark() < target.CurrentSpark() ||
			(c.CurrentSpark() == target.CurrentSpark() && cost < targetCost) ||
			(c.CurrentSpark() == target.CurrentSpark() && cost == targetCost && c.InstanceId < target.InstanceId) {
			target, targetCost = c, cost
		}
	}

	sparkValue := target.CurrentSpark()
	s.Abandon(source, target.InstanceId)
	s.Players[player].SparkBonus = s.Players[player].SparkBonus.Add(sparkValue)
}
