package battle

import (
	"math/rand"

	"github.com/dreamtides/dtengine/ids"
)

// MakeCopy returns a deep, independent copy of the battle — the only
// legitimate way to fork a live State (spec.md section 5: "Only the AI
// layer may fork state: it always operates on make_copy()/
// make_randomized_copy() clones, never on the live state"). Grounded on
// the teacher's rand.New(rand.NewSource(...)) idiom (pkg/ability/ai.go)
// for seeding the copy's own independent rng, derived from the source's
// so that two copies made from the same state diverge deterministically
// given the source's own rng state.
func (s *State) MakeCopy() *State {
	c := &State{
		Catalog:           s.Catalog,
		Players:           make(map[ids.PlayerName]*PlayerState, len(s.Players)),
		Cards:             make(map[ids.CardId]*CardInstance, len(s.Cards)),
		Stack:             append([]ids.CardId(nil), s.Stack...),
		Dreamwell:         copyDreamwell(s.Dreamwell),
		DeckOrder:         make(map[ids.PlayerName][]ids.CardId, len(s.DeckOrder)),
		TurnId:            s.TurnId,
		ActivePlayer:      s.ActivePlayer,
		Phase:             s.Phase,
		Animations:        append([]Animation(nil), s.Animations...),
		Status:            s.Status,
		temporaryTriggers: append([]temporaryTrigger(nil), s.temporaryTriggers...),
		stackTargets:      make(map[ids.CardId]ResolvedTargets, len(s.stackTargets)),
		rng:               rand.New(rand.NewSource(s.rng.Int63())),
		nextObjectId:      s.nextObjectId,
		nextCardId:        s.nextCardId,
	}

	if s.StackPriority != nil {
		p := *s.StackPriority
		c.StackPriority = &p
	}
	if s.Status.Winner != nil {
		w := *s.Status.Winner
		c.Status.Winner = &w
	}
	if s.Tracing != nil {
		tr := *s.Tracing
		c.Tracing = &tr
	}

	for player, ps := range s.Players {
		c.Players[player] = copyPlayerState(ps)
	}
	for id, card := range s.Cards {
		c.Cards[id] = copyCardInstance(card)
	}
	for player, order := range s.DeckOrder {
		c.DeckOrder[player] = append([]ids.CardId(nil), order...)
	}
	for id, targets := range s.stackTargets {
		c.stackTargets[id] = targets
	}

	c.Triggers = TriggerState{events: append([]triggerForListener(nil), s.Triggers.events...)}
	c.Prompts = make([]*Prompt, len(s.Prompts))
	for i, p := range s.Prompts {
		c.Prompts[i] = copyPrompt(p)
	}

	return c
}

// MakeRandomizedCopy returns a deep copy with every zone hidden from
// perspective re-shuffled: both players' deck orders (unseen to either
// player, since neither tracks what is about to be drawn) and the
// opponent's hand identities (unseen to perspective), so a rollout
// starting from this copy cannot exploit information the real player does
// not have (spec.md 4.F). The dreamwell's remaining order is left
// untouched: its upcoming phase sequencing is a rules fact both players
// already know, not hidden information.
func (s *State) MakeRandomizedCopy(perspective ids.PlayerName) *State {
	c := s.MakeCopy()
	c.shuffleDeckOrder(ids.PlayerOne)
	c.shuffleDeckOrder(ids.PlayerTwo)
	c.shuffleHandIdentities(perspective.Opponent())
	return c
}

func (s *State) shuffleDeckOrder(player ids.PlayerName) {
	order := s.DeckOrder[player]
	s.rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
}

// shuffleHandIdentities permutes which of player's hand CardInstances
// carries which identity, without changing instance count, zone, or id —
// the re-determinization a perspective player's search rollout needs over
// an opponent's unseen hand.
func (s *State) shuffleHandIdentities(player ids.PlayerName) {
	hand := s.CardsInZone(player, ids.ZoneHand)
	identities := make([]ids.CardIdentity, len(hand))
	for i, c := range hand {
		identities[i] = c.Identity
	}
	s.rng.Shuffle(len(identities), func(i, j int) { identities[i], identities[j] = identities[j], identities[i] })
	for i, c := range hand {
		c.Identity = identities[i]
	}
}

func copyDreamwell(d Dreamwell) Dreamwell {
	return Dreamwell{
		Cards:                  append([]DreamwellCard(nil), d.Cards...),
		NextIndex:              d.NextIndex,
		FirstIterationComplete: d.FirstIterationComplete,
	}
}

func copyPlayerState(p *PlayerState) *PlayerState {
	clone := *p
	clone.UsedActivatedAbilitiesThisTurn = make(map[ids.AbilityId]bool, len(p.UsedActivatedAbilitiesThisTurn))
	for id, used := range p.UsedActivatedAbilitiesThisTurn {
		clone.UsedActivatedAbilitiesThisTurn[id] = used
	}
	return &clone
}

func copyCardInstance(c *CardInstance) *CardInstance {
	clone := *c
	if c.UsedActivatedThisTurn != nil {
		clone.UsedActivatedThisTurn = make(map[ids.AbilityNumber]bool, len(c.UsedActivatedThisTurn))
		for n, used := range c.UsedActivatedThisTurn {
			clone.UsedActivatedThisTurn[n] = used
		}
	}
	return &clone
}

func copyPrompt(p *Prompt) *Prompt {
	clone := *p
	clone.CharacterChoices = append([]ids.CardId(nil), p.CharacterChoices...)
	clone.StackChoices = append([]ids.CardId(nil), p.StackChoices...)
	clone.HandChoices = append([]ids.CardId(nil), p.HandChoices...)
	clone.OrderCards = append([]ids.CardId(nil), p.OrderCards...)
	clone.Choices = append([]GenericChoice(nil), p.Choices...)
	if p.Resume != nil {
		resume := *p.Resume
		clone.Resume = &resume
	}
	return &clone
}
