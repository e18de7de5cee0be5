package battle

import "github.com/dreamtides/dtengine/ids"

// MoveToZone transitions a card to a new zone, minting a fresh ObjectId
// (spec.md section 3: zone changes invalidate prior object references).
// Battlefield entry additionally sets the character's base spark from its
// catalog definition. Deck-order bookkeeping (removal on leaving the deck,
// append-to-bottom on entering it) is handled here so every mutation that
// moves a card through the deck stays consistent with DeckOrder.
func (s *State) MoveToZone(c *CardInstance, zone ids.Zone) {
	previousOwner, previousZone := c.Owner, c.Zone
	if previousZone == ids.ZoneDeck {
		s.removeFromDeckOrder(previousOwner, c.InstanceId)
	}
	c.Zone = zone
	c.ObjectId = s.NewObjectId()
	if previousZone == ids.ZoneBattlefield && zone != ids.ZoneBattlefield {
		s.RecomputeStaticEffects()
	}
	if zone != ids.ZoneStack {
		s.removeFromStackOrder(c.InstanceId)
	}
	if zone == ids.ZoneBattlefield {
		def := s.Definition(c)
		c.BaseSpark = def.Spark
	}
	if zone == ids.ZoneDeck {
		s.DeckOrder[c.Owner] = append(s.DeckOrder[c.Owner], c.InstanceId)
	}
}

func (s *State) removeFromStackOrder(id ids.CardId) {
	for i, existing := range s.Stack {
		if existing == id {
			s.Stack = append(s.Stack[:i], s.Stack[i+1:]...)
			return
		}
	}
}

func (s *State) removeFromDeckOrder(player ids.PlayerName, id ids.CardId) {
	order := s.DeckOrder[player]
	for i, existing := range order {
		if existing == id {
			s.DeckOrder[player] = append(order[:i], order[i+1:]...)
			return
		}
	}
}

// PutOnTopOfDeck moves a card to the front of player's deck order,
// minting a fresh ObjectId. Used by EffectPutOnTopOfEnemyDeck and by
// SubmitCardOrder for a foresee-style prompt.
func (s *State) PutOnTopOfDeck(c *CardInstance, player ids.PlayerName) {
	if c.Zone == ids.ZoneDeck {
		s.removeFromDeckOrder(c.Owner, c.InstanceId)
	} else {
		s.MoveToZone(c, ids.ZoneDeck)
		s.removeFromDeckOrder(player, c.InstanceId) // MoveToZone just appended it to the bottom
	}
	c.Zone = ids.ZoneDeck
	s.DeckOrder[player] = append([]ids.CardId{c.InstanceId}, s.DeckOrder[player]...)
}

// TopOfDeck returns the top n card ids of player's deck, top-first.
func (s *State) TopOfDeck(player ids.PlayerName, n int) []ids.CardId {
	order := s.DeckOrder[player]
	if n > len(order) {
		n = len(order)
	}
	out := make([]ids.CardId, n)
	copy(out, order[:n])
	return out
}

// PushStack appends a card to the top of the resolution stack.
func (s *State) PushStack(id ids.CardId) {
	s.Stack = append(s.Stack, id)
}

// TopOfStack returns the id of the card currently on top of the stack, or
// (0, false) if the stack is empty.
func (s *State) TopOfStack() (ids.CardId, bool) {
	if len(s.Stack) == 0 {
		return 0, false
	}
	return s.Stack[len(s.Stack)-1], true
}

// DrawCard moves the top card of player's deck to their hand, converting
// the draw into +1 energy instead if their hand is already at the size
// limit (spec.md section 8 boundary test). Returns the drawn CardId, or
// false if no card reached the hand: either the draw was converted to
// energy, or the deck was empty (a "deck-out" condition left to the caller
// to interpret — this engine has no forced-loss-on-empty-deck rule stated in
// scope, so it is a silent no-op).
func (s *State) DrawCard(source EffectSource, player ids.PlayerName) (ids.CardId, bool) {
	top := s.TopOfDeck(player, 1)
	if len(top) == 0 {
		return 0, false
	}
	card := s.Card(top[0])

	hand := s.CardsInZone(player, ids.ZoneHand)
	if len(hand) >= HandSizeLimit {
		s.GainEnergy(player, ids.Energy(1))
		return 0, false
	}

	s.MoveToZone(card, ids.ZoneHand)
	return card.InstanceId, true
}

// DiscardCard moves a card from hand to void and increments the
// controller's CardsDiscardedThisTurn counter.
func (s *State) DiscardCard(source EffectSource, id ids.CardId) {
	c := s.Card(id)
	s.MoveToZone(c, ids.ZoneVoid)
	s.Players[c.Owner].CardsDiscardedThisTurn++
	s.Record(source, discardTrigger)
}

// Dissolve moves a battlefield character to its owner's void, respecting
// an active prevent-dissolve anchor. Returns false if the dissolve was
// prevented.
func (s *State) Dissolve(source EffectSource, id ids.CardId) bool {
	c := s.Card(id)
	if c.PreventDissolveUntilEndOfTurn {
		return false
	}
	s.PushAnimation(AnimDissolve{Target: id})
	s.MoveToZone(c, ids.ZoneVoid)
	s.Record(source, dissolvedTrigger)
	return true
}

// Abandon moves a battlefield character to its owner's void without
// regard for prevent-dissolve (abandon is a cost/consequence, not a
// targeted removal effect).
func (s *State) Abandon(source EffectSource, id ids.CardId) {
	c := s.Card(id)
	s.MoveToZone(c, ids.ZoneVoid)
	s.Record(source, abandonTrigger)
}

// BanishFromVoid permanently removes a card from the game.
func (s *State) BanishFromVoid(id ids.CardId) {
	c := s.Card(id)
	s.MoveToZone(c, ids.ZoneBanished)
}
