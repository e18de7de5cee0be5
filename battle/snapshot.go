package battle

import (
	"math/rand"

	"github.com/dreamtides/dtengine/catalog"
	"github.com/dreamtides/dtengine/dterr"
	"github.com/dreamtides/dtengine/ids"
)

// BattleSnapshot is the serializable projection of a State that
// package saveformat embeds in a save document (spec.md section 6: "a
// versioned JSON document carrying ... an optional serialized
// BattleState"). It omits the catalog (rebuilt by the loader from the
// player's deck list), the rng (re-seeded on load — replaying an exact
// rollout stream across a save/load boundary is not a requirement this
// engine makes), and every in-flight resolution data structure (Stack,
// Prompts, StackPriority, temporary triggers, chosen stack targets):
// Snapshot refuses to run unless the battle is quiescent, so those fields
// are always at their zero value whenever a snapshot is taken.
type BattleSnapshot struct {
	Players      map[ids.PlayerName]*PlayerState `json:"players"`
	Cards        map[ids.CardId]*CardInstance    `json:"cards"`
	Dreamwell    Dreamwell                       `json:"dreamwell"`
	DeckOrder    map[ids.PlayerName][]ids.CardId `json:"deck_order"`
	TurnId       ids.TurnId                      `json:"turn_id"`
	ActivePlayer ids.PlayerName                   `json:"active_player"`
	Phase        Phase                            `json:"phase"`
	Status       Status                           `json:"status"`
}

// Snapshot projects s into a BattleSnapshot, or reports SaveNotQuiescent if
// s has any in-flight resolution state the snapshot format cannot capture —
// the same "save only between actions" restriction most turn-based games
// impose, and the natural reading of spec.md's save-file section never
// mentioning mid-resolution persistence.
func (s *State) Snapshot() (*BattleSnapshot, error) {
	if len(s.Stack) > 0 {
		return nil, dterr.NewSaveNotQuiescent("cannot save while the stack is non-empty")
	}
	if len(s.Prompts) > 0 {
		return nil, dterr.NewSaveNotQuiescent("cannot save while a prompt is pending")
	}
	if s.StackPriority != nil {
		return nil, dterr.NewSaveNotQuiescent("cannot save while stack priority is assigned")
	}
	if len(s.temporaryTriggers) > 0 {
		return nil, dterr.NewSaveNotQuiescent("cannot save with temporary triggers still installed")
	}
	if len(s.stackTargets) > 0 {
		return nil, dterr.NewSaveNotQuiescent("cannot save with unresolved stack targets recorded")
	}

	snap := &BattleSnapshot{
		Players:      make(map[ids.PlayerName]*PlayerState, len(s.Players)),
		Cards:        make(map[ids.CardId]*CardInstance, len(s.Cards)),
		Dreamwell:    copyDreamwell(s.Dreamwell),
		DeckOrder:    make(map[ids.PlayerName][]ids.CardId, len(s.DeckOrder)),
		TurnId:       s.TurnId,
		ActivePlayer: s.ActivePlayer,
		Phase:        s.Phase,
		Status:       s.Status,
	}
	if s.Status.Winner != nil {
		w := *s.Status.Winner
		snap.Status.Winner = &w
	}
	for player, ps := range s.Players {
		snap.Players[player] = copyPlayerState(ps)
	}
	for id, card := range s.Cards {
		snap.Cards[id] = copyCardInstance(card)
	}
	for player, order := range s.DeckOrder {
		snap.DeckOrder[player] = append([]ids.CardId(nil), order...)
	}
	return snap, nil
}

// RestoreSnapshot rebuilds a quiescent State from a BattleSnapshot and a
// freshly-built catalog (spec.md section 6: "on load the catalog is
// rebuilt and the ability-list cache is repopulated by identity" —
// catalog.Build already repopulates catalog's own ability-text LRU cache,
// so the loader's job here is only to re-attach it). seed re-seeds the
// restored battle's rng; no attempt is made to reproduce the exact rollout
// stream the saved battle had been midway through.
func RestoreSnapshot(cat *catalog.Catalog, snap *BattleSnapshot, seed int64) *State {
	s := &State{
		Catalog:      cat,
		Players:      make(map[ids.PlayerName]*PlayerState, len(snap.Players)),
		Cards:        make(map[ids.CardId]*CardInstance, len(snap.Cards)),
		Dreamwell:    copyDreamwell(snap.Dreamwell),
		DeckOrder:    make(map[ids.PlayerName][]ids.CardId, len(snap.DeckOrder)),
		TurnId:       snap.TurnId,
		ActivePlayer: snap.ActivePlayer,
		Phase:        snap.Phase,
		Status:       snap.Status,
		stackTargets: make(map[ids.CardId]ResolvedTargets),
		rng:          rand.New(rand.NewSource(seed)),
	}
	if snap.Status.Winner != nil {
		w := *snap.Status.Winner
		s.Status.Winner = &w
	}
	for player, ps := range snap.Players {
		s.Players[player] = copyPlayerState(ps)
	}
	for id, card := range snap.Cards {
		s.Cards[id] = copyCardInstance(card)
		if uint64(id) > s.nextCardId {
			s.nextCardId = uint64(id)
		}
		if uint64(card.ObjectId) > s.nextObjectId {
			s.nextObjectId = uint64(card.ObjectId)
		}
	}
	for player, order := range snap.DeckOrder {
		s.DeckOrder[player] = append([]ids.CardId(nil), order...)
	}
	return s
}
