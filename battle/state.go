// Package battle implements the game state machine: zones, the resolution
// stack, prompts, the trigger queue, turn machinery, the character limit,
// judgment/victory, the animation log, and the legality and mutation APIs
// that together realize every card effect (spec.md sections 4.D and 4.E).
// Grounded throughout on
// original_source/rules_engine/src/{battle_state,battle_mutations,battle_queries}
// for the rules themselves and on the teacher's pkg/ability (stack.go,
// resolution.go) and pkg/game (types.go) for the Go idiom: a central
// mutable struct with method-based mutators and leveled logging at each
// step, rather than a functional/immutable state representation.
package battle

import (
	"math/rand"

	"github.com/google/uuid"

	"github.com/dreamtides/dtengine/ability"
	"github.com/dreamtides/dtengine/catalog"
	"github.com/dreamtides/dtengine/ids"
	"github.com/dreamtides/dtengine/internal/logger"
)

// Phase is one of the four turn phases (spec.md 4.D).
type Phase int

const (
	PhaseDraw Phase = iota
	PhaseMain
	PhaseEnding
	PhaseJudgment
)

func (p Phase) String() string {
	switch p {
	case PhaseDraw:
		return "draw"
	case PhaseMain:
		return "main"
	case PhaseEnding:
		return "ending"
	case PhaseJudgment:
		return "judgment"
	default:
		return "unknown-phase"
	}
}

// Status describes whether a battle is still in progress and, if not, who
// won.
type Status struct {
	Over   bool
	Winner *ids.PlayerName // nil means a draw
}

// CardInstance is one physical card in a battle: its catalog identity plus
// all of the mutable, instance-specific state a zone transition or effect
// can alter. Zone membership is recorded here directly (rather than in
// separate per-zone slices) so that invariant 1 ("every CardId belongs to
// exactly one zone") is true by construction: a card's Zone field is the
// single source of truth, matching original_source's card_set.rs approach
// of indexing membership off the card itself rather than duplicating it
// across collections.
type CardInstance struct {
	InstanceId ids.CardId
	ObjectId   ids.ObjectId
	Identity   ids.CardIdentity
	Owner      ids.PlayerName
	Controller ids.PlayerName
	Zone       ids.Zone

	// CurrentSpark() is BaseSpark + SparkBonus, computed on each call.
	BaseSpark  ids.Spark
	SparkBonus ids.Spark

	PreventDissolveUntilEndOfTurn bool
	ActivatedAbilitiesDisabled    bool
	UsedActivatedThisTurn         map[ids.AbilityNumber]bool
	BanishOnLeavePlay             bool // reclaim rider
}

// CurrentSpark returns the instance's total spark, for characters.
func (c *CardInstance) CurrentSpark() ids.Spark {
	return c.BaseSpark.Add(c.SparkBonus)
}

// PlayerState is one player's resources and zone contents within a battle.
// Grounded on
// original_source/rules_engine/src/battle_state/src/battle_player/battle_player_state.rs,
// trimmed to the fields the rules engine itself reads (quest/save-file
// fields are out of scope here; package saveformat owns those).
type PlayerState struct {
	Name ids.PlayerName

	Points         ids.Points
	CurrentEnergy  ids.Energy
	ProducedEnergy ids.Energy
	SparkBonus     ids.Spark

	Mulligan MulliganDecision

	// UsedActivatedAbilitiesThisTurn tracks non-multi activated abilities
	// already used this turn, keyed by ability id.
	UsedActivatedAbilitiesThisTurn map[ids.AbilityId]bool

	// CardsPlayedThisTurn / CardsDiscardedThisTurn back the
	// QuantityCardsPlayedThisTurn / QuantityCardsDiscardedThisTurn
	// expressions (spec.md 4.B).
	CardsPlayedThisTurn     int
	CardsDiscardedThisTurn  int
}

// MulliganDecision is a player's pre-game keep/mulligan choice (spec.md
// 3.X supplemented mulligan state).
type MulliganDecision int

const (
	MulliganPending MulliganDecision = iota
	MulliganKept
	MulliganMulliganed
)

// DreamwellCard is one card in the shared dreamwell deck: an
// energy-producing card drawn once per turn (spec.md glossary).
type DreamwellCard struct {
	Identity       ids.CardIdentity
	Phase          int // phase 0 cards are skipped after the first pass through the deck
	EnergyProduced ids.Energy
}

// Dreamwell is the shared, shuffled-once energy deck.
type Dreamwell struct {
	Cards                 []DreamwellCard
	NextIndex              int
	FirstIterationComplete bool
}

// HandSizeLimit is the maximum cards a player may hold; a draw with the hand
// already at the limit converts to energy instead (see DrawCard; spec.md
// section 8 boundary test).
const HandSizeLimit = 10

// CharacterLimit is the maximum characters a player may control at once
// (spec.md 4.D).
const CharacterLimit = 8

// VictoryPoints is the point total that ends the battle in the holder's
// favor (spec.md 4.D).
const VictoryPoints ids.Points = 25

// State is the authoritative, single-threaded battle aggregate (spec.md
// section 5: "owned by exactly one thread at a time"). Only the AI layer
// forks it, always via MakeCopy/MakeRandomizedCopy.
type State struct {
	Catalog *catalog.Catalog

	Players map[ids.PlayerName]*PlayerState
	Cards   map[ids.CardId]*CardInstance
	Stack   []ids.CardId // push order; last element is the top

	Dreamwell Dreamwell

	// DeckOrder tracks each player's deck from top (index 0) to bottom
	// explicitly. CardInstance.Zone alone records *that* a card is in the
	// deck but not its position, and several effects (draw, foresee,
	// discover, put-on-top-of-enemy-deck, SelectCardOrder) need "the top N
	// cards" or "move to the top" to mean something precise.
	DeckOrder map[ids.PlayerName][]ids.CardId

	TurnId       ids.TurnId
	ActivePlayer ids.PlayerName
	Phase        Phase
	StackPriority *ids.PlayerName // nil when the stack is empty / not relevant

	Triggers TriggerState
	Prompts  []*Prompt

	Animations []Animation

	// Tracing, when non-nil, enables the legality re-check every mutation
	// performs before applying an action (spec.md section 7's
	// ActionIllegal path) and the diagnostic dump on invariant failure.
	// It is always non-nil outside of tight AI-rollout loops, mirroring
	// original_source's `battle.tracing.is_some()` gate around the
	// (comparatively expensive) legal_actions recomputation.
	Tracing *Tracing

	Status Status

	// temporaryTriggers holds triggers installed by
	// EffectCreateTriggerUntilEndOfTurn, cleared by fireEndOfTurnTriggers.
	temporaryTriggers []temporaryTrigger

	// stackTargets holds the target(s) chosen for a stack card's effect,
	// gathered interactively by gatherTargetPrompts and consumed by
	// resolvedTargetsFor when the card resolves.
	stackTargets map[ids.CardId]ResolvedTargets

	rng          *rand.Rand
	nextObjectId uint64
	nextCardId   uint64
}

// Tracing holds the diagnostic sink used by PanicWithDiagnostics and the
// optional legality double-check gate.
type Tracing struct {
	BattleId string
}

// NewBattleId mints a random identity for Tracing.BattleId, grounded on the
// teacher's uuid.New() calls in pkg/ability/stack.go. Unlike CardId/ObjectId,
// a battle correlation token is never compared for ordering or persisted
// across process restarts, so a non-orderable UUID fits it better than
// another dense counter.
func NewBattleId() string {
	return uuid.NewString()
}

// NewState builds an empty battle for two players against a loaded
// catalog. Decks, hands, and the dreamwell are populated separately by the
// caller (a deck-builder or test-scenario constructor), matching the
// teacher's NewGame/NewMatch split between "allocate state" and "deal
// cards".
func NewState(cat *catalog.Catalog, seed int64) *State {
	s := &State{
		Catalog: cat,
		Players: map[ids.PlayerName]*PlayerState{
			ids.PlayerOne: newPlayerState(ids.PlayerOne),
			ids.PlayerTwo: newPlayerState(ids.PlayerTwo),
		},
		Cards:        make(map[ids.CardId]*CardInstance),
		DeckOrder:    map[ids.PlayerName][]ids.CardId{ids.PlayerOne: nil, ids.PlayerTwo: nil},
		ActivePlayer: ids.PlayerOne,
		Phase:        PhaseMain,
		rng:          rand.New(rand.NewSource(seed)),
	}
	return s
}

func newPlayerState(name ids.PlayerName) *PlayerState {
	return &PlayerState{
		Name:                           name,
		Mulligan:                       MulliganPending,
		UsedActivatedAbilitiesThisTurn: make(map[ids.AbilityId]bool),
	}
}

// NewObjectId mints a fresh ObjectId, used whenever a card enters a new
// zone (spec.md section 3: "increments whenever a card enters a new
// zone").
func (s *State) NewObjectId() ids.ObjectId {
	s.nextObjectId++
	return ids.ObjectId(s.nextObjectId)
}

// NewCardId mints a fresh stable CardId for a card instance entering play
// for the first time (drawn from deck construction, not zone movement).
func (s *State) NewCardId() ids.CardId {
	s.nextCardId++
	return ids.CardId(s.nextCardId)
}

// Card looks up a card instance, or panics via PanicWithDiagnostics if it
// is missing — a missing CardId referenced by a mutation is always an
// invariant failure (spec.md section 7), never an expected one.
func (s *State) Card(id ids.CardId) *CardInstance {
	c, ok := s.Cards[id]
	if !ok {
		s.PanicWithDiagnostics("referenced card is not present in this battle", "card", id)
	}
	return c
}

// CardsInZone returns every card instance Owner-or-Controller (by
// membership) owns in the given zone, in CardId order for determinism.
// Battlefield/stack membership is by Controller (a stolen character is
// controlled, not owned, by its new controller); all other zones are by
// Owner.
func (s *State) CardsInZone(player ids.PlayerName, zone ids.Zone) []*CardInstance {
	var out []*CardInstance
	for _, c := range s.Cards {
		if c.Zone != zone {
			continue
		}
		owner := c.Owner
		if zone == ids.ZoneBattlefield || zone == ids.ZoneStack {
			owner = c.Controller
		}
		if owner == player {
			out = append(out, c)
		}
	}
	sortCardsById(out)
	return out
}

func sortCardsById(cards []*CardInstance) {
	for i := 1; i < len(cards); i++ {
		for j := i; j > 0 && cards[j].InstanceId < cards[j-1].InstanceId; j-- {
			cards[j], cards[j-1] = cards[j-1], cards[j]
		}
	}
}

// Definition returns the catalog definition for a card instance.
func (s *State) Definition(c *CardInstance) *catalog.Definition {
	def, err := s.Catalog.MustLookup(c.Identity)
	if err != nil {
		s.PanicWithDiagnostics("card instance references an identity missing from the catalog", "identity", c.Identity)
	}
	return def
}

// Abilities returns the parsed ability list for a card instance.
func (s *State) Abilities(c *CardInstance) *ability.List {
	return s.Definition(c).Abilities
}

// logf mirrors the teacher's logger.LogCard call sites scattered
// through pkg/ability/stack.go, kept at the same granularity here.
func (s *State) logf(format string, args ...any) {
	logger.LogCard(format, args...)
}
