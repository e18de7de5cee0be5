// Package search implements a generic UCT tree search over any game that
// implements GameStateNode, plus subtree reuse and multi-threaded rollout
// partitioning (spec.md 4.F). BattleNode adapts package battle's State to
// the interface; a Nim harness (nim_test.go) exercises the search engine
// independently of the card-game rules, the same separation spec.md
// describes ("a smaller game of Nim is used in tests to validate the
// search harness").
package search

// Action is one legal move in whatever game a GameStateNode wraps. The
// search engine never inspects an Action's shape directly — it only ever
// hands one back to ExecuteAction or compares two for equality — so a bare
// `any` is sufficient, mirroring the genericity original_source's
// `GameStateNode` trait achieves with a Rust associated type.
type Action = any

// Player identifies whose turn it is to act. Both BattleNode (via
// ids.PlayerName) and the Nim test harness use small integers, so the
// search engine itself stays game-agnostic by treating player identity as
// a plain int.
type Player = int

// Status reports whether a GameStateNode's game has concluded.
type Status struct {
	Over        bool
	CurrentTurn Player // meaningful only when !Over
	Winner      *Player // nil: no winner yet, or a draw once Over is true
}

// GameStateNode abstracts "any two-player turn-based game" for the search
// engine: copy for simulation, query whose turn it is, enumerate or sample
// legal moves, and apply one. Grounded on spec.md 4.F's GameStateNode
// trait (make_copy/make_randomized_copy/status/legal_actions/
// random_action/execute_action), reproduced as a Go interface rather than
// a trait with an associated Action type, since Go interfaces cannot carry
// one.
type GameStateNode interface {
	// MakeCopy returns a deep, independent copy safe to mutate during a
	// rollout without affecting the original.
	MakeCopy() GameStateNode

	// MakeRandomizedCopy returns a deep copy with information hidden from
	// perspective re-randomized (e.g. shuffled deck order), so a search
	// rollout cannot exploit knowledge the perspective player would not
	// actually have.
	MakeRandomizedCopy(perspective Player) GameStateNode

	// Status reports whether the game has ended and, if not, whose turn it
	// is.
	Status() Status

	// LegalActions enumerates every action player may currently take.
	LegalActions(player Player) []Action

	// RandomAction samples one uniformly from LegalActions(player), for use
	// during a rollout's simulation phase. Returns (nil, false) if no
	// action is legal (the caller treats this as a stuck/drawn position).
	RandomAction(player Player) (Action, bool)

	// ExecuteAction applies action on behalf of player, mutating the node
	// in place.
	ExecuteAction(player Player, action Action) error
}
