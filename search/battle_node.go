package search

import (
	"math/rand"

	"github.com/dreamtides/dtengine/action"
	"github.com/dreamtides/dtengine/battle"
	"github.com/dreamtides/dtengine/ids"
)

// BattleNode adapts a *battle.State to GameStateNode, the "thin wrapper"
// spec.md 4.F describes ("BattleState implements this via a thin
// wrapper"). Player identity is projected to/from ids.PlayerName at the
// boundary so the search engine itself never imports package battle's
// concrete types.
type BattleNode struct {
	State *battle.State
	rng   *rand.Rand
}

// NewBattleNode wraps state for search, seeding the node's own rng for
// RandomAction sampling.
func NewBattleNode(state *battle.State, seed int64) *BattleNode {
	return &BattleNode{State: state, rng: rand.New(rand.NewSource(seed))}
}

func toPlayerName(p Player) ids.PlayerName {
	if p == int(ids.PlayerTwo) {
		return ids.PlayerTwo
	}
	return ids.PlayerOne
}

func fromPlayerName(p ids.PlayerName) Player { return int(p) }

func (n *BattleNode) MakeCopy() GameStateNode {
	return &BattleNode{State: n.State.MakeCopy(), rng: rand.New(rand.NewSource(n.rng.Int63()))}
}

func (n *BattleNode) MakeRandomizedCopy(perspective Player) GameStateNode {
	copied := n.State.MakeRandomizedCopy(toPlayerName(perspective))
	return &BattleNode{State: copied, rng: rand.New(rand.NewSource(n.rng.Int63()))}
}

func (n *BattleNode) Status() Status {
	if n.State.Status.Over {
		var winner *Player
		if n.State.Status.Winner != nil {
			p := fromPlayerName(*n.State.Status.Winner)
			winner = &p
		}
		return Status{Over: true, Winner: winner}
	}
	return Status{Over: false, CurrentTurn: fromPlayerName(n.State.NextToAct())}
}

func (n *BattleNode) LegalActions(player Player) []Action {
	legal := n.State.LegalActions(toPlayerName(player))
	out := make([]Action, len(legal))
	for i, a := range legal {
		out[i] = a
	}
	return out
}

func (n *BattleNode) RandomAction(player Player) (Action, bool) {
	legal := n.State.LegalActions(toPlayerName(player))
	if len(legal) == 0 {
		return nil, false
	}
	return legal[n.rng.Intn(len(legal))], true
}

func (n *BattleNode) ExecuteAction(player Player, a Action) error {
	battleAction, ok := a.(action.BattleAction)
	if !ok {
		return errNotABattleAction
	}
	return n.State.Execute(toPlayerName(player), battleAction)
}

var errNotABattleAction = battleActionTypeError{}

type battleActionTypeError struct{}

func (battleActionTypeError) Error() string {
	return "search: action is not an action.BattleAction"
}
