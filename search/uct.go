package search

import (
	"math"
	"math/rand"
)

// ExplorationConstant is UCB1's c term (the standard sqrt(2) balances
// exploitation and exploration for rewards normalized to [0, 1], the range
// Rollout's reward assigns).
const ExplorationConstant = math.Sqrt2

// UctConfig bounds a search run, matching spec.md section 5's "AI search is
// externally bounded by a configuration UctConfig (max rollouts,
// wall-clock budget); on deadline the currently-best action is returned".
// Package search only consumes MaxRollouts: RunSearch takes no deadline or
// context, so a search is bounded by rollout count alone and has no
// wall-clock budget.
type UctConfig struct {
	MaxRollouts int
}

// RunSearch performs up to config.MaxRollouts UCT rollouts from root,
// mutating graph in place, then returns the action from root with the
// highest RewardOnly score — the agent's chosen move. agent is the player
// on whose behalf the search is run; terminal outcomes are scored for
// agent, and each node accumulates that reward from the perspective of its
// PlayerWhoActed (see backpropagate).
func RunSearch(graph *SearchGraph, root int, agent Player, config UctConfig, rng *rand.Rand) (Action, bool) {
	for i := 0; i < config.MaxRollouts; i++ {
		if graph.Nodes[root].State.Status().Over {
			break
		}
		Rollout(graph, root, agent, rng)
	}
	return SelectChild(graph, root, RewardOnly, rng)
}

// Rollout performs one selection/expansion/simulation/backpropagation pass
// starting from node, matching spec.md 4.F's four-stage description.
func Rollout(graph *SearchGraph, node int, agent Player, rng *rand.Rand) {
	path, leaf := selectToLeaf(graph, node, rng)
	status := graph.Nodes[leaf].State.Status()

	var reward float64
	if status.Over {
		reward = rewardFor(status, agent)
	} else {
		childIndex, expanded := expand(graph, leaf, rng)
		if !expanded {
			// Every legal action already has a child, or none exist: treat
			// the node itself as the simulation's starting point.
			reward = simulate(graph.Nodes[leaf].State, agent, rng)
		} else {
			path = append(path, childIndex)
			reward = simulate(graph.Nodes[childIndex].State, agent, rng)
		}
	}

	backpropagate(graph, path, reward, agent)
}

// selectToLeaf walks from node via UCB1-selected children until it reaches
// one with an untried legal action (or a terminal state), returning the
// full path (including node and the leaf) for backpropagation.
func selectToLeaf(graph *SearchGraph, node int, rng *rand.Rand) ([]int, int) {
	path := []int{node}
	current := node
	for {
		state := graph.Nodes[current].State
		if state.Status().Over {
			return path, current
		}
		player := state.Status().CurrentTurn
		legal := state.LegalActions(player)
		if len(legal) == 0 {
			return path, current
		}
		if len(graph.Nodes[current].TriedActions) < countDistinct(legal) {
			// An untried action exists at this node; stop here so Rollout
			// can expand it.
			return path, current
		}
		next, ok := SelectChild(graph, current, Exploration, rng)
		if !ok {
			return path, current
		}
		childIndex, ok := graph.Nodes[current].TriedActions[next]
		if !ok {
			return path, current
		}
		path = append(path, childIndex)
		current = childIndex
	}
}

// countDistinct counts how many distinct actions (by equality) legal
// contains, since a game may list duplicate actions the way
// search_allocation pads a thread's assignment.
func countDistinct(legal []Action) int {
	seen := make(map[Action]bool, len(legal))
	for _, a := range legal {
		seen[a] = true
	}
	return len(seen)
}

// expand applies one untried legal action from node, creating and
// attaching a new child. Returns (0, false) if every legal action already
// has a child.
func expand(graph *SearchGraph, node int, rng *rand.Rand) (int, bool) {
	state := graph.Nodes[node].State
	player := state.Status().CurrentTurn
	legal := state.LegalActions(player)

	var untried []Action
	for _, a := range legal {
		if _, tried := graph.Nodes[node].TriedActions[a]; !tried {
			untried = append(untried, a)
		}
	}
	if len(untried) == 0 {
		return 0, false
	}

	action := untried[rng.Intn(len(untried))]
	child := state.MakeCopy()
	if err := child.ExecuteAction(player, action); err != nil {
		return 0, false
	}
	childNode := &SearchNode{State: child, PlayerWhoActed: player, TriedActions: make(map[Action]int)}
	return graph.addChild(node, action, childNode), true
}

// simulate plays out state to a terminal position using RandomAction, on a
// throwaway copy, and returns the reward it yields for agent.
func simulate(state GameStateNode, agent Player, rng *rand.Rand) float64 {
	playout := state.MakeCopy()
	for {
		status := playout.Status()
		if status.Over {
			return rewardFor(status, agent)
		}
		action, ok := playout.RandomAction(status.CurrentTurn)
		if !ok {
			// No legal action: treat as a draw rather than loop forever.
			return 0.5
		}
		if err := playout.ExecuteAction(status.CurrentTurn, action); err != nil {
			return 0.5
		}
	}
}

// rewardFor scores a terminal status from agent's perspective: 1 for a win,
// 0 for a loss, 0.5 for a draw (spec.md 4.F).
func rewardFor(status Status, agent Player) float64 {
	if status.Winner == nil {
		return 0.5
	}
	if *status.Winner == agent {
		return 1
	}
	return 0
}

// backpropagate increments visit counts and adds reward along every node in
// path, in order from root to leaf. reward is scored for agent; a node whose
// PlayerWhoActed is the other player is credited 1-reward instead.
func backpropagate(graph *SearchGraph, path []int, reward float64, agent Player) {
	for _, index := range path {
		node := graph.Nodes[index]
		node.VisitCount++
		if node.PlayerWhoActed == agent {
			node.TotalReward += reward
		} else {
			node.TotalReward += 1 - reward
		}
	}
}

// SelectChild picks one of node's already-expanded children: under
// Exploration, the UCB1-maximizing child (ties broken uniformly at
// random); under RewardOnly, the child with the highest average reward.
// Returns (nil, false) if node has no expanded children.
func SelectChild(graph *SearchGraph, node int, mode SelectionMode, rng *rand.Rand) (Action, bool) {
	edges := graph.Edges[node]
	if len(edges) == 0 {
		return nil, false
	}

	parentVisits := graph.Nodes[node].VisitCount
	var best []SearchEdge
	bestScore := math.Inf(-1)

	for _, edge := range edges {
		child := graph.Nodes[edge.Child]
		score := ucbScore(child, parentVisits, mode)
		if score > bestScore {
			bestScore = score
			best = []SearchEdge{edge}
		} else if score == bestScore {
			best = append(best, edge)
		}
	}

	chosen := best[rng.Intn(len(best))]
	return chosen.Action, true
}

func ucbScore(child *SearchNode, parentVisits int, mode SelectionMode) float64 {
	if child.VisitCount == 0 {
		return math.Inf(1)
	}
	exploitation := child.TotalReward / float64(child.VisitCount)
	if mode == RewardOnly {
		return exploitation
	}
	exploration := ExplorationConstant * math.Sqrt(math.Log(float64(parentVisits))/float64(child.VisitCount))
	return exploitation + exploration
}
