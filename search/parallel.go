package search

import (
	"math/rand"
	"sync"
)

// AllocateActions partitions legalActions evenly across threads root-level
// assignments for ParallelSearch, padding by duplication when there are
// fewer actions than threads (spec.md 4.F: "search_allocation(threads,
// legal_actions) partitions the set of root-level actions evenly across
// threads (padding by duplication when actions < threads)").
func AllocateActions(threads int, legalActions []Action) [][]Action {
	if threads <= 0 {
		threads = 1
	}
	if len(legalActions) == 0 {
		return make([][]Action, threads)
	}

	out := make([][]Action, threads)
	for i := 0; i < threads; i++ {
		out[i] = append(out[i], legalActions[i%len(legalActions)])
	}
	// Distribute any remaining actions (once every thread has its padded
	// share) round-robin across threads, so every action gets at least one
	// thread searching it exclusively when actions >= threads.
	for i := threads; i < len(legalActions); i++ {
		out[i%threads] = append(out[i%threads], legalActions[i])
	}
	return out
}

// ThreadResult is one action's merged rollout tally: total visits and
// total reward summed across every thread that searched it (spec.md 4.F:
// "results are merged by summing visit counts and rewards").
type ThreadResult struct {
	Visits  int
	Rewards float64
}

// ParallelSearch runs independent rollouts across threads goroutines, each
// restricted to its assigned partition of root's legal actions (via a
// fresh child graph rooted at the state reached by that action), then
// merges results by summing visit counts and rewards. Grounded on the
// worker-pool idiom in the retrieved darwindeck gosim/simulation parallel
// runner (channel-free here since each worker owns a disjoint action set
// rather than pulling from a shared job queue, but the same
// sync.WaitGroup fan-out/fan-in shape).
func ParallelSearch(root GameStateNode, agent Player, threads int, rolloutsPerThread int, seed int64) map[Action]ThreadResult {
	status := root.Status()
	legal := root.LegalActions(status.CurrentTurn)
	allocation := AllocateActions(threads, legal)

	results := make([]map[Action]ThreadResult, len(allocation))
	var wg sync.WaitGroup
	masterRng := rand.New(rand.NewSource(seed))

	for i, assigned := range allocation {
		if len(assigned) == 0 {
			continue
		}
		threadSeed := masterRng.Int63()
		wg.Add(1)
		go func(index int, actions []Action, workerSeed int64) {
			defer wg.Done()
			results[index] = searchAssignedActions(root, status.CurrentTurn, agent, actions, rolloutsPerThread, workerSeed)
		}(i, assigned, threadSeed)
	}
	wg.Wait()

	return mergeThreadResults(results)
}

// searchAssignedActions runs rolloutsPerThread rollouts for each action in
// actions, starting from the child state that action produces, and returns
// one ThreadResult per action.
func searchAssignedActions(root GameStateNode, actingPlayer Player, agent Player, actions []Action, rolloutsPerThread int, seed int64) map[Action]ThreadResult {
	rng := rand.New(rand.NewSource(seed))
	out := make(map[Action]ThreadResult, len(actions))

	for _, action := range actions {
		child := root.MakeCopy()
		if err := child.ExecuteAction(actingPlayer, action); err != nil {
			continue
		}
		graph, rootIndex := NewSearchGraph(child, actingPlayer)
		for i := 0; i < rolloutsPerThread; i++ {
			if graph.Nodes[rootIndex].State.Status().Over {
				break
			}
			Rollout(graph, rootIndex, agent, rng)
		}
		node := graph.Nodes[rootIndex]
		existing := out[action]
		existing.Visits += node.VisitCount
		existing.Rewards += node.TotalReward
		out[action] = existing
	}
	return out
}

// mergeThreadResults sums visit counts and rewards for each action across
// every worker's result map.
func mergeThreadResults(perThread []map[Action]ThreadResult) map[Action]ThreadResult {
	merged := make(map[Action]ThreadResult)
	for _, threadResults := range perThread {
		for action, result := range threadResults {
			existing := merged[action]
			existing.Visits += result.Visits
			existing.Rewards += result.Rewards
			merged[action] = existing
		}
	}
	return merged
}

// BestAction returns the action in results with the highest average reward,
// the merged-tree equivalent of SelectChild's RewardOnly mode.
func BestAction(results map[Action]ThreadResult) (Action, bool) {
	var best Action
	bestScore := -1.0
	found := false
	for action, result := range results {
		if result.Visits == 0 {
			continue
		}
		score := result.Rewards / float64(result.Visits)
		if !found || score > bestScore {
			best, bestScore, found = action, score, true
		}
	}
	return best, found
}
