package search

// Extract performs a DFS from root's child reached by action, copying the
// reachable subgraph into a freshly indexed graph and returning it along
// with the new root index, so a subsequent search can amortize the prior
// rollouts spent below that child (spec.md 4.F: "subtree reuse"). Returns
// (nil, 0, false) if action was never expanded at root.
func Extract(graph *SearchGraph, root int, action Action) (*SearchGraph, int, bool) {
	oldRootOfSubtree, ok := graph.Nodes[root].TriedActions[action]
	if !ok {
		return nil, 0, false
	}

	newGraph := &SearchGraph{Edges: make(map[int][]SearchEdge)}
	remap := make(map[int]int)
	newRoot := copySubtree(graph, oldRootOfSubtree, newGraph, remap)
	return newGraph, newRoot, true
}

// copySubtree recursively copies the node at oldIndex (and everything
// reachable from it) from src into dst, returning the node's new index.
// remap memoizes old-to-new indices so a DAG-shaped region (none occur in
// practice, since UCT trees are strict trees, but the guard is cheap) is
// never copied twice.
func copySubtree(src *SearchGraph, oldIndex int, dst *SearchGraph, remap map[int]int) int {
	if newIndex, ok := remap[oldIndex]; ok {
		return newIndex
	}

	oldNode := src.Nodes[oldIndex]
	newNode := &SearchNode{
		State:          oldNode.State,
		PlayerWhoActed: oldNode.PlayerWhoActed,
		TotalReward:    oldNode.TotalReward,
		VisitCount:     oldNode.VisitCount,
		TriedActions:   make(map[Action]int, len(oldNode.TriedActions)),
	}
	newIndex := len(dst.Nodes)
	dst.Nodes = append(dst.Nodes, newNode)
	remap[oldIndex] = newIndex

	for _, edge := range src.Edges[oldIndex] {
		childNewIndex := copySubtree(src, edge.Child, dst, remap)
		newNode.TriedActions[edge.Action] = childNewIndex
		dst.Edges[newIndex] = append(dst.Edges[newIndex], SearchEdge{Action: edge.Action, Child: childNewIndex})
	}

	return newIndex
}
