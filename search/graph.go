package search

// SelectionMode chooses how Search picks among a node's children: standard
// UCB1 during search itself, or a pure-exploitation pick once the search
// budget is spent and a final move must be committed (spec.md 4.F).
type SelectionMode int

const (
	// Exploration applies the UCB1 formula, balancing exploitation of a
	// child's known reward against exploring children visited less often.
	Exploration SelectionMode = iota

	// RewardOnly ignores the exploration term entirely and picks the child
	// with the highest average reward — the selection policy used once to
	// commit to a final move.
	RewardOnly
)

// SearchNode is one position in the UCT tree: the state reached by the path
// of edges from the root, how many times it was visited, the accumulated
// reward backpropagated through it, and which of its legal actions have
// already been expanded into children.
type SearchNode struct {
	State GameStateNode

	// PlayerWhoActed is the player whose action produced this node from its
	// parent (the root has no parent; NewSearchGraph sets it from its
	// playerWhoActed argument).
	// Reward is always interpreted relative to this player, matching UCT's
	// convention of scoring a node from its acting player's perspective.
	PlayerWhoActed Player

	TotalReward float64
	VisitCount  int

	// TriedActions maps an action (compared by equality, as action.go's
	// BattleAction variants are — see node.go's Action doc comment) to the
	// index in SearchGraph.Nodes of the child it leads to, recording which
	// of this node's legal actions already have a child.
	TriedActions map[Action]int
}

// SearchEdge is one expanded transition: the action taken and the child
// node it led to.
type SearchEdge struct {
	Action Action
	Child  int // index into SearchGraph.Nodes
}

// SearchGraph is the UCT tree itself: a flat slice of nodes plus, per node,
// the edges expanded from it so far. Represented as a graph rather than a
// recursive node/child-pointer structure so Extract can copy a reachable
// subgraph by index without reestablishing parent back-references.
type SearchGraph struct {
	Nodes []*SearchNode
	Edges map[int][]SearchEdge // keyed by node index
}

// NewSearchGraph builds a graph containing only the given root state.
func NewSearchGraph(root GameStateNode, playerWhoActed Player) (*SearchGraph, int) {
	g := &SearchGraph{
		Edges: make(map[int][]SearchEdge),
	}
	node := &SearchNode{State: root, PlayerWhoActed: playerWhoActed, TriedActions: make(map[Action]int)}
	g.Nodes = append(g.Nodes, node)
	return g, 0
}

// addChild appends a new node to the graph and records the edge expanding
// parent via action, returning the new node's index.
func (g *SearchGraph) addChild(parent int, action Action, child *SearchNode) int {
	childIndex := len(g.Nodes)
	g.Nodes = append(g.Nodes, child)
	g.Edges[parent] = append(g.Edges[parent], SearchEdge{Action: action, Child: childIndex})
	g.Nodes[parent].TriedActions[action] = childIndex
	return childIndex
}

// childIndices returns the node indices reachable from parent by one edge.
func (g *SearchGraph) childIndices(parent int) []int {
	edges := g.Edges[parent]
	out := make([]int, len(edges))
	for i, e := range edges {
		out[i] = e.Child
	}
	return out
}
