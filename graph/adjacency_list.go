package graph

import (
	"fmt"
	"sort"
	"strings"
)

// AdjacencyList is a sparse store for a weighted directed graph over the
// fixed node set [0, nodeCount). Outgoing edges of node u live in out[u],
// keyed by destination, so edge lookup is O(1) amortized and neighbor
// iteration is O(deg(u)).
//
// Zero value is not usable; construct via NewAdjacencyList.
type AdjacencyList struct {
	out       []map[int]float64 // out[u] maps destination → weight
	nodeCount int               // fixed, positive
}

// NewAdjacencyList creates an empty adjacency-list store for nodeCount nodes.
// Every node starts with zero outgoing edges.
//
// Returns ErrNonPositiveNodeCount if nodeCount ≤ 0.
// Complexity: O(V), one empty bucket per node.
func NewAdjacencyList(nodeCount int) (*AdjacencyList, error) {
	// 1) Validate the node count; the node set is fixed for the store's lifetime.
	if nodeCount <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNonPositiveNodeCount, nodeCount)
	}

	// 2) Pre-allocate one adjacency bucket per node so that every node index
	//    in [0, nodeCount) is addressable without further checks.
	out := make([]map[int]float64, nodeCount)
	var i int
	for i = 0; i < nodeCount; i++ {
		out[i] = make(map[int]float64)
	}

	return &AdjacencyList{out: out, nodeCount: nodeCount}, nil
}

// AddEdge inserts or overwrites the directed edge source→destination with the
// given weight (last write wins; no multi-edges).
//
// Returns ErrNodeOutOfRange if source or destination ∉ [0, Size()),
// ErrSelfLoop if source == destination, ErrNegativeWeight if weight < 0.
// A rejected call leaves the store unchanged.
// Complexity: O(1) amortized.
func (a *AdjacencyList) AddEdge(source, destination int, weight float64) error {
	// 1) Validate both endpoints before touching any state.
	if !a.inRange(source) || !a.inRange(destination) {
		return fmt.Errorf("%w: edge %d→%d with %d nodes", ErrNodeOutOfRange, source, destination, a.nodeCount)
	}

	// 2) Reject self-loops; a zero-length cycle never shortens any path.
	if source == destination {
		return fmt.Errorf("%w: node %d", ErrSelfLoop, source)
	}

	// 3) Reject negative weights; the shortest-path engine's correctness
	//    argument requires every weight to be ≥ 0.
	if weight < 0 {
		return fmt.Errorf("%w: edge %d→%d weight=%v", ErrNegativeWeight, source, destination, weight)
	}

	// 4) Insert or overwrite the entry.
	a.out[source][destination] = weight

	return nil
}

// AddUnweightedEdge inserts or overwrites the directed edge
// source→destination with DefaultEdgeWeight (1). Validation matches AddEdge.
func (a *AdjacencyList) AddUnweightedEdge(source, destination int) error {
	return a.AddEdge(source, destination, DefaultEdgeWeight)
}

// Weight returns the stored weight of source→destination, or +Inf if either
// index is out of range or no such edge exists. Never fails.
// Complexity: O(1) amortized.
func (a *AdjacencyList) Weight(source, destination int) float64 {
	if !a.inRange(source) || !a.inRange(destination) {
		return noEdge()
	}
	w, ok := a.out[source][destination]
	if !ok {
		return noEdge()
	}

	return w
}

// HasEdge reports whether the directed edge source→destination is stored.
// False for out-of-range indices. Never fails.
// Complexity: O(1) amortized.
func (a *AdjacencyList) HasEdge(source, destination int) bool {
	if !a.inRange(source) || !a.inRange(destination) {
		return false
	}
	_, ok := a.out[source][destination]

	return ok
}

// Neighbors returns a snapshot of node's outgoing edges in unspecified order.
// The slice is freshly allocated on each call: later mutations of the store
// are not reflected in it, and callers may retain or reorder it freely.
// Empty for an out-of-range node or a node with no outgoing edges.
// Complexity: O(deg(node)).
func (a *AdjacencyList) Neighbors(node int) []Edge {
	if !a.inRange(node) {
		return nil
	}

	edges := make([]Edge, 0, len(a.out[node]))
	var to int
	var w float64
	for to, w = range a.out[node] {
		edges = append(edges, Edge{To: to, Weight: w})
	}

	return edges
}

// Degree returns the number of outgoing edges of node; 0 for an out-of-range
// node. Complexity: O(1).
func (a *AdjacencyList) Degree(node int) int {
	if !a.inRange(node) {
		return 0
	}

	return len(a.out[node])
}

// RemoveEdge deletes the directed edge source→destination if present.
// Out-of-range indices and absent edges are a no-op, not a failure.
// Complexity: O(1) amortized.
func (a *AdjacencyList) RemoveEdge(source, destination int) {
	if !a.inRange(source) || !a.inRange(destination) {
		return
	}
	delete(a.out[source], destination)
}

// Size returns the fixed node count.
func (a *AdjacencyList) Size() int { return a.nodeCount }

// String renders the store one node per line, destinations sorted ascending
// for stable output. Intended for debugging and examples only.
func (a *AdjacencyList) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "AdjacencyList (%d nodes):\n", a.nodeCount)
	var u int
	for u = 0; u < a.nodeCount; u++ {
		fmt.Fprintf(&sb, "Node %d: ", u)
		if len(a.out[u]) == 0 {
			sb.WriteString("(no outgoing edges)\n")
			continue
		}

		// Map iteration order is random; sort destinations for readability.
		dests := make([]int, 0, len(a.out[u]))
		for to := range a.out[u] {
			dests = append(dests, to)
		}
		sort.Ints(dests)

		parts := make([]string, len(dests))
		for i, to := range dests {
			parts[i] = fmt.Sprintf("%d(%g)", to, a.out[u][to])
		}
		sb.WriteString(strings.Join(parts, ", "))
		sb.WriteByte('\n')
	}

	return sb.String()
}

// inRange reports whether node is a valid index in [0, nodeCount).
func (a *AdjacencyList) inRange(node int) bool {
	return node >= 0 && node < a.nodeCount
}
