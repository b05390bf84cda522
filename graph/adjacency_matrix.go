package graph

import (
	"fmt"
	"strings"
)

// AdjacencyMatrix is a dense store for a weighted directed graph over the
// fixed node set [0, nodeCount). cells[u][v] holds the weight of u→v, or +Inf
// when no such edge exists. Lookup is O(1); space is O(V²) regardless of edge
// count, so prefer AdjacencyList for sparse graphs.
//
// It exposes the same surface as AdjacencyList and satisfies the same
// adjacency interface, so the shortest-path engine accepts either store.
//
// Zero value is not usable; construct via NewAdjacencyMatrix.
type AdjacencyMatrix struct {
	cells     [][]float64 // cells[u][v] = weight of u→v, +Inf if absent
	degree    []int       // degree[u] = number of finite entries in row u
	nodeCount int         // fixed, positive
}

// NewAdjacencyMatrix creates an empty dense store for nodeCount nodes, every
// cell initialized to the +Inf "no edge" sentinel.
//
// Returns ErrNonPositiveNodeCount if nodeCount ≤ 0.
// Complexity: O(V²).
func NewAdjacencyMatrix(nodeCount int) (*AdjacencyMatrix, error) {
	// 1) Validate the node count; dimensions are fixed afterwards.
	if nodeCount <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNonPositiveNodeCount, nodeCount)
	}

	// 2) Allocate the full V×V grid up front and fill it with the sentinel.
	cells := make([][]float64, nodeCount)
	var u, v int
	for u = 0; u < nodeCount; u++ {
		cells[u] = make([]float64, nodeCount)
		for v = 0; v < nodeCount; v++ {
			cells[u][v] = noEdge()
		}
	}

	return &AdjacencyMatrix{
		cells:     cells,
		degree:    make([]int, nodeCount),
		nodeCount: nodeCount,
	}, nil
}

// AddEdge inserts or overwrites the directed edge source→destination with the
// given weight (last write wins; no multi-edges). Validation and error
// semantics match AdjacencyList.AddEdge. Complexity: O(1).
func (m *AdjacencyMatrix) AddEdge(source, destination int, weight float64) error {
	if !m.inRange(source) || !m.inRange(destination) {
		return fmt.Errorf("%w: edge %d→%d with %d nodes", ErrNodeOutOfRange, source, destination, m.nodeCount)
	}
	if source == destination {
		return fmt.Errorf("%w: node %d", ErrSelfLoop, source)
	}
	if weight < 0 {
		return fmt.Errorf("%w: edge %d→%d weight=%v", ErrNegativeWeight, source, destination, weight)
	}

	// Count the edge only on first insertion; overwrites keep the degree.
	if m.cells[source][destination] == noEdge() {
		m.degree[source]++
	}
	m.cells[source][destination] = weight

	return nil
}

// AddUnweightedEdge inserts or overwrites the directed edge
// source→destination with DefaultEdgeWeight (1). Validation matches AddEdge.
func (m *AdjacencyMatrix) AddUnweightedEdge(source, destination int) error {
	return m.AddEdge(source, destination, DefaultEdgeWeight)
}

// Weight returns the stored weight of source→destination, or +Inf if either
// index is out of range or no such edge exists. Never fails. Complexity: O(1).
func (m *AdjacencyMatrix) Weight(source, destination int) float64 {
	if !m.inRange(source) || !m.inRange(destination) {
		return noEdge()
	}

	return m.cells[source][destination]
}

// HasEdge reports whether the directed edge source→destination is stored.
// False for out-of-range indices. Never fails. Complexity: O(1).
func (m *AdjacencyMatrix) HasEdge(source, destination int) bool {
	if !m.inRange(source) || !m.inRange(destination) {
		return false
	}

	return m.cells[source][destination] != noEdge()
}

// Neighbors returns a snapshot of node's outgoing edges in ascending
// destination order (a full-row scan, O(V), unlike the list store's
// O(deg)). Empty for an out-of-range node or a node with no outgoing edges.
func (m *AdjacencyMatrix) Neighbors(node int) []Edge {
	if !m.inRange(node) {
		return nil
	}

	edges := make([]Edge, 0, m.degree[node])
	var v int
	for v = 0; v < m.nodeCount; v++ {
		if m.cells[node][v] != noEdge() {
			edges = append(edges, Edge{To: v, Weight: m.cells[node][v]})
		}
	}

	return edges
}

// Degree returns the number of outgoing edges of node; 0 for an out-of-range
// node. Complexity: O(1).
func (m *AdjacencyMatrix) Degree(node int) int {
	if !m.inRange(node) {
		return 0
	}

	return m.degree[node]
}

// RemoveEdge deletes the directed edge source→destination if present.
// Out-of-range indices and absent edges are a no-op, not a failure.
// Complexity: O(1).
func (m *AdjacencyMatrix) RemoveEdge(source, destination int) {
	if !m.inRange(source) || !m.inRange(destination) {
		return
	}
	if m.cells[source][destination] != noEdge() {
		m.cells[source][destination] = noEdge()
		m.degree[source]--
	}
}

// Size returns the fixed node count.
func (m *AdjacencyMatrix) Size() int { return m.nodeCount }

// String renders the matrix one row per line, "∞" marking absent edges.
// Intended for debugging and examples only.
func (m *AdjacencyMatrix) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "AdjacencyMatrix (%d nodes):\n", m.nodeCount)
	var u, v int
	for u = 0; u < m.nodeCount; u++ {
		parts := make([]string, m.nodeCount)
		for v = 0; v < m.nodeCount; v++ {
			if m.cells[u][v] == noEdge() {
				parts[v] = "∞"
				continue
			}
			parts[v] = fmt.Sprintf("%g", m.cells[u][v])
		}
		fmt.Fprintf(&sb, "Node %d: [%s]\n", u, strings.Join(parts, " "))
	}

	return sb.String()
}

// inRange reports whether node is a valid index in [0, nodeCount).
func (m *AdjacencyMatrix) inRange(node int) bool {
	return node >= 0 && node < m.nodeCount
}
