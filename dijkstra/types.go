// Package dijkstra: the adjacency contract consumed by the engine, result
// sentinels, and sentinel errors.
package dijkstra

import (
	"errors"

	"github.com/graphlite/graphlite/graph"
)

// Unreachable is returned by ShortestPath when no path from start reaches
// end. It is a regular, defined result, not an error, and is distinguishable
// from every legitimate distance, which is always ≥ 0.
const Unreachable = -1.0

// Sentinel errors returned by ShortestPath.
var (
	// ErrNilGraph indicates a nil graph handle was passed to ShortestPath.
	ErrNilGraph = errors.New("dijkstra: graph is nil")
	// ErrNodeOutOfRange indicates start or end lies outside [0, g.Size()).
	ErrNodeOutOfRange = errors.New("dijkstra: node index out of range")
)

// Graph is the read-only adjacency contract the engine requires. Both
// graph.AdjacencyList and graph.AdjacencyMatrix satisfy it, so either store
// can back the engine without code changes.
//
// Neighbors must return a snapshot of node's outgoing edges (order is
// irrelevant to the algorithm) and must return empty, never an error, for nodes
// without outgoing edges.
type Graph interface {
	// Size returns the fixed node count; valid nodes are [0, Size()).
	Size() int
	// Neighbors returns node's outgoing edges as (destination, weight) pairs.
	Neighbors(node int) []graph.Edge
}

// nodeDist is a priority-queue entry: a node and its tentative distance from
// the start at the time it was pushed. Entries are ordered by distance alone;
// ties extract in unspecified order.
type nodeDist struct {
	node int     // node index
	dist float64 // tentative distance from start when pushed
}

// byDist orders queue entries by ascending tentative distance.
func byDist(a, b nodeDist) bool { return a.dist < b.dist }
