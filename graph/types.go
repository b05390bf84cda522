// Package graph: domain types, constants, and sentinel errors shared by the
// AdjacencyList and AdjacencyMatrix stores.
package graph

import (
	"errors"
	"math"
)

// DefaultEdgeWeight is the weight assigned by AddUnweightedEdge.
const DefaultEdgeWeight = 1.0

// Sentinel errors for graph construction and mutation.
var (
	// ErrNonPositiveNodeCount indicates a constructor received nodeCount ≤ 0.
	ErrNonPositiveNodeCount = errors.New("graph: node count must be positive")
	// ErrNodeOutOfRange indicates a node index outside [0, Size()).
	ErrNodeOutOfRange = errors.New("graph: node index out of range")
	// ErrSelfLoop indicates an attempt to add an edge from a node to itself.
	ErrSelfLoop = errors.New("graph: self-loops are not allowed")
	// ErrNegativeWeight indicates an attempt to add an edge with weight < 0.
	ErrNegativeWeight = errors.New("graph: edge weight must be non-negative")
)

// Edge is an outgoing adjacency entry: the destination node and the weight of
// the connection leading to it. The source node is implied by the query.
type Edge struct {
	To     int     // destination node index
	Weight float64 // non-negative edge weight
}

// noEdge is the sentinel weight reported for absent edges. +Inf can never
// arise from summing legitimate non-negative finite weights, and it preserves
// comparison semantics: w < noEdge() holds for every stored weight w.
func noEdge() float64 { return math.Inf(1) }
