// Package graph provides in-memory stores for weighted directed graphs over
// dense integer node identifiers in [0, nodeCount).
//
// Two interchangeable representations are offered:
//
//   - AdjacencyList — sparse map-based storage; O(1) amortized edge lookup,
//     O(deg) neighbor iteration, O(V + E) space. The default choice.
//   - AdjacencyMatrix — dense 2D storage; O(1) edge lookup, O(V) neighbor
//     iteration, O(V²) space. Preferable only for very dense graphs.
//
// Both expose the same mutation and query surface (AddEdge, Weight, HasEdge,
// Neighbors, Degree, RemoveEdge, Size), so either can back the shortest-path
// engine in package dijkstra without code changes.
//
// Semantics shared by both stores:
//
//   - Node count is fixed at construction and positive for the store's
//     lifetime; nodes are never added or removed afterwards.
//   - Edges are directed: AddEdge(a, b, w) says nothing about b→a.
//   - Edge weights are non-negative; self-loops are rejected.
//   - Re-adding an existing (source, destination) pair overwrites the stored
//     weight (last write wins; no multi-edges).
//   - Absent edges and out-of-range queries read as +Inf via Weight, false
//     via HasEdge, and empty via Neighbors; reads never fail.
//
// Error handling (sentinel):
//
//   - ErrNonPositiveNodeCount — constructor called with nodeCount ≤ 0.
//   - ErrNodeOutOfRange       — a mutation names a node outside [0, Size()).
//   - ErrSelfLoop             — AddEdge with source == destination.
//   - ErrNegativeWeight       — AddEdge with weight < 0.
//
// A rejected mutation leaves the store exactly as it was.
//
// Thread safety: stores are not synchronized. Concurrent reads are safe only
// while no mutation is in flight; synchronize externally otherwise.
package graph
