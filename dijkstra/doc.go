// Package dijkstra implements Dijkstra's shortest-path algorithm between two
// nodes of a weighted directed graph with non-negative edge weights.
//
// Overview:
//
//   - ShortestPath computes the minimum total edge weight from a start node
//     to an end node, expanding nodes in order of increasing distance via a
//     binary min-heap and relaxing their outgoing edges.
//   - The engine consumes any store exposing Size and Neighbors; both
//     graph.AdjacencyList and graph.AdjacencyMatrix qualify.
//   - It returns as soon as the end node's distance is finalized: every
//     remaining queue entry carries a distance at least as large, and weights
//     are non-negative, so no shorter path can still appear (early exit).
//
// Lazy deletion:
//
//	The plain array heap has no efficient decrease-key, so a relaxation that
//	improves a node's tentative distance simply pushes a fresh (node,
//	distance) entry. Stale duplicates remain queued and are discarded on
//	extraction by checking the node's finalized flag. This is a deliberate
//	simplicity trade-off; it keeps every heap operation O(log N) with
//	N ≤ V + E.
//
// Results:
//
//   - A non-negative distance on success; 0 when start == end.
//   - Unreachable (-1) when no path exists; a regular result, not an error.
//
// Error handling (sentinel):
//
//   - ErrNilGraph       — the graph handle is nil.
//   - ErrNodeOutOfRange — start or end ∉ [0, g.Size()).
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Each node is finalized at most once: V extractions do real work.
//   - Each edge relaxation may push one entry: up to E pushes.
//   - Each heap operation costs O(log N), N ≤ V + E, simplified to O(log V).
//   - Space: O(V + E)
//   - O(V) for the distance and finalized arrays.
//   - O(E) worst-case heap entries under lazy deletion.
//
// Thread safety: ShortestPath allocates all working state per call, so
// concurrent invocations over the same store are safe as long as the store
// itself is not mutated meanwhile.
package dijkstra
