// Package graphlite is a compact toolkit for single-source shortest paths on
// weighted directed graphs with dense integer node identifiers.
//
// 🚀 What is graphlite?
//
//	A small, pure-Go library that brings together:
//		• Graph stores: sparse adjacency list & dense adjacency matrix
//		• A standalone generic binary min-heap priority queue
//		• Dijkstra's algorithm with lazy deletion and early exit
//
// ✨ Why choose graphlite?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Predictable guarantees – O((V+E) log V) Dijkstra, O(1) adjacency lookups
//   - Pure Go – no cgo, no hidden deps
//   - Composable – the engine consumes any store exposing Size/Neighbors
//
// Everything is organized under three subpackages:
//
//	graph/    — AdjacencyList & AdjacencyMatrix stores for directed weighted graphs
//	minheap/  — generic array-backed binary min-heap with explicit comparison
//	dijkstra/ — the shortest-path engine composing the two
//
// Quick ASCII example:
//
//	    0──4──1
//	    │     │
//	    2     5
//	    │     │
//	    2──8──3
//
//	g, _ := graph.NewAdjacencyList(6)
//	g.AddEdge(0, 1, 4)
//	...
//	dist, _ := dijkstra.ShortestPath(g, 0, 5)
//
// Start with graph.NewAdjacencyList, wire edges, and hand the store to
// dijkstra.ShortestPath. The minheap package is usable on its own for any
// totally ordered element type.
package graphlite
