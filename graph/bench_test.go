package graph_test

import (
	"math/rand"
	"testing"

	"github.com/graphlite/graphlite/graph"
)

// BenchmarkAdjacencyList_AddEdge measures sparse insertion throughput.
func BenchmarkAdjacencyList_AddEdge(b *testing.B) {
	const nodes = 1024
	g, _ := graph.NewAdjacencyList(nodes)
	r := rand.New(rand.NewSource(42))

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		u := r.Intn(nodes)
		v := r.Intn(nodes)
		if u == v {
			continue // self-loops are rejected; skip rather than measure the error path
		}
		_ = g.AddEdge(u, v, float64(r.Intn(100)))
	}
}

// BenchmarkNeighbors_ListVsMatrix contrasts O(deg) and O(V) iteration on a
// sparse graph: a ring with one extra chord per node.
func BenchmarkNeighbors_ListVsMatrix(b *testing.B) {
	const nodes = 1024
	l, _ := graph.NewAdjacencyList(nodes)
	m, _ := graph.NewAdjacencyMatrix(nodes)
	for u := 0; u < nodes; u++ {
		v := (u + 1) % nodes
		_ = l.AddEdge(u, v, 1)
		_ = m.AddEdge(u, v, 1)
		w := (u + 7) % nodes
		if w != u {
			_ = l.AddEdge(u, w, 2)
			_ = m.AddEdge(u, w, 2)
		}
	}

	b.Run("List", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = l.Neighbors(i % nodes)
		}
	})
	b.Run("Matrix", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = m.Neighbors(i % nodes)
		}
	})
}
