// Package graph_test: shared helpers exercising the mutation/query surface
// that both stores implement identically.
package graph_test

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphlite/graphlite/graph"
)

// store is the common surface of AdjacencyList and AdjacencyMatrix. Both
// representations must behave identically through it, so the shared suite
// below runs against each.
type store interface {
	AddEdge(source, destination int, weight float64) error
	AddUnweightedEdge(source, destination int) error
	Weight(source, destination int) float64
	HasEdge(source, destination int) bool
	Neighbors(node int) []graph.Edge
	Degree(node int) int
	RemoveEdge(source, destination int)
	Size() int
}

// sortedNeighbors returns node's snapshot sorted by destination so tests can
// compare without depending on iteration order.
func sortedNeighbors(s store, node int) []graph.Edge {
	edges := s.Neighbors(node)
	sort.Slice(edges, func(i, j int) bool { return edges[i].To < edges[j].To })

	return edges
}

// runStoreSuite runs the representation-independent behavior checks against a
// fresh 5-node store produced by newStore.
func runStoreSuite(t *testing.T, newStore func(nodeCount int) (store, error)) {
	t.Helper()

	t.Run("ConstructorRejectsNonPositiveCount", func(t *testing.T) {
		for _, n := range []int{0, -1, -100} {
			_, err := newStore(n)
			require.ErrorIs(t, err, graph.ErrNonPositiveNodeCount, "nodeCount=%d", n)
		}
	})

	t.Run("FreshStoreIsEmpty", func(t *testing.T) {
		s, err := newStore(5)
		require.NoError(t, err)
		assert.Equal(t, 5, s.Size())
		for v := 0; v < 5; v++ {
			assert.Zero(t, s.Degree(v))
			assert.Empty(t, s.Neighbors(v))
		}
	})

	t.Run("AddEdgeValidation", func(t *testing.T) {
		s, err := newStore(5)
		require.NoError(t, err)

		// Out-of-range endpoints.
		assert.ErrorIs(t, s.AddEdge(-1, 2, 1), graph.ErrNodeOutOfRange)
		assert.ErrorIs(t, s.AddEdge(0, 5, 1), graph.ErrNodeOutOfRange)
		assert.ErrorIs(t, s.AddEdge(7, -2, 1), graph.ErrNodeOutOfRange)

		// Self-loops, at every node and any weight.
		for v := 0; v < 5; v++ {
			assert.ErrorIs(t, s.AddEdge(v, v, float64(v)), graph.ErrSelfLoop)
		}

		// Negative weight.
		assert.ErrorIs(t, s.AddEdge(0, 1, -0.5), graph.ErrNegativeWeight)

		// No partial mutation: every rejected call left the store untouched.
		for v := 0; v < 5; v++ {
			assert.Zero(t, s.Degree(v), "rejected AddEdge must not mutate")
		}
	})

	t.Run("Directedness", func(t *testing.T) {
		s, err := newStore(5)
		require.NoError(t, err)
		require.NoError(t, s.AddEdge(1, 3, 2.5))

		assert.True(t, s.HasEdge(1, 3))
		assert.False(t, s.HasEdge(3, 1), "a→b implies nothing about b→a")
		assert.Equal(t, 2.5, s.Weight(1, 3))
		assert.True(t, math.IsInf(s.Weight(3, 1), 1))
	})

	t.Run("OverwriteLastWriteWins", func(t *testing.T) {
		s, err := newStore(5)
		require.NoError(t, err)
		require.NoError(t, s.AddEdge(0, 1, 5))
		require.NoError(t, s.AddEdge(0, 1, 10))

		assert.Equal(t, 10.0, s.Weight(0, 1))
		assert.Equal(t, 1, s.Degree(0), "overwrite must not create a multi-edge")
	})

	t.Run("UnweightedEdgeDefaultsToOne", func(t *testing.T) {
		s, err := newStore(5)
		require.NoError(t, err)
		require.NoError(t, s.AddUnweightedEdge(2, 4))
		assert.Equal(t, graph.DefaultEdgeWeight, s.Weight(2, 4))
	})

	t.Run("ReadsNeverFail", func(t *testing.T) {
		s, err := newStore(5)
		require.NoError(t, err)

		// Out-of-range reads yield sentinels, not failures.
		assert.True(t, math.IsInf(s.Weight(-1, 0), 1))
		assert.True(t, math.IsInf(s.Weight(0, 99), 1))
		assert.False(t, s.HasEdge(-1, 0))
		assert.False(t, s.HasEdge(0, 99))
		assert.Empty(t, s.Neighbors(-3))
		assert.Empty(t, s.Neighbors(5))
		assert.Zero(t, s.Degree(-3))
		assert.Zero(t, s.Degree(5))
	})

	t.Run("NeighborsSnapshot", func(t *testing.T) {
		s, err := newStore(5)
		require.NoError(t, err)
		require.NoError(t, s.AddEdge(0, 1, 4))
		require.NoError(t, s.AddEdge(0, 2, 2))
		require.NoError(t, s.AddEdge(0, 3, 9))

		snap := sortedNeighbors(s, 0)
		require.Equal(t, []graph.Edge{{To: 1, Weight: 4}, {To: 2, Weight: 2}, {To: 3, Weight: 9}}, snap)

		// Mutating the store after the fact must not change the snapshot.
		s.RemoveEdge(0, 2)
		require.NoError(t, s.AddEdge(0, 4, 1))
		assert.Equal(t, []graph.Edge{{To: 1, Weight: 4}, {To: 2, Weight: 2}, {To: 3, Weight: 9}}, snap)
		assert.Equal(t, 3, s.Degree(0))
	})

	t.Run("RemoveEdge", func(t *testing.T) {
		s, err := newStore(5)
		require.NoError(t, err)
		require.NoError(t, s.AddEdge(2, 3, 7))

		s.RemoveEdge(2, 3)
		assert.False(t, s.HasEdge(2, 3))
		assert.Zero(t, s.Degree(2))
		assert.True(t, math.IsInf(s.Weight(2, 3), 1))

		// Absent edges and out-of-range indices are silent no-ops.
		s.RemoveEdge(2, 3)
		s.RemoveEdge(-1, 3)
		s.RemoveEdge(2, 42)
		assert.Equal(t, 5, s.Size())
	})
}
