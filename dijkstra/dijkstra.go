package dijkstra

import (
	"fmt"
	"math"

	"github.com/graphlite/graphlite/graph"
	"github.com/graphlite/graphlite/minheap"
)

// ShortestPath computes the minimum total edge weight from start to end over
// g, a weighted directed graph with non-negative edge weights.
//
// Returns:
//
//   - the shortest distance (≥ 0) when end is reachable from start;
//     0 when start == end, even on a graph with no edges.
//   - Unreachable (-1) when no path exists; a regular result, not an error.
//   - ErrNilGraph / ErrNodeOutOfRange for invalid inputs.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func ShortestPath(g Graph, start, end int) (float64, error) {
	// 1) Validate the graph handle.
	if g == nil {
		return 0, ErrNilGraph
	}

	// 2) Validate both endpoints against the fixed node range.
	nodeCount := g.Size()
	if start < 0 || start >= nodeCount || end < 0 || end >= nodeCount {
		return 0, fmt.Errorf("%w: start=%d end=%d with %d nodes", ErrNodeOutOfRange, start, end, nodeCount)
	}

	// 3) Build the per-invocation working state. Nothing here is shared
	//    across calls, so concurrent queries over an immutable store are safe.
	r, err := newRunner(g, nodeCount)
	if err != nil {
		return 0, err
	}

	// 4) Seed the search: distance to start is zero, everything else +Inf.
	r.init(start)

	// 5) Run the main extraction/relaxation loop until end is finalized or
	//    the queue drains.
	return r.process(end), nil
}

// runner holds the mutable state of a single ShortestPath execution.
type runner struct {
	g         Graph                   // read-only adjacency source
	dist      []float64               // dist[v] = best known distance from start; +Inf if unreached
	finalized []bool                  // finalized[v] = true once dist[v] is provably minimal
	pq        *minheap.Heap[nodeDist] // min-heap of (node, distance) entries, lazy deletion
}

// newRunner allocates the distance array, finalized flags, and the heap.
func newRunner(g Graph, nodeCount int) (*runner, error) {
	// Start the heap at V slots: the common case never outgrows it, and the
	// heap doubles on its own under heavy duplicate pressure.
	pq, err := minheap.New(byDist, minheap.WithCapacity(nodeCount))
	if err != nil {
		return nil, err
	}

	return &runner{
		g:         g,
		dist:      make([]float64, nodeCount),
		finalized: make([]bool, nodeCount),
		pq:        pq,
	}, nil
}

// init sets every tentative distance to the +Inf "unreached" sentinel except
// the start's, which is zero, and queues the start entry.
func (r *runner) init(start int) {
	unreached := math.Inf(1)
	var v int
	for v = range r.dist {
		r.dist[v] = unreached
	}
	r.dist[start] = 0

	r.pq.Push(nodeDist{node: start, dist: 0})
}

// process is the core loop: repeatedly extract the queued entry with the
// smallest tentative distance, finalize it, and relax its outgoing edges.
// It returns the shortest distance to end, or Unreachable.
func (r *runner) process(end int) float64 {
	var entry nodeDist
	var ok bool
	for {
		// 1) Extract the minimum-distance entry; an empty queue means every
		//    node reachable from start has been finalized.
		if entry, ok = r.pq.Pop(); !ok {
			break
		}

		// 2) Discard stale duplicates left behind by lazy deletion: if the
		//    node was finalized via an earlier (smaller) entry, this one
		//    carries an obsolete distance.
		if r.finalized[entry.node] {
			continue
		}

		// 3) Finalize: entry.dist is now provably minimal for this node,
		//    since all other queue entries are ≥ it and weights are ≥ 0.
		r.finalized[entry.node] = true

		// 4) Early exit the moment the target is finalized: no shorter
		//    path to it can still be discovered.
		if entry.node == end {
			return entry.dist
		}

		// 5) Relax every outgoing edge of the freshly finalized node.
		r.relax(entry.node, entry.dist)
	}

	// The loop drained without finalizing end, so end is unreachable from
	// start. The dist lookup is kept (rather than returning Unreachable
	// unconditionally) to mirror the finalized-distance bookkeeping; with the
	// early exit above it can only ever observe +Inf here.
	if math.IsInf(r.dist[end], 1) {
		return Unreachable
	}

	return r.dist[end]
}

// relax attempts to improve the tentative distance of every neighbor of node
// u, whose own distance d is already final. Each improvement pushes a fresh
// heap entry; stale duplicates are filtered in process.
func (r *runner) relax(u int, d float64) {
	var e graph.Edge
	var candidate float64
	for _, e = range r.g.Neighbors(u) {
		// A finalized neighbor already holds its minimal distance.
		if r.finalized[e.To] {
			continue
		}

		// Candidate path: start → … → u → e.To.
		candidate = d + e.Weight
		if candidate >= r.dist[e.To] {
			continue // not an improvement
		}

		r.dist[e.To] = candidate
		r.pq.Push(nodeDist{node: e.To, dist: candidate})
	}
}
