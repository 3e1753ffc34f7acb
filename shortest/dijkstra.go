package shortest

import (
	"container/heap"
	"fmt"
	"sort"

	"github.com/rsolonenko/graphkit/core"
)

// nodeItem is one priority-queue entry: a vertex and the tentative
// distance it was pushed with. Lazy decrease-key means a vertex may have
// several live entries; only the first pop counts.
type nodeItem struct {
	id   string
	dist int64
}

// nodePQ is a min-heap of nodeItem ordered by dist.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return item
}

// Dijkstra computes shortest paths from source over non-negative edge
// weights. With WithTarget it stops as soon as the target is finalized;
// the returned Tree then covers at least every vertex closer than the
// target. A negative edge anywhere in the graph yields ErrNegativeWeight.
func Dijkstra(s core.Store, source string, opts ...Option) (*Tree, error) {
	if s == nil {
		return nil, ErrStoreNil
	}
	if !s.HasVertex(source) {
		return nil, fmt.Errorf("%w: %q", ErrSourceNotFound, source)
	}
	o := buildOptions(opts)
	if o.Target != "" && !s.HasVertex(o.Target) {
		return nil, fmt.Errorf("%w: %q", ErrTargetNotFound, o.Target)
	}
	vertices := s.Vertices()
	if err := checkNonNegative(s, vertices); err != nil {
		return nil, err
	}

	tree := newTree(source, vertices)
	visited := make(map[string]bool, len(vertices))

	pq := &nodePQ{{id: source, dist: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		item := heap.Pop(pq).(*nodeItem)
		u := item.id
		if visited[u] {
			continue // stale entry, already finalized at a smaller distance
		}
		visited[u] = true
		if o.Target != "" && u == o.Target {
			break
		}
		for _, nb := range sortedNeighbors(s, u) {
			if visited[nb.ID] {
				continue
			}
			nd := tree.Dist[u] + nb.Weight
			if nd < tree.Dist[nb.ID] {
				tree.Dist[nb.ID] = nd
				tree.Prev[nb.ID] = u
				heap.Push(pq, &nodeItem{id: nb.ID, dist: nd})
			}
		}
	}
	return tree, nil
}

// checkNonNegative fails fast on the first negative edge so callers get a
// clear error instead of silently wrong distances.
func checkNonNegative(s core.Store, vertices []string) error {
	for _, u := range vertices {
		for _, nb := range s.Neighbors(u) {
			if nb.Weight < 0 {
				return fmt.Errorf("%w: %q->%q (%d)", ErrNegativeWeight, u, nb.ID, nb.Weight)
			}
		}
	}
	return nil
}

// sortedNeighbors returns the neighbor snapshot of v ordered by ID, so
// equal-distance ties resolve the same way on every run and backend.
func sortedNeighbors(s core.Store, v string) []core.Neighbor {
	nbs := s.Neighbors(v)
	sort.Slice(nbs, func(i, j int) bool { return nbs[i].ID < nbs[j].ID })
	return nbs
}
