package shortest

import (
	"fmt"

	"github.com/rsolonenko/graphkit/core"
)

// BellmanFord computes shortest paths from source, allowing negative edge
// weights. It runs up to |V|−1 relaxation rounds, exiting early when a
// round improves nothing, then performs one extra round: any improvement
// there proves a negative-weight cycle reachable from source, reported
// through the bool. When that flag is true the Tree's distances and
// predecessors are unreliable and must not be used.
func BellmanFord(s core.Store, source string) (*Tree, bool, error) {
	if s == nil {
		return nil, false, ErrStoreNil
	}
	if !s.HasVertex(source) {
		return nil, false, fmt.Errorf("%w: %q", ErrSourceNotFound, source)
	}
	vertices := s.Vertices()
	tree := newTree(source, vertices)

	for round := 0; round < len(vertices)-1; round++ {
		if !relaxAll(s, vertices, tree) {
			return tree, false, nil // settled early, no cycle possible
		}
	}
	// Detection round: a further improvement means some cycle with
	// negative total weight keeps shrinking distances forever.
	if relaxAll(s, vertices, tree) {
		return tree, true, nil
	}
	return tree, false, nil
}

// relaxAll relaxes every edge once, in vertex insertion order with
// neighbors sorted by ID, and reports whether anything improved.
func relaxAll(s core.Store, vertices []string, tree *Tree) bool {
	updated := false
	for _, u := range vertices {
		du := tree.Dist[u]
		if du == Unreachable {
			continue
		}
		for _, nb := range sortedNeighbors(s, u) {
			if nd := du + nb.Weight; nd < tree.Dist[nb.ID] {
				tree.Dist[nb.ID] = nd
				tree.Prev[nb.ID] = u
				updated = true
			}
		}
	}
	return updated
}
