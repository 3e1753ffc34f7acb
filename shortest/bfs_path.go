package shortest

import (
	"fmt"

	"github.com/rsolonenko/graphkit/core"
)

// BFSPath returns a path from start to end with the minimum number of
// edges, treating every edge as unit weight regardless of stored weights.
// The breadth-first frontier guarantees hop-count minimality. An
// unreachable end yields an empty path and no error; start == end yields
// the single-vertex path.
func BFSPath(s core.Store, start, end string) ([]string, error) {
	if s == nil {
		return nil, ErrStoreNil
	}
	if !s.HasVertex(start) {
		return nil, fmt.Errorf("%w: %q", ErrSourceNotFound, start)
	}
	if !s.HasVertex(end) {
		return nil, fmt.Errorf("%w: %q", ErrTargetNotFound, end)
	}
	if start == end {
		return []string{start}, nil
	}

	prev := make(map[string]string)
	visited := map[string]bool{start: true}
	queue := []string{start}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, nb := range sortedNeighbors(s, u) {
			if visited[nb.ID] {
				continue
			}
			visited[nb.ID] = true
			prev[nb.ID] = u
			if nb.ID == end {
				return ReconstructPath(prev, start, end), nil
			}
			queue = append(queue, nb.ID)
		}
	}
	return []string{}, nil
}
