// Package traverse: breadth-first search.
package traverse

import (
	"fmt"

	"github.com/rsolonenko/graphkit/core"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// BFS performs breadth-first search on s from start, producing a
// level-order traversal. Vertices are marked visited when enqueued, not
// when dequeued, so no vertex enters the queue twice. Neighbors are
// explored in ascending lexicographic order, and Depth records the
// hop distance of every reached vertex.
//
// Returns ErrStoreNil or ErrStartVertexNotFound on invalid input, or any
// error returned by the OnVisit hook.
func BFS(s core.Store, start string, opts ...Option) (*Result, error) {
	if s == nil {
		return nil, ErrStoreNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if !s.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}

	n := s.VertexCount()
	res := newResult(n)
	visited := make(map[string]bool, n)
	queue := make([]queueItem, 0, n)

	visited[start] = true
	res.Depth[start] = 0
	queue = append(queue, queueItem{id: start})

	step := 0
	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		res.Order = append(res.Order, item.id)
		step++
		if err = o.OnVisit(item.id, step); err != nil {
			return res, fmt.Errorf("traverse: OnVisit at %q: %w", item.id, err)
		}

		for _, nbr := range sortedNeighbors(s, item.id, false) {
			if visited[nbr.ID] {
				continue
			}
			visited[nbr.ID] = true
			res.Depth[nbr.ID] = item.depth + 1
			res.Parent[nbr.ID] = item.id
			queue = append(queue, queueItem{id: nbr.ID, depth: item.depth + 1})
		}
	}

	return res, nil
}
