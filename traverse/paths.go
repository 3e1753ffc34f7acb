// Package traverse: exhaustive simple-path enumeration.
package traverse

import "github.com/rsolonenko/graphkit/core"

// pathFinder carries the shared state of the enumeration: the per-path
// visited set prevents revisiting a vertex within the same path while
// still allowing it on sibling paths.
type pathFinder struct {
	store    core.Store
	end      string
	maxPaths int
	path     []string
	onPath   map[string]bool
	found    [][]string
}

// FindAllPaths enumerates simple paths from start to end by exhaustive
// depth-first search, collecting complete paths in discovery order until
// the WithMaxPaths cap is hit (DefaultMaxPaths when unset, unbounded at 0).
//
// The search is exponential in general graphs; the cap is the caller's only
// control over runtime. Returns ErrStoreNil, ErrStartVertexNotFound, or
// ErrTargetVertexNotFound on invalid input. No path between present
// vertices is an empty result, not an error.
func FindAllPaths(s core.Store, start, end string, opts ...Option) ([][]string, error) {
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
	if !s.HasVertex(end) {
		return nil, ErrTargetVertexNotFound
	}

	pf := &pathFinder{
		store:    s,
		end:      end,
		maxPaths: o.MaxPaths,
		path:     []string{start},
		onPath:   map[string]bool{start: true},
	}
	pf.explore(start)

	return pf.found, nil
}

// explore extends the current path from v, backtracking after each branch.
func (pf *pathFinder) explore(v string) {
	if pf.maxPaths > 0 && len(pf.found) >= pf.maxPaths {
		return
	}
	if v == pf.end {
		complete := make([]string, len(pf.path))
		copy(complete, pf.path)
		pf.found = append(pf.found, complete)

		return
	}

	for _, nbr := range sortedNeighbors(pf.store, v, false) {
		if pf.onPath[nbr.ID] {
			continue
		}
		pf.onPath[nbr.ID] = true
		pf.path = append(pf.path, nbr.ID)

		pf.explore(nbr.ID)

		pf.path = pf.path[:len(pf.path)-1]
		pf.onPath[nbr.ID] = false
	}
}
