// Package traverse: depth-first search, iterative and recursive forms.
package traverse

import (
	"fmt"

	"github.com/rsolonenko/graphkit/core"
)

// frame is one pending stack entry of the iterative DFS.
type frame struct {
	id     string
	parent string // empty for the start vertex
	depth  int
}

// DFS performs iterative depth-first search on s from start.
//
// The explicit stack is seeded with the start vertex. Each pop that finds
// an unvisited vertex marks it, records it in Order, and pushes its
// unvisited neighbors in descending lexicographic order — the stack
// reverses them, so the actual visit order is ascending and fully
// reproducible.
//
// Returns ErrStoreNil or ErrStartVertexNotFound on invalid input, or any
// error returned by the OnVisit hook.
func DFS(s core.Store, start string, opts ...Option) (*Result, error) {
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
	stack := make([]frame, 0, n)
	stack = append(stack, frame{id: start})

	step := 0
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[f.id] {
			continue // stale entry, already reached via a shorter branch
		}
		visited[f.id] = true
		res.Order = append(res.Order, f.id)
		res.Depth[f.id] = f.depth
		if f.parent != "" {
			res.Parent[f.id] = f.parent
		}
		step++
		if err = o.OnVisit(f.id, step); err != nil {
			return res, fmt.Errorf("traverse: OnVisit at %q: %w", f.id, err)
		}

		for _, nbr := range sortedNeighbors(s, f.id, true) {
			if !visited[nbr.ID] {
				stack = append(stack, frame{id: nbr.ID, parent: f.id, depth: f.depth + 1})
			}
		}
	}

	return res, nil
}

// dfsWalker carries the shared accumulator state of the recursive form, so
// no mutable state leaks through default arguments or package globals.
type dfsWalker struct {
	store core.Store
	opts  Options
	res   *Result
	seen  map[string]bool
	step  int
}

// DFSRecursive performs pre-order recursive depth-first search on s from
// start, exploring neighbors in ascending lexicographic order and recursing
// into each unvisited neighbor immediately.
//
// Semantically equivalent to DFS; the visit order differs only where the
// two forms tie-break revisits. Recursion depth is bounded by the vertex
// count. For graphs whose longest simple path may exceed the runtime's
// comfortable call-stack depth, use DFS instead.
func DFSRecursive(s core.Store, start string, opts ...Option) (*Result, error) {
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
	w := &dfsWalker{
		store: s,
		opts:  o,
		res:   newResult(n),
		seen:  make(map[string]bool, n),
	}
	if err = w.visit(start, "", 0); err != nil {
		return w.res, err
	}

	return w.res, nil
}

// visit marks id, records it, and recurses into unvisited neighbors.
func (w *dfsWalker) visit(id, parent string, depth int) error {
	w.seen[id] = true
	w.res.Order = append(w.res.Order, id)
	w.res.Depth[id] = depth
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.step++
	if err := w.opts.OnVisit(id, w.step); err != nil {
		return fmt.Errorf("traverse: OnVisit at %q: %w", id, err)
	}

	for _, nbr := range sortedNeighbors(w.store, id, false) {
		if !w.seen[nbr.ID] {
			if err := w.visit(nbr.ID, id, depth+1); err != nil {
				return err
			}
		}
	}

	return nil
}
