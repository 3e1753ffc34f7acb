// Package traverse: sentinel errors, functional options, and result types.
package traverse

import (
	"errors"
	"fmt"
	"sort"

	"github.com/rsolonenko/graphkit/core"
)

// Sentinel errors for traversal execution.
var (
	// ErrStoreNil is returned when a nil Store is passed.
	ErrStoreNil = errors.New("traverse: store is nil")

	// ErrStartVertexNotFound is returned when the start vertex is absent.
	// This is a reported condition, not a fault: callers on graceful paths
	// branch with errors.Is and treat the result as empty.
	ErrStartVertexNotFound = errors.New("traverse: start vertex not found")

	// ErrTargetVertexNotFound is returned by FindAllPaths when the end
	// vertex is absent.
	ErrTargetVertexNotFound = errors.New("traverse: target vertex not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("traverse: invalid option supplied")
)

// DefaultMaxPaths bounds FindAllPaths when WithMaxPaths is not supplied.
const DefaultMaxPaths = 10

// Options holds traversal parameters and callbacks.
type Options struct {
	// OnVisit is called once per visited vertex with its 1-based step
	// number. Returning an error aborts the traversal and propagates.
	OnVisit func(id string, step int) error

	// MaxPaths caps FindAllPaths. 0 means unbounded.
	MaxPaths int

	// internal error recorded during option parsing
	err error
}

// Option configures traversal behavior via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options with a no-op visit hook and the default
// path cap.
func DefaultOptions() Options {
	return Options{
		OnVisit:  func(string, int) error { return nil },
		MaxPaths: DefaultMaxPaths,
	}
}

// WithOnVisit registers a per-vertex callback; returning an error from it
// stops the traversal.
func WithOnVisit(fn func(id string, step int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxPaths caps the number of paths FindAllPaths collects.
//
//	n > 0:  collect at most n paths
//	n == 0: unbounded enumeration
//	n < 0:  invalid → ErrOptionViolation
func WithMaxPaths(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxPaths cannot be negative (%d)", ErrOptionViolation, n)

			return
		}
		o.MaxPaths = n
	}
}

// Result holds the outcome of a traversal:
//   - Order: vertices in visit sequence.
//   - Depth: map from vertex ID to its depth in the traversal tree
//     (edge count from the start; BFS depth equals hop distance).
//   - Parent: map from vertex ID to its predecessor in the traversal tree;
//     the start vertex has no entry.
type Result struct {
	Order  []string
	Depth  map[string]int
	Parent map[string]string
}

func newResult(capacity int) *Result {
	return &Result{
		Order:  make([]string, 0, capacity),
		Depth:  make(map[string]int, capacity),
		Parent: make(map[string]string, capacity),
	}
}

// Visited reports whether v was reached by the traversal.
func (r *Result) Visited(v string) bool {
	_, ok := r.Depth[v]

	return ok
}

// buildOptions applies opts over the defaults and surfaces any recorded
// option violation.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}

	return o, nil
}

// sortedNeighbors snapshots v's adjacency sorted ascending by vertex ID,
// or descending when desc is set (the iterative-DFS push order).
func sortedNeighbors(s core.Store, v string, desc bool) []core.Neighbor {
	nbrs := s.Neighbors(v)
	sort.Slice(nbrs, func(i, j int) bool {
		if desc {
			return nbrs[i].ID > nbrs[j].ID
		}

		return nbrs[i].ID < nbrs[j].ID
	})

	return nbrs
}
