package shortest

import (
	"errors"
	"math"
)

// Unreachable is the distance reported for vertices that no path from the
// source reaches. It is the maximum int64, so any real relaxation improves it.
const Unreachable = int64(math.MaxInt64)

var (
	// ErrStoreNil is returned when the graph argument is nil.
	ErrStoreNil = errors.New("shortest: graph store is nil")
	// ErrSourceNotFound is returned when the source vertex is absent.
	ErrSourceNotFound = errors.New("shortest: source vertex not found")
	// ErrTargetNotFound is returned when an explicitly requested target
	// vertex is absent. An existing-but-unreachable target is not an error.
	ErrTargetNotFound = errors.New("shortest: target vertex not found")
	// ErrNegativeWeight is returned by Dijkstra when the graph contains a
	// negative-weight edge. Use BellmanFord instead.
	ErrNegativeWeight = errors.New("shortest: negative edge weight")
)

// Tree is the result of a single-source shortest-path run.
//
// Dist holds the best known distance for every vertex of the graph;
// vertices with no path from Source carry Unreachable. Prev maps each
// reached vertex (except Source) to its predecessor on one shortest path.
type Tree struct {
	// Source is the vertex the run started from.
	Source string
	// Dist maps vertex ID to shortest-path distance from Source.
	Dist map[string]int64
	// Prev maps vertex ID to its predecessor; Source and unreached
	// vertices have no entry.
	Prev map[string]string
}

// newTree allocates a Tree with every vertex at Unreachable and the
// source at zero.
func newTree(source string, vertices []string) *Tree {
	t := &Tree{
		Source: source,
		Dist:   make(map[string]int64, len(vertices)),
		Prev:   make(map[string]string, len(vertices)),
	}
	for _, v := range vertices {
		t.Dist[v] = Unreachable
	}
	t.Dist[source] = 0
	return t
}

// Reached reports whether a path from Source to v exists.
func (t *Tree) Reached(v string) bool {
	d, ok := t.Dist[v]
	return ok && d != Unreachable
}

// PathTo reconstructs the shortest path from Source to target by walking
// the predecessor map. It returns an empty slice when target is unreached
// or unknown, and a single-element path when target equals Source.
func (t *Tree) PathTo(target string) []string {
	if !t.Reached(target) {
		return []string{}
	}
	return ReconstructPath(t.Prev, t.Source, target)
}

// ReconstructPath walks prev from target back to source and returns the
// path in source→target order. It is a pure function over the predecessor
// map: any algorithm that fills such a map can share it. An empty slice is
// returned when the walk cannot reach source.
func ReconstructPath(prev map[string]string, source, target string) []string {
	if target == source {
		return []string{source}
	}
	path := []string{target}
	cur := target
	for cur != source {
		p, ok := prev[cur]
		if !ok {
			return []string{}
		}
		path = append(path, p)
		cur = p
	}
	// Reverse in place: the walk produced target→source.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Options configures a shortest-path run.
type Options struct {
	// Target, when non-empty, lets Dijkstra stop as soon as the target
	// vertex is finalized instead of settling the whole graph.
	Target string
}

// Option mutates Options.
type Option func(*Options)

// WithTarget requests early exit once id is finalized. Dijkstra validates
// that id exists and returns ErrTargetNotFound otherwise.
func WithTarget(id string) Option {
	return func(o *Options) { o.Target = id }
}

// buildOptions applies opts over the zero default.
func buildOptions(opts []Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
