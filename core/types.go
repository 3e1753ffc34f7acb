// Package core: the Store contract, the Neighbor pair, and construction
// options shared by both representations.
package core

// Neighbor is one entry of a vertex's adjacency: the adjacent vertex ID and
// the weight of the connecting edge. Unweighted graphs always carry weight 1.
type Neighbor struct {
	// ID is the adjacent vertex identifier.
	ID string

	// Weight is the edge weight from the owning vertex to ID.
	Weight int64
}

// Store is the capability contract shared by all graph representations.
// Traversal and shortest-path algorithms depend on this interface only and
// never downcast to a concrete backend.
//
// Mutations report success as a bool rather than an error: referencing a
// missing vertex or re-adding an existing one is an ordinary condition on
// the hot path, not a fault.
type Store interface {
	// AddVertex inserts v. Reports false if v is already present.
	AddVertex(v string) bool

	// HasVertex reports whether v is present.
	HasVertex(v string) bool

	// AddEdge inserts or updates the edge from→to with the given weight.
	// Reports false if either endpoint is missing. On undirected graphs the
	// mirrored entry to→from is written with the same weight. Unweighted
	// graphs store weight 1 regardless of the argument.
	AddEdge(from, to string, weight int64) bool

	// RemoveEdge deletes the edge from→to (and its mirror when undirected).
	// Reports false if either endpoint is missing; removing an absent edge
	// is a no-op success.
	RemoveEdge(from, to string) bool

	// HasEdge reports whether the edge from→to exists.
	HasEdge(from, to string) bool

	// EdgeWeight returns the weight of the edge from→to and whether the
	// edge exists.
	EdgeWeight(from, to string) (int64, bool)

	// Neighbors returns a snapshot of v's adjacency in a stable order.
	// A missing vertex yields an empty slice.
	Neighbors(v string) []Neighbor

	// Vertices returns all vertex IDs in insertion order.
	Vertices() []string

	// VertexCount returns the number of vertices.
	VertexCount() int

	// EdgeCount returns the number of edges; mirrored entries of an
	// undirected edge count once.
	EdgeCount() int

	// Directed reports whether edges are one-way.
	Directed() bool

	// Weighted reports whether edge weights are meaningful.
	Weighted() bool
}

// flags holds the immutable configuration shared by both representations.
type flags struct {
	directed bool
	weighted bool
}

// Option configures a representation before creation. The directed and
// weighted flags are set once at construction and never change.
type Option func(*flags)

// WithDirected sets edge directedness (true = one-way edges,
// false = mirrored undirected edges; the default).
func WithDirected(directed bool) Option {
	return func(f *flags) { f.directed = directed }
}

// WithWeighted marks edge weights as meaningful. Unweighted graphs
// normalize every stored weight to 1.
func WithWeighted() Option {
	return func(f *flags) { f.weighted = true }
}

func newFlags(opts []Option) flags {
	var f flags
	for _, opt := range opts {
		opt(&f)
	}

	return f
}

// normWeight applies the unweighted normalization rule.
func (f flags) normWeight(w int64) int64 {
	if !f.weighted {
		return 1
	}

	return w
}
