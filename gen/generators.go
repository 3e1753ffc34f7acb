package gen

import (
	"fmt"
	"math/rand"

	"github.com/rsolonenko/graphkit/core"
)

// Path builds the path v0 - v1 - ... - v(n-1). Requires n >= 2.
func Path(g core.Store, n int, opts ...Option) error {
	if g == nil {
		return ErrStoreNil
	}
	if n < 2 {
		return fmt.Errorf("Path: n=%d: %w", n, ErrTooFewVertices)
	}
	c := buildConfig(opts)
	rng := rand.New(rand.NewSource(c.seed))
	addIndexed(g, n, c.idFn)
	for i := 1; i < n; i++ {
		g.AddEdge(c.idFn(i-1), c.idFn(i), edgeWeight(g, c, rng))
	}
	return nil
}

// Cycle builds the cycle v0 - v1 - ... - v(n-1) - v0. Requires n >= 3.
func Cycle(g core.Store, n int, opts ...Option) error {
	if g == nil {
		return ErrStoreNil
	}
	if n < 3 {
		return fmt.Errorf("Cycle: n=%d: %w", n, ErrTooFewVertices)
	}
	c := buildConfig(opts)
	rng := rand.New(rand.NewSource(c.seed))
	addIndexed(g, n, c.idFn)
	for i := 0; i < n; i++ {
		g.AddEdge(c.idFn(i), c.idFn((i+1)%n), edgeWeight(g, c, rng))
	}
	return nil
}

// Complete builds K_n with an edge between every vertex pair, i < j
// emission order. Requires n >= 1.
func Complete(g core.Store, n int, opts ...Option) error {
	if g == nil {
		return ErrStoreNil
	}
	if n < 1 {
		return fmt.Errorf("Complete: n=%d: %w", n, ErrTooFewVertices)
	}
	c := buildConfig(opts)
	rng := rand.New(rand.NewSource(c.seed))
	addIndexed(g, n, c.idFn)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			g.AddEdge(c.idFn(i), c.idFn(j), edgeWeight(g, c, rng))
		}
	}
	return nil
}

// Star builds a star with v0 as the hub and n-1 leaves. Requires n >= 2.
func Star(g core.Store, n int, opts ...Option) error {
	if g == nil {
		return ErrStoreNil
	}
	if n < 2 {
		return fmt.Errorf("Star: n=%d: %w", n, ErrTooFewVertices)
	}
	c := buildConfig(opts)
	rng := rand.New(rand.NewSource(c.seed))
	addIndexed(g, n, c.idFn)
	hub := c.idFn(0)
	for i := 1; i < n; i++ {
		g.AddEdge(hub, c.idFn(i), edgeWeight(g, c, rng))
	}
	return nil
}

// Grid builds a rows x cols lattice with 4-neighborhood edges. Vertex IDs
// are fixed as "row_col" so positions stay readable; the IDFn option does
// not apply. Requires rows >= 1 and cols >= 1.
func Grid(g core.Store, rows, cols int, opts ...Option) error {
	if g == nil {
		return ErrStoreNil
	}
	if rows < 1 || cols < 1 {
		return fmt.Errorf("Grid: rows=%d cols=%d: %w", rows, cols, ErrTooFewVertices)
	}
	c := buildConfig(opts)
	rng := rand.New(rand.NewSource(c.seed))
	id := func(r, col int) string { return fmt.Sprintf("%d_%d", r, col) }
	for r := 0; r < rows; r++ {
		for col := 0; col < cols; col++ {
			g.AddVertex(id(r, col))
		}
	}
	for r := 0; r < rows; r++ {
		for col := 0; col < cols; col++ {
			if col+1 < cols {
				g.AddEdge(id(r, col), id(r, col+1), edgeWeight(g, c, rng))
			}
			if r+1 < rows {
				g.AddEdge(id(r, col), id(r+1, col), edgeWeight(g, c, rng))
			}
		}
	}
	return nil
}

// RandomSparse builds an Erdős–Rényi graph over n vertices: each pair
// (ordered on directed stores, unordered otherwise) gets an edge
// independently with probability p. Trial order is fixed, so the result
// is fully determined by the seed. Requires n >= 1 and p in [0, 1].
func RandomSparse(g core.Store, n int, p float64, opts ...Option) error {
	if g == nil {
		return ErrStoreNil
	}
	if n < 1 {
		return fmt.Errorf("RandomSparse: n=%d: %w", n, ErrTooFewVertices)
	}
	if p < 0 || p > 1 {
		return fmt.Errorf("RandomSparse: p=%g: %w", p, ErrInvalidProbability)
	}
	c := buildConfig(opts)
	rng := rand.New(rand.NewSource(c.seed))
	addIndexed(g, n, c.idFn)
	for i := 0; i < n; i++ {
		jStart := i + 1
		if g.Directed() {
			jStart = 0
		}
		for j := jStart; j < n; j++ {
			if i == j {
				continue
			}
			if rng.Float64() < p {
				g.AddEdge(c.idFn(i), c.idFn(j), edgeWeight(g, c, rng))
			}
		}
	}
	return nil
}

func addIndexed(g core.Store, n int, idFn IDFn) {
	for i := 0; i < n; i++ {
		g.AddVertex(idFn(i))
	}
}

// edgeWeight draws from the weight fn only on weighted stores; an
// unweighted store would normalize the value to one anyway.
func edgeWeight(g core.Store, c config, rng *rand.Rand) int64 {
	if !g.Weighted() {
		return DefaultEdgeWeight
	}
	return c.weightFn(rng)
}
