package perf

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/rsolonenko/graphkit/core"
	"github.com/rsolonenko/graphkit/gen"
	"github.com/rsolonenko/graphkit/shortest"
	"github.com/rsolonenko/graphkit/traverse"
)

// ErrStoreNil is returned by Analyze when the graph argument is nil.
var ErrStoreNil = errors.New("perf: graph store is nil")

// Config describes the workload Compare runs against both backends.
type Config struct {
	// Vertices is the graph size; defaults to 100 when zero or negative.
	Vertices int
	// EdgeProbability is the Erdős–Rényi edge probability; defaults to
	// 0.1 when zero or negative.
	EdgeProbability float64
	// Seed fixes the scenario so both backends see the same graph and
	// the same probe sequence.
	Seed int64
	// Directed and Weighted select the graph mode.
	Directed bool
	Weighted bool
}

func (c Config) normalized() Config {
	if c.Vertices <= 0 {
		c.Vertices = 100
	}
	if c.EdgeProbability <= 0 {
		c.EdgeProbability = 0.1
	}
	return c
}

// Timing holds the wall-clock durations one backend took per workload
// phase.
type Timing struct {
	Build     time.Duration
	HasEdge   time.Duration
	Neighbors time.Duration
	BFS       time.Duration
	DFS       time.Duration
	Dijkstra  time.Duration
}

// Report is the outcome of one Compare run.
type Report struct {
	Config Config
	// Edges is the edge count of the generated scenario (identical in
	// both backends).
	Edges  int
	List   Timing
	Matrix Timing
}

// Compare runs the configured workload on both backends and returns the
// per-phase timings side by side.
func Compare(cfg Config) (*Report, error) {
	cfg = cfg.normalized()
	if cfg.EdgeProbability > 1 {
		return nil, fmt.Errorf("perf: edge probability %g: %w", cfg.EdgeProbability, gen.ErrInvalidProbability)
	}

	report := &Report{Config: cfg}
	modeOpts := []core.Option{core.WithDirected(cfg.Directed)}
	if cfg.Weighted {
		modeOpts = append(modeOpts, core.WithWeighted())
	}

	list := core.NewAdjacencyList(modeOpts...)
	lt, err := runWorkload(list, cfg)
	if err != nil {
		return nil, err
	}
	report.List = lt

	matrix := core.NewAdjacencyMatrix(modeOpts...)
	mt, err := runWorkload(matrix, cfg)
	if err != nil {
		return nil, err
	}
	report.Matrix = mt
	report.Edges = list.EdgeCount()
	return report, nil
}

// runWorkload executes every phase on one backend. The probe sequence is
// derived from cfg.Seed, so both backends answer the same questions.
func runWorkload(g core.Store, cfg Config) (Timing, error) {
	var t Timing

	start := time.Now()
	genOpts := []gen.Option{gen.WithSeed(cfg.Seed)}
	if cfg.Weighted {
		genOpts = append(genOpts, gen.WithWeightFn(gen.UniformWeightFn(1, 100)))
	}
	if err := gen.RandomSparse(g, cfg.Vertices, cfg.EdgeProbability, genOpts...); err != nil {
		return t, err
	}
	t.Build = time.Since(start)

	vertices := g.Vertices()
	probes := rand.New(rand.NewSource(cfg.Seed))

	start = time.Now()
	for i := 0; i < len(vertices)*2; i++ {
		u := vertices[probes.Intn(len(vertices))]
		v := vertices[probes.Intn(len(vertices))]
		g.HasEdge(u, v)
	}
	t.HasEdge = time.Since(start)

	start = time.Now()
	for _, v := range vertices {
		g.Neighbors(v)
	}
	t.Neighbors = time.Since(start)

	source := vertices[0]

	start = time.Now()
	if _, err := traverse.BFS(g, source); err != nil {
		return t, err
	}
	t.BFS = time.Since(start)

	start = time.Now()
	if _, err := traverse.DFS(g, source); err != nil {
		return t, err
	}
	t.DFS = time.Since(start)

	start = time.Now()
	if _, err := shortest.Dijkstra(g, source); err != nil {
		return t, err
	}
	t.Dijkstra = time.Since(start)

	return t, nil
}
