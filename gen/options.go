package gen

import (
	"errors"
	"fmt"
	"math/rand"
)

var (
	// ErrStoreNil is returned when the target store is nil.
	ErrStoreNil = errors.New("gen: graph store is nil")
	// ErrTooFewVertices is returned when a size parameter is below the
	// constructor's minimum.
	ErrTooFewVertices = errors.New("gen: parameter too small")
	// ErrInvalidProbability is returned when an edge probability lies
	// outside [0, 1].
	ErrInvalidProbability = errors.New("gen: probability out of range")
)

// DefaultEdgeWeight is what the default WeightFn assigns to every edge.
const DefaultEdgeWeight int64 = 1

// defaultSeed keeps random constructors deterministic when the caller
// does not supply a seed.
const defaultSeed int64 = 1

// IDFn maps a vertex index to its ID.
type IDFn func(i int) string

// WeightFn produces an edge weight; rng is the constructor's seeded
// source, so results are reproducible for a fixed seed.
type WeightFn func(rng *rand.Rand) int64

// DefaultIDFn yields v0, v1, v2, ...
func DefaultIDFn(i int) string { return fmt.Sprintf("v%d", i) }

// DefaultWeightFn always yields DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) int64 { return DefaultEdgeWeight }

// UniformWeightFn yields integers uniformly in [min, max].
func UniformWeightFn(min, max int64) WeightFn {
	return func(rng *rand.Rand) int64 {
		if max <= min {
			return min
		}
		return min + rng.Int63n(max-min+1)
	}
}

type config struct {
	idFn     IDFn
	weightFn WeightFn
	seed     int64
}

// Option adjusts constructor behavior.
type Option func(*config)

// WithIDFn replaces the vertex naming scheme.
func WithIDFn(fn IDFn) Option {
	return func(c *config) { c.idFn = fn }
}

// WithWeightFn replaces the edge weight source.
func WithWeightFn(fn WeightFn) Option {
	return func(c *config) { c.weightFn = fn }
}

// WithSeed sets the seed for random constructors.
func WithSeed(seed int64) Option {
	return func(c *config) { c.seed = seed }
}

func buildConfig(opts []Option) config {
	c := config{idFn: DefaultIDFn, weightFn: DefaultWeightFn, seed: defaultSeed}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
