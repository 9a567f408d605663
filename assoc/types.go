// Package assoc defines methods, options and sentinel errors for pairwise
// association testing.
package assoc

import (
	"errors"
	"math/rand/v2"
)

// Sentinel errors returned by the assoc package.
var (
	// ErrUnsupportedMethod indicates an unrecognized association method.
	ErrUnsupportedMethod = errors.New("assoc: unsupported association method")

	// ErrDimensionMismatch indicates the two input rows differ in length.
	ErrDimensionMismatch = errors.New("assoc: input rows differ in length")

	// ErrEmptyInput indicates an empty row or an empty row set.
	ErrEmptyInput = errors.New("assoc: input rows must be non-empty")

	// ErrIndexOutOfRange indicates a row index outside the row set.
	ErrIndexOutOfRange = errors.New("assoc: row index out of range")

	// ErrBadPermutations indicates a non-positive permutation count.
	ErrBadPermutations = errors.New("assoc: permutation count must be positive")
)

// NeutralPValue is returned when the test cannot produce evidence either
// way: too few finite permutation samples, or an undefined statistic.
// It reads as "no evidence of association", not as a failure.
const NeutralPValue = 0.5

// DefaultPermutations is the permutation count used by DefaultOptions.
const DefaultPermutations = 1000

// Method selects the pairwise association statistic.
//
//   - Spearman        — rank correlation (Pearson on average ranks).
//   - Pearson         — linear correlation.
//   - BrayCurtis      — Bray-Curtis dissimilarity in [0, 1].
//   - KullbackLeibler — symmetric KL divergence (package kld, default
//     pseudocount).
//
// Correlation methods use the lower tail of the permutation null;
// dissimilarity methods use the upper tail (larger value = less
// association). Getting this direction wrong would silently invert
// significance calls, so it is bound to the Method itself.
type Method int

const (
	// Spearman rank correlation.
	Spearman Method = iota

	// Pearson linear correlation.
	Pearson

	// BrayCurtis dissimilarity.
	BrayCurtis

	// KullbackLeibler symmetric divergence.
	KullbackLeibler
)

// String returns the canonical lowercase name of the method.
func (m Method) String() string {
	switch m {
	case Spearman:
		return "spearman"
	case Pearson:
		return "pearson"
	case BrayCurtis:
		return "bray"
	case KullbackLeibler:
		return "kld"
	default:
		return "unknown"
	}
}

// valid reports whether m is one of the defined methods.
func (m Method) valid() bool {
	return m >= Spearman && m <= KullbackLeibler
}

// dissimilarity reports whether larger values of m indicate less
// association (upper-tail semantics for the permutation test).
func (m Method) dissimilarity() bool {
	return m == BrayCurtis || m == KullbackLeibler
}

// ParseMethod maps a method name ("spearman", "pearson", "bray", "kld")
// to its Method value. Unknown names fail with ErrUnsupportedMethod.
func ParseMethod(name string) (Method, error) {
	switch name {
	case "spearman":
		return Spearman, nil
	case "pearson":
		return Pearson, nil
	case "bray":
		return BrayCurtis, nil
	case "kld":
		return KullbackLeibler, nil
	default:
		return 0, ErrUnsupportedMethod
	}
}

// Options configures association testing.
//
// Method       – statistic to compute (default Spearman).
// Permutations – null-distribution size; must be positive (default 1000).
// Bootstrap    – if true, additionally draw resamples-with-replacement and
// score the null mean under a normal model fitted to the bootstrap
// distribution instead of the direct rank-based comparison.
// Rand         – explicit random generator; takes precedence over Seed.
// Seed         – PCG seed used when Rand is nil; 0 means "draw a fresh seed"
// (results then differ between runs). PValueMatrix derives one independent
// stream per pair from this seed, so worker scheduling never changes the
// numbers.
// Workers      – max goroutines for PValueMatrix; values < 1 mean serial.
type Options struct {
	Method       Method
	Permutations int
	Bootstrap    bool
	Rand         *rand.Rand
	Seed         uint64
	Workers      int
}

// Option represents a functional option for configuring association calls.
type Option func(*Options)

// WithMethod selects the association statistic.
func WithMethod(m Method) Option {
	return func(o *Options) { o.Method = m }
}

// WithPermutations sets the null-distribution size.
// Validation happens inside the test functions; non-positive values cause
// ErrBadPermutations there rather than a panic here.
func WithPermutations(n int) Option {
	return func(o *Options) { o.Permutations = n }
}

// WithBootstrap enables bootstrap refinement of the p-value.
func WithBootstrap() Option {
	return func(o *Options) { o.Bootstrap = true }
}

// WithRand supplies an explicit random generator, overriding Seed.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) { o.Rand = r }
}

// WithSeed fixes the PCG seed used when no generator is supplied.
func WithSeed(seed uint64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithWorkers bounds the parallelism of PValueMatrix.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// DefaultOptions returns an Options struct initialized with sensible
// defaults. Use this as a starting point for further overrides.
//
// Defaults:
//   - Method:       Spearman.
//   - Permutations: DefaultPermutations (1000).
//   - Bootstrap:    false.
//   - Rand:         nil (generator derived from Seed per call).
//   - Seed:         0 (fresh seed per call; set for reproducibility).
//   - Workers:      1 (serial).
func DefaultOptions() Options {
	return Options{
		Method:       Spearman,
		Permutations: DefaultPermutations,
		Bootstrap:    false,
		Rand:         nil,
		Seed:         0,
		Workers:      1,
	}
}

// rng resolves the generator for a single call: an explicit Rand wins,
// then a fixed Seed, then a freshly drawn seed.
func (o *Options) rng() *rand.Rand {
	if o.Rand != nil {
		return o.Rand
	}
	if o.Seed != 0 {
		return rand.New(rand.NewPCG(o.Seed, o.Seed^pcgStreamSalt))
	}

	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// pcgStreamSalt decorrelates the two PCG state words derived from one seed.
const pcgStreamSalt = 0x9e3779b97f4a7c15
