// Package kld defines options and sentinel errors for symmetric
// Kullback-Leibler divergence computation.
package kld

import "errors"

// Sentinel errors returned by the kld package.
var (
	// ErrDimensionMismatch indicates the two input vectors differ in length.
	// The call fails outright: inputs are never truncated or padded.
	ErrDimensionMismatch = errors.New("kld: input vectors differ in length")

	// ErrEmptyInput indicates one or both input vectors have zero length.
	ErrEmptyInput = errors.New("kld: input vectors must be non-empty")

	// ErrBadPseudocount indicates a non-positive pseudocount was configured.
	// The pseudocount must be > 0 to keep divergence terms finite.
	ErrBadPseudocount = errors.New("kld: pseudocount must be positive")
)

// DefaultPseudocount replaces zero counts before normalization so that
// every ratio inside the divergence sum stays finite.
const DefaultPseudocount = 1e-8

// Options configures divergence computation.
//
// Pseudocount – substituted for zero entries in each input vector before
// normalization. Must be positive; DefaultOptions uses DefaultPseudocount.
type Options struct {
	Pseudocount float64
}

// Option represents a functional option for configuring divergence calls.
type Option func(*Options)

// WithPseudocount overrides the zero-replacement pseudocount.
// Validation happens inside Divergence; non-positive values cause
// ErrBadPseudocount there rather than a panic here.
func WithPseudocount(pc float64) Option {
	return func(o *Options) {
		o.Pseudocount = pc
	}
}

// DefaultOptions returns an Options struct initialized with sensible
// defaults. Use this as a starting point for further overrides.
//
// Defaults:
//   - Pseudocount: DefaultPseudocount (1e-8).
func DefaultOptions() Options {
	return Options{Pseudocount: DefaultPseudocount}
}
