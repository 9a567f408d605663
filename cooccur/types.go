// SPDX-License-Identifier: MIT
//
// Package cooccur: network types, options and sentinel errors.
// This file declares Edge, Network, Options and the sentinel error set;
// construction lives in build.go, queries in methods.go.
package cooccur

import (
	"errors"
	"sync"
)

// Sentinel errors for network construction and queries.
var (
	// ErrNilMatrix indicates a nil statistic or p-value matrix.
	ErrNilMatrix = errors.New("cooccur: matrix is nil")

	// ErrDimensionMismatch indicates matrices whose order differs from the
	// taxon list length (or from each other).
	ErrDimensionMismatch = errors.New("cooccur: matrix order does not match taxon count")

	// ErrNoTaxa indicates an empty taxon list.
	ErrNoTaxa = errors.New("cooccur: taxon list must be non-empty")

	// ErrDuplicateTaxon indicates a repeated taxon identifier.
	ErrDuplicateTaxon = errors.New("cooccur: duplicate taxon identifier")

	// ErrBadAlpha indicates a significance level outside (0, 1].
	ErrBadAlpha = errors.New("cooccur: significance level must lie in (0, 1]")

	// ErrBadWeightFloor indicates a negative minimum absolute weight.
	ErrBadWeightFloor = errors.New("cooccur: minimum absolute weight must be non-negative")

	// ErrTaxonNotFound indicates a query for a taxon absent from the network.
	ErrTaxonNotFound = errors.New("cooccur: taxon not found in network")
)

// DefaultAlpha is the significance threshold used by DefaultOptions.
const DefaultAlpha = 0.05

// Edge is one undirected association between two taxa.
//
// Endpoints are canonical: A < B lexicographically, so an unordered pair
// maps to exactly one Edge value.
type Edge struct {
	// A is the lexicographically smaller endpoint.
	A string

	// B is the lexicographically larger endpoint.
	B string

	// Weight is the association statistic that admitted the edge
	// (correlation in [-1, 1], or a dissimilarity ≥ 0).
	Weight float64

	// PValue is the significance that admitted the edge.
	PValue float64
}

// Network is an in-memory undirected co-occurrence graph.
//
// A single RWMutex guards nodes and adjacency: Build produces the
// Network fully formed, after which all exported methods are concurrent
// read-safe snapshots.
type Network struct {
	mu sync.RWMutex

	// nodes: member taxa (isolated ones included only when requested).
	nodes map[string]struct{}

	// adj[a][b] = adj[b][a] = shared *Edge for the unordered pair {a, b}.
	adj map[string]map[string]*Edge

	// edgeCount caches len of the unordered edge set.
	edgeCount int
}

// Options configures network construction.
//
// Alpha        – keep an edge when its p-value is ≤ Alpha. Must lie in
// (0, 1]. Default DefaultAlpha.
// MinAbsWeight – additionally require |statistic| ≥ MinAbsWeight.
// Must be ≥ 0. Default 0 (no weight floor).
// KeepIsolated – if true, every taxon becomes a node even when no edge
// survived for it; if false (default) only edge endpoints are members.
type Options struct {
	Alpha        float64
	MinAbsWeight float64
	KeepIsolated bool
}

// Option represents a functional option for configuring Build.
type Option func(*Options)

// WithAlpha sets the significance threshold.
// Validation happens inside Build; out-of-range values cause ErrBadAlpha
// there rather than a panic here.
func WithAlpha(a float64) Option {
	return func(o *Options) { o.Alpha = a }
}

// WithMinAbsWeight sets the absolute-weight floor for admitted edges.
func WithMinAbsWeight(w float64) Option {
	return func(o *Options) { o.MinAbsWeight = w }
}

// WithKeepIsolated retains taxa that end up without any significant edge.
func WithKeepIsolated() Option {
	return func(o *Options) { o.KeepIsolated = true }
}

// DefaultOptions returns an Options struct initialized with sensible
// defaults. Use this as a starting point for further overrides.
//
// Defaults:
//   - Alpha:        DefaultAlpha (0.05).
//   - MinAbsWeight: 0 (no weight floor).
//   - KeepIsolated: false (isolated taxa are dropped).
func DefaultOptions() Options {
	return Options{
		Alpha:        DefaultAlpha,
		MinAbsWeight: 0,
		KeepIsolated: false,
	}
}
