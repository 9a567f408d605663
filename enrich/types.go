// Package enrich: result types, options and sentinel errors.
package enrich

import "errors"

// Sentinel errors for enrichment inputs.
var (
	// ErrNoLabels indicates an empty taxon → label map.
	ErrNoLabels = errors.New("enrich: label map must be non-empty")

	// ErrUnknownTaxon indicates a selected taxon or edge endpoint absent
	// from the label map.
	ErrUnknownTaxon = errors.New("enrich: taxon has no label")

	// ErrNoPairs indicates an empty edge list.
	ErrNoPairs = errors.New("enrich: pair list must be non-empty")

	// ErrBadMinLabelSize indicates a non-positive label size floor.
	ErrBadMinLabelSize = errors.New("enrich: minimum label size must be ≥ 1")
)

// Result is the node-enrichment outcome for one label.
type Result struct {
	// Label is the taxonomic label under test.
	Label string

	// Selected is the number of selected taxa carrying the label.
	Selected int

	// LabelTotal is the number of taxa carrying the label in the whole
	// labeled universe.
	LabelTotal int

	// SelectionSize and UniverseSize restate the test's margins.
	SelectionSize int
	UniverseSize  int

	// Expected is the label count predicted under random selection:
	// SelectionSize · LabelTotal / UniverseSize.
	Expected float64

	// POver is P(X ≥ Selected) under the hypergeometric null.
	POver float64

	// PUnder is P(X ≤ Selected) under the hypergeometric null.
	PUnder float64
}

// PairResult is the edge-enrichment outcome for one unordered label pair.
type PairResult struct {
	// LabelA and LabelB are the pair's labels, LabelA ≤ LabelB.
	LabelA string
	LabelB string

	// Observed is the number of edges joining the two labels.
	Observed int

	// Expected is the edge count predicted under independent endpoint
	// label draws from the empirical label frequencies.
	Expected float64

	// POver is P(X ≥ Observed) under the binomial null.
	POver float64

	// PUnder is P(X ≤ Observed) under the binomial null.
	PUnder float64
}

// Options configures enrichment reporting.
//
// MinLabelSize – report only labels carried by at least this many taxa in
// the universe. Must be ≥ 1. Default 1 (report everything).
type Options struct {
	MinLabelSize int
}

// Option represents a functional option for configuring enrichment.
type Option func(*Options)

// WithMinLabelSize sets the label size floor for reported rows.
func WithMinLabelSize(n int) Option {
	return func(o *Options) { o.MinLabelSize = n }
}

// DefaultOptions returns an Options struct initialized with sensible
// defaults. Use this as a starting point for further overrides.
//
// Defaults:
//   - MinLabelSize: 1 (every label is reported).
func DefaultOptions() Options {
	return Options{MinLabelSize: 1}
}
