package enrich

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testLabels is a six-taxon universe with three labels of sizes 3, 2, 1.
func testLabels() map[string]string {
	return map[string]string{
		"A": "Firmicutes",
		"B": "Firmicutes",
		"C": "Firmicutes",
		"D": "Bacteroidetes",
		"E": "Bacteroidetes",
		"F": "Proteobacteria",
	}
}

// TestNodes_Validation checks the sentinel errors on malformed inputs.
func TestNodes_Validation(t *testing.T) {
	_, err := Nodes(nil, []string{"A"}, nil)
	assert.ErrorIs(t, err, ErrNoLabels)

	_, err = Nodes(testLabels(), []string{"A", "Z"}, nil)
	assert.ErrorIs(t, err, ErrUnknownTaxon)

	bad := DefaultOptions()
	bad.MinLabelSize = 0
	_, err = Nodes(testLabels(), []string{"A"}, &bad)
	assert.ErrorIs(t, err, ErrBadMinLabelSize)
}

// TestNodes_HandWorked verifies the hypergeometric tails against values
// computed by hand for a selection of all three Firmicutes out of six taxa.
func TestNodes_HandWorked(t *testing.T) {
	results, err := Nodes(testLabels(), []string{"A", "B", "C"}, nil)
	require.NoError(t, err)
	require.Len(t, results, 3)

	// Sorted by label: Bacteroidetes, Firmicutes, Proteobacteria.
	bac, fir, pro := results[0], results[1], results[2]

	assert.Equal(t, "Firmicutes", fir.Label)
	assert.Equal(t, 3, fir.Selected)
	assert.Equal(t, 3, fir.LabelTotal)
	assert.Equal(t, 3, fir.SelectionSize)
	assert.Equal(t, 6, fir.UniverseSize)
	assert.InDelta(t, 1.5, fir.Expected, 1e-12)
	// P(X ≥ 3) = C(3,3)·C(3,0)/C(6,3) = 1/20.
	assert.InDelta(t, 0.05, fir.POver, 1e-12)
	assert.InDelta(t, 1.0, fir.PUnder, 1e-12)

	assert.Equal(t, "Bacteroidetes", bac.Label)
	assert.Zero(t, bac.Selected)
	assert.InDelta(t, 1.0, bac.Expected, 1e-12)
	assert.InDelta(t, 1.0, bac.POver, 1e-12)
	// P(X ≤ 0) = C(2,0)·C(4,3)/C(6,3) = 4/20.
	assert.InDelta(t, 0.2, bac.PUnder, 1e-12)

	assert.Equal(t, "Proteobacteria", pro.Label)
	// P(X ≤ 0) = C(5,3)/C(6,3) = 10/20.
	assert.InDelta(t, 0.5, pro.PUnder, 1e-12)
	assert.InDelta(t, 1.0, pro.POver, 1e-12)
}

// TestNodes_DuplicatesAndEmptySelection verifies set semantics on selected
// and the degenerate zero-draw case.
func TestNodes_DuplicatesAndEmptySelection(t *testing.T) {
	dup, err := Nodes(testLabels(), []string{"A", "A", "B", "C", "C"}, nil)
	require.NoError(t, err)
	single, err := Nodes(testLabels(), []string{"A", "B", "C"}, nil)
	require.NoError(t, err)
	assert.Equal(t, single, dup, "duplicates in selected count once")

	empty, err := Nodes(testLabels(), nil, nil)
	require.NoError(t, err)
	for _, r := range empty {
		assert.Zero(t, r.Selected)
		assert.Zero(t, r.SelectionSize)
		// X is identically 0: both tails contain the whole mass.
		assert.InDelta(t, 1.0, r.POver, 1e-12)
		assert.InDelta(t, 1.0, r.PUnder, 1e-12)
	}
}

// TestNodes_MinLabelSize verifies the reporting floor.
func TestNodes_MinLabelSize(t *testing.T) {
	opts := DefaultOptions()
	WithMinLabelSize(2)(&opts)
	results, err := Nodes(testLabels(), []string{"A"}, &opts)
	require.NoError(t, err)
	require.Len(t, results, 2, "the singleton Proteobacteria label is dropped")
	assert.Equal(t, "Bacteroidetes", results[0].Label)
	assert.Equal(t, "Firmicutes", results[1].Label)
}

// TestEdges_Validation checks the sentinel errors on malformed inputs.
func TestEdges_Validation(t *testing.T) {
	pairs := [][2]string{{"A", "B"}}

	_, err := Edges(nil, pairs, nil)
	assert.ErrorIs(t, err, ErrNoLabels)

	_, err = Edges(testLabels(), nil, nil)
	assert.ErrorIs(t, err, ErrNoPairs)

	_, err = Edges(testLabels(), [][2]string{{"A", "Z"}}, nil)
	assert.ErrorIs(t, err, ErrUnknownTaxon)
}

// TestEdges_HandWorked verifies the binomial tails against values computed
// by hand for a four-taxon, two-label universe with three edges.
func TestEdges_HandWorked(t *testing.T) {
	labels := map[string]string{
		"A": "Firmicutes",
		"B": "Firmicutes",
		"C": "Bacteroidetes",
		"D": "Bacteroidetes",
	}
	pairs := [][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}}

	results, err := Edges(labels, pairs, nil)
	require.NoError(t, err)
	require.Len(t, results, 2)

	// Sorted: (Bacteroidetes, Firmicutes) before (Firmicutes, Firmicutes).
	mixed, same := results[0], results[1]

	assert.Equal(t, "Bacteroidetes", mixed.LabelA)
	assert.Equal(t, "Firmicutes", mixed.LabelB)
	assert.Equal(t, 2, mixed.Observed)
	// q = 2·0.5·0.5 = 0.5 over 3 draws.
	assert.InDelta(t, 1.5, mixed.Expected, 1e-12)
	assert.InDelta(t, 0.5, mixed.POver, 1e-12)    // P(X ≥ 2) = 4/8
	assert.InDelta(t, 0.875, mixed.PUnder, 1e-12) // P(X ≤ 2) = 7/8

	assert.Equal(t, "Firmicutes", same.LabelA)
	assert.Equal(t, "Firmicutes", same.LabelB)
	assert.Equal(t, 1, same.Observed)
	// q = 0.5² = 0.25 over 3 draws.
	assert.InDelta(t, 0.75, same.Expected, 1e-12)
	assert.InDelta(t, 0.578125, same.POver, 1e-12) // 1 − 0.75³
	assert.InDelta(t, 0.84375, same.PUnder, 1e-12)
}

// TestEdges_EndpointOrderIrrelevant verifies that within-pair endpoint
// order never changes the tally.
func TestEdges_EndpointOrderIrrelevant(t *testing.T) {
	labels := testLabels()
	fwd, err := Edges(labels, [][2]string{{"A", "D"}, {"B", "E"}}, nil)
	require.NoError(t, err)
	rev, err := Edges(labels, [][2]string{{"D", "A"}, {"E", "B"}}, nil)
	require.NoError(t, err)
	assert.Equal(t, fwd, rev)
}
