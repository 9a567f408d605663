package abundance_test

import (
	"testing"

	"github.com/katalvlaran/taxonet/abundance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildTable is a test helper constructing a small 3-taxon × 4-sample table.
func buildTable(t *testing.T) *abundance.Table {
	t.Helper()
	tbl, err := abundance.New(
		[]string{"ASV_1", "ASV_2", "ASV_3"},
		[]string{"S1", "S2", "S3", "S4"},
		[][]float64{
			{1, 0, 3, 0},
			{0, 2, 0, 4},
			{5, 5, 5, 5},
		},
	)
	require.NoError(t, err)

	return tbl
}

// TestNew_Validation verifies the construction error taxonomy.
func TestNew_Validation(t *testing.T) {
	_, err := abundance.New(nil, []string{"S1"}, nil)
	assert.ErrorIs(t, err, abundance.ErrEmptyTable, "no taxa must error")

	_, err = abundance.New([]string{"A"}, nil, [][]float64{{1}})
	assert.ErrorIs(t, err, abundance.ErrEmptyTable, "no samples must error")

	_, err = abundance.New([]string{"A", "B"}, []string{"S1"}, [][]float64{{1}})
	assert.ErrorIs(t, err, abundance.ErrEmptyTable, "row count mismatch must error")

	_, err = abundance.New([]string{"A", "B"}, []string{"S1", "S2"},
		[][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, abundance.ErrRaggedRow, "ragged row must error")

	_, err = abundance.New([]string{"A", "A"}, []string{"S1"},
		[][]float64{{1}, {2}})
	assert.ErrorIs(t, err, abundance.ErrDuplicateTaxon, "duplicate taxon must error")

	_, err = abundance.New([]string{"A"}, []string{"S1", "S1"},
		[][]float64{{1, 2}})
	assert.ErrorIs(t, err, abundance.ErrDuplicateSample, "duplicate sample must error")

	_, err = abundance.New([]string{"A"}, []string{"S1"}, [][]float64{{-1}})
	assert.ErrorIs(t, err, abundance.ErrNegativeCount, "negative count must error")
}

// TestAccessors verifies copy-on-read semantics and lookup errors.
func TestAccessors(t *testing.T) {
	tbl := buildTable(t)

	assert.Equal(t, 3, tbl.NumTaxa())
	assert.Equal(t, 4, tbl.NumSamples())
	assert.Equal(t, []string{"ASV_1", "ASV_2", "ASV_3"}, tbl.Taxa())
	assert.Equal(t, []string{"S1", "S2", "S3", "S4"}, tbl.Samples())

	row, err := tbl.Row(0)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0, 3, 0}, row)

	row[0] = 999 // mutating the copy must not reach the table
	again, err := tbl.Row(0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, again[0], "Row must return an independent copy")

	_, err = tbl.Row(3)
	assert.ErrorIs(t, err, abundance.ErrIndexOutOfRange)

	byID, err := tbl.RowByID("ASV_2")
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 2, 0, 4}, byID)

	_, err = tbl.RowByID("ASV_9")
	assert.ErrorIs(t, err, abundance.ErrTaxonNotFound)

	rows := tbl.Rows()
	require.Len(t, rows, 3)
	assert.Equal(t, []float64{5, 5, 5, 5}, rows[2])
}

// TestFilterPrevalence verifies threshold validation and row selection:
// ASV_1 and ASV_2 appear in 2/4 samples, ASV_3 in all four.
func TestFilterPrevalence(t *testing.T) {
	tbl := buildTable(t)

	_, err := tbl.FilterPrevalence(-0.1)
	assert.ErrorIs(t, err, abundance.ErrBadThreshold)
	_, err = tbl.FilterPrevalence(1.1)
	assert.ErrorIs(t, err, abundance.ErrBadThreshold)

	kept, err := tbl.FilterPrevalence(0.75)
	require.NoError(t, err)
	assert.Equal(t, []string{"ASV_3"}, kept.Taxa(), "only the ubiquitous taxon passes 75% prevalence")

	all, err := tbl.FilterPrevalence(0.5)
	require.NoError(t, err)
	assert.Equal(t, 3, all.NumTaxa(), "50% prevalence keeps every taxon")
}

// TestFilterMinTotal verifies total-count filtering and the empty-result
// error.
func TestFilterMinTotal(t *testing.T) {
	tbl := buildTable(t)

	kept, err := tbl.FilterMinTotal(6)
	require.NoError(t, err)
	assert.Equal(t, []string{"ASV_2", "ASV_3"}, kept.Taxa(), "totals 4 < 6 ≤ 6, 20")

	_, err = tbl.FilterMinTotal(1000)
	assert.ErrorIs(t, err, abundance.ErrEmptyTable, "filtering out every taxon must error")

	_, err = tbl.FilterMinTotal(-1)
	assert.ErrorIs(t, err, abundance.ErrBadThreshold)
}

// TestRelativeAbundance verifies per-sample scaling and the all-zero
// sample tolerance.
func TestRelativeAbundance(t *testing.T) {
	tbl, err := abundance.New(
		[]string{"A", "B"},
		[]string{"S1", "S2", "S3"},
		[][]float64{
			{1, 0, 0},
			{3, 2, 0},
		},
	)
	require.NoError(t, err)

	rel := tbl.RelativeAbundance()

	a, err := rel.RowByID("A")
	require.NoError(t, err)
	b, err := rel.RowByID("B")
	require.NoError(t, err)

	assert.Equal(t, []float64{0.25, 0, 0}, a, "column S1 sums to 4")
	assert.Equal(t, []float64{0.75, 1, 0}, b, "column S2 is wholly taxon B; all-zero S3 stays zero")

	// The source table is untouched.
	orig, err := tbl.RowByID("A")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0, 0}, orig)
}
