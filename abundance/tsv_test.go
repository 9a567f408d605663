package abundance_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/taxonet/abundance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestReadTSV_WellFormed verifies parsing of a conventional table.
func TestReadTSV_WellFormed(t *testing.T) {
	const in = "#taxon\tS1\tS2\tS3\n" +
		"ASV_1\t1\t0\t3\n" +
		"ASV_2\t0\t2.5\t0\n"

	tbl, err := abundance.ReadTSV(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, []string{"S1", "S2", "S3"}, tbl.Samples())
	assert.Equal(t, []string{"ASV_1", "ASV_2"}, tbl.Taxa())

	row, err := tbl.RowByID("ASV_2")
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 2.5, 0}, row)
}

// TestReadTSV_Malformed verifies the parse error taxonomy.
func TestReadTSV_Malformed(t *testing.T) {
	_, err := abundance.ReadTSV(strings.NewReader(""))
	assert.ErrorIs(t, err, abundance.ErrEmptyTable, "empty input must error")

	_, err = abundance.ReadTSV(strings.NewReader("#taxon\tS1\n"))
	assert.ErrorIs(t, err, abundance.ErrEmptyTable, "header-only input must error")

	bad := "#taxon\tS1\tS2\nASV_1\t1\tx\n"
	_, err = abundance.ReadTSV(strings.NewReader(bad))
	assert.ErrorIs(t, err, abundance.ErrBadCount, "non-numeric cell must error")
	assert.Contains(t, err.Error(), "row 2", "parse error must name the offending row")

	negative := "#taxon\tS1\nASV_1\t-4\n"
	_, err = abundance.ReadTSV(strings.NewReader(negative))
	assert.ErrorIs(t, err, abundance.ErrNegativeCount, "negative count must surface New's sentinel")

	ragged := "#taxon\tS1\tS2\nASV_1\t1\n"
	_, err = abundance.ReadTSV(strings.NewReader(ragged))
	assert.ErrorIs(t, err, abundance.ErrRaggedRow, "short row must surface New's sentinel")
}
