// Package abundance defines the Table type and its sentinel errors.
package abundance

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors returned by the abundance package.
var (
	// ErrEmptyTable indicates a table with no taxa or no samples, either at
	// construction or as the result of a filter that removed every taxon.
	ErrEmptyTable = errors.New("abundance: table must have at least one taxon and one sample")

	// ErrRaggedRow indicates count rows of differing lengths.
	ErrRaggedRow = errors.New("abundance: all count rows must have the same length")

	// ErrDuplicateTaxon indicates a repeated taxon identifier.
	ErrDuplicateTaxon = errors.New("abundance: duplicate taxon identifier")

	// ErrDuplicateSample indicates a repeated sample identifier.
	ErrDuplicateSample = errors.New("abundance: duplicate sample identifier")

	// ErrNegativeCount indicates a negative cell value.
	ErrNegativeCount = errors.New("abundance: counts must be non-negative")

	// ErrBadCount indicates a TSV cell that does not parse as a number.
	ErrBadCount = errors.New("abundance: count cell is not numeric")

	// ErrBadThreshold indicates an out-of-range filter threshold.
	ErrBadThreshold = errors.New("abundance: filter threshold out of range")

	// ErrIndexOutOfRange indicates a taxon row index outside the table.
	ErrIndexOutOfRange = errors.New("abundance: taxon index out of range")

	// ErrTaxonNotFound indicates an unknown taxon identifier.
	ErrTaxonNotFound = errors.New("abundance: taxon not found")
)

// Table is an immutable taxon × sample count table.
//
// Rows are taxa, columns are samples; counts are stored densely. All
// mutating transformations (filters, scaling) return new Tables.
type Table struct {
	taxa    []string       // row identifiers, order preserved
	samples []string       // column identifiers, order preserved
	index   map[string]int // taxon ID → row position
	counts  *mat.Dense     // t × s count matrix
}
