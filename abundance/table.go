package abundance

import (
	"gonum.org/v1/gonum/mat"
)

// New builds a Table from taxon IDs, sample IDs and a dense count grid
// (one row per taxon, one column per sample).
//
// Errors:
//   - ErrEmptyTable      — no taxa, no samples, or missing rows.
//   - ErrRaggedRow       — a row's length differs from len(samples).
//   - ErrDuplicateTaxon  — repeated taxon ID.
//   - ErrDuplicateSample — repeated sample ID.
//   - ErrNegativeCount   — any negative cell.
//
// The inputs are copied; the caller's slices stay independent.
//
// Complexity: O(t·s) time and memory.
func New(taxa, samples []string, counts [][]float64) (*Table, error) {
	if len(taxa) == 0 || len(samples) == 0 || len(counts) != len(taxa) {
		return nil, ErrEmptyTable
	}

	index := make(map[string]int, len(taxa))
	for i, id := range taxa {
		if _, dup := index[id]; dup {
			return nil, ErrDuplicateTaxon
		}
		index[id] = i
	}
	seen := make(map[string]struct{}, len(samples))
	for _, id := range samples {
		if _, dup := seen[id]; dup {
			return nil, ErrDuplicateSample
		}
		seen[id] = struct{}{}
	}

	flat := make([]float64, 0, len(taxa)*len(samples))
	for _, row := range counts {
		if len(row) != len(samples) {
			return nil, ErrRaggedRow
		}
		for _, v := range row {
			if v < 0 {
				return nil, ErrNegativeCount
			}
		}
		flat = append(flat, row...)
	}

	return &Table{
		taxa:    append([]string(nil), taxa...),
		samples: append([]string(nil), samples...),
		index:   index,
		counts:  mat.NewDense(len(taxa), len(samples), flat),
	}, nil
}

// NumTaxa returns the number of taxon rows.
func (t *Table) NumTaxa() int { return len(t.taxa) }

// NumSamples returns the number of sample columns.
func (t *Table) NumSamples() int { return len(t.samples) }

// Taxa returns a copy of the taxon identifiers in row order.
func (t *Table) Taxa() []string { return append([]string(nil), t.taxa...) }

// Samples returns a copy of the sample identifiers in column order.
func (t *Table) Samples() []string { return append([]string(nil), t.samples...) }

// Row returns a copy of taxon row i.
//
// Errors:
//   - ErrIndexOutOfRange — i outside [0, NumTaxa).
func (t *Table) Row(i int) ([]float64, error) {
	if i < 0 || i >= len(t.taxa) {
		return nil, ErrIndexOutOfRange
	}

	return append([]float64(nil), t.counts.RawRowView(i)...), nil
}

// RowByID returns a copy of the row for the given taxon identifier.
//
// Errors:
//   - ErrTaxonNotFound — id is not in the table.
func (t *Table) RowByID(id string) ([]float64, error) {
	i, ok := t.index[id]
	if !ok {
		return nil, ErrTaxonNotFound
	}

	return t.Row(i)
}

// Rows returns a copy of the full count grid, one slice per taxon, in row
// order — the shape the assoc and kld drivers consume.
func (t *Table) Rows() [][]float64 {
	rows := make([][]float64, len(t.taxa))
	for i := range rows {
		rows[i] = append([]float64(nil), t.counts.RawRowView(i)...)
	}

	return rows
}

// FilterPrevalence keeps taxa observed (count > 0) in at least minFrac of
// the samples and returns them as a new Table.
//
// Errors:
//   - ErrBadThreshold — minFrac outside [0, 1].
//   - ErrEmptyTable   — the filter removed every taxon.
//
// Complexity: O(t·s) time.
func (t *Table) FilterPrevalence(minFrac float64) (*Table, error) {
	if minFrac < 0 || minFrac > 1 {
		return nil, ErrBadThreshold
	}

	return t.filter(func(row []float64) bool {
		present := 0
		for _, v := range row {
			if v > 0 {
				present++
			}
		}

		return float64(present) >= minFrac*float64(len(row))
	})
}

// FilterMinTotal keeps taxa whose summed count across all samples reaches
// min and returns them as a new Table.
//
// Errors:
//   - ErrBadThreshold — min < 0.
//   - ErrEmptyTable   — the filter removed every taxon.
//
// Complexity: O(t·s) time.
func (t *Table) FilterMinTotal(min float64) (*Table, error) {
	if min < 0 {
		return nil, ErrBadThreshold
	}

	return t.filter(func(row []float64) bool {
		var total float64
		for _, v := range row {
			total += v
		}

		return total >= min
	})
}

// filter assembles a new Table from the rows the keep predicate admits.
func (t *Table) filter(keep func(row []float64) bool) (*Table, error) {
	var (
		taxa []string
		rows [][]float64
	)
	for i, id := range t.taxa {
		row := t.counts.RawRowView(i)
		if keep(row) {
			taxa = append(taxa, id)
			rows = append(rows, row)
		}
	}
	if len(taxa) == 0 {
		return nil, ErrEmptyTable
	}

	return New(taxa, t.samples, rows)
}

// RelativeAbundance rescales every sample column by its total so each
// column sums to 1 — total-sum scaling. All-zero samples are left as
// zeros rather than turned into NaN columns.
//
// Complexity: O(t·s) time and memory.
func (t *Table) RelativeAbundance() *Table {
	nt, ns := len(t.taxa), len(t.samples)
	scaled := mat.NewDense(nt, ns, nil)
	for j := 0; j < ns; j++ {
		var total float64
		for i := 0; i < nt; i++ {
			total += t.counts.At(i, j)
		}
		if total == 0 {
			continue // degenerate sample stays all-zero
		}
		for i := 0; i < nt; i++ {
			scaled.Set(i, j, t.counts.At(i, j)/total)
		}
	}

	return &Table{
		taxa:    append([]string(nil), t.taxa...),
		samples: append([]string(nil), t.samples...),
		index:   t.rebuildIndex(),
		counts:  scaled,
	}
}

// rebuildIndex copies the taxon index for a derived table.
func (t *Table) rebuildIndex() map[string]int {
	index := make(map[string]int, len(t.taxa))
	for i, id := range t.taxa {
		index[id] = i
	}

	return index
}
