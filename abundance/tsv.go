package abundance

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// ReadTSV parses a tab-separated abundance table.
//
// Expected layout:
//
//	#taxon  SampleA  SampleB  SampleC      ← header: sample IDs
//	ASV_1   0        5        2            ← one row per taxon
//	ASV_2   13       0        1
//
// The header's first cell is ignored (it labels the taxon column). Cell
// values must parse as non-negative numbers; the record's line number is
// attached to parse failures for diagnosis, with the package sentinel
// still matchable via errors.Is.
//
// Errors:
//   - ErrEmptyTable      — no header or no taxon rows.
//   - ErrBadCount        — a cell failed to parse (wrapped with position).
//   - ErrRaggedRow / ErrDuplicateTaxon / ErrDuplicateSample /
//     ErrNegativeCount — via New.
//
// Complexity: O(t·s) time and memory.
func ReadTSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.FieldsPerRecord = -1 // shape is validated by New, with our sentinels

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("abundance: reading tsv: %w", err)
	}
	if len(records) < 2 || len(records[0]) < 2 {
		return nil, ErrEmptyTable
	}

	samples := records[0][1:]
	taxa := make([]string, 0, len(records)-1)
	rows := make([][]float64, 0, len(records)-1)
	for line, rec := range records[1:] {
		if len(rec) == 0 {
			continue // tolerate blank trailing lines
		}
		taxa = append(taxa, rec[0])
		row := make([]float64, 0, len(rec)-1)
		for col, cell := range rec[1:] {
			v, perr := strconv.ParseFloat(cell, 64)
			if perr != nil {
				return nil, fmt.Errorf("%w: row %d, column %d (%q)", ErrBadCount, line+2, col+2, cell)
			}
			row = append(row, v)
		}
		rows = append(rows, row)
	}

	return New(taxa, samples, rows)
}
