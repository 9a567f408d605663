// Package abundance models taxon × sample count tables, the input side of
// every co-occurrence analysis.
//
// 🚀 What is an abundance table?
//
//	One row per taxon (ASV/OTU — an opaque identifier for a sequence
//	variant), one column per sample, each cell a non-negative count of
//	how often that taxon was observed in that sample.
//
// ✨ Key features:
//   - strict construction: ragged rows, duplicate identifiers and
//     negative counts are rejected up front with sentinel errors, so the
//     statistical layers downstream never see malformed input
//   - TSV import: header row of sample IDs, leading taxon-ID column
//   - filters: by prevalence (fraction of samples a taxon appears in)
//     and by minimum total count — both return new tables
//   - per-sample total-sum scaling to relative abundances; all-zero
//     samples are left untouched instead of producing NaN columns
//   - copy-on-read accessors: callers can never corrupt the table
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/taxonet/abundance"
//
//	tbl, err := abundance.ReadTSV(file)
//	tbl, err = tbl.FilterPrevalence(0.2) // drop taxa seen in <20% of samples
//	rows := tbl.Rows()                   // feed into assoc / kld
//
// Tables are immutable after construction: every transformation allocates
// a new Table, so intermediate filtering steps stay valid.
package abundance
