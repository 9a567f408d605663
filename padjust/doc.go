// Package padjust adjusts families of p-values for multiple testing.
//
// 🚀 Why adjust?
//
//	A co-occurrence screen tests every taxon pair — thousands of
//	simultaneous hypotheses. Thresholding raw p-values at 0.05 would then
//	admit hundreds of false edges by chance alone. Adjustment rescales
//	the p-values so a single threshold controls an error rate across the
//	whole family.
//
// ✨ Provided procedures:
//   - BenjaminiHochberg — step-up adjustment controlling the expected
//     false-discovery rate (the standard choice for network screens)
//   - Bonferroni — family-wise error control, simple and conservative
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/taxonet/padjust"
//
//	q, err := padjust.BenjaminiHochberg(pvalues)
//	// q[i] ≤ 0.05 ⇒ keep pair i at FDR 5%
//
// Both procedures return a new slice in the input's order and reject
// undefined inputs (NaN or outside [0, 1]) with ErrBadPValue: unlike the
// permutation estimator, which absorbs numeric degeneracy into a neutral
// answer, an adjustment over undefined p-values has no meaningful result.
//
// Complexity: O(n log n) time (sorting), O(n) memory.
package padjust
