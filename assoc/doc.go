// Package assoc computes pairwise association statistics between taxa and
// estimates their significance with permutation tests, optionally refined
// by bootstrap resampling.
//
// 🚀 What is a permutation test?
//
//	To judge whether an observed association between two taxa could arise
//	by chance, one row is repeatedly shuffled (a full-length reordering,
//	sampling without replacement) and the statistic is recomputed against
//	the unmodified partner row.  The observed value is then located within
//	this null distribution:
//	  • correlation methods (Spearman, Pearson)  → lower tail
//	  • dissimilarity methods (Bray-Curtis, KL)  → upper tail
//	Because the association may run in either direction, any p-value above
//	0.5 is folded (p ← 1−p), so results always lie in [0, 0.5] and read as
//	"evidence of association in either direction".
//
// ✨ Key features:
//   - four methods: Spearman, Pearson, BrayCurtis, KullbackLeibler
//   - explicit randomness: caller-held *rand.Rand or a fixed Seed — never a
//     package-global stream, so reproducibility never depends on call order
//   - degeneracy tolerance: if fewer than one third of the requested
//     permutations yield finite statistics (e.g. a constant taxon), the
//     neutral p-value 0.5 is returned instead of an error
//   - bootstrap mode: resamples shared sample positions with replacement
//     and scores the null mean under a normal model fitted to the
//     bootstrap distribution
//   - matrix drivers: StatisticMatrix and PValueMatrix evaluate all
//     unordered pairs once; PValueMatrix fans pairs out across workers
//     with deterministic per-pair random streams
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/taxonet/assoc"
//
//	opts := assoc.DefaultOptions()
//	opts.Method = assoc.Spearman
//	opts.Permutations = 1000
//	opts.Seed = 42
//
//	p, err := assoc.PairPValue(rows, 0, 1, &opts) // one pair
//	P, err := assoc.PValueMatrix(rows, &opts)     // all pairs
//
// Performance:
//
//   - PairPValue:   O(R·n log n) time for R permutations of n samples
//     (log n factor from rank sorting; linear for the other methods)
//   - PValueMatrix: t·(t−1)/2 independent pairs, parallel up to Workers
//
// See examples in example_test.go for deterministic walkthroughs.
package assoc
