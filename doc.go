// Package taxonet is an in-memory toolkit for co-occurrence analysis of
// microbiome amplicon data — from raw taxon × sample count tables to
// significance-filtered association networks and enrichment statistics.
//
// 🚀 What is taxonet?
//
//	A pure-Go library that brings together the statistical steps of a
//	co-occurrence study:
//		• Abundance tables: import, validate, filter and normalize counts
//		• Dissimilarity: symmetric Kullback-Leibler divergence between taxa
//		• Association: Spearman / Pearson / Bray-Curtis / KL statistics
//		• Significance: permutation tests, optional bootstrap refinement
//		• Correction: Benjamini-Hochberg and Bonferroni adjustment
//		• Networks: significance-filtered co-occurrence graphs
//		• Enrichment: hypergeometric & binomial over/under-representation
//
// ✨ Why choose taxonet?
//
//   - Explicit randomness – every permutation draw flows from a caller-held
//     generator or seed, so results are reproducible by construction
//   - Degenerate-input tolerance – constant taxa, zero counts and undefined
//     correlations degrade to neutral answers instead of panicking
//   - Deterministic parallelism – pair-level p-value matrices use per-pair
//     random streams, so worker count never changes the numbers
//
// Under the hood, everything is organized under six subpackages:
//
//	abundance/ — taxon × sample count tables: TSV import, filters, scaling
//	kld/       — symmetric Kullback-Leibler divergence & divergence matrices
//	assoc/     — pairwise association statistics & permutation p-values
//	padjust/   — multiple-testing correction (BH, Bonferroni)
//	cooccur/   — significance-filtered co-occurrence networks
//	enrich/    — taxonomic over/under-representation tests
//
// Quick sketch of the pipeline:
//
//	table ──filter──▶ rows ──assoc──▶ (stats, p-values) ──padjust──▶ q-values
//	                                         │
//	                                 cooccur.Build ──▶ Network ──▶ enrich
//
// Dive into examples/ for a full end-to-end walkthrough on synthetic data.
//
//	go get github.com/katalvlaran/taxonet
package taxonet
