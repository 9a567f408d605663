// Package padjust implements multiple-testing corrections over p-value
// families.
package padjust

import (
	"errors"
	"math"
	"sort"
)

// Sentinel errors returned by the padjust package.
var (
	// ErrEmptyInput indicates an empty p-value family.
	ErrEmptyInput = errors.New("padjust: p-value slice must be non-empty")

	// ErrBadPValue indicates a NaN p-value or one outside [0, 1].
	ErrBadPValue = errors.New("padjust: p-values must lie in [0, 1]")
)

// BenjaminiHochberg computes the step-up false-discovery-rate adjustment.
//
// Algorithm outline:
//  1. Sort the p-values ascending, remembering original positions.
//  2. Scale: q(k) = p(k) · n / k for rank k (1-based).
//  3. Enforce monotonicity from the largest rank down:
//     q(k) = min(q(k), q(k+1)), then clamp to 1.
//  4. Return the adjusted values in the input's original order.
//
// Thresholding the result at α keeps the expected proportion of false
// discoveries among the kept hypotheses at or below α.
//
// Errors:
//   - ErrEmptyInput — p is empty.
//   - ErrBadPValue  — any entry is NaN or outside [0, 1].
//
// Complexity: O(n log n) time, O(n) memory. The input is not mutated.
func BenjaminiHochberg(p []float64) ([]float64, error) {
	if err := validate(p); err != nil {
		return nil, err
	}

	n := len(p)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return p[order[a]] < p[order[b]] })

	adj := make([]float64, n)
	running := 1.0 // monotonic cap, walked from the largest rank down
	for k := n - 1; k >= 0; k-- {
		q := p[order[k]] * float64(n) / float64(k+1)
		if q > running {
			q = running
		}
		running = q
		adj[order[k]] = q
	}

	return adj, nil
}

// Bonferroni computes the family-wise error correction q(i) = min(1, p(i)·n).
//
// Errors:
//   - ErrEmptyInput — p is empty.
//   - ErrBadPValue  — any entry is NaN or outside [0, 1].
//
// Complexity: O(n) time, O(n) memory. The input is not mutated.
func Bonferroni(p []float64) ([]float64, error) {
	if err := validate(p); err != nil {
		return nil, err
	}

	adj := make([]float64, len(p))
	n := float64(len(p))
	for i, v := range p {
		adj[i] = math.Min(1, v*n)
	}

	return adj, nil
}

// validate rejects empty families and undefined p-values.
func validate(p []float64) error {
	if len(p) == 0 {
		return ErrEmptyInput
	}
	for _, v := range p {
		if math.IsNaN(v) || v < 0 || v > 1 {
			return ErrBadPValue
		}
	}

	return nil
}
