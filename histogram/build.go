// SPDX-License-Identifier: MIT

package histogram

import (
	"github.com/katalvlaran/fatigue/fourpoint"
)

// domain returns the (min, max) of f over the cycles, or (0, 1) when the
// list is empty.
func domain(cycles []fourpoint.Cycle, f func(fourpoint.Cycle) float64) (float64, float64) {
	if len(cycles) == 0 {
		return 0, 1
	}
	lo, hi := f(cycles[0]), f(cycles[0])
	for _, cyc := range cycles[1:] {
		v := f(cyc)
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	return lo, hi
}

// edges returns bins+1 evenly spaced edges over [lo, hi], inclusive of both
// ends. A collapsed domain (hi == lo) is widened to [lo, lo+1] first.
func edges(lo, hi float64, bins int) []float64 {
	if hi == lo {
		hi = lo + 1
	}
	out := make([]float64, bins+1)
	for i := 0; i <= bins; i++ {
		out[i] = lo + (hi-lo)*float64(i)/float64(bins)
	}

	return out
}

// locate returns the bin index for v: at or below the first edge → bin 0,
// at or above the last edge → the last bin, otherwise the unique half-open
// interval [edge[i], edge[i+1]) containing v.
func locate(e []float64, v float64) int {
	last := len(e) - 2
	if v <= e[0] {
		return 0
	}
	if v >= e[len(e)-1] {
		return last
	}
	for i := 1; i <= last; i++ {
		if v < e[i] {
			return i - 1
		}
	}

	return last
}

// Build bins the cycles into a binsRange×binsMean frequency matrix.
//
// Stage 1 (Validate): both bin counts must be ≥ 1.
// Stage 2 (Domain): min/max of ranges and means, defaulting to [0,1] for an
// empty cycle list and widening collapsed axes to [min, min+1].
// Stage 3 (Edges): evenly spaced, inclusive of both ends.
// Stage 4 (Accumulate): add each cycle's Count into its (rangeBin, meanBin)
// cell. Accumulation is plain addition, so the result is independent of
// cycle order.
//
// Non-finite cycle values are the caller's concern and propagate through
// domain and bin computation unchecked.
// Complexity: O(n·bins) time, O(binsRange·binsMean) memory.
func Build(cycles []fourpoint.Cycle, binsRange, binsMean int) (*Matrix, error) {
	if binsRange < 1 || binsMean < 1 {
		return nil, ErrBadBinCount
	}

	rLo, rHi := domain(cycles, func(c fourpoint.Cycle) float64 { return c.Range })
	mLo, mHi := domain(cycles, func(c fourpoint.Cycle) float64 { return c.Mean })

	m := &Matrix{
		RangeEdges: edges(rLo, rHi, binsRange),
		MeanEdges:  edges(mLo, mHi, binsMean),
		Counts:     make([][]float64, binsRange),
	}
	for i := range m.Counts {
		m.Counts[i] = make([]float64, binsMean)
	}

	for _, cyc := range cycles {
		i := locate(m.RangeEdges, cyc.Range)
		j := locate(m.MeanEdges, cyc.Mean)
		m.Counts[i][j] += cyc.Count
	}

	return m, nil
}
