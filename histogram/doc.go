// SPDX-License-Identifier: MIT

// Package histogram bins a cycle list into a 2-D range×mean frequency
// matrix with configurable resolution.
//
// 🚀 What is the frequency matrix?
//
//	Every counted cycle has a range (its amplitude) and a mean (its
//	midpoint load). Binning all cycles jointly over both axes yields a
//	2-D histogram, the standard compact summary of a counted load
//	history: cell (i,j) accumulates the count weight of every cycle
//	whose range falls in range-bin i and mean in mean-bin j.
//
// ✨ Key features:
//   - evenly spaced edges spanning the observed min/max of each axis
//   - explicit degenerate-domain policy: an empty cycle list bins over
//     [0,1]; a collapsed axis (min==max) widens to [min, min+1]
//   - clamped half-open bin location: values at or below the first edge
//     land in bin 0, values at or above the last edge in the last bin
//   - order-independent accumulation — pure addition, no cross-bin state
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/fatigue/histogram"
//
//	m, err := histogram.Build(cycles, 8, 8)
//	if err != nil { /* bin counts < 1 */ }
//	fmt.Println(m.Total())
//
// Complexity: O(len(cycles)·bins) time, O(binsRange·binsMean) memory.
package histogram
