// Package series reduces a raw numeric load history to its turning points —
// the local extrema where the signal reverses direction — which are the unit
// of input for cycle counting.
//
// 🚀 What is a turning point?
//
//	A sample at which the local slope changes sign. A load history like
//	  [-1, 2, -3, 5, -2]
//	reverses at every sample; a monotonic ramp reverses nowhere. Cycle
//	counting only ever looks at reversals, so everything between them
//	is discarded up front.
//
// ✨ Key features:
//   - run compression: consecutive equal samples collapse to one, keeping
//     the original sample index of the first occurrence
//   - three-valued slope comparison (−1/0/+1) for reversal detection
//   - optional injection of the first/last sample as synthetic reversals
//   - guaranteed non-empty output for any non-empty input (monotonic
//     signals fall back to the compressed midpoint)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/fatigue/series"
//
//	pts := series.Extract(raw, true) // endpoints count as reversals
//	for _, p := range pts {
//	  fmt.Println(p.Index, p.Value)
//	}
//
// Extraction is a single pass: O(n) time, O(n) memory.
package series
