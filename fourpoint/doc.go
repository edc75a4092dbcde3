// Package fourpoint counts closed fatigue cycles in a turning-point sequence
// using the four-point stack method, and converts whatever survives counting
// into residual cycles under a selectable policy.
//
// 🚀 What is the four-point stack method?
//
//	Turning points are pushed onto a stack one at a time. Whenever the
//	stack holds at least four points, the top four are read as A,B,C,D
//	(A deepest). If the inner range |B−C| does not exceed either
//	neighboring range |A−B| or |C−D|, the pair B–C is a closed cycle: it
//	is spliced out of the stack and the check repeats, since removing it
//	may expose another closeable quadruple.
//
// ✨ Key features:
//   - deterministic ≤ tie-break: exact range ties close the cycle
//   - a full per-step audit trail (StepEvent) with stack snapshots before
//     and after each push, the closed cycles, and the last examined
//     quadruple — replaying the event log reproduces the run exactly
//   - three residual policies for the leftover stack: Discard, Half
//     (adjacent half-cycles) and CloseLoop (Half plus a wrap-around pair)
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/fatigue/fourpoint"
//	  "github.com/katalvlaran/fatigue/series"
//	)
//
//	pts := series.Extract(raw, true)
//	res := fourpoint.Run(pts)
//	rest, err := fourpoint.Residual(res.FinalStack, fourpoint.Half)
//
// Counting is a single pass with O(1) amortized work per point; every
// closure shrinks the stack by two, so the inner loop cannot spin.
package fourpoint
