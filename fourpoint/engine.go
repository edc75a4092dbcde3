package fourpoint

import (
	"math"

	"github.com/katalvlaran/fatigue/series"
)

// NewCycle builds a Cycle between b and c with the given count weight.
// Range and Mean are always derived here so every cycle in the system obeys
// Range = |b−c| and Mean = (b+c)/2 by construction.
func NewCycle(b, c series.TurningPoint, count float64) Cycle {
	return Cycle{
		Range: math.Abs(b.Value - c.Value),
		Mean:  (b.Value + c.Value) / 2,
		Count: count,
		B:     b,
		C:     c,
	}
}

// snapshot returns an independent copy of the stack. StackBefore/StackAfter
// must never alias the live stack, otherwise later splices would rewrite
// history.
func snapshot(stack []series.TurningPoint) []series.TurningPoint {
	cp := make([]series.TurningPoint, len(stack))
	copy(cp, stack)

	return cp
}

// Run consumes the turning points in order and applies the four-point
// closing rule after every push.
//
// Per incoming point:
//
//	Stage 1 (Snapshot): record the stack before the push.
//	Stage 2 (Push): append the point to the stack.
//	Stage 3 (Close): while the stack holds ≥4 points, read the top four as
//	A,B,C,D (A deepest) and compare the inner range |B−C| against the
//	neighbors |A−B| and |C−D|. When |B−C| ≤ both (equality closes; the
//	tie-break is deliberate policy, not approximation) the pair B–C becomes
//	a FullCycle, B and C are spliced out leaving A and D adjacent, and the
//	check repeats. The last quadruple examined is recorded on the event
//	whether or not it closed.
//	Stage 4 (Record): append the StepEvent with the after-snapshot.
//
// Run never fails; an empty input yields an empty Result. The inner loop
// terminates because every closure shrinks the stack by two.
// Complexity: O(n) amortized time, O(n) memory.
func Run(points []series.TurningPoint) Result {
	stack := make([]series.TurningPoint, 0, len(points))
	events := make([]StepEvent, 0, len(points))
	closedAll := make([]Cycle, 0)

	for k, p := range points {
		before := snapshot(stack)
		stack = append(stack, p)

		var closed []Cycle
		var window *[4]series.TurningPoint
		for len(stack) >= 4 {
			n := len(stack)
			a, b, c, d := stack[n-4], stack[n-3], stack[n-2], stack[n-1]
			window = &[4]series.TurningPoint{a, b, c, d}

			rAB := math.Abs(a.Value - b.Value)
			rBC := math.Abs(b.Value - c.Value)
			rCD := math.Abs(c.Value - d.Value)
			if !(rBC <= rAB && rBC <= rCD) {
				break
			}
			closed = append(closed, NewCycle(b, c, FullCycle))
			// Splice B and C out of the stack, leaving A and D adjacent.
			stack = append(stack[:n-3], d)
		}
		closedAll = append(closedAll, closed...)

		events = append(events, StepEvent{
			K:           k,
			Appended:    p,
			StackBefore: before,
			StackAfter:  snapshot(stack),
			Window:      window,
			Closed:      closed,
		})
	}

	return Result{
		Events:     events,
		Closed:     closedAll,
		FinalStack: stack,
	}
}
