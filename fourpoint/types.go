// Package fourpoint defines the cycle, step-event and result types plus the
// residual-policy enum for four-point cycle counting.
package fourpoint

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/fatigue/series"
)

// ErrUnknownResidualMode indicates a ResidualMode outside the declared enum.
var ErrUnknownResidualMode = errors.New("fourpoint: unknown residual mode")

// Cycle counts. A fully closed cycle weighs 1.0; a residual pairing weighs 0.5.
const (
	FullCycle = 1.0
	HalfCycle = 0.5
)

// ResidualMode selects how the stack left over after counting is converted
// into residual cycles.
type ResidualMode int

const (
	// Discard drops the leftover stack entirely.
	Discard ResidualMode = iota
	// Half emits one half-cycle per adjacent stack pair.
	Half
	// CloseLoop emits the Half pairs plus one wrap-around half-cycle joining
	// the last stack element back to the first.
	CloseLoop
)

// String returns the mode name, or "ResidualMode(n)" for values outside the enum.
func (m ResidualMode) String() string {
	switch m {
	case Discard:
		return "Discard"
	case Half:
		return "Half"
	case CloseLoop:
		return "CloseLoop"
	default:
		return fmt.Sprintf("ResidualMode(%d)", int(m))
	}
}

// Cycle is one counted fatigue cycle between two turning points.
// Range is |B.Value−C.Value|, Mean is their average, Count is FullCycle for
// a closed cycle and HalfCycle for a residual pairing. B and C are retained
// for traceability; they are immutable values, never shared mutable state.
type Cycle struct {
	Range float64
	Mean  float64
	Count float64
	B, C  series.TurningPoint
}

// StepEvent records everything that happened while consuming one turning
// point: the stack before the push, the point itself, any cycles closed by
// the four-point rule, the last examined quadruple (nil if the stack never
// reached four points this step), and the stack after all closures. Events
// form an append-only history: StackAfter of step k equals StackBefore of
// step k+1, and replaying Closed lists in step order reproduces the full
// closed-cycle sequence.
type StepEvent struct {
	K           int
	Appended    series.TurningPoint
	StackBefore []series.TurningPoint
	StackAfter  []series.TurningPoint
	Window      *[4]series.TurningPoint
	Closed      []Cycle
}

// Result is the complete outcome of one counting run.
type Result struct {
	Events     []StepEvent
	Closed     []Cycle
	FinalStack []series.TurningPoint
}
