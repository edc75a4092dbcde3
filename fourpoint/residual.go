package fourpoint

import "github.com/katalvlaran/fatigue/series"

// Residual converts the stack left over after counting into residual cycles.
//
//   - Discard: no residual cycles.
//   - Half: one HalfCycle per adjacent stack pair (stack[i], stack[i+1]).
//   - CloseLoop: the Half pairs plus one wrap-around HalfCycle joining the
//     last stack element back to the first, emitted only when the stack
//     holds at least two points.
//
// Residual is applied exactly once, after Run has drained all turning
// points; it never mutates the stack. An unknown mode returns
// ErrUnknownResidualMode.
// Complexity: O(len(stack)).
func Residual(stack []series.TurningPoint, mode ResidualMode) ([]Cycle, error) {
	switch mode {
	case Discard:
		return nil, nil
	case Half, CloseLoop:
		// fall through to pairing below
	default:
		return nil, ErrUnknownResidualMode
	}

	if len(stack) < 2 {
		return nil, nil
	}
	cycles := make([]Cycle, 0, len(stack))
	for i := 0; i+1 < len(stack); i++ {
		cycles = append(cycles, NewCycle(stack[i], stack[i+1], HalfCycle))
	}
	if mode == CloseLoop {
		cycles = append(cycles, NewCycle(stack[len(stack)-1], stack[0], HalfCycle))
	}

	return cycles, nil
}
