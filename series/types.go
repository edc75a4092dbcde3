// Package series defines the turning-point value type shared by all
// downstream cycle-counting stages.
package series

// TurningPoint is a single reversal in a load history. Index is the position
// in the original (pre-compression) sample sequence; Value is the sample
// value. A TurningPoint is a plain immutable value: downstream stages
// reference the same logical point rather than copying and mutating it.
type TurningPoint struct {
	Index int     // position in the original sample sequence
	Value float64 // sample value at Index
}
