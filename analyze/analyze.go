package analyze

import (
	"github.com/katalvlaran/fatigue/fourpoint"
	"github.com/katalvlaran/fatigue/histogram"
	"github.com/katalvlaran/fatigue/series"
)

// Default option values. The core stages define no defaults of their own;
// these are this caller-facing layer's choices.
const (
	// DefaultBinsRange is the default range-axis resolution.
	DefaultBinsRange = 8
	// DefaultBinsMean is the default mean-axis resolution.
	DefaultBinsMean = 8
)

// Options configures one full analysis pass.
//   - UseEndpoints: treat the first/last sample as synthetic reversals.
//   - Residue: policy for the stack left over after counting.
//   - BinsRange, BinsMean: frequency-matrix resolution per axis.
type Options struct {
	UseEndpoints bool
	Residue      fourpoint.ResidualMode
	BinsRange    int
	BinsMean     int
}

// DefaultOptions returns Options with endpoints enabled, the Half residual
// policy, and an 8×8 matrix.
func DefaultOptions() Options {
	return Options{
		UseEndpoints: true,
		Residue:      fourpoint.Half,
		BinsRange:    DefaultBinsRange,
		BinsMean:     DefaultBinsMean,
	}
}

// Bundle is the complete result of one analysis pass. Cycles holds all
// closed cycles in step order followed by the residual cycles;
// ResidualStack is the stack the engine could not close.
type Bundle struct {
	TurningPoints []series.TurningPoint
	Events        []fourpoint.StepEvent
	Cycles        []fourpoint.Cycle
	ResidualStack []series.TurningPoint
}

// Run analyzes a raw load history end to end.
//
// Stage 1 (Extract): reduce raw to turning points per opts.UseEndpoints.
// Stage 2 (Count): four-point counting over the turning points.
// Stage 3 (Residue): convert the leftover stack per opts.Residue.
// Stage 4 (Bundle): concatenate closed + residual cycles.
//
// The only failure mode is an out-of-enum opts.Residue
// (fourpoint.ErrUnknownResidualMode). Non-finite samples are the caller's
// responsibility and propagate through unchecked.
// Complexity: O(n) amortized time over the number of samples.
func Run(raw []float64, opts Options) (*Bundle, error) {
	points := series.Extract(raw, opts.UseEndpoints)
	res := fourpoint.Run(points)

	rest, err := fourpoint.Residual(res.FinalStack, opts.Residue)
	if err != nil {
		return nil, err
	}

	cycles := make([]fourpoint.Cycle, 0, len(res.Closed)+len(rest))
	cycles = append(cycles, res.Closed...)
	cycles = append(cycles, rest...)

	return &Bundle{
		TurningPoints: points,
		Events:        res.Events,
		Cycles:        cycles,
		ResidualStack: res.FinalStack,
	}, nil
}

// Histogram bins the bundle's full cycle list into a frequency matrix.
// It is a thin forwarding wrapper over histogram.Build, provided because a
// matrix is almost always the next step after Run.
func (b *Bundle) Histogram(binsRange, binsMean int) (*histogram.Matrix, error) {
	return histogram.Build(b.Cycles, binsRange, binsMean)
}
