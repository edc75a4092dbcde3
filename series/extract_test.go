package series_test

import (
	"testing"

	"github.com/katalvlaran/fatigue/series"
	"github.com/stretchr/testify/assert"
)

// TestExtract_Empty verifies that an empty history yields no turning points.
func TestExtract_Empty(t *testing.T) {
	assert.Empty(t, series.Extract(nil, true), "nil input should yield no points")
	assert.Empty(t, series.Extract([]float64{}, false), "empty input should yield no points")
}

// TestExtract_SingleSample verifies the degenerate one-sample history.
func TestExtract_SingleSample(t *testing.T) {
	pts := series.Extract([]float64{7.5}, false)
	assert.Equal(t, []series.TurningPoint{{Index: 0, Value: 7.5}}, pts)
}

// TestExtract_AllEqual verifies that a constant history collapses to the
// single first sample, regardless of the endpoint option.
func TestExtract_AllEqual(t *testing.T) {
	raw := []float64{3, 3, 3, 3}
	want := []series.TurningPoint{{Index: 0, Value: 3}}

	assert.Equal(t, want, series.Extract(raw, true), "endpoints on")
	assert.Equal(t, want, series.Extract(raw, false), "endpoints off")
}

// TestExtract_Alternating verifies that every sample of a strictly
// alternating history is reported as a reversal when endpoints count.
func TestExtract_Alternating(t *testing.T) {
	raw := []float64{-1, 2, -3, 5, -2}
	pts := series.Extract(raw, true)

	want := []series.TurningPoint{
		{Index: 0, Value: -1},
		{Index: 1, Value: 2},
		{Index: 2, Value: -3},
		{Index: 3, Value: 5},
		{Index: 4, Value: -2},
	}
	assert.Equal(t, want, pts, "every sample is a reversal in an alternating sequence")
}

// TestExtract_InteriorOnly verifies that with endpoints off only interior
// reversals are reported.
func TestExtract_InteriorOnly(t *testing.T) {
	raw := []float64{-1, 2, -3, 5, -2}
	pts := series.Extract(raw, false)

	want := []series.TurningPoint{
		{Index: 1, Value: 2},
		{Index: 2, Value: -3},
		{Index: 3, Value: 5},
	}
	assert.Equal(t, want, pts)
}

// TestExtract_MonotonicFallback verifies the compressed-midpoint fallback
// for monotonic signals when endpoints are excluded.
func TestExtract_MonotonicFallback(t *testing.T) {
	cases := []struct {
		name string
		raw  []float64
		want series.TurningPoint
	}{
		// 4 compressed samples → middle index 4/2 = 2.
		{"EvenLength", []float64{1, 2, 3, 4}, series.TurningPoint{Index: 2, Value: 3}},
		// 5 compressed samples → middle index 5/2 = 2.
		{"OddLength", []float64{5, 4, 3, 2, 1}, series.TurningPoint{Index: 2, Value: 3}},
		// Flats compress away first: compressed values 1,2,3 → middle is the 2.
		{"WithFlats", []float64{1, 1, 2, 2, 3}, series.TurningPoint{Index: 2, Value: 2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pts := series.Extract(tc.raw, false)
			assert.Equal(t, []series.TurningPoint{tc.want}, pts)
		})
	}
}

// TestExtract_MonotonicWithEndpoints verifies that a monotonic signal with
// endpoints enabled yields exactly the two ends.
func TestExtract_MonotonicWithEndpoints(t *testing.T) {
	pts := series.Extract([]float64{1, 2, 3, 4}, true)
	want := []series.TurningPoint{
		{Index: 0, Value: 1},
		{Index: 3, Value: 4},
	}
	assert.Equal(t, want, pts)
}

// TestExtract_PlateauReversal verifies that a reversal across a flat run
// is detected at the sample that survives compression.
func TestExtract_PlateauReversal(t *testing.T) {
	// 0 1 2 2 2 1 0: the plateau compresses to the single 2 at index 2,
	// which is then a reversal between the rising and falling flanks.
	raw := []float64{0, 1, 2, 2, 2, 1, 0}
	pts := series.Extract(raw, false)

	want := []series.TurningPoint{{Index: 2, Value: 2}}
	assert.Equal(t, want, pts)
}

// TestExtract_IndicesSurviveCompression verifies that reported indices refer
// to the original sequence, not the compressed one.
func TestExtract_IndicesSurviveCompression(t *testing.T) {
	raw := []float64{0, 0, 5, 5, 1, 1, 6}
	pts := series.Extract(raw, true)

	want := []series.TurningPoint{
		{Index: 0, Value: 0},
		{Index: 2, Value: 5},
		{Index: 4, Value: 1},
		{Index: 6, Value: 6},
	}
	assert.Equal(t, want, pts)
}

// TestExtract_OrderedByIndex verifies the strictly-increasing-index contract
// on a longer mixed history.
func TestExtract_OrderedByIndex(t *testing.T) {
	raw := []float64{0, 3, 1, 4, 4, 2, 6, 5, 5, 7, 0}
	for _, useEndpoints := range []bool{true, false} {
		pts := series.Extract(raw, useEndpoints)
		for i := 1; i < len(pts); i++ {
			assert.Greater(t, pts[i].Index, pts[i-1].Index,
				"indices must be strictly increasing (useEndpoints=%v)", useEndpoints)
		}
	}
}

// TestCompress_KeepsFirstOfRun verifies run compression keeps the first
// sample of each run with its original index.
func TestCompress_KeepsFirstOfRun(t *testing.T) {
	got := series.Compress([]float64{1, 1, 2, 2, 2, 1})
	want := []series.TurningPoint{
		{Index: 0, Value: 1},
		{Index: 2, Value: 2},
		{Index: 5, Value: 1},
	}
	assert.Equal(t, want, got)
}

// TestCompress_Empty verifies that compressing nothing yields nothing.
func TestCompress_Empty(t *testing.T) {
	assert.Nil(t, series.Compress(nil))
}
