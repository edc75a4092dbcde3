package series

// Compress collapses runs of consecutive equal samples into a single
// TurningPoint candidate, keeping the original index of the first sample of
// each run. Equality is the exact float64 comparison; callers are expected
// to pre-filter NaN/Inf (a NaN sample never equals its predecessor, so each
// NaN survives compression on its own).
// Complexity: O(n) time, O(n) memory.
func Compress(raw []float64) []TurningPoint {
	if len(raw) == 0 {
		return nil
	}
	kept := make([]TurningPoint, 0, len(raw))
	kept = append(kept, TurningPoint{Index: 0, Value: raw[0]})
	for i := 1; i < len(raw); i++ {
		// Keep a sample only if it differs from the last kept value.
		if raw[i] != kept[len(kept)-1].Value {
			kept = append(kept, TurningPoint{Index: i, Value: raw[i]})
		}
	}

	return kept
}

// sign is the trinary sign function: −1, 0 or +1.
// The zero case is load-bearing for reversal detection and must not be
// collapsed into a boolean increasing/decreasing test.
func sign(x float64) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// Extract locates the turning points of raw.
//
// Stage 1 (Degenerate): fewer than 2 samples → each sample is its own point.
// Stage 2 (Compress): collapse equal runs; a single distinct value → that
// one point, regardless of useEndpoints.
// Stage 3 (Detect): an interior compressed sample is a turning point when
// the sign of (cur−prev) differs from the sign of (next−cur).
// Stage 4 (Endpoints): when useEndpoints is true, the first compressed
// sample is prepended and the last appended; the append is skipped if that
// point is already the most recently detected one. When useEndpoints is
// false and no interior reversal exists (monotonic signal), the middle
// compressed sample (floor division on the compressed list) is returned so
// the result is never empty for non-empty input.
//
// Output is strictly increasing by original index. Extract never fails.
// Complexity: O(n) time, O(n) memory.
func Extract(raw []float64, useEndpoints bool) []TurningPoint {
	// Degenerate: empty or single-sample history.
	if len(raw) < 2 {
		pts := make([]TurningPoint, 0, len(raw))
		for i, v := range raw {
			pts = append(pts, TurningPoint{Index: i, Value: v})
		}
		return pts
	}

	comp := Compress(raw)
	if len(comp) == 1 {
		// All samples equal: one distinct value, one point.
		return []TurningPoint{comp[0]}
	}

	pts := make([]TurningPoint, 0, len(comp))
	if useEndpoints {
		pts = append(pts, comp[0])
	}

	detected := 0
	for k := 1; k < len(comp)-1; k++ {
		// Reversal when the incoming and outgoing slopes disagree in sign.
		if sign(comp[k].Value-comp[k-1].Value) != sign(comp[k+1].Value-comp[k].Value) {
			pts = append(pts, comp[k])
			detected++
		}
	}

	if useEndpoints {
		last := comp[len(comp)-1]
		// Guard against appending a point already pushed; cannot happen by
		// construction since the loop stops before the last index, but the
		// guard keeps the append safe under any future loop change.
		if len(pts) == 0 || pts[len(pts)-1].Index != last.Index {
			pts = append(pts, last)
		}
		return pts
	}

	if detected == 0 {
		// Monotonic signal with endpoints excluded: fall back to the middle
		// compressed sample so the caller always gets at least one point.
		return []TurningPoint{comp[len(comp)/2]}
	}

	return pts
}
