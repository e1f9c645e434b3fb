// Copyright © 2026 Sara Regibo

package analysis

import "math"

// CurvePoint is one entry of a power duration curve: the best average
// power the athlete sustained for the given duration.
type CurvePoint struct {
	Duration float64 // seconds
	Power    float64 // watts
}

// PowerDurationCurve computes the power duration curve of a power series.
//
// For each window duration, starting at minDuration and growing by step
// up to the span of the series, the window is slid over the series at the
// given granularity and the largest window average is kept.
func PowerDurationCurve(times, power []float64, granularity, minDuration, step float64) []CurvePoint {
	if len(times) < 2 || granularity <= 0 || minDuration <= 0 || step <= 0 {
		return nil
	}

	mean := func(_, values []float64) (float64, error) {
		return Mean(values), nil
	}

	span := times[len(times)-1] - times[0]

	var curve []CurvePoint
	for duration := minDuration; duration <= span; duration += step {
		best := math.Inf(-1)
		found := false
		for window := range MovingWindow(times, power, duration, granularity, mean) {
			if window.Value > best {
				best = window.Value
				found = true
			}
		}
		if found {
			curve = append(curve, CurvePoint{Duration: duration, Power: best})
		}
	}
	return curve
}
