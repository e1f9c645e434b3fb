// Copyright © 2026 Sara Regibo

package analysis

import (
	"fmt"
	"testing"
)

func constantSeries(n int, value float64) (times, values []float64) {
	times = make([]float64, n)
	values = make([]float64, n)
	for i := range times {
		times[i] = float64(i)
		values[i] = value
	}
	return times, values
}

func TestPowerDurationCurveConstant(t *testing.T) {
	times, power := constantSeries(121, 250)

	curve := PowerDurationCurve(times, power, 1, 10, 60)
	if len(curve) != 2 {
		t.Fatalf("expected 2 curve points, got %d", len(curve))
	}
	for _, point := range curve {
		if !floatEquals(point.Power, 250) {
			t.Errorf("constant power: curve point %+v", point)
		}
	}
	if curve[0].Duration != 10 || curve[1].Duration != 70 {
		t.Errorf("unexpected durations %+v", curve)
	}
}

func TestPowerDurationCurveRamp(t *testing.T) {
	// Power climbs 1 W per second, so the best window of any duration is
	// the latest one.
	times := make([]float64, 101)
	power := make([]float64, 101)
	for i := range times {
		times[i] = float64(i)
		power[i] = float64(i)
	}

	curve := PowerDurationCurve(times, power, 1, 10, 60)
	if len(curve) != 2 {
		t.Fatalf("expected 2 curve points, got %d", len(curve))
	}

	// The last 10s window is [90,100), averaging 90..99.
	if !floatEquals(curve[0].Power, 94.5) {
		t.Errorf("10s best = %f, want 94.5", curve[0].Power)
	}
	// The last 70s window is [30,100), averaging 30..99.
	if !floatEquals(curve[1].Power, 64.5) {
		t.Errorf("70s best = %f, want 64.5", curve[1].Power)
	}
}

func TestPowerDurationCurveDegenerate(t *testing.T) {
	if curve := PowerDurationCurve(nil, nil, 1, 10, 60); curve != nil {
		t.Error("empty series should yield no curve")
	}
	times, power := constantSeries(5, 200)
	if curve := PowerDurationCurve(times, power, 1, 10, 60); curve != nil {
		t.Error("series shorter than the minimum window should yield no curve")
	}
}

func ExamplePowerDurationCurve() {
	times, power := constantSeries(181, 300)

	for _, point := range PowerDurationCurve(times, power, 1, 10, 60) {
		fmt.Printf("%gs %gW\n", point.Duration, point.Power)
	}
	// Output:
	// 10s 300W
	// 70s 300W
	// 130s 300W
}
