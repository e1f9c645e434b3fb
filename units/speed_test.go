// Copyright © 2026 Sara Regibo

package units

import (
	"testing"
	"testing/quick"
)

func TestSpeedMetersPerSecond(t *testing.T) {
	if err := quick.Check(func(x float64) bool {
		y := NewSpeedMetersPerSecond(x)
		return floatEquals(x, y.MetersPerSecond())
	}, nil); err != nil {
		t.Error(err)
	}
}

func TestSpeedKilometersPerHour(t *testing.T) {
	if err := quick.Check(func(x float64) bool {
		y := NewSpeedKilometersPerHour(x)
		return floatEquals(x, y.KilometersPerHour())
	}, nil); err != nil {
		t.Error(err)
	}
}

func TestSpeedMilesPerHour(t *testing.T) {
	if err := quick.Check(func(x float64) bool {
		y := NewSpeedMilesPerHour(x)
		return floatEquals(x, y.MilesPerHour())
	}, nil); err != nil {
		t.Error(err)
	}
}

func TestSpeedGet(t *testing.T) {
	// 10 km/h is a 6 min/km pace.
	speed := NewSpeedKilometersPerHour(10)

	value, err := speed.Get("m/s")
	if err != nil {
		t.Fatal(err)
	}
	if !floatEquals(value, 2.7777778) {
		t.Fatal("Value should be 2.778")
	}

	value, err = speed.Get("min/km")
	if err != nil {
		t.Fatal(err)
	}
	if !floatEquals(value, 6) {
		t.Fatal("Value should be 6")
	}

	value, err = speed.Get("knots")
	if err == nil {
		t.Fatal("Invalid unit should give an error")
	}
}

func TestSpeedZeroPace(t *testing.T) {
	speed := NewSpeedMetersPerSecond(0)
	if speed.MinutesPerKilometer() != 0 {
		t.Fatal("Zero speed should report zero pace")
	}
}
