// Copyright © 2026 Sara Regibo

package units

import (
	"testing"
	"testing/quick"
)

func TestAngleDegrees(t *testing.T) {
	if err := quick.Check(func(x float64) bool {
		y := NewAngleDegrees(x)
		return floatEquals(x, y.Degrees())
	}, nil); err != nil {
		t.Error(err)
	}
}

func TestAngleSemicircles(t *testing.T) {
	if err := quick.Check(func(x float64) bool {
		y := NewAngleSemicircles(x)
		return floatEquals(x, y.Semicircles())
	}, nil); err != nil {
		t.Error(err)
	}
}

func TestAngleRadians(t *testing.T) {
	if err := quick.Check(func(x float64) bool {
		y := NewAngleRadians(x)
		return floatEquals(x, y.Radians())
	}, nil); err != nil {
		t.Error(err)
	}
}

func TestAngleGet(t *testing.T) {
	// Half the signed 32-bit range is 180 degrees.
	angle := NewAngleSemicircles(1 << 31)

	value, err := angle.Get("deg")
	if err != nil {
		t.Fatal(err)
	}
	if !floatEquals(value, 180) {
		t.Fatal("Value should be 180")
	}

	value, err = angle.Get("semicircles")
	if err != nil {
		t.Fatal(err)
	}
	if !floatEquals(value, 1<<31) {
		t.Fatal("Value should be 2^31")
	}

	value, err = angle.Get("furlongs")
	if err == nil {
		t.Fatal("Invalid unit should give an error")
	}
}
