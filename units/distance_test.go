// Copyright © 2026 Sara Regibo

package units

import (
	"testing"
	"testing/quick"
)

func TestDistanceMillimeters(t *testing.T) {
	if err := quick.Check(func(x float64) bool {
		y := NewDistanceMillimeters(x)
		return floatEquals(x, y.Millimeters())
	}, nil); err != nil {
		t.Error(err)
	}
}

func TestDistanceCentimeters(t *testing.T) {
	if err := quick.Check(func(x float64) bool {
		y := NewDistanceCentimeters(x)
		return floatEquals(x, y.Centimeters())
	}, nil); err != nil {
		t.Error(err)
	}
}

func TestDistanceMeters(t *testing.T) {
	if err := quick.Check(func(x float64) bool {
		y := NewDistanceMeters(x)
		return floatEquals(x, y.Meters())
	}, nil); err != nil {
		t.Error(err)
	}
}

func TestDistanceKilometers(t *testing.T) {
	if err := quick.Check(func(x float64) bool {
		y := NewDistanceKilometers(x)
		return floatEquals(x, y.Kilometers())
	}, nil); err != nil {
		t.Error(err)
	}
}

func TestDistanceMiles(t *testing.T) {
	if err := quick.Check(func(x float64) bool {
		y := NewDistanceMiles(x)
		return floatEquals(x, y.Miles())
	}, nil); err != nil {
		t.Error(err)
	}
}

func TestDistanceGet(t *testing.T) {
	distance := NewDistanceMeters(1609.344)

	value, err := distance.Get("km")
	if err != nil {
		t.Fatal(err)
	}
	if !floatEquals(value, 1.609344) {
		t.Fatal("Value should be 1.609344")
	}

	value, err = distance.Get("mi")
	if err != nil {
		t.Fatal(err)
	}
	if !floatEquals(value, 1) {
		t.Fatal("Value should be 1")
	}

	value, err = distance.Get("cubits")
	if err == nil {
		t.Fatal("Invalid unit should give an error")
	}
}
