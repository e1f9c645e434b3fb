// Copyright © 2026 Sara Regibo

package units

import (
	"errors"
	"strings"
)

type Distance struct {
	meters float64
}

func NewDistanceMillimeters(value float64) Distance {
	return Distance{value / 1000.0}
}

func NewDistanceCentimeters(value float64) Distance {
	return Distance{value / 100.0}
}

func NewDistanceMeters(value float64) Distance {
	return Distance{value}
}

func NewDistanceKilometers(value float64) Distance {
	return Distance{value * 1000.0}
}

func NewDistanceMiles(value float64) Distance {
	return Distance{value * 1609.344}
}

func (d *Distance) Millimeters() float64 {
	return d.meters * 1000.0
}

func (d *Distance) Centimeters() float64 {
	return d.meters * 100.0
}

func (d *Distance) Meters() float64 {
	return d.meters
}

func (d *Distance) Kilometers() float64 {
	return d.meters / 1000.0
}

func (d *Distance) Miles() float64 {
	return d.meters / 1609.344
}

func (d *Distance) Get(unit string) (float64, error) {
	switch strings.ToLower(unit) {
	case "mm", "millimeters":
		return d.Millimeters(), nil
	case "cm", "centimeters":
		return d.Centimeters(), nil
	case "m", "meters":
		return d.Meters(), nil
	case "km", "kilometers":
		return d.Kilometers(), nil
	case "mi", "miles":
		return d.Miles(), nil
	}
	return 0, errors.New("Unknown unit")
}
