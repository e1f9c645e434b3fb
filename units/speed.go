// Copyright © 2026 Sara Regibo

package units

import (
	"errors"
	"strings"
)

type Speed struct {
	mps float64
}

func NewSpeedMetersPerSecond(value float64) Speed {
	return Speed{value}
}

func NewSpeedKilometersPerHour(value float64) Speed {
	return Speed{value / 3.6}
}

func NewSpeedMilesPerHour(value float64) Speed {
	return Speed{value * 0.44704}
}

func (s *Speed) MetersPerSecond() float64 {
	return s.mps
}

func (s *Speed) KilometersPerHour() float64 {
	return s.mps * 3.6
}

func (s *Speed) MilesPerHour() float64 {
	return s.mps / 0.44704
}

// MinutesPerKilometer is the runner's pace. Zero speed has no pace and
// reports zero.
func (s *Speed) MinutesPerKilometer() float64 {
	if s.mps == 0 {
		return 0
	}
	return 1000.0 / (60.0 * s.mps)
}

func (s *Speed) Get(unit string) (float64, error) {
	switch strings.ToLower(unit) {
	case "m/s", "mps":
		return s.MetersPerSecond(), nil
	case "km/h", "kmh":
		return s.KilometersPerHour(), nil
	case "mph":
		return s.MilesPerHour(), nil
	case "min/km", "pace":
		return s.MinutesPerKilometer(), nil
	}
	return 0, errors.New("Unknown unit")
}
