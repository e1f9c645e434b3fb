// Copyright © 2026 Sara Regibo

package units

import (
	"errors"
	"math"
	"strings"
)

// Garmin stores angular coordinates as 32-bit semicircles, 2^32 steps
// covering the full 360 degrees.
const semicirclesPerDegree = (1 << 32) / 360.0

type Angle struct {
	degrees float64
}

func NewAngleDegrees(value float64) Angle {
	return Angle{value}
}

func NewAngleSemicircles(value float64) Angle {
	return Angle{value / semicirclesPerDegree}
}

func NewAngleRadians(value float64) Angle {
	return Angle{value * 180.0 / math.Pi}
}

func (a *Angle) Degrees() float64 {
	return a.degrees
}

func (a *Angle) Semicircles() float64 {
	return a.degrees * semicirclesPerDegree
}

func (a *Angle) Radians() float64 {
	return a.degrees * math.Pi / 180.0
}

func (a *Angle) Get(unit string) (float64, error) {
	switch strings.ToLower(unit) {
	case "deg", "degrees":
		return a.Degrees(), nil
	case "semicircles":
		return a.Semicircles(), nil
	case "rad", "radians":
		return a.Radians(), nil
	}
	return 0, errors.New("Unknown unit")
}
