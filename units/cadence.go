// Copyright © 2026 Sara Regibo

package units

import (
	"errors"
	"strings"
)

// Cadence is stored in FIT files as revolutions per minute; runners count
// steps, and both feet strike per revolution.
type Cadence struct {
	spm float64
}

func NewCadenceRPM(value float64) Cadence {
	return Cadence{value * 2}
}

func NewCadenceSPM(value float64) Cadence {
	return Cadence{value}
}

func (c *Cadence) RPM() float64 {
	return c.spm / 2
}

func (c *Cadence) SPM() float64 {
	return c.spm
}

func (c *Cadence) Get(unit string) (float64, error) {
	switch strings.ToLower(unit) {
	case "rpm":
		return c.RPM(), nil
	case "spm":
		return c.SPM(), nil
	}
	return 0, errors.New("Unknown unit")
}
