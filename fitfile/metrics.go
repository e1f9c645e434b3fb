// Copyright © 2026 Sara Regibo

package fitfile

import (
	"math"

	"github.com/muktihari/fit/profile/basetype"
	"github.com/muktihari/fit/profile/mesgdef"

	"github.com/SaraRegibo/summavi/units"
)

// Extractor pulls one metric out of a record message. The boolean is
// false when the record does not carry the metric.
type Extractor interface {
	Extract(record *mesgdef.Record, developer *DeveloperIndex) (float64, bool)
}

var Metrics map[string]Extractor

func RegisterMetric(name string, extractor Extractor) {
	if nil == Metrics {
		Metrics = make(map[string]Extractor)
	}
	Metrics[name] = extractor
}

func MetricNames() []string {
	names := make([]string, 0, len(Metrics))
	for name := range Metrics {
		names = append(names, name)
	}
	return names
}

// native reads a profile field of the record, falling back to a named
// developer field when the profile field is invalid. Running power is the
// usual case: Garmin watches store it natively, Stryd-only setups deliver
// it as a developer field.
type native struct {
	value    func(*mesgdef.Record) (float64, bool)
	fallback string
}

func (e *native) Extract(record *mesgdef.Record, developer *DeveloperIndex) (float64, bool) {
	if value, ok := e.value(record); ok {
		return value, true
	}
	if e.fallback != "" && developer != nil {
		return developer.Value(record, e.fallback)
	}
	return 0, false
}

func scaled(value float64) (float64, bool) {
	if math.IsNaN(value) {
		return 0, false
	}
	return value, true
}

func init() {
	RegisterMetric("latitude", &native{
		value: func(record *mesgdef.Record) (float64, bool) {
			if record.PositionLat == basetype.Sint32Invalid {
				return 0, false
			}
			angle := units.NewAngleSemicircles(float64(record.PositionLat))
			return angle.Degrees(), true
		},
	})

	RegisterMetric("longitude", &native{
		value: func(record *mesgdef.Record) (float64, bool) {
			if record.PositionLong == basetype.Sint32Invalid {
				return 0, false
			}
			angle := units.NewAngleSemicircles(float64(record.PositionLong))
			return angle.Degrees(), true
		},
	})

	RegisterMetric("power", &native{
		value: func(record *mesgdef.Record) (float64, bool) {
			if record.Power == basetype.Uint16Invalid {
				return 0, false
			}
			return float64(record.Power), true
		},
		fallback: "Power",
	})

	RegisterMetric("heart_rate", &native{
		value: func(record *mesgdef.Record) (float64, bool) {
			if record.HeartRate == basetype.Uint8Invalid {
				return 0, false
			}
			return float64(record.HeartRate), true
		},
	})

	// Reported in steps per minute, not the revolutions per minute the
	// file stores.
	RegisterMetric("cadence", &native{
		value: func(record *mesgdef.Record) (float64, bool) {
			if record.Cadence == basetype.Uint8Invalid {
				return 0, false
			}
			cadence := units.NewCadenceRPM(float64(record.Cadence))
			return cadence.SPM(), true
		},
		fallback: "Cadence",
	})

	RegisterMetric("speed", &native{
		value: func(record *mesgdef.Record) (float64, bool) {
			if value, ok := scaled(record.EnhancedSpeedScaled()); ok {
				return value, true
			}
			return scaled(record.SpeedScaled())
		},
	})

	RegisterMetric("altitude", &native{
		value: func(record *mesgdef.Record) (float64, bool) {
			if value, ok := scaled(record.EnhancedAltitudeScaled()); ok {
				return value, true
			}
			return scaled(record.AltitudeScaled())
		},
	})

	RegisterMetric("distance", &native{
		value: func(record *mesgdef.Record) (float64, bool) {
			return scaled(record.DistanceScaled())
		},
	})

	RegisterMetric("ground_time", &native{
		value: func(record *mesgdef.Record) (float64, bool) {
			return scaled(record.StanceTimeScaled())
		},
		fallback: "Ground Time",
	})

	RegisterMetric("vertical_oscillation", &native{
		value: func(record *mesgdef.Record) (float64, bool) {
			return scaled(record.VerticalOscillationScaled())
		},
		fallback: "Vertical Oscillation",
	})
}
