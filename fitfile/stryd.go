// Copyright © 2026 Sara Regibo

package fitfile

import (
	"math"

	"github.com/muktihari/fit/profile/mesgdef"
	"github.com/muktihari/fit/proto"
)

// DeveloperIndex resolves developer fields by the names declared in the
// file's field description messages.
type DeveloperIndex struct {
	names map[devKey]string
}

type devKey struct {
	index uint8
	num   byte
}

func NewDeveloperIndex(descriptions []*mesgdef.FieldDescription) *DeveloperIndex {
	index := &DeveloperIndex{names: make(map[devKey]string)}
	for _, description := range descriptions {
		if len(description.FieldName) == 0 {
			continue
		}
		key := devKey{description.DeveloperDataIndex, description.FieldDefinitionNumber}
		index.names[key] = description.FieldName[0]
	}
	return index
}

// Value looks up the named developer field in the given record.
func (index *DeveloperIndex) Value(record *mesgdef.Record, name string) (float64, bool) {
	for _, field := range record.DeveloperFields {
		key := devKey{field.DeveloperDataIndex, field.Num}
		if index.names[key] != name {
			continue
		}
		return valueFloat(field.Value)
	}
	return 0, false
}

func valueFloat(value proto.Value) (float64, bool) {
	switch v := value.Any().(type) {
	case int8:
		return float64(v), true
	case uint8:
		return float64(v), true
	case int16:
		return float64(v), true
	case uint16:
		return float64(v), true
	case int32:
		return float64(v), true
	case uint32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		if math.IsNaN(float64(v)) {
			return 0, false
		}
		return float64(v), true
	case float64:
		if math.IsNaN(v) {
			return 0, false
		}
		return v, true
	}
	return 0, false
}

// developer is an Extractor for metrics that only ever arrive as
// developer fields, like the Stryd running dynamics.
type developer struct {
	name string
}

func (e *developer) Extract(record *mesgdef.Record, index *DeveloperIndex) (float64, bool) {
	return index.Value(record, e.name)
}

func init() {
	RegisterMetric("air_power", &developer{name: "Air Power"})
	RegisterMetric("form_power", &developer{name: "Form Power"})
	RegisterMetric("leg_spring_stiffness", &developer{name: "Leg Spring Stiffness"})
}
