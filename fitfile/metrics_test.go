// Copyright © 2026 Sara Regibo

package fitfile

import (
	"math"
	"testing"

	"github.com/muktihari/fit/profile/mesgdef"
	"github.com/muktihari/fit/proto"
)

func floatEquals(a, b float64) bool {
	diff := math.Abs(a - b)
	a = math.Abs(a)
	b = math.Abs(b)
	m := math.Max(a, b)
	return diff <= m*1e-5
}

// strydIndex declares the developer fields a Stryd pod writes.
func strydIndex() *DeveloperIndex {
	return NewDeveloperIndex([]*mesgdef.FieldDescription{
		{DeveloperDataIndex: 0, FieldDefinitionNumber: 0, FieldName: []string{"Power"}},
		{DeveloperDataIndex: 0, FieldDefinitionNumber: 1, FieldName: []string{"Form Power"}},
		{DeveloperDataIndex: 0, FieldDefinitionNumber: 2, FieldName: []string{"Air Power"}},
		{DeveloperDataIndex: 0, FieldDefinitionNumber: 3, FieldName: []string{"Leg Spring Stiffness"}},
	})
}

func TestLatitudeDegrees(t *testing.T) {
	record := mesgdef.NewRecord(nil)
	record.PositionLat = 1 << 29 // an eighth of the circle

	value, ok := Metrics["latitude"].Extract(record, nil)
	if !ok {
		t.Fatal("latitude should be present")
	}
	if !floatEquals(value, 45) {
		t.Errorf("latitude = %f, want 45", value)
	}

	if _, ok := Metrics["longitude"].Extract(record, nil); ok {
		t.Error("longitude should be absent when the field is invalid")
	}
}

func TestCadenceDoubled(t *testing.T) {
	record := mesgdef.NewRecord(nil)
	record.Cadence = 90

	value, ok := Metrics["cadence"].Extract(record, nil)
	if !ok {
		t.Fatal("cadence should be present")
	}
	if !floatEquals(value, 180) {
		t.Errorf("cadence = %f spm, want 180", value)
	}
}

func TestNativePowerWins(t *testing.T) {
	record := mesgdef.NewRecord(nil)
	record.Power = 265
	record.DeveloperFields = []proto.DeveloperField{
		{DeveloperDataIndex: 0, Num: 0, Value: proto.Uint16(250)},
	}

	value, ok := Metrics["power"].Extract(record, strydIndex())
	if !ok {
		t.Fatal("power should be present")
	}
	if value != 265 {
		t.Errorf("power = %f, want the native 265", value)
	}
}

func TestDeveloperPowerFallback(t *testing.T) {
	record := mesgdef.NewRecord(nil)
	record.DeveloperFields = []proto.DeveloperField{
		{DeveloperDataIndex: 0, Num: 0, Value: proto.Uint16(250)},
	}

	value, ok := Metrics["power"].Extract(record, strydIndex())
	if !ok {
		t.Fatal("power should fall back to the developer field")
	}
	if value != 250 {
		t.Errorf("power = %f, want 250", value)
	}
}

func TestStrydMetrics(t *testing.T) {
	record := mesgdef.NewRecord(nil)
	record.DeveloperFields = []proto.DeveloperField{
		{DeveloperDataIndex: 0, Num: 1, Value: proto.Uint16(62)},
		{DeveloperDataIndex: 0, Num: 2, Value: proto.Uint16(8)},
		{DeveloperDataIndex: 0, Num: 3, Value: proto.Float32(10.3)},
	}
	index := strydIndex()

	value, ok := Metrics["form_power"].Extract(record, index)
	if !ok || value != 62 {
		t.Errorf("form_power = %f,%v, want 62", value, ok)
	}

	value, ok = Metrics["air_power"].Extract(record, index)
	if !ok || value != 8 {
		t.Errorf("air_power = %f,%v, want 8", value, ok)
	}

	value, ok = Metrics["leg_spring_stiffness"].Extract(record, index)
	if !ok || !floatEquals(value, 10.3) {
		t.Errorf("leg_spring_stiffness = %f,%v, want 10.3", value, ok)
	}

	if _, ok := Metrics["power"].Extract(record, index); ok {
		t.Error("power should be absent without a native field or fallback")
	}
}

func TestInvalidRecordIsEmpty(t *testing.T) {
	record := mesgdef.NewRecord(nil)

	for _, name := range MetricNames() {
		if _, ok := Metrics[name].Extract(record, strydIndex()); ok {
			t.Errorf("%s should be absent in an all-invalid record", name)
		}
	}
}
