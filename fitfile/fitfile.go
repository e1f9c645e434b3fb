// Copyright © 2026 Sara Regibo

// Package fitfile decodes Garmin FIT activity files and reduces their
// record messages to named metric series.
package fitfile

import (
	"fmt"
	"os"
	"time"

	"github.com/muktihari/fit/decoder"
	"github.com/muktihari/fit/profile/filedef"
)

// Activity is one decoded FIT activity file.
type Activity struct {
	ID        string
	Sport     string
	StartTime time.Time
	Distance  float64 // meters
	Duration  float64 // seconds
	Records   []Record
}

// Record is a single record message reduced to the registered metrics.
// Metrics the record does not carry are absent from the map.
type Record struct {
	Timestamp time.Time
	Data      map[string]float64
}

// Decode reads the FIT activity file with the given filename.
func Decode(filename string) (*Activity, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	lis := filedef.NewListener()
	defer lis.Close()

	dec := decoder.New(file,
		decoder.WithMesgListener(lis),
		decoder.WithBroadcastOnly(),
	)
	if _, err := dec.Decode(); err != nil {
		return nil, err
	}

	activity, ok := lis.File().(*filedef.Activity)
	if !ok {
		return nil, fmt.Errorf("%s is not a FIT activity file", filename)
	}

	return reduce(activity), nil
}

func reduce(file *filedef.Activity) *Activity {
	developer := NewDeveloperIndex(file.FieldDescriptions)

	result := &Activity{
		Sport: "activity",
	}

	for _, message := range file.Records {
		record := Record{
			Timestamp: message.Timestamp,
			Data:      make(map[string]float64),
		}
		for name, extractor := range Metrics {
			if value, ok := extractor.Extract(message, developer); ok {
				record.Data[name] = value
			}
		}
		if len(record.Data) == 0 {
			continue
		}
		result.Records = append(result.Records, record)
	}

	if len(file.Sessions) > 0 {
		session := file.Sessions[0]
		result.Sport = session.Sport.String()
		result.StartTime = session.StartTime.UTC()
		result.Distance = session.TotalDistanceScaled()
		result.Duration = session.TotalElapsedTimeScaled()
	} else if len(result.Records) > 0 {
		first := result.Records[0].Timestamp
		last := result.Records[len(result.Records)-1].Timestamp
		result.StartTime = first.UTC()
		result.Duration = last.Sub(first).Seconds()
		if distance, ok := result.Records[len(result.Records)-1].Data["distance"]; ok {
			result.Distance = distance
		}
	}

	result.ID = result.StartTime.UTC().Format("20060102-150405") + "-" + result.Sport

	return result
}

// Series returns a metric as (elapsed seconds since the first sample of
// the metric, value) pairs. Records without the metric are skipped.
func (a *Activity) Series(metric string) (times, values []float64) {
	var start time.Time
	started := false

	for _, record := range a.Records {
		value, ok := record.Data[metric]
		if !ok {
			continue
		}
		if !started {
			start = record.Timestamp
			started = true
		}
		times = append(times, record.Timestamp.Sub(start).Seconds())
		values = append(values, value)
	}
	return times, values
}
