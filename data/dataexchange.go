// Copyright © 2026 Sara Regibo

package data

import "time"

// RecordData is the wire form of a single FIT record: one timestamp and
// whatever metrics that record carried. Published as JSON on the record
// topic and consumed by the aggregator and the live web view.
type RecordData struct {
	TimeStamp time.Time
	Activity  string
	Sport     string
	Data      map[string]float64
}

// ActivitySummary describes a whole activity. It is published once the
// import of a file completes, and it is what the activities table stores.
type ActivitySummary struct {
	Activity  string
	Sport     string
	StartTime time.Time
	Distance  float64 // meters
	Duration  float64 // seconds
	Records   int
}
