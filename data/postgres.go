// Copyright © 2026 Sara Regibo

package data

import (
	"database/sql"

	_ "github.com/lib/pq"
)

type postgres_driver struct {
}

func init() {
	RegisterDBDriver("postgres", postgres_driver{})
}

func (postgres postgres_driver) OpenDatabase(db *sql.DB) error {
	if _, err := db.Exec(`
	CREATE TABLE IF NOT EXISTS activities (
		id          text PRIMARY KEY,
		start_time  bigint,
		sport       text,
		distance    real,
		duration    real,
		records     integer
	)`); err != nil {
		db.Close()
		return err
	}

	if _, err := db.Exec(`
	CREATE TABLE IF NOT EXISTS samples (
		activity    text,
		metric      text,
		timestamp   bigint,
		min         real,
		max         real,
		avg         real
	)`); err != nil {
		db.Close()
		return err
	}

	if _, err := db.Exec(`
	CREATE INDEX IF NOT EXISTS i_samples ON samples (
		activity,
		metric,
		timestamp
	)`); err != nil {
		db.Close()
		return err
	}

	return nil
}

func (postgres postgres_driver) Close(db *sql.DB) {
}

func (postgres postgres_driver) InsertActivity(db *sql.DB, activity ActivitySummary) error {
	stmt := `INSERT INTO activities (
		id,
		start_time,
		sport,
		distance, duration, records
	) VALUES ($1, $2, $3, $4, $5, $6)
	ON CONFLICT (id) DO UPDATE SET
		start_time = EXCLUDED.start_time,
		sport = EXCLUDED.sport,
		distance = EXCLUDED.distance,
		duration = EXCLUDED.duration,
		records = EXCLUDED.records`

	_, err := db.Exec(stmt, activity.Activity, activity.StartTime.UTC().Unix(),
		activity.Sport, activity.Distance, activity.Duration, activity.Records)
	return err
}

func (postgres postgres_driver) InsertSample(db *sql.DB, activity string, metric string, timestamp int64, min float64, max float64, avg float64) error {
	stmt := `INSERT INTO samples (
		activity,
		metric,
		timestamp,
		min, max, avg
	) VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := db.Exec(stmt, activity, metric, timestamp, min, max, avg)
	return err
}

func (postgres postgres_driver) QueryActivities(db *sql.DB) (*sql.Rows, error) {
	stmt := `SELECT id,start_time,sport,distance,duration,records FROM activities
		ORDER BY start_time DESC`
	return db.Query(stmt)
}

func (postgres postgres_driver) QueryActivity(db *sql.DB, activity string) *sql.Row {
	stmt := `SELECT id,start_time,sport,distance,duration,records FROM activities
		WHERE id = $1`
	return db.QueryRow(stmt, activity)
}

func (postgres postgres_driver) QueryLast(db *sql.DB, activity string, metric string) (float64, error) {
	stmt := `SELECT
		avg FROM samples
		WHERE
			activity = $1 AND
			metric = $2
		ORDER BY timestamp DESC
		LIMIT 1`
	row := db.QueryRow(stmt, activity, metric)
	var result float64
	err := row.Scan(&result)

	return result, err
}

func (postgres postgres_driver) QuerySamples(db *sql.DB, activity string, metric string) (*sql.Rows, error) {
	stmt := `SELECT timestamp,min,max,avg FROM samples
		WHERE
			activity = $1 AND
			metric = $2
		ORDER BY timestamp`
	return db.Query(stmt, activity, metric)
}

func (postgres postgres_driver) QuerySamplesInterval(db *sql.DB, activity string, metric string, interval int64) (*sql.Rows, error) {
	stmt := `SELECT
			CAST(timestamp/$1 as bigint) * $2 as ts,
			MIN(min),
			MAX(max),
			AVG(avg)
		FROM samples
		WHERE
			activity = $3 AND
			metric = $4
		GROUP BY ts
		ORDER BY ts`
	return db.Query(stmt, interval, interval, activity, metric)
}

func (postgres postgres_driver) QueryTrack(db *sql.DB, activity string) (*sql.Rows, error) {
	stmt := `SELECT
			lat.timestamp,
			lat.avg,
			lon.avg
		FROM samples lat
		INNER JOIN samples lon
			ON lon.timestamp = lat.timestamp
			AND lon.activity = lat.activity
		WHERE lat.metric = 'latitude'
			AND lon.metric = 'longitude'
			AND lat.activity = $1
		ORDER BY lat.timestamp;`
	return db.Query(stmt, activity)
}
