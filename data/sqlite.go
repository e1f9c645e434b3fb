package data

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3" // Load SQLite DB driver
)

type sqlite_driver struct {
}

func init() {
	RegisterDBDriver("sqlite3", sqlite_driver{})
}

func (sqlite sqlite_driver) OpenDatabase(db *sql.DB) error {
	_, err := db.Exec(`
	CREATE TABLE IF NOT EXISTS activities (
		id          text PRIMARY KEY,
		start_time  integer,
		sport       text,
		distance    real,
		duration    real,
		records     integer
	)`)
	if err != nil {
		db.Close()
		return err
	}

	_, err = db.Exec(`
	CREATE TABLE IF NOT EXISTS samples (
		activity    text,
		metric      text,
		timestamp   integer,
		min         real,
		max         real,
		avg         real
	)`)
	if err != nil {
		db.Close()
		return err
	}

	return nil
}

func (sqlite sqlite_driver) Close(db *sql.DB) {
}

func (sqlite sqlite_driver) InsertActivity(db *sql.DB, activity ActivitySummary) error {
	stmt := `INSERT OR REPLACE INTO activities (
		id,
		start_time,
		sport,
		distance, duration, records
	) VALUES (?, ?, ?, ?, ?, ?)`

	_, err := db.Exec(stmt, activity.Activity, activity.StartTime.UTC().Unix(),
		activity.Sport, activity.Distance, activity.Duration, activity.Records)
	return err
}

func (sqlite sqlite_driver) InsertSample(db *sql.DB, activity string, metric string, timestamp int64, min float64, max float64, avg float64) error {
	stmt := `INSERT INTO samples (
		activity,
		metric,
		timestamp,
		min, max, avg
	) VALUES (?, ?, ?, ?, ?, ?)`

	_, err := db.Exec(stmt, activity, metric, timestamp, min, max, avg)
	return err
}

func (sqlite sqlite_driver) QueryActivities(db *sql.DB) (*sql.Rows, error) {
	stmt := `SELECT id,start_time,sport,distance,duration,records FROM activities
		ORDER BY start_time DESC`
	return db.Query(stmt)
}

func (sqlite sqlite_driver) QueryActivity(db *sql.DB, activity string) *sql.Row {
	stmt := `SELECT id,start_time,sport,distance,duration,records FROM activities
		WHERE id = ?`
	return db.QueryRow(stmt, activity)
}

func (sqlite sqlite_driver) QueryLast(db *sql.DB, activity string, metric string) (float64, error) {
	stmt := `SELECT
		avg FROM samples
		WHERE
			activity = ? AND
			metric = ?
		ORDER BY timestamp DESC
		LIMIT 1`
	row := db.QueryRow(stmt, activity, metric)
	var result float64
	err := row.Scan(&result)

	return result, err
}

func (sqlite sqlite_driver) QuerySamples(db *sql.DB, activity string, metric string) (*sql.Rows, error) {
	stmt := `SELECT timestamp,min,max,avg FROM samples
		WHERE
			activity = ? AND
			metric = ?
		ORDER BY timestamp`
	return db.Query(stmt, activity, metric)
}

func (sqlite sqlite_driver) QuerySamplesInterval(db *sql.DB, activity string, metric string, interval int64) (*sql.Rows, error) {
	stmt := `SELECT
			CAST(timestamp/? as INTEGER) * ? as ts,
			MIN(min),
			MAX(max),
			AVG(avg)
		FROM samples
		WHERE
			activity = ? AND
			metric = ?
		GROUP BY ts
		ORDER BY ts`
	return db.Query(stmt, interval, interval, activity, metric)
}

func (sqlite sqlite_driver) QueryTrack(db *sql.DB, activity string) (*sql.Rows, error) {
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
			AND lat.activity = ?
		ORDER BY lat.timestamp;`
	return db.Query(stmt, activity)
}
