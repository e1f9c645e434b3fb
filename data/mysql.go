// Copyright © 2026 Sara Regibo

package data

import (
	"database/sql"

	_ "github.com/go-sql-driver/mysql"
)

type mysql_driver struct {
}

func init() {
	RegisterDBDriver("mysql", mysql_driver{})
}

func (mysql mysql_driver) OpenDatabase(db *sql.DB) error {
	if _, err := db.Exec(`
	CREATE TABLE IF NOT EXISTS activities (
		id          varchar(128) PRIMARY KEY,
		start_time  bigint,
		sport       varchar(64),
		distance    double,
		duration    double,
		records     integer
	)`); err != nil {
		db.Close()
		return err
	}

	if _, err := db.Exec(`
	CREATE TABLE IF NOT EXISTS samples (
		activity    varchar(128),
		metric      varchar(64),
		timestamp   bigint,
		min         double,
		max         double,
		avg         double
	)`); err != nil {
		db.Close()
		return err
	}

	row := db.QueryRow(`
	SELECT COUNT(1) IndexIsThere FROM INFORMATION_SCHEMA.STATISTICS WHERE
		table_schema=DATABASE() AND
		table_name='samples' AND
		index_name='i_samples';
	`)
	var result int
	err := row.Scan(&result)
	if err != nil {
		db.Close()
		return err
	}

	if result == 0 {
		if _, err := db.Exec(`
		CREATE INDEX i_samples ON samples (
			activity,
			metric,
			timestamp
		)`); err != nil {
			db.Close()
			return err
		}
	}

	return nil
}

func (mysql mysql_driver) Close(db *sql.DB) {
}

func (mysql mysql_driver) InsertActivity(db *sql.DB, activity ActivitySummary) error {
	stmt := `REPLACE INTO activities (
		id,
		start_time,
		sport,
		distance, duration, records
	) VALUES (?, ?, ?, ?, ?, ?)`

	_, err := db.Exec(stmt, activity.Activity, activity.StartTime.UTC().Unix(),
		activity.Sport, activity.Distance, activity.Duration, activity.Records)
	return err
}

func (mysql mysql_driver) InsertSample(db *sql.DB, activity string, metric string, timestamp int64, min float64, max float64, avg float64) error {
	stmt := `INSERT INTO samples (
		activity,
		metric,
		timestamp,
		min, max, avg
	) VALUES (?, ?, ?, ?, ?, ?)`

	_, err := db.Exec(stmt, activity, metric, timestamp, min, max, avg)
	return err
}

func (mysql mysql_driver) QueryActivities(db *sql.DB) (*sql.Rows, error) {
	stmt := `SELECT id,start_time,sport,distance,duration,records FROM activities
		ORDER BY start_time DESC`
	return db.Query(stmt)
}

func (mysql mysql_driver) QueryActivity(db *sql.DB, activity string) *sql.Row {
	stmt := `SELECT id,start_time,sport,distance,duration,records FROM activities
		WHERE id = ?`
	return db.QueryRow(stmt, activity)
}

func (mysql mysql_driver) QueryLast(db *sql.DB, activity string, metric string) (float64, error) {
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

func (mysql mysql_driver) QuerySamples(db *sql.DB, activity string, metric string) (*sql.Rows, error) {
	stmt := `SELECT timestamp,min,max,avg FROM samples
		WHERE
			activity = ? AND
			metric = ?
		ORDER BY timestamp`
	return db.Query(stmt, activity, metric)
}

func (mysql mysql_driver) QuerySamplesInterval(db *sql.DB, activity string, metric string, interval int64) (*sql.Rows, error) {
	stmt := `SELECT
			FLOOR(timestamp/?) * ? as ts,
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

func (mysql mysql_driver) QueryTrack(db *sql.DB, activity string) (*sql.Rows, error) {
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
