package data

import (
	"database/sql"
	"time"

	"github.com/spf13/viper"
)

type Database struct {
	db     *sql.DB
	driver DBdriver
}

// Row is one aggregated sample of a metric series.
type Row struct {
	Timestamp     int64
	Min, Max, Avg float64
}

// TrackRow pairs the latitude and longitude samples that share a timestamp.
type TrackRow struct {
	Timestamp int64
	Latitude  float64
	Longitude float64
}

var drivers map[string]DBdriver

type DBdriver interface {
	OpenDatabase(db *sql.DB) error
	Close(db *sql.DB)
	InsertActivity(db *sql.DB, activity ActivitySummary) error
	InsertSample(db *sql.DB, activity string, metric string, timestamp int64, min float64, max float64, avg float64) error
	QueryActivities(db *sql.DB) (*sql.Rows, error)
	QueryActivity(db *sql.DB, activity string) *sql.Row
	QueryLast(db *sql.DB, activity string, metric string) (float64, error)
	QuerySamples(db *sql.DB, activity string, metric string) (*sql.Rows, error)
	QuerySamplesInterval(db *sql.DB, activity string, metric string, interval int64) (*sql.Rows, error)
	QueryTrack(db *sql.DB, activity string) (*sql.Rows, error)
}

func init() {
	drivers = make(map[string]DBdriver)
}

func RegisterDBDriver(name string, driver DBdriver) {
	drivers[name] = driver
}

func DBDrivers() []string {
	names := make([]string, len(drivers))
	i := 0
	for name := range drivers {
		names[i] = name
		i++
	}
	return names
}

func OpenDatabase() (*Database, error) {
	db, err := sql.Open(viper.GetString("dbDriver"), viper.GetString("database"))
	if err != nil {
		return nil, err
	}

	driver := drivers[viper.GetString("dbDriver")]
	if err := driver.OpenDatabase(db); err != nil {
		return nil, err
	}

	return &Database{db, driver}, nil
}

func (database *Database) Close() {
	database.driver.Close(database.db)
	database.db.Close()
}

func (database *Database) InsertActivity(activity ActivitySummary) error {
	return database.driver.InsertActivity(database.db, activity)
}

func (database *Database) InsertSample(activity string, metric string, timestamp int64, min float64, max float64, avg float64) error {
	return database.driver.InsertSample(database.db, activity, metric, timestamp, min, max, avg)
}

func (database *Database) QueryActivities() <-chan ActivitySummary {
	rows, err := database.driver.QueryActivities(database.db)
	if err != nil {
		ch := make(chan ActivitySummary)
		close(ch)
		return ch
	}

	ch := make(chan ActivitySummary, 16)
	go func() {
		defer rows.Close()
		for rows.Next() {
			var a ActivitySummary
			var start int64
			err := rows.Scan(&a.Activity, &start, &a.Sport, &a.Distance, &a.Duration, &a.Records)
			if err != nil {
				continue
			}
			a.StartTime = time.Unix(start, 0).UTC()
			ch <- a
		}
		close(ch)
	}()
	return ch
}

func (database *Database) QueryActivity(activity string) (ActivitySummary, error) {
	row := database.driver.QueryActivity(database.db, activity)

	var a ActivitySummary
	var start int64
	err := row.Scan(&a.Activity, &start, &a.Sport, &a.Distance, &a.Duration, &a.Records)
	if err != nil {
		return a, err
	}
	a.StartTime = time.Unix(start, 0).UTC()
	return a, nil
}

func (database *Database) QueryLast(activity string, metric string) (float64, error) {
	return database.driver.QueryLast(database.db, activity, metric)
}

func (database *Database) QuerySamples(activity string, metric string) <-chan Row {
	rows, err := database.driver.QuerySamples(database.db, activity, metric)
	if err != nil {
		return closedRowChannel()
	}
	return rowChannel(rows)
}

func (database *Database) QuerySamplesInterval(activity string, metric string, interval int64) <-chan Row {
	rows, err := database.driver.QuerySamplesInterval(database.db, activity, metric, interval)
	if err != nil {
		return closedRowChannel()
	}
	return rowChannel(rows)
}

func (database *Database) QueryTrack(activity string) <-chan TrackRow {
	rows, err := database.driver.QueryTrack(database.db, activity)
	if err != nil {
		ch := make(chan TrackRow)
		close(ch)
		return ch
	}

	ch := make(chan TrackRow, 64)
	go func() {
		defer rows.Close()
		for rows.Next() {
			var row TrackRow
			err := rows.Scan(&row.Timestamp, &row.Latitude, &row.Longitude)
			if err != nil {
				continue
			}
			ch <- row
		}
		close(ch)
	}()
	return ch
}

// closedRowChannel lets callers range over a failed query without blocking.
func closedRowChannel() <-chan Row {
	ch := make(chan Row)
	close(ch)
	return ch
}

func rowChannel(rows *sql.Rows) <-chan Row {
	ch := make(chan Row, 64)
	go func() {
		defer rows.Close()
		for rows.Next() {
			var timestamp int64
			var min, max, avg float64

			err := rows.Scan(&timestamp, &min, &max, &avg)
			if err != nil {
				continue
			}
			ch <- Row{timestamp, min, max, avg}
		}
		close(ch)
	}()
	return ch
}
