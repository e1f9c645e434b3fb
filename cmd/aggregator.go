// Copyright © 2026 Sara Regibo

package cmd

import (
	"bytes"
	"encoding/json"
	"time"

	MQTT "github.com/eclipse/paho.mqtt.golang"
	"github.com/spf13/cobra"
	jww "github.com/spf13/jwalterweatherman"
	"github.com/spf13/viper"

	"github.com/SaraRegibo/summavi/analysis"
	"github.com/SaraRegibo/summavi/data"
)

// aggregatorCmd represents the aggregator command
var aggregatorCmd = &cobra.Command{
	Use:   "aggregator",
	Short: "Aggregates imported records",
	Long: `Subscribes to the record stream, reduces every metric of an activity
to fixed time windows (min/max/avg), and stores the result into the
database.`,
	Run: aggregator,
}

func aggregatorInit() {
	if !aggregatorCmd.Flags().HasFlags() {
		aggregatorCmd.Flags().Float64("window", 10, "Window length (in seconds) to aggregate samples into.")
		aggregatorCmd.Flags().Int("interval", 300, "Interval (in seconds) after which a silent activity is flushed.")
	}
}

func init() {
	RootCmd.AddCommand(aggregatorCmd)
	aggregatorInit()
	viper.BindPFlags(aggregatorCmd.Flags())
}

type mapKey struct {
	Activity string
	Metric   string
}

type point struct {
	When  time.Time
	Value float64
}

type buffers struct {
	points   map[mapKey][]point
	sport    map[string]string
	lastSeen map[string]time.Time
}

func aggregator(cmd *cobra.Command, args []string) {
	if verbose {
		jww.SetStdoutThreshold(jww.LevelTrace)
	}

	db, err := data.OpenDatabase()
	if err != nil {
		jww.FATAL.Println(err)
		panic(err)
	}
	defer db.Close()

	recordChannel := make(chan data.RecordData)
	summaryChannel := make(chan data.ActivitySummary)

	opts := MQTT.NewClientOptions().AddBroker(viper.GetString("broker")).SetClientID("aggregator").SetCleanSession(true)

	opts.OnConnect = func(c MQTT.Client) {
		if token := c.Subscribe("/summavi/record", 0, func(client MQTT.Client, msg MQTT.Message) {
			var record data.RecordData
			if err := json.NewDecoder(bytes.NewReader(msg.Payload())).Decode(&record); err != nil {
				jww.ERROR.Println(err)
				return
			}
			recordChannel <- record
		}); token.Wait() && token.Error() != nil {
			jww.FATAL.Println(token.Error())
			panic(token.Error())
		}

		if token := c.Subscribe("/summavi/activity", 0, func(client MQTT.Client, msg MQTT.Message) {
			var summary data.ActivitySummary
			if err := json.NewDecoder(bytes.NewReader(msg.Payload())).Decode(&summary); err != nil {
				jww.ERROR.Println(err)
				return
			}
			summaryChannel <- summary
		}); token.Wait() && token.Error() != nil {
			jww.FATAL.Println(token.Error())
			panic(token.Error())
		}
	}

	client := MQTT.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		jww.FATAL.Println(token.Error())
		panic(token.Error())
	}
	defer client.Disconnect(0)

	ticker := time.NewTicker(time.Duration(viper.GetInt("interval")) * time.Second)

	thedata := buffers{
		points:   make(map[mapKey][]point),
		sport:    make(map[string]string),
		lastSeen: make(map[string]time.Time),
	}
	for {
		select {
		case <-ticker.C:
			flushStale(&thedata, db)
		case record := <-recordChannel:
			addRecord(&thedata, record)
		case summary := <-summaryChannel:
			flushActivity(&thedata, summary, db)
		}
	}
}

func addRecord(thedata *buffers, record data.RecordData) {
	jww.TRACE.Printf("Adding record %s @ %s", record.Activity, record.TimeStamp)
	for metric, value := range record.Data {
		key := mapKey{
			Activity: record.Activity,
			Metric:   metric,
		}
		thedata.points[key] = append(thedata.points[key], point{record.TimeStamp, value})
	}
	thedata.sport[record.Activity] = record.Sport
	thedata.lastSeen[record.Activity] = time.Now()
}

// flushActivity windows every buffered metric of the activity into
// min/max/avg samples and stores them, together with the activity row.
func flushActivity(thedata *buffers, summary data.ActivitySummary, db *data.Database) {
	window := viper.GetFloat64("window")
	if window <= 0 {
		window = 10
	}

	mean := func(_, values []float64) (float64, error) {
		return analysis.Mean(values), nil
	}

	for key, points := range thedata.points {
		if key.Activity != summary.Activity {
			continue
		}

		times := make([]float64, len(points))
		values := make([]float64, len(points))
		for i, p := range points {
			times[i] = float64(p.When.UTC().Unix())
			values[i] = p.Value
		}

		for w := range analysis.MovingWindow(times, values, window, window, mean) {
			slice := values[w.BeginIndex : w.EndIndex+1]
			err := db.InsertSample(key.Activity, key.Metric, int64(w.Begin),
				analysis.Minimum(slice), analysis.Maximum(slice), w.Value)
			if err != nil {
				jww.ERROR.Println(err)
			}
		}

		delete(thedata.points, key)
	}
	delete(thedata.sport, summary.Activity)
	delete(thedata.lastSeen, summary.Activity)

	if err := db.InsertActivity(summary); err != nil {
		jww.ERROR.Println(err)
		return
	}
	jww.INFO.Printf("Stored %s (%d records)", summary.Activity, summary.Records)
}

// flushStale flushes activities whose record stream went silent without a
// summary, synthesizing the summary from the buffered records.
func flushStale(thedata *buffers, db *data.Database) {
	interval := time.Duration(viper.GetInt("interval")) * time.Second

	for activity, seen := range thedata.lastSeen {
		if time.Since(seen) < interval {
			continue
		}
		jww.WARN.Printf("Flushing stale activity %s", activity)
		flushActivity(thedata, synthesizeSummary(thedata, activity), db)
	}
}

// synthesizeSummary builds an activity summary from the buffered records
// alone, for activities whose stream went silent before a summary arrived.
// The record count is that of the densest metric and the distance is the
// last buffered distance value.
func synthesizeSummary(thedata *buffers, activity string) data.ActivitySummary {
	summary := data.ActivitySummary{
		Activity: activity,
		Sport:    thedata.sport[activity],
	}
	var first, last time.Time
	for key, points := range thedata.points {
		if key.Activity != activity || len(points) == 0 {
			continue
		}
		if len(points) > summary.Records {
			summary.Records = len(points)
		}
		if key.Metric == "distance" {
			summary.Distance = points[len(points)-1].Value
		}
		if first.IsZero() || points[0].When.Before(first) {
			first = points[0].When
		}
		if points[len(points)-1].When.After(last) {
			last = points[len(points)-1].When
		}
	}
	summary.StartTime = first
	if !first.IsZero() {
		summary.Duration = last.Sub(first).Seconds()
	}
	return summary
}
