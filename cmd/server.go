// Copyright © 2026 Sara Regibo

package cmd

import (
	"bytes"
	"encoding/json"
	"html/template"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	MQTT "github.com/eclipse/paho.mqtt.golang"
	"github.com/spf13/cobra"
	jww "github.com/spf13/jwalterweatherman"
	"github.com/spf13/viper"

	"github.com/SaraRegibo/summavi/analysis"
	"github.com/SaraRegibo/summavi/data"
	"github.com/SaraRegibo/summavi/units"
)

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:     "server",
	Aliases: []string{"web", "serve", "webserver"},
	Short:   "Web Server",
	Long:    `Launches the web server.`,
	Run:     server,
}

func serverInit() {
	if !serverCmd.Flags().HasFlags() {
		serverCmd.Flags().String("webroot", "webroot", "Root directory for the web server.")
		serverCmd.Flags().String("address", ":0", "Address and port to listen on.")
	}
}

func init() {
	RootCmd.AddCommand(serverCmd)
	serverInit()
	viper.BindPFlags(serverCmd.Flags())

	viper.SetDefault("units", map[string]string{
		"Distance": "km",
		"Speed":    "km/h",
	})
	viper.SetDefault("charts", []map[string]string{
		{"metric": "power", "label": "Power"},
		{"metric": "heart_rate", "label": "Heart Rate"},
		{"metric": "cadence", "label": "Cadence"},
		{"metric": "ground_time", "label": "Ground Time"},
		{"metric": "vertical_oscillation", "label": "Vertical Oscillation"},
		{"metric": "form_power", "label": "Form Power"},
		{"metric": "air_power", "label": "Air Power"},
		{"metric": "leg_spring_stiffness", "label": "Leg Spring Stiffness"},
	})
}

func server(cmd *cobra.Command, args []string) {
	if verbose {
		jww.SetStdoutThreshold(jww.LevelTrace)
	}

	live := newLiveView()

	recorddata := make(chan data.RecordData, 1)

	opts := MQTT.NewClientOptions().AddBroker(viper.GetString("broker")).SetClientID("web").SetCleanSession(true)
	opts.OnConnect = func(c MQTT.Client) {
		if token := c.Subscribe("/summavi/record", 0, func(client MQTT.Client, msg MQTT.Message) {
			var record data.RecordData
			if err := json.NewDecoder(bytes.NewReader(msg.Payload())).Decode(&record); err != nil {
				jww.ERROR.Println(err)
				return
			}
			recorddata <- record
		}); token.Wait() && token.Error() != nil {
			jww.FATAL.Println(token.Error())
			panic(token.Error())
		}
	}

	opts.OnConnectionLost = func(c MQTT.Client, e error) {
		jww.ERROR.Println("MQTT Connection Lost", e)
		connect(c)
	}

	opts.AutoReconnect = false

	client := MQTT.NewClient(opts)
	connect(client)
	defer client.Disconnect(0)

	go func() {
		for record := range recorddata {
			live.update(record)
		}
	}()

	db, err := data.OpenDatabase()
	if err != nil {
		jww.FATAL.Println(err)
		panic(err)
	}

	var d templateData
	d.Units = viper.GetStringMapString("units")
	bytes, err := json.Marshal(convertToStringMap("charts"))
	if err == nil {
		d.Charts = string(bytes)
	}

	staticServer := http.FileServer(http.Dir(viper.GetString("webroot")))
	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		serveTemplate(w, r, staticServer, d)
	})

	http.HandleFunc("/activities.json", func(w http.ResponseWriter, r *http.Request) {
		activitiesHandler(w, r, db)
	})

	http.HandleFunc("/series.json", func(w http.ResponseWriter, r *http.Request) {
		seriesHandler(w, r, db)
	})

	http.HandleFunc("/track.json", func(w http.ResponseWriter, r *http.Request) {
		trackHandler(w, r, db)
	})

	http.HandleFunc("/curve.json", func(w http.ResponseWriter, r *http.Request) {
		curveHandler(w, r, db)
	})

	http.HandleFunc("/currentdata.json", func(w http.ResponseWriter, r *http.Request) {
		var result struct {
			Activity string
			Data     map[string]float64
		}
		result.Activity, result.Data = live.snapshot()
		json.NewEncoder(w).Encode(result)
	})

	listener, err := net.Listen("tcp", viper.GetString("address"))
	if err != nil {
		jww.FATAL.Println(err)
		panic(err)
	}
	addr := listener.Addr()
	jww.INFO.Println("Listening on", addr.String())

	http.Serve(listener, nil)
}

// liveView holds the most recent value of every metric of the activity
// currently streaming in. It is written by the MQTT subscriber and read
// by the currentdata handler, so access goes through the mutex.
type liveView struct {
	mutex    sync.Mutex
	activity string
	values   map[string]float64
}

func newLiveView() *liveView {
	return &liveView{values: make(map[string]float64)}
}

func (live *liveView) update(record data.RecordData) {
	live.mutex.Lock()
	defer live.mutex.Unlock()

	if record.Activity != live.activity {
		live.activity = record.Activity
		live.values = make(map[string]float64)
	}
	for metric, value := range record.Data {
		live.values[metric] = value
	}
}

func (live *liveView) snapshot() (string, map[string]float64) {
	live.mutex.Lock()
	defer live.mutex.Unlock()

	values := make(map[string]float64, len(live.values))
	for metric, value := range live.values {
		values[metric] = value
	}
	return live.activity, values
}

func connect(client MQTT.Client) {
	timeout := 1 * time.Second

	for {
		if token := client.Connect(); token.Wait() && token.Error() != nil {
			jww.ERROR.Println(token.Error())
			jww.ERROR.Printf("Waiting %d seconds before reconnecting...", timeout/time.Second)
			time.Sleep(timeout)
			timeout *= 2
			if timeout > 5*time.Minute {
				timeout = 5 * time.Minute
			}
			continue
		}
		break
	}
}

func convertToStringMap(name string) []map[string]string {
	if result, ok := viper.Get(name).([]map[string]string); ok {
		return result
	} else if array, ok := viper.Get(name).([]interface{}); ok {
		result := make([]map[string]string, len(array))
		for index, query := range array {
			if interfaceMap, ok := query.(map[interface{}]interface{}); ok {
				result[index] = make(map[string]string)
				for k, v := range interfaceMap {
					if kstr, ok := k.(string); ok {
						if vstr, ok := v.(string); ok {
							result[index][kstr] = vstr
						}
					}
				}
			}
		}
		return result
	}
	return nil
}

type templateData struct {
	Units  map[string]string
	Charts string
}

func serveTemplate(w http.ResponseWriter, r *http.Request, static http.Handler, thedata templateData) {
	temp, err := template.ParseGlob(viper.GetString("webroot") + "/*.html")
	if err != nil {
		jww.FATAL.Println(err)
		panic(err)
	}
	name := strings.TrimPrefix(r.URL.Path, "/")
	if name == "" {
		name = "index.html"
	}
	if temp.Lookup(name) != nil {
		err = temp.ExecuteTemplate(w, name, thedata)
	} else {
		static.ServeHTTP(w, r)
	}
}

func activitiesHandler(w http.ResponseWriter, r *http.Request, db *data.Database) {
	var result struct {
		Activities []data.ActivitySummary
	}
	for activity := range db.QueryActivities() {
		result.Activities = append(result.Activities, activity)
	}
	json.NewEncoder(w).Encode(result)
}

func seriesHandler(w http.ResponseWriter, r *http.Request, db *data.Database) {
	activity := r.FormValue("activity")
	metric := r.FormValue("metric")

	interval, err := strconv.ParseInt(r.FormValue("interval"), 10, 64)
	if err != nil {
		interval = 0
	}

	var rows <-chan data.Row
	if interval > 1 {
		rows = db.QuerySamplesInterval(activity, metric, interval)
	} else {
		rows = db.QuerySamples(activity, metric)
	}

	var result struct {
		Data      [][]interface{}
		Errorbars [][]interface{}
	}

	unitmap := viper.GetStringMapString("units")
	for row := range rows {
		t := row.Timestamp * 1000

		sub := make([]interface{}, 2)
		sub[0] = t
		sub[1] = convertUnit(unitmap, metric, row.Avg)
		result.Data = append(result.Data, sub)

		sub = make([]interface{}, 3)
		sub[0] = t
		sub[1] = convertUnit(unitmap, metric, row.Min)
		sub[2] = convertUnit(unitmap, metric, row.Max)
		result.Errorbars = append(result.Errorbars, sub)
	}
	json.NewEncoder(w).Encode(result)
}

func convertUnit(unitmap map[string]string, metric string, input float64) float64 {
	switch metric {
	case "speed":
		u := units.NewSpeedMetersPerSecond(input)
		if v2, err := u.Get(unitmap["speed"]); err == nil {
			return v2
		} else {
			return input
		}
	case "distance":
		u := units.NewDistanceMeters(input)
		if v2, err := u.Get(unitmap["distance"]); err == nil {
			return v2
		} else {
			return input
		}
	default:
		return input
	}
}

func trackHandler(w http.ResponseWriter, r *http.Request, db *data.Database) {
	activity := r.FormValue("activity")

	var result struct {
		Track [][]float64
	}
	for row := range db.QueryTrack(activity) {
		result.Track = append(result.Track, []float64{row.Latitude, row.Longitude})
	}
	json.NewEncoder(w).Encode(result)
}

func curveHandler(w http.ResponseWriter, r *http.Request, db *data.Database) {
	activity := r.FormValue("activity")

	var times, power []float64
	first := int64(0)
	for row := range db.QuerySamples(activity, "power") {
		if len(times) == 0 {
			first = row.Timestamp
		}
		times = append(times, float64(row.Timestamp-first))
		power = append(power, row.Avg)
	}

	granularity, minWindow, step := pdcSettings()

	var result struct {
		Curve []analysis.CurvePoint
	}
	result.Curve = analysis.PowerDurationCurve(times, power, granularity, minWindow, step)
	json.NewEncoder(w).Encode(result)
}
