// Copyright © 2026 Sara Regibo

package cmd

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"time"

	MQTT "github.com/eclipse/paho.mqtt.golang"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	jww "github.com/spf13/jwalterweatherman"
	"github.com/spf13/viper"

	"github.com/SaraRegibo/summavi/data"
	"github.com/SaraRegibo/summavi/fitfile"
)

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import [files]",
	Short: "Import FIT files",
	Long: `Decodes the given FIT activity files and publishes their records and
summaries to the MQTT broker. With --watch, every FIT file that appears
in the watched directory is imported as well.`,
	Run: importer,
}

func importInit() {
	if !importCmd.Flags().HasFlags() {
		importCmd.Flags().String("watch", "", "Directory to watch for new FIT files")
	}
}

func init() {
	RootCmd.AddCommand(importCmd)
	importInit()
	viper.BindPFlags(importCmd.Flags())
}

func importer(cmd *cobra.Command, args []string) {
	if verbose {
		jww.SetStdoutThreshold(jww.LevelTrace)
	}

	opts := MQTT.NewClientOptions().AddBroker(viper.GetString("broker")).SetClientID("import").SetCleanSession(true)

	client := MQTT.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		jww.FATAL.Println(token.Error())
		panic(token.Error())
	}
	defer client.Disconnect(0)

	for _, filename := range args {
		if err := importFile(filename, client); err != nil {
			jww.ERROR.Println(filename, err)
		}
	}

	if dir := viper.GetString("watch"); dir != "" {
		watchInbox(dir, client)
	}
}

func importFile(filename string, client MQTT.Client) error {
	activity, err := fitfile.Decode(filename)
	if err != nil {
		return err
	}

	jww.INFO.Printf("Importing %s as %s (%d records)", filename, activity.ID, len(activity.Records))

	for _, record := range activity.Records {
		message := data.RecordData{
			TimeStamp: record.Timestamp,
			Activity:  activity.ID,
			Sport:     activity.Sport,
			Data:      record.Data,
		}
		if err := publish(client, "/summavi/record", message); err != nil {
			return err
		}
	}

	summary := data.ActivitySummary{
		Activity:  activity.ID,
		Sport:     activity.Sport,
		StartTime: activity.StartTime,
		Distance:  activity.Distance,
		Duration:  activity.Duration,
		Records:   len(activity.Records),
	}
	return publish(client, "/summavi/activity", summary)
}

func publish(client MQTT.Client, topic string, message interface{}) error {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(message); err != nil {
		return err
	}
	if token := client.Publish(topic, 0, false, buf.Bytes()); token.Wait() && token.Error() != nil {
		return token.Error()
	}
	jww.TRACE.Printf("Publishing %s -> %s", topic, buf.Bytes())
	return nil
}

func watchInbox(dir string, client MQTT.Client) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		jww.FATAL.Println(err)
		panic(err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		jww.FATAL.Println(err)
		panic(err)
	}
	jww.INFO.Println("Watching", dir)

	imported := make(map[string]bool)
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Create) {
				continue
			}
			if strings.ToLower(filepath.Ext(event.Name)) != ".fit" {
				continue
			}
			if imported[event.Name] {
				continue
			}
			// The create event fires before the writer is done.
			time.Sleep(1 * time.Second)
			if err := importFile(event.Name, client); err != nil {
				jww.ERROR.Println(event.Name, err)
				continue
			}
			imported[event.Name] = true
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			jww.ERROR.Println(err)
		}
	}
}
