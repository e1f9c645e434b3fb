// Copyright © 2026 Sara Regibo

package cmd

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/SaraRegibo/summavi/data"
)

func TestLiveViewUpdate(t *testing.T) {
	live := newLiveView()

	live.update(data.RecordData{
		Activity: "20260517-073000-running",
		Data:     map[string]float64{"power": 240, "heart_rate": 150},
	})
	live.update(data.RecordData{
		Activity: "20260517-073000-running",
		Data:     map[string]float64{"power": 250},
	})

	activity, values := live.snapshot()
	if activity != "20260517-073000-running" {
		t.Errorf("unexpected activity %q", activity)
	}
	if values["power"] != 250 || values["heart_rate"] != 150 {
		t.Errorf("unexpected values %+v", values)
	}

	// A new activity starts from an empty view.
	live.update(data.RecordData{
		Activity: "20260518-081500-running",
		Data:     map[string]float64{"power": 180},
	})
	activity, values = live.snapshot()
	if activity != "20260518-081500-running" {
		t.Errorf("unexpected activity %q", activity)
	}
	if _, ok := values["heart_rate"]; ok {
		t.Error("heart rate leaked from the previous activity")
	}
}

func TestLiveViewConcurrent(t *testing.T) {
	live := newLiveView()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			live.update(data.RecordData{
				Activity: fmt.Sprintf("activity-%d", i%3),
				Data:     map[string]float64{"power": float64(i)},
			})
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			_, values := live.snapshot()
			for range values {
			}
		}
	}()
	wg.Wait()
}

func TestSnapshotIsACopy(t *testing.T) {
	live := newLiveView()
	live.update(data.RecordData{
		Activity:  "act",
		TimeStamp: time.Now(),
		Data:      map[string]float64{"power": 240},
	})

	_, values := live.snapshot()
	values["power"] = 0

	_, again := live.snapshot()
	if again["power"] != 240 {
		t.Errorf("snapshot aliases the live map, power = %f", again["power"])
	}
}
