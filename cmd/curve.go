// Copyright © 2026 Sara Regibo

package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	jww "github.com/spf13/jwalterweatherman"
	"github.com/spf13/viper"

	"github.com/SaraRegibo/summavi/analysis"
	"github.com/SaraRegibo/summavi/data"
	"github.com/SaraRegibo/summavi/fitfile"
)

// curveCmd represents the curve command
var curveCmd = &cobra.Command{
	Use:   "curve [activity]",
	Short: "Power duration curve",
	Long: `Computes the power duration curve of an activity: the best average
power sustained for every window duration.

The curve is computed from the samples stored in the database, or
straight from a FIT file when --file is given. The window parameters
come from the pdc settings group.`,
	Run: curve,
}

func curveInit() {
	if !curveCmd.Flags().HasFlags() {
		curveCmd.Flags().String("file", "", "Compute the curve from this FIT file instead of the database")
		curveCmd.Flags().Bool("json", false, "Output the curve as JSON")
	}
}

func init() {
	RootCmd.AddCommand(curveCmd)
	curveInit()
	viper.BindPFlags(curveCmd.Flags())

	viper.SetDefault("pdc", map[string]interface{}{
		"granularity": 1.0,
		"minwindow":   10.0,
		"step":        60.0,
	})
}

// pdcSettings returns the power duration curve parameters from the pdc
// settings group, falling back to the defaults for missing or nonsense
// values.
func pdcSettings() (granularity, minWindow, step float64) {
	granularity, minWindow, step = 1, 10, 60

	sub := viper.Sub("pdc")
	if sub == nil {
		return granularity, minWindow, step
	}
	if v := sub.GetFloat64("granularity"); v > 0 {
		granularity = v
	}
	if v := sub.GetFloat64("minwindow"); v > 0 {
		minWindow = v
	}
	if v := sub.GetFloat64("step"); v > 0 {
		step = v
	}
	return granularity, minWindow, step
}

func curve(cmd *cobra.Command, args []string) {
	if verbose {
		jww.SetStdoutThreshold(jww.LevelTrace)
	}

	var times, power []float64

	if filename := viper.GetString("file"); filename != "" {
		activity, err := fitfile.Decode(filename)
		if err != nil {
			jww.FATAL.Println(err)
			panic(err)
		}
		times, power = activity.Series("power")
	} else {
		if len(args) != 1 {
			jww.ERROR.Println("curve needs an activity id or --file")
			cmd.Usage()
			return
		}

		db, err := data.OpenDatabase()
		if err != nil {
			jww.FATAL.Println(err)
			panic(err)
		}
		defer db.Close()

		first := int64(0)
		for row := range db.QuerySamples(args[0], "power") {
			if len(times) == 0 {
				first = row.Timestamp
			}
			times = append(times, float64(row.Timestamp-first))
			power = append(power, row.Avg)
		}
	}

	if len(times) == 0 {
		jww.ERROR.Println("no power data")
		return
	}

	granularity, minWindow, step := pdcSettings()
	result := analysis.PowerDurationCurve(times, power, granularity, minWindow, step)

	if viper.GetBool("json") {
		json.NewEncoder(os.Stdout).Encode(result)
		return
	}
	for _, point := range result {
		fmt.Printf("%6.0f s %7.1f W\n", point.Duration, point.Power)
	}
}
