// Copyright © 2026 Sara Regibo

package analysis

// WindowFunc is applied to the time and value slices contained in a
// single window. Returning an error drops the window from the output.
type WindowFunc func(times, values []float64) (float64, error)

// Window is the output for one non-empty window: its time boundaries,
// the index range of the points it contains, and the WindowFunc result.
type Window struct {
	Begin, End float64
	BeginIndex int
	EndIndex   int
	Value      float64
}

// MovingWindow slides a fixed-length window over a time series and
// applies fn to the points inside each window.
//
// The boundaries of window n are [times[0]+n*step, times[0]+n*step+length).
// Windows that contain no points are skipped; gaps in the series shrink a
// window's point count, never its time span. The number of windows can be
// large, so results are delivered over a channel instead of a slice.
func MovingWindow(times, values []float64, length, step float64, fn WindowFunc) <-chan Window {
	ch := make(chan Window, 16)

	go func() {
		defer close(ch)

		if len(times) == 0 || len(times) != len(values) || length <= 0 || step <= 0 {
			return
		}

		begin := times[0]
		end := begin + length
		last := times[len(times)-1]

		lo := 0
		for {
			for lo < len(times) && times[lo] < begin {
				lo++
			}
			hi := lo
			for hi < len(times) && times[hi] < end {
				hi++
			}

			if hi > lo {
				value, err := fn(times[lo:hi], values[lo:hi])
				if err == nil {
					ch <- Window{
						Begin:      begin,
						End:        end,
						BeginIndex: lo,
						EndIndex:   hi - 1,
						Value:      value,
					}
				}
			}

			// Once the window reaches past the last time point there is
			// nothing left to cover.
			if end < last {
				begin += step
				end += step
			} else {
				return
			}
		}
	}()

	return ch
}
