package chart

import (
	"strconv"

	"gonum.org/v1/plot"
)

// costTicks returns the cost axis ticks. Most estimates fall below
// 10 cents/kWh, so the low end gets a tick every 2 cents while the high
// end steps by 10, with the unit spelled out on the coarse ticks.
func costTicks() []plot.Tick {
	ticks := make([]plot.Tick, 0, 9)
	for _, v := range []float64{2, 4, 6, 8, 10} {
		ticks = append(ticks, plot.Tick{Value: v, Label: strconv.FormatFloat(v, 'f', 0, 64)})
	}
	for _, v := range []float64{20, 30, 40, 50} {
		ticks = append(ticks, plot.Tick{Value: v, Label: strconv.FormatFloat(v, 'f', 0, 64) + " ¢/kWh"})
	}
	return ticks
}
