package runningstat

import "math"

// Snapshot contains a snapshot of Stat reading.
type Snapshot struct {
	Count uint64  `json:"count"`
	Min   float64 `json:"min"`   // valid if Count > 0
	Max   float64 `json:"max"`   // valid if Count > 0
	Mean  float64 `json:"mean"`  // valid if Count > 0
	Stdev float64 `json:"stdev"` // valid if Count > 0
}

func newSnapshot(count uint64, min, max, sum, sumSq float64) (o Snapshot) {
	o.Count = count
	if count == 0 {
		return o
	}
	n := float64(count)
	o.Min, o.Max = min, max
	o.Mean = sum / n
	o.Stdev = math.Sqrt(math.Max(0, sumSq/n-o.Mean*o.Mean))
	return o
}
