// Package runningstat computes min, max, mean, and mean deviation of a sample stream.
package runningstat

import (
	"math"

	"github.com/zyedidia/generic"
)

// Stat accumulates samples.
// It is not safe for concurrent use.
type Stat struct {
	count uint64
	min   float64
	max   float64
	sum   float64
	sumSq float64
}

// New creates a Stat.
func New() *Stat {
	return &Stat{
		min: math.Inf(1),
		max: math.Inf(-1),
	}
}

// Push adds a sample.
func (s *Stat) Push(x float64) {
	s.count++
	s.min = generic.Min(s.min, x)
	s.max = generic.Max(s.max, x)
	s.sum += x
	s.sumSq += x * x
}

// Read returns current counters as Snapshot.
func (s *Stat) Read() Snapshot {
	return newSnapshot(s.count, s.min, s.max, s.sum, s.sumSq)
}
