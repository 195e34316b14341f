package runningstat_test

import (
	"math"
	"testing"

	"github.com/ndn-go/ndnping/core/runningstat"
)

func TestStatEmpty(t *testing.T) {
	assert, _ := makeAR(t)

	snap := runningstat.New().Read()
	assert.Zero(snap.Count)
	assert.Zero(snap.Min)
	assert.Zero(snap.Max)
	assert.Zero(snap.Mean)
	assert.Zero(snap.Stdev)
}

func TestStatSingle(t *testing.T) {
	assert, _ := makeAR(t)

	s := runningstat.New()
	s.Push(4)
	snap := s.Read()
	assert.EqualValues(1, snap.Count)
	assert.EqualValues(4, snap.Min)
	assert.EqualValues(4, snap.Max)
	assert.EqualValues(4, snap.Mean)
	assert.Zero(snap.Stdev)
}

func TestStatOrderIndependent(t *testing.T) {
	assert, _ := makeAR(t)

	orderings := [][]float64{
		{5, 2, 9},
		{9, 5, 2},
		{2, 9, 5},
	}
	for i, samples := range orderings {
		s := runningstat.New()
		for _, x := range samples {
			s.Push(x)
		}
		snap := s.Read()
		assert.EqualValues(3, snap.Count, "%d", i)
		assert.EqualValues(2, snap.Min, "%d", i)
		assert.EqualValues(9, snap.Max, "%d", i)
		assert.InDelta(16.0/3, snap.Mean, 1e-9, "%d", i)
		assert.InDelta(math.Sqrt(74.0/9), snap.Stdev, 1e-9, "%d", i)
	}
}
