package pingclient

import (
	"fmt"
	"time"

	"github.com/ndn-go/ndnping/core/runningstat"
)

// Counters contains session statistics.
type Counters struct {
	NSent     uint64               `json:"nSent"`
	NReceived uint64               `json:"nReceived"`
	NPending  uint64               `json:"nPending"`
	Rtt       runningstat.Snapshot `json:"rtt"` // in milliseconds
	Elapsed   time.Duration        `json:"elapsed"`
}

// Loss returns packet loss percentage, between 0 and 100.
func (cnt Counters) Loss() float64 {
	if cnt.NSent == 0 {
		return 0
	}
	return float64(cnt.NSent-cnt.NReceived) / float64(cnt.NSent) * 100
}

func (cnt Counters) String() string {
	s := fmt.Sprintf("%dI %dD(%0.1f%%loss)", cnt.NSent, cnt.NReceived, cnt.Loss())
	if cnt.Rtt.Count > 0 {
		s += fmt.Sprintf(" rtt=%0.3f/%0.3f/%0.3f/%0.3fms",
			cnt.Rtt.Min, cnt.Rtt.Mean, cnt.Rtt.Max, cnt.Rtt.Stdev)
	}
	return s
}
