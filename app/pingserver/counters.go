package pingserver

import (
	"fmt"
	"sync/atomic"
)

// Counters contains server statistics.
type Counters struct {
	NServed  uint64 `json:"nServed"`  // well-formed probes answered
	NIgnored uint64 `json:"nIgnored"` // Interests rejected by probe name validation
}

func (cnt Counters) String() string {
	return fmt.Sprintf("%dserved %dignored", cnt.NServed, cnt.NIgnored)
}

// ReadCounters returns current statistics.
func (s *Server) ReadCounters() (cnt Counters) {
	cnt.NServed = atomic.LoadUint64(&s.nServed)
	cnt.NIgnored = atomic.LoadUint64(&s.nIgnored)
	return cnt
}
