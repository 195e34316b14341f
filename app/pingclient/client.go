// Package pingclient implements a reachability test client that periodically
// sends probe Interests under a name prefix and measures round-trip time.
package pingclient

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/usnistgov/ndn-dpdk/core/logging"
	"github.com/usnistgov/ndn-dpdk/ndn"
	"github.com/usnistgov/ndn-dpdk/ndn/endpoint"
	"go.uber.org/zap"

	"github.com/ndn-go/ndnping/app/ping"
	"github.com/ndn-go/ndnping/core/runningstat"
)

var logger = logging.New("pingclient")

// Client is a ping session.
type Client struct {
	cfg    Config
	prefix string // ping prefix URI

	table *Table
	rtt   *runningstat.Stat

	nSent     uint64
	nReceived uint64
	next      uint64
	random    bool
	start     time.Time
}

// New creates a Client.
func New(cfg Config) (*Client, error) {
	if e := cfg.applyDefaults(); e != nil {
		return nil, e
	}

	c := &Client{
		cfg:    cfg,
		prefix: cfg.Prefix + "/" + ping.Component,
		table:  NewTable(),
		rtt:    runningstat.New(),
		random: cfg.FirstNumber < 0,
	}
	if !c.random {
		c.next = uint64(cfg.FirstNumber)
	}
	if cfg.Identifier != "" {
		c.prefix += "/" + cfg.Identifier
	}
	return c, nil
}

type probeResult struct {
	name string
	err  error
	at   time.Time
}

// Run executes the ping session.
// A bounded session finishes after Count probes have been sent and every probe
// has been resolved by a reply or timeout. Canceling ctx prints the statistics
// summary immediately and returns ctx.Err() without draining outstanding probes.
func (c *Client) Run(ctx context.Context) error {
	c.start = time.Now()
	c.printf("NDNPING %s\n", c.cfg.Prefix)

	results := make(chan probeResult)
	ticker := time.NewTicker(c.cfg.Interval)
	defer ticker.Stop()

	c.send(ctx, results)
	for !c.finished() {
		select {
		case <-ctx.Done():
			c.printSummary()
			return ctx.Err()
		case <-ticker.C:
			if c.cfg.Count <= 0 || c.nSent < uint64(c.cfg.Count) {
				c.send(ctx, results)
			}
		case res := <-results:
			c.handleResult(res)
		}
	}
	c.printSummary()
	return nil
}

func (c *Client) finished() bool {
	return c.cfg.Count > 0 && c.nSent >= uint64(c.cfg.Count) && c.table.Pending() == 0
}

func (c *Client) send(ctx context.Context, results chan<- probeResult) {
	num := c.nextNumber()
	name := c.prefix + "/" + strconv.FormatUint(num, 10)
	if e := c.table.Put(name, Record{Number: num, SentAt: time.Now()}); e != nil {
		logger.Warn("probe number collision, probe skipped",
			zap.String("name", name),
		)
		return
	}
	c.nSent++

	interest := c.makeInterest(name)
	go func() {
		_, e := endpoint.Consume(ctx, interest, endpoint.ConsumerOptions{Fw: c.cfg.Fw})
		select {
		case results <- probeResult{name: name, err: e, at: time.Now()}:
		case <-ctx.Done():
		}
	}()
}

func (c *Client) nextNumber() uint64 {
	if c.random {
		return uint64(rand.Int63())
	}
	num := c.next
	c.next++
	return num
}

func (c *Client) makeInterest(name string) ndn.Interest {
	args := []interface{}{name, c.cfg.Lifetime}
	if !c.cfg.AllowCached {
		args = append(args, ndn.MustBeFreshFlag)
	}
	return ndn.MakeInterest(args...)
}

func (c *Client) handleResult(res probeResult) {
	rec, e := c.table.Take(res.name)
	if e != nil {
		logger.Debug("stray notification",
			zap.String("name", res.name),
			zap.Error(res.err),
		)
		return
	}

	rtt := res.at.Sub(rec.SentAt)
	switch {
	case res.err == nil:
		c.nReceived++
		ms := float64(rtt) / float64(time.Millisecond)
		c.rtt.Push(ms)
		c.printf("data from %s: number = %d\trtt = %.3f ms\n", c.cfg.Prefix, rec.Number, ms)
	case errors.Is(res.err, endpoint.ErrExpire):
		c.printf("timeout from %s: number = %d\n", c.cfg.Prefix, rec.Number)
	default:
		logger.Warn("failed to express Interest",
			zap.String("name", res.name),
			zap.Error(res.err),
		)
	}
}

// ReadCounters returns current statistics.
func (c *Client) ReadCounters() (cnt Counters) {
	cnt.NSent = c.nSent
	cnt.NReceived = c.nReceived
	cnt.NPending = uint64(c.table.Pending())
	cnt.Rtt = c.rtt.Read()
	cnt.Elapsed = time.Since(c.start)
	return cnt
}

func (c *Client) printf(format string, args ...interface{}) {
	if c.cfg.Timestamp {
		now := time.Now()
		fmt.Fprintf(c.cfg.Output, "%d.%06d: ", now.Unix(), now.Nanosecond()/1000)
	}
	fmt.Fprintf(c.cfg.Output, format, args...)
}

func (c *Client) printSummary() {
	cnt := c.ReadCounters()
	fmt.Fprintf(c.cfg.Output, "\n--- %s ndnping statistics ---\n", c.cfg.Prefix)
	if cnt.NSent > 0 {
		fmt.Fprintf(c.cfg.Output, "%d Interests transmitted, %d Data received, %.1f%% packet loss, time %d ms\n",
			cnt.NSent, cnt.NReceived, cnt.Loss(), cnt.Elapsed.Milliseconds())
	}
	if cnt.Rtt.Count > 0 {
		fmt.Fprintf(c.cfg.Output, "rtt min/avg/max/mdev = %.3f/%.3f/%.3f/%.3f ms\n",
			cnt.Rtt.Min, cnt.Rtt.Mean, cnt.Rtt.Max, cnt.Rtt.Stdev)
	}
}
