package pingclient

import (
	"errors"
	"io"
	"os"
	"strings"
	"time"

	"github.com/usnistgov/ndn-dpdk/ndn"
	"github.com/usnistgov/ndn-dpdk/ndn/l3"
	"github.com/zyedidia/generic"
)

// Limits and defaults.
const (
	MinInterval     = 100 * time.Millisecond
	DefaultInterval = time.Second
	DefaultLifetime = time.Second
)

// Error conditions.
var (
	ErrPrefix     = errors.New("name prefix is empty")
	ErrIdentifier = errors.New("identifier must contain only letters")
)

// Config describes a ping session.
// It is immutable after the Client is created.
type Config struct {
	// Prefix is the name prefix to ping.
	// Probe Interests are named Prefix + "/ping" [+ "/" + Identifier] + "/" + number.
	Prefix string

	// Identifier distinguishes concurrent sessions pinging the same prefix.
	// It may contain only letters 'A'-'Z' and 'a'-'z'.
	Identifier string

	Interval    time.Duration // interval between probes, clamped to at least MinInterval
	Count       int           // total number of probes, zero or negative for unbounded
	FirstNumber int64         // first probe number; negative chooses a random number per probe
	AllowCached bool          // whether Data may come from in-network caches
	Timestamp   bool          // whether to print a timestamp before each output line

	Lifetime time.Duration // Interest lifetime, i.e. probe timeout
	Fw       l3.Forwarder  // L3 forwarder, default is the default Forwarder
	Output   io.Writer     // destination of printed output, default is stdout
}

func (cfg *Config) applyDefaults() error {
	cfg.Prefix = "/" + strings.Trim(strings.TrimPrefix(cfg.Prefix, "ndn:"), "/")
	if len(ndn.ParseName(cfg.Prefix)) == 0 {
		return ErrPrefix
	}
	if cfg.Identifier != "" && !isValidIdentifier(cfg.Identifier) {
		return ErrIdentifier
	}
	if cfg.Interval == 0 {
		cfg.Interval = DefaultInterval
	}
	cfg.Interval = generic.Max(cfg.Interval, MinInterval)
	if cfg.Lifetime == 0 {
		cfg.Lifetime = DefaultLifetime
	}
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}
	return nil
}

func isValidIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for _, ch := range s {
		if (ch < 'A' || ch > 'Z') && (ch < 'a' || ch > 'z') {
			return false
		}
	}
	return true
}
