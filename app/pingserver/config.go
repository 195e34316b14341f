package pingserver

import (
	"errors"
	"time"

	"github.com/usnistgov/ndn-dpdk/ndn"
	"github.com/usnistgov/ndn-dpdk/ndn/l3"
)

// DefaultFreshness is the FreshnessPeriod assigned to replies unless configured.
const DefaultFreshness = time.Second

// ErrPrefix indicates a missing name prefix.
var ErrPrefix = errors.New("name prefix is empty")

// Config describes a ping responder.
// It is immutable after the Server is started.
type Config struct {
	// Prefix is the served name prefix. The "ping" component is appended once at startup.
	Prefix ndn.Name

	// Freshness assigns the FreshnessPeriod of reply Data.
	// Zero selects DefaultFreshness. A negative value omits FreshnessPeriod,
	// leaving cache lifetime to downstream defaults.
	Freshness time.Duration

	Payload     []byte       // reply payload, default "ping ack"
	NoAdvertise bool         // whether to skip prefix advertisement
	DataSigner  ndn.Signer   // optional Data signer
	Fw          l3.Forwarder // L3 forwarder, default is the default Forwarder
}

func (cfg *Config) applyDefaults() error {
	if len(cfg.Prefix) == 0 {
		return ErrPrefix
	}
	if cfg.Freshness == 0 {
		cfg.Freshness = DefaultFreshness
	}
	if cfg.Payload == nil {
		cfg.Payload = []byte("ping ack")
	}
	return nil
}
