// Package pingserver implements a reachability test server that answers probe
// Interests under a name prefix with a short acknowledgment Data.
package pingserver

import (
	"context"
	"sync/atomic"

	"github.com/usnistgov/ndn-dpdk/core/logging"
	"github.com/usnistgov/ndn-dpdk/ndn"
	"github.com/usnistgov/ndn-dpdk/ndn/endpoint"
	"go.uber.org/zap"

	"github.com/ndn-go/ndnping/app/ping"
)

var logger = logging.New("pingserver")

// Server is a ping responder.
type Server struct {
	cfg      Config
	prefix   ndn.Name // cfg.Prefix + "/ping"
	producer endpoint.Producer

	nServed  uint64
	nIgnored uint64
}

// Start creates and starts a Server.
func Start(ctx context.Context, cfg Config) (*Server, error) {
	if e := cfg.applyDefaults(); e != nil {
		return nil, e
	}

	s := &Server{
		cfg:    cfg,
		prefix: ping.Prefix(cfg.Prefix),
	}
	producer, e := endpoint.Produce(ctx, endpoint.ProducerOptions{
		Prefix:      s.prefix,
		NoAdvertise: cfg.NoAdvertise,
		Handler:     s.handleInterest,
		DataSigner:  cfg.DataSigner,
		Fw:          cfg.Fw,
	})
	if e != nil {
		return nil, e
	}
	s.producer = producer

	logger.Info("server started",
		zap.Stringer("prefix", s.prefix),
		zap.Duration("freshness", cfg.Freshness),
	)
	return s, nil
}

// Close stops the server.
func (s *Server) Close() error {
	logger.Info("server stopped",
		zap.Stringer("prefix", s.prefix),
		zap.Stringer("cnt", s.ReadCounters()),
	)
	return s.producer.Close()
}

// handleInterest may be invoked concurrently.
func (s *Server) handleInterest(ctx context.Context, interest ndn.Interest) (ndn.Data, error) {
	number, ok := ping.Parse(interest.Name, s.prefix)
	if !ok {
		atomic.AddUint64(&s.nIgnored, 1)
		return ndn.Data{}, nil
	}

	atomic.AddUint64(&s.nServed, 1)
	logger.Debug("probe",
		zap.Stringer("name", interest.Name),
		zap.Uint64("number", number),
	)
	return s.makeAck(interest), nil
}

// makeAck constructs the acknowledgment.
// The Data name echoes the Interest name verbatim.
func (s *Server) makeAck(interest ndn.Interest) ndn.Data {
	args := []interface{}{interest.Name, s.cfg.Payload}
	if s.cfg.Freshness >= 0 {
		args = append(args, s.cfg.Freshness)
	}
	return ndn.MakeData(args...)
}
