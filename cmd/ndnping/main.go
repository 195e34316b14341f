// Command ndnping tests reachability of an NDN name prefix.
package main

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"
	"github.com/usnistgov/ndn-dpdk/ndn/l3"
	"github.com/usnistgov/ndn-dpdk/ndn/mgmt"
	"github.com/usnistgov/ndn-dpdk/ndn/mgmt/gqlmgmt"
	"go.uber.org/multierr"

	"github.com/ndn-go/ndnping/app/pingclient"
	"github.com/ndn-go/ndnping/mk/version"
)

var (
	client mgmt.Client
	face   mgmt.Face
	cfg    pingclient.Config
)

func openUplink() (e error) {
	if face, e = client.OpenFace(); e != nil {
		return e
	}
	fw := l3.GetDefaultForwarder()
	if _, e = fw.AddFace(face.Face()); e != nil {
		return e
	}
	fw.AddReadvertiseDestination(face)
	return nil
}

var app = &cli.App{
	Name:      "ndnping",
	Version:   version.Get(),
	Usage:     "Ping an NDN name prefix using Interests named prefix/ping/number.",
	ArgsUsage: "prefix",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "gqlserver",
			Usage:   "GraphQL `endpoint` of NDN-DPDK daemon.",
			Value:   "http://127.0.0.1:3030/",
			EnvVars: []string{"GQLSERVER"},
		},
		&cli.DurationFlag{
			Name:        "interval",
			Aliases:     []string{"i"},
			Usage:       "The `interval` between probes, at least 100ms.",
			Value:       pingclient.DefaultInterval,
			Destination: &cfg.Interval,
		},
		&cli.IntFlag{
			Name:        "count",
			Aliases:     []string{"c"},
			Usage:       "Total `count` of probes, 0 for unbounded.",
			Destination: &cfg.Count,
		},
		&cli.Int64Flag{
			Name:        "number",
			Aliases:     []string{"n"},
			Usage:       "Starting `number`, incremented by 1 after each probe; random per probe if unspecified.",
			Value:       -1,
			Destination: &cfg.FirstNumber,
		},
		&cli.StringFlag{
			Name:        "identifier",
			Aliases:     []string{"p"},
			Usage:       "`identifier` added to probe names to avoid conflict between concurrent clients.",
			Destination: &cfg.Identifier,
		},
		&cli.BoolFlag{
			Name:        "allow-cached",
			Aliases:     []string{"a"},
			Usage:       "Allow Data replies from in-network caches.",
			Destination: &cfg.AllowCached,
		},
		&cli.BoolFlag{
			Name:        "timestamp",
			Aliases:     []string{"t"},
			Usage:       "Print timestamp before each output line.",
			Destination: &cfg.Timestamp,
		},
		&cli.DurationFlag{
			Name:        "lifetime",
			Usage:       "Interest `lifetime`, i.e. probe timeout.",
			Value:       pingclient.DefaultLifetime,
			Destination: &cfg.Lifetime,
		},
	},
	Before: func(c *cli.Context) (e error) {
		if client, e = gqlmgmt.New(c.String("gqlserver")); e != nil {
			return e
		}
		return openUplink()
	},
	Action: func(c *cli.Context) error {
		cfg.Prefix = c.Args().First()
		if cfg.Prefix == "" {
			return cli.Exit("prefix is missing", 1)
		}
		if cfg.Count < 0 {
			return cli.Exit("count cannot be negative", 1)
		}

		pc, e := pingclient.New(cfg)
		if e != nil {
			return e
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		interrupt := make(chan os.Signal, 1)
		signal.Notify(interrupt, syscall.SIGINT)
		go func() {
			<-interrupt
			cancel()
		}()

		if e := pc.Run(ctx); e != nil && !errors.Is(e, context.Canceled) {
			return e
		}
		return nil
	},
	After: func(c *cli.Context) (e error) {
		if face != nil {
			e = face.Close()
		}
		if client != nil {
			e = multierr.Append(e, client.Close())
		}
		return e
	},
}

func main() {
	rand.Seed(time.Now().UnixNano())
	if e := app.Run(os.Args); e != nil {
		log.Fatal(e)
	}
}
