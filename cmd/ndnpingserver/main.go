// Command ndnpingserver answers probe Interests under a name prefix with a
// short acknowledgment Data.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"
	"github.com/usnistgov/ndn-dpdk/ndn"
	"github.com/usnistgov/ndn-dpdk/ndn/l3"
	"github.com/usnistgov/ndn-dpdk/ndn/mgmt"
	"github.com/usnistgov/ndn-dpdk/ndn/mgmt/gqlmgmt"
	"go.uber.org/multierr"
	"go4.org/must"

	"github.com/ndn-go/ndnping/app/pingserver"
	"github.com/ndn-go/ndnping/mk/version"
)

var (
	client mgmt.Client
	face   mgmt.Face
	cfg    pingserver.Config
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
	Name:      "ndnpingserver",
	Version:   version.Get(),
	Usage:     "Respond to Interests named prefix/ping/number.",
	ArgsUsage: "prefix",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "gqlserver",
			Usage:   "GraphQL `endpoint` of NDN-DPDK daemon.",
			Value:   "http://127.0.0.1:3030/",
			EnvVars: []string{"GQLSERVER"},
		},
		&cli.DurationFlag{
			Name:        "freshness",
			Aliases:     []string{"x"},
			Usage:       "FreshnessPeriod of replies; negative to omit.",
			Value:       pingserver.DefaultFreshness,
			Destination: &cfg.Freshness,
		},
		&cli.BoolFlag{
			Name:        "no-advertise",
			Usage:       "Do not advertise/register the prefix.",
			Destination: &cfg.NoAdvertise,
		},
	},
	Before: func(c *cli.Context) (e error) {
		if client, e = gqlmgmt.New(c.String("gqlserver")); e != nil {
			return e
		}
		return openUplink()
	},
	Action: func(c *cli.Context) error {
		prefix := c.Args().First()
		if prefix == "" {
			return cli.Exit("prefix is missing", 1)
		}
		cfg.Prefix = ndn.ParseName(prefix)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		s, e := pingserver.Start(ctx, cfg)
		if e != nil {
			return e
		}

		interrupt := make(chan os.Signal, 1)
		signal.Notify(interrupt, syscall.SIGINT)
		<-interrupt

		must.Close(s)
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
	if e := app.Run(os.Args); e != nil {
		log.Fatal(e)
	}
}
