package pingserver_test

import (
	"context"
	"testing"
	"time"

	"github.com/usnistgov/ndn-dpdk/ndn"
	"github.com/usnistgov/ndn-dpdk/ndn/endpoint"
	"github.com/usnistgov/ndn-dpdk/ndn/l3"

	"github.com/ndn-go/ndnping/app/pingserver"
)

func TestServer(t *testing.T) {
	assert, require := makeAR(t)
	fw := l3.NewForwarder()
	ctx := context.Background()

	s, e := pingserver.Start(ctx, pingserver.Config{
		Prefix:      ndn.ParseName("/A"),
		Freshness:   2 * time.Second,
		NoAdvertise: true,
		Fw:          fw,
	})
	require.NoError(e)
	defer s.Close()

	data, e := endpoint.Consume(ctx,
		ndn.MakeInterest("/A/ping/42", ndn.MustBeFreshFlag, 200*time.Millisecond),
		endpoint.ConsumerOptions{Fw: fw})
	require.NoError(e)
	nameEqual(assert, "/A/ping/42", data)
	assert.Equal([]byte("ping ack"), data.Content)
	assert.Equal(2*time.Second, data.Freshness)

	for _, uri := range []string{"/A/ping/abc", "/A/ping/12a", "/A/ping/1/2"} {
		_, e := endpoint.Consume(ctx,
			ndn.MakeInterest(uri, 100*time.Millisecond),
			endpoint.ConsumerOptions{Fw: fw})
		assert.ErrorIs(e, endpoint.ErrExpire, "%s", uri)
	}

	cnt := s.ReadCounters()
	assert.EqualValues(1, cnt.NServed)
	assert.EqualValues(3, cnt.NIgnored)
}

func TestServerNoFreshness(t *testing.T) {
	assert, require := makeAR(t)
	fw := l3.NewForwarder()
	ctx := context.Background()

	s, e := pingserver.Start(ctx, pingserver.Config{
		Prefix:      ndn.ParseName("/B"),
		Freshness:   -1,
		NoAdvertise: true,
		Fw:          fw,
	})
	require.NoError(e)
	defer s.Close()

	data, e := endpoint.Consume(ctx,
		ndn.MakeInterest("/B/ping/0", 200*time.Millisecond),
		endpoint.ConsumerOptions{Fw: fw})
	require.NoError(e)
	nameEqual(assert, "/B/ping/0", data)
	assert.Zero(data.Freshness)
}

func TestServerConfigError(t *testing.T) {
	assert, _ := makeAR(t)

	_, e := pingserver.Start(context.Background(), pingserver.Config{})
	assert.ErrorIs(e, pingserver.ErrPrefix)
}
