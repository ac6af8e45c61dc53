package scan

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/phayes/freeport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProbeOpenPort(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.Nil(t, err)
	defer listener.Close()

	port := listener.Addr().(*net.TCPAddr).Port

	state := Probe(context.Background(), "127.0.0.1", port, time.Second)
	assert.Equal(t, PortOpen, state)
}

func TestProbeClosedPort(t *testing.T) {
	port, err := freeport.GetFreePort()
	require.Nil(t, err)

	state := Probe(context.Background(), "127.0.0.1", port, time.Second)
	assert.Equal(t, PortClosedOrFiltered, state)
}

func TestProbeUnresolvableHost(t *testing.T) {
	// .invalid is reserved and never resolves
	state := Probe(context.Background(), "host.invalid", 80, time.Second)
	assert.Equal(t, PortClosedOrFiltered, state)
}

func TestProbeRepeatedOutcomeIsStable(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.Nil(t, err)
	defer listener.Close()

	port := listener.Addr().(*net.TCPAddr).Port

	for i := 0; i < 5; i++ {
		assert.Equal(t, PortOpen, Probe(context.Background(), "127.0.0.1", port, time.Second))
	}
}

func TestPortStateString(t *testing.T) {
	assert.Equal(t, "open", PortOpen.String())
	assert.Equal(t, "closed|filtered", PortClosedOrFiltered.String())
}
