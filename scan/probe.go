package scan

import (
	"context"
	"net"
	"strconv"
	"time"
)

// PortState is the outcome of a single connect probe. A plain TCP connect
// cannot reliably tell a closed port from a filtered one, so both collapse
// into PortClosedOrFiltered.
type PortState uint8

const (
	PortClosedOrFiltered PortState = iota
	PortOpen
)

func (s PortState) String() string {
	if s == PortOpen {
		return "open"
	}
	return "closed|filtered"
}

type probeFunc func(ctx context.Context, target string, port int, timeout time.Duration) PortState

// Probe makes one TCP connection attempt to target:port within timeout.
// Resolution failures, refusals, resets and timeouts all report
// PortClosedOrFiltered; only an established connection reports PortOpen. The
// connection is closed before returning on every path. Cancelling ctx aborts
// an in-flight dial.
func Probe(ctx context.Context, target string, port int, timeout time.Duration) PortState {
	dialer := net.Dialer{Timeout: timeout}

	conn, err := dialer.DialContext(ctx, "tcp", net.JoinHostPort(target, strconv.Itoa(port)))
	if err != nil {
		return PortClosedOrFiltered
	}
	conn.Close()

	return PortOpen
}
