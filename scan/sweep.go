package scan

import (
	"bytes"
	"context"
	"io"
	"net"
	"sort"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

// SweepPorts is the burst probed against each candidate host. Any one of them
// accepting a connection marks the host alive. A host with all of these
// filtered is invisible to a sweep; that is a limitation of the technique.
var SweepPorts = []int{80, 443, 22, 445}

// HostSweeper fans the addresses of a network range out to a bounded pool of
// liveness checks, each a short burst of connect probes.
type HostSweeper struct {
	timeout time.Duration
	workers int
	probe   probeFunc
	burst   []int
}

func NewHostSweeper(cfg Config) (*HostSweeper, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &HostSweeper{
		timeout: cfg.Timeout,
		workers: cfg.Workers,
		probe:   Probe,
		burst:   SweepPorts,
	}, nil
}

// Sweep probes every host address in prefix and returns the ones with at
// least one burst port open, sorted ascending by address regardless of the
// order probes complete in. The prefix is either CIDR notation or a bare
// three-octet form such as "192.168.1"; network and broadcast addresses are
// skipped. An empty result is a successful sweep, not an error.
func (s *HostSweeper) Sweep(ctx context.Context, prefix string) (*SweepResult, error) {
	ti, err := NewSweepIterator(prefix)
	if err != nil {
		return nil, err
	}

	var targets []net.IP
	for {
		ip, err := ti.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		targets = append(targets, ip)
	}

	result := &SweepResult{Prefix: prefix, Hosts: []SweepHost{}}
	if len(targets) == 0 {
		return result, nil
	}

	workers := s.workers
	if workers > len(targets) {
		workers = len(targets)
	}

	log.Debugf("Sweeping %d address(es) in %s with %d worker(s)...", len(targets), prefix, workers)

	jobs := make(chan net.IP, len(targets))
	alive := make(chan net.IP, len(targets))

	wg := &sync.WaitGroup{}
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for ip := range jobs {
				if s.checkHost(ctx, ip) {
					log.Debugf("Host %s is up", ip)
					alive <- ip
				}
			}
		}()
	}

	for _, ip := range targets {
		jobs <- ip
	}
	close(jobs)

	wg.Wait()
	close(alive)

	for ip := range alive {
		result.Hosts = append(result.Hosts, SweepHost{IP: ip})
	}

	sort.Slice(result.Hosts, func(i, j int) bool {
		return bytes.Compare(result.Hosts[i].IP.To16(), result.Hosts[j].IP.To16()) < 0
	})

	log.Debugf("Sweep of %s finished, %d host(s) up", prefix, len(result.Hosts))

	return result, nil
}

// checkHost reports whether any burst port on ip accepts a connection. It
// stops at the first open port; further probes add no information once the
// host is known alive.
func (s *HostSweeper) checkHost(ctx context.Context, ip net.IP) bool {
	for _, port := range s.burst {
		select {
		case <-ctx.Done():
			return false
		default:
		}
		if s.probe(ctx, ip.String(), port, s.timeout) == PortOpen {
			return true
		}
	}
	return false
}
