package scan

import (
	"context"
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

type portOutcome struct {
	port  int
	state PortState
}

// PortScanner fans a set of ports out to a bounded pool of connect probes
// against a single target. The zero value is not usable; construct with
// NewPortScanner.
type PortScanner struct {
	timeout time.Duration
	workers int
	probe   probeFunc
}

func NewPortScanner(cfg Config) (*PortScanner, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &PortScanner{
		timeout: cfg.Timeout,
		workers: cfg.Workers,
		probe:   Probe,
	}, nil
}

// Scan probes every distinct port in ports against target, with at most the
// configured number of probes in flight at once. Every distinct requested
// port gets exactly one entry in the result; no single probe failure aborts
// the batch. If ctx expires mid-scan, ports not yet probed are recorded
// PortClosedOrFiltered and Scan returns rather than waiting out their
// timeouts.
func (s *PortScanner) Scan(ctx context.Context, target string, ports []int) (*PortScanResult, error) {
	distinct, err := dedupePorts(ports)
	if err != nil {
		return nil, err
	}

	result := NewPortScanResult(target)
	if len(distinct) == 0 {
		return result, nil
	}

	workers := s.workers
	if workers > len(distinct) {
		workers = len(distinct)
	}

	log.Debugf("Scanning %d port(s) on %s with %d worker(s)...", len(distinct), target, workers)

	jobs := make(chan int, len(distinct))
	outcomes := make(chan portOutcome, len(distinct))

	wg := &sync.WaitGroup{}
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for port := range jobs {
				select {
				case <-ctx.Done():
					// deadline passed; account for the port without dialing
					outcomes <- portOutcome{port: port, state: PortClosedOrFiltered}
				default:
					outcomes <- portOutcome{port: port, state: s.probe(ctx, target, port, s.timeout)}
				}
			}
		}()
	}

	for _, port := range distinct {
		jobs <- port
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(outcomes)
	}()

	for outcome := range outcomes {
		result.record(outcome.port, outcome.state)
	}

	log.Debugf("Scan of %s finished, %d port(s) open", target, len(result.Open()))

	return result, nil
}

func dedupePorts(ports []int) ([]int, error) {
	seen := make(map[int]struct{}, len(ports))
	distinct := make([]int, 0, len(ports))
	for _, port := range ports {
		if port < 0 || port > 65535 {
			return nil, fmt.Errorf("port %d is outside the range 0-65535", port)
		}
		if _, ok := seen[port]; ok {
			continue
		}
		seen[port] = struct{}{}
		distinct = append(distinct, port)
	}
	return distinct, nil
}
