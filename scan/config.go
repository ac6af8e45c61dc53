package scan

import (
	"fmt"
	"time"
)

// MaxWorkers is the ceiling on pool size. Past this the bound no longer
// protects anything and just burns file descriptors.
const MaxWorkers = 2048

const (
	DefaultTimeout      = 2 * time.Second
	DefaultWorkers      = 100
	DefaultSweepTimeout = 500 * time.Millisecond
	DefaultSweepWorkers = 50
)

// Config bounds a single scan run. Timeout applies to each probe
// individually; Workers limits how many probes (or hosts, for a sweep) are in
// flight at once.
type Config struct {
	Timeout time.Duration
	Workers int
}

func (c Config) validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	if c.Workers > MaxWorkers {
		return fmt.Errorf("workers must not exceed %d, got %d", MaxWorkers, c.Workers)
	}
	return nil
}
