package scan

import (
	"fmt"
	"net"
	"sort"
)

// PortEntry pairs a probed port with its outcome and the well-known service
// on it, if any.
type PortEntry struct {
	Port    int
	State   PortState
	Service string
}

// PortScanResult maps every requested port to its probe outcome. The
// scheduler populates it; callers must treat it as immutable once Scan has
// returned.
type PortScanResult struct {
	Target string
	States map[int]PortState
}

func NewPortScanResult(target string) *PortScanResult {
	return &PortScanResult{
		Target: target,
		States: map[int]PortState{},
	}
}

func (r *PortScanResult) record(port int, state PortState) {
	r.States[port] = state
}

// Open returns the open ports in ascending order.
func (r *PortScanResult) Open() []int {
	open := []int{}
	for port, state := range r.States {
		if state == PortOpen {
			open = append(open, port)
		}
	}
	sort.Ints(open)
	return open
}

// Entries returns one entry per requested port, ordered by port number.
func (r *PortScanResult) Entries() []PortEntry {
	entries := make([]PortEntry, 0, len(r.States))
	for port, state := range r.States {
		entries = append(entries, PortEntry{
			Port:    port,
			State:   state,
			Service: DescribePort(port),
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Port < entries[j].Port
	})
	return entries
}

func (r *PortScanResult) String() string {

	open := r.Open()

	if len(open) == 0 {
		return fmt.Sprintf("No open ports found on %s\n", r.Target)
	}

	text := fmt.Sprintf("Open ports on %s:\n\n", r.Target)

	text = fmt.Sprintf(
		"%s\t%s\t%s\t%s\n",
		text,
		pad("PORT", 10),
		pad("STATE", 10),
		"SERVICE",
	)

	for _, port := range open {
		text = fmt.Sprintf(
			"%s\t%s\t%s\t%s\n",
			text,
			pad(fmt.Sprintf("%d/tcp", port), 10),
			pad("OPEN", 10),
			DescribePort(port),
		)
	}

	return fmt.Sprintf("%s\n%d open port(s) found\n", text, len(open))
}

// SweepHost is one live address found by a sweep. Name, MAC and Manufacturer
// are filled by the optional enrichment passes and may be empty.
type SweepHost struct {
	IP           net.IP
	Name         string
	MAC          string
	Manufacturer string
}

// SweepResult is the list of live hosts found in a range, sorted ascending by
// address.
type SweepResult struct {
	Prefix string
	Hosts  []SweepHost
}

// EnrichNames fills in host names using the supplied reverse lookup, best
// effort. A lookup failure leaves the host in place with an empty name.
func (r *SweepResult) EnrichNames(lookup func(string) (string, error)) {
	if lookup == nil {
		return
	}
	for i := range r.Hosts {
		name, err := lookup(r.Hosts[i].IP.String())
		if err != nil {
			continue
		}
		r.Hosts[i].Name = name
	}
}

func (r *SweepResult) String() string {

	if len(r.Hosts) == 0 {
		return fmt.Sprintf("No live hosts found in %s\n", r.Prefix)
	}

	text := fmt.Sprintf("Live hosts in %s:\n\n", r.Prefix)

	for _, host := range r.Hosts {
		line := pad(host.IP.String(), 16)
		if host.Name != "" {
			line = fmt.Sprintf("%s %s", line, host.Name)
		}
		if host.MAC != "" {
			line = fmt.Sprintf("%s %s", line, host.MAC)
			if host.Manufacturer != "" {
				line = fmt.Sprintf("%s (%s)", line, host.Manufacturer)
			}
		}
		text = fmt.Sprintf("%s\t%s\n", text, line)
	}

	return fmt.Sprintf("%s\n%d live host(s) found\n", text, len(r.Hosts))
}

func pad(input string, length int) string {
	for len(input) < length {
		input += " "
	}
	return input
}
